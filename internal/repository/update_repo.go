package repository

import (
	"fmt"

	"github.com/MatevzKlancar/phyacc/internal/model"
	"gorm.io/gorm"
)

// UpdateRepository 项目动态数据访问
type UpdateRepository struct {
	db *gorm.DB
}

// NewUpdateRepository 创建项目动态数据访问
func NewUpdateRepository(db *gorm.DB) *UpdateRepository {
	return &UpdateRepository{db: db}
}

// Create 插入项目动态
func (r *UpdateRepository) Create(update *model.ProjectUpdateModel) error {
	if err := r.db.Create(update).Error; err != nil {
		return fmt.Errorf("创建项目动态失败: %w", err)
	}
	return nil
}

// ListByProject 按发布时间倒序获取项目动态
func (r *UpdateRepository) ListByProject(projectId string) ([]model.ProjectUpdateModel, error) {
	var updates []model.ProjectUpdateModel
	err := r.db.Where("project_id = ?", projectId).
		Order("created_at DESC").
		Find(&updates).Error
	if err != nil {
		return nil, fmt.Errorf("获取项目动态失败: %w", err)
	}
	return updates, nil
}
