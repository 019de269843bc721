package repository

import (
	"errors"
	"fmt"

	"github.com/MatevzKlancar/phyacc/internal/model"
	"gorm.io/gorm"
)

// MilestoneRepository 里程碑数据访问
type MilestoneRepository struct {
	db *gorm.DB
}

// NewMilestoneRepository 创建里程碑数据访问
func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

// Create 插入里程碑
func (r *MilestoneRepository) Create(milestone *model.ProjectMilestoneModel) error {
	if err := r.db.Create(milestone).Error; err != nil {
		return fmt.Errorf("创建里程碑失败: %w", err)
	}
	return nil
}

// GetById 获取里程碑
func (r *MilestoneRepository) GetById(id string) (*model.ProjectMilestoneModel, error) {
	var milestone model.ProjectMilestoneModel
	if err := r.db.Where("id = ?", id).First(&milestone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("获取里程碑失败: %w", err)
	}
	return &milestone, nil
}

// ListByProject 按插入顺序获取项目的全部里程碑（展示排序在 logic 层做稳定排序）
func (r *MilestoneRepository) ListByProject(projectId string) ([]model.ProjectMilestoneModel, error) {
	var milestones []model.ProjectMilestoneModel
	err := r.db.Where("project_id = ?", projectId).
		Order("created_at ASC, id ASC").
		Find(&milestones).Error
	if err != nil {
		return nil, fmt.Errorf("获取里程碑列表失败: %w", err)
	}
	return milestones, nil
}

// MarkCompleted 写入完成时间。条件更新保证已完成的里程碑不会被覆盖。
func (r *MilestoneRepository) MarkCompleted(id string) error {
	err := r.db.Model(&model.ProjectMilestoneModel{}).
		Where("id = ? AND completed_at IS NULL", id).
		Update("completed_at", gorm.Expr("NOW()")).Error
	if err != nil {
		return fmt.Errorf("更新里程碑完成时间失败: %w", err)
	}
	return nil
}
