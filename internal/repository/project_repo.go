package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/MatevzKlancar/phyacc/internal/model"
	"gorm.io/gorm"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("记录不存在")

// ProjectRepository 项目数据访问
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository 创建项目数据访问
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create 插入项目
func (r *ProjectRepository) Create(project *model.ProjectModel) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("创建项目失败: %w", err)
	}
	return nil
}

// GetById 获取项目详情
func (r *ProjectRepository) GetById(id string) (*model.ProjectModel, error) {
	var project model.ProjectModel
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("获取项目详情失败: %w", err)
	}
	return &project, nil
}

// List 按创建时间倒序分页获取项目
func (r *ProjectRepository) List(page, pageSize int) ([]model.ProjectModel, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	if err := r.db.Model(&model.ProjectModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计项目数量失败: %w", err)
	}

	var projects []model.ProjectModel
	err := r.db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&projects).Error
	if err != nil {
		return nil, 0, fmt.Errorf("获取项目列表失败: %w", err)
	}

	return projects, total, nil
}

// ListAll 获取全部项目（定时任务刷新余额用）
func (r *ProjectRepository) ListAll() ([]model.ProjectModel, error) {
	var projects []model.ProjectModel
	if err := r.db.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("获取项目列表失败: %w", err)
	}
	return projects, nil
}

// UpdateBalance 写入链上余额缓存
func (r *ProjectRepository) UpdateBalance(id string, lamports uint64, percentage float64) error {
	now := time.Now()
	err := r.db.Model(&model.ProjectModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance_lamports":   lamports,
			"funding_percentage": percentage,
			"balance_updated_at": &now,
		}).Error
	if err != nil {
		return fmt.Errorf("更新项目余额失败: %w", err)
	}
	return nil
}
