package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectMilestoneModel 项目里程碑
type ProjectMilestoneModel struct {
	Id        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectId   string     `json:"project_id" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	TargetDate  time.Time  `json:"target_date" gorm:"not null"`
	CompletedAt *time.Time `json:"completed_at"` // 完成后只写一次，不可撤销
	OrderIndex  int        `json:"order_index" gorm:"not null;default:0"`
}

// TableName 自定义表名
func (ProjectMilestoneModel) TableName() string {
	return "project_milestones"
}

// BeforeCreate 生成主键
func (m *ProjectMilestoneModel) BeforeCreate(tx *gorm.DB) error {
	if m.Id == "" {
		m.Id = uuid.NewString()
	}
	return nil
}
