package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectUpdateModel 项目动态（创建者发布，只追加）
type ProjectUpdateModel struct {
	Id        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`

	ProjectId     string `json:"project_id" gorm:"not null;index"`
	CreatorWallet string `json:"creator_wallet" gorm:"not null"`
	Title         string `json:"title" gorm:"not null"`
	Content       string `json:"content" gorm:"type:text"`
}

// TableName 自定义表名
func (ProjectUpdateModel) TableName() string {
	return "project_updates"
}

// BeforeCreate 生成主键
func (u *ProjectUpdateModel) BeforeCreate(tx *gorm.DB) error {
	if u.Id == "" {
		u.Id = uuid.NewString()
	}
	return nil
}
