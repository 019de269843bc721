package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlatformWalletModel 平台托管钱包池记录
// 不变式: is_assigned == false 当且仅当 assigned_project_id 为 NULL
type PlatformWalletModel struct {
	Id        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 钱包公钥（私钥由运维离线保管，不入库）
	PublicKey string `json:"public_key" gorm:"uniqueIndex;not null"`

	// 分配状态
	IsAssigned        bool    `json:"is_assigned" gorm:"not null;default:false;index"`
	AssignedProjectId *string `json:"assigned_project_id" gorm:"index"`
}

// TableName 自定义表名
func (PlatformWalletModel) TableName() string {
	return "platform_wallets"
}

// BeforeCreate 生成主键
func (w *PlatformWalletModel) BeforeCreate(tx *gorm.DB) error {
	if w.Id == "" {
		w.Id = uuid.NewString()
	}
	return nil
}
