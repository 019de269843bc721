package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectModel 众筹项目模型
type ProjectModel struct {
	Id        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title       string `json:"title" gorm:"not null" binding:"required"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`

	// 众筹信息（目标金额以SOL计）
	FundingGoal float64 `json:"funding_goal" gorm:"not null" binding:"required,gt=0"`

	// 创建者信息
	CreatorWallet string `json:"creator_wallet" gorm:"not null;index"`

	// 托管钱包地址（创建时从钱包池分配，之后不变）
	WalletAddress string `json:"wallet_address" gorm:"not null"`

	// 链上余额缓存（由定时任务刷新）
	BalanceLamports   uint64     `json:"balance_lamports" gorm:"default:0"`
	FundingPercentage float64    `json:"funding_percentage" gorm:"default:0"`
	BalanceUpdatedAt  *time.Time `json:"balance_updated_at"`
}

// TableName 自定义表名
func (ProjectModel) TableName() string {
	return "projects"
}

// BeforeCreate 生成主键
func (p *ProjectModel) BeforeCreate(tx *gorm.DB) error {
	if p.Id == "" {
		p.Id = uuid.NewString()
	}
	return nil
}
