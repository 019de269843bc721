package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectTokenModel 项目代币配置
type ProjectTokenModel struct {
	Id        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProjectId string `json:"project_id" gorm:"uniqueIndex;not null"`

	// 代币信息
	Name        string `json:"name" gorm:"not null"`
	Symbol      string `json:"symbol" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`
	Twitter     string `json:"twitter"`
	Telegram    string `json:"telegram"`
	Website     string `json:"website"`

	// 分配给募资参与者的比例（百分比）
	AllocationPercentage int `json:"allocation_percentage" gorm:"default:0"`

	// 创建结果（调用第三方API后写入）
	WalletAddress string `json:"wallet_address"`
	ApiKey        string `json:"-" gorm:"column:api_key"`
	IsCreated     bool   `json:"is_created" gorm:"not null;default:false"`
}

// TableName 自定义表名
func (ProjectTokenModel) TableName() string {
	return "project_tokens"
}

// BeforeCreate 生成主键
func (t *ProjectTokenModel) BeforeCreate(tx *gorm.DB) error {
	if t.Id == "" {
		t.Id = uuid.NewString()
	}
	return nil
}
