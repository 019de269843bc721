package repository

import (
	"errors"
	"fmt"

	"github.com/MatevzKlancar/phyacc/internal/model"
	"gorm.io/gorm"
)

// TokenRepository 项目代币配置数据访问
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository 创建项目代币配置数据访问
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create 插入代币配置
func (r *TokenRepository) Create(token *model.ProjectTokenModel) error {
	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("创建代币配置失败: %w", err)
	}
	return nil
}

// GetByProject 获取项目的代币配置
func (r *TokenRepository) GetByProject(projectId string) (*model.ProjectTokenModel, error) {
	var token model.ProjectTokenModel
	if err := r.db.Where("project_id = ?", projectId).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("获取代币配置失败: %w", err)
	}
	return &token, nil
}

// MarkCreated 写入代币钱包信息并标记已创建
func (r *TokenRepository) MarkCreated(id, walletAddress, apiKey string) error {
	err := r.db.Model(&model.ProjectTokenModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"wallet_address": walletAddress,
			"api_key":        apiKey,
			"is_created":     true,
		}).Error
	if err != nil {
		return fmt.Errorf("更新代币配置失败: %w", err)
	}
	return nil
}
