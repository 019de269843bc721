package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/MatevzKlancar/phyacc/internal/model"
	"gorm.io/gorm"
)

// ErrPoolExhausted 钱包池中没有可分配的钱包
var ErrPoolExhausted = errors.New("钱包池已耗尽")

// maxReserveAttempts 预留时与并发请求竞争同一行的最大重试次数
const maxReserveAttempts = 3

// WalletRepository 平台钱包池数据访问
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository 创建钱包池数据访问
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// ReserveAvailable 预留一个未分配的钱包并返回。
// 标记 is_assigned 使用条件更新（WHERE is_assigned = false）并检查影响行数，
// 两个并发请求竞争同一行时只有一个会成功，失败方换下一个候选行重试。
func (r *WalletRepository) ReserveAvailable() (*model.PlatformWalletModel, error) {
	for attempt := 0; attempt < maxReserveAttempts; attempt++ {
		var wallet model.PlatformWalletModel
		err := r.db.Where("is_assigned = ?", false).
			Order("created_at ASC").
			First(&wallet).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPoolExhausted
			}
			return nil, fmt.Errorf("查询可用钱包失败: %w", err)
		}

		result := r.db.Model(&model.PlatformWalletModel{}).
			Where("id = ? AND is_assigned = ?", wallet.Id, false).
			Update("is_assigned", true)
		if result.Error != nil {
			return nil, fmt.Errorf("预留钱包失败: %w", result.Error)
		}
		if result.RowsAffected == 1 {
			wallet.IsAssigned = true
			return &wallet, nil
		}
		// 该行已被并发请求抢走，换下一个候选
	}

	return nil, ErrPoolExhausted
}

// Finalize 写入钱包到项目的反向引用。幂等，可用相同 projectId 重复调用。
func (r *WalletRepository) Finalize(walletId, projectId string) error {
	err := r.db.Model(&model.PlatformWalletModel{}).
		Where("id = ?", walletId).
		Updates(map[string]interface{}{
			"is_assigned":         true,
			"assigned_project_id": projectId,
		}).Error
	if err != nil {
		return fmt.Errorf("更新钱包关联项目失败: %w", err)
	}
	return nil
}

// Release 将钱包退回未分配状态。仅作为项目创建失败后的补偿动作。幂等。
func (r *WalletRepository) Release(walletId string) error {
	err := r.db.Model(&model.PlatformWalletModel{}).
		Where("id = ?", walletId).
		Updates(map[string]interface{}{
			"is_assigned":         false,
			"assigned_project_id": nil,
		}).Error
	if err != nil {
		return fmt.Errorf("释放钱包失败: %w", err)
	}
	return nil
}

// GetProjectWallet 查询分配给指定项目的钱包
func (r *WalletRepository) GetProjectWallet(projectId string) (*model.PlatformWalletModel, error) {
	var wallet model.PlatformWalletModel
	err := r.db.Where("assigned_project_id = ?", projectId).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询项目钱包失败: %w", err)
	}
	return &wallet, nil
}

// CreateBatch 批量写入预生成的钱包公钥
func (r *WalletRepository) CreateBatch(publicKeys []string) ([]model.PlatformWalletModel, error) {
	wallets := make([]model.PlatformWalletModel, 0, len(publicKeys))
	for _, key := range publicKeys {
		wallets = append(wallets, model.PlatformWalletModel{PublicKey: key})
	}
	if err := r.db.Create(&wallets).Error; err != nil {
		return nil, fmt.Errorf("批量创建钱包失败: %w", err)
	}
	return wallets, nil
}

// PoolStats 钱包池统计
type PoolStats struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Assigned  int64 `json:"assigned"`
}

// Stats 统计钱包池使用情况
func (r *WalletRepository) Stats() (*PoolStats, error) {
	var stats PoolStats
	if err := r.db.Model(&model.PlatformWalletModel{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.PlatformWalletModel{}).
		Where("is_assigned = ?", false).
		Count(&stats.Available).Error; err != nil {
		return nil, err
	}
	stats.Assigned = stats.Total - stats.Available
	return &stats, nil
}

// FindStaleReservations 查询预留后长时间未完成绑定的钱包（is_assigned 为真但没有关联项目）
func (r *WalletRepository) FindStaleReservations(olderThan time.Duration) ([]model.PlatformWalletModel, error) {
	var wallets []model.PlatformWalletModel
	cutoff := time.Now().Add(-olderThan)
	err := r.db.Where("is_assigned = ? AND assigned_project_id IS NULL AND updated_at < ?", true, cutoff).
		Find(&wallets).Error
	if err != nil {
		return nil, err
	}
	return wallets, nil
}

// FindOrphanedAssignments 查询反向引用指向不存在项目的钱包
func (r *WalletRepository) FindOrphanedAssignments() ([]model.PlatformWalletModel, error) {
	var wallets []model.PlatformWalletModel
	err := r.db.Raw(`
		SELECT w.*
		FROM platform_wallets w
		LEFT JOIN projects p ON w.assigned_project_id = p.id
		WHERE w.is_assigned = true
		  AND w.assigned_project_id IS NOT NULL
		  AND p.id IS NULL
	`).Scan(&wallets).Error
	if err != nil {
		return nil, err
	}
	return wallets, nil
}
