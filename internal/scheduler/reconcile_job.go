package scheduler

import (
	"time"

	"github.com/MatevzKlancar/phyacc/internal/config"
	"github.com/MatevzKlancar/phyacc/internal/logger"
	"github.com/MatevzKlancar/phyacc/internal/repository"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// ReconcileJob 钱包池对账任务：找出仍标记为已分配但没有对应在线项目的钱包，
// 这类记录源于项目创建失败后补偿释放也失败的情况。
// 任务只检测并记日志提醒运维，不做自动修复。
type ReconcileJob struct {
	walletRepo *repository.WalletRepository
	config     *config.Config
}

// NewReconcileJob 创建钱包池对账任务
func NewReconcileJob(db *gorm.DB, cfg *config.Config) *ReconcileJob {
	return &ReconcileJob{
		walletRepo: repository.NewWalletRepository(db),
		config:     cfg,
	}
}

// GetName 获取任务名称
func (j *ReconcileJob) GetName() string {
	return "wallet_pool_reconciler"
}

// GetSchedule 获取调度配置
func (j *ReconcileJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.ReconcileInterval) * time.Second)
}

// Execute 执行任务
func (j *ReconcileJob) Execute() {
	staleThreshold := time.Duration(j.config.Scheduler.StaleMinutes) * time.Minute

	stale, err := j.walletRepo.FindStaleReservations(staleThreshold)
	if err != nil {
		logger.Error("Wallet reconcile: failed to query stale reservations: %v", err)
		return
	}
	for _, w := range stale {
		logger.Warn("Wallet reconcile: wallet %s (%s) has been reserved without a project for over %s, manual fix required",
			w.Id, w.PublicKey, staleThreshold)
	}

	orphaned, err := j.walletRepo.FindOrphanedAssignments()
	if err != nil {
		logger.Error("Wallet reconcile: failed to query orphaned assignments: %v", err)
		return
	}
	for _, w := range orphaned {
		projectId := ""
		if w.AssignedProjectId != nil {
			projectId = *w.AssignedProjectId
		}
		logger.Warn("Wallet reconcile: wallet %s (%s) references missing project %s, manual fix required",
			w.Id, w.PublicKey, projectId)
	}

	if len(stale) == 0 && len(orphaned) == 0 {
		logger.Debug("Wallet reconcile: pool is consistent")
	}
}
