package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MatevzKlancar/phyacc/internal/config"
	"github.com/MatevzKlancar/phyacc/internal/logger"
	"github.com/MatevzKlancar/phyacc/internal/logic"
	"github.com/MatevzKlancar/phyacc/internal/model"
	"github.com/MatevzKlancar/phyacc/internal/repository"
	"github.com/MatevzKlancar/phyacc/internal/solana"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// FundingJob 募资进度刷新任务：批量查询各项目托管钱包的链上余额，
// 写入项目行的余额缓存供列表页展示。
type FundingJob struct {
	projectRepo *repository.ProjectRepository
	solClient   *solana.Client
	config      *config.Config
}

// NewFundingJob 创建募资进度刷新任务
func NewFundingJob(db *gorm.DB, cfg *config.Config, solClient *solana.Client) *FundingJob {
	return &FundingJob{
		projectRepo: repository.NewProjectRepository(db),
		solClient:   solClient,
		config:      cfg,
	}
}

// GetName 获取任务名称
func (j *FundingJob) GetName() string {
	return "funding_refresher"
}

// GetSchedule 获取调度配置
func (j *FundingJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.FundingInterval) * time.Second)
}

// Execute 执行任务
func (j *FundingJob) Execute() {
	projects, err := j.projectRepo.ListAll()
	if err != nil {
		logger.Error("Funding refresh: failed to fetch projects: %v", err)
		return
	}
	if len(projects) == 0 {
		return
	}

	batchSize := j.config.Scheduler.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	poolSize := j.config.Scheduler.PoolSize
	if poolSize <= 0 {
		poolSize = 4
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		logger.Error("Funding refresh: failed to create worker pool: %v", err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for start := 0; start < len(projects); start += batchSize {
		end := start + batchSize
		if end > len(projects) {
			end = len(projects)
		}
		batch := projects[start:end]

		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			j.refreshBatch(batch)
		}); err != nil {
			wg.Done()
			logger.Error("Funding refresh: failed to submit batch: %v", err)
		}
	}
	wg.Wait()
}

// refreshBatch 刷新一批项目的余额缓存
func (j *FundingJob) refreshBatch(projects []model.ProjectModel) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	addresses := make([]string, 0, len(projects))
	for _, p := range projects {
		addresses = append(addresses, p.WalletAddress)
	}

	// RPC节点偶发超时，指数退避重试
	var balances []uint64
	operation := func() error {
		var err error
		balances, err = j.solClient.GetBalances(ctx, addresses)
		return err
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		logger.Error("Funding refresh: failed to fetch balances: %v", err)
		return
	}

	for i, p := range projects {
		percentage := logic.FundingPercentage(balances[i], p.FundingGoal)
		if err := j.projectRepo.UpdateBalance(p.Id, balances[i], percentage); err != nil {
			logger.Error("Funding refresh: failed to update project %s: %v", p.Id, err)
		}
	}
}
