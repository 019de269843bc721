package logic

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MatevzKlancar/phyacc/internal/logger"
	"github.com/MatevzKlancar/phyacc/internal/model"
	"github.com/MatevzKlancar/phyacc/internal/repository"
	"github.com/MatevzKlancar/phyacc/internal/solana"
)

// WalletPool 钱包池操作。钱包在分配状态间的转换只经过这里的三个方法。
type WalletPool interface {
	ReserveAvailable() (*model.PlatformWalletModel, error)
	Finalize(walletId, projectId string) error
	Release(walletId string) error
}

// ProjectStore 项目存储操作
type ProjectStore interface {
	Create(project *model.ProjectModel) error
	GetById(id string) (*model.ProjectModel, error)
	List(page, pageSize int) ([]model.ProjectModel, int64, error)
}

// MilestoneStore 里程碑存储操作
type MilestoneStore interface {
	Create(milestone *model.ProjectMilestoneModel) error
	GetById(id string) (*model.ProjectMilestoneModel, error)
	ListByProject(projectId string) ([]model.ProjectMilestoneModel, error)
	MarkCompleted(id string) error
}

// BalanceReader 链上余额读取
type BalanceReader interface {
	GetBalance(ctx context.Context, address string) (uint64, error)
	GetBalances(ctx context.Context, addresses []string) ([]uint64, error)
}

// CreateProjectInput 创建项目请求
type CreateProjectInput struct {
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	ImageURL      string           `json:"image_url"`
	FundingGoal   float64          `json:"funding_goal"`
	CreatorWallet string           `json:"creator_wallet"`
	Milestones    []MilestoneInput `json:"milestones"`
}

// MilestoneInput 提交项目时附带的里程碑
type MilestoneInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TargetDate  time.Time `json:"target_date"`
	OrderIndex  int       `json:"order_index"`
}

// ProjectFunding 项目募资进度
type ProjectFunding struct {
	BalanceLamports   uint64  `json:"balance_lamports"`
	Balance           float64 `json:"balance"`
	FundingPercentage float64 `json:"funding_percentage"`
	IsFullyFunded     bool    `json:"is_fully_funded"`
}

// ProjectLogic 项目业务逻辑。项目创建是一个三步流程：
// 预留钱包 -> 写入项目 -> 回写钱包关联，失败路径见 CreateProject。
type ProjectLogic struct {
	pool       WalletPool
	projects   ProjectStore
	milestones MilestoneStore
	chain      BalanceReader
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(pool WalletPool, projects ProjectStore, milestones MilestoneStore, chain BalanceReader) *ProjectLogic {
	return &ProjectLogic{
		pool:       pool,
		projects:   projects,
		milestones: milestones,
		chain:      chain,
	}
}

// CreateProject 创建项目并从钱包池独占分配一个托管钱包。
// 底层存储不支持跨表事务，流程按补偿式顺序执行：
//  1. 预留一个未分配的钱包，池耗尽返回 ErrNoWalletsAvailable；
//  2. 写入项目行，托管地址取预留钱包的公钥；失败时尽力释放钱包并抛出原始错误，
//     释放本身失败只记日志，留给运维对账处理；
//  3. 回写钱包的 assigned_project_id。项目行此时已经可用（托管地址已正确），
//     这一步失败只影响"哪个钱包服务哪个项目"的查询，记日志后吞掉。
func (p *ProjectLogic) CreateProject(input *CreateProjectInput) (*model.ProjectModel, error) {
	if err := p.validateInput(input); err != nil {
		return nil, err
	}

	// 第一步：预留钱包
	wallet, err := p.pool.ReserveAvailable()
	if err != nil {
		if errors.Is(err, repository.ErrPoolExhausted) {
			return nil, ErrNoWalletsAvailable
		}
		return nil, err
	}

	// 第二步：写入项目
	project := &model.ProjectModel{
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		ImageURL:      input.ImageURL,
		FundingGoal:   input.FundingGoal,
		CreatorWallet: input.CreatorWallet,
		WalletAddress: wallet.PublicKey,
	}
	if err := p.projects.Create(project); err != nil {
		// 补偿：释放预留的钱包后抛出原始错误
		if releaseErr := p.pool.Release(wallet.Id); releaseErr != nil {
			logger.Error("Failed to release wallet %s after project creation failure, manual reconciliation required: %v",
				wallet.Id, releaseErr)
		}
		return nil, err
	}

	// 第三步：回写钱包到项目的关联
	if err := p.pool.Finalize(wallet.Id, project.Id); err != nil {
		logger.Error("Failed to finalize wallet %s for project %s: %v", wallet.Id, project.Id, err)
	}

	// 附带的里程碑在项目落库后创建，失败不影响项目本身
	for _, m := range input.Milestones {
		milestone := &model.ProjectMilestoneModel{
			ProjectId:   project.Id,
			Title:       m.Title,
			Description: m.Description,
			TargetDate:  m.TargetDate,
			OrderIndex:  m.OrderIndex,
		}
		if err := p.milestones.Create(milestone); err != nil {
			logger.Error("Failed to create milestone for project %s: %v", project.Id, err)
		}
	}

	logger.Info("Created project %s with escrow wallet %s", project.Id, wallet.PublicKey)
	return project, nil
}

// GetProject 获取项目详情
func (p *ProjectLogic) GetProject(id string) (*model.ProjectModel, error) {
	return p.projects.GetById(id)
}

// GetProjects 分页获取项目列表
func (p *ProjectLogic) GetProjects(page, pageSize int) ([]model.ProjectModel, int64, error) {
	return p.projects.List(page, pageSize)
}

// GetProjectFunding 实时查询项目托管钱包余额并计算募资进度
func (p *ProjectLogic) GetProjectFunding(ctx context.Context, id string) (*ProjectFunding, error) {
	project, err := p.projects.GetById(id)
	if err != nil {
		return nil, err
	}

	lamports, err := p.chain.GetBalance(ctx, project.WalletAddress)
	if err != nil {
		return nil, err
	}

	percentage := FundingPercentage(lamports, project.FundingGoal)
	return &ProjectFunding{
		BalanceLamports:   lamports,
		Balance:           LamportsToSol(lamports),
		FundingPercentage: percentage,
		IsFullyFunded:     percentage >= 100,
	}, nil
}

// validateInput 校验创建项目请求
func (p *ProjectLogic) validateInput(input *CreateProjectInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return NewValidationError("项目标题不能为空")
	}
	if strings.TrimSpace(input.Description) == "" {
		return NewValidationError("项目描述不能为空")
	}
	if input.FundingGoal <= 0 {
		return NewValidationError("募资目标必须大于0")
	}
	if input.CreatorWallet == "" {
		return NewValidationError("创建者钱包地址不能为空")
	}
	if err := solana.ValidateAddress(input.CreatorWallet); err != nil {
		return NewValidationError("创建者钱包地址格式错误")
	}
	for _, m := range input.Milestones {
		if strings.TrimSpace(m.Title) == "" {
			return NewValidationError("里程碑标题不能为空")
		}
		if m.TargetDate.IsZero() {
			return NewValidationError("里程碑目标日期不能为空")
		}
	}
	return nil
}
