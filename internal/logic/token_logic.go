package logic

import (
	"context"
	"strings"

	"github.com/MatevzKlancar/phyacc/internal/logger"
	"github.com/MatevzKlancar/phyacc/internal/model"
	"github.com/MatevzKlancar/phyacc/internal/token"
)

// TokenStore 代币配置存储操作
type TokenStore interface {
	Create(token *model.ProjectTokenModel) error
	GetByProject(projectId string) (*model.ProjectTokenModel, error)
	MarkCreated(id, walletAddress, apiKey string) error
}

// TokenWalletCreator 第三方代币钱包创建接口
type TokenWalletCreator interface {
	CreateWallet(ctx context.Context) (*token.WalletResponse, error)
}

// TokenInput 项目代币配置请求
type TokenInput struct {
	Name                 string `json:"name"`
	Symbol               string `json:"symbol"`
	Description          string `json:"description"`
	ImageURL             string `json:"image_url"`
	Twitter              string `json:"twitter"`
	Telegram             string `json:"telegram"`
	Website              string `json:"website"`
	AllocationPercentage int    `json:"allocation_percentage"`
}

// TokenLogic 项目代币业务逻辑
type TokenLogic struct {
	tokens   TokenStore
	projects ProjectStore
	creator  TokenWalletCreator
}

// NewTokenLogic 创建代币业务逻辑
func NewTokenLogic(tokens TokenStore, projects ProjectStore, creator TokenWalletCreator) *TokenLogic {
	return &TokenLogic{tokens: tokens, projects: projects, creator: creator}
}

// ConfigureToken 保存项目的代币配置，仅限项目创建者
func (t *TokenLogic) ConfigureToken(projectId, requesterWallet string, input *TokenInput) (*model.ProjectTokenModel, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, NewValidationError("代币名称不能为空")
	}
	if strings.TrimSpace(input.Symbol) == "" {
		return nil, NewValidationError("代币符号不能为空")
	}
	if input.AllocationPercentage < 0 || input.AllocationPercentage > 100 {
		return nil, NewValidationError("代币分配比例必须在0-100之间")
	}

	project, err := t.projects.GetById(projectId)
	if err != nil {
		return nil, err
	}
	if project.CreatorWallet != requesterWallet {
		return nil, ErrNotCreator
	}

	record := &model.ProjectTokenModel{
		ProjectId:            projectId,
		Name:                 input.Name,
		Symbol:               input.Symbol,
		Description:          input.Description,
		ImageURL:             input.ImageURL,
		Twitter:              input.Twitter,
		Telegram:             input.Telegram,
		Website:              input.Website,
		AllocationPercentage: input.AllocationPercentage,
	}
	if err := t.tokens.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// CreateTokenForProject 用第三方API为项目创建代币钱包。
// 失败只记日志并抛出，不做重试。已创建过的配置直接返回。
func (t *TokenLogic) CreateTokenForProject(ctx context.Context, projectId string) (*model.ProjectTokenModel, error) {
	record, err := t.tokens.GetByProject(projectId)
	if err != nil {
		return nil, err
	}
	if record.IsCreated {
		return record, nil
	}

	wallet, err := t.creator.CreateWallet(ctx)
	if err != nil {
		logger.Error("Failed to create token wallet for project %s: %v", projectId, err)
		return nil, err
	}

	if err := t.tokens.MarkCreated(record.Id, wallet.WalletPublicKey, wallet.ApiKey); err != nil {
		logger.Error("Failed to persist token wallet for project %s: %v", projectId, err)
		return nil, err
	}

	record.WalletAddress = wallet.WalletPublicKey
	record.ApiKey = wallet.ApiKey
	record.IsCreated = true
	return record, nil
}

// GetProjectToken 获取项目的代币配置
func (t *TokenLogic) GetProjectToken(projectId string) (*model.ProjectTokenModel, error) {
	return t.tokens.GetByProject(projectId)
}
