package logic

import (
	"context"

	"github.com/MatevzKlancar/phyacc/internal/solana"
)

// TokenBalanceReader 代币余额读取
type TokenBalanceReader interface {
	BalanceReader
	GetTokenBalance(ctx context.Context, address string) (float64, error)
}

// EligibilityResult 提交资格检查结果
type EligibilityResult struct {
	IsEligible   bool    `json:"is_eligible"`
	SolBalance   float64 `json:"sol_balance"`
	TokenBalance float64 `json:"token_balance"`
}

// EligibilityLogic 钱包提交资格检查：持有平台代币达到配置的最小数量才可提交项目
type EligibilityLogic struct {
	chain           TokenBalanceReader
	minTokenBalance float64
}

// NewEligibilityLogic 创建资格检查逻辑
func NewEligibilityLogic(chain TokenBalanceReader, minTokenBalance float64) *EligibilityLogic {
	return &EligibilityLogic{chain: chain, minTokenBalance: minTokenBalance}
}

// CheckEligibility 检查钱包是否有提交项目的资格
func (e *EligibilityLogic) CheckEligibility(ctx context.Context, address string) (*EligibilityResult, error) {
	if err := solana.ValidateAddress(address); err != nil {
		return nil, NewValidationError("钱包地址格式错误")
	}

	lamports, err := e.chain.GetBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	tokenBalance, err := e.chain.GetTokenBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	return &EligibilityResult{
		IsEligible:   tokenBalance >= e.minTokenBalance,
		SolBalance:   LamportsToSol(lamports),
		TokenBalance: tokenBalance,
	}, nil
}
