package solana

import (
	"context"
	"errors"
	"fmt"

	"github.com/MatevzKlancar/phyacc/internal/config"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Client Solana RPC客户端封装
type Client struct {
	rpc       *rpc.Client
	tokenMint *solana.PublicKey
}

// Init 根据配置初始化RPC客户端
func Init(cfg config.SolanaConfig) (*Client, error) {
	if cfg.RpcUrl == "" {
		return nil, errors.New("solana.rpc_url is empty in config")
	}

	client := &Client{rpc: rpc.New(cfg.RpcUrl)}

	if cfg.TokenMint != "" {
		mint, err := solana.PublicKeyFromBase58(cfg.TokenMint)
		if err != nil {
			return nil, fmt.Errorf("invalid solana.token_mint: %w", err)
		}
		client.tokenMint = &mint
	}

	return client, nil
}

// ValidateAddress 校验base58地址格式
func ValidateAddress(address string) error {
	_, err := solana.PublicKeyFromBase58(address)
	return err
}

// GetBalance 查询账户的lamports余额
func (c *Client) GetBalance(ctx context.Context, address string) (uint64, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0, fmt.Errorf("invalid address %s: %w", address, err)
	}

	result, err := c.rpc.GetBalance(ctx, pubkey, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for %s: %w", address, err)
	}
	return result.Value, nil
}

// GetBalances 批量查询账户的lamports余额。
// 返回切片与输入地址一一对应，不存在的账户余额为0。
func (c *Client) GetBalances(ctx context.Context, addresses []string) ([]uint64, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	pubkeys := make([]solana.PublicKey, 0, len(addresses))
	for _, address := range addresses {
		pubkey, err := solana.PublicKeyFromBase58(address)
		if err != nil {
			return nil, fmt.Errorf("invalid address %s: %w", address, err)
		}
		pubkeys = append(pubkeys, pubkey)
	}

	result, err := c.rpc.GetMultipleAccounts(ctx, pubkeys...)
	if err != nil {
		return nil, fmt.Errorf("failed to get multiple accounts: %w", err)
	}

	balances := make([]uint64, len(addresses))
	for i, account := range result.Value {
		if account != nil {
			balances[i] = account.Lamports
		}
	}
	return balances, nil
}

// GetTokenBalance 查询账户持有的平台代币余额（各token account余额求和）。
// 未配置代币mint时返回0。
func (c *Client) GetTokenBalance(ctx context.Context, address string) (float64, error) {
	if c.tokenMint == nil {
		return 0, nil
	}

	owner, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0, fmt.Errorf("invalid address %s: %w", address, err)
	}

	accounts, err := c.rpc.GetTokenAccountsByOwner(ctx, owner, &rpc.GetTokenAccountsConfig{
		Mint: c.tokenMint,
	}, &rpc.GetTokenAccountsOpts{
		Encoding: solana.EncodingBase64,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get token accounts for %s: %w", address, err)
	}

	var total float64
	for _, account := range accounts.Value {
		balance, err := c.rpc.GetTokenAccountBalance(ctx, account.Pubkey, rpc.CommitmentConfirmed)
		if err != nil {
			return 0, fmt.Errorf("failed to get token account balance: %w", err)
		}
		if balance.Value != nil && balance.Value.UiAmount != nil {
			total += *balance.Value.UiAmount
		}
	}
	return total, nil
}
