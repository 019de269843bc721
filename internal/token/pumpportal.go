package token

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MatevzKlancar/phyacc/internal/config"
)

// WalletResponse pumpportal创建钱包接口的返回
type WalletResponse struct {
	ApiKey          string `json:"apiKey"`
	WalletPublicKey string `json:"walletPublicKey"`
	PrivateKey      string `json:"privateKey"`
}

// Client pumpportal代币创建API客户端
type Client struct {
	apiBase string
	http    *http.Client
}

// NewClient 创建API客户端
func NewClient(cfg config.TokenConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiBase: cfg.ApiBase,
		http:    &http.Client{Timeout: timeout},
	}
}

// CreateWallet 调用第三方API创建代币钱包
func (c *Client) CreateWallet(ctx context.Context) (*WalletResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+"/create-wallet", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build create-wallet request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call create-wallet API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("create-wallet API returned status %d", resp.StatusCode)
	}

	var wallet WalletResponse
	if err := json.NewDecoder(resp.Body).Decode(&wallet); err != nil {
		return nil, fmt.Errorf("failed to decode create-wallet response: %w", err)
	}
	if wallet.WalletPublicKey == "" || wallet.ApiKey == "" {
		return nil, fmt.Errorf("create-wallet API returned incomplete wallet data")
	}

	return &wallet, nil
}
