package handler

import (
	"net/http"

	"github.com/MatevzKlancar/phyacc/internal/repository"
	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletRepo *repository.WalletRepository
}

func NewWalletHandler(walletRepo *repository.WalletRepository) *WalletHandler {
	return &WalletHandler{walletRepo: walletRepo}
}

// GetProjectWallet 查询分配给项目的托管钱包
func (h *WalletHandler) GetProjectWallet(c *gin.Context) {
	wallet, err := h.walletRepo.GetProjectWallet(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", wallet)
}

// GetPoolStats 钱包池使用统计（运维接口）
func (h *WalletHandler) GetPoolStats(c *gin.Context) {
	stats, err := h.walletRepo.Stats()
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", stats)
}

// GenerateWalletsRequest 批量生成钱包请求
type GenerateWalletsRequest struct {
	Count int `json:"count" binding:"required,min=1,max=100"`
}

// GeneratedWallet 生成的钱包，私钥只在响应里出现一次，需离线保管
type GeneratedWallet struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// GenerateWallets 批量生成托管钱包并入池（运维接口）。
// 私钥不入库，仅随响应返回一次。
func (h *WalletHandler) GenerateWallets(c *gin.Context) {
	var req GenerateWalletsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	generated := make([]GeneratedWallet, 0, req.Count)
	publicKeys := make([]string, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		wallet := solana.NewWallet()
		generated = append(generated, GeneratedWallet{
			PublicKey:  wallet.PublicKey().String(),
			PrivateKey: wallet.PrivateKey.String(),
		})
		publicKeys = append(publicKeys, wallet.PublicKey().String())
	}

	if _, err := h.walletRepo.CreateBatch(publicKeys); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "钱包生成成功，请立即离线保存私钥", generated)
}
