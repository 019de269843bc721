package handler

import (
	"net/http"

	"github.com/MatevzKlancar/phyacc/internal/logic"
	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	tokenLogic *logic.TokenLogic
}

func NewTokenHandler(tokenLogic *logic.TokenLogic) *TokenHandler {
	return &TokenHandler{tokenLogic: tokenLogic}
}

// ConfigureTokenRequest 配置项目代币请求
type ConfigureTokenRequest struct {
	RequesterWallet      string `json:"requester_wallet" binding:"required"`
	Name                 string `json:"name" binding:"required"`
	Symbol               string `json:"symbol" binding:"required"`
	Description          string `json:"description"`
	ImageURL             string `json:"image_url"`
	Twitter              string `json:"twitter"`
	Telegram             string `json:"telegram"`
	Website              string `json:"website"`
	AllocationPercentage int    `json:"allocation_percentage"`
}

// ConfigureToken 保存项目的代币配置
func (h *TokenHandler) ConfigureToken(c *gin.Context) {
	var req ConfigureTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.tokenLogic.ConfigureToken(c.Param("id"), req.RequesterWallet, &logic.TokenInput{
		Name:                 req.Name,
		Symbol:               req.Symbol,
		Description:          req.Description,
		ImageURL:             req.ImageURL,
		Twitter:              req.Twitter,
		Telegram:             req.Telegram,
		Website:              req.Website,
		AllocationPercentage: req.AllocationPercentage,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "代币配置已保存", record)
}

// CreateToken 调用第三方API为项目创建代币钱包
func (h *TokenHandler) CreateToken(c *gin.Context) {
	record, err := h.tokenLogic.CreateTokenForProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "代币钱包创建成功", record)
}

// GetProjectToken 获取项目的代币配置
func (h *TokenHandler) GetProjectToken(c *gin.Context) {
	record, err := h.tokenLogic.GetProjectToken(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", record)
}
