package handler

import (
	"net/http"

	"github.com/MatevzKlancar/phyacc/internal/logic"
	"github.com/gin-gonic/gin"
)

type UpdateHandler struct {
	updateLogic *logic.UpdateLogic
}

func NewUpdateHandler(updateLogic *logic.UpdateLogic) *UpdateHandler {
	return &UpdateHandler{updateLogic: updateLogic}
}

// CreateUpdateRequest 发布项目动态请求
type CreateUpdateRequest struct {
	RequesterWallet string `json:"requester_wallet" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Content         string `json:"content" binding:"required"`
}

// CreateUpdate 发布项目动态
func (h *UpdateHandler) CreateUpdate(c *gin.Context) {
	var req CreateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	update, err := h.updateLogic.CreateUpdate(c.Param("id"), req.RequesterWallet, req.Title, req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "动态发布成功", update)
}

// GetProjectUpdates 获取项目动态列表
func (h *UpdateHandler) GetProjectUpdates(c *gin.Context) {
	updates, err := h.updateLogic.GetProjectUpdates(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", updates)
}
