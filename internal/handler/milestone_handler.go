package handler

import (
	"net/http"
	"time"

	"github.com/MatevzKlancar/phyacc/internal/logic"
	"github.com/gin-gonic/gin"
)

type MilestoneHandler struct {
	milestoneLogic *logic.MilestoneLogic
}

func NewMilestoneHandler(milestoneLogic *logic.MilestoneLogic) *MilestoneHandler {
	return &MilestoneHandler{milestoneLogic: milestoneLogic}
}

// CreateMilestoneRequest 创建里程碑请求
type CreateMilestoneRequest struct {
	RequesterWallet string    `json:"requester_wallet" binding:"required"`
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	TargetDate      time.Time `json:"target_date" binding:"required"`
	OrderIndex      int       `json:"order_index"`
}

// CreateMilestone 为项目创建里程碑
func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	var req CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	milestone, err := h.milestoneLogic.CreateMilestone(c.Param("id"), req.RequesterWallet, &logic.MilestoneInput{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		OrderIndex:  req.OrderIndex,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "里程碑创建成功", milestone)
}

// GetProjectMilestones 获取项目里程碑列表
func (h *MilestoneHandler) GetProjectMilestones(c *gin.Context) {
	milestones, err := h.milestoneLogic.GetProjectMilestones(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", milestones)
}

// CompleteMilestoneRequest 完成里程碑请求
type CompleteMilestoneRequest struct {
	RequesterWallet string `json:"requester_wallet" binding:"required"`
}

// CompleteMilestone 标记里程碑完成
func (h *MilestoneHandler) CompleteMilestone(c *gin.Context) {
	var req CompleteMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	milestone, err := h.milestoneLogic.CompleteMilestone(c.Param("id"), req.RequesterWallet)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "里程碑已完成", milestone)
}
