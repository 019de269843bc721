package handler

import (
	"net/http"
	"strconv"

	"github.com/MatevzKlancar/phyacc/internal/logic"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(projectLogic *logic.ProjectLogic) *ProjectHandler {
	return &ProjectHandler{projectLogic: projectLogic}
}

// CreateProject 提交项目，从钱包池分配托管钱包
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input logic.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.projectLogic.CreateProject(&input)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "项目创建成功", project)
}

// GetProjects 分页获取项目列表
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	projects, total, err := h.projectLogic.GetProjects(page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"projects":  projects,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetProject 获取项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectLogic.GetProject(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", project)
}

// GetProjectFunding 实时查询项目募资进度
func (h *ProjectHandler) GetProjectFunding(c *gin.Context) {
	funding, err := h.projectLogic.GetProjectFunding(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", funding)
}
