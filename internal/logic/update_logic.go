package logic

import (
	"strings"

	"github.com/MatevzKlancar/phyacc/internal/model"
)

// UpdateStore 项目动态存储操作
type UpdateStore interface {
	Create(update *model.ProjectUpdateModel) error
	ListByProject(projectId string) ([]model.ProjectUpdateModel, error)
}

// UpdateLogic 项目动态业务逻辑
type UpdateLogic struct {
	updates  UpdateStore
	projects ProjectStore
}

// NewUpdateLogic 创建项目动态业务逻辑
func NewUpdateLogic(updates UpdateStore, projects ProjectStore) *UpdateLogic {
	return &UpdateLogic{updates: updates, projects: projects}
}

// CreateUpdate 发布项目动态，仅限项目创建者
func (u *UpdateLogic) CreateUpdate(projectId, requesterWallet, title, content string) (*model.ProjectUpdateModel, error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("动态标题不能为空")
	}
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("动态内容不能为空")
	}

	project, err := u.projects.GetById(projectId)
	if err != nil {
		return nil, err
	}
	if project.CreatorWallet != requesterWallet {
		return nil, ErrNotCreator
	}

	update := &model.ProjectUpdateModel{
		ProjectId:     projectId,
		CreatorWallet: requesterWallet,
		Title:         title,
		Content:       content,
	}
	if err := u.updates.Create(update); err != nil {
		return nil, err
	}
	return update, nil
}

// GetProjectUpdates 获取项目动态列表
func (u *UpdateLogic) GetProjectUpdates(projectId string) ([]model.ProjectUpdateModel, error) {
	return u.updates.ListByProject(projectId)
}
