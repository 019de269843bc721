package logic

import (
	"sort"
	"strings"

	"github.com/MatevzKlancar/phyacc/internal/model"
)

// MilestoneLogic 里程碑业务逻辑
type MilestoneLogic struct {
	milestones MilestoneStore
	projects   ProjectStore
}

// NewMilestoneLogic 创建里程碑业务逻辑
func NewMilestoneLogic(milestones MilestoneStore, projects ProjectStore) *MilestoneLogic {
	return &MilestoneLogic{milestones: milestones, projects: projects}
}

// CreateMilestone 为项目创建里程碑，仅限项目创建者
func (m *MilestoneLogic) CreateMilestone(projectId, requesterWallet string, input *MilestoneInput) (*model.ProjectMilestoneModel, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, NewValidationError("里程碑标题不能为空")
	}
	if input.TargetDate.IsZero() {
		return nil, NewValidationError("里程碑目标日期不能为空")
	}

	project, err := m.projects.GetById(projectId)
	if err != nil {
		return nil, err
	}
	if project.CreatorWallet != requesterWallet {
		return nil, ErrNotCreator
	}

	milestone := &model.ProjectMilestoneModel{
		ProjectId:   projectId,
		Title:       input.Title,
		Description: input.Description,
		TargetDate:  input.TargetDate,
		OrderIndex:  input.OrderIndex,
	}
	if err := m.milestones.Create(milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

// GetProjectMilestones 获取项目里程碑，按order_index排序展示。
// 稳定排序保证order_index相同时保持插入顺序。
func (m *MilestoneLogic) GetProjectMilestones(projectId string) ([]model.ProjectMilestoneModel, error) {
	milestones, err := m.milestones.ListByProject(projectId)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].OrderIndex < milestones[j].OrderIndex
	})
	return milestones, nil
}

// CompleteMilestone 标记里程碑完成，仅限项目创建者。
// 完成时间只写一次，已完成的里程碑重复调用不产生任何变化。
func (m *MilestoneLogic) CompleteMilestone(milestoneId, requesterWallet string) (*model.ProjectMilestoneModel, error) {
	milestone, err := m.milestones.GetById(milestoneId)
	if err != nil {
		return nil, err
	}

	project, err := m.projects.GetById(milestone.ProjectId)
	if err != nil {
		return nil, err
	}
	if project.CreatorWallet != requesterWallet {
		return nil, ErrNotCreator
	}

	if milestone.CompletedAt != nil {
		return milestone, nil
	}

	if err := m.milestones.MarkCompleted(milestoneId); err != nil {
		return nil, err
	}
	// 完成时间由存储层写入，重新读取拿到落库值
	return m.milestones.GetById(milestoneId)
}
