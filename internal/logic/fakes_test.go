package logic

import (
	"context"
	"sort"
	"time"

	"github.com/MatevzKlancar/phyacc/internal/model"
	"github.com/MatevzKlancar/phyacc/internal/repository"
	"github.com/google/uuid"
)

// fakePool 内存钱包池，行为与 repository.WalletRepository 一致
type fakePool struct {
	wallets       []*model.PlatformWalletModel
	finalizeErr   error
	releaseErr    error
	finalizeCalls int
	releaseCalls  int
}

func (f *fakePool) ReserveAvailable() (*model.PlatformWalletModel, error) {
	for _, w := range f.wallets {
		if !w.IsAssigned {
			w.IsAssigned = true
			reserved := *w
			return &reserved, nil
		}
	}
	return nil, repository.ErrPoolExhausted
}

func (f *fakePool) Finalize(walletId, projectId string) error {
	f.finalizeCalls++
	if f.finalizeErr != nil {
		return f.finalizeErr
	}
	for _, w := range f.wallets {
		if w.Id == walletId {
			w.IsAssigned = true
			pid := projectId
			w.AssignedProjectId = &pid
		}
	}
	return nil
}

func (f *fakePool) Release(walletId string) error {
	f.releaseCalls++
	if f.releaseErr != nil {
		return f.releaseErr
	}
	for _, w := range f.wallets {
		if w.Id == walletId {
			w.IsAssigned = false
			w.AssignedProjectId = nil
		}
	}
	return nil
}

func (f *fakePool) find(id string) *model.PlatformWalletModel {
	for _, w := range f.wallets {
		if w.Id == id {
			return w
		}
	}
	return nil
}

// fakeProjects 内存项目存储
type fakeProjects struct {
	projects  []*model.ProjectModel
	createErr error
}

func (f *fakeProjects) Create(project *model.ProjectModel) error {
	if f.createErr != nil {
		return f.createErr
	}
	if project.Id == "" {
		project.Id = uuid.NewString()
	}
	project.CreatedAt = time.Now()
	stored := *project
	f.projects = append(f.projects, &stored)
	return nil
}

func (f *fakeProjects) GetById(id string) (*model.ProjectModel, error) {
	for _, p := range f.projects {
		if p.Id == id {
			found := *p
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProjects) List(page, pageSize int) ([]model.ProjectModel, int64, error) {
	result := make([]model.ProjectModel, 0, len(f.projects))
	for _, p := range f.projects {
		result = append(result, *p)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, int64(len(result)), nil
}

// fakeMilestones 内存里程碑存储，保持插入顺序
type fakeMilestones struct {
	milestones []*model.ProjectMilestoneModel
	createErr  error
}

func (f *fakeMilestones) Create(milestone *model.ProjectMilestoneModel) error {
	if f.createErr != nil {
		return f.createErr
	}
	if milestone.Id == "" {
		milestone.Id = uuid.NewString()
	}
	milestone.CreatedAt = time.Now()
	stored := *milestone
	f.milestones = append(f.milestones, &stored)
	return nil
}

func (f *fakeMilestones) GetById(id string) (*model.ProjectMilestoneModel, error) {
	for _, m := range f.milestones {
		if m.Id == id {
			found := *m
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMilestones) ListByProject(projectId string) ([]model.ProjectMilestoneModel, error) {
	result := make([]model.ProjectMilestoneModel, 0)
	for _, m := range f.milestones {
		if m.ProjectId == projectId {
			result = append(result, *m)
		}
	}
	return result, nil
}

func (f *fakeMilestones) MarkCompleted(id string) error {
	for _, m := range f.milestones {
		if m.Id == id && m.CompletedAt == nil {
			now := time.Now()
			m.CompletedAt = &now
		}
	}
	return nil
}

func testDate(year int, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// fakeChain 内存链上余额
type fakeChain struct {
	balances      map[string]uint64
	tokenBalances map[string]float64
	err           error
}

func (f *fakeChain) GetBalance(ctx context.Context, address string) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.balances[address], nil
}

func (f *fakeChain) GetBalances(ctx context.Context, addresses []string) ([]uint64, error) {
	if f.err != nil {
		return nil, f.err
	}
	balances := make([]uint64, len(addresses))
	for i, address := range addresses {
		balances[i] = f.balances[address]
	}
	return balances, nil
}

func (f *fakeChain) GetTokenBalance(ctx context.Context, address string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.tokenBalances[address], nil
}
