package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/MatevzKlancar/phyacc/internal/model"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet(id string) (*model.PlatformWalletModel, string) {
	address := solana.NewWallet().PublicKey().String()
	return &model.PlatformWalletModel{Id: id, PublicKey: address}, address
}

func validInput() *CreateProjectInput {
	return &CreateProjectInput{
		Title:         "X",
		Description:   "physical AI robotics project",
		FundingGoal:   10,
		CreatorWallet: solana.NewWallet().PublicKey().String(),
	}
}

// 钱包池不变式: is_assigned == false 当且仅当 assigned_project_id 为空
func assertPoolInvariant(t *testing.T, pool *fakePool) {
	t.Helper()
	for _, w := range pool.wallets {
		if w.IsAssigned {
			assert.NotNil(t, w.AssignedProjectId, "assigned wallet %s must reference a project", w.Id)
		} else {
			assert.Nil(t, w.AssignedProjectId, "unassigned wallet %s must not reference a project", w.Id)
		}
	}
}

func TestCreateProjectAssignsEscrowWallet(t *testing.T) {
	wallet, address := newTestWallet("w1")
	pool := &fakePool{wallets: []*model.PlatformWalletModel{wallet}}
	projects := &fakeProjects{}
	milestones := &fakeMilestones{}
	p := NewProjectLogic(pool, projects, milestones, &fakeChain{})

	project, err := p.CreateProject(validInput())
	require.NoError(t, err)
	require.NotEmpty(t, project.Id)

	assert.Equal(t, address, project.WalletAddress)
	assert.True(t, wallet.IsAssigned)
	require.NotNil(t, wallet.AssignedProjectId)
	assert.Equal(t, project.Id, *wallet.AssignedProjectId)
	assert.Equal(t, 1, pool.finalizeCalls)
	assertPoolInvariant(t, pool)

	// 池中没有其他钱包，第二次提交必须失败
	_, err = p.CreateProject(validInput())
	assert.ErrorIs(t, err, ErrNoWalletsAvailable)
	assert.Len(t, projects.projects, 1)
}

func TestCreateProjectEmptyPool(t *testing.T) {
	pool := &fakePool{}
	projects := &fakeProjects{}
	p := NewProjectLogic(pool, projects, &fakeMilestones{}, &fakeChain{})

	_, err := p.CreateProject(validInput())
	assert.ErrorIs(t, err, ErrNoWalletsAvailable)
	assert.Empty(t, projects.projects)
	assertPoolInvariant(t, pool)
}

func TestCreateProjectReleasesWalletOnStoreFailure(t *testing.T) {
	wallet, _ := newTestWallet("w1")
	pool := &fakePool{wallets: []*model.PlatformWalletModel{wallet}}
	storeErr := errors.New("insert failed")
	projects := &fakeProjects{createErr: storeErr}
	p := NewProjectLogic(pool, projects, &fakeMilestones{}, &fakeChain{})

	_, err := p.CreateProject(validInput())
	assert.ErrorIs(t, err, storeErr)

	// 补偿释放生效，钱包回到未分配状态
	assert.Equal(t, 1, pool.releaseCalls)
	assert.False(t, wallet.IsAssigned)
	assert.Nil(t, wallet.AssignedProjectId)
	assertPoolInvariant(t, pool)
}

func TestCreateProjectReleaseFailureKeepsOriginalError(t *testing.T) {
	wallet, _ := newTestWallet("w1")
	pool := &fakePool{
		wallets:    []*model.PlatformWalletModel{wallet},
		releaseErr: errors.New("release failed"),
	}
	storeErr := errors.New("insert failed")
	p := NewProjectLogic(pool, &fakeProjects{createErr: storeErr}, &fakeMilestones{}, &fakeChain{})

	_, err := p.CreateProject(validInput())
	// 调用方拿到的是原始错误，释放失败只记日志
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, 1, pool.releaseCalls)
	// 钱包滞留在已分配状态，等待运维对账
	assert.True(t, wallet.IsAssigned)
}

func TestCreateProjectFinalizeFailureIsSwallowed(t *testing.T) {
	wallet, address := newTestWallet("w1")
	pool := &fakePool{
		wallets:     []*model.PlatformWalletModel{wallet},
		finalizeErr: errors.New("finalize failed"),
	}
	projects := &fakeProjects{}
	p := NewProjectLogic(pool, projects, &fakeMilestones{}, &fakeChain{})

	// 项目行此时已可用，回写失败不影响结果
	project, err := p.CreateProject(validInput())
	require.NoError(t, err)
	assert.Equal(t, address, project.WalletAddress)
	assert.Len(t, projects.projects, 1)
}

func TestCreateProjectValidation(t *testing.T) {
	wallet, _ := newTestWallet("w1")
	pool := &fakePool{wallets: []*model.PlatformWalletModel{wallet}}
	p := NewProjectLogic(pool, &fakeProjects{}, &fakeMilestones{}, &fakeChain{})

	cases := []struct {
		name   string
		mutate func(*CreateProjectInput)
	}{
		{"empty title", func(in *CreateProjectInput) { in.Title = "  " }},
		{"empty description", func(in *CreateProjectInput) { in.Description = "" }},
		{"zero funding goal", func(in *CreateProjectInput) { in.FundingGoal = 0 }},
		{"negative funding goal", func(in *CreateProjectInput) { in.FundingGoal = -5 }},
		{"missing creator wallet", func(in *CreateProjectInput) { in.CreatorWallet = "" }},
		{"malformed creator wallet", func(in *CreateProjectInput) { in.CreatorWallet = "not-base58-0OIl" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(input)
			_, err := p.CreateProject(input)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
			// 校验失败不应触碰钱包池
			assert.False(t, wallet.IsAssigned)
		})
	}
}

func TestCreateProjectWithMilestones(t *testing.T) {
	wallet, _ := newTestWallet("w1")
	pool := &fakePool{wallets: []*model.PlatformWalletModel{wallet}}
	milestones := &fakeMilestones{}
	p := NewProjectLogic(pool, &fakeProjects{}, milestones, &fakeChain{})

	input := validInput()
	input.Milestones = []MilestoneInput{
		{Title: "prototype", TargetDate: testDate(2026, 1), OrderIndex: 0},
		{Title: "production", TargetDate: testDate(2026, 6), OrderIndex: 1},
	}

	project, err := p.CreateProject(input)
	require.NoError(t, err)

	stored, err := milestones.ListByProject(project.Id)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestGetProjectFunding(t *testing.T) {
	wallet, address := newTestWallet("w1")
	pool := &fakePool{wallets: []*model.PlatformWalletModel{wallet}}
	projects := &fakeProjects{}
	chain := &fakeChain{balances: map[string]uint64{
		address: 5 * uint64(solana.LAMPORTS_PER_SOL),
	}}
	p := NewProjectLogic(pool, projects, &fakeMilestones{}, chain)

	project, err := p.CreateProject(validInput())
	require.NoError(t, err)

	funding, err := p.GetProjectFunding(context.Background(), project.Id)
	require.NoError(t, err)
	assert.Equal(t, 5.0, funding.Balance)
	assert.Equal(t, 50.0, funding.FundingPercentage)
	assert.False(t, funding.IsFullyFunded)
}
