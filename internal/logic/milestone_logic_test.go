package logic

import (
	"testing"
	"time"

	"github.com/MatevzKlancar/phyacc/internal/model"
	"github.com/MatevzKlancar/phyacc/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMilestoneFixture(t *testing.T) (*MilestoneLogic, *fakeMilestones, *model.ProjectModel) {
	t.Helper()
	projects := &fakeProjects{}
	project := &model.ProjectModel{
		Title:         "X",
		Description:   "d",
		FundingGoal:   10,
		CreatorWallet: "CreatorAddr",
		WalletAddress: "EscrowAddr",
	}
	require.NoError(t, projects.Create(project))

	milestones := &fakeMilestones{}
	return NewMilestoneLogic(milestones, projects), milestones, project
}

func TestMilestonesSortedByOrderIndex(t *testing.T) {
	m, _, project := newMilestoneFixture(t)

	// 乱序插入
	for _, spec := range []struct {
		title string
		order int
	}{
		{"third", 2},
		{"first", 0},
		{"second", 1},
	} {
		_, err := m.CreateMilestone(project.Id, project.CreatorWallet, &MilestoneInput{
			Title:      spec.title,
			TargetDate: testDate(2026, 3),
			OrderIndex: spec.order,
		})
		require.NoError(t, err)
	}

	sorted, err := m.GetProjectMilestones(project.Id)
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, "first", sorted[0].Title)
	assert.Equal(t, "second", sorted[1].Title)
	assert.Equal(t, "third", sorted[2].Title)
}

func TestMilestonesEqualOrderKeepsInsertionOrder(t *testing.T) {
	m, _, project := newMilestoneFixture(t)

	for _, title := range []string{"a", "b", "c"} {
		_, err := m.CreateMilestone(project.Id, project.CreatorWallet, &MilestoneInput{
			Title:      title,
			TargetDate: testDate(2026, 3),
			OrderIndex: 0,
		})
		require.NoError(t, err)
	}

	sorted, err := m.GetProjectMilestones(project.Id)
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, "a", sorted[0].Title)
	assert.Equal(t, "b", sorted[1].Title)
	assert.Equal(t, "c", sorted[2].Title)
}

func TestCompleteMilestoneIsMonotonic(t *testing.T) {
	m, _, project := newMilestoneFixture(t)

	created, err := m.CreateMilestone(project.Id, project.CreatorWallet, &MilestoneInput{
		Title:      "prototype",
		TargetDate: testDate(2026, 3),
	})
	require.NoError(t, err)
	assert.Nil(t, created.CompletedAt)

	completed, err := m.CompleteMilestone(created.Id, project.CreatorWallet)
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	firstCompletion := *completed.CompletedAt

	// 重复完成不改变完成时间
	time.Sleep(5 * time.Millisecond)
	again, err := m.CompleteMilestone(created.Id, project.CreatorWallet)
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.Equal(t, firstCompletion, *again.CompletedAt)
}

func TestCompleteMilestoneCreatorOnly(t *testing.T) {
	m, _, project := newMilestoneFixture(t)

	created, err := m.CreateMilestone(project.Id, project.CreatorWallet, &MilestoneInput{
		Title:      "prototype",
		TargetDate: testDate(2026, 3),
	})
	require.NoError(t, err)

	_, err = m.CompleteMilestone(created.Id, "SomeoneElse")
	assert.ErrorIs(t, err, ErrNotCreator)
}

func TestCreateMilestoneValidation(t *testing.T) {
	m, _, project := newMilestoneFixture(t)

	_, err := m.CreateMilestone(project.Id, project.CreatorWallet, &MilestoneInput{
		Title: "no date",
	})
	assert.True(t, IsValidationError(err))

	_, err = m.CreateMilestone(project.Id, project.CreatorWallet, &MilestoneInput{
		TargetDate: testDate(2026, 3),
	})
	assert.True(t, IsValidationError(err))

	_, err = m.CreateMilestone("missing-project", project.CreatorWallet, &MilestoneInput{
		Title:      "x",
		TargetDate: testDate(2026, 3),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
