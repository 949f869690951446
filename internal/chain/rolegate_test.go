package chain

import (
	"testing"

	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/pkg/ethutil"
	"github.com/stretchr/testify/require"
)

const (
	clientAddr     = "0x4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e"
	freelancerAddr = "0x9f8e7d6c9f8e7d6c9f8e7d6c9f8e7d6c9f8e7d6c"
	strangerAddr   = "0x1111111111111111111111111111111111111111"
)

func openProject() *entity.Project {
	return &entity.Project{
		ID:         1,
		Client:     clientAddr,
		Freelancer: ethutil.ZeroAddress,
		Status:     entity.ProjectStatusActive,
	}
}

func Test_RoleGate_Precedence(t *testing.T) {
	gate := NewRoleGate()
	project := openProject()

	// Nobody connected: nothing is allowed, not even registration.
	nobody := Actor{}
	require.False(t, gate.CanRegister(nobody).Allowed)
	require.False(t, gate.CanCreateProject(nobody).Allowed)
	require.False(t, gate.CanAssign(nobody, project).Allowed)

	// Connected but unregistered: only registration.
	unregistered := Actor{Address: strangerAddr}
	require.True(t, gate.CanRegister(unregistered).Allowed)
	require.False(t, gate.CanCreateProject(unregistered).Allowed)
	require.False(t, gate.CanApply(unregistered, project, nil).Allowed)

	// Registered: registering again is refused with a reason.
	registered := Actor{Address: strangerAddr, Registered: true, UserType: entity.UserTypeBoth}
	verdict := gate.CanRegister(registered)
	require.False(t, verdict.Allowed)
	require.NotEmpty(t, verdict.Reason)
}

func Test_RoleGate_ProjectOwnership(t *testing.T) {
	gate := NewRoleGate()
	project := openProject()

	owner := Actor{Address: clientAddr, Registered: true, UserType: entity.UserTypeClient}
	stranger := Actor{Address: strangerAddr, Registered: true, UserType: entity.UserTypeBoth}

	require.True(t, gate.CanAssign(owner, project).Allowed)
	require.False(t, gate.CanAssign(stranger, project).Allowed)

	// Address comparison ignores case.
	upper := Actor{
		Address:    "0x4B3A1C2E4B3A1C2E4B3A1C2E4B3A1C2E4B3A1C2E",
		Registered: true,
		UserType:   entity.UserTypeClient,
	}
	require.True(t, gate.CanAssign(upper, project).Allowed)

	// Once somebody is assigned, assigning is disabled with a reason.
	project.Freelancer = freelancerAddr
	verdict := gate.CanAssign(owner, project)
	require.False(t, verdict.Allowed)
	require.NotEmpty(t, verdict.Reason)
}

func Test_RoleGate_Milestones(t *testing.T) {
	gate := NewRoleGate()
	project := openProject()
	project.Freelancer = freelancerAddr

	owner := Actor{Address: clientAddr, Registered: true, UserType: entity.UserTypeClient}
	assignee := Actor{Address: freelancerAddr, Registered: true, UserType: entity.UserTypeFreelancer}
	stranger := Actor{Address: strangerAddr, Registered: true, UserType: entity.UserTypeBoth}

	pending := &entity.Milestone{ProjectID: 1, Index: 0, Status: entity.MilestoneStatusPending}
	submitted := &entity.Milestone{ProjectID: 1, Index: 1, Status: entity.MilestoneStatusSubmitted}
	approved := &entity.Milestone{ProjectID: 1, Index: 2, Status: entity.MilestoneStatusApproved}

	require.True(t, gate.CanSubmitMilestone(assignee, project, pending).Allowed)
	require.False(t, gate.CanSubmitMilestone(owner, project, pending).Allowed)
	require.False(t, gate.CanSubmitMilestone(assignee, project, submitted).Allowed)

	require.True(t, gate.CanApproveMilestone(owner, project, submitted).Allowed)
	require.False(t, gate.CanApproveMilestone(stranger, project, submitted).Allowed)
	require.False(t, gate.CanApproveMilestone(owner, project, pending).Allowed)
	require.False(t, gate.CanApproveMilestone(owner, project, approved).Allowed)
}

func Test_RoleGate_Apply(t *testing.T) {
	gate := NewRoleGate()
	project := openProject()

	freelancer := Actor{Address: freelancerAddr, Registered: true, UserType: entity.UserTypeFreelancer}
	clientOnly := Actor{Address: strangerAddr, Registered: true, UserType: entity.UserTypeClient}
	owner := Actor{Address: clientAddr, Registered: true, UserType: entity.UserTypeBoth}

	require.True(t, gate.CanApply(freelancer, project, nil).Allowed)
	require.False(t, gate.CanApply(clientOnly, project, nil).Allowed)
	require.False(t, gate.CanApply(owner, project, nil).Allowed)

	applied := []entity.Application{{Freelancer: freelancerAddr}}
	require.False(t, gate.CanApply(freelancer, project, applied).Allowed)
}

func Test_RoleGate_ForProject(t *testing.T) {
	gate := NewRoleGate()
	project := openProject()
	project.Freelancer = freelancerAddr

	milestones := []entity.Milestone{
		{ProjectID: 1, Index: 0, Status: entity.MilestoneStatusSubmitted},
		{ProjectID: 1, Index: 1, Status: entity.MilestoneStatusPending},
	}

	owner := Actor{Address: clientAddr, Registered: true, UserType: entity.UserTypeClient}
	verdicts := gate.ForProject(owner, project, milestones, nil)

	require.False(t, verdicts.Apply.Allowed)
	require.False(t, verdicts.Assign.Allowed)
	require.True(t, verdicts.Rate.Allowed)
	require.True(t, verdicts.Approve[0].Allowed)
	require.False(t, verdicts.Approve[1].Allowed)
	require.False(t, verdicts.Submit[0].Allowed)
}
