package chain

import (
	"math/big"
	"testing"

	"github.com/freelancedao/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func Test_Projector_StatusLabelsAreTotal(t *testing.T) {
	projector := NewProjector()

	require.Equal(t, "Active", projector.ProjectStatusLabel(entity.ProjectStatusActive))
	require.Equal(t, "Completed", projector.ProjectStatusLabel(entity.ProjectStatusCompleted))
	require.Equal(t, "Disputed", projector.ProjectStatusLabel(entity.ProjectStatusDisputed))
	require.Equal(t, "Cancelled", projector.ProjectStatusLabel(entity.ProjectStatusCancelled))
	require.Equal(t, "Unknown", projector.ProjectStatusLabel(entity.ProjectStatus(99)))

	require.Equal(t, "Pending", projector.MilestoneStatusLabel(entity.MilestoneStatusPending))
	require.Equal(t, "Submitted", projector.MilestoneStatusLabel(entity.MilestoneStatusSubmitted))
	require.Equal(t, "Approved", projector.MilestoneStatusLabel(entity.MilestoneStatusApproved))
	require.Equal(t, "Disputed", projector.MilestoneStatusLabel(entity.MilestoneStatusDisputed))
	require.Equal(t, "Unknown", projector.MilestoneStatusLabel(entity.MilestoneStatus(42)))

	require.Equal(t, "Client", projector.UserTypeLabel(entity.UserTypeClient))
	require.Equal(t, "Freelancer", projector.UserTypeLabel(entity.UserTypeFreelancer))
	require.Equal(t, "Both", projector.UserTypeLabel(entity.UserTypeBoth))
	require.Equal(t, "Unknown", projector.UserTypeLabel(entity.UserType(0)))
}

func Test_Projector_Reputation(t *testing.T) {
	projector := NewProjector()

	require.Equal(t, "0.0", projector.Reputation(0))
	require.Equal(t, "4.4", projector.Reputation(435))
	require.Equal(t, "4.3", projector.Reputation(434))
	require.Equal(t, "5.0", projector.Reputation(500))
	require.Equal(t, "1.0", projector.Reputation(100))
}

func Test_Projector_ProjectView(t *testing.T) {
	projector := NewProjector()

	view := projector.ProjectView(&entity.Project{
		ID:           12,
		Client:       "0x4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e",
		Freelancer:   "0x0000000000000000000000000000000000000000",
		PaymentToken: "0x0000000000000000000000000000000000000000",
		TotalAmount:  big.NewInt(1000),
		PlatformFee:  big.NewInt(30),
		Status:       entity.ProjectStatusActive,
	})

	require.Equal(t, "0x4b3a...1c2e", view.ClientShort)
	require.False(t, view.Assigned)
	require.True(t, view.NativePayment)
	require.Equal(t, "1000", view.TotalAmount)
	require.Equal(t, "30", view.PlatformFee)
	require.Equal(t, "0", view.ReleasedAmount)
	require.Equal(t, "Active", view.StatusLabel)
}

func Test_zipApplications(t *testing.T) {
	applications := zipApplications(
		[]string{"0xAA", "0xBB"},
		[]string{"p1", "p2"},
		[]*big.Int{big.NewInt(10), big.NewInt(20)},
		[]*big.Int{big.NewInt(100), big.NewInt(200)},
		[]bool{false, true},
	)

	require.Len(t, applications, 2)
	require.Equal(t, "0xAA", applications[0].Freelancer)
	require.Equal(t, "p1", applications[0].Proposal)
	require.Equal(t, big.NewInt(10), applications[0].ProposedRate)
	require.Equal(t, int64(100), applications[0].AppliedAt.Unix())
	require.False(t, applications[0].IsAccepted)

	require.Equal(t, "0xBB", applications[1].Freelancer)
	require.Equal(t, "p2", applications[1].Proposal)
	require.Equal(t, big.NewInt(20), applications[1].ProposedRate)
	require.Equal(t, int64(200), applications[1].AppliedAt.Unix())
	require.True(t, applications[1].IsAccepted)
}
