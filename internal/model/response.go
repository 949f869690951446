package model

import (
	"github.com/freelancedao/backend/internal/chain"
	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/pkg/enum"
)

type ResolveAddressesResponse struct {
	chain.ContractAddresses
}

type GetProjectResponse struct {
	Project chain.ProjectView `json:"project"`
}

// GetProjectBoardResponse carries everything a project page renders in one
// round trip: the project, its milestones and applications, and the verdicts
// for the requesting actor.
type GetProjectBoardResponse struct {
	Project      chain.ProjectView       `json:"project"`
	Milestones   []chain.MilestoneView   `json:"milestones"`
	Applications []chain.ApplicationView `json:"applications"`
	Verdicts     chain.ProjectVerdicts   `json:"verdicts"`
	Register     chain.Verdict           `json:"register"`
}

type GetProjectsResponse struct {
	Projects []chain.ProjectView `json:"projects"`
}

type GetMilestonesResponse struct {
	Milestones []chain.MilestoneView `json:"milestones"`
}

type GetApplicationsResponse struct {
	Applications []chain.ApplicationView `json:"applications"`
}

type GetUserResponse struct {
	Profile chain.ProfileView `json:"profile"`

	// Role flags as the registry contract reports them, so callers do not
	// re-derive roles from the numeric user type.
	IsClient     bool `json:"is_client"`
	IsFreelancer bool `json:"is_freelancer"`
}

type GetUserRatingsResponse struct {
	Ratings []chain.RatingView `json:"ratings"`
}

type Action struct {
	ID         string `json:"id"`
	ChainID    int64  `json:"chain_id"`
	Kind       string `json:"kind"`
	Actor      string `json:"actor"`
	TxHash     string `json:"tx_hash"`
	State      string `json:"state"`
	StateLabel string `json:"state_label"`
	Reason     string `json:"reason,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}

func ConvertAction(record *entity.ActionRecord) Action {
	return Action{
		ID:         record.ID,
		ChainID:    record.ChainID,
		Kind:       enum.ToString(record.Kind),
		Actor:      record.Actor,
		TxHash:     record.TxHash,
		State:      string(record.State),
		StateLabel: enum.ToString(record.State),
		Reason:     record.Reason,
		CreatedAt:  record.CreatedAt.Unix(),
	}
}

type GetActionResponse struct {
	Action
}

type GetActionsResponse struct {
	Actions []Action `json:"actions"`
}

type SubmitActionResponse struct {
	ActionID   string `json:"action_id"`
	TxHash     string `json:"tx_hash"`
	State      string `json:"state"`
	StateLabel string `json:"state_label"`
}

func ConvertSubmitResult(result *chain.SubmitResult) SubmitActionResponse {
	return SubmitActionResponse{
		ActionID:   result.ActionID,
		TxHash:     result.TxHash,
		State:      string(result.State),
		StateLabel: enum.ToString(result.State),
	}
}

type RegisterUserResponse struct {
	SubmitActionResponse
}

type CreateProjectResponse struct {
	SubmitActionResponse

	TotalAmount string `json:"total_amount"`
	PlatformFee string `json:"platform_fee"`
}

type ApplyToProjectResponse struct {
	SubmitActionResponse
}

type AssignFreelancerResponse struct {
	SubmitActionResponse
}

type SubmitMilestoneResponse struct {
	SubmitActionResponse
}

type ApproveMilestoneResponse struct {
	SubmitActionResponse
}

type RateUserResponse struct {
	SubmitActionResponse
}
