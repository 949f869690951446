package entity

import (
	"github.com/freelancedao/backend/pkg/enum"
)

// ActionKind names a state-mutating contract call.
type ActionKind string

var (
	ActionRegisterUser     = enum.New(ActionKind("register_user"), "RegisterUser")
	ActionCreateProject    = enum.New(ActionKind("create_project"), "CreateProject")
	ActionApplyToProject   = enum.New(ActionKind("apply_to_project"), "ApplyToProject")
	ActionAssignFreelancer = enum.New(ActionKind("assign_freelancer"), "AssignFreelancer")
	ActionSubmitMilestone  = enum.New(ActionKind("submit_milestone"), "SubmitMilestone")
	ActionApproveMilestone = enum.New(ActionKind("approve_milestone"), "ApproveMilestone")
	ActionRateUser         = enum.New(ActionKind("rate_user"), "RateUser")
)

// ActionState is the lifecycle of one submitted action. A record never moves
// backwards; Failed and Confirmed are terminal.
type ActionState string

var (
	ActionStateSubmitting = enum.New(ActionState("submitting"), "Submitting")
	ActionStatePending    = enum.New(ActionState("pending"), "PendingConfirmation")
	ActionStateConfirmed  = enum.New(ActionState("confirmed"), "Confirmed")
	ActionStateFailed     = enum.New(ActionState("failed"), "Failed")
)

// ActionRecord is the persisted audit trail of a submission. Key identifies
// the logical action (kind + resource), so duplicate in-flight submissions of
// the same action can be refused.
type ActionRecord struct {
	Base

	ChainID int64      `gorm:"index:idx_action_records_chain_key"`
	Kind    ActionKind `gorm:"index"`
	Key     string     `gorm:"index:idx_action_records_chain_key"`
	Actor   string     `gorm:"index"`
	TxHash  string     `gorm:"index"`

	State  ActionState
	Reason string
}
