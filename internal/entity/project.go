package entity

import (
	"math/big"
	"time"

	"github.com/freelancedao/backend/pkg/enum"
)

// ProjectStatus mirrors the on-chain status codes of FreelanceEscrow. The
// numeric values are part of the contract ABI and must not be reordered.
type ProjectStatus uint8

var (
	ProjectStatusActive    = enum.New(ProjectStatus(0), "Active")
	ProjectStatusCompleted = enum.New(ProjectStatus(1), "Completed")
	ProjectStatusDisputed  = enum.New(ProjectStatus(2), "Disputed")
	ProjectStatusCancelled = enum.New(ProjectStatus(3), "Cancelled")
)

// MilestoneStatus mirrors the on-chain milestone status codes.
type MilestoneStatus uint8

var (
	MilestoneStatusPending   = enum.New(MilestoneStatus(0), "Pending")
	MilestoneStatusSubmitted = enum.New(MilestoneStatus(1), "Submitted")
	MilestoneStatusApproved  = enum.New(MilestoneStatus(2), "Approved")
	MilestoneStatusDisputed  = enum.New(MilestoneStatus(3), "Disputed")
)

// Project is the named-field form of the getProject tuple. It is owned by the
// chain; this layer only observes it.
type Project struct {
	ID             int64         `json:"id"`
	Client         string        `json:"client"`
	Freelancer     string        `json:"freelancer"` // zero address until assigned
	PaymentToken   string        `json:"payment_token"`
	TotalAmount    *big.Int      `json:"total_amount"`
	PlatformFee    *big.Int      `json:"platform_fee"`
	Status         ProjectStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	Description    string        `json:"description"`
	ReleasedAmount *big.Int      `json:"released_amount"`
	DisputeCount   int64         `json:"dispute_count"`
}

// Milestone is the named-field form of the getMilestone tuple. Deliverable is
// only meaningful once the status reached Submitted.
type Milestone struct {
	ProjectID   int64           `json:"project_id"`
	Index       int64           `json:"index"`
	Description string          `json:"description"`
	Amount      *big.Int        `json:"amount"`
	Deadline    time.Time       `json:"deadline"`
	Status      MilestoneStatus `json:"status"`
	Deliverable string          `json:"deliverable"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// Application is one zipped record of the getProjectApplications parallel
// arrays.
type Application struct {
	Freelancer   string    `json:"freelancer"`
	Proposal     string    `json:"proposal"`
	ProposedRate *big.Int  `json:"proposed_rate"`
	AppliedAt    time.Time `json:"applied_at"`
	IsAccepted   bool      `json:"is_accepted"`
}
