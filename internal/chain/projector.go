package chain

import (
	"fmt"
	"math/big"
	"time"

	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/pkg/enum"
	"github.com/freelancedao/backend/pkg/ethutil"
)

// UnknownLabel is rendered for any status code the deployed contract knows
// but this build does not. New codes may land on-chain ahead of a deploy, so
// projection never fails on them.
const UnknownLabel = "Unknown"

// Projector maps raw on-chain values to display-level semantics. Every method
// is pure; all state comes in through arguments.
type Projector struct{}

func NewProjector() Projector {
	return Projector{}
}

func (Projector) ProjectStatusLabel(status entity.ProjectStatus) string {
	return labelOrUnknown(status)
}

func (Projector) MilestoneStatusLabel(status entity.MilestoneStatus) string {
	return labelOrUnknown(status)
}

func (Projector) UserTypeLabel(userType entity.UserType) string {
	return labelOrUnknown(userType)
}

func (Projector) ActionStateLabel(state entity.ActionState) string {
	return labelOrUnknown(state)
}

// Reputation renders the on-chain x100 fixed-point score with one decimal
// place, rounding half up. 435 becomes "4.4", 0 becomes "0.0".
func (Projector) Reputation(score int64) string {
	tenths := (score + 5) / 10
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}

func (Projector) ShortAddress(address string) string {
	return ethutil.ShortenAddress(address)
}

func (p Projector) ProjectView(project *entity.Project) ProjectView {
	return ProjectView{
		ID:              project.ID,
		Client:          project.Client,
		ClientShort:     ethutil.ShortenAddress(project.Client),
		Freelancer:      project.Freelancer,
		FreelancerShort: ethutil.ShortenAddress(project.Freelancer),
		Assigned:        !ethutil.IsZeroAddress(project.Freelancer),
		PaymentToken:    project.PaymentToken,
		NativePayment:   ethutil.IsZeroAddress(project.PaymentToken),
		TotalAmount:     bigString(project.TotalAmount),
		PlatformFee:     bigString(project.PlatformFee),
		ReleasedAmount:  bigString(project.ReleasedAmount),
		Status:          uint8(project.Status),
		StatusLabel:     p.ProjectStatusLabel(project.Status),
		CreatedAt:       project.CreatedAt,
		Description:     project.Description,
		DisputeCount:    project.DisputeCount,
	}
}

func (p Projector) MilestoneView(milestone *entity.Milestone) MilestoneView {
	return MilestoneView{
		ProjectID:   milestone.ProjectID,
		Index:       milestone.Index,
		Description: milestone.Description,
		Amount:      bigString(milestone.Amount),
		Deadline:    milestone.Deadline,
		Status:      uint8(milestone.Status),
		StatusLabel: p.MilestoneStatusLabel(milestone.Status),
		Deliverable: milestone.Deliverable,
		SubmittedAt: milestone.SubmittedAt,
	}
}

func (p Projector) ApplicationView(application *entity.Application) ApplicationView {
	return ApplicationView{
		Freelancer:      application.Freelancer,
		FreelancerShort: ethutil.ShortenAddress(application.Freelancer),
		Proposal:        application.Proposal,
		ProposedRate:    bigString(application.ProposedRate),
		AppliedAt:       application.AppliedAt,
		IsAccepted:      application.IsAccepted,
	}
}

func (p Projector) ProfileView(profile *entity.UserProfile, reputation int64) ProfileView {
	return ProfileView{
		Address:          profile.Address,
		AddressShort:     ethutil.ShortenAddress(profile.Address),
		UserType:         uint8(profile.UserType),
		UserTypeLabel:    p.UserTypeLabel(profile.UserType),
		Name:             profile.Name,
		Email:            profile.Email,
		Bio:              profile.Bio,
		Skills:           profile.Skills,
		ProfileImageHash: profile.ProfileImageHash,
		RegisteredAt:     profile.RegisteredAt,
		Reputation:       p.Reputation(reputation),
	}
}

func (p Projector) RatingView(rating *entity.Rating) RatingView {
	return RatingView{
		Score:     rating.Score,
		Comment:   rating.Comment,
		Timestamp: rating.Timestamp,
	}
}

type ProjectView struct {
	ID              int64     `json:"id"`
	Client          string    `json:"client"`
	ClientShort     string    `json:"client_short"`
	Freelancer      string    `json:"freelancer"`
	FreelancerShort string    `json:"freelancer_short"`
	Assigned        bool      `json:"assigned"`
	PaymentToken    string    `json:"payment_token"`
	NativePayment   bool      `json:"native_payment"`
	TotalAmount     string    `json:"total_amount"`
	PlatformFee     string    `json:"platform_fee"`
	ReleasedAmount  string    `json:"released_amount"`
	Status          uint8     `json:"status"`
	StatusLabel     string    `json:"status_label"`
	CreatedAt       time.Time `json:"created_at"`
	Description     string    `json:"description"`
	DisputeCount    int64     `json:"dispute_count"`
}

type MilestoneView struct {
	ProjectID   int64     `json:"project_id"`
	Index       int64     `json:"index"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Deadline    time.Time `json:"deadline"`
	Status      uint8     `json:"status"`
	StatusLabel string    `json:"status_label"`
	Deliverable string    `json:"deliverable"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ApplicationView struct {
	Freelancer      string    `json:"freelancer"`
	FreelancerShort string    `json:"freelancer_short"`
	Proposal        string    `json:"proposal"`
	ProposedRate    string    `json:"proposed_rate"`
	AppliedAt       time.Time `json:"applied_at"`
	IsAccepted      bool      `json:"is_accepted"`
}

type ProfileView struct {
	Address          string    `json:"address"`
	AddressShort     string    `json:"address_short"`
	UserType         uint8     `json:"user_type"`
	UserTypeLabel    string    `json:"user_type_label"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Bio              string    `json:"bio"`
	Skills           []string  `json:"skills"`
	ProfileImageHash string    `json:"profile_image_hash"`
	RegisteredAt     time.Time `json:"registered_at"`
	Reputation       string    `json:"reputation"`
}

type RatingView struct {
	Score     uint8     `json:"score"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}

func labelOrUnknown[T comparable](value T) string {
	if label := enum.ToString(value); label != "" {
		return label
	}

	return UnknownLabel
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}

	return v.String()
}
