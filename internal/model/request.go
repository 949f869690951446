package model

// Read requests bind from query strings, write requests from JSON bodies.
// Amounts travel as decimal strings in base units so no precision is lost.

type ResolveAddressesRequest struct {
	ChainID int64 `json:"chain_id" form:"chain_id"`
}

type GetProjectRequest struct {
	ChainID   int64 `json:"chain_id" form:"chain_id"`
	ProjectID int64 `json:"project_id" form:"project_id"`
}

type GetProjectBoardRequest struct {
	ChainID   int64  `json:"chain_id" form:"chain_id"`
	ProjectID int64  `json:"project_id" form:"project_id"`
	Actor     string `json:"actor" form:"actor"`
}

type GetAvailableProjectsRequest struct {
	ChainID int64 `json:"chain_id" form:"chain_id"`
}

type GetClientProjectsRequest struct {
	ChainID int64  `json:"chain_id" form:"chain_id"`
	Address string `json:"address" form:"address"`
}

type GetFreelancerProjectsRequest struct {
	ChainID int64  `json:"chain_id" form:"chain_id"`
	Address string `json:"address" form:"address"`
}

type GetMilestonesRequest struct {
	ChainID   int64 `json:"chain_id" form:"chain_id"`
	ProjectID int64 `json:"project_id" form:"project_id"`
}

type GetApplicationsRequest struct {
	ChainID   int64 `json:"chain_id" form:"chain_id"`
	ProjectID int64 `json:"project_id" form:"project_id"`
}

type GetUserRequest struct {
	ChainID int64  `json:"chain_id" form:"chain_id"`
	Address string `json:"address" form:"address"`
}

type GetUserRatingsRequest struct {
	ChainID int64  `json:"chain_id" form:"chain_id"`
	Address string `json:"address" form:"address"`
}

type GetActionRequest struct {
	ID string `json:"id" form:"id"`
}

type GetPendingActionsRequest struct {
	ChainID int64 `json:"chain_id" form:"chain_id"`
}

type GetActionsByActorRequest struct {
	ChainID int64  `json:"chain_id" form:"chain_id"`
	Actor   string `json:"actor" form:"actor"`
	Limit   int    `json:"limit" form:"limit"`
}

type RegisterUserRequest struct {
	ChainID          int64    `json:"chain_id"`
	Actor            string   `json:"actor"`
	UserType         uint8    `json:"user_type"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Bio              string   `json:"bio"`
	Skills           []string `json:"skills"`
	ProfileImageHash string   `json:"profile_image_hash"`
}

type MilestoneDefinition struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Deadline    int64  `json:"deadline"`
}

type CreateProjectRequest struct {
	ChainID      int64                 `json:"chain_id"`
	Actor        string                `json:"actor"`
	Freelancer   string                `json:"freelancer"`
	PaymentToken string                `json:"payment_token"`
	Description  string                `json:"description"`
	Milestones   []MilestoneDefinition `json:"milestones"`
}

type ApplyToProjectRequest struct {
	ChainID      int64  `json:"chain_id"`
	Actor        string `json:"actor"`
	ProjectID    int64  `json:"project_id"`
	Proposal     string `json:"proposal"`
	ProposedRate string `json:"proposed_rate"`
}

type AssignFreelancerRequest struct {
	ChainID    int64  `json:"chain_id"`
	Actor      string `json:"actor"`
	ProjectID  int64  `json:"project_id"`
	Freelancer string `json:"freelancer"`
}

type SubmitMilestoneRequest struct {
	ChainID        int64  `json:"chain_id"`
	Actor          string `json:"actor"`
	ProjectID      int64  `json:"project_id"`
	MilestoneIndex int64  `json:"milestone_index"`
	Deliverable    string `json:"deliverable"`
}

type ApproveMilestoneRequest struct {
	ChainID        int64  `json:"chain_id"`
	Actor          string `json:"actor"`
	ProjectID      int64  `json:"project_id"`
	MilestoneIndex int64  `json:"milestone_index"`
}

type RateUserRequest struct {
	ChainID    int64  `json:"chain_id"`
	Actor      string `json:"actor"`
	Freelancer string `json:"freelancer"`
	Score      uint8  `json:"score"`
	Comment    string `json:"comment"`
}
