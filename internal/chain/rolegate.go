package chain

import (
	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/pkg/ethutil"
)

// Verdict is the outcome of one authorization rule. A denied action carries
// the reason so callers can show a disabled control instead of hiding it.
type Verdict struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allowed() Verdict {
	return Verdict{Allowed: true}
}

func denied(reason string) Verdict {
	return Verdict{Allowed: false, Reason: reason}
}

// Actor is the already-fetched identity a verdict is computed for. An empty
// address means nobody is connected.
type Actor struct {
	Address    string
	Registered bool
	UserType   entity.UserType
}

func (a Actor) connected() bool {
	return a.Address != ""
}

func (a Actor) isClient() bool {
	return a.UserType == entity.UserTypeClient || a.UserType == entity.UserTypeBoth
}

func (a Actor) isFreelancer() bool {
	return a.UserType == entity.UserTypeFreelancer || a.UserType == entity.UserTypeBoth
}

const (
	reasonConnectWallet   = "Connect a wallet first"
	reasonRegisterFirst   = "Register before doing this"
	reasonAlreadyRegister = "This address is already registered"
	reasonClientRole      = "Only clients can do this"
	reasonFreelancerRole  = "Only freelancers can do this"
	reasonNotProjectOwner = "Only the project client can do this"
	reasonNotAssignee     = "Only the assigned freelancer can do this"
	reasonProjectInactive = "The project is no longer active"
	reasonOwnProject      = "You cannot apply to your own project"
	reasonAlreadyApplied  = "You already applied to this project"
	reasonAlreadyAssigned = "A freelancer is already assigned"
	reasonNobodyAssigned  = "No freelancer is assigned yet"
	reasonNotSubmitted    = "The milestone has not been submitted"
	reasonAlreadyDone     = "The milestone is already resolved"
)

// RoleGate computes which actions the connected identity may take against a
// resource. It never issues network calls; every rule runs on state the
// caller already fetched. Rules are checked in a fixed precedence order:
// connection, registration, ownership, then current resource state.
type RoleGate struct{}

func NewRoleGate() RoleGate {
	return RoleGate{}
}

func (RoleGate) CanRegister(actor Actor) Verdict {
	if !actor.connected() {
		return denied(reasonConnectWallet)
	}

	if actor.Registered {
		return denied(reasonAlreadyRegister)
	}

	return allowed()
}

func (g RoleGate) CanCreateProject(actor Actor) Verdict {
	if verdict := g.baseline(actor); !verdict.Allowed {
		return verdict
	}

	if !actor.isClient() {
		return denied(reasonClientRole)
	}

	return allowed()
}

func (g RoleGate) CanApply(actor Actor, project *entity.Project, applications []entity.Application) Verdict {
	if verdict := g.baseline(actor); !verdict.Allowed {
		return verdict
	}

	if !actor.isFreelancer() {
		return denied(reasonFreelancerRole)
	}

	if ethutil.SameAddress(actor.Address, project.Client) {
		return denied(reasonOwnProject)
	}

	if project.Status != entity.ProjectStatusActive {
		return denied(reasonProjectInactive)
	}

	if !ethutil.IsZeroAddress(project.Freelancer) {
		return denied(reasonAlreadyAssigned)
	}

	for _, application := range applications {
		if ethutil.SameAddress(actor.Address, application.Freelancer) {
			return denied(reasonAlreadyApplied)
		}
	}

	return allowed()
}

func (g RoleGate) CanAssign(actor Actor, project *entity.Project) Verdict {
	if verdict := g.baseline(actor); !verdict.Allowed {
		return verdict
	}

	if !ethutil.SameAddress(actor.Address, project.Client) {
		return denied(reasonNotProjectOwner)
	}

	if project.Status != entity.ProjectStatusActive {
		return denied(reasonProjectInactive)
	}

	if !ethutil.IsZeroAddress(project.Freelancer) {
		return denied(reasonAlreadyAssigned)
	}

	return allowed()
}

func (g RoleGate) CanSubmitMilestone(actor Actor, project *entity.Project, milestone *entity.Milestone) Verdict {
	if verdict := g.baseline(actor); !verdict.Allowed {
		return verdict
	}

	if ethutil.IsZeroAddress(project.Freelancer) {
		return denied(reasonNobodyAssigned)
	}

	if !ethutil.SameAddress(actor.Address, project.Freelancer) {
		return denied(reasonNotAssignee)
	}

	if project.Status != entity.ProjectStatusActive {
		return denied(reasonProjectInactive)
	}

	if milestone.Status != entity.MilestoneStatusPending {
		return denied(reasonAlreadyDone)
	}

	return allowed()
}

func (g RoleGate) CanApproveMilestone(actor Actor, project *entity.Project, milestone *entity.Milestone) Verdict {
	if verdict := g.baseline(actor); !verdict.Allowed {
		return verdict
	}

	if !ethutil.SameAddress(actor.Address, project.Client) {
		return denied(reasonNotProjectOwner)
	}

	switch milestone.Status {
	case entity.MilestoneStatusSubmitted:
		return allowed()
	case entity.MilestoneStatusPending:
		return denied(reasonNotSubmitted)
	default:
		return denied(reasonAlreadyDone)
	}
}

func (g RoleGate) CanRateUser(actor Actor, project *entity.Project) Verdict {
	if verdict := g.baseline(actor); !verdict.Allowed {
		return verdict
	}

	if !ethutil.SameAddress(actor.Address, project.Client) {
		return denied(reasonNotProjectOwner)
	}

	if ethutil.IsZeroAddress(project.Freelancer) {
		return denied(reasonNobodyAssigned)
	}

	return allowed()
}

func (RoleGate) baseline(actor Actor) Verdict {
	if !actor.connected() {
		return denied(reasonConnectWallet)
	}

	if !actor.Registered {
		return denied(reasonRegisterFirst)
	}

	return allowed()
}

// ProjectVerdicts bundles every verdict a project page needs in one pass.
type ProjectVerdicts struct {
	Apply   Verdict           `json:"apply"`
	Assign  Verdict           `json:"assign"`
	Rate    Verdict           `json:"rate"`
	Submit  map[int64]Verdict `json:"submit"`
	Approve map[int64]Verdict `json:"approve"`
}

func (g RoleGate) ForProject(
	actor Actor,
	project *entity.Project,
	milestones []entity.Milestone,
	applications []entity.Application,
) ProjectVerdicts {
	verdicts := ProjectVerdicts{
		Apply:   g.CanApply(actor, project, applications),
		Assign:  g.CanAssign(actor, project),
		Rate:    g.CanRateUser(actor, project),
		Submit:  make(map[int64]Verdict, len(milestones)),
		Approve: make(map[int64]Verdict, len(milestones)),
	}

	for i := range milestones {
		milestone := &milestones[i]
		verdicts.Submit[milestone.Index] = g.CanSubmitMilestone(actor, project, milestone)
		verdicts.Approve[milestone.Index] = g.CanApproveMilestone(actor, project, milestone)
	}

	return verdicts
}
