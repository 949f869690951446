package domain

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/freelancedao/backend/internal/chain"
	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/internal/model"
	"github.com/freelancedao/backend/pkg/errorx"
)

type ProjectDomain interface {
	ResolveAddresses(ctx context.Context, req *model.ResolveAddressesRequest) (*model.ResolveAddressesResponse, error)
	Get(ctx context.Context, req *model.GetProjectRequest) (*model.GetProjectResponse, error)
	GetBoard(ctx context.Context, req *model.GetProjectBoardRequest) (*model.GetProjectBoardResponse, error)
	GetAvailable(ctx context.Context, req *model.GetAvailableProjectsRequest) (*model.GetProjectsResponse, error)
	GetByClient(ctx context.Context, req *model.GetClientProjectsRequest) (*model.GetProjectsResponse, error)
	GetByFreelancer(ctx context.Context, req *model.GetFreelancerProjectsRequest) (*model.GetProjectsResponse, error)
	GetMilestones(ctx context.Context, req *model.GetMilestonesRequest) (*model.GetMilestonesResponse, error)
	GetApplications(ctx context.Context, req *model.GetApplicationsRequest) (*model.GetApplicationsResponse, error)
	Create(ctx context.Context, req *model.CreateProjectRequest) (*model.CreateProjectResponse, error)
	Apply(ctx context.Context, req *model.ApplyToProjectRequest) (*model.ApplyToProjectResponse, error)
	Assign(ctx context.Context, req *model.AssignFreelancerRequest) (*model.AssignFreelancerResponse, error)
	SubmitMilestone(ctx context.Context, req *model.SubmitMilestoneRequest) (*model.SubmitMilestoneResponse, error)
	ApproveMilestone(ctx context.Context, req *model.ApproveMilestoneRequest) (*model.ApproveMilestoneResponse, error)
}

type projectDomain struct {
	resources *chain.ResourceClient
	submitter *chain.Submitter
	signer    chain.Signer
	gate      chain.RoleGate
	projector chain.Projector
}

func NewProjectDomain(
	resources *chain.ResourceClient,
	submitter *chain.Submitter,
	signer chain.Signer,
) *projectDomain {
	return &projectDomain{
		resources: resources,
		submitter: submitter,
		signer:    signer,
		gate:      chain.NewRoleGate(),
		projector: chain.NewProjector(),
	}
}

func (d *projectDomain) ResolveAddresses(
	ctx context.Context, req *model.ResolveAddressesRequest,
) (*model.ResolveAddressesResponse, error) {
	resolved, err := d.resources.ResolveAddresses(ctx, req.ChainID)
	if err != nil {
		return nil, err
	}

	return &model.ResolveAddressesResponse{ContractAddresses: resolved}, nil
}

func (d *projectDomain) Get(ctx context.Context, req *model.GetProjectRequest) (*model.GetProjectResponse, error) {
	project, err := d.resources.GetProject(ctx, req.ChainID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	return &model.GetProjectResponse{Project: d.projector.ProjectView(project)}, nil
}

func (d *projectDomain) GetBoard(
	ctx context.Context, req *model.GetProjectBoardRequest,
) (*model.GetProjectBoardResponse, error) {
	project, err := d.resources.GetProject(ctx, req.ChainID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	milestones, err := d.resources.GetMilestones(ctx, req.ChainID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	applications, err := d.resources.GetApplications(ctx, req.ChainID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	actor, err := d.resolveActor(ctx, req.ChainID, req.Actor)
	if err != nil {
		return nil, err
	}

	resp := &model.GetProjectBoardResponse{
		Project:      d.projector.ProjectView(project),
		Milestones:   make([]chain.MilestoneView, 0, len(milestones)),
		Applications: make([]chain.ApplicationView, 0, len(applications)),
		Verdicts:     d.gate.ForProject(actor, project, milestones, applications),
		Register:     d.gate.CanRegister(actor),
	}

	for i := range milestones {
		resp.Milestones = append(resp.Milestones, d.projector.MilestoneView(&milestones[i]))
	}

	for i := range applications {
		resp.Applications = append(resp.Applications, d.projector.ApplicationView(&applications[i]))
	}

	return resp, nil
}

func (d *projectDomain) GetAvailable(
	ctx context.Context, req *model.GetAvailableProjectsRequest,
) (*model.GetProjectsResponse, error) {
	projects, err := d.resources.GetAvailableProjects(ctx, req.ChainID)
	if err != nil {
		return nil, err
	}

	return d.convertProjects(projects), nil
}

func (d *projectDomain) GetByClient(
	ctx context.Context, req *model.GetClientProjectsRequest,
) (*model.GetProjectsResponse, error) {
	projects, err := d.resources.GetClientProjects(ctx, req.ChainID, req.Address)
	if err != nil {
		return nil, err
	}

	return d.convertProjects(projects), nil
}

func (d *projectDomain) GetByFreelancer(
	ctx context.Context, req *model.GetFreelancerProjectsRequest,
) (*model.GetProjectsResponse, error) {
	projects, err := d.resources.GetFreelancerProjects(ctx, req.ChainID, req.Address)
	if err != nil {
		return nil, err
	}

	return d.convertProjects(projects), nil
}

func (d *projectDomain) GetMilestones(
	ctx context.Context, req *model.GetMilestonesRequest,
) (*model.GetMilestonesResponse, error) {
	milestones, err := d.resources.GetMilestones(ctx, req.ChainID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	resp := &model.GetMilestonesResponse{Milestones: make([]chain.MilestoneView, 0, len(milestones))}
	for i := range milestones {
		resp.Milestones = append(resp.Milestones, d.projector.MilestoneView(&milestones[i]))
	}

	return resp, nil
}

func (d *projectDomain) GetApplications(
	ctx context.Context, req *model.GetApplicationsRequest,
) (*model.GetApplicationsResponse, error) {
	applications, err := d.resources.GetApplications(ctx, req.ChainID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	resp := &model.GetApplicationsResponse{Applications: make([]chain.ApplicationView, 0, len(applications))}
	for i := range applications {
		resp.Applications = append(resp.Applications, d.projector.ApplicationView(&applications[i]))
	}

	return resp, nil
}

func (d *projectDomain) Create(
	ctx context.Context, req *model.CreateProjectRequest,
) (*model.CreateProjectResponse, error) {
	milestones := make([]chain.MilestoneInput, 0, len(req.Milestones))
	for i, m := range req.Milestones {
		amount, err := parseAmount(m.Amount)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid amount of milestone %d", i)
		}

		milestones = append(milestones, chain.MilestoneInput{
			Description: m.Description,
			Amount:      amount,
			Deadline:    time.Unix(m.Deadline, 0),
		})
	}

	result, err := d.submitter.CreateProject(ctx, req.ChainID, req.Actor, chain.CreateProjectInput{
		Freelancer:   req.Freelancer,
		PaymentToken: req.PaymentToken,
		Description:  req.Description,
		Milestones:   milestones,
	})
	if err != nil {
		return nil, err
	}

	total, fee := chain.ProjectCost(milestones)
	return &model.CreateProjectResponse{
		SubmitActionResponse: model.ConvertSubmitResult(result),
		TotalAmount:          total.String(),
		PlatformFee:          fee.String(),
	}, nil
}

func (d *projectDomain) Apply(
	ctx context.Context, req *model.ApplyToProjectRequest,
) (*model.ApplyToProjectResponse, error) {
	rate, err := parseAmount(req.ProposedRate)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid proposed rate")
	}

	result, err := d.submitter.ApplyToProject(ctx, req.ChainID, req.Actor, req.ProjectID, req.Proposal, rate)
	if err != nil {
		return nil, err
	}

	return &model.ApplyToProjectResponse{SubmitActionResponse: model.ConvertSubmitResult(result)}, nil
}

func (d *projectDomain) Assign(
	ctx context.Context, req *model.AssignFreelancerRequest,
) (*model.AssignFreelancerResponse, error) {
	result, err := d.submitter.AssignFreelancer(ctx, req.ChainID, req.Actor, req.ProjectID, req.Freelancer)
	if err != nil {
		return nil, err
	}

	return &model.AssignFreelancerResponse{SubmitActionResponse: model.ConvertSubmitResult(result)}, nil
}

func (d *projectDomain) SubmitMilestone(
	ctx context.Context, req *model.SubmitMilestoneRequest,
) (*model.SubmitMilestoneResponse, error) {
	result, err := d.submitter.SubmitMilestone(
		ctx, req.ChainID, req.Actor, req.ProjectID, req.MilestoneIndex, req.Deliverable)
	if err != nil {
		return nil, err
	}

	return &model.SubmitMilestoneResponse{SubmitActionResponse: model.ConvertSubmitResult(result)}, nil
}

func (d *projectDomain) ApproveMilestone(
	ctx context.Context, req *model.ApproveMilestoneRequest,
) (*model.ApproveMilestoneResponse, error) {
	result, err := d.submitter.ApproveMilestone(ctx, req.ChainID, req.Actor, req.ProjectID, req.MilestoneIndex)
	if err != nil {
		return nil, err
	}

	return &model.ApproveMilestoneResponse{SubmitActionResponse: model.ConvertSubmitResult(result)}, nil
}

func (d *projectDomain) convertProjects(projects []entity.Project) *model.GetProjectsResponse {
	resp := &model.GetProjectsResponse{Projects: make([]chain.ProjectView, 0, len(projects))}
	for i := range projects {
		resp.Projects = append(resp.Projects, d.projector.ProjectView(&projects[i]))
	}

	return resp
}

// resolveActor turns a session handle into the already-fetched identity the
// role gate evaluates. An empty handle means nobody is connected.
func (d *projectDomain) resolveActor(ctx context.Context, chainID int64, handle string) (chain.Actor, error) {
	if handle == "" {
		return chain.Actor{}, nil
	}

	address, err := d.signer.Address(ctx, handle)
	if err != nil {
		return chain.Actor{}, err
	}

	profile, err := d.resources.GetUserProfile(ctx, chainID, address)
	if err != nil {
		if errors.Is(err, errorx.Sentinel(errorx.NotFound)) {
			return chain.Actor{Address: address}, nil
		}

		return chain.Actor{}, err
	}

	return chain.Actor{Address: address, Registered: true, UserType: profile.UserType}, nil
}

func parseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.New("not a base-10 integer")
	}

	return amount, nil
}
