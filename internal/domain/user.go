package domain

import (
	"context"

	"github.com/freelancedao/backend/internal/chain"
	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/internal/model"
)

type UserDomain interface {
	Get(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error)
	GetRatings(ctx context.Context, req *model.GetUserRatingsRequest) (*model.GetUserRatingsResponse, error)
	Register(ctx context.Context, req *model.RegisterUserRequest) (*model.RegisterUserResponse, error)
	Rate(ctx context.Context, req *model.RateUserRequest) (*model.RateUserResponse, error)
}

type userDomain struct {
	resources *chain.ResourceClient
	submitter *chain.Submitter
	projector chain.Projector
}

func NewUserDomain(resources *chain.ResourceClient, submitter *chain.Submitter) *userDomain {
	return &userDomain{
		resources: resources,
		submitter: submitter,
		projector: chain.NewProjector(),
	}
}

func (d *userDomain) Get(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error) {
	profile, err := d.resources.GetUserProfile(ctx, req.ChainID, req.Address)
	if err != nil {
		return nil, err
	}

	reputation, err := d.resources.GetUserReputation(ctx, req.ChainID, req.Address)
	if err != nil {
		return nil, err
	}

	isClient, err := d.resources.IsClient(ctx, req.ChainID, req.Address)
	if err != nil {
		return nil, err
	}

	isFreelancer, err := d.resources.IsFreelancer(ctx, req.ChainID, req.Address)
	if err != nil {
		return nil, err
	}

	return &model.GetUserResponse{
		Profile:      d.projector.ProfileView(profile, reputation),
		IsClient:     isClient,
		IsFreelancer: isFreelancer,
	}, nil
}

func (d *userDomain) GetRatings(
	ctx context.Context, req *model.GetUserRatingsRequest,
) (*model.GetUserRatingsResponse, error) {
	ratings, err := d.resources.GetUserRatings(ctx, req.ChainID, req.Address)
	if err != nil {
		return nil, err
	}

	resp := &model.GetUserRatingsResponse{Ratings: make([]chain.RatingView, 0, len(ratings))}
	for i := range ratings {
		resp.Ratings = append(resp.Ratings, d.projector.RatingView(&ratings[i]))
	}

	return resp, nil
}

func (d *userDomain) Register(
	ctx context.Context, req *model.RegisterUserRequest,
) (*model.RegisterUserResponse, error) {
	result, err := d.submitter.RegisterUser(ctx, req.ChainID, req.Actor, chain.RegisterUserInput{
		UserType:         entity.UserType(req.UserType),
		Name:             req.Name,
		Email:            req.Email,
		Bio:              req.Bio,
		Skills:           req.Skills,
		ProfileImageHash: req.ProfileImageHash,
	})
	if err != nil {
		return nil, err
	}

	return &model.RegisterUserResponse{SubmitActionResponse: model.ConvertSubmitResult(result)}, nil
}

func (d *userDomain) Rate(ctx context.Context, req *model.RateUserRequest) (*model.RateUserResponse, error) {
	result, err := d.submitter.RateUser(ctx, req.ChainID, req.Actor, req.Freelancer, req.Score, req.Comment)
	if err != nil {
		return nil, err
	}

	return &model.RateUserResponse{SubmitActionResponse: model.ConvertSubmitResult(result)}, nil
}
