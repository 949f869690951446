package domain

import (
	"context"
	"errors"

	"github.com/freelancedao/backend/internal/model"
	"github.com/freelancedao/backend/internal/repository"
	"github.com/freelancedao/backend/pkg/errorx"
	"github.com/freelancedao/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const defaultActionLimit = 50

type ActionDomain interface {
	Get(ctx context.Context, req *model.GetActionRequest) (*model.GetActionResponse, error)
	GetPending(ctx context.Context, req *model.GetPendingActionsRequest) (*model.GetActionsResponse, error)
	GetByActor(ctx context.Context, req *model.GetActionsByActorRequest) (*model.GetActionsResponse, error)
}

type actionDomain struct {
	actionRepo repository.ActionRepository
}

func NewActionDomain(actionRepo repository.ActionRepository) *actionDomain {
	return &actionDomain{actionRepo: actionRepo}
}

func (d *actionDomain) Get(ctx context.Context, req *model.GetActionRequest) (*model.GetActionResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Require an action id")
	}

	record, err := d.actionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found action")
		}

		xcontext.Logger(ctx).Errorf("Cannot get action %s: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	return &model.GetActionResponse{Action: model.ConvertAction(record)}, nil
}

func (d *actionDomain) GetPending(
	ctx context.Context, req *model.GetPendingActionsRequest,
) (*model.GetActionsResponse, error) {
	records, err := d.actionRepo.GetPending(ctx, req.ChainID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pending actions: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetActionsResponse{Actions: make([]model.Action, 0, len(records))}
	for i := range records {
		resp.Actions = append(resp.Actions, model.ConvertAction(&records[i]))
	}

	return resp, nil
}

func (d *actionDomain) GetByActor(
	ctx context.Context, req *model.GetActionsByActorRequest,
) (*model.GetActionsResponse, error) {
	if req.Actor == "" {
		return nil, errorx.New(errorx.BadRequest, "Require an actor")
	}

	limit := req.Limit
	if limit <= 0 || limit > defaultActionLimit {
		limit = defaultActionLimit
	}

	records, err := d.actionRepo.GetByActor(ctx, req.ChainID, req.Actor, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get actions of %s: %v", req.Actor, err)
		return nil, errorx.Unknown
	}

	resp := &model.GetActionsResponse{Actions: make([]model.Action, 0, len(records))}
	for i := range records {
		resp.Actions = append(resp.Actions, model.ConvertAction(&records[i]))
	}

	return resp, nil
}
