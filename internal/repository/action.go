package repository

import (
	"context"

	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/pkg/xcontext"
)

type ActionRepository interface {
	Create(ctx context.Context, record *entity.ActionRecord) error
	UpdateByID(ctx context.Context, id string, data *entity.ActionRecord) error
	GetByID(ctx context.Context, id string) (*entity.ActionRecord, error)
	GetByTxHash(ctx context.Context, chainID int64, txHash string) (*entity.ActionRecord, error)
	GetPending(ctx context.Context, chainID int64) ([]entity.ActionRecord, error)
	GetPendingByKey(ctx context.Context, chainID int64, kind entity.ActionKind, key string) (*entity.ActionRecord, error)
	GetByActor(ctx context.Context, chainID int64, actor string, limit int) ([]entity.ActionRecord, error)
}

type actionRepository struct{}

func NewActionRepository() *actionRepository {
	return &actionRepository{}
}

func (r *actionRepository) Create(ctx context.Context, record *entity.ActionRecord) error {
	return xcontext.DB(ctx).Create(record).Error
}

func (r *actionRepository) UpdateByID(ctx context.Context, id string, data *entity.ActionRecord) error {
	return xcontext.DB(ctx).Model(&entity.ActionRecord{}).Where("id = ?", id).Updates(data).Error
}

func (r *actionRepository) GetByID(ctx context.Context, id string) (*entity.ActionRecord, error) {
	var result entity.ActionRecord
	if err := xcontext.DB(ctx).Take(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *actionRepository) GetByTxHash(ctx context.Context, chainID int64, txHash string) (*entity.ActionRecord, error) {
	var result entity.ActionRecord
	err := xcontext.DB(ctx).Take(&result, "chain_id = ? AND tx_hash = ?", chainID, txHash).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *actionRepository) GetPending(ctx context.Context, chainID int64) ([]entity.ActionRecord, error) {
	var result []entity.ActionRecord
	err := xcontext.DB(ctx).
		Where("chain_id = ? AND state = ?", chainID, entity.ActionStatePending).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *actionRepository) GetPendingByKey(
	ctx context.Context, chainID int64, kind entity.ActionKind, key string,
) (*entity.ActionRecord, error) {
	var result entity.ActionRecord
	err := xcontext.DB(ctx).
		Take(&result, "chain_id = ? AND kind = ? AND `key` = ? AND state = ?",
			chainID, kind, key, entity.ActionStatePending).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *actionRepository) GetByActor(ctx context.Context, chainID int64, actor string, limit int) ([]entity.ActionRecord, error) {
	var result []entity.ActionRecord
	err := xcontext.DB(ctx).
		Where("chain_id = ? AND actor = ?", chainID, actor).
		Order("created_at DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
