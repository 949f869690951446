package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/internal/repository"
	"github.com/freelancedao/backend/pkg/xcontext"
)

// Tracker reconciles actions left in the pending state, typically after a
// confirmation wait timed out or the process restarted while transactions
// were in flight.
type Tracker struct {
	clients    map[int64]EvmClient
	resources  *ResourceClient
	actionRepo repository.ActionRepository
}

func NewTracker(
	clients map[int64]EvmClient,
	resources *ResourceClient,
	actionRepo repository.ActionRepository,
) *Tracker {
	return &Tracker{
		clients:    clients,
		resources:  resources,
		actionRepo: actionRepo,
	}
}

func (t *Tracker) Run(ctx context.Context) {
	interval := xcontext.Configs(ctx).Blockchain.ConfirmationInterval
	for {
		t.reconcileAll(ctx)

		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

func (t *Tracker) reconcileAll(ctx context.Context) {
	for chainID, client := range t.clients {
		records, err := t.actionRepo.GetPending(ctx, chainID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot load pending actions of chain %d: %v", chainID, err)
			continue
		}

		for i := range records {
			t.reconcile(ctx, client, &records[i])
		}
	}
}

func (t *Tracker) reconcile(ctx context.Context, client EvmClient, record *entity.ActionRecord) {
	if record.TxHash == "" {
		return
	}

	receipt, err := client.TransactionReceipt(ctx, ethcommon.HexToHash(record.TxHash))
	if err != nil {
		if !errors.Is(err, ethereum.NotFound) {
			xcontext.Logger(ctx).Warnf("Cannot fetch receipt of %s: %v", record.TxHash, err)
		}
		return
	}

	update := &entity.ActionRecord{State: entity.ActionStateConfirmed}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		update.State = entity.ActionStateFailed
		update.Reason = "no reason given"
	}

	if err := t.actionRepo.UpdateByID(ctx, record.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot reconcile action %s: %v", record.ID, err)
		return
	}

	xcontext.Logger(ctx).Infof("Reconciled action %s (%s) to %s", record.ID, record.Kind, update.State)

	// Anything under this chain may have moved while we were not looking.
	t.resources.Invalidate(ctx, fmt.Sprintf("chain:%d:", client.ChainID()))
}
