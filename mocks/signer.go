package mocks

import (
	"context"
	"math/big"

	"github.com/freelancedao/backend/internal/chain"
	"github.com/freelancedao/backend/pkg/errorx"
)

// RejectingSigner declines every signature request, the way a wallet user
// hitting cancel would.
type RejectingSigner struct{}

func (RejectingSigner) Address(ctx context.Context, actor string) (string, error) {
	return "0x00000000000000000000000000000000000000aa", nil
}

func (RejectingSigner) Authorize(
	ctx context.Context, chainID int64, actor string, value *big.Int,
) (*chain.SignedTxOpts, error) {
	return nil, errorx.New(errorx.UserRejected, "The signature request was declined")
}
