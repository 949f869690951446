package chain

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/freelancedao/backend/pkg/errorx"
	"github.com/freelancedao/backend/pkg/ethutil"
	"github.com/freelancedao/backend/pkg/xcontext"
)

// SignedTxOpts carries a ready-to-sign transactor for one actor. The client
// fills nonce and gas price just before building the transaction.
type SignedTxOpts struct {
	Actor string
	Opts  *bind.TransactOpts
}

// Signer authorizes a transaction on behalf of an actor. An implementation
// may refuse, in which case it must return an error with code
// errorx.UserRejected so the caller can tell a refusal from a failure.
type Signer interface {
	Address(ctx context.Context, actor string) (string, error)
	Authorize(ctx context.Context, chainID int64, actor string, value *big.Int) (*SignedTxOpts, error)
}

// sessionWalletSigner derives one wallet per actor handle from the deployment
// secret. The same handle always maps to the same address, so on-chain
// ownership checks keep working across restarts.
type sessionWalletSigner struct{}

func NewSessionWalletSigner() *sessionWalletSigner {
	return &sessionWalletSigner{}
}

func (s *sessionWalletSigner) Address(ctx context.Context, actor string) (string, error) {
	privateKey, err := s.privateKey(ctx, actor)
	if err != nil {
		return "", err
	}

	return crypto.PubkeyToAddress(privateKey.PublicKey).Hex(), nil
}

func (s *sessionWalletSigner) Authorize(
	ctx context.Context, chainID int64, actor string, value *big.Int,
) (*SignedTxOpts, error) {
	privateKey, err := s.privateKey(ctx, actor)
	if err != nil {
		return nil, err
	}

	return &SignedTxOpts{
		Actor: crypto.PubkeyToAddress(privateKey.PublicKey).Hex(),
		Opts: &bind.TransactOpts{
			From: crypto.PubkeyToAddress(privateKey.PublicKey),
			Signer: func(a ethcommon.Address, t *ethtypes.Transaction) (*ethtypes.Transaction, error) {
				signedTx, err := ethtypes.SignTx(t, ethtypes.NewEIP155Signer(big.NewInt(chainID)), privateKey)
				if err != nil {
					return nil, err
				}
				return signedTx, nil
			},
			Value:  value,
			NoSend: true,
		},
	}, nil
}

func (s *sessionWalletSigner) privateKey(ctx context.Context, actor string) (*ecdsa.PrivateKey, error) {
	if actor == "" {
		return nil, errorx.New(errorx.BadRequest, "Require an actor")
	}

	secret := xcontext.Configs(ctx).Blockchain.SecretKey
	privateKey, err := ethutil.GeneratePrivateKey([]byte(secret), []byte(actor))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot derive wallet of %s: %v", actor, err)
		return nil, errorx.Unknown
	}

	return privateKey, nil
}
