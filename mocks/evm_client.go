package mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/freelancedao/backend/internal/chain"
	"github.com/freelancedao/backend/internal/entity"
)

type EvmClient struct {
	mock.Mock

	Chain    int64
	Escrow   string
	Registry string
}

func (c *EvmClient) Start(ctx context.Context) {
}

func (c *EvmClient) ChainID() int64 {
	return c.Chain
}

func (c *EvmClient) EscrowAddress() string {
	return c.Escrow
}

func (c *EvmClient) RegistryAddress() string {
	return c.Registry
}

func (c *EvmClient) TransactionReceipt(arg1 context.Context, arg2 common.Hash) (*ethtypes.Receipt, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ethtypes.Receipt), args.Error(1)
}

func (c *EvmClient) SendTransaction(arg1 context.Context, arg2 *ethtypes.Transaction) error {
	args := c.Called(arg1, arg2)
	return args.Error(0)
}

func (c *EvmClient) BalanceAt(arg1 context.Context, arg2 common.Address, arg3 *big.Int) (*big.Int, error) {
	args := c.Called(arg1, arg2, arg3)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (c *EvmClient) ProjectCounter(arg1 context.Context) (int64, error) {
	args := c.Called(arg1)
	return args.Get(0).(int64), args.Error(1)
}

func (c *EvmClient) AvailableProjects(arg1 context.Context) ([]int64, error) {
	args := c.Called(arg1)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (c *EvmClient) ClientProjects(arg1 context.Context, arg2 string) ([]int64, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (c *EvmClient) FreelancerProjects(arg1 context.Context, arg2 string) ([]int64, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (c *EvmClient) Project(arg1 context.Context, arg2 int64) (*entity.Project, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Project), args.Error(1)
}

func (c *EvmClient) ProjectApplications(arg1 context.Context, arg2 int64) ([]entity.Application, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Application), args.Error(1)
}

func (c *EvmClient) MilestoneCount(arg1 context.Context, arg2 int64) (int64, error) {
	args := c.Called(arg1, arg2)
	return args.Get(0).(int64), args.Error(1)
}

func (c *EvmClient) Milestone(arg1 context.Context, arg2 int64, arg3 int64) (*entity.Milestone, error) {
	args := c.Called(arg1, arg2, arg3)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Milestone), args.Error(1)
}

func (c *EvmClient) UserProfile(arg1 context.Context, arg2 string) (*entity.UserProfile, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (c *EvmClient) IsRegistered(arg1 context.Context, arg2 string) (bool, error) {
	args := c.Called(arg1, arg2)
	return args.Bool(0), args.Error(1)
}

func (c *EvmClient) IsClient(arg1 context.Context, arg2 string) (bool, error) {
	args := c.Called(arg1, arg2)
	return args.Bool(0), args.Error(1)
}

func (c *EvmClient) IsFreelancer(arg1 context.Context, arg2 string) (bool, error) {
	args := c.Called(arg1, arg2)
	return args.Bool(0), args.Error(1)
}

func (c *EvmClient) UserRatings(arg1 context.Context, arg2 string) ([]entity.Rating, error) {
	args := c.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Rating), args.Error(1)
}

func (c *EvmClient) UserReputation(arg1 context.Context, arg2 string) (int64, error) {
	args := c.Called(arg1, arg2)
	return args.Get(0).(int64), args.Error(1)
}

func (c *EvmClient) SignedEscrowTx(
	arg1 context.Context, arg2 *chain.SignedTxOpts, arg3 chain.EscrowTxBuilder,
) (*ethtypes.Transaction, error) {
	args := c.Called(arg1, arg2, arg3)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ethtypes.Transaction), args.Error(1)
}

func (c *EvmClient) SignedRegistryTx(
	arg1 context.Context, arg2 *chain.SignedTxOpts, arg3 chain.RegistryTxBuilder,
) (*ethtypes.Transaction, error) {
	args := c.Called(arg1, arg2, arg3)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ethtypes.Transaction), args.Error(1)
}
