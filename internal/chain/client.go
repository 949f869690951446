package chain

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/freelancedao/backend/config"
	"github.com/freelancedao/backend/contract/escrow"
	"github.com/freelancedao/backend/contract/registry"
	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/pkg/numberutil"
	"github.com/freelancedao/backend/pkg/xcontext"
)

const (
	RpcTimeOut      = time.Second * 5
	MaxShuffleTimes = 20
)

// EvmClient is the typed surface of one configured chain. Raw contract tuples
// never leave this boundary; every read returns a named entity record. It is
// an interface so the resource client and submitter can be tested against a
// fake chain.
type EvmClient interface {
	Start(ctx context.Context)

	ChainID() int64
	EscrowAddress() string
	RegistryAddress() string

	TransactionReceipt(ctx context.Context, txHash ethcommon.Hash) (*ethtypes.Receipt, error)
	SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error
	BalanceAt(ctx context.Context, from ethcommon.Address, block *big.Int) (*big.Int, error)

	// FreelanceEscrow views.
	ProjectCounter(ctx context.Context) (int64, error)
	AvailableProjects(ctx context.Context) ([]int64, error)
	ClientProjects(ctx context.Context, client string) ([]int64, error)
	FreelancerProjects(ctx context.Context, freelancer string) ([]int64, error)
	Project(ctx context.Context, projectID int64) (*entity.Project, error)
	ProjectApplications(ctx context.Context, projectID int64) ([]entity.Application, error)
	MilestoneCount(ctx context.Context, projectID int64) (int64, error)
	Milestone(ctx context.Context, projectID, index int64) (*entity.Milestone, error)

	// UserRegistry views.
	UserProfile(ctx context.Context, address string) (*entity.UserProfile, error)
	IsRegistered(ctx context.Context, address string) (bool, error)
	IsClient(ctx context.Context, address string) (bool, error)
	IsFreelancer(ctx context.Context, address string) (bool, error)
	UserRatings(ctx context.Context, address string) ([]entity.Rating, error)
	UserReputation(ctx context.Context, address string) (int64, error)

	// Signed but not yet broadcast transactions against the two contracts.
	SignedEscrowTx(ctx context.Context, opts *SignedTxOpts, build EscrowTxBuilder) (*ethtypes.Transaction, error)
	SignedRegistryTx(ctx context.Context, opts *SignedTxOpts, build RegistryTxBuilder) (*ethtypes.Transaction, error)
}

type (
	EscrowTxBuilder   func(contract *escrow.Escrow) (*ethtypes.Transaction, error)
	RegistryTxBuilder func(contract *registry.Registry) (*ethtypes.Transaction, error)
)

// Default implementation of an EVM client. Since public RPC endpoints are
// often unstable, this client keeps the configured list of RPCs, tracks which
// of them are healthy, and spreads calls across them.
type defaultEvmClient struct {
	cfg config.ChainConfigs

	clients   []*ethclient.Client
	healthies []bool
	rpcs      []string

	mutex sync.RWMutex
}

func NewEvmClient(cfg config.ChainConfigs) *defaultEvmClient {
	return &defaultEvmClient{cfg: cfg, mutex: sync.RWMutex{}}
}

func (c *defaultEvmClient) Start(ctx context.Context) {
	go c.loopCheck(ctx)
}

func (c *defaultEvmClient) loopCheck(ctx context.Context) {
	for {
		time.Sleep(xcontext.Configs(ctx).Blockchain.RefreshConnectionFrequency)
		c.updateRpcs(ctx)
	}
}

func (c *defaultEvmClient) ChainID() int64 {
	return c.cfg.ID
}

func (c *defaultEvmClient) EscrowAddress() string {
	return c.cfg.EscrowAddress
}

func (c *defaultEvmClient) RegistryAddress() string {
	return c.cfg.RegistryAddress
}

func (c *defaultEvmClient) updateRpcs(ctx context.Context) {
	c.mutex.RLock()
	oldClients := c.clients
	c.mutex.RUnlock()

	rpcs, clients, healthies := c.getRpcsHealthiness(ctx, c.cfg.RPCs)

	// Close all the old clients
	c.mutex.Lock()
	for _, client := range oldClients {
		client.Close()
	}

	c.rpcs, c.clients, c.healthies = rpcs, clients, healthies
	c.mutex.Unlock()
}

func (c *defaultEvmClient) getRpcsHealthiness(ctx context.Context, allRpcs []string) ([]string, []*ethclient.Client, []bool) {
	clients := make([]*ethclient.Client, 0)
	rpcs := make([]string, 0)
	healthies := make([]bool, 0)

	type healthyNode struct {
		client *ethclient.Client
		rpc    string
		height int64
	}

	nodes := make([]*healthyNode, 0)
	for _, rpc := range allRpcs {
		client, err := ethclient.Dial(rpc)
		if err == nil {
			callCtx, cancel := context.WithTimeout(ctx, RpcTimeOut)
			block, err := client.BlockByNumber(callCtx, nil)
			cancel()

			if err == nil && block.Number() != nil {
				nodes = append(nodes, &healthyNode{
					client: client,
					rpc:    rpc,
					height: block.Number().Int64(),
				})
			} else {
				client.Close()
			}
		}
	}

	if len(nodes) == 0 {
		return rpcs, clients, healthies
	}

	// Sorts all nodes by height
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].height > nodes[j].height
	})

	// Only select some nodes within a certain height from the median
	height := nodes[len(nodes)/2].height
	for _, node := range nodes {
		if numberutil.AbsInt64(node.height-height) < 5 {
			rpcs = append(rpcs, node.rpc)
			clients = append(clients, node.client)
			healthies = append(healthies, true)
		} else {
			node.client.Close()
		}
	}

	xcontext.Logger(ctx).Infof("Healthy rpcs for chain %s: %s", c.cfg.Name, rpcs)

	return rpcs, clients, healthies
}

func (c *defaultEvmClient) shuffle() ([]*ethclient.Client, []bool, []string) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	n := len(c.clients)
	if n == 0 {
		return nil, nil, nil
	}

	clients := make([]*ethclient.Client, n)
	healthy := make([]bool, n)
	rpcs := make([]string, n)

	copy(clients, c.clients)
	copy(healthy, c.healthies)
	copy(rpcs, c.rpcs)

	for i := 0; i < MaxShuffleTimes; i++ {
		x := rand.Intn(n)
		y := rand.Intn(n)

		clients[x], clients[y] = clients[y], clients[x]
		healthy[x], healthy[y] = healthy[y], healthy[x]
		rpcs[x], rpcs[y] = rpcs[y], rpcs[x]
	}

	return clients, healthy, rpcs
}

func (c *defaultEvmClient) getHealthyClient(ctx context.Context) (*ethclient.Client, string) {
	c.mutex.RLock()
	if c.clients == nil {
		c.mutex.RUnlock()
		c.updateRpcs(ctx)
	} else {
		c.mutex.RUnlock()
	}

	// Shuffle rpcs so that we will use different healthy rpc
	clients, healthies, rpcs := c.shuffle()
	for i, healthy := range healthies {
		if healthy {
			return clients[i], rpcs[i]
		}
	}

	return nil, ""
}

func (c *defaultEvmClient) execute(ctx context.Context, f func(client *ethclient.Client, rpc string) (any, error)) (any, error) {
	client, rpc := c.getHealthyClient(ctx)
	if client == nil {
		return nil, fmt.Errorf("no healthy RPC for chain %s", c.cfg.Name)
	}

	return f(client, rpc)
}

func (c *defaultEvmClient) TransactionReceipt(ctx context.Context, txHash ethcommon.Hash) (*ethtypes.Receipt, error) {
	receipt, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		return client.TransactionReceipt(ctx, txHash)
	})

	if err != nil {
		return nil, err
	}

	return receipt.(*ethtypes.Receipt), nil
}

func (c *defaultEvmClient) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	_, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		return 0, client.SendTransaction(ctx, tx)
	})

	return err
}

func (c *defaultEvmClient) BalanceAt(ctx context.Context, from ethcommon.Address, block *big.Int) (*big.Int, error) {
	balance, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		return client.BalanceAt(ctx, from, block)
	})

	if err != nil {
		return nil, err
	}

	return balance.(*big.Int), nil
}

func (c *defaultEvmClient) escrowContract(client *ethclient.Client) (*escrow.Escrow, error) {
	return escrow.NewEscrow(ethcommon.HexToAddress(c.cfg.EscrowAddress), client)
}

func (c *defaultEvmClient) registryContract(client *ethclient.Client) (*registry.Registry, error) {
	return registry.NewRegistry(ethcommon.HexToAddress(c.cfg.RegistryAddress), client)
}

func (c *defaultEvmClient) ProjectCounter(ctx context.Context) (int64, error) {
	counter, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.escrowContract(client)
		if err != nil {
			return nil, err
		}

		return contract.ProjectCounter(callOpts(ctx))
	})

	if err != nil {
		return 0, err
	}

	return counter.(*big.Int).Int64(), nil
}

func (c *defaultEvmClient) AvailableProjects(ctx context.Context) ([]int64, error) {
	ids, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.escrowContract(client)
		if err != nil {
			return nil, err
		}

		return contract.GetAvailableProjects(callOpts(ctx))
	})

	if err != nil {
		return nil, err
	}

	return toInt64s(ids.([]*big.Int)), nil
}

func (c *defaultEvmClient) ClientProjects(ctx context.Context, clientAddr string) ([]int64, error) {
	ids, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.escrowContract(client)
		if err != nil {
			return nil, err
		}

		return contract.GetClientProjects(callOpts(ctx), ethcommon.HexToAddress(clientAddr))
	})

	if err != nil {
		return nil, err
	}

	return toInt64s(ids.([]*big.Int)), nil
}

func (c *defaultEvmClient) FreelancerProjects(ctx context.Context, freelancer string) ([]int64, error) {
	ids, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.escrowContract(client)
		if err != nil {
			return nil, err
		}

		return contract.GetFreelancerProjects(callOpts(ctx), ethcommon.HexToAddress(freelancer))
	})

	if err != nil {
		return nil, err
	}

	return toInt64s(ids.([]*big.Int)), nil
}

func (c *defaultEvmClient) Project(ctx context.Context, projectID int64) (*entity.Project, error) {
	project, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.escrowContract(client)
		if err != nil {
			return nil, err
		}

		raw, err := contract.GetProject(callOpts(ctx), big.NewInt(projectID))
		if err != nil {
			return nil, err
		}

		return &entity.Project{
			ID:             projectID,
			Client:         raw.Client.Hex(),
			Freelancer:     raw.Freelancer.Hex(),
			PaymentToken:   raw.PaymentToken.Hex(),
			TotalAmount:    raw.TotalAmount,
			PlatformFee:    raw.PlatformFee,
			Status:         entity.ProjectStatus(raw.Status),
			CreatedAt:      unixTime(raw.CreatedAt),
			Description:    raw.Description,
			ReleasedAmount: raw.ReleasedAmount,
			DisputeCount:   raw.DisputeCount.Int64(),
		}, nil
	})

	if err != nil {
		return nil, err
	}

	return project.(*entity.Project), nil
}

func (c *defaultEvmClient) ProjectApplications(ctx context.Context, projectID int64) ([]entity.Application, error) {
	applications, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.escrowContract(client)
		if err != nil {
			return nil, err
		}

		raw, err := contract.GetProjectApplications(callOpts(ctx), big.NewInt(projectID))
		if err != nil {
			return nil, err
		}

		return zipApplications(
			hexAddresses(raw.Freelancers), raw.Proposals, raw.ProposedRates, raw.AppliedAts, raw.Accepted), nil
	})

	if err != nil {
		return nil, err
	}

	return applications.([]entity.Application), nil
}

func (c *defaultEvmClient) MilestoneCount(ctx context.Context, projectID int64) (int64, error) {
	count, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.escrowContract(client)
		if err != nil {
			return nil, err
		}

		return contract.GetMilestoneCount(callOpts(ctx), big.NewInt(projectID))
	})

	if err != nil {
		return 0, err
	}

	return count.(*big.Int).Int64(), nil
}

func (c *defaultEvmClient) Milestone(ctx context.Context, projectID, index int64) (*entity.Milestone, error) {
	milestone, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.escrowContract(client)
		if err != nil {
			return nil, err
		}

		raw, err := contract.GetMilestone(callOpts(ctx), big.NewInt(projectID), big.NewInt(index))
		if err != nil {
			return nil, err
		}

		return &entity.Milestone{
			ProjectID:   projectID,
			Index:       index,
			Description: raw.Description,
			Amount:      raw.Amount,
			Deadline:    unixTime(raw.Deadline),
			Status:      entity.MilestoneStatus(raw.Status),
			Deliverable: raw.Deliverable,
			SubmittedAt: unixTime(raw.SubmittedAt),
		}, nil
	})

	if err != nil {
		return nil, err
	}

	return milestone.(*entity.Milestone), nil
}

func (c *defaultEvmClient) UserProfile(ctx context.Context, address string) (*entity.UserProfile, error) {
	profile, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.registryContract(client)
		if err != nil {
			return nil, err
		}

		raw, err := contract.GetUserProfile(callOpts(ctx), ethcommon.HexToAddress(address))
		if err != nil {
			return nil, err
		}

		return &entity.UserProfile{
			Address:          address,
			UserType:         entity.UserType(raw.UserType),
			Name:             raw.Name,
			Email:            raw.Email,
			Bio:              raw.Bio,
			Skills:           raw.Skills,
			ProfileImageHash: raw.ProfileImageHash,
			RegisteredAt:     unixTime(raw.RegisteredAt),
		}, nil
	})

	if err != nil {
		return nil, err
	}

	return profile.(*entity.UserProfile), nil
}

func (c *defaultEvmClient) IsRegistered(ctx context.Context, address string) (bool, error) {
	return c.registryFlag(ctx, address, func(contract *registry.Registry, addr ethcommon.Address) (bool, error) {
		return contract.IsRegistered(callOpts(ctx), addr)
	})
}

func (c *defaultEvmClient) IsClient(ctx context.Context, address string) (bool, error) {
	return c.registryFlag(ctx, address, func(contract *registry.Registry, addr ethcommon.Address) (bool, error) {
		return contract.IsClient(callOpts(ctx), addr)
	})
}

func (c *defaultEvmClient) IsFreelancer(ctx context.Context, address string) (bool, error) {
	return c.registryFlag(ctx, address, func(contract *registry.Registry, addr ethcommon.Address) (bool, error) {
		return contract.IsFreelancer(callOpts(ctx), addr)
	})
}

func (c *defaultEvmClient) registryFlag(
	ctx context.Context,
	address string,
	f func(contract *registry.Registry, addr ethcommon.Address) (bool, error),
) (bool, error) {
	flag, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.registryContract(client)
		if err != nil {
			return nil, err
		}

		return f(contract, ethcommon.HexToAddress(address))
	})

	if err != nil {
		return false, err
	}

	return flag.(bool), nil
}

func (c *defaultEvmClient) UserRatings(ctx context.Context, address string) ([]entity.Rating, error) {
	ratings, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.registryContract(client)
		if err != nil {
			return nil, err
		}

		raw, err := contract.GetUserRatings(callOpts(ctx), ethcommon.HexToAddress(address))
		if err != nil {
			return nil, err
		}

		result := make([]entity.Rating, 0, len(raw))
		for _, r := range raw {
			result = append(result, entity.Rating{
				Score:     r.Score,
				Comment:   r.Comment,
				Timestamp: unixTime(r.Timestamp),
			})
		}

		return result, nil
	})

	if err != nil {
		return nil, err
	}

	return ratings.([]entity.Rating), nil
}

func (c *defaultEvmClient) UserReputation(ctx context.Context, address string) (int64, error) {
	reputation, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.registryContract(client)
		if err != nil {
			return nil, err
		}

		return contract.GetUserReputation(callOpts(ctx), ethcommon.HexToAddress(address))
	})

	if err != nil {
		return 0, err
	}

	return reputation.(*big.Int).Int64(), nil
}

func (c *defaultEvmClient) SignedEscrowTx(
	ctx context.Context, opts *SignedTxOpts, build EscrowTxBuilder,
) (*ethtypes.Transaction, error) {
	signedTx, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.escrowContract(client)
		if err != nil {
			return nil, err
		}

		if err := c.fillTransactOpts(ctx, client, opts); err != nil {
			return nil, err
		}

		return build(contract)
	})
	if err != nil {
		return nil, err
	}

	return signedTx.(*ethtypes.Transaction), nil
}

func (c *defaultEvmClient) SignedRegistryTx(
	ctx context.Context, opts *SignedTxOpts, build RegistryTxBuilder,
) (*ethtypes.Transaction, error) {
	signedTx, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		contract, err := c.registryContract(client)
		if err != nil {
			return nil, err
		}

		if err := c.fillTransactOpts(ctx, client, opts); err != nil {
			return nil, err
		}

		return build(contract)
	})
	if err != nil {
		return nil, err
	}

	return signedTx.(*ethtypes.Transaction), nil
}

func (c *defaultEvmClient) fillTransactOpts(ctx context.Context, client *ethclient.Client, opts *SignedTxOpts) error {
	nonce, err := client.PendingNonceAt(ctx, opts.Opts.From)
	if err != nil {
		return err
	}

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return err
	}

	opts.Opts.Context = ctx
	opts.Opts.Nonce = big.NewInt(int64(nonce))
	opts.Opts.GasPrice = gasPrice
	opts.Opts.NoSend = true
	return nil
}

func callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

// zipApplications rebuilds application records from the contract's parallel
// arrays. Entries past the length of the shortest array are dropped.
func zipApplications(
	freelancers []string,
	proposals []string,
	proposedRates []*big.Int,
	appliedAts []*big.Int,
	accepted []bool,
) []entity.Application {
	n := len(freelancers)
	for _, l := range []int{len(proposals), len(proposedRates), len(appliedAts), len(accepted)} {
		if l < n {
			n = l
		}
	}

	applications := make([]entity.Application, 0, n)
	for i := 0; i < n; i++ {
		applications = append(applications, entity.Application{
			Freelancer:   freelancers[i],
			Proposal:     proposals[i],
			ProposedRate: proposedRates[i],
			AppliedAt:    unixTime(appliedAts[i]),
			IsAccepted:   accepted[i],
		})
	}

	return applications
}

func toInt64s(values []*big.Int) []int64 {
	result := make([]int64, 0, len(values))
	for _, v := range values {
		result = append(result, v.Int64())
	}

	return result
}

func hexAddresses(addrs []ethcommon.Address) []string {
	result := make([]string, 0, len(addrs))
	for _, a := range addrs {
		result = append(result, a.Hex())
	}

	return result
}

func unixTime(v *big.Int) time.Time {
	if v == nil || v.Sign() == 0 {
		return time.Time{}
	}

	return time.Unix(v.Int64(), 0)
}
