package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/pkg/errorx"
	"github.com/freelancedao/backend/pkg/ethutil"
	"github.com/freelancedao/backend/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
)

// ContractAddresses is the resolved deployment of one chain.
type ContractAddresses struct {
	ChainID         int64  `json:"chain_id"`
	EscrowAddress   string `json:"escrow_address"`
	RegistryAddress string `json:"registry_address"`
}

// ResourceClient reads chain state through a read cache. Concurrent requests
// for the same key are coalesced into a single RPC call. All reads may fall
// back to the default chain when the requested one is not configured; writes
// go through the Submitter, which never falls back.
type ResourceClient struct {
	clients  map[int64]EvmClient
	cache    ReadCache
	inflight *xsync.MapOf[string, *inflightCall]
}

func NewResourceClient(clients map[int64]EvmClient, cache ReadCache) *ResourceClient {
	return &ResourceClient{
		clients:  clients,
		cache:    cache,
		inflight: xsync.NewMapOf[*inflightCall](),
	}
}

// ResolveAddresses returns the escrow and registry deployment of chainID. A
// zero chainID resolves to the configured default chain.
func (r *ResourceClient) ResolveAddresses(ctx context.Context, chainID int64) (ContractAddresses, error) {
	client, err := r.client(ctx, chainID)
	if err != nil {
		return ContractAddresses{}, err
	}

	return ContractAddresses{
		ChainID:         client.ChainID(),
		EscrowAddress:   client.EscrowAddress(),
		RegistryAddress: client.RegistryAddress(),
	}, nil
}

func (r *ResourceClient) ProjectCounter(ctx context.Context, chainID int64) (int64, error) {
	client, err := r.client(ctx, chainID)
	if err != nil {
		return 0, err
	}

	counter, err := client.ProjectCounter(ctx)
	if err != nil {
		return 0, readError(ctx, err)
	}

	return counter, nil
}

// GetProject returns the project or errorx.NotFound when the id was never
// issued by the contract. Project ids start at 1.
func (r *ResourceClient) GetProject(ctx context.Context, chainID, projectID int64) (*entity.Project, error) {
	client, err := r.client(ctx, chainID)
	if err != nil {
		return nil, err
	}

	if err := r.checkProjectExists(ctx, client, projectID); err != nil {
		return nil, err
	}

	return readThrough(ctx, r, projectKey(client.ChainID(), projectID),
		func(ctx context.Context) (*entity.Project, error) {
			return client.Project(ctx, projectID)
		})
}

func (r *ResourceClient) GetAvailableProjects(ctx context.Context, chainID int64) ([]entity.Project, error) {
	client, err := r.client(ctx, chainID)
	if err != nil {
		return nil, err
	}

	ids, err := readThrough(ctx, r, fmt.Sprintf("chain:%d:projects:available", client.ChainID()),
		func(ctx context.Context) ([]int64, error) {
			return client.AvailableProjects(ctx)
		})
	if err != nil {
		return nil, err
	}

	return r.loadProjects(ctx, client, ids)
}

func (r *ResourceClient) GetClientProjects(ctx context.Context, chainID int64, clientAddr string) ([]entity.Project, error) {
	if !ethutil.IsValidAddress(clientAddr) {
		return nil, errorx.New(errorx.BadRequest, "Invalid address")
	}

	client, err := r.client(ctx, chainID)
	if err != nil {
		return nil, err
	}

	ids, err := readThrough(ctx, r,
		fmt.Sprintf("chain:%d:projects:client:%s", client.ChainID(), normalizeAddress(clientAddr)),
		func(ctx context.Context) ([]int64, error) {
			return client.ClientProjects(ctx, clientAddr)
		})
	if err != nil {
		return nil, err
	}

	return r.loadProjects(ctx, client, ids)
}

func (r *ResourceClient) GetFreelancerProjects(ctx context.Context, chainID int64, freelancer string) ([]entity.Project, error) {
	if !ethutil.IsValidAddress(freelancer) {
		return nil, errorx.New(errorx.BadRequest, "Invalid address")
	}

	client, err := r.client(ctx, chainID)
	if err != nil {
		return nil, err
	}

	ids, err := readThrough(ctx, r,
		fmt.Sprintf("chain:%d:projects:freelancer:%s", client.ChainID(), normalizeAddress(freelancer)),
		func(ctx context.Context) ([]int64, error) {
			return client.FreelancerProjects(ctx, freelancer)
		})
	if err != nil {
		return nil, err
	}

	return r.loadProjects(ctx, client, ids)
}

// GetMilestones loads every milestone of the project in index order.
func (r *ResourceClient) GetMilestones(ctx context.Context, chainID, projectID int64) ([]entity.Milestone, error) {
	client, err := r.client(ctx, chainID)
	if err != nil {
		return nil, err
	}

	if err := r.checkProjectExists(ctx, client, projectID); err != nil {
		return nil, err
	}

	return readThrough(ctx, r, milestonesKey(client.ChainID(), projectID),
		func(ctx context.Context) ([]entity.Milestone, error) {
			count, err := client.MilestoneCount(ctx, projectID)
			if err != nil {
				return nil, err
			}

			milestones := make([]entity.Milestone, 0, count)
			for i := int64(0); i < count; i++ {
				milestone, err := client.Milestone(ctx, projectID, i)
				if err != nil {
					return nil, err
				}

				milestones = append(milestones, *milestone)
			}

			return milestones, nil
		})
}

func (r *ResourceClient) GetMilestone(ctx context.Context, chainID, projectID, index int64) (*entity.Milestone, error) {
	milestones, err := r.GetMilestones(ctx, chainID, projectID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= int64(len(milestones)) {
		return nil, errorx.New(errorx.NotFound, "Not found milestone %d of project %d", index, projectID)
	}

	return &milestones[index], nil
}

func (r *ResourceClient) GetApplications(ctx context.Context, chainID, projectID int64) ([]entity.Application, error) {
	client, err := r.client(ctx, chainID)
	if err != nil {
		return nil, err
	}

	if err := r.checkProjectExists(ctx, client, projectID); err != nil {
		return nil, err
	}

	return readThrough(ctx, r, applicationsKey(client.ChainID(), projectID),
		func(ctx context.Context) ([]entity.Application, error) {
			return client.ProjectApplications(ctx, projectID)
		})
}

// GetUserProfile returns errorx.NotFound for addresses that never registered.
func (r *ResourceClient) GetUserProfile(ctx context.Context, chainID int64, address string) (*entity.UserProfile, error) {
	if !ethutil.IsValidAddress(address) {
		return nil, errorx.New(errorx.BadRequest, "Invalid address")
	}

	client, err := r.client(ctx, chainID)
	if err != nil {
		return nil, err
	}

	return readThrough(ctx, r, userKey(client.ChainID(), address)+":profile",
		func(ctx context.Context) (*entity.UserProfile, error) {
			registered, err := client.IsRegistered(ctx, address)
			if err != nil {
				return nil, err
			}

			if !registered {
				return nil, errorx.New(errorx.NotFound, "Not found user %s", ethutil.ShortenAddress(address))
			}

			return client.UserProfile(ctx, address)
		})
}

func (r *ResourceClient) IsRegistered(ctx context.Context, chainID int64, address string) (bool, error) {
	if !ethutil.IsValidAddress(address) {
		return false, errorx.New(errorx.BadRequest, "Invalid address")
	}

	client, err := r.client(ctx, chainID)
	if err != nil {
		return false, err
	}

	registered, err := client.IsRegistered(ctx, address)
	if err != nil {
		return false, readError(ctx, err)
	}

	return registered, nil
}

// IsClient reports whether the address registered with a client role
// (Client or Both).
func (r *ResourceClient) IsClient(ctx context.Context, chainID int64, address string) (bool, error) {
	if !ethutil.IsValidAddress(address) {
		return false, errorx.New(errorx.BadRequest, "Invalid address")
	}

	client, err := r.client(ctx, chainID)
	if err != nil {
		return false, err
	}

	isClient, err := client.IsClient(ctx, address)
	if err != nil {
		return false, readError(ctx, err)
	}

	return isClient, nil
}

// IsFreelancer reports whether the address registered with a freelancer role
// (Freelancer or Both).
func (r *ResourceClient) IsFreelancer(ctx context.Context, chainID int64, address string) (bool, error) {
	if !ethutil.IsValidAddress(address) {
		return false, errorx.New(errorx.BadRequest, "Invalid address")
	}

	client, err := r.client(ctx, chainID)
	if err != nil {
		return false, err
	}

	isFreelancer, err := client.IsFreelancer(ctx, address)
	if err != nil {
		return false, readError(ctx, err)
	}

	return isFreelancer, nil
}

func (r *ResourceClient) GetUserRatings(ctx context.Context, chainID int64, address string) ([]entity.Rating, error) {
	if !ethutil.IsValidAddress(address) {
		return nil, errorx.New(errorx.BadRequest, "Invalid address")
	}

	client, err := r.client(ctx, chainID)
	if err != nil {
		return nil, err
	}

	return readThrough(ctx, r, userKey(client.ChainID(), address)+":ratings",
		func(ctx context.Context) ([]entity.Rating, error) {
			return client.UserRatings(ctx, address)
		})
}

// GetUserReputation returns the raw on-chain value, which is the average
// rating scaled by 100.
func (r *ResourceClient) GetUserReputation(ctx context.Context, chainID int64, address string) (int64, error) {
	if !ethutil.IsValidAddress(address) {
		return 0, errorx.New(errorx.BadRequest, "Invalid address")
	}

	client, err := r.client(ctx, chainID)
	if err != nil {
		return 0, err
	}

	reputation, err := readThrough(ctx, r, userKey(client.ChainID(), address)+":reputation",
		func(ctx context.Context) (int64, error) {
			return client.UserReputation(ctx, address)
		})
	if err != nil {
		return 0, err
	}

	return reputation, nil
}

// client resolves the chain for a read. Unknown chains fall back to the
// default one so stale deep links keep rendering.
func (r *ResourceClient) client(ctx context.Context, chainID int64) (EvmClient, error) {
	if chainID == 0 {
		chainID = xcontext.Configs(ctx).Blockchain.DefaultChainID
	}

	if client, ok := r.clients[chainID]; ok {
		return client, nil
	}

	defaultChainID := xcontext.Configs(ctx).Blockchain.DefaultChainID
	if client, ok := r.clients[defaultChainID]; ok {
		xcontext.Logger(ctx).Debugf("Fallback of unsupported chain %d to %d", chainID, defaultChainID)
		return client, nil
	}

	return nil, errorx.New(errorx.UnsupportedNetwork, "Unsupported chain %d", chainID)
}

// writeClient resolves the chain for a write. No fallback here: a transaction
// intended for one chain must never be signed for another.
func (r *ResourceClient) writeClient(ctx context.Context, chainID int64) (EvmClient, error) {
	if chainID == 0 {
		chainID = xcontext.Configs(ctx).Blockchain.DefaultChainID
	}

	client, ok := r.clients[chainID]
	if !ok {
		return nil, errorx.New(errorx.UnsupportedNetwork, "Unsupported chain %d", chainID)
	}

	return client, nil
}

func (r *ResourceClient) checkProjectExists(ctx context.Context, client EvmClient, projectID int64) error {
	if projectID < 1 {
		return errorx.New(errorx.NotFound, "Not found project %d", projectID)
	}

	counter, err := readThrough(ctx, r, fmt.Sprintf("chain:%d:counter", client.ChainID()),
		func(ctx context.Context) (int64, error) {
			return client.ProjectCounter(ctx)
		})
	if err != nil {
		return err
	}

	if projectID > counter {
		return errorx.New(errorx.NotFound, "Not found project %d", projectID)
	}

	return nil
}

func (r *ResourceClient) loadProjects(ctx context.Context, client EvmClient, ids []int64) ([]entity.Project, error) {
	projects := make([]entity.Project, 0, len(ids))
	for _, id := range ids {
		project, err := readThrough(ctx, r, projectKey(client.ChainID(), id),
			func(ctx context.Context) (*entity.Project, error) {
				return client.Project(ctx, id)
			})
		if err != nil {
			return nil, err
		}

		projects = append(projects, *project)
	}

	return projects, nil
}

// Invalidate drops every cached key under the given prefixes.
func (r *ResourceClient) Invalidate(ctx context.Context, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := r.cache.DelPrefix(ctx, prefix); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot invalidate cache %s: %v", prefix, err)
		}
	}
}

type inflightCall struct {
	wg   sync.WaitGroup
	data any
	err  error
}

// readThrough serves key from cache, otherwise fetches once for all
// concurrent callers and stores the result with the configured TTL. Errors
// are not cached.
func readThrough[T any](ctx context.Context, r *ResourceClient, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	if err := r.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	newCall := &inflightCall{}
	newCall.wg.Add(1)
	call, loaded := r.inflight.LoadOrStore(key, newCall)

	if loaded {
		call.wg.Wait()
		if call.err != nil {
			var zero T
			return zero, call.err
		}

		return call.data.(T), nil
	}

	defer r.inflight.Delete(key)

	value, err := fetch(ctx)
	if err != nil {
		call.err = readError(ctx, err)
		call.wg.Done()
		return value, call.err
	}

	call.data = value
	call.wg.Done()

	ttl := xcontext.Configs(ctx).Blockchain.ReadCacheTTL
	if err := r.cache.Set(ctx, key, value, ttl); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache %s: %v", key, err)
	}

	return value, nil
}

// readError maps a raw RPC failure to the public error taxonomy. NotFound and
// other already-classified errors pass through untouched.
func readError(ctx context.Context, err error) error {
	var errx errorx.Error
	if errors.As(err, &errx) {
		return errx
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errorx.New(errorx.Timeout, "The network did not answer in time")
	}

	xcontext.Logger(ctx).Warnf("Chain read failed: %v", err)
	return errorx.New(errorx.NetworkError, "Cannot reach the network")
}

func normalizeAddress(address string) string {
	return strings.ToLower(address)
}

func projectKey(chainID, projectID int64) string {
	return fmt.Sprintf("chain:%d:project:%d", chainID, projectID)
}

func milestonesKey(chainID, projectID int64) string {
	return fmt.Sprintf("chain:%d:project:%d:milestones", chainID, projectID)
}

func applicationsKey(chainID, projectID int64) string {
	return fmt.Sprintf("chain:%d:project:%d:applications", chainID, projectID)
}

func userKey(chainID int64, address string) string {
	return fmt.Sprintf("chain:%d:user:%s", chainID, normalizeAddress(address))
}
