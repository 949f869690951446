package chain_test

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/freelancedao/backend/internal/chain"
	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/mocks"
	"github.com/freelancedao/backend/pkg/errorx"
	"github.com/freelancedao/backend/pkg/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestResources(client *mocks.EvmClient) *chain.ResourceClient {
	return chain.NewResourceClient(
		map[int64]chain.EvmClient{client.Chain: client}, chain.NewMemoryCache())
}

func newMockEvmClient() *mocks.EvmClient {
	return &mocks.EvmClient{
		Chain:    31337,
		Escrow:   "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Registry: "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
	}
}

func Test_ResourceClient_ResolveAddresses(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	resources := newTestResources(client)

	resolved, err := resources.ResolveAddresses(ctx, 31337)
	require.NoError(t, err)
	require.Equal(t, int64(31337), resolved.ChainID)
	require.NotEmpty(t, resolved.EscrowAddress)
	require.NotEmpty(t, resolved.RegistryAddress)

	// Reads on an unknown chain degrade to the default one.
	resolved, err = resources.ResolveAddresses(ctx, 999)
	require.NoError(t, err)
	require.Equal(t, int64(31337), resolved.ChainID)
}

func Test_ResourceClient_GetProject_NotFound(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	client.On("ProjectCounter", mock.Anything).Return(int64(5), nil)
	resources := newTestResources(client)

	_, err := resources.GetProject(ctx, 31337, 7)
	require.ErrorIs(t, err, errorx.Sentinel(errorx.NotFound))

	_, err = resources.GetProject(ctx, 31337, 0)
	require.ErrorIs(t, err, errorx.Sentinel(errorx.NotFound))
}

func Test_ResourceClient_GetProject_CachesReads(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	client.On("ProjectCounter", mock.Anything).Return(int64(5), nil)
	client.On("Project", mock.Anything, int64(3)).Return(&entity.Project{
		ID:          3,
		Client:      "0x4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e",
		TotalAmount: big.NewInt(1000),
		Status:      entity.ProjectStatusActive,
	}, nil)
	resources := newTestResources(client)

	first, err := resources.GetProject(ctx, 31337, 3)
	require.NoError(t, err)

	second, err := resources.GetProject(ctx, 31337, 3)
	require.NoError(t, err)
	require.Equal(t, first.Client, second.Client)
	require.Equal(t, first.TotalAmount, second.TotalAmount)

	client.AssertNumberOfCalls(t, "Project", 1)
}

func Test_ResourceClient_CoalescesConcurrentReads(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	client.On("UserRatings", mock.Anything, mock.Anything).
		Return([]entity.Rating{{Score: 5, Comment: "great"}}, nil)
	resources := newTestResources(client)

	address := "0x4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ratings, err := resources.GetUserRatings(ctx, 31337, address)
			require.NoError(t, err)
			require.Len(t, ratings, 1)
		}()
	}
	wg.Wait()

	client.AssertNumberOfCalls(t, "UserRatings", 1)
}

func Test_ResourceClient_GetUserProfile_Unregistered(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	client.On("IsRegistered", mock.Anything, mock.Anything).Return(false, nil)
	resources := newTestResources(client)

	_, err := resources.GetUserProfile(ctx, 31337, "0x4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e")
	require.ErrorIs(t, err, errorx.Sentinel(errorx.NotFound))

	_, err = resources.GetUserProfile(ctx, 31337, "not-an-address")
	require.ErrorIs(t, err, errorx.Sentinel(errorx.BadRequest))
}

func Test_ResourceClient_RoleFlags(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()

	// An address registered as Freelancer only.
	freelancer := "0x4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e"
	client.On("IsClient", mock.Anything, freelancer).Return(false, nil)
	client.On("IsFreelancer", mock.Anything, freelancer).Return(true, nil)
	resources := newTestResources(client)

	isClient, err := resources.IsClient(ctx, 31337, freelancer)
	require.NoError(t, err)
	require.False(t, isClient)

	isFreelancer, err := resources.IsFreelancer(ctx, 31337, freelancer)
	require.NoError(t, err)
	require.True(t, isFreelancer)

	_, err = resources.IsClient(ctx, 31337, "not-an-address")
	require.ErrorIs(t, err, errorx.Sentinel(errorx.BadRequest))

	_, err = resources.IsFreelancer(ctx, 31337, "not-an-address")
	require.ErrorIs(t, err, errorx.Sentinel(errorx.BadRequest))
}

func Test_ResourceClient_GetMilestones(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	client.On("ProjectCounter", mock.Anything).Return(int64(1), nil)
	client.On("MilestoneCount", mock.Anything, int64(1)).Return(int64(2), nil)
	client.On("Milestone", mock.Anything, int64(1), int64(0)).Return(&entity.Milestone{
		ProjectID: 1, Index: 0, Amount: big.NewInt(10), Status: entity.MilestoneStatusApproved,
	}, nil)
	client.On("Milestone", mock.Anything, int64(1), int64(1)).Return(&entity.Milestone{
		ProjectID: 1, Index: 1, Amount: big.NewInt(20), Status: entity.MilestoneStatusPending,
	}, nil)
	resources := newTestResources(client)

	milestones, err := resources.GetMilestones(ctx, 31337, 1)
	require.NoError(t, err)
	require.Len(t, milestones, 2)
	require.Equal(t, entity.MilestoneStatusApproved, milestones[0].Status)
	require.Equal(t, entity.MilestoneStatusPending, milestones[1].Status)

	_, err = resources.GetMilestone(ctx, 31337, 1, 5)
	require.ErrorIs(t, err, errorx.Sentinel(errorx.NotFound))
}

func Test_ResourceClient_ClassifiesNetworkFailures(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	client.On("ProjectCounter", mock.Anything).Return(int64(0), errors.New("connection refused"))
	resources := newTestResources(client)

	_, err := resources.GetProject(ctx, 31337, 1)
	require.ErrorIs(t, err, errorx.Sentinel(errorx.NetworkError))
}
