package chain_test

import (
	"math/big"
	"testing"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/freelancedao/backend/internal/chain"
	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/internal/repository"
	"github.com/freelancedao/backend/mocks"
	"github.com/freelancedao/backend/pkg/errorx"
	"github.com/freelancedao/backend/pkg/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dummySignedTx() *ethtypes.Transaction {
	to := ethcommon.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	return ethtypes.NewTx(&ethtypes.LegacyTx{
		Nonce:    0,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      21000,
		GasPrice: big.NewInt(1),
	})
}

func newTestSubmitter(client *mocks.EvmClient, signer chain.Signer) (*chain.Submitter, repository.ActionRepository) {
	actionRepo := repository.NewActionRepository()
	resources := newTestResources(client)
	return chain.NewSubmitter(resources, signer, actionRepo), actionRepo
}

func Test_Submitter_ApproveMilestone_Confirmed(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	client.On("SignedEscrowTx", mock.Anything, mock.Anything, mock.Anything).Return(dummySignedTx(), nil)
	client.On("BalanceAt", mock.Anything, mock.Anything, mock.Anything).Return(big.NewInt(1e18), nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)
	client.On("TransactionReceipt", mock.Anything, mock.Anything).
		Return(&ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful}, nil)

	submitter, actionRepo := newTestSubmitter(client, chain.NewSessionWalletSigner())

	result, err := submitter.ApproveMilestone(ctx, 31337, "alice", 1, 0)
	require.NoError(t, err)
	require.Equal(t, entity.ActionStateConfirmed, result.State)
	require.NotEmpty(t, result.TxHash)

	record, err := actionRepo.GetByID(ctx, result.ActionID)
	require.NoError(t, err)
	require.Equal(t, entity.ActionStateConfirmed, record.State)
	require.Equal(t, entity.ActionApproveMilestone, record.Kind)
	require.Equal(t, result.TxHash, record.TxHash)
}

func Test_Submitter_ApproveMilestone_Idempotency(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	client.On("SignedEscrowTx", mock.Anything, mock.Anything, mock.Anything).Return(dummySignedTx(), nil)
	client.On("BalanceAt", mock.Anything, mock.Anything, mock.Anything).Return(big.NewInt(1e18), nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)
	client.On("TransactionReceipt", mock.Anything, mock.Anything).
		WaitUntil(time.After(300*time.Millisecond)).
		Return(&ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful}, nil)

	submitter, _ := newTestSubmitter(client, chain.NewSessionWalletSigner())

	firstDone := make(chan error, 1)
	go func() {
		_, err := submitter.ApproveMilestone(ctx, 31337, "alice", 1, 0)
		firstDone <- err
	}()

	// The duplicate arrives while the first submission awaits its receipt.
	time.Sleep(100 * time.Millisecond)
	_, err := submitter.ApproveMilestone(ctx, 31337, "alice", 1, 0)
	require.ErrorIs(t, err, errorx.Sentinel(errorx.AlreadyExists))

	require.NoError(t, <-firstDone)
	client.AssertNumberOfCalls(t, "SendTransaction", 1)
}

func Test_Submitter_UserRejected(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()

	submitter, _ := newTestSubmitter(client, mocks.RejectingSigner{})

	_, err := submitter.ApproveMilestone(ctx, 31337, "alice", 1, 0)
	require.ErrorIs(t, err, errorx.Sentinel(errorx.UserRejected))

	// Nothing was signed or broadcast.
	client.AssertNotCalled(t, "SignedEscrowTx")
	client.AssertNotCalled(t, "SendTransaction")
}

func Test_Submitter_Reverted(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	client.On("SignedEscrowTx", mock.Anything, mock.Anything, mock.Anything).Return(dummySignedTx(), nil)
	client.On("BalanceAt", mock.Anything, mock.Anything, mock.Anything).Return(big.NewInt(1e18), nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)
	client.On("TransactionReceipt", mock.Anything, mock.Anything).
		Return(&ethtypes.Receipt{Status: ethtypes.ReceiptStatusFailed}, nil)

	submitter, actionRepo := newTestSubmitter(client, chain.NewSessionWalletSigner())

	_, err := submitter.ApproveMilestone(ctx, 31337, "alice", 1, 0)
	require.ErrorIs(t, err, errorx.Sentinel(errorx.Reverted))

	records, err := actionRepo.GetPending(ctx, 31337)
	require.NoError(t, err)
	require.Empty(t, records)
}

func Test_Submitter_Timeout_KeepsRecordPending(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	client.On("SignedEscrowTx", mock.Anything, mock.Anything, mock.Anything).Return(dummySignedTx(), nil)
	client.On("BalanceAt", mock.Anything, mock.Anything, mock.Anything).Return(big.NewInt(1e18), nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)
	client.On("TransactionReceipt", mock.Anything, mock.Anything).Return(nil, ethereum.NotFound)

	submitter, actionRepo := newTestSubmitter(client, chain.NewSessionWalletSigner())

	_, err := submitter.ApproveMilestone(ctx, 31337, "alice", 1, 0)
	require.ErrorIs(t, err, errorx.Sentinel(errorx.Timeout))

	// The transaction may still confirm later, so the record stays pending
	// for the tracker to reconcile.
	records, err := actionRepo.GetPending(ctx, 31337)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func Test_Submitter_TimeoutThenResubmit_Refused(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	client.On("SignedEscrowTx", mock.Anything, mock.Anything, mock.Anything).Return(dummySignedTx(), nil)
	client.On("BalanceAt", mock.Anything, mock.Anything, mock.Anything).Return(big.NewInt(1e18), nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)
	client.On("TransactionReceipt", mock.Anything, mock.Anything).Return(nil, ethereum.NotFound)

	submitter, actionRepo := newTestSubmitter(client, chain.NewSessionWalletSigner())

	_, err := submitter.ApproveMilestone(ctx, 31337, "alice", 1, 0)
	require.ErrorIs(t, err, errorx.Sentinel(errorx.Timeout))

	// The first transaction may still confirm, so retrying the same logical
	// action must not broadcast a second one.
	_, err = submitter.ApproveMilestone(ctx, 31337, "alice", 1, 0)
	require.ErrorIs(t, err, errorx.Sentinel(errorx.AlreadyExists))

	client.AssertNumberOfCalls(t, "SendTransaction", 1)

	records, err := actionRepo.GetPending(ctx, 31337)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func Test_Submitter_ValidationFailsBeforeDispatch(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	submitter, _ := newTestSubmitter(client, chain.NewSessionWalletSigner())

	_, err := submitter.CreateProject(ctx, 31337, "alice", chain.CreateProjectInput{
		Description: "a website",
	})
	require.ErrorIs(t, err, errorx.Sentinel(errorx.BadRequest))

	_, err = submitter.RateUser(ctx, 31337, "alice",
		"0x4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e4b3a1c2e", 9, "great")
	require.ErrorIs(t, err, errorx.Sentinel(errorx.BadRequest))

	_, err = submitter.SubmitMilestone(ctx, 31337, "alice", 1, 0, "")
	require.ErrorIs(t, err, errorx.Sentinel(errorx.BadRequest))

	client.AssertNotCalled(t, "SendTransaction")
}

func Test_Submitter_UnsupportedNetworkFailsClosed(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()
	submitter, _ := newTestSubmitter(client, chain.NewSessionWalletSigner())

	_, err := submitter.ApproveMilestone(ctx, 999, "alice", 1, 0)
	require.ErrorIs(t, err, errorx.Sentinel(errorx.UnsupportedNetwork))
}

func Test_Submitter_CreateProject_AttachesTotalPlusFee(t *testing.T) {
	ctx := testutil.MockContext()
	client := newMockEvmClient()

	var attached *big.Int
	client.On("SignedEscrowTx", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			attached = args.Get(1).(*chain.SignedTxOpts).Opts.Value
		}).
		Return(dummySignedTx(), nil)
	client.On("BalanceAt", mock.Anything, mock.Anything, mock.Anything).Return(big.NewInt(1e18), nil)
	client.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)
	client.On("TransactionReceipt", mock.Anything, mock.Anything).
		Return(&ethtypes.Receipt{Status: ethtypes.ReceiptStatusSuccessful}, nil)

	submitter, _ := newTestSubmitter(client, chain.NewSessionWalletSigner())

	milestones := []chain.MilestoneInput{
		{Description: "design", Amount: big.NewInt(10000), Deadline: time.Now().Add(time.Hour)},
		{Description: "build", Amount: big.NewInt(23333), Deadline: time.Now().Add(2 * time.Hour)},
	}

	total, fee := chain.ProjectCost(milestones)
	require.Equal(t, big.NewInt(33333), total)
	// 33333 * 300 / 10000 floors to 999.
	require.Equal(t, big.NewInt(999), fee)

	_, err := submitter.CreateProject(ctx, 31337, "alice", chain.CreateProjectInput{
		Description: "a website",
		Milestones:  milestones,
	})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(34332), attached)
}
