package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/freelancedao/backend/contract/escrow"
	"github.com/freelancedao/backend/contract/registry"
	"github.com/freelancedao/backend/internal/entity"
	"github.com/freelancedao/backend/internal/repository"
	"github.com/freelancedao/backend/pkg/errorx"
	"github.com/freelancedao/backend/pkg/ethutil"
	"github.com/freelancedao/backend/pkg/numberutil"
	"github.com/freelancedao/backend/pkg/xcontext"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync"
)

// PlatformFeeBps is the escrow's fee rate in basis points. The same number
// must be used for display and for the attached transaction value, otherwise
// the contract rejects the payment.
const PlatformFeeBps = 300

// SubmitResult reports the terminal outcome of one accepted action.
type SubmitResult struct {
	ActionID string             `json:"action_id"`
	TxHash   string             `json:"tx_hash"`
	State    entity.ActionState `json:"state"`
}

// Submitter signs, broadcasts and tracks state-mutating contract calls. At
// most one submission per logical action (chain, kind, resource) is in flight
// at a time; a second call while the first awaits confirmation is refused. A
// failed action is never resubmitted automatically.
type Submitter struct {
	resources  *ResourceClient
	signer     Signer
	actionRepo repository.ActionRepository
	inflight   *xsync.MapOf[string, string]
}

func NewSubmitter(resources *ResourceClient, signer Signer, actionRepo repository.ActionRepository) *Submitter {
	return &Submitter{
		resources:  resources,
		signer:     signer,
		actionRepo: actionRepo,
		inflight:   xsync.NewMapOf[string](),
	}
}

type RegisterUserInput struct {
	UserType         entity.UserType
	Name             string
	Email            string
	Bio              string
	Skills           []string
	ProfileImageHash string
}

func (s *Submitter) RegisterUser(
	ctx context.Context, chainID int64, actor string, input RegisterUserInput,
) (*SubmitResult, error) {
	if input.UserType != entity.UserTypeClient &&
		input.UserType != entity.UserTypeFreelancer &&
		input.UserType != entity.UserTypeBoth {
		return nil, errorx.New(errorx.BadRequest, "Invalid user type")
	}

	if input.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a name")
	}

	client, err := s.resources.writeClient(ctx, chainID)
	if err != nil {
		return nil, err
	}

	address, err := s.signer.Address(ctx, actor)
	if err != nil {
		return nil, err
	}

	return s.submit(ctx, client, actor, entity.ActionRegisterUser,
		fmt.Sprintf("user:%s", normalizeAddress(address)), nil,
		func(ctx context.Context, opts *SignedTxOpts) (*ethtypes.Transaction, error) {
			return client.SignedRegistryTx(ctx, opts,
				func(contract *registry.Registry) (*ethtypes.Transaction, error) {
					return contract.RegisterUser(opts.Opts, uint8(input.UserType),
						input.Name, input.Email, input.Bio, input.Skills, input.ProfileImageHash)
				})
		},
		userKey(client.ChainID(), address),
	)
}

type MilestoneInput struct {
	Description string
	Amount      *big.Int
	Deadline    time.Time
}

type CreateProjectInput struct {
	Freelancer   string
	PaymentToken string
	Description  string
	Milestones   []MilestoneInput
}

// ProjectCost computes the amounts a project creation locks up. The fee is
// floored basis points of the milestone total; for native-currency projects
// total+fee is attached as the transaction value.
func ProjectCost(milestones []MilestoneInput) (total, fee *big.Int) {
	amounts := make([]*big.Int, 0, len(milestones))
	for _, m := range milestones {
		amounts = append(amounts, m.Amount)
	}

	total = numberutil.SumBig(amounts)
	fee = numberutil.BasisPoints(total, PlatformFeeBps)
	return total, fee
}

func (s *Submitter) CreateProject(
	ctx context.Context, chainID int64, actor string, input CreateProjectInput,
) (*SubmitResult, error) {
	if input.Description == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a project description")
	}

	if len(input.Milestones) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Require at least one milestone")
	}

	if input.Freelancer != "" && !ethutil.IsValidAddress(input.Freelancer) {
		return nil, errorx.New(errorx.BadRequest, "Invalid freelancer address")
	}

	if input.PaymentToken != "" && !ethutil.IsValidAddress(input.PaymentToken) {
		return nil, errorx.New(errorx.BadRequest, "Invalid payment token address")
	}

	now := time.Now()
	for i, m := range input.Milestones {
		if m.Description == "" {
			return nil, errorx.New(errorx.BadRequest, "Require a description for milestone %d", i)
		}

		if m.Amount == nil || m.Amount.Sign() <= 0 {
			return nil, errorx.New(errorx.BadRequest, "Require a positive amount for milestone %d", i)
		}

		if !m.Deadline.After(now) {
			return nil, errorx.New(errorx.BadRequest, "Require a future deadline for milestone %d", i)
		}
	}

	client, err := s.resources.writeClient(ctx, chainID)
	if err != nil {
		return nil, err
	}

	freelancer := input.Freelancer
	if freelancer == "" {
		freelancer = ethutil.ZeroAddress
	}

	paymentToken := input.PaymentToken
	if paymentToken == "" {
		paymentToken = ethutil.ZeroAddress
	}

	total, fee := ProjectCost(input.Milestones)
	value := big.NewInt(0)
	if ethutil.IsZeroAddress(paymentToken) {
		value = new(big.Int).Add(total, fee)
	}

	descriptions := make([]string, 0, len(input.Milestones))
	amounts := make([]*big.Int, 0, len(input.Milestones))
	deadlines := make([]*big.Int, 0, len(input.Milestones))
	for _, m := range input.Milestones {
		descriptions = append(descriptions, m.Description)
		amounts = append(amounts, m.Amount)
		deadlines = append(deadlines, big.NewInt(m.Deadline.Unix()))
	}

	address, err := s.signer.Address(ctx, actor)
	if err != nil {
		return nil, err
	}

	return s.submit(ctx, client, actor, entity.ActionCreateProject,
		fmt.Sprintf("creator:%s", normalizeAddress(address)), value,
		func(ctx context.Context, opts *SignedTxOpts) (*ethtypes.Transaction, error) {
			return client.SignedEscrowTx(ctx, opts,
				func(contract *escrow.Escrow) (*ethtypes.Transaction, error) {
					return contract.CreateProject(opts.Opts,
						ethcommon.HexToAddress(freelancer),
						ethcommon.HexToAddress(paymentToken),
						input.Description, descriptions, amounts, deadlines)
				})
		},
		fmt.Sprintf("chain:%d:counter", client.ChainID()),
		fmt.Sprintf("chain:%d:projects", client.ChainID()),
	)
}

func (s *Submitter) ApplyToProject(
	ctx context.Context, chainID int64, actor string, projectID int64, proposal string, proposedRate *big.Int,
) (*SubmitResult, error) {
	if projectID < 1 {
		return nil, errorx.New(errorx.BadRequest, "Invalid project id")
	}

	if proposal == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a proposal")
	}

	if proposedRate == nil || proposedRate.Sign() <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Require a positive rate")
	}

	client, err := s.resources.writeClient(ctx, chainID)
	if err != nil {
		return nil, err
	}

	address, err := s.signer.Address(ctx, actor)
	if err != nil {
		return nil, err
	}

	return s.submit(ctx, client, actor, entity.ActionApplyToProject,
		fmt.Sprintf("project:%d:applicant:%s", projectID, normalizeAddress(address)), nil,
		func(ctx context.Context, opts *SignedTxOpts) (*ethtypes.Transaction, error) {
			return client.SignedEscrowTx(ctx, opts,
				func(contract *escrow.Escrow) (*ethtypes.Transaction, error) {
					return contract.ApplyToProject(opts.Opts, big.NewInt(projectID), proposal, proposedRate)
				})
		},
		applicationsKey(client.ChainID(), projectID),
	)
}

func (s *Submitter) AssignFreelancer(
	ctx context.Context, chainID int64, actor string, projectID int64, freelancer string,
) (*SubmitResult, error) {
	if projectID < 1 {
		return nil, errorx.New(errorx.BadRequest, "Invalid project id")
	}

	if !ethutil.IsValidAddress(freelancer) || ethutil.IsZeroAddress(freelancer) {
		return nil, errorx.New(errorx.BadRequest, "Invalid freelancer address")
	}

	client, err := s.resources.writeClient(ctx, chainID)
	if err != nil {
		return nil, err
	}

	return s.submit(ctx, client, actor, entity.ActionAssignFreelancer,
		fmt.Sprintf("project:%d", projectID), nil,
		func(ctx context.Context, opts *SignedTxOpts) (*ethtypes.Transaction, error) {
			return client.SignedEscrowTx(ctx, opts,
				func(contract *escrow.Escrow) (*ethtypes.Transaction, error) {
					return contract.AssignFreelancer(opts.Opts, big.NewInt(projectID), ethcommon.HexToAddress(freelancer))
				})
		},
		projectKey(client.ChainID(), projectID),
		applicationsKey(client.ChainID(), projectID),
		fmt.Sprintf("chain:%d:projects", client.ChainID()),
	)
}

func (s *Submitter) SubmitMilestone(
	ctx context.Context, chainID int64, actor string, projectID, index int64, deliverable string,
) (*SubmitResult, error) {
	if projectID < 1 || index < 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid milestone reference")
	}

	if deliverable == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a deliverable")
	}

	client, err := s.resources.writeClient(ctx, chainID)
	if err != nil {
		return nil, err
	}

	return s.submit(ctx, client, actor, entity.ActionSubmitMilestone,
		fmt.Sprintf("project:%d:milestone:%d", projectID, index), nil,
		func(ctx context.Context, opts *SignedTxOpts) (*ethtypes.Transaction, error) {
			return client.SignedEscrowTx(ctx, opts,
				func(contract *escrow.Escrow) (*ethtypes.Transaction, error) {
					return contract.SubmitMilestone(opts.Opts, big.NewInt(projectID), big.NewInt(index), deliverable)
				})
		},
		milestonesKey(client.ChainID(), projectID),
	)
}

func (s *Submitter) ApproveMilestone(
	ctx context.Context, chainID int64, actor string, projectID, index int64,
) (*SubmitResult, error) {
	if projectID < 1 || index < 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid milestone reference")
	}

	client, err := s.resources.writeClient(ctx, chainID)
	if err != nil {
		return nil, err
	}

	return s.submit(ctx, client, actor, entity.ActionApproveMilestone,
		fmt.Sprintf("project:%d:milestone:%d", projectID, index), nil,
		func(ctx context.Context, opts *SignedTxOpts) (*ethtypes.Transaction, error) {
			return client.SignedEscrowTx(ctx, opts,
				func(contract *escrow.Escrow) (*ethtypes.Transaction, error) {
					return contract.ApproveMilestone(opts.Opts, big.NewInt(projectID), big.NewInt(index))
				})
		},
		// Approval releases payment, which moves the project's released
		// amount and possibly its status and the freelancer's reputation.
		milestonesKey(client.ChainID(), projectID),
		projectKey(client.ChainID(), projectID),
		fmt.Sprintf("chain:%d:user", client.ChainID()),
	)
}

func (s *Submitter) RateUser(
	ctx context.Context, chainID int64, actor string, freelancer string, score uint8, comment string,
) (*SubmitResult, error) {
	if !ethutil.IsValidAddress(freelancer) || ethutil.IsZeroAddress(freelancer) {
		return nil, errorx.New(errorx.BadRequest, "Invalid freelancer address")
	}

	if score < 1 || score > 5 {
		return nil, errorx.New(errorx.BadRequest, "Score must be between 1 and 5")
	}

	client, err := s.resources.writeClient(ctx, chainID)
	if err != nil {
		return nil, err
	}

	return s.submit(ctx, client, actor, entity.ActionRateUser,
		fmt.Sprintf("ratee:%s:rater:%s", normalizeAddress(freelancer), actor), nil,
		func(ctx context.Context, opts *SignedTxOpts) (*ethtypes.Transaction, error) {
			return client.SignedRegistryTx(ctx, opts,
				func(contract *registry.Registry) (*ethtypes.Transaction, error) {
					return contract.RateUser(opts.Opts, ethcommon.HexToAddress(freelancer), score, comment)
				})
		},
		userKey(client.ChainID(), freelancer),
	)
}

type buildTxFunc func(ctx context.Context, opts *SignedTxOpts) (*ethtypes.Transaction, error)

// submit runs the shared lifecycle: guard, sign, preflight, broadcast, await
// receipt, invalidate. The guard is held until a terminal state so a rapid
// duplicate of the same logical action produces exactly one transaction.
func (s *Submitter) submit(
	ctx context.Context,
	client EvmClient,
	actor string,
	kind entity.ActionKind,
	resourceKey string,
	value *big.Int,
	buildTx buildTxFunc,
	invalidatePrefixes ...string,
) (*SubmitResult, error) {
	guardKey := fmt.Sprintf("%d:%s:%s", client.ChainID(), kind, resourceKey)
	if _, loaded := s.inflight.LoadOrStore(guardKey, actor); loaded {
		return nil, errorx.New(errorx.AlreadyExists, "This action is already in progress")
	}
	defer s.inflight.Delete(guardKey)

	// A pending record survives the in-memory guard, for instance when the
	// confirmation wait timed out or the process restarted. The earlier
	// transaction may still confirm, so never broadcast a second one until
	// the tracker settled the first.
	if pending, err := s.actionRepo.GetPendingByKey(
		ctx, client.ChainID(), kind, resourceKey); err == nil && pending != nil {
		return nil, errorx.New(errorx.AlreadyExists,
			"This action is awaiting confirmation, refresh to check its status")
	}

	opts, err := s.signer.Authorize(ctx, client.ChainID(), actor, value)
	if err != nil {
		return nil, err
	}

	record := &entity.ActionRecord{
		Base:    entity.Base{ID: uuid.NewString()},
		ChainID: client.ChainID(),
		Kind:    kind,
		Key:     resourceKey,
		Actor:   opts.Actor,
		State:   entity.ActionStateSubmitting,
	}

	if err := s.actionRepo.Create(ctx, record); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create action record: %v", err)
		return nil, errorx.Unknown
	}

	signedTx, err := buildTx(ctx, opts)
	if err != nil {
		s.fail(ctx, record, err)
		return nil, submitError(ctx, err)
	}

	if err := s.preflightBalance(ctx, client, opts.Opts.From, signedTx); err != nil {
		s.fail(ctx, record, err)
		return nil, err
	}

	err = client.SendTransaction(ctx, signedTx)
	if err != nil && !strings.Contains(err.Error(), "already known") {
		// Ethereum nodes report a duplicate submission as an error with no
		// error code, so string matching is the only way to tell.
		s.fail(ctx, record, err)
		return nil, submitError(ctx, err)
	}

	txHash := signedTx.Hash()
	record.TxHash = txHash.Hex()
	record.State = entity.ActionStatePending
	if err := s.actionRepo.UpdateByID(ctx, record.ID, &entity.ActionRecord{
		TxHash: record.TxHash,
		State:  record.State,
	}); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot track pending action %s: %v", record.ID, err)
	}

	result, err := s.awaitReceipt(ctx, client, record, txHash)
	if err != nil {
		return nil, err
	}

	s.resources.Invalidate(ctx, invalidatePrefixes...)
	return result, nil
}

// awaitReceipt polls for the receipt until the configured ceiling. On
// timeout the record stays pending, since the transaction may still confirm
// later; a refresh or the tracker reconciles it.
func (s *Submitter) awaitReceipt(
	ctx context.Context, client EvmClient, record *entity.ActionRecord, txHash ethcommon.Hash,
) (*SubmitResult, error) {
	cfg := xcontext.Configs(ctx).Blockchain
	deadline := time.Now().Add(cfg.ConfirmationTimeout)

	for {
		receipt, err := client.TransactionReceipt(ctx, txHash)
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			xcontext.Logger(ctx).Warnf("Cannot fetch receipt of %s: %v", txHash.Hex(), err)
		}

		if receipt != nil {
			if receipt.Status == ethtypes.ReceiptStatusSuccessful {
				record.State = entity.ActionStateConfirmed
				if err := s.actionRepo.UpdateByID(ctx, record.ID, &entity.ActionRecord{
					State: entity.ActionStateConfirmed,
				}); err != nil {
					xcontext.Logger(ctx).Errorf("Cannot confirm action %s: %v", record.ID, err)
				}

				return &SubmitResult{
					ActionID: record.ID,
					TxHash:   record.TxHash,
					State:    entity.ActionStateConfirmed,
				}, nil
			}

			// The receipt does not carry the revert reason; recovering it
			// would need a replay of the original calldata at the mined
			// block, which not all public RPCs allow.
			s.failWithReason(ctx, record, "no reason given")
			return nil, errorx.New(errorx.Reverted, "The transaction reverted: no reason given")
		}

		if time.Now().After(deadline) {
			return nil, errorx.New(errorx.Timeout,
				"Could not confirm the transaction in time, refresh to check again")
		}

		select {
		case <-ctx.Done():
			return nil, errorx.New(errorx.Timeout,
				"Could not confirm the transaction in time, refresh to check again")
		case <-time.After(cfg.ConfirmationInterval):
		}
	}
}

func (s *Submitter) preflightBalance(
	ctx context.Context, client EvmClient, from ethcommon.Address, tx *ethtypes.Transaction,
) error {
	balance, err := client.BalanceAt(ctx, from, nil)
	if err != nil || balance == nil {
		xcontext.Logger(ctx).Warnf("Cannot check balance of %s: %v", from.Hex(), err)
		return nil
	}

	minimum := new(big.Int).Mul(tx.GasPrice(), big.NewInt(int64(tx.Gas())))
	minimum.Add(minimum, tx.Value())
	if minimum.Cmp(balance) > 0 {
		return errorx.New(errorx.BadRequest,
			"Not enough balance, require at least %s", minimum.String())
	}

	return nil
}

func (s *Submitter) fail(ctx context.Context, record *entity.ActionRecord, cause error) {
	s.failWithReason(ctx, record, submitError(ctx, cause).Message)
}

func (s *Submitter) failWithReason(ctx context.Context, record *entity.ActionRecord, reason string) {
	record.State = entity.ActionStateFailed
	record.Reason = reason
	err := s.actionRepo.UpdateByID(ctx, record.ID, &entity.ActionRecord{
		State:  entity.ActionStateFailed,
		Reason: reason,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot fail action %s: %v", record.ID, err)
	}
}

// submitError maps a raw signing or broadcast failure to the public error
// taxonomy, passing through errors that are already classified.
func submitError(ctx context.Context, err error) errorx.Error {
	var errx errorx.Error
	if errors.As(err, &errx) {
		return errx
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errorx.New(errorx.Timeout, "The network did not answer in time")
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "user rejected") || strings.Contains(msg, "user denied"):
		return errorx.New(errorx.UserRejected, "The signature request was declined")
	case strings.Contains(msg, "execution reverted"):
		return errorx.New(errorx.Reverted, "The transaction reverted: %s", revertMessage(msg))
	}

	xcontext.Logger(ctx).Warnf("Chain submission failed: %v", err)
	return errorx.New(errorx.NetworkError, "Cannot reach the network")
}

// revertMessage strips the provider's boilerplate prefix from a revert error.
func revertMessage(msg string) string {
	const prefix = "execution reverted"
	if i := strings.Index(msg, prefix); i >= 0 {
		trimmed := strings.TrimLeft(msg[i+len(prefix):], ": ")
		if trimmed != "" {
			return trimmed
		}
	}

	return "no reason given"
}
