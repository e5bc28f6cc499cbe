package identity

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/ethereum"
	"github.com/chainsafe/kyc-middleware/pkg/identity/mocks"
)

var (
	testOperator = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	testUser     = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	testIdentity = common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")
)

func deployReceipt() *types.Receipt {
	return &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(12),
	}
}

func TestProvision_GrantsUserKeyPurposesInOrder(t *testing.T) {
	ctx := context.Background()
	receipt := deployReceipt()
	userKey := ethereum.KeyHash(testUser)
	operatorKeys := [][32]byte{ethereum.KeyHash(testOperator)}

	var grants []int64

	chain := mocks.NewChain(t)
	chain.EXPECT().OperatorAddress().Return(testOperator).Once()
	chain.EXPECT().
		DeployIdentity(ctx, testUser, mock.Anything, operatorKeys).
		Return(receipt, nil).
		Once()
	chain.EXPECT().
		IdentityFromReceipt(receipt, testUser).
		Return(testIdentity, nil).
		Once()
	chain.EXPECT().
		AddKey(ctx, testIdentity, userKey, big.NewInt(PurposeManagement), big.NewInt(KeyTypeECDSA)).
		Run(func(context.Context, common.Address, [32]byte, *big.Int, *big.Int) {
			grants = append(grants, PurposeManagement)
		}).
		Return(common.HexToHash("0x01"), nil).
		Once()
	chain.EXPECT().
		AddKey(ctx, testIdentity, userKey, big.NewInt(PurposeClaimSigner), big.NewInt(KeyTypeECDSA)).
		Run(func(context.Context, common.Address, [32]byte, *big.Int, *big.Int) {
			grants = append(grants, PurposeClaimSigner)
		}).
		Return(common.HexToHash("0x02"), nil).
		Once()

	got, err := NewService(chain, zap.NewNop()).Provision(ctx, testUser)
	if err != nil {
		t.Fatalf("Provision() failed: %v", err)
	}
	if got != testIdentity {
		t.Errorf("identity = %s, want %s", got.Hex(), testIdentity.Hex())
	}
	if len(grants) != 2 || grants[0] != PurposeManagement || grants[1] != PurposeClaimSigner {
		t.Errorf("grant order = %v, want [%d %d]", grants, PurposeManagement, PurposeClaimSigner)
	}
}

func TestProvision_FreshSaltPerAttempt(t *testing.T) {
	ctx := context.Background()
	receipt := deployReceipt()

	var salts []string

	chain := mocks.NewChain(t)
	chain.EXPECT().OperatorAddress().Return(testOperator)
	chain.EXPECT().
		DeployIdentity(ctx, testUser, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ common.Address, salt string, _ [][32]byte) {
			salts = append(salts, salt)
		}).
		Return(receipt, nil)
	chain.EXPECT().IdentityFromReceipt(receipt, testUser).Return(testIdentity, nil)
	chain.EXPECT().
		AddKey(ctx, testIdentity, mock.Anything, mock.Anything, mock.Anything).
		Return(common.HexToHash("0x01"), nil)

	svc := NewService(chain, zap.NewNop())
	for i := 0; i < 2; i++ {
		if _, err := svc.Provision(ctx, testUser); err != nil {
			t.Fatalf("Provision() attempt %d failed: %v", i, err)
		}
	}

	if len(salts) != 2 {
		t.Fatalf("expected 2 deployments, got %d", len(salts))
	}
	for _, salt := range salts {
		if _, err := uuid.Parse(salt); err != nil {
			t.Errorf("salt %q is not a UUID: %v", salt, err)
		}
	}
	if salts[0] == salts[1] {
		t.Errorf("expected a fresh salt per attempt, got %q twice", salts[0])
	}
}

func TestProvision_NoWalletLinkedEvent_StopsBeforeKeyGrants(t *testing.T) {
	ctx := context.Background()
	receipt := deployReceipt()

	// No AddKey expectations are registered: any key grant after the
	// event lookup fails would fail the test.
	chain := mocks.NewChain(t)
	chain.EXPECT().OperatorAddress().Return(testOperator).Once()
	chain.EXPECT().
		DeployIdentity(ctx, testUser, mock.Anything, mock.Anything).
		Return(receipt, nil).
		Once()
	chain.EXPECT().
		IdentityFromReceipt(receipt, testUser).
		Return(common.Address{}, apperrors.EventNotFoundError(nil, "identity address not found in deployment receipt")).
		Once()

	_, err := NewService(chain, zap.NewNop()).Provision(ctx, testUser)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperrors.Is(err, apperrors.CategoryEventNotFound) {
		t.Errorf("expected CategoryEventNotFound, got %v", err)
	}
}

func TestProvision_DeployFailurePropagates(t *testing.T) {
	ctx := context.Background()

	chain := mocks.NewChain(t)
	chain.EXPECT().OperatorAddress().Return(testOperator).Once()
	chain.EXPECT().
		DeployIdentity(ctx, testUser, mock.Anything, mock.Anything).
		Return(nil, apperrors.ChainWriteError(errors.New("status 0"), "deploy_identity transaction reverted")).
		Once()

	_, err := NewService(chain, zap.NewNop()).Provision(ctx, testUser)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperrors.Is(err, apperrors.CategoryChainWrite) {
		t.Errorf("expected CategoryChainWrite, got %v", err)
	}
	if !strings.Contains(err.Error(), "deploy") {
		t.Errorf("expected error to name the deploy step, got %q", err.Error())
	}
}

func TestProvision_ManagementGrantFailure_SkipsClaimGrant(t *testing.T) {
	ctx := context.Background()
	receipt := deployReceipt()
	userKey := ethereum.KeyHash(testUser)

	// Only the management grant is expected; a claim-signer grant after
	// the failure would be an unexpected call.
	chain := mocks.NewChain(t)
	chain.EXPECT().OperatorAddress().Return(testOperator).Once()
	chain.EXPECT().
		DeployIdentity(ctx, testUser, mock.Anything, mock.Anything).
		Return(receipt, nil).
		Once()
	chain.EXPECT().
		IdentityFromReceipt(receipt, testUser).
		Return(testIdentity, nil).
		Once()
	chain.EXPECT().
		AddKey(ctx, testIdentity, userKey, big.NewInt(PurposeManagement), big.NewInt(KeyTypeECDSA)).
		Return(common.Hash{}, apperrors.ConfirmationTimeoutError(nil, "timed out waiting for transaction confirmation")).
		Once()

	_, err := NewService(chain, zap.NewNop()).Provision(ctx, testUser)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperrors.Is(err, apperrors.CategoryConfirmationTimeout) {
		t.Errorf("expected CategoryConfirmationTimeout, got %v", err)
	}
	if !strings.Contains(err.Error(), "grant_management_key") {
		t.Errorf("expected error to name the failed step, got %q", err.Error())
	}
}

func TestProvision_ZeroAddressRejected(t *testing.T) {
	chain := mocks.NewChain(t)

	_, err := NewService(chain, zap.NewNop()).Provision(context.Background(), common.Address{})
	if !apperrors.Is(err, apperrors.CategoryValidation) {
		t.Errorf("expected CategoryValidation, got %v", err)
	}
}
