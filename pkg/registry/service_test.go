package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/registry/mocks"
)

var (
	testUser     = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	testIdentity = common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")
)

func TestRegister_SubmitsRegistration(t *testing.T) {
	ctx := context.Background()
	wantTx := common.HexToHash("0x6b9a0b1c2d3e4f50617283940a5b6c7d8e9fa0b1c2d3e4f50617283940a5b6c7")

	chain := mocks.NewChain(t)
	chain.EXPECT().
		RegisterIdentity(ctx, testUser, testIdentity, uint16(840)).
		Return(wantTx, nil).
		Once()

	txHash, err := NewService(chain, zap.NewNop()).Register(ctx, testUser, testIdentity, 840)
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if txHash != wantTx {
		t.Errorf("tx hash = %s, want %s", txHash.Hex(), wantTx.Hex())
	}
}

func TestRegister_ValidatesAddresses(t *testing.T) {
	ctx := context.Background()
	svc := NewService(mocks.NewChain(t), zap.NewNop())

	_, err := svc.Register(ctx, common.Address{}, testIdentity, 840)
	if !apperrors.Is(err, apperrors.CategoryValidation) {
		t.Errorf("zero user: expected CategoryValidation, got %v", err)
	}

	_, err = svc.Register(ctx, testUser, common.Address{}, 840)
	if !apperrors.Is(err, apperrors.CategoryValidation) {
		t.Errorf("zero identity: expected CategoryValidation, got %v", err)
	}
}

func TestRegister_PropagatesWriteErrors(t *testing.T) {
	ctx := context.Background()

	chain := mocks.NewChain(t)
	chain.EXPECT().
		RegisterIdentity(ctx, testUser, testIdentity, uint16(840)).
		Return(common.Hash{}, apperrors.ChainWriteError(errors.New("status 0"), "register_identity transaction reverted")).
		Once()

	_, err := NewService(chain, zap.NewNop()).Register(ctx, testUser, testIdentity, 840)
	if !apperrors.Is(err, apperrors.CategoryChainWrite) {
		t.Errorf("expected CategoryChainWrite, got %v", err)
	}
}

func TestReads_AreIdempotent(t *testing.T) {
	ctx := context.Background()

	chain := mocks.NewChain(t)
	chain.EXPECT().IsVerified(ctx, testUser).Return(true, nil).Times(3)
	chain.EXPECT().IdentityOf(ctx, testUser).Return(testIdentity, nil).Times(3)

	svc := NewService(chain, zap.NewNop())
	for i := 0; i < 3; i++ {
		verified, err := svc.IsVerified(ctx, testUser)
		if err != nil {
			t.Fatalf("IsVerified() call %d failed: %v", i, err)
		}
		if !verified {
			t.Errorf("IsVerified() call %d = false, want true", i)
		}

		identityAddress, err := svc.IdentityOf(ctx, testUser)
		if err != nil {
			t.Fatalf("IdentityOf() call %d failed: %v", i, err)
		}
		if identityAddress != testIdentity {
			t.Errorf("IdentityOf() call %d = %s, want %s", i, identityAddress.Hex(), testIdentity.Hex())
		}
	}
}

func TestIsVerified_PropagatesReadErrors(t *testing.T) {
	ctx := context.Background()

	chain := mocks.NewChain(t)
	chain.EXPECT().
		IsVerified(ctx, testUser).
		Return(false, apperrors.ChainReadError(errors.New("rpc down"), "failed to query verification status")).
		Once()

	_, err := NewService(chain, zap.NewNop()).IsVerified(ctx, testUser)
	if !apperrors.Is(err, apperrors.CategoryChainRead) {
		t.Errorf("expected CategoryChainRead, got %v", err)
	}
}

func TestReads_RejectZeroAddress(t *testing.T) {
	ctx := context.Background()
	svc := NewService(mocks.NewChain(t), zap.NewNop())

	if _, err := svc.IsVerified(ctx, common.Address{}); !apperrors.Is(err, apperrors.CategoryValidation) {
		t.Errorf("IsVerified: expected CategoryValidation, got %v", err)
	}
	if _, err := svc.IdentityOf(ctx, common.Address{}); !apperrors.Is(err, apperrors.CategoryValidation) {
		t.Errorf("IdentityOf: expected CategoryValidation, got %v", err)
	}
}
