package claims

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/claims/mocks"
	"github.com/chainsafe/kyc-middleware/pkg/keys"
)

func testHolder(t *testing.T) *keys.Signer {
	t.Helper()

	holder, err := keys.GenerateSigner()
	if err != nil {
		t.Fatalf("GenerateSigner() failed: %v", err)
	}
	return holder
}

func issuedClaim(t *testing.T, issuer *Issuer, identity common.Address) *Claim {
	t.Helper()

	claim, err := issuer.IssueClaim(identity, big.NewInt(42), []byte("KYC passed"))
	if err != nil {
		t.Fatalf("IssueClaim() failed: %v", err)
	}
	return claim
}

func claimDigest(t *testing.T, identity common.Address, claim *Claim) common.Hash {
	t.Helper()

	dataHash, err := DataHash(identity, claim.Topic, claim.Data)
	if err != nil {
		t.Fatalf("DataHash() failed: %v", err)
	}
	return SigningDigest(dataHash)
}

func TestSubmit_SubmitsVerifiedClaim(t *testing.T) {
	ctx := context.Background()
	issuer := testIssuer(t)
	holder := testHolder(t)
	identity := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")
	claim := issuedClaim(t, issuer, identity)
	wantTx := common.HexToHash("0x11f3a2b328fd0d07c0053e39e0a0b64f23437cc1d49836f62cb247525b4a5e68")

	chain := mocks.NewChain(t)
	chain.EXPECT().
		RecoverClaimSigner(ctx, identity, claim.Signature, claimDigest(t, identity, claim)).
		Return(claim.Issuer, nil).
		Once()
	chain.EXPECT().
		AddClaim(ctx, holder, identity, claim.Topic, claim.Scheme, claim.Issuer, claim.Signature, claim.Data, claim.URI).
		Return(wantTx, nil).
		Once()

	txHash, err := NewSubmitter(chain, zap.NewNop()).Submit(ctx, identity, holder, claim)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if txHash != wantTx {
		t.Errorf("tx hash = %s, want %s", txHash.Hex(), wantTx.Hex())
	}
}

func TestSubmit_RejectsMismatchWithoutSubmitting(t *testing.T) {
	ctx := context.Background()
	issuer := testIssuer(t)
	holder := testHolder(t)
	identity := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")

	claim := issuedClaim(t, issuer, identity)
	claim.Data = append([]byte(nil), claim.Data...)
	claim.Data[0] ^= 0x01 // tampered after signing

	// The contract view honestly recovers some other address for the
	// tampered digest; no AddClaim expectation is registered, so any
	// submission attempt fails the test.
	chain := mocks.NewChain(t)
	chain.EXPECT().
		RecoverClaimSigner(ctx, identity, claim.Signature, claimDigest(t, identity, claim)).
		Return(common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"), nil).
		Once()

	_, err := NewSubmitter(chain, zap.NewNop()).Submit(ctx, identity, holder, claim)
	if err == nil {
		t.Fatal("expected error for tampered claim, got nil")
	}
	if !apperrors.Is(err, apperrors.CategorySignatureMismatch) {
		t.Errorf("expected CategorySignatureMismatch, got %v", err)
	}
}

func TestSubmit_PropagatesRecoveryViewErrors(t *testing.T) {
	ctx := context.Background()
	issuer := testIssuer(t)
	holder := testHolder(t)
	identity := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")
	claim := issuedClaim(t, issuer, identity)

	chain := mocks.NewChain(t)
	chain.EXPECT().
		RecoverClaimSigner(ctx, identity, claim.Signature, claimDigest(t, identity, claim)).
		Return(common.Address{}, apperrors.ChainReadError(errors.New("rpc down"), "failed to recover claim signer on chain")).
		Once()

	_, err := NewSubmitter(chain, zap.NewNop()).Submit(ctx, identity, holder, claim)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperrors.Is(err, apperrors.CategoryChainRead) {
		t.Errorf("expected CategoryChainRead, got %v", err)
	}
}

func TestSubmit_PropagatesWriteErrors(t *testing.T) {
	ctx := context.Background()
	issuer := testIssuer(t)
	holder := testHolder(t)
	identity := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")
	claim := issuedClaim(t, issuer, identity)

	chain := mocks.NewChain(t)
	chain.EXPECT().
		RecoverClaimSigner(ctx, identity, claim.Signature, claimDigest(t, identity, claim)).
		Return(claim.Issuer, nil).
		Once()
	chain.EXPECT().
		AddClaim(ctx, holder, identity, claim.Topic, claim.Scheme, claim.Issuer, claim.Signature, claim.Data, claim.URI).
		Return(common.Hash{}, apperrors.ChainWriteError(errors.New("status 0"), "add_claim transaction reverted")).
		Once()

	_, err := NewSubmitter(chain, zap.NewNop()).Submit(ctx, identity, holder, claim)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperrors.Is(err, apperrors.CategoryChainWrite) {
		t.Errorf("expected CategoryChainWrite, got %v", err)
	}
}

func TestSubmit_ValidatesInputs(t *testing.T) {
	ctx := context.Background()
	holder := testHolder(t)
	submitter := NewSubmitter(mocks.NewChain(t), zap.NewNop())

	_, err := submitter.Submit(ctx, common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"), holder, nil)
	if !apperrors.Is(err, apperrors.CategoryValidation) {
		t.Errorf("nil claim: expected CategoryValidation, got %v", err)
	}

	claim := issuedClaim(t, testIssuer(t), common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"))
	_, err = submitter.Submit(ctx, common.Address{}, holder, claim)
	if !apperrors.Is(err, apperrors.CategoryValidation) {
		t.Errorf("zero identity: expected CategoryValidation, got %v", err)
	}
}
