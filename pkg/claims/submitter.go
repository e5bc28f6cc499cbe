package claims

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/kyc-middleware/internal/metrics"
	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/ethereum"
	"github.com/chainsafe/kyc-middleware/pkg/keys"
)

// Chain is the slice of the Ethereum gateway the submitter drives.
// Defined here to keep the submitter decoupled from the full client.
//
//go:generate mockery --name Chain --output mocks --outpkg mocks --filename mock_chain.go --with-expecter
type Chain interface {
	// RecoverClaimSigner runs the identity contract's recovery view over a
	// signature and the prefixed signing digest.
	RecoverClaimSigner(ctx context.Context, identity common.Address, signature []byte, digest common.Hash) (common.Address, error)
	// AddClaim anchors a claim on the identity contract, signed by the
	// holder credential.
	AddClaim(ctx context.Context, holder *keys.Signer, identity common.Address, topic, scheme *big.Int, issuer common.Address, signature, data []byte, uri string) (common.Hash, error)
}

// Submitter anchors issued claims on identity contracts. Before spending
// gas it checks the signature against the contract's own recovery view,
// so a claim the contract would reject never reaches the mempool.
type Submitter struct {
	chain  Chain
	logger *zap.Logger
}

// NewSubmitter creates a claim submitter over the given chain gateway.
func NewSubmitter(chain Chain, logger *zap.Logger) *Submitter {
	return &Submitter{chain: chain, logger: logger}
}

// Submit pre-flights the claim against the identity contract's recovery
// view, then submits addClaim signed by the identity holder's own
// credential. Returns the hash of the confirmed transaction.
func (s *Submitter) Submit(ctx context.Context, identity common.Address, holder *keys.Signer, claim *Claim) (common.Hash, error) {
	if claim == nil {
		return common.Hash{}, apperrors.ValidationError(nil, "claim is required")
	}
	if ethereum.IsZeroAddress(identity) {
		return common.Hash{}, apperrors.ValidationError(nil, "subject identity address must not be the zero address")
	}

	dataHash, err := DataHash(identity, claim.Topic, claim.Data)
	if err != nil {
		return common.Hash{}, apperrors.GeneralError(err)
	}

	recovered, err := s.chain.RecoverClaimSigner(ctx, identity, claim.Signature, SigningDigest(dataHash))
	if err != nil {
		return common.Hash{}, err
	}
	if recovered != claim.Issuer {
		return common.Hash{}, apperrors.SignatureMismatchError(
			fmt.Errorf("signature recovers to %s, claim issuer is %s", recovered.Hex(), claim.Issuer.Hex()),
			"claim signature does not recover to its issuer")
	}

	txHash, err := s.chain.AddClaim(ctx, holder, identity,
		claim.Topic, claim.Scheme, claim.Issuer, claim.Signature, claim.Data, claim.URI)
	if err != nil {
		return common.Hash{}, err
	}
	metrics.ClaimsSubmitted.Inc()

	s.logger.Info("Claim submitted",
		zap.String("identity", identity.Hex()),
		zap.String("topic", claim.Topic.String()),
		zap.String("holder", holder.Address().Hex()),
		zap.String("tx_hash", txHash.Hex()))

	return txHash, nil
}
