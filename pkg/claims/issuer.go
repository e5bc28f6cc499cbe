package claims

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/chainsafe/kyc-middleware/internal/metrics"
	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/ethereum"
	"github.com/chainsafe/kyc-middleware/pkg/keys"
)

// Issuer signs claims with the claim-signer credential. One instance is
// shared across requests; signing is pure computation and safe for
// concurrent use.
type Issuer struct {
	signer *keys.Signer
	logger *zap.Logger
}

// NewIssuer wraps the claim-signer credential.
func NewIssuer(signer *keys.Signer, logger *zap.Logger) *Issuer {
	return &Issuer{signer: signer, logger: logger}
}

// Address returns the issuer's signing address. Claims carry this
// address, and recovery must yield it back for a claim to be accepted.
func (i *Issuer) Address() common.Address {
	return i.signer.Address()
}

// IssueClaim signs an attestation binding topic and data to the subject
// identity contract. The returned claim carries a 65-byte signature in
// wire form (v = 27/28), ready for on-chain verification.
func (i *Issuer) IssueClaim(identity common.Address, topic *big.Int, data []byte) (*Claim, error) {
	if ethereum.IsZeroAddress(identity) {
		return nil, apperrors.ValidationError(nil, "subject identity address must not be the zero address")
	}
	if topic == nil || topic.Sign() < 0 {
		return nil, apperrors.ValidationError(nil, "claim topic must be a non-negative integer")
	}

	dataHash, err := DataHash(identity, topic, data)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	sig, err := i.signer.SignDigest(SigningDigest(dataHash))
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("sign claim digest: %w", err))
	}
	// Contracts recover with the legacy 27/28 recovery id.
	sig[crypto.RecoveryIDOffset] += 27

	metrics.ClaimsIssued.Inc()
	i.logger.Info("Claim issued",
		zap.String("identity", identity.Hex()),
		zap.String("topic", topic.String()),
		zap.String("issuer", i.signer.Address().Hex()),
		zap.String("signature", redactSignature(sig)))

	return &Claim{
		Topic:     new(big.Int).Set(topic),
		Scheme:    big.NewInt(SchemeECDSA),
		Issuer:    i.signer.Address(),
		Signature: sig,
		Data:      append([]byte(nil), data...),
		URI:       "",
	}, nil
}
