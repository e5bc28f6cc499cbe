// Package registry fronts the on-chain identity registry: operator-signed
// registration writes and the read-only verification views.
package registry

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/kyc-middleware/internal/metrics"
	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/ethereum"
)

// Chain is the narrow chain-gateway interface the registry service drives.
//
//go:generate mockery --name Chain --output mocks --outpkg mocks --filename mock_chain.go --with-expecter
type Chain interface {
	RegisterIdentity(ctx context.Context, user common.Address, identity common.Address, country uint16) (common.Hash, error)
	IsVerified(ctx context.Context, user common.Address) (bool, error)
	IdentityOf(ctx context.Context, user common.Address) (common.Address, error)
}

// Service defines the interface for the registry business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Register(ctx context.Context, user common.Address, identity common.Address, country uint16) (common.Hash, error)
	IsVerified(ctx context.Context, user common.Address) (bool, error)
	IdentityOf(ctx context.Context, user common.Address) (common.Address, error)
}

type registryService struct {
	chain  Chain
	logger *zap.Logger
}

// NewService creates a new registry service
func NewService(chain Chain, logger *zap.Logger) Service {
	return &registryService{
		chain:  chain,
		logger: logger,
	}
}

// Register enrolls a user's identity in the registry under the given
// ISO 3166-1 numeric country code. Returns the registration tx hash.
func (s *registryService) Register(ctx context.Context, user common.Address, identity common.Address, country uint16) (common.Hash, error) {
	if ethereum.IsZeroAddress(user) {
		return common.Hash{}, apperrors.ValidationError(nil, "user address must not be the zero address")
	}
	if ethereum.IsZeroAddress(identity) {
		return common.Hash{}, apperrors.ValidationError(nil, "identity address must not be the zero address")
	}

	txHash, err := s.chain.RegisterIdentity(ctx, user, identity, country)
	if err != nil {
		return common.Hash{}, err
	}

	s.logger.Info("Identity registered",
		zap.String("user_address", user.Hex()),
		zap.String("identity_address", identity.Hex()),
		zap.Uint16("country", country),
		zap.String("tx_hash", txHash.Hex()),
	)

	return txHash, nil
}

// IsVerified reports whether the registry considers the user verified,
// meaning their registered identity carries every required claim.
func (s *registryService) IsVerified(ctx context.Context, user common.Address) (bool, error) {
	if ethereum.IsZeroAddress(user) {
		return false, apperrors.ValidationError(nil, "user address must not be the zero address")
	}

	verified, err := s.chain.IsVerified(ctx, user)
	if err != nil {
		return false, err
	}

	result := "unverified"
	if verified {
		result = "verified"
	}
	metrics.VerificationChecks.WithLabelValues(result).Inc()

	return verified, nil
}

// IdentityOf returns the identity address registered for the user, or the
// zero address when the user has never been registered.
func (s *registryService) IdentityOf(ctx context.Context, user common.Address) (common.Address, error) {
	if ethereum.IsZeroAddress(user) {
		return common.Address{}, apperrors.ValidationError(nil, "user address must not be the zero address")
	}

	return s.chain.IdentityOf(ctx, user)
}
