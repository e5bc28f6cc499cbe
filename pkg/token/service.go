// Package token mints permissioned-token investments for verified users.
// Amounts arrive as decimal strings and are scaled to the token's own base
// units before the mint transaction is submitted.
package token

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/ethereum"
)

// Chain is the narrow chain-gateway interface the token service drives.
//
//go:generate mockery --name Chain --output mocks --outpkg mocks --filename mock_chain.go --with-expecter
type Chain interface {
	TokenDecimals(ctx context.Context, token common.Address) (uint8, error)
	TokenPaused(ctx context.Context, token common.Address) (bool, error)
	MintTokens(ctx context.Context, token common.Address, to common.Address, amount *big.Int) (common.Hash, error)
}

// Service defines the interface for the token business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Invest(ctx context.Context, to common.Address, amount string, tokenAddress common.Address) (common.Hash, error)
}

type tokenService struct {
	chain        Chain
	defaultToken common.Address
	logger       *zap.Logger
}

// NewService creates a new token service. defaultToken is used when a
// request does not name a token contract; it may be the zero address if
// every request carries its own.
func NewService(chain Chain, defaultToken common.Address, logger *zap.Logger) Service {
	return &tokenService{
		chain:        chain,
		defaultToken: defaultToken,
		logger:       logger,
	}
}

// Invest mints amount tokens to the given recipient. The amount is a
// decimal string in whole-token units ("2.5"); it is scaled by the
// token's decimals() and must not carry more fractional digits than the
// token supports. The token contract enforces recipient verification, so
// minting to an unverified address reverts.
func (s *tokenService) Invest(ctx context.Context, to common.Address, amount string, tokenAddress common.Address) (common.Hash, error) {
	if ethereum.IsZeroAddress(to) {
		return common.Hash{}, apperrors.ValidationError(nil, "recipient address must not be the zero address")
	}

	token := tokenAddress
	if ethereum.IsZeroAddress(token) {
		token = s.defaultToken
	}
	if ethereum.IsZeroAddress(token) {
		return common.Hash{}, apperrors.ValidationError(nil, "no token contract configured")
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return common.Hash{}, apperrors.ValidationError(err, "amount must be a decimal number")
	}
	if amt.Sign() <= 0 {
		return common.Hash{}, apperrors.ValidationError(nil, "amount must be positive")
	}

	decimals, err := s.chain.TokenDecimals(ctx, token)
	if err != nil {
		return common.Hash{}, err
	}

	units := amt.Shift(int32(decimals))
	if !units.IsInteger() {
		return common.Hash{}, apperrors.ValidationError(nil, "amount has more decimal places than the token supports")
	}

	paused, err := s.chain.TokenPaused(ctx, token)
	if err != nil {
		return common.Hash{}, err
	}
	if paused {
		return common.Hash{}, apperrors.ChainWriteError(nil, "token transfers are paused")
	}

	txHash, err := s.chain.MintTokens(ctx, token, to, units.BigInt())
	if err != nil {
		return common.Hash{}, err
	}

	s.logger.Info("Investment minted",
		zap.String("token", token.Hex()),
		zap.String("to", to.Hex()),
		zap.String("amount", amt.String()),
		zap.String("units", units.String()),
		zap.String("tx_hash", txHash.Hex()),
	)

	return txHash, nil
}
