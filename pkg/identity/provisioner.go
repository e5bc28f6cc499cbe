// Package identity provisions on-chain identity contracts. A provisioning
// run deploys an identity through the factory, extracts the deployed
// address from the receipt's wallet-linked event, and then grants the
// user's own key its management and claim-signing purposes. Steps run
// strictly in order and there is no rollback: a failure surfaces the step
// it happened in and leaves everything already on chain as it is.
package identity

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/kyc-middleware/internal/metrics"
	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/ethereum"
)

// ERC-734 key purposes and key types granted during provisioning
const (
	PurposeManagement  = 1
	PurposeClaimSigner = 3
	KeyTypeECDSA       = 1
)

// Provisioning step names used in errors, logs and metrics
const (
	stepDeploy           = "deploy"
	stepExtractAddress   = "extract_address"
	stepGrantManagement  = "grant_management_key"
	stepGrantClaimSigner = "grant_claim_signer_key"
)

// Chain is the narrow chain-gateway interface the provisioner drives.
// Defined here to keep the provisioner decoupled from the full client surface.
//
//go:generate mockery --name Chain --output mocks --outpkg mocks --filename mock_chain.go --with-expecter
type Chain interface {
	OperatorAddress() common.Address
	DeployIdentity(ctx context.Context, wallet common.Address, salt string, managementKeys [][32]byte) (*types.Receipt, error)
	IdentityFromReceipt(receipt *types.Receipt, wallet common.Address) (common.Address, error)
	AddKey(ctx context.Context, identity common.Address, key [32]byte, purpose, keyType *big.Int) (common.Hash, error)
}

// Service defines the interface for the identity provisioning business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Provision(ctx context.Context, userAddress common.Address) (common.Address, error)
}

type provisioner struct {
	chain  Chain
	logger *zap.Logger
}

// NewService creates a new identity provisioning service
func NewService(chain Chain, logger *zap.Logger) Service {
	return &provisioner{
		chain:  chain,
		logger: logger,
	}
}

// Provision deploys and configures an identity for the given user wallet.
//
// The provisioning sequence:
//  1. Deploys the identity through the factory, naming the user as the
//     initial linked wallet and the operator key as the sole management
//     key at creation time.
//  2. Extracts the identity address from the receipt's wallet-linked
//     event. A receipt without one stops the run; no keys are granted.
//  3. Grants the user's key MANAGEMENT purpose, then CLAIM_SIGNER
//     purpose, as two sequential transactions with fresh fee quotes.
//
// Returns the deployed identity address.
func (p *provisioner) Provision(ctx context.Context, userAddress common.Address) (common.Address, error) {
	if ethereum.IsZeroAddress(userAddress) {
		return common.Address{}, apperrors.ValidationError(nil, "user address must not be the zero address")
	}

	// Fresh salt per attempt: the factory derives the deployment address
	// from it, so a retry after a partial failure must not collide with
	// an earlier deployment.
	salt := uuid.NewString()

	p.logger.Info("Provisioning identity",
		zap.String("user_address", userAddress.Hex()),
		zap.String("salt", salt),
	)

	stepStart := time.Now()
	receipt, err := p.chain.DeployIdentity(ctx, userAddress, salt, [][32]byte{
		ethereum.KeyHash(p.chain.OperatorAddress()),
	})
	p.observe(stepDeploy, stepStart)
	if err != nil {
		return common.Address{}, p.fail(stepDeploy, err)
	}

	identityAddress, err := p.chain.IdentityFromReceipt(receipt, userAddress)
	if err != nil {
		// Without the wallet-linked event there is no address to
		// configure, so the run ends here.
		return common.Address{}, p.fail(stepExtractAddress, err)
	}

	userKey := ethereum.KeyHash(userAddress)

	stepStart = time.Now()
	_, err = p.chain.AddKey(ctx, identityAddress, userKey, big.NewInt(PurposeManagement), big.NewInt(KeyTypeECDSA))
	p.observe(stepGrantManagement, stepStart)
	if err != nil {
		return common.Address{}, p.fail(stepGrantManagement, err)
	}

	stepStart = time.Now()
	_, err = p.chain.AddKey(ctx, identityAddress, userKey, big.NewInt(PurposeClaimSigner), big.NewInt(KeyTypeECDSA))
	p.observe(stepGrantClaimSigner, stepStart)
	if err != nil {
		return common.Address{}, p.fail(stepGrantClaimSigner, err)
	}

	metrics.ProvisioningsTotal.WithLabelValues("completed").Inc()
	p.logger.Info("Identity provisioned",
		zap.String("user_address", userAddress.Hex()),
		zap.String("identity_address", identityAddress.Hex()),
	)

	return identityAddress, nil
}

func (p *provisioner) observe(step string, start time.Time) {
	metrics.ProvisioningStepDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())
}

func (p *provisioner) fail(step string, err error) error {
	metrics.ProvisioningsTotal.WithLabelValues("failed").Inc()
	metrics.ProvisioningFailures.WithLabelValues(step).Inc()
	return fmt.Errorf("%s: %w", step, err)
}
