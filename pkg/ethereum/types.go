package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// Backend is the slice of the node RPC surface the client depends on.
// *ethclient.Client satisfies it; tests substitute an in-memory chain.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// TxOption overrides per-transaction submission parameters.
type TxOption func(*txOptions)

type txOptions struct {
	gasLimit uint64
}

// WithGasLimit replaces the configured default gas limit for one
// submission. Claim writes use this: addClaim dispatches through the
// identity's execute/approve path and outgrows the plain-write default.
func WithGasLimit(limit uint64) TxOption {
	return func(o *txOptions) {
		o.gasLimit = limit
	}
}
