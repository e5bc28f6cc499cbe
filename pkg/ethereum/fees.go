package ethereum

import (
	"errors"
	"math/big"
)

// ErrFeeDataUnavailable is returned when the node does not supply the fee
// data needed to price an EIP-1559 transaction.
var ErrFeeDataUnavailable = errors.New("fee data unavailable from node")

// Tip buffer applied to the floored priority fee: +10%, integer arithmetic.
const (
	tipBufferNumerator   = 110
	tipBufferDenominator = 100
)

// FeeData is a snapshot of the fee market as reported by the node.
type FeeData struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// FeePolicy controls how a fee market snapshot is turned into a quote.
type FeePolicy struct {
	// MinPriorityFee is the floor in wei applied to the node's suggested
	// priority fee. Suggestions below it are raised to it before buffering.
	MinPriorityFee *big.Int
}

// FeeQuote is the buffered fee pair attached to a single transaction.
// Quotes are computed fresh for every submission and never cached.
type FeeQuote struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// ComputeFeeQuote prices one transaction from a fee market snapshot. The
// suggested priority fee is raised to the policy floor, buffered by 10%,
// and the max fee is rebuilt as the snapshot's base fee estimate plus the
// buffered tip. All arithmetic stays in big.Int: fee spikes have produced
// per-gas values past the int64 range.
func ComputeFeeQuote(data *FeeData, policy FeePolicy) (*FeeQuote, error) {
	if data == nil || data.MaxFeePerGas == nil || data.MaxPriorityFeePerGas == nil {
		return nil, ErrFeeDataUnavailable
	}

	tip := new(big.Int).Set(data.MaxPriorityFeePerGas)
	if policy.MinPriorityFee != nil && tip.Cmp(policy.MinPriorityFee) < 0 {
		tip.Set(policy.MinPriorityFee)
	}

	buffered := new(big.Int).Mul(tip, big.NewInt(tipBufferNumerator))
	buffered.Quo(buffered, big.NewInt(tipBufferDenominator))

	// The gap between the node's max fee and its suggested priority fee is
	// the base fee estimate, headroom included.
	baseEstimate := new(big.Int).Sub(data.MaxFeePerGas, data.MaxPriorityFeePerGas)
	if baseEstimate.Sign() < 0 {
		baseEstimate.SetInt64(0)
	}

	return &FeeQuote{
		MaxFeePerGas:         new(big.Int).Add(baseEstimate, buffered),
		MaxPriorityFeePerGas: buffered,
	}, nil
}
