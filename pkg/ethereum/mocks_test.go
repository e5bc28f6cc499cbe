package ethereum

// TODO: generate this with mockery once the Backend surface settles

import (
	"context"
	"math/big"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// mockBackend is a function-field implementation of Backend. Fields left
// nil fall back to inert defaults.
type mockBackend struct {
	CodeAtFunc              func(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
	CallContractFunc        func(ctx context.Context, call goethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	HeaderByNumberFunc      func(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingCodeAtFunc       func(ctx context.Context, account common.Address) ([]byte, error)
	PendingNonceAtFunc      func(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPriceFunc     func(ctx context.Context) (*big.Int, error)
	SuggestGasTipCapFunc    func(ctx context.Context) (*big.Int, error)
	EstimateGasFunc         func(ctx context.Context, call goethereum.CallMsg) (uint64, error)
	SendTransactionFunc     func(ctx context.Context, tx *types.Transaction) error
	FilterLogsFunc          func(ctx context.Context, query goethereum.FilterQuery) ([]types.Log, error)
	SubscribeFilterLogsFunc func(ctx context.Context, query goethereum.FilterQuery, ch chan<- types.Log) (goethereum.Subscription, error)
	TransactionReceiptFunc  func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	ChainIDFunc             func(ctx context.Context) (*big.Int, error)
}

func (m *mockBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	if m.CodeAtFunc != nil {
		return m.CodeAtFunc(ctx, contract, blockNumber)
	}
	return []byte{0x01}, nil
}

func (m *mockBackend) CallContract(ctx context.Context, call goethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if m.CallContractFunc != nil {
		return m.CallContractFunc(ctx, call, blockNumber)
	}
	return nil, nil
}

func (m *mockBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	if m.HeaderByNumberFunc != nil {
		return m.HeaderByNumberFunc(ctx, number)
	}
	return &types.Header{Number: big.NewInt(1), BaseFee: big.NewInt(1_000_000_000)}, nil
}

func (m *mockBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	if m.PendingCodeAtFunc != nil {
		return m.PendingCodeAtFunc(ctx, account)
	}
	return []byte{0x01}, nil
}

func (m *mockBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if m.PendingNonceAtFunc != nil {
		return m.PendingNonceAtFunc(ctx, account)
	}
	return 0, nil
}

func (m *mockBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if m.SuggestGasPriceFunc != nil {
		return m.SuggestGasPriceFunc(ctx)
	}
	return big.NewInt(1_000_000_000), nil
}

func (m *mockBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	if m.SuggestGasTipCapFunc != nil {
		return m.SuggestGasTipCapFunc(ctx)
	}
	return big.NewInt(1_000_000_000), nil
}

func (m *mockBackend) EstimateGas(ctx context.Context, call goethereum.CallMsg) (uint64, error) {
	if m.EstimateGasFunc != nil {
		return m.EstimateGasFunc(ctx, call)
	}
	return 21000, nil
}

func (m *mockBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if m.SendTransactionFunc != nil {
		return m.SendTransactionFunc(ctx, tx)
	}
	return nil
}

func (m *mockBackend) FilterLogs(ctx context.Context, query goethereum.FilterQuery) ([]types.Log, error) {
	if m.FilterLogsFunc != nil {
		return m.FilterLogsFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockBackend) SubscribeFilterLogs(ctx context.Context, query goethereum.FilterQuery, ch chan<- types.Log) (goethereum.Subscription, error) {
	if m.SubscribeFilterLogsFunc != nil {
		return m.SubscribeFilterLogsFunc(ctx, query, ch)
	}
	return nil, goethereum.NotFound
}

func (m *mockBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if m.TransactionReceiptFunc != nil {
		return m.TransactionReceiptFunc(ctx, txHash)
	}
	return nil, goethereum.NotFound
}

func (m *mockBackend) ChainID(ctx context.Context) (*big.Int, error) {
	if m.ChainIDFunc != nil {
		return m.ChainIDFunc(ctx)
	}
	return big.NewInt(31337), nil
}
