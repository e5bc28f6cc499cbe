package ethereum

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/config"
	"github.com/chainsafe/kyc-middleware/pkg/keys"
)

const (
	testOperatorKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testIssuerKey   = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
)

func testEthConfig() *config.EthereumConfig {
	return &config.EthereumConfig{
		RPCURL:              "http://localhost:8545",
		ChainID:             31337,
		IdentityFactory:     "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		IdentityRegistry:    "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		TokenContract:       "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0",
		OperatorPrivateKey:  testOperatorKey,
		GasLimit:            300_000,
		ClaimGasLimit:       500_000,
		MinPriorityFeeGwei:  32,
		ConfirmationTimeout: 2 * time.Second,
		ReceiptPollInterval: 5 * time.Millisecond,
	}
}

func testClient(t *testing.T, backend Backend) *Client {
	t.Helper()

	client, err := NewClientWithBackend(testEthConfig(), backend, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClientWithBackend() failed: %v", err)
	}
	return client
}

func testSigner(t *testing.T) *keys.Signer {
	t.Helper()

	signer, err := keys.GenerateSigner()
	if err != nil {
		t.Fatalf("GenerateSigner() failed: %v", err)
	}
	return signer
}

// dummyTx builds a transaction from the assembled options so submit has
// something to wait on; unit tests never hit a real signer path.
func dummyTx(auth *bind.TransactOpts) *types.Transaction {
	to := common.HexToAddress("0x000000000000000000000000000000000000dEaD")
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   big.NewInt(31337),
		Nonce:     auth.Nonce.Uint64(),
		GasTipCap: auth.GasTipCap,
		GasFeeCap: auth.GasFeeCap,
		Gas:       auth.GasLimit,
		To:        &to,
		Value:     big.NewInt(0),
	})
}

func successReceipt(txHash common.Hash) *types.Receipt {
	return &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      txHash,
		BlockNumber: big.NewInt(12),
		GasUsed:     90_000,
	}
}

func TestClientCredentials(t *testing.T) {
	client := testClient(t, &mockBackend{})

	operator := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	if client.OperatorAddress() != operator {
		t.Errorf("operator address = %s, want %s", client.OperatorAddress(), operator.Hex())
	}
	// Without a dedicated issuer key the operator signs claims too.
	if client.IssuerAddress() != operator {
		t.Errorf("issuer address = %s, want operator fallback %s", client.IssuerAddress(), operator.Hex())
	}

	cfg := testEthConfig()
	cfg.ClaimIssuerPrivateKey = testIssuerKey
	split, err := NewClientWithBackend(cfg, &mockBackend{}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClientWithBackend() failed: %v", err)
	}
	issuer := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	if split.IssuerAddress() != issuer {
		t.Errorf("issuer address = %s, want %s", split.IssuerAddress(), issuer.Hex())
	}
	if split.OperatorAddress() != operator {
		t.Errorf("operator address = %s, want %s", split.OperatorAddress(), operator.Hex())
	}
}

func TestSubmit_AppliesFreshQuoteAndNonce(t *testing.T) {
	backend := &mockBackend{
		PendingNonceAtFunc: func(ctx context.Context, account common.Address) (uint64, error) {
			return 7, nil
		},
		SuggestGasTipCapFunc: func(ctx context.Context) (*big.Int, error) {
			return gwei(2), nil
		},
		HeaderByNumberFunc: func(ctx context.Context, number *big.Int) (*types.Header, error) {
			return &types.Header{Number: big.NewInt(100), BaseFee: gwei(50)}, nil
		},
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return successReceipt(txHash), nil
		},
	}
	client := testClient(t, backend)

	var captured *bind.TransactOpts
	receipt, err := client.submit(context.Background(), testSigner(t), "test_op",
		func(auth *bind.TransactOpts) (*types.Transaction, error) {
			captured = auth
			return dummyTx(auth), nil
		})
	if err != nil {
		t.Fatalf("submit() failed: %v", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		t.Fatalf("receipt status = %d, want success", receipt.Status)
	}

	if captured.Nonce.Uint64() != 7 {
		t.Errorf("nonce = %s, want 7", captured.Nonce)
	}
	if captured.GasLimit != 300_000 {
		t.Errorf("gas limit = %d, want 300000", captured.GasLimit)
	}
	// Suggested 2 gwei tip is floored to 32 gwei and buffered to 35.2;
	// the max fee is the 100 gwei base estimate plus the buffered tip.
	if want := big.NewInt(35_200_000_000); captured.GasTipCap.Cmp(want) != 0 {
		t.Errorf("gas tip cap = %s, want %s", captured.GasTipCap, want)
	}
	if want := big.NewInt(135_200_000_000); captured.GasFeeCap.Cmp(want) != 0 {
		t.Errorf("gas fee cap = %s, want %s", captured.GasFeeCap, want)
	}
}

func TestSubmit_GasLimitOverride(t *testing.T) {
	backend := &mockBackend{
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return successReceipt(txHash), nil
		},
	}
	client := testClient(t, backend)

	var captured *bind.TransactOpts
	_, err := client.submit(context.Background(), testSigner(t), "test_op",
		func(auth *bind.TransactOpts) (*types.Transaction, error) {
			captured = auth
			return dummyTx(auth), nil
		},
		WithGasLimit(500_000))
	if err != nil {
		t.Fatalf("submit() failed: %v", err)
	}
	if captured.GasLimit != 500_000 {
		t.Errorf("gas limit = %d, want 500000", captured.GasLimit)
	}
}

func TestSubmit_RevertedTransaction(t *testing.T) {
	backend := &mockBackend{
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{
				Status:      types.ReceiptStatusFailed,
				TxHash:      txHash,
				BlockNumber: big.NewInt(12),
			}, nil
		},
	}
	client := testClient(t, backend)

	_, err := client.submit(context.Background(), testSigner(t), "test_op",
		func(auth *bind.TransactOpts) (*types.Transaction, error) {
			return dummyTx(auth), nil
		})
	if err == nil {
		t.Fatal("expected error for reverted transaction, got nil")
	}
	if !apperrors.Is(err, apperrors.CategoryChainWrite) {
		t.Errorf("expected CategoryChainWrite, got %v", err)
	}
}

func TestSubmit_ConfirmationTimeout(t *testing.T) {
	cfg := testEthConfig()
	cfg.ConfirmationTimeout = 50 * time.Millisecond
	cfg.ReceiptPollInterval = 10 * time.Millisecond

	client, err := NewClientWithBackend(cfg, &mockBackend{}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClientWithBackend() failed: %v", err)
	}

	_, err = client.submit(context.Background(), testSigner(t), "test_op",
		func(auth *bind.TransactOpts) (*types.Transaction, error) {
			return dummyTx(auth), nil
		})
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if !apperrors.Is(err, apperrors.CategoryConfirmationTimeout) {
		t.Errorf("expected CategoryConfirmationTimeout, got %v", err)
	}
}

func TestSubmit_CallerCancellation(t *testing.T) {
	client := testClient(t, &mockBackend{}) // receipt never arrives

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := client.submit(ctx, testSigner(t), "test_op",
		func(auth *bind.TransactOpts) (*types.Transaction, error) {
			return dummyTx(auth), nil
		})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if apperrors.Is(err, apperrors.CategoryConfirmationTimeout) {
		t.Error("caller cancellation must not be reported as a confirmation timeout")
	}
}

func TestSubmit_SerializesPerSigner(t *testing.T) {
	backend := &mockBackend{
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return successReceipt(txHash), nil
		},
	}
	client := testClient(t, backend)
	signer := testSigner(t)

	var inFlight int32
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.submit(context.Background(), signer, "test_op",
				func(auth *bind.TransactOpts) (*types.Transaction, error) {
					if !atomic.CompareAndSwapInt32(&inFlight, 0, 1) {
						t.Error("two submissions in flight for the same signer")
					}
					time.Sleep(2 * time.Millisecond)
					atomic.StoreInt32(&inFlight, 0)
					return dummyTx(auth), nil
				})
			if err != nil {
				t.Errorf("submit() failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestAddClaim_ElevatedGasLimit(t *testing.T) {
	var sent *types.Transaction
	backend := &mockBackend{
		SendTransactionFunc: func(ctx context.Context, tx *types.Transaction) error {
			sent = tx
			return nil
		},
		TransactionReceiptFunc: func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return successReceipt(txHash), nil
		},
	}
	client := testClient(t, backend)

	identity := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")
	txHash, err := client.AddClaim(context.Background(), testSigner(t), identity,
		big.NewInt(42), big.NewInt(1), client.IssuerAddress(),
		bytes.Repeat([]byte{0x01}, 65), []byte("KYC passed"), "")
	if err != nil {
		t.Fatalf("AddClaim() failed: %v", err)
	}

	if sent == nil {
		t.Fatal("no transaction reached the backend")
	}
	if txHash != sent.Hash() {
		t.Errorf("returned hash %s does not match sent transaction %s", txHash.Hex(), sent.Hash().Hex())
	}
	if sent.Gas() != 500_000 {
		t.Errorf("claim transaction gas limit = %d, want the elevated 500000", sent.Gas())
	}
	if sent.To() == nil || *sent.To() != identity {
		t.Errorf("claim transaction target = %v, want %s", sent.To(), identity.Hex())
	}
	// addClaim(uint256,uint256,address,bytes,bytes,string) selector.
	if want := []byte{0xb1, 0xa3, 0x4e, 0x0d}; !bytes.HasPrefix(sent.Data(), want) {
		t.Errorf("claim calldata = %x, want %x prefix", sent.Data(), want)
	}
}

func TestIsVerified_DecodesRegistryAnswer(t *testing.T) {
	cfg := testEthConfig()
	registryAddr := common.HexToAddress(cfg.IdentityRegistry)

	var queried common.Address
	backend := &mockBackend{
		CallContractFunc: func(ctx context.Context, call goethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
			queried = *call.To
			return common.LeftPadBytes([]byte{0x01}, 32), nil
		},
	}
	client := testClient(t, backend)

	verified, err := client.IsVerified(context.Background(), common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"))
	if err != nil {
		t.Fatalf("IsVerified() failed: %v", err)
	}
	if !verified {
		t.Error("IsVerified() = false, want true")
	}
	if queried != registryAddr {
		t.Errorf("call went to %s, want registry %s", queried.Hex(), registryAddr.Hex())
	}
}

func TestQuoteFees_NoDynamicFeeMarket(t *testing.T) {
	backend := &mockBackend{
		HeaderByNumberFunc: func(ctx context.Context, number *big.Int) (*types.Header, error) {
			return &types.Header{Number: big.NewInt(100)}, nil // no base fee
		},
	}
	client := testClient(t, backend)

	_, err := client.QuoteFees(context.Background())
	if err == nil {
		t.Fatal("expected error when node reports no base fee, got nil")
	}
	if !errors.Is(err, ErrFeeDataUnavailable) {
		t.Errorf("expected ErrFeeDataUnavailable in chain, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryChainRead) {
		t.Errorf("expected CategoryChainRead, got %v", err)
	}
}

func TestVerifyChainID(t *testing.T) {
	client := testClient(t, &mockBackend{}) // reports 31337

	if err := client.VerifyChainID(context.Background()); err != nil {
		t.Fatalf("VerifyChainID() failed on matching chain: %v", err)
	}

	mismatched := testClient(t, &mockBackend{
		ChainIDFunc: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(1), nil
		},
	})
	err := mismatched.VerifyChainID(context.Background())
	if err == nil {
		t.Fatal("expected error on chain id mismatch, got nil")
	}
	if !apperrors.Is(err, apperrors.CategoryConfiguration) {
		t.Errorf("expected CategoryConfiguration, got %v", err)
	}
}

func TestIdentityFromReceipt(t *testing.T) {
	cfg := testEthConfig()
	client := testClient(t, &mockBackend{})

	factoryAddr := common.HexToAddress(cfg.IdentityFactory)
	wallet := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	otherWallet := common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	identityAddr := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")

	walletLinkedID := common.HexToHash("0x8e0c709111388f5480579514d86663489ab1f206fe6da1a0c4d03ac8c318b3c6")
	deployedID := common.HexToHash("0xf40fcec21964ffb566044d083b4073f29f7f7929110ea19e1b3ebe375d89055e")
	addressTopic := func(a common.Address) common.Hash {
		return common.BytesToHash(common.LeftPadBytes(a.Bytes(), 32))
	}

	receipt := &types.Receipt{
		TxHash: common.HexToHash("0x01"),
		Logs: []*types.Log{
			nil, // the scan must tolerate holes
			{Address: common.HexToAddress("0x000000000000000000000000000000000000dEaD"),
				Topics: []common.Hash{walletLinkedID, addressTopic(wallet), addressTopic(otherWallet)}},
			{Address: factoryAddr, Topics: []common.Hash{}}, // anonymous log
			{Address: factoryAddr, Topics: []common.Hash{deployedID, addressTopic(identityAddr)}},
			{Address: factoryAddr,
				Topics: []common.Hash{walletLinkedID, addressTopic(otherWallet), addressTopic(identityAddr)}},
			{Address: factoryAddr,
				Topics: []common.Hash{walletLinkedID, addressTopic(wallet), addressTopic(identityAddr)}},
		},
	}

	got, err := client.IdentityFromReceipt(receipt, wallet)
	if err != nil {
		t.Fatalf("IdentityFromReceipt() failed: %v", err)
	}
	if got != identityAddr {
		t.Errorf("identity = %s, want %s", got.Hex(), identityAddr.Hex())
	}

	_, err = client.IdentityFromReceipt(&types.Receipt{TxHash: common.HexToHash("0x02")}, wallet)
	if err == nil {
		t.Fatal("expected error for receipt without WalletLinked event, got nil")
	}
	if !apperrors.Is(err, apperrors.CategoryEventNotFound) {
		t.Errorf("expected CategoryEventNotFound, got %v", err)
	}
}
