// Package ethereum owns the connection to the chain: contract bindings,
// fee quoting and serialized transaction submission. Services hold one
// shared Client and never touch the RPC transport directly.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
	"go.uber.org/zap"

	"github.com/chainsafe/kyc-middleware/internal/metrics"
	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/config"
	"github.com/chainsafe/kyc-middleware/pkg/ethereum/contracts"
	"github.com/chainsafe/kyc-middleware/pkg/keys"
)

// Client wraps the node connection together with the signing credentials
// and handles to the identity suite contracts. All writes go through
// submit, which serializes submissions per signing credential.
type Client struct {
	config  *config.EthereumConfig
	backend Backend
	logger  *zap.Logger
	policy  FeePolicy

	operator *keys.Signer
	issuer   *keys.Signer

	factoryAddress common.Address
	factory        *contracts.IdentityFactory
	registry       *contracts.IdentityRegistry

	mu    sync.Mutex
	locks map[common.Address]*sync.Mutex
}

// NewClient dials the configured RPC endpoint and binds the identity
// suite contracts. The caller owns the lifecycle: construct once at
// startup, share across services, Close on shutdown.
func NewClient(cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	rpc, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, apperrors.ConfigurationError(err, "failed to connect to Ethereum RPC")
	}

	client, err := NewClientWithBackend(cfg, rpc, logger)
	if err != nil {
		rpc.Close()
		return nil, err
	}

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("identity_factory", cfg.IdentityFactory),
		zap.String("identity_registry", cfg.IdentityRegistry),
		zap.String("operator_address", client.OperatorAddress().Hex()),
		zap.String("issuer_address", client.IssuerAddress().Hex()))

	return client, nil
}

// NewClientWithBackend builds a client over an already established
// backend. Tests use it to run the full stack against an in-memory chain.
func NewClientWithBackend(cfg *config.EthereumConfig, backend Backend, logger *zap.Logger) (*Client, error) {
	operator, err := keys.ParseSigner(cfg.OperatorPrivateKey)
	if err != nil {
		return nil, apperrors.ConfigurationError(err, "failed to parse operator private key")
	}

	issuer, err := keys.ParseSigner(cfg.IssuerKey())
	if err != nil {
		return nil, apperrors.ConfigurationError(err, "failed to parse claim issuer private key")
	}

	factoryAddress := common.HexToAddress(cfg.IdentityFactory)
	factory, err := contracts.NewIdentityFactory(factoryAddress, backend)
	if err != nil {
		return nil, apperrors.ConfigurationError(err, "failed to bind identity factory contract")
	}

	registry, err := contracts.NewIdentityRegistry(common.HexToAddress(cfg.IdentityRegistry), backend)
	if err != nil {
		return nil, apperrors.ConfigurationError(err, "failed to bind identity registry contract")
	}

	return &Client{
		config:         cfg,
		backend:        backend,
		logger:         logger,
		policy:         FeePolicy{MinPriorityFee: cfg.MinPriorityFee()},
		operator:       operator,
		issuer:         issuer,
		factoryAddress: factoryAddress,
		factory:        factory,
		registry:       registry,
		locks:          make(map[common.Address]*sync.Mutex),
	}, nil
}

// Close tears down the underlying RPC connection when the client owns one.
func (c *Client) Close() {
	if closer, ok := c.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}

// ChainID returns the configured chain ID.
func (c *Client) ChainID() *big.Int {
	return big.NewInt(c.config.ChainID)
}

// OperatorAddress returns the address of the transaction-paying credential.
func (c *Client) OperatorAddress() common.Address {
	return c.operator.Address()
}

// IssuerAddress returns the address of the claim signing credential.
func (c *Client) IssuerAddress() common.Address {
	return c.issuer.Address()
}

// VerifyChainID checks that the node serves the configured chain. Called
// once at startup, before any transaction is signed.
func (c *Client) VerifyChainID(ctx context.Context) error {
	remote, err := c.backend.ChainID(ctx)
	if err != nil {
		return apperrors.ChainReadError(err, "failed to fetch chain id from node")
	}
	if remote.Cmp(c.ChainID()) != 0 {
		return apperrors.ConfigurationError(
			fmt.Errorf("node reports chain id %s, configured %d", remote, c.config.ChainID),
			"rpc endpoint serves a different chain")
	}
	return nil
}

// IdentityAt binds the identity contract deployed at addr.
func (c *Client) IdentityAt(addr common.Address) (*contracts.Identity, error) {
	identity, err := contracts.NewIdentity(addr, c.backend)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to bind identity contract at %s: %w", addr.Hex(), err))
	}
	return identity, nil
}

// TokenAt binds the permissioned token contract deployed at addr.
func (c *Client) TokenAt(addr common.Address) (*contracts.Token, error) {
	token, err := contracts.NewToken(addr, c.backend)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to bind token contract at %s: %w", addr.Hex(), err))
	}
	return token, nil
}

// DeployIdentity creates the managed identity contract for wallet through
// the factory, seeding it with the given management keys. The receipt is
// returned as-is; callers extract the deployed address from its logs.
func (c *Client) DeployIdentity(ctx context.Context, wallet common.Address, salt string, managementKeys [][32]byte) (*types.Receipt, error) {
	c.logger.Info("Deploying identity contract",
		zap.String("wallet", wallet.Hex()),
		zap.String("salt", salt))

	return c.submit(ctx, c.operator, "deploy_identity", func(auth *bind.TransactOpts) (*types.Transaction, error) {
		return c.factory.CreateIdentityWithManagementKeys(auth, wallet, salt, managementKeys)
	})
}

// IdentityFromReceipt scans a factory deployment receipt for the
// WalletLinked event tying wallet to its new identity contract. Logs
// emitted by other contracts or events are skipped, never errors; the
// scan only fails when the receipt holds no match for the wallet.
func (c *Client) IdentityFromReceipt(receipt *types.Receipt, wallet common.Address) (common.Address, error) {
	for _, log := range receipt.Logs {
		if log == nil || log.Address != c.factoryAddress {
			continue
		}
		linked, err := c.factory.ParseWalletLinked(*log)
		if err != nil {
			continue
		}
		if linked.Wallet == wallet {
			return linked.Identity, nil
		}
	}

	return common.Address{}, apperrors.EventNotFoundError(
		fmt.Errorf("no WalletLinked event for wallet %s in transaction %s", wallet.Hex(), receipt.TxHash.Hex()),
		"identity address not found in deployment receipt")
}

// AddKey grants a purpose to a key hash on an identity contract.
func (c *Client) AddKey(ctx context.Context, identity common.Address, key [32]byte, purpose, keyType *big.Int) (common.Hash, error) {
	idc, err := c.IdentityAt(identity)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.submit(ctx, c.operator, "add_key", func(auth *bind.TransactOpts) (*types.Transaction, error) {
		return idc.AddKey(auth, key, purpose, keyType)
	})
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// KeyHasPurpose reports whether the identity contract grants the purpose
// to the key hash.
func (c *Client) KeyHasPurpose(ctx context.Context, identity common.Address, key [32]byte, purpose *big.Int) (bool, error) {
	idc, err := c.IdentityAt(identity)
	if err != nil {
		return false, err
	}

	ok, err := idc.KeyHasPurpose(&bind.CallOpts{Context: ctx}, key, purpose)
	if err != nil {
		return false, apperrors.ChainReadError(err, "failed to query key purpose")
	}
	return ok, nil
}

// AddClaim anchors a signed claim on the identity contract, signed by the
// identity holder's own credential. Claim writes run with the elevated
// claim gas limit: addClaim dispatches through the identity's approval
// path and outgrows the plain-write default.
func (c *Client) AddClaim(
	ctx context.Context,
	holder *keys.Signer,
	identity common.Address,
	topic, scheme *big.Int,
	issuer common.Address,
	signature, data []byte,
	uri string,
) (common.Hash, error) {
	idc, err := c.IdentityAt(identity)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.submit(ctx, holder, "add_claim", func(auth *bind.TransactOpts) (*types.Transaction, error) {
		return idc.AddClaim(auth, topic, scheme, issuer, signature, data, uri)
	}, WithGasLimit(c.config.ClaimGasLimit))
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// RecoverClaimSigner runs the identity contract's recovery view over a
// signature and the digest it allegedly signs. The contract is the
// reference oracle for signature checks; callers pass the prefixed
// signing digest, exactly as the contract's claim validation computes it.
func (c *Client) RecoverClaimSigner(ctx context.Context, identity common.Address, signature []byte, digest common.Hash) (common.Address, error) {
	idc, err := c.IdentityAt(identity)
	if err != nil {
		return common.Address{}, err
	}

	recovered, err := idc.GetRecoveredAddress(&bind.CallOpts{Context: ctx}, signature, digest)
	if err != nil {
		return common.Address{}, apperrors.ChainReadError(err, "failed to recover claim signer on chain")
	}
	return recovered, nil
}

// RegisterIdentity enrolls a wallet's identity contract in the registry
// under a numeric country code.
func (c *Client) RegisterIdentity(ctx context.Context, user, identity common.Address, country uint16) (common.Hash, error) {
	receipt, err := c.submit(ctx, c.operator, "register_identity", func(auth *bind.TransactOpts) (*types.Transaction, error) {
		return c.registry.RegisterIdentity(auth, user, identity, country)
	})
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// IsVerified asks the registry whether the wallet holds the full claim
// set required by the token's compliance rules.
func (c *Client) IsVerified(ctx context.Context, user common.Address) (bool, error) {
	verified, err := c.registry.IsVerified(&bind.CallOpts{Context: ctx}, user)
	if err != nil {
		return false, apperrors.ChainReadError(err, "failed to query verification status")
	}
	return verified, nil
}

// IdentityOf returns the identity contract the registry holds for the
// wallet, or the zero address when none is registered.
func (c *Client) IdentityOf(ctx context.Context, user common.Address) (common.Address, error) {
	identity, err := c.registry.Identity(&bind.CallOpts{Context: ctx}, user)
	if err != nil {
		return common.Address{}, apperrors.ChainReadError(err, "failed to query registered identity")
	}
	return identity, nil
}

// FactoryIdentityOf returns the identity contract the factory links to
// the wallet, or the zero address when none was deployed.
func (c *Client) FactoryIdentityOf(ctx context.Context, wallet common.Address) (common.Address, error) {
	identity, err := c.factory.GetIdentity(&bind.CallOpts{Context: ctx}, wallet)
	if err != nil {
		return common.Address{}, apperrors.ChainReadError(err, "failed to query factory identity")
	}
	return identity, nil
}

// MintTokens mints amount base units of the token at tokenAddr to the
// recipient.
func (c *Client) MintTokens(ctx context.Context, tokenAddr, to common.Address, amount *big.Int) (common.Hash, error) {
	token, err := c.TokenAt(tokenAddr)
	if err != nil {
		return common.Hash{}, err
	}

	receipt, err := c.submit(ctx, c.operator, "mint_tokens", func(auth *bind.TransactOpts) (*types.Transaction, error) {
		return token.Mint(auth, to, amount)
	})
	if err != nil {
		return common.Hash{}, err
	}
	return receipt.TxHash, nil
}

// TokenDecimals returns the decimal precision of the token at tokenAddr.
func (c *Client) TokenDecimals(ctx context.Context, tokenAddr common.Address) (uint8, error) {
	token, err := c.TokenAt(tokenAddr)
	if err != nil {
		return 0, err
	}

	decimals, err := token.Decimals(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, apperrors.ChainReadError(err, "failed to query token decimals")
	}
	return decimals, nil
}

// TokenPaused reports whether transfers on the token at tokenAddr are
// currently suspended.
func (c *Client) TokenPaused(ctx context.Context, tokenAddr common.Address) (bool, error) {
	token, err := c.TokenAt(tokenAddr)
	if err != nil {
		return false, err
	}

	paused, err := token.Paused(&bind.CallOpts{Context: ctx})
	if err != nil {
		return false, apperrors.ChainReadError(err, "failed to query token pause state")
	}
	return paused, nil
}

// QuoteFees prices the next transaction from the current state of the fee
// market. submit calls this fresh for every transaction; quotes are never
// reused across submissions.
func (c *Client) QuoteFees(ctx context.Context) (*FeeQuote, error) {
	data, err := c.feeData(ctx)
	if err != nil {
		return nil, apperrors.ChainReadError(err, "failed to fetch fee data")
	}

	quote, err := ComputeFeeQuote(data, c.policy)
	if err != nil {
		return nil, apperrors.ChainReadError(err, "failed to compute fee quote")
	}
	return quote, nil
}

func (c *Client) feeData(ctx context.Context) (*FeeData, error) {
	tip, err := c.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas tip cap: %w", err)
	}

	head, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch latest header: %w", err)
	}
	if head.BaseFee == nil {
		// Pre-London chain: no dynamic fee market to quote from.
		return &FeeData{}, nil
	}

	// Base fee doubled for headroom across blocks.
	maxFee := new(big.Int).Add(new(big.Int).Mul(head.BaseFee, big.NewInt(2)), tip)
	return &FeeData{MaxFeePerGas: maxFee, MaxPriorityFeePerGas: tip}, nil
}

// submit sends one contract write under the signer's submission lock and
// waits for its receipt. The lock covers nonce acquisition through
// confirmation, so concurrent requests signed by the same credential
// cannot race on nonces; distinct credentials proceed in parallel.
func (c *Client) submit(
	ctx context.Context,
	signer *keys.Signer,
	op string,
	call func(*bind.TransactOpts) (*types.Transaction, error),
	opts ...TxOption,
) (*types.Receipt, error) {
	options := txOptions{gasLimit: c.config.GasLimit}
	for _, o := range opts {
		o(&options)
	}

	lock := c.submissionLock(signer.Address())
	lock.Lock()
	defer lock.Unlock()

	auth, err := c.transactor(ctx, signer, options.gasLimit)
	if err != nil {
		metrics.TransactionsTotal.WithLabelValues(op, "failed").Inc()
		return nil, err
	}

	tx, err := call(auth)
	if err != nil {
		metrics.TransactionsTotal.WithLabelValues(op, "failed").Inc()
		return nil, apperrors.ChainWriteError(err, fmt.Sprintf("failed to submit %s transaction", op))
	}

	tipGwei, _ := new(big.Float).Quo(new(big.Float).SetInt(tx.GasTipCap()), big.NewFloat(params.GWei)).Float64()
	metrics.MaxPriorityFeeGwei.Observe(tipGwei)

	c.logger.Info("Transaction submitted",
		zap.String("op", op),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("nonce", tx.Nonce()),
		zap.String("max_fee_per_gas", tx.GasFeeCap().String()),
		zap.String("max_priority_fee_per_gas", tx.GasTipCap().String()),
		zap.String("signer", signer.Address().Hex()))

	start := time.Now()
	receipt, err := c.waitMined(ctx, tx)
	if err != nil {
		if apperrors.Is(err, apperrors.CategoryConfirmationTimeout) {
			metrics.TransactionsTotal.WithLabelValues(op, "timeout").Inc()
		} else {
			metrics.TransactionsTotal.WithLabelValues(op, "failed").Inc()
		}
		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		metrics.TransactionsTotal.WithLabelValues(op, "reverted").Inc()
		return nil, apperrors.ChainWriteError(
			fmt.Errorf("transaction %s reverted in block %s", tx.Hash().Hex(), receipt.BlockNumber),
			fmt.Sprintf("%s transaction reverted", op))
	}

	metrics.TransactionsTotal.WithLabelValues(op, "confirmed").Inc()
	metrics.ConfirmationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.GasUsed.WithLabelValues(op).Observe(float64(receipt.GasUsed))

	c.logger.Info("Transaction confirmed",
		zap.String("op", op),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
		zap.Uint64("gas_used", receipt.GasUsed))

	return receipt, nil
}

// transactor assembles the signed transaction options for one submission:
// pending nonce, gas limit and a fresh fee quote. Callers hold the
// submission lock for the signer.
func (c *Client) transactor(ctx context.Context, signer *keys.Signer, gasLimit uint64) (*bind.TransactOpts, error) {
	auth, err := signer.TransactorFor(c.ChainID())
	if err != nil {
		return nil, apperrors.ConfigurationError(err, "failed to create transactor")
	}

	nonce, err := c.backend.PendingNonceAt(ctx, signer.Address())
	if err != nil {
		return nil, apperrors.ChainReadError(err, "failed to fetch account nonce")
	}

	quote, err := c.QuoteFees(ctx)
	if err != nil {
		return nil, err
	}

	auth.Context = ctx
	auth.Nonce = new(big.Int).SetUint64(nonce)
	auth.GasLimit = gasLimit
	auth.GasFeeCap = quote.MaxFeePerGas
	auth.GasTipCap = quote.MaxPriorityFeePerGas
	return auth, nil
}

// waitMined polls for the transaction receipt until it lands, the caller
// cancels, or the confirmation window closes.
func (c *Client) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.config.ConfirmationTimeout)
	defer cancel()

	ticker := time.NewTicker(c.config.ReceiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(waitCtx, tx.Hash())
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, goethereum.NotFound) && waitCtx.Err() == nil {
			c.logger.Warn("Receipt lookup failed, retrying",
				zap.String("tx_hash", tx.Hash().Hex()),
				zap.Error(err))
		}

		select {
		case <-waitCtx.Done():
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return nil, apperrors.ConfirmationTimeoutError(
				fmt.Errorf("transaction %s not confirmed within %s", tx.Hash().Hex(), c.config.ConfirmationTimeout),
				"timed out waiting for transaction confirmation")
		case <-ticker.C:
		}
	}
}

// submissionLock returns the mutex guarding submissions for one signing
// credential, creating it on first use.
func (c *Client) submissionLock(addr common.Address) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[addr]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[addr] = lock
	}
	return lock
}
