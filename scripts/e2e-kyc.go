//go:build ignore

// e2e-kyc.go - End-to-end KYC verification flow against a running stack
//
// This script drives the complete identity lifecycle through a running
// API server and an Ethereum node (e.g. anvil with the identity suite
// deployed):
//
// Test Flow:
// 1. Wait for the API server to be healthy
// 2. Deploy an identity for the test user (POST /deploy)
// 3. Verify the on-chain wiring (factory mapping, key purposes)
// 4. Request a signed KYC claim (POST /signature) and verify it locally
// 5. Anchor the claim on the identity, signed with the user's own key
// 6. Register the identity with the registry (POST /register)
// 7. Confirm verification status (GET /status/{user})
// 8. Optionally mint an investment (POST /invest) and check the balance
//
// The user's private key stays in this script: the server never sees it.
// Only the claim anchoring step signs locally; everything else goes
// through the HTTP API.
//
// Usage:
//   go run scripts/e2e-kyc.go [-config config.e2e-kyc.yaml] [-skip-invest]
//
// Flags:
//   -config       Path to the scenario config (defaults to anvil account #0)
//   -skip-invest  Skip the investment/minting step

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/chainsafe/kyc-middleware/pkg/claims"
	"github.com/chainsafe/kyc-middleware/pkg/ethereum/contracts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"gopkg.in/yaml.v3"
)

// Colors for output
const (
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorCyan   = "\033[0;36m"
	colorReset  = "\033[0m"
)

// KYCTestConfig holds the scenario configuration for the E2E flow
type KYCTestConfig struct {
	APIURL  string `yaml:"api_url"`
	RPCURL  string `yaml:"rpc_url"`
	ChainID int64  `yaml:"chain_id"`

	User struct {
		PrivateKey string `yaml:"private_key"`
		Address    string `yaml:"address"`
	} `yaml:"user"`

	Contracts struct {
		IdentityFactory string `yaml:"identity_factory"`
	} `yaml:"contracts"`

	CountryCode uint16 `yaml:"country_code"`

	Invest struct {
		Amount       string `yaml:"amount"`
		TokenAddress string `yaml:"token_address"`
	} `yaml:"invest"`

	Timeouts struct {
		ServiceReady string `yaml:"service_ready"`
		Confirmation string `yaml:"confirmation"`
	} `yaml:"timeouts"`
}

var (
	configPath = flag.String("config", "config.e2e-kyc.yaml", "Path to scenario config")
	skipInvest = flag.Bool("skip-invest", false, "Skip the investment step")
)

func main() {
	flag.Parse()

	printHeader("KYC Middleware E2E Test")

	printStep("Loading scenario configuration...")
	cfg, err := loadConfig(*configPath)
	if err != nil {
		printError("Failed to load config: %v", err)
		os.Exit(1)
	}
	printSuccess("Configuration loaded")

	serviceReady, _ := time.ParseDuration(cfg.Timeouts.ServiceReady)
	printStep("Waiting for API server at %s...", cfg.APIURL)
	if err := waitForService(cfg.APIURL, serviceReady); err != nil {
		printError("API server not ready: %v", err)
		os.Exit(1)
	}
	printSuccess("API server is healthy")

	ctx := context.Background()
	if err := runKYCFlow(ctx, cfg); err != nil {
		printError("E2E test failed: %v", err)
		os.Exit(1)
	}

	printHeader("KYC E2E Test Completed Successfully!")
}

func loadConfig(path string) (*KYCTestConfig, error) {
	var cfg KYCTestConfig

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Defaults target a local anvil + API server stack
	if cfg.APIURL == "" {
		cfg.APIURL = "http://localhost:8080"
	}
	if cfg.RPCURL == "" {
		cfg.RPCURL = "http://localhost:8545"
	}
	if cfg.ChainID == 0 {
		cfg.ChainID = 31337
	}
	if cfg.User.PrivateKey == "" {
		// anvil account #1 (account #0 is usually the operator)
		cfg.User.PrivateKey = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	}
	if cfg.CountryCode == 0 {
		cfg.CountryCode = 840
	}
	if cfg.Invest.Amount == "" {
		cfg.Invest.Amount = "100"
	}
	if cfg.Timeouts.ServiceReady == "" {
		cfg.Timeouts.ServiceReady = "30s"
	}
	if cfg.Timeouts.Confirmation == "" {
		cfg.Timeouts.Confirmation = "90s"
	}

	return &cfg, nil
}

func runKYCFlow(ctx context.Context, cfg *KYCTestConfig) error {
	userKey, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.User.PrivateKey, "0x"))
	if err != nil {
		return fmt.Errorf("parse user private key: %w", err)
	}
	userAddr := crypto.PubkeyToAddress(userKey.PublicKey)
	if cfg.User.Address != "" && !strings.EqualFold(cfg.User.Address, userAddr.Hex()) {
		return fmt.Errorf("configured address %s does not match key (%s)", cfg.User.Address, userAddr.Hex())
	}
	printInfo("Test user: %s", userAddr.Hex())

	ec, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect to ethereum node: %w", err)
	}
	defer ec.Close()

	chainID, err := ec.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("fetch chain id: %w", err)
	}
	if chainID.Int64() != cfg.ChainID {
		return fmt.Errorf("node reports chain id %s, config says %d", chainID, cfg.ChainID)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	confirmation, _ := time.ParseDuration(cfg.Timeouts.Confirmation)

	// Step 1: Deploy identity
	printHeader("Step 1: Deploy Identity")
	var deployed struct {
		Address string `json:"address"`
	}
	err = postJSON(httpClient, cfg.APIURL+"/deploy", map[string]string{"userAddress": userAddr.Hex()}, &deployed)
	if err != nil {
		return fmt.Errorf("deploy identity: %w", err)
	}
	identityAddr := common.HexToAddress(deployed.Address)
	printSuccess("Identity deployed at %s", identityAddr.Hex())

	// Step 2: Verify on-chain wiring
	printHeader("Step 2: Verify On-Chain Wiring")
	if cfg.Contracts.IdentityFactory != "" {
		factory, err := contracts.NewIdentityFactory(common.HexToAddress(cfg.Contracts.IdentityFactory), ec)
		if err != nil {
			return fmt.Errorf("bind identity factory: %w", err)
		}
		mapped, err := factory.GetIdentity(&bind.CallOpts{Context: ctx}, userAddr)
		if err != nil {
			return fmt.Errorf("query factory mapping: %w", err)
		}
		if mapped != identityAddr {
			return fmt.Errorf("factory maps user to %s, expected %s", mapped.Hex(), identityAddr.Hex())
		}
		printSuccess("Factory maps user to the deployed identity")
	} else {
		printInfo("No factory address in config, skipping mapping check")
	}

	identity, err := contracts.NewIdentity(identityAddr, ec)
	if err != nil {
		return fmt.Errorf("bind identity: %w", err)
	}

	userKeyHash := keyHash(userAddr)
	for _, purpose := range []struct {
		id   int64
		name string
	}{{1, "MANAGEMENT"}, {3, "CLAIM_SIGNER"}} {
		has, err := identity.KeyHasPurpose(&bind.CallOpts{Context: ctx}, userKeyHash, big.NewInt(purpose.id))
		if err != nil {
			return fmt.Errorf("query key purpose %s: %w", purpose.name, err)
		}
		if !has {
			return fmt.Errorf("user key is missing the %s purpose", purpose.name)
		}
		printSuccess("User key has %s purpose", purpose.name)
	}

	// Step 3: Request a signed claim
	printHeader("Step 3: Request Signed Claim")
	var signed struct {
		Topic     int64  `json:"topic"`
		Scheme    int64  `json:"scheme"`
		Issuer    string `json:"issuer"`
		Signature string `json:"signature"`
		Data      string `json:"data"`
		URI       string `json:"uri"`
	}
	err = postJSON(httpClient, cfg.APIURL+"/signature", map[string]string{
		"userAddress":     userAddr.Hex(),
		"identityAddress": identityAddr.Hex(),
	}, &signed)
	if err != nil {
		return fmt.Errorf("request signature: %w", err)
	}

	signature, err := hexutil.Decode(signed.Signature)
	if err != nil {
		return fmt.Errorf("decode claim signature: %w", err)
	}
	data, err := hexutil.Decode(signed.Data)
	if err != nil {
		return fmt.Errorf("decode claim data: %w", err)
	}
	claim := &claims.Claim{
		Topic:     big.NewInt(signed.Topic),
		Scheme:    big.NewInt(signed.Scheme),
		Issuer:    common.HexToAddress(signed.Issuer),
		Signature: signature,
		Data:      data,
		URI:       signed.URI,
	}
	printInfo("Topic:  %d", signed.Topic)
	printInfo("Issuer: %s", signed.Issuer)
	printInfo("Data:   %q", string(data))

	ok, err := claims.VerifyClaim(identityAddr, claim)
	if err != nil {
		return fmt.Errorf("verify claim locally: %w", err)
	}
	if !ok {
		return fmt.Errorf("claim signature does not recover to the issuer")
	}
	printSuccess("Claim verifies locally against the issuer")

	// Step 4: Anchor the claim, signed by the user
	printHeader("Step 4: Anchor Claim On Identity")
	auth, err := bind.NewKeyedTransactorWithChainID(userKey, chainID)
	if err != nil {
		return fmt.Errorf("build transactor: %w", err)
	}
	auth.Context = ctx

	tx, err := identity.AddClaim(auth, claim.Topic, claim.Scheme, claim.Issuer, claim.Signature, claim.Data, claim.URI)
	if err != nil {
		return fmt.Errorf("submit addClaim: %w", err)
	}
	printInfo("addClaim tx: %s", tx.Hash().Hex())

	waitCtx, cancel := context.WithTimeout(ctx, confirmation)
	receipt, err := bind.WaitMined(waitCtx, ec, tx)
	cancel()
	if err != nil {
		return fmt.Errorf("wait for addClaim receipt: %w", err)
	}
	if receipt.Status != 1 {
		return fmt.Errorf("addClaim reverted: tx=%s", tx.Hash().Hex())
	}
	printSuccess("Claim anchored in block %d", receipt.BlockNumber.Uint64())

	// Step 5: Register with the identity registry
	printHeader("Step 5: Register Identity")
	var registered struct {
		TransactionHash string `json:"transactionHash"`
	}
	err = postJSON(httpClient, cfg.APIURL+"/register", map[string]any{
		"userAddress":     userAddr.Hex(),
		"identityAddress": identityAddr.Hex(),
		"countryCode":     cfg.CountryCode,
	}, &registered)
	if err != nil {
		return fmt.Errorf("register identity: %w", err)
	}
	printSuccess("Registered (country %d), tx: %s", cfg.CountryCode, registered.TransactionHash)

	// Step 6: Confirm verification status
	printHeader("Step 6: Confirm Verification")
	var status struct {
		IsVerified bool `json:"isVerified"`
	}
	if err := getJSON(httpClient, cfg.APIURL+"/status/"+userAddr.Hex(), &status); err != nil {
		return fmt.Errorf("query status: %w", err)
	}
	if !status.IsVerified {
		return fmt.Errorf("user is not verified after registration")
	}
	printSuccess("User %s is verified", userAddr.Hex())

	var mapped struct {
		IdentityAddress string `json:"identityAddress"`
	}
	if err := getJSON(httpClient, cfg.APIURL+"/identity/"+userAddr.Hex(), &mapped); err != nil {
		return fmt.Errorf("query identity mapping: %w", err)
	}
	if !strings.EqualFold(mapped.IdentityAddress, identityAddr.Hex()) {
		return fmt.Errorf("registry maps user to %s, expected %s", mapped.IdentityAddress, identityAddr.Hex())
	}
	printSuccess("Registry maps user to the deployed identity")

	// Step 7: Investment (optional)
	if *skipInvest {
		printInfo("Skipping investment step (-skip-invest)")
		return nil
	}

	printHeader("Step 7: Invest")
	investReq := map[string]string{
		"to":     userAddr.Hex(),
		"amount": cfg.Invest.Amount,
	}
	if cfg.Invest.TokenAddress != "" {
		investReq["tokenAddress"] = cfg.Invest.TokenAddress
	}

	var balanceBefore *big.Int
	var token *contracts.Token
	if cfg.Invest.TokenAddress != "" {
		token, err = contracts.NewToken(common.HexToAddress(cfg.Invest.TokenAddress), ec)
		if err != nil {
			return fmt.Errorf("bind token: %w", err)
		}
		balanceBefore, err = token.BalanceOf(&bind.CallOpts{Context: ctx}, userAddr)
		if err != nil {
			return fmt.Errorf("query balance: %w", err)
		}
		printInfo("Balance before: %s", balanceBefore)
	}

	var invested struct {
		TransactionHash string `json:"transactionHash"`
	}
	if err := postJSON(httpClient, cfg.APIURL+"/invest", investReq, &invested); err != nil {
		return fmt.Errorf("invest: %w", err)
	}
	printSuccess("Minted %s tokens, tx: %s", cfg.Invest.Amount, invested.TransactionHash)

	if token != nil {
		balanceAfter, err := token.BalanceOf(&bind.CallOpts{Context: ctx}, userAddr)
		if err != nil {
			return fmt.Errorf("query balance: %w", err)
		}
		printInfo("Balance after: %s", balanceAfter)
		if balanceAfter.Cmp(balanceBefore) <= 0 {
			return fmt.Errorf("balance did not increase after invest")
		}
		printSuccess("Balance increased by %s base units", new(big.Int).Sub(balanceAfter, balanceBefore))
	}

	return nil
}

// keyHash mirrors the identity contract's key derivation:
// keccak256 over the address ABI-encoded as a 32-byte word.
func keyHash(addr common.Address) [32]byte {
	return [32]byte(crypto.Keccak256Hash(common.LeftPadBytes(addr.Bytes(), 32)))
}

func waitForService(apiURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(apiURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(time.Second)
	}
	return fmt.Errorf("timeout after %s", timeout)
}

func postJSON(client *http.Client, url string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

func getJSON(client *http.Client, url string, out interface{}) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return json.Unmarshal(data, out)
}

// =============================================================================
// Output Helpers
// =============================================================================

func printHeader(msg string) {
	fmt.Printf("\n%s══════════════════════════════════════════════════════════════════════%s\n", colorBlue, colorReset)
	fmt.Printf("%s  %s%s\n", colorBlue, msg, colorReset)
	fmt.Printf("%s══════════════════════════════════════════════════════════════════════%s\n", colorBlue, colorReset)
}

func printStep(format string, args ...interface{}) {
	fmt.Printf("%s>>> %s%s\n", colorCyan, fmt.Sprintf(format, args...), colorReset)
}

func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, fmt.Sprintf(format, args...), colorReset)
}

func printError(format string, args ...interface{}) {
	fmt.Printf("%s✗ %s%s\n", colorRed, fmt.Sprintf(format, args...), colorReset)
}

func printInfo(format string, args ...interface{}) {
	fmt.Printf("    %s\n", fmt.Sprintf(format, args...))
}
