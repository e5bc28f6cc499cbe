//go:build ignore

// provision-user.go - Provision and verify a single user end to end
//
// Drives the running API server through the full KYC lifecycle for one
// user: identity deployment, claim issuance, claim anchoring (signed
// locally with the user's key) and registry registration. The user's
// private key never leaves this process.
//
// Usage:
//   go run scripts/provision-user.go -config config.yaml \
//     -user-key "0xac09..." \
//     -country 840
//
// Flags:
//   -config    Service configuration (for RPC URL and chain id)
//   -api       API server base URL
//   -user-key  User's private key hex (signs the addClaim transaction)
//   -country   ISO 3166-1 numeric country code

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
	"github.com/chainsafe/kyc-middleware/pkg/config"
	"github.com/chainsafe/kyc-middleware/pkg/ethereum/contracts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to config file")
	apiURL     = flag.String("api", "http://localhost:8080", "API server base URL")
	userKeyHex = flag.String("user-key", "", "User's private key hex")
	country    = flag.Uint("country", 840, "ISO 3166-1 numeric country code")
)

func main() {
	flag.Parse()

	if *userKeyHex == "" {
		fmt.Println("Error: -user-key is required")
		fmt.Println("Usage: go run scripts/provision-user.go -config config.yaml -user-key '0x...' -country 840")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	userKey, err := crypto.HexToECDSA(strings.TrimPrefix(*userKeyHex, "0x"))
	if err != nil {
		fmt.Printf("Invalid user key: %v\n", err)
		os.Exit(1)
	}
	userAddr := crypto.PubkeyToAddress(userKey.PublicKey)

	fmt.Println("======================================================================")
	fmt.Println("PROVISION USER - Deploy, attest and register a KYC identity")
	fmt.Println("======================================================================")
	fmt.Printf("User:    %s\n", userAddr.Hex())
	fmt.Printf("Country: %d\n", *country)
	fmt.Printf("API:     %s\n", *apiURL)
	fmt.Println()

	ctx := context.Background()
	httpClient := &http.Client{Timeout: 2 * time.Minute}

	ec, err := ethclient.Dial(cfg.Ethereum.RPCURL)
	if err != nil {
		fmt.Printf("Failed to connect to Ethereum node: %v\n", err)
		os.Exit(1)
	}
	defer ec.Close()

	// Step 1: Deploy the identity
	fmt.Println(">>> Deploying identity...")
	var deployed struct {
		Address string `json:"address"`
	}
	err = postJSON(httpClient, *apiURL+"/deploy", map[string]string{"userAddress": userAddr.Hex()}, &deployed)
	if err != nil {
		fmt.Printf("Deploy failed: %v\n", err)
		os.Exit(1)
	}
	identityAddr := common.HexToAddress(deployed.Address)
	fmt.Printf("    Identity: %s\n\n", identityAddr.Hex())

	// Step 2: Sanity-check the user's key purposes
	fmt.Println(">>> Checking key purposes...")
	identity, err := contracts.NewIdentity(identityAddr, ec)
	if err != nil {
		fmt.Printf("Failed to bind identity: %v\n", err)
		os.Exit(1)
	}
	userKeyHash := [32]byte(crypto.Keccak256Hash(common.LeftPadBytes(userAddr.Bytes(), 32)))
	for _, purpose := range []int64{1, 3} {
		has, err := identity.KeyHasPurpose(&bind.CallOpts{Context: ctx}, userKeyHash, big.NewInt(purpose))
		if err != nil {
			fmt.Printf("Key purpose query failed: %v\n", err)
			os.Exit(1)
		}
		if !has {
			fmt.Printf("Error: user key is missing purpose %d\n", purpose)
			os.Exit(1)
		}
	}
	fmt.Println("    [OK] MANAGEMENT and CLAIM_SIGNER granted")
	fmt.Println()

	// Step 3: Request the signed claim
	fmt.Println(">>> Requesting signed claim...")
	var signed struct {
		Topic     int64  `json:"topic"`
		Scheme    int64  `json:"scheme"`
		Issuer    string `json:"issuer"`
		Signature string `json:"signature"`
		Data      string `json:"data"`
		URI       string `json:"uri"`
	}
	err = postJSON(httpClient, *apiURL+"/signature", map[string]string{
		"userAddress":     userAddr.Hex(),
		"identityAddress": identityAddr.Hex(),
	}, &signed)
	if err != nil {
		fmt.Printf("Signature request failed: %v\n", err)
		os.Exit(1)
	}

	signature, err := hexutil.Decode(signed.Signature)
	if err != nil {
		fmt.Printf("Bad claim signature: %v\n", err)
		os.Exit(1)
	}
	data, err := hexutil.Decode(signed.Data)
	if err != nil {
		fmt.Printf("Bad claim data: %v\n", err)
		os.Exit(1)
	}
	claim := &claims.Claim{
		Topic:     big.NewInt(signed.Topic),
		Scheme:    big.NewInt(signed.Scheme),
		Issuer:    common.HexToAddress(signed.Issuer),
		Signature: signature,
		Data:      data,
		URI:       signed.URI,
	}

	ok, err := claims.VerifyClaim(identityAddr, claim)
	if err != nil || !ok {
		fmt.Printf("Claim does not verify locally (err=%v)\n", err)
		os.Exit(1)
	}
	fmt.Printf("    Topic %d from issuer %s\n\n", signed.Topic, signed.Issuer)

	// Step 4: Anchor the claim with the user's own key
	fmt.Println(">>> Anchoring claim on the identity...")
	auth, err := bind.NewKeyedTransactorWithChainID(userKey, big.NewInt(cfg.Ethereum.ChainID))
	if err != nil {
		fmt.Printf("Failed to build transactor: %v\n", err)
		os.Exit(1)
	}
	auth.Context = ctx

	tx, err := identity.AddClaim(auth, claim.Topic, claim.Scheme, claim.Issuer, claim.Signature, claim.Data, claim.URI)
	if err != nil {
		fmt.Printf("addClaim failed: %v\n", err)
		os.Exit(1)
	}

	waitCtx, cancel := context.WithTimeout(ctx, cfg.Ethereum.ConfirmationTimeout)
	receipt, err := bind.WaitMined(waitCtx, ec, tx)
	cancel()
	if err != nil {
		fmt.Printf("addClaim not confirmed: %v\n", err)
		os.Exit(1)
	}
	if receipt.Status != 1 {
		fmt.Printf("addClaim reverted: tx=%s\n", tx.Hash().Hex())
		os.Exit(1)
	}
	fmt.Printf("    Anchored in block %d (tx %s)\n\n", receipt.BlockNumber.Uint64(), tx.Hash().Hex())

	// Step 5: Register with the identity registry
	fmt.Println(">>> Registering identity...")
	var registered struct {
		TransactionHash string `json:"transactionHash"`
	}
	err = postJSON(httpClient, *apiURL+"/register", map[string]any{
		"userAddress":     userAddr.Hex(),
		"identityAddress": identityAddr.Hex(),
		"countryCode":     uint16(*country),
	}, &registered)
	if err != nil {
		fmt.Printf("Register failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("    Registered, tx %s\n\n", registered.TransactionHash)

	// Step 6: Confirm the final status
	var status struct {
		IsVerified bool `json:"isVerified"`
	}
	if err := getJSON(httpClient, *apiURL+"/status/"+userAddr.Hex(), &status); err != nil {
		fmt.Printf("Status query failed: %v\n", err)
		os.Exit(1)
	}
	if !status.IsVerified {
		fmt.Println("Error: user is NOT verified after registration")
		os.Exit(1)
	}

	fmt.Println("======================================================================")
	fmt.Println("USER PROVISIONED SUCCESSFULLY")
	fmt.Println("======================================================================")
	fmt.Printf("User:     %s\n", userAddr.Hex())
	fmt.Printf("Identity: %s\n", identityAddr.Hex())
	fmt.Printf("Country:  %d\n", *country)
	fmt.Println("\n✓ The user can now receive compliance-gated tokens.")
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
