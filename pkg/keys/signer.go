// Package keys wraps the signing credentials used to submit transactions
// and issue attestations. Credentials are supplied through configuration,
// held in memory only, and never exposed through logs or String output.
package keys

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer holds a secp256k1 credential together with its derived address.
type Signer struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// ParseSigner builds a Signer from a hex-encoded private key, with or
// without a 0x prefix.
func ParseSigner(hexKey string) (*Signer, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if trimmed == "" {
		return nil, fmt.Errorf("empty private key")
	}

	privateKey, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		// Do not wrap err: go-ethereum's message can echo input bytes.
		return nil, fmt.Errorf("invalid private key")
	}

	return NewSigner(privateKey), nil
}

// NewSigner wraps an existing private key.
func NewSigner(privateKey *ecdsa.PrivateKey) *Signer {
	return &Signer{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}
}

// GenerateSigner creates a Signer with a fresh random key.
func GenerateSigner() (*Signer, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return NewSigner(privateKey), nil
}

// Address returns the address derived from the credential's public key.
func (s *Signer) Address() common.Address {
	return s.address
}

// SignDigest signs a 32-byte digest and returns the 65-byte recoverable
// signature in R || S || V form with V in {0, 1}.
func (s *Signer) SignDigest(digest common.Hash) ([]byte, error) {
	sig, err := crypto.Sign(digest.Bytes(), s.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}
	return sig, nil
}

// TransactorFor returns transaction-signing options bound to the given chain.
func (s *Signer) TransactorFor(chainID *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.privateKey, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	return opts, nil
}

// String identifies the signer by address only.
func (s *Signer) String() string {
	return s.address.Hex()
}
