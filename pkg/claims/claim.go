// Package claims implements the off-chain half of the claim protocol:
// building the canonical claim digest, signing it with the issuer
// credential under the EIP-191 personal-message envelope, and verifying
// or anchoring the resulting attestation on identity contracts.
package claims

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// SchemeECDSA is the ERC-735 signature scheme for secp256k1 claims, the
// only scheme this service issues.
const SchemeECDSA = 1

// Claim is an issuer's signed attestation about an identity contract,
// mirroring the ERC-735 claim tuple the contract stores. Immutable once
// issued; the signature covers (identity, topic, data) so any change
// invalidates it.
type Claim struct {
	Topic     *big.Int
	Scheme    *big.Int
	Issuer    common.Address
	Signature []byte
	Data      []byte
	URI       string
}

var (
	addressType, _ = abi.NewType("address", "", nil)
	uint256Type, _ = abi.NewType("uint256", "", nil)
	bytesType, _   = abi.NewType("bytes", "", nil)

	// claimTuple mirrors abi.encode(identity, topic, data) inside the
	// contract's claim validation.
	claimTuple = abi.Arguments{{Type: addressType}, {Type: uint256Type}, {Type: bytesType}}
)

// DataHash computes the canonical claim digest: keccak256 over the ABI
// encoding of (identity, topic, data). Encoding order and types must
// match the contract's own computation bit for bit; any deviation
// produces signatures the chain rejects.
func DataHash(identity common.Address, topic *big.Int, data []byte) (common.Hash, error) {
	encoded, err := claimTuple.Pack(identity, topic, data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("abi-encode claim tuple: %w", err)
	}
	return crypto.Keccak256Hash(encoded), nil
}

// SigningDigest applies the EIP-191 personal-message envelope to a claim
// data hash. This is the digest the issuer actually signs and the digest
// the contract's recovery view expects.
func SigningDigest(dataHash common.Hash) common.Hash {
	return common.BytesToHash(accounts.TextHash(dataHash.Bytes()))
}

// RecoverSigner recovers the address whose key produced signature over
// the claim data hash. Both wire-form (v = 27/28) and raw (v = 0/1)
// recovery ids are accepted. Local mirror of the identity contract's
// getRecoveredAddress view.
func RecoverSigner(dataHash common.Hash, signature []byte) (common.Address, error) {
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature is %d bytes, want %d", len(signature), crypto.SignatureLength)
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig, signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(SigningDigest(dataHash).Bytes(), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover claim signer: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// VerifyClaim reports whether the claim's signature recovers to its
// declared issuer for the given subject identity. Purely local; the
// submitter's pre-flight prefers the contract's own recovery view.
func VerifyClaim(identity common.Address, claim *Claim) (bool, error) {
	dataHash, err := DataHash(identity, claim.Topic, claim.Data)
	if err != nil {
		return false, err
	}

	recovered, err := RecoverSigner(dataHash, claim.Signature)
	if err != nil {
		return false, err
	}
	return recovered == claim.Issuer, nil
}

// redactSignature shortens a signature for log output. Raw signatures
// never appear in logs in full.
func redactSignature(sig []byte) string {
	h := hexutil.Encode(sig)
	if len(h) <= 18 {
		return h
	}
	return h[:10] + "..." + h[len(h)-8:]
}
