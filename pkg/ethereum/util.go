package ethereum

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeyHash derives the ERC-734 key identifier for a wallet address:
// keccak256 over the address ABI-encoded as a 32-byte word. Identity
// contracts store keys under this hash rather than the raw address.
func KeyHash(addr common.Address) [32]byte {
	return crypto.Keccak256Hash(common.LeftPadBytes(addr.Bytes(), 32))
}

// IsZeroAddress reports whether addr is the zero address, which the
// registry and factory views return for unknown wallets.
func IsZeroAddress(addr common.Address) bool {
	return addr == (common.Address{})
}
