package ethereum

import (
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestKeyHash(t *testing.T) {
	addr := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	want := "d9c5115d8ca09413513b0348ccd4aa5d5d2b8183823763b527bfd81f40d86f2a"

	got := KeyHash(addr)
	if hex.EncodeToString(got[:]) != want {
		t.Errorf("KeyHash() = %x, want %s", got, want)
	}
}

func TestIsZeroAddress(t *testing.T) {
	if !IsZeroAddress(common.Address{}) {
		t.Error("zero address not detected")
	}
	if IsZeroAddress(common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")) {
		t.Error("non-zero address reported as zero")
	}
}
