package claims

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/keys"
)

func testIssuer(t *testing.T) *Issuer {
	t.Helper()

	signer, err := keys.GenerateSigner()
	if err != nil {
		t.Fatalf("GenerateSigner() failed: %v", err)
	}
	return NewIssuer(signer, zap.NewNop())
}

func TestDataHash_KnownVector(t *testing.T) {
	identity := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")

	dataHash, err := DataHash(identity, big.NewInt(42), []byte("KYC passed"))
	if err != nil {
		t.Fatalf("DataHash() failed: %v", err)
	}
	if want := "0x0c3df652c426d3d305695b5c07dc32d06fc9c7a5476d310a77f28c67e52a68f2"; dataHash.Hex() != want {
		t.Errorf("data hash = %s, want %s", dataHash.Hex(), want)
	}

	digest := SigningDigest(dataHash)
	if want := "0x5e2d49cb55617ee32edd7983a8038f0f7426e7ad8886af26f0457c0d2936d141"; digest.Hex() != want {
		t.Errorf("signing digest = %s, want %s", digest.Hex(), want)
	}
}

func TestIssueClaim_RoundTrip(t *testing.T) {
	issuer := testIssuer(t)
	identity := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")

	claim, err := issuer.IssueClaim(identity, big.NewInt(42), []byte("KYC passed"))
	if err != nil {
		t.Fatalf("IssueClaim() failed: %v", err)
	}

	if claim.Scheme.Int64() != SchemeECDSA {
		t.Errorf("scheme = %s, want %d", claim.Scheme, SchemeECDSA)
	}
	if claim.Issuer != issuer.Address() {
		t.Errorf("claim issuer = %s, want %s", claim.Issuer.Hex(), issuer.Address().Hex())
	}
	if len(claim.Signature) != crypto.SignatureLength {
		t.Fatalf("signature length = %d, want %d", len(claim.Signature), crypto.SignatureLength)
	}
	if v := claim.Signature[crypto.RecoveryIDOffset]; v != 27 && v != 28 {
		t.Errorf("recovery id = %d, want wire form 27 or 28", v)
	}

	ok, err := VerifyClaim(identity, claim)
	if err != nil {
		t.Fatalf("VerifyClaim() failed: %v", err)
	}
	if !ok {
		t.Error("VerifyClaim() = false for a freshly issued claim")
	}
}

func TestVerifyClaim_RejectsTampering(t *testing.T) {
	issuer := testIssuer(t)
	identity := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")

	claim, err := issuer.IssueClaim(identity, big.NewInt(42), []byte("KYC passed"))
	if err != nil {
		t.Fatalf("IssueClaim() failed: %v", err)
	}

	tests := []struct {
		name     string
		identity common.Address
		mutate   func(c *Claim)
	}{
		{
			name:     "flipped payload byte",
			identity: identity,
			mutate: func(c *Claim) {
				c.Data = append([]byte(nil), c.Data...)
				c.Data[0] ^= 0xff
			},
		},
		{
			name:     "changed topic",
			identity: identity,
			mutate:   func(c *Claim) { c.Topic = big.NewInt(43) },
		},
		{
			name:     "different subject identity",
			identity: common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
			mutate:   func(c *Claim) {},
		},
		{
			name:     "swapped issuer",
			identity: identity,
			mutate: func(c *Claim) {
				c.Issuer = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := *claim
			tt.mutate(&tampered)

			ok, err := VerifyClaim(tt.identity, &tampered)
			if err != nil {
				t.Fatalf("VerifyClaim() failed: %v", err)
			}
			if ok {
				t.Error("VerifyClaim() = true for a tampered claim")
			}
		})
	}
}

func TestRecoverSigner_AcceptsBothRecoveryIDForms(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	signerAddr := crypto.PubkeyToAddress(key.PublicKey)

	identity := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")
	dataHash, err := DataHash(identity, big.NewInt(7), []byte("payload"))
	if err != nil {
		t.Fatalf("DataHash() failed: %v", err)
	}

	raw, err := crypto.Sign(SigningDigest(dataHash).Bytes(), key)
	if err != nil {
		t.Fatalf("Sign() failed: %v", err)
	}

	got, err := RecoverSigner(dataHash, raw)
	if err != nil {
		t.Fatalf("RecoverSigner() failed on raw form: %v", err)
	}
	if got != signerAddr {
		t.Errorf("raw form recovered %s, want %s", got.Hex(), signerAddr.Hex())
	}

	wire := append([]byte(nil), raw...)
	wire[crypto.RecoveryIDOffset] += 27
	got, err = RecoverSigner(dataHash, wire)
	if err != nil {
		t.Fatalf("RecoverSigner() failed on wire form: %v", err)
	}
	if got != signerAddr {
		t.Errorf("wire form recovered %s, want %s", got.Hex(), signerAddr.Hex())
	}
}

func TestRecoverSigner_MalformedSignature(t *testing.T) {
	if _, err := RecoverSigner(common.Hash{}, []byte{0x01, 0x02}); err == nil {
		t.Fatal("expected error for truncated signature, got nil")
	}
}

func TestIssueClaim_Validation(t *testing.T) {
	issuer := testIssuer(t)
	identity := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")

	tests := []struct {
		name     string
		identity common.Address
		topic    *big.Int
	}{
		{name: "zero identity", identity: common.Address{}, topic: big.NewInt(42)},
		{name: "nil topic", identity: identity, topic: nil},
		{name: "negative topic", identity: identity, topic: big.NewInt(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.IssueClaim(tt.identity, tt.topic, []byte("x"))
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !apperrors.Is(err, apperrors.CategoryValidation) {
				t.Errorf("expected CategoryValidation, got %v", err)
			}
		})
	}
}
