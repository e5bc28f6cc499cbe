package ethereum

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func gwei(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1_000_000_000))
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad big.Int literal %q", s)
	}
	return v
}

func TestComputeFeeQuote_MissingData(t *testing.T) {
	policy := FeePolicy{MinPriorityFee: gwei(32)}

	cases := []struct {
		name string
		data *FeeData
	}{
		{"nil snapshot", nil},
		{"nil max fee", &FeeData{MaxPriorityFeePerGas: gwei(2)}},
		{"nil priority fee", &FeeData{MaxFeePerGas: gwei(100)}},
		{"empty snapshot", &FeeData{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeFeeQuote(tc.data, policy)
			if !errors.Is(err, ErrFeeDataUnavailable) {
				t.Fatalf("expected ErrFeeDataUnavailable, got %v", err)
			}
		})
	}
}

func TestComputeFeeQuote_FloorAndBuffer(t *testing.T) {
	cases := []struct {
		name       string
		data       *FeeData
		floor      *big.Int
		wantTip    *big.Int
		wantMaxFee *big.Int
	}{
		{
			name:       "suggestion below floor is raised then buffered",
			data:       &FeeData{MaxFeePerGas: gwei(100), MaxPriorityFeePerGas: gwei(2)},
			floor:      gwei(32),
			wantTip:    big.NewInt(35_200_000_000),  // 32 gwei * 110%
			wantMaxFee: big.NewInt(133_200_000_000), // 98 gwei base estimate + buffered tip
		},
		{
			name:       "suggestion above floor is kept",
			data:       &FeeData{MaxFeePerGas: gwei(100), MaxPriorityFeePerGas: gwei(40)},
			floor:      gwei(32),
			wantTip:    gwei(44),
			wantMaxFee: big.NewInt(104_000_000_000), // 60 gwei base estimate + 44 gwei tip
		},
		{
			name:       "integer buffer truncates",
			data:       &FeeData{MaxFeePerGas: big.NewInt(100), MaxPriorityFeePerGas: big.NewInt(15)},
			wantTip:    big.NewInt(16), // 15 * 110 / 100 = 16.5 truncated
			wantMaxFee: big.NewInt(101),
		},
		{
			name:       "one wei tip survives the buffer",
			data:       &FeeData{MaxFeePerGas: big.NewInt(10), MaxPriorityFeePerGas: big.NewInt(1)},
			floor:      big.NewInt(0),
			wantTip:    big.NewInt(1),
			wantMaxFee: big.NewInt(10),
		},
		{
			name:       "base estimate clamps at zero",
			data:       &FeeData{MaxFeePerGas: big.NewInt(5), MaxPriorityFeePerGas: big.NewInt(10)},
			wantTip:    big.NewInt(11),
			wantMaxFee: big.NewInt(11),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := ComputeFeeQuote(tc.data, FeePolicy{MinPriorityFee: tc.floor})
			if err != nil {
				t.Fatalf("ComputeFeeQuote() failed: %v", err)
			}
			if quote.MaxPriorityFeePerGas.Cmp(tc.wantTip) != 0 {
				t.Errorf("priority fee = %s, want %s", quote.MaxPriorityFeePerGas, tc.wantTip)
			}
			if quote.MaxFeePerGas.Cmp(tc.wantMaxFee) != 0 {
				t.Errorf("max fee = %s, want %s", quote.MaxFeePerGas, tc.wantMaxFee)
			}
		})
	}
}

func TestComputeFeeQuote_Int64Boundary(t *testing.T) {
	// Buffered values straddling 2^63 must stay exact where a signed
	// 64-bit intermediate would overflow during the 110/100 multiply.
	cases := []struct {
		name    string
		tip     *big.Int
		wantTip *big.Int
	}{
		{
			name:    "tip at 2^63-1",
			tip:     new(big.Int).SetInt64(math.MaxInt64),
			wantTip: mustBig(t, "10145709240540253387"),
		},
		{
			name:    "tip at 2^63",
			tip:     new(big.Int).Lsh(big.NewInt(1), 63),
			wantTip: mustBig(t, "10145709240540253388"),
		},
		{
			name:    "tip beyond int64 range",
			tip:     mustBig(t, "20000000000000000000"),
			wantTip: mustBig(t, "22000000000000000000"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := &FeeData{
				MaxFeePerGas:         new(big.Int).Set(tc.tip),
				MaxPriorityFeePerGas: new(big.Int).Set(tc.tip),
			}

			quote, err := ComputeFeeQuote(data, FeePolicy{MinPriorityFee: gwei(32)})
			if err != nil {
				t.Fatalf("ComputeFeeQuote() failed: %v", err)
			}
			if quote.MaxPriorityFeePerGas.Cmp(tc.wantTip) != 0 {
				t.Errorf("priority fee = %s, want %s", quote.MaxPriorityFeePerGas, tc.wantTip)
			}
			// Max fee and tip share a zero base estimate here.
			if quote.MaxFeePerGas.Cmp(tc.wantTip) != 0 {
				t.Errorf("max fee = %s, want %s", quote.MaxFeePerGas, tc.wantTip)
			}
		})
	}
}

func TestComputeFeeQuote_DoesNotAliasInputs(t *testing.T) {
	data := &FeeData{MaxFeePerGas: gwei(100), MaxPriorityFeePerGas: gwei(40)}

	quote, err := ComputeFeeQuote(data, FeePolicy{MinPriorityFee: gwei(32)})
	if err != nil {
		t.Fatalf("ComputeFeeQuote() failed: %v", err)
	}

	// Mutating the snapshot afterwards must not change the issued quote.
	data.MaxFeePerGas.SetInt64(0)
	data.MaxPriorityFeePerGas.SetInt64(0)

	if quote.MaxPriorityFeePerGas.Cmp(gwei(44)) != 0 {
		t.Errorf("priority fee = %s, want %s", quote.MaxPriorityFeePerGas, gwei(44))
	}
	if quote.MaxFeePerGas.Cmp(big.NewInt(104_000_000_000)) != 0 {
		t.Errorf("max fee = %s, want 104000000000", quote.MaxFeePerGas)
	}
}
