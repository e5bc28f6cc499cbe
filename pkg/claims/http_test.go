package claims

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chainsafe/kyc-middleware/pkg/config"
)

func newSignatureTestServer(issuer *Issuer) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, issuer, config.ClaimsConfig{Topic: 42, Data: "KYC passed"}, zap.NewNop())
	return r
}

func TestSignatureHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	handler := newSignatureTestServer(testIssuer(t))

	req := httptest.NewRequest(http.MethodPost, "/signature", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var got struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Error != "invalid JSON" {
		t.Fatalf("expected error %q, got %q", "invalid JSON", got.Error)
	}
	if got.Code != http.StatusBadRequest {
		t.Fatalf("expected code %d, got %d", http.StatusBadRequest, got.Code)
	}
}

func TestSignatureHTTP_MissingIdentityAddress_ReturnsBadRequest(t *testing.T) {
	handler := newSignatureTestServer(testIssuer(t))

	body := `{"userAddress":"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"}`
	req := httptest.NewRequest(http.MethodPost, "/signature", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var got struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Error != "identityAddress is required" {
		t.Fatalf("expected error %q, got %q", "identityAddress is required", got.Error)
	}
}

func TestSignatureHTTP_MalformedAddress_ReturnsBadRequest(t *testing.T) {
	handler := newSignatureTestServer(testIssuer(t))

	body := `{"userAddress":"not-an-address","identityAddress":"0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"}`
	req := httptest.NewRequest(http.MethodPost, "/signature", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var got struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Error != "userAddress must be a valid Ethereum address" {
		t.Fatalf("expected error %q, got %q", "userAddress must be a valid Ethereum address", got.Error)
	}
}

func TestSignatureHTTP_IssuesVerifiableClaim(t *testing.T) {
	issuer := testIssuer(t)
	handler := newSignatureTestServer(issuer)
	identity := common.HexToAddress("0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199")

	body := `{"userAddress":"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266","identityAddress":"0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199"}`
	req := httptest.NewRequest(http.MethodPost, "/signature", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type %q, got %q", "application/json", ct)
	}

	var got claimResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Topic.Int64() != 42 {
		t.Fatalf("expected topic 42, got %s", got.Topic)
	}
	if got.Scheme.Int64() != SchemeECDSA {
		t.Fatalf("expected scheme %d, got %s", SchemeECDSA, got.Scheme)
	}
	if got.Issuer != issuer.Address().Hex() {
		t.Fatalf("expected issuer %s, got %s", issuer.Address().Hex(), got.Issuer)
	}
	if got.URI != "" {
		t.Fatalf("expected empty uri, got %q", got.URI)
	}

	sig, err := hexutil.Decode(got.Signature)
	if err != nil {
		t.Fatalf("failed to decode signature hex: %v", err)
	}
	data, err := hexutil.Decode(got.Data)
	if err != nil {
		t.Fatalf("failed to decode data hex: %v", err)
	}
	if string(data) != "KYC passed" {
		t.Fatalf("expected default claim data %q, got %q", "KYC passed", string(data))
	}

	valid, err := VerifyClaim(identity, &Claim{
		Topic:     got.Topic,
		Scheme:    got.Scheme,
		Issuer:    common.HexToAddress(got.Issuer),
		Signature: sig,
		Data:      data,
		URI:       got.URI,
	})
	if err != nil {
		t.Fatalf("VerifyClaim() failed: %v", err)
	}
	if !valid {
		t.Fatal("expected served claim to verify against its identity")
	}
}

func TestSignatureHTTP_TopicAndDataOverrides(t *testing.T) {
	issuer := testIssuer(t)
	handler := newSignatureTestServer(issuer)

	body := `{"userAddress":"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266","identityAddress":"0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199","topic":7,"data":"accredited"}`
	req := httptest.NewRequest(http.MethodPost, "/signature", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got claimResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Topic.Int64() != 7 {
		t.Fatalf("expected topic 7, got %s", got.Topic)
	}
	data, err := hexutil.Decode(got.Data)
	if err != nil {
		t.Fatalf("failed to decode data hex: %v", err)
	}
	if string(data) != "accredited" {
		t.Fatalf("expected claim data %q, got %q", "accredited", string(data))
	}
}
