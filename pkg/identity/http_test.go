package identity

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	"github.com/chainsafe/kyc-middleware/pkg/identity/mocks"
)

func newDeployTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestDeployHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newDeployTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/deploy", bytes.NewBufferString("{invalid"))
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

func TestDeployHTTP_MissingUserAddress_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newDeployTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/deploy", bytes.NewBufferString(`{}`))
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
	if got.Error != "userAddress is required" {
		t.Fatalf("expected error %q, got %q", "userAddress is required", got.Error)
	}
}

func TestDeployHTTP_ResponseCheck(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Provision(mock.Anything, testUser).
		Return(testIdentity, nil).
		Once()
	handler := newDeployTestServer(svc)

	body := `{"userAddress":"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"}`
	req := httptest.NewRequest(http.MethodPost, "/deploy", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type %q, got %q", "application/json", ct)
	}

	var got deployResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Address != testIdentity.Hex() {
		t.Fatalf("expected address %s, got %s", testIdentity.Hex(), got.Address)
	}
}

func TestDeployHTTP_ProvisioningFailure_ReturnsInternalError(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Provision(mock.Anything, testUser).
		Return(common.Address{}, apperrors.EventNotFoundError(nil, "identity address not found in deployment receipt")).
		Once()
	handler := newDeployTestServer(svc)

	body := `{"userAddress":"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"}`
	req := httptest.NewRequest(http.MethodPost, "/deploy", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}

	var got struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Error != "identity address not found in deployment receipt" {
		t.Fatalf("unexpected error message %q", got.Error)
	}
}
