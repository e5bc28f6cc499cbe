package token

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
	"github.com/chainsafe/kyc-middleware/pkg/token/mocks"
)

func newInvestTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestInvestHTTP_ResponseCheck(t *testing.T) {
	wantTx := common.HexToHash("0x2f8c13a9c0a15e1b92d6ef5471cc8e70dd06c1b7c3f0a55138294e6b6ef4d8a3")

	svc := mocks.NewService(t)
	svc.EXPECT().
		Invest(mock.Anything, testRecipient, "2.5", testToken).
		Return(wantTx, nil).
		Once()
	handler := newInvestTestServer(svc)

	body := `{"to":"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266","amount":"2.5","tokenAddress":"0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"}`
	req := httptest.NewRequest(http.MethodPost, "/invest", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got investResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.TransactionHash != wantTx.Hex() {
		t.Fatalf("expected transaction hash %s, got %s", wantTx.Hex(), got.TransactionHash)
	}
}

func TestInvestHTTP_OmittedTokenAddress_PassesZero(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Invest(mock.Anything, testRecipient, "1", common.Address{}).
		Return(common.HexToHash("0x01"), nil).
		Once()
	handler := newInvestTestServer(svc)

	body := `{"to":"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266","amount":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/invest", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestInvestHTTP_MissingAmount_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newInvestTestServer(svc)

	body := `{"to":"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"}`
	req := httptest.NewRequest(http.MethodPost, "/invest", bytes.NewBufferString(body))
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
	if got.Error != "amount is required" {
		t.Fatalf("expected error %q, got %q", "amount is required", got.Error)
	}
}

func TestInvestHTTP_ServiceFailure_ReturnsInternalError(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Invest(mock.Anything, testRecipient, "1", common.Address{}).
		Return(common.Hash{}, apperrors.ChainWriteError(nil, "mint_tokens transaction reverted")).
		Once()
	handler := newInvestTestServer(svc)

	body := `{"to":"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266","amount":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/invest", bytes.NewBufferString(body))
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
	if got.Error != "mint_tokens transaction reverted" {
		t.Fatalf("unexpected error message %q", got.Error)
	}
}
