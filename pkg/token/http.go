package token

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	apphttp "github.com/chainsafe/kyc-middleware/pkg/app/http"
	"github.com/chainsafe/kyc-middleware/pkg/validation"
)

// HTTP wraps the token Service to provide the invest endpoint
type HTTP struct {
	svc    Service
	logger *zap.Logger
}

// RegisterRoutes registers the token endpoints on the given chi router
func RegisterRoutes(r chi.Router, svc Service, logger *zap.Logger) {
	h := &HTTP{
		svc:    svc,
		logger: logger,
	}

	r.Post("/invest", apphttp.HandleError(h.invest))
}

type investRequest struct {
	To           string `json:"to" validate:"required,eth_addr"`
	Amount       string `json:"amount" validate:"required"`
	TokenAddress string `json:"tokenAddress" validate:"omitempty,eth_addr"`
}

type investResponse struct {
	TransactionHash string `json:"transactionHash"`
}

// invest mints the requested amount to the recipient. The token contract
// defaults to the configured one when the request omits tokenAddress.
func (h *HTTP) invest(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.ValidationError(err, "failed to read request")
	}

	var req investRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.ValidationError(err, "invalid JSON")
	}
	if err := validation.Validate(&req); err != nil {
		return err
	}

	txHash, err := h.svc.Invest(
		r.Context(),
		common.HexToAddress(req.To),
		req.Amount,
		common.HexToAddress(req.TokenAddress),
	)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, &investResponse{TransactionHash: txHash.Hex()})
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
