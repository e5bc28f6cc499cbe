package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	apphttp "github.com/chainsafe/kyc-middleware/pkg/app/http"
	"github.com/chainsafe/kyc-middleware/pkg/validation"
)

// HTTP wraps the registry Service to provide registration and verification endpoints
type HTTP struct {
	svc    Service
	logger *zap.Logger
}

// RegisterRoutes registers the registry endpoints on the given chi router
func RegisterRoutes(r chi.Router, svc Service, logger *zap.Logger) {
	h := &HTTP{
		svc:    svc,
		logger: logger,
	}

	r.Post("/register", apphttp.HandleError(h.register))
	r.Get("/status/{userAddress}", apphttp.HandleError(h.status))
	r.Get("/identity/{userAddress}", apphttp.HandleError(h.identity))
}

type registerRequest struct {
	UserAddress     string `json:"userAddress" validate:"required,eth_addr"`
	IdentityAddress string `json:"identityAddress" validate:"required,eth_addr"`
	CountryCode     uint16 `json:"countryCode" validate:"required,max=999"`
}

type registerResponse struct {
	TransactionHash string `json:"transactionHash"`
}

type statusResponse struct {
	IsVerified bool `json:"isVerified"`
}

type identityResponse struct {
	IdentityAddress string `json:"identityAddress"`
}

// register enrolls a user's identity in the registry
func (h *HTTP) register(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.ValidationError(err, "failed to read request")
	}

	var req registerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.ValidationError(err, "invalid JSON")
	}
	if err := validation.Validate(&req); err != nil {
		return err
	}

	txHash, err := h.svc.Register(
		r.Context(),
		common.HexToAddress(req.UserAddress),
		common.HexToAddress(req.IdentityAddress),
		req.CountryCode,
	)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, &registerResponse{TransactionHash: txHash.Hex()})
	return nil
}

// status reports whether the user passes registry verification
func (h *HTTP) status(w http.ResponseWriter, r *http.Request) error {
	user, err := pathAddress(r, "userAddress")
	if err != nil {
		return err
	}

	verified, err := h.svc.IsVerified(r.Context(), user)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, &statusResponse{IsVerified: verified})
	return nil
}

// identity returns the identity address registered for the user
func (h *HTTP) identity(w http.ResponseWriter, r *http.Request) error {
	user, err := pathAddress(r, "userAddress")
	if err != nil {
		return err
	}

	identityAddress, err := h.svc.IdentityOf(r.Context(), user)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, &identityResponse{IdentityAddress: identityAddress.Hex()})
	return nil
}

// pathAddress extracts and validates an Ethereum address path parameter
func pathAddress(r *http.Request, param string) (common.Address, error) {
	raw := chi.URLParam(r, param)
	if !common.IsHexAddress(raw) {
		return common.Address{}, apperrors.ValidationError(nil, fmt.Sprintf("%s must be a valid Ethereum address", param))
	}
	return common.HexToAddress(raw), nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to write JSON response", zap.Error(err))
	}
}
