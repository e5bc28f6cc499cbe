package identity

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

// HTTP wraps the provisioning Service to provide the deploy endpoint
type HTTP struct {
	svc    Service
	logger *zap.Logger
}

// RegisterRoutes registers the identity deployment endpoint on the given chi router
func RegisterRoutes(r chi.Router, svc Service, logger *zap.Logger) {
	h := &HTTP{
		svc:    svc,
		logger: logger,
	}

	r.Post("/deploy", apphttp.HandleError(h.deploy))
}

type deployRequest struct {
	UserAddress string `json:"userAddress" validate:"required,eth_addr"`
}

type deployResponse struct {
	Address string `json:"address"`
}

// deploy provisions an identity contract for the requested user wallet
func (h *HTTP) deploy(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.ValidationError(err, "failed to read request")
	}

	var req deployRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.ValidationError(err, "invalid JSON")
	}
	if err := validation.Validate(&req); err != nil {
		return err
	}

	identityAddress, err := h.svc.Provision(r.Context(), common.HexToAddress(req.UserAddress))
	if err != nil {
		return err
	}

	h.logger.Info("Deploy request served",
		zap.String("user_address", req.UserAddress),
		zap.String("identity_address", identityAddress.Hex()))

	h.writeJSON(w, http.StatusOK, &deployResponse{Address: identityAddress.Hex()})
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
