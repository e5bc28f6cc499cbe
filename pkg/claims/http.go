package claims

import (
	"encoding/json"
	"io"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	apphttp "github.com/chainsafe/kyc-middleware/pkg/app/http"
	"github.com/chainsafe/kyc-middleware/pkg/config"
	"github.com/chainsafe/kyc-middleware/pkg/validation"
)

// HTTP wraps the Issuer to provide the signature endpoint
type HTTP struct {
	issuer   *Issuer
	defaults config.ClaimsConfig
	logger   *zap.Logger
}

// RegisterRoutes registers the claim signature endpoint on the given chi router
func RegisterRoutes(r chi.Router, issuer *Issuer, defaults config.ClaimsConfig, logger *zap.Logger) {
	h := &HTTP{
		issuer:   issuer,
		defaults: defaults,
		logger:   logger,
	}

	r.Post("/signature", apphttp.HandleError(h.signature))
}

type signatureRequest struct {
	UserAddress     string `json:"userAddress" validate:"required,eth_addr"`
	IdentityAddress string `json:"identityAddress" validate:"required,eth_addr"`
	Topic           *int64 `json:"topic" validate:"omitempty,min=0"`
	Data            string `json:"data"`
}

type claimResponse struct {
	Topic     *big.Int `json:"topic"`
	Scheme    *big.Int `json:"scheme"`
	Issuer    string   `json:"issuer"`
	Signature string   `json:"signature"`
	Data      string   `json:"data"`
	URI       string   `json:"uri"`
}

// signature issues a signed claim for the requested identity. Topic and
// payload default to the configured KYC claim when the request omits them.
func (h *HTTP) signature(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1MB limit
	if err != nil {
		return apperrors.ValidationError(err, "failed to read request")
	}

	var req signatureRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.ValidationError(err, "invalid JSON")
	}
	if err := validation.Validate(&req); err != nil {
		return err
	}

	topic := big.NewInt(h.defaults.Topic)
	if req.Topic != nil {
		topic = big.NewInt(*req.Topic)
	}
	data := []byte(h.defaults.Data)
	if req.Data != "" {
		data = []byte(req.Data)
	}

	claim, err := h.issuer.IssueClaim(common.HexToAddress(req.IdentityAddress), topic, data)
	if err != nil {
		return err
	}

	h.logger.Info("Signature request served",
		zap.String("user_address", req.UserAddress),
		zap.String("identity_address", req.IdentityAddress))

	h.writeJSON(w, http.StatusOK, &claimResponse{
		Topic:     claim.Topic,
		Scheme:    claim.Scheme,
		Issuer:    claim.Issuer.Hex(),
		Signature: hexutil.Encode(claim.Signature),
		Data:      hexutil.Encode(claim.Data),
		URI:       claim.URI,
	})
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
