package identity

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const serviceName = "IdentityProvisioner"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the provisioning Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Provision wraps the service method with logging
func (ls *logService) Provision(
	ctx context.Context,
	userAddress common.Address,
) (identityAddress common.Address, err error) {
	start := time.Now()

	ls.logger.Info("Provision started",
		zap.String("service", serviceName),
		zap.String("method", "Provision"),
		zap.String("user_address", userAddress.Hex()),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Provision failed",
				zap.String("service", serviceName),
				zap.String("method", "Provision"),
				zap.String("user_address", userAddress.Hex()),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Provision completed",
				zap.String("service", serviceName),
				zap.String("method", "Provision"),
				zap.String("user_address", userAddress.Hex()),
				zap.String("identity_address", identityAddress.Hex()),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Provision(ctx, userAddress)
}
