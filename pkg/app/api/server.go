// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/chainsafe/kyc-middleware/internal/metrics"
	apphttp "github.com/chainsafe/kyc-middleware/pkg/app/http"
	"github.com/chainsafe/kyc-middleware/pkg/auth"
	"github.com/chainsafe/kyc-middleware/pkg/claims"
	"github.com/chainsafe/kyc-middleware/pkg/config"
	"github.com/chainsafe/kyc-middleware/pkg/ethereum"
	"github.com/chainsafe/kyc-middleware/pkg/identity"
	"github.com/chainsafe/kyc-middleware/pkg/keys"
	"github.com/chainsafe/kyc-middleware/pkg/registry"
	"github.com/chainsafe/kyc-middleware/pkg/token"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 60

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting KYC API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	chain, err := ethereum.NewClient(&cfg.Ethereum, logger)
	if err != nil {
		return fmt.Errorf("create ethereum client: %w", err)
	}
	defer chain.Close()

	if err := chain.VerifyChainID(ctx); err != nil {
		return fmt.Errorf("verify chain id: %w", err)
	}

	// The issuer credential never leaves this process; only its address is logged.
	issuerSigner, err := keys.ParseSigner(cfg.Ethereum.IssuerKey())
	if err != nil {
		return fmt.Errorf("parse claim issuer key: %w", err)
	}

	issuer := claims.NewIssuer(issuerSigner, logger)
	provisioner := identity.NewLog(identity.NewService(chain, logger), logger)
	registryService := registry.NewService(chain, logger)
	tokenService := token.NewService(chain, common.HexToAddress(cfg.Ethereum.TokenContract), logger)

	router := s.setupRouter(issuer, provisioner, registryService, tokenService, logger)

	stopMetrics := s.startMetricsListener(logger)
	defer stopMetrics()

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) setupRouter(
	issuer *claims.Issuer,
	provisioner identity.Service,
	registryService registry.Service,
	tokenService token.Service,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Second * defaultRequestTimeout))
	r.Use(requestMetrics)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// KYC endpoints, behind the bearer-token gate when auth is enabled
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(s.jwtValidator(logger), logger))

		identity.RegisterRoutes(r, provisioner, logger)
		claims.RegisterRoutes(r, issuer, s.cfg.Claims, logger)
		registry.RegisterRoutes(r, registryService, logger)
		token.RegisterRoutes(r, tokenService, logger)
	})

	return r
}

func (s *Server) jwtValidator(logger *zap.Logger) *auth.JWTValidator {
	if !s.cfg.Auth.Enabled {
		return nil
	}

	logger.Info("Bearer token authentication enabled",
		zap.String("jwks_url", s.cfg.Auth.JWKSURL),
		zap.String("issuer", s.cfg.Auth.Issuer),
	)
	return auth.NewJWTValidator(s.cfg.Auth.JWKSURL, s.cfg.Auth.Issuer, s.cfg.Auth.Audience)
}

// startMetricsListener serves Prometheus metrics on a separate port so the
// scrape surface is never exposed through the public API listener. Returns a
// stopper; a no-op when monitoring is disabled.
func (s *Server) startMetricsListener(logger *zap.Logger) func() {
	if !s.cfg.Monitoring.Enabled {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Monitoring.MetricsPort),
		Handler: mux,
	}

	go func() {
		logger.Info("Metrics listener started", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics listener error", zap.Error(err))
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}

// requestMetrics counts served requests by chi route pattern, method and
// status code. The route pattern keeps label cardinality bounded.
func requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unrouted"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}
