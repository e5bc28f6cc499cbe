package config

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Ethereum   EthereumConfig   `mapstructure:"ethereum"`
	Claims     ClaimsConfig     `mapstructure:"claims"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// EthereumConfig contains Ethereum client and contract settings
type EthereumConfig struct {
	RPCURL           string `mapstructure:"rpc_url"`
	ChainID          int64  `mapstructure:"chain_id"`
	IdentityFactory  string `mapstructure:"identity_factory"`
	IdentityRegistry string `mapstructure:"identity_registry"`
	TokenContract    string `mapstructure:"token_contract"`

	// OperatorPrivateKey signs deployments, key grants, registrations and
	// mints. ClaimIssuerPrivateKey signs claim attestations; it falls back
	// to the operator key when unset. Neither may appear in logs.
	OperatorPrivateKey    string `mapstructure:"operator_private_key"`
	ClaimIssuerPrivateKey string `mapstructure:"claim_issuer_private_key"`

	GasLimit            uint64        `mapstructure:"gas_limit"`
	ClaimGasLimit       uint64        `mapstructure:"claim_gas_limit"`
	MinPriorityFeeGwei  int64         `mapstructure:"min_priority_fee_gwei"`
	ConfirmationTimeout time.Duration `mapstructure:"confirmation_timeout"`
	ReceiptPollInterval time.Duration `mapstructure:"receipt_poll_interval"`
}

// ClaimsConfig contains the default attestation issued by the signature endpoint
type ClaimsConfig struct {
	Topic int64  `mapstructure:"topic"`
	Data  string `mapstructure:"data"`
}

// AuthConfig contains JWT validation settings for the HTTP surface
type AuthConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	JWKSURL  string `mapstructure:"jwks_url"`
	Issuer   string `mapstructure:"issuer"`
	Audience string `mapstructure:"audience"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MetricsPort int  `mapstructure:"metrics_port"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("KYC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "2m")
	viper.SetDefault("server.idle_timeout", "1m")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Ethereum defaults
	viper.SetDefault("ethereum.gas_limit", 300000)
	viper.SetDefault("ethereum.claim_gas_limit", 500000)
	viper.SetDefault("ethereum.min_priority_fee_gwei", 32)
	viper.SetDefault("ethereum.confirmation_timeout", "90s")
	viper.SetDefault("ethereum.receipt_poll_interval", "2s")

	// Claims defaults
	viper.SetDefault("claims.topic", 42)
	viper.SetDefault("claims.data", "KYC passed")

	// Auth defaults
	viper.SetDefault("auth.enabled", false)

	// Monitoring defaults
	viper.SetDefault("monitoring.enabled", true)
	viper.SetDefault("monitoring.metrics_port", 9090)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output_path", "stdout")
}

func validate(config *Config) error {
	if config.Ethereum.RPCURL == "" {
		return fmt.Errorf("ethereum.rpc_url is required")
	}
	if config.Ethereum.ChainID == 0 {
		return fmt.Errorf("ethereum.chain_id is required")
	}
	if config.Ethereum.OperatorPrivateKey == "" {
		return fmt.Errorf("ethereum.operator_private_key is required")
	}
	if config.Ethereum.IdentityFactory == "" {
		return fmt.Errorf("ethereum.identity_factory is required")
	}
	if config.Ethereum.IdentityRegistry == "" {
		return fmt.Errorf("ethereum.identity_registry is required")
	}
	if config.Auth.Enabled && config.Auth.JWKSURL == "" {
		return fmt.Errorf("auth.jwks_url is required when auth is enabled")
	}
	return nil
}

// MinPriorityFee returns the priority fee floor in wei
func (c *EthereumConfig) MinPriorityFee() *big.Int {
	gwei := big.NewInt(c.MinPriorityFeeGwei)
	return gwei.Mul(gwei, big.NewInt(1_000_000_000))
}

// IssuerKey returns the claim issuer credential, falling back to the operator key
func (c *EthereumConfig) IssuerKey() string {
	if c.ClaimIssuerPrivateKey != "" {
		return c.ClaimIssuerPrivateKey
	}
	return c.OperatorPrivateKey
}
