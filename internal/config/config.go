package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/ratelimit"
	"github.com/ardhichain/ardhi-registry/internal/storage"
)

// Wallet modes
const (
	WalletModeMnemonic = "mnemonic"
	WalletModeBridge   = "bridge"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// AlgorandConfig holds ledger node and registry application configuration
type AlgorandConfig struct {
	AlgodURL       string        `mapstructure:"algod_url"`
	AlgodToken     string        `mapstructure:"algod_token"`
	IndexerURL     string        `mapstructure:"indexer_url"`
	IndexerToken   string        `mapstructure:"indexer_token"`
	AppID          uint64        `mapstructure:"app_id"`
	AdminAddress   string        `mapstructure:"admin_address"`
	ExplorerURL    string        `mapstructure:"explorer_url"`
	WaitRounds     uint64        `mapstructure:"wait_rounds"`
	VerifyAttempts int           `mapstructure:"verify_attempts"`
	VerifyDelay    time.Duration `mapstructure:"verify_delay"`
}

// PinataConfig holds Pinata credentials and endpoints
type PinataConfig struct {
	JWT        string `mapstructure:"jwt"`
	APIURL     string `mapstructure:"api_url"`
	GatewayURL string `mapstructure:"gateway_url"`
}

// Web3StorageConfig holds Web3.Storage credentials and endpoints
type Web3StorageConfig struct {
	Token      string `mapstructure:"token"`
	APIURL     string `mapstructure:"api_url"`
	GatewayURL string `mapstructure:"gateway_url"`
}

// StorageTimeoutsConfig holds per-operation storage timeouts
type StorageTimeoutsConfig struct {
	Upload time.Duration `mapstructure:"upload"`
	Fetch  time.Duration `mapstructure:"fetch"`
	Health time.Duration `mapstructure:"health"`
}

// BackendLimitConfig holds the request budget for one storage backend
type BackendLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxWait           time.Duration `mapstructure:"max_wait"`
}

// RateLimitConfig holds storage request throttling configuration.
// The budget is shared through Redis when redis_addr is set.
type RateLimitConfig struct {
	RedisAddr     string             `mapstructure:"redis_addr"`
	RedisPassword string             `mapstructure:"redis_password"`
	RedisDB       int                `mapstructure:"redis_db"`
	KeyPrefix     string             `mapstructure:"key_prefix"`
	LocalFallback bool               `mapstructure:"local_fallback"`
	Pinata        BackendLimitConfig `mapstructure:"pinata"`
	Web3Storage   BackendLimitConfig `mapstructure:"web3storage"`
}

// StorageConfig holds storage provider configuration
type StorageConfig struct {
	Provider    string                `mapstructure:"provider"`
	Pinata      PinataConfig          `mapstructure:"pinata"`
	Web3Storage Web3StorageConfig     `mapstructure:"web3storage"`
	Timeouts    StorageTimeoutsConfig `mapstructure:"timeouts"`
	RateLimit   RateLimitConfig       `mapstructure:"rate_limit"`
}

// MigrationConfig holds content migration configuration
type MigrationConfig struct {
	Delay   time.Duration `mapstructure:"delay"`
	Source  string        `mapstructure:"source"`
	Target  string        `mapstructure:"target"`
	MaxSize int64         `mapstructure:"max_size"`
}

// WalletConfig holds signing wallet configuration
type WalletConfig struct {
	Mode        string        `mapstructure:"mode"`
	Mnemonic    string        `mapstructure:"mnemonic"`
	BridgeURL   string        `mapstructure:"bridge_url"`
	SignTimeout time.Duration `mapstructure:"sign_timeout"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	ReadTimeout    int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout   int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout    int      `mapstructure:"idle_timeout"`  // in seconds
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	JWTIssuer    string   `mapstructure:"jwt_issuer"`
	JWTAudience  string   `mapstructure:"jwt_audience"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Auth       AuthConfig      `mapstructure:"auth"`
	Algorand   AlgorandConfig  `mapstructure:"algorand"`
	Storage    StorageConfig   `mapstructure:"storage"`
	Migration  MigrationConfig `mapstructure:"migration"`
	Database   DatabaseConfig  `mapstructure:"database"`
	NATS       NATSConfig      `mapstructure:"nats"`
}

// MigrateConfig holds configuration for the migrate command
type MigrateConfig struct {
	BaseConfig `mapstructure:",squash"`
	Storage    StorageConfig   `mapstructure:"storage"`
	Migration  MigrationConfig `mapstructure:"migration"`
	Database   DatabaseConfig  `mapstructure:"database"`
	NATS       NATSConfig      `mapstructure:"nats"`
}

// TitleCtlConfig holds configuration for the titlectl command
type TitleCtlConfig struct {
	BaseConfig `mapstructure:",squash"`
	Algorand   AlgorandConfig `mapstructure:"algorand"`
	Storage    StorageConfig  `mapstructure:"storage"`
	Wallet     WalletConfig   `mapstructure:"wallet"`
	NATS       NATSConfig     `mapstructure:"nats"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 120)
	setAlgorandDefaults(v)
	setStorageDefaults(v)
	setMigrationDefaults(v)
	setDatabaseDefaults(v)
	setNATSDefaults(v, "ardhi-api")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadMigrateConfig loads configuration for the migrate command
func LoadMigrateConfig(configFile string, envPath string) (*MigrateConfig, error) {
	v := configureViper("migrate", configFile, envPath)

	// Set defaults
	setStorageDefaults(v)
	setMigrationDefaults(v)
	setDatabaseDefaults(v)
	setNATSDefaults(v, "ardhi-migrate")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg MigrateConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Migration.Source == cfg.Migration.Target {
		return nil, errors.New("migration.source and migration.target must differ")
	}

	return &cfg, nil
}

// LoadTitleCtlConfig loads configuration for the titlectl command
func LoadTitleCtlConfig(configFile string, envPath string) (*TitleCtlConfig, error) {
	v := configureViper("titlectl", configFile, envPath)

	// Set defaults
	setAlgorandDefaults(v)
	setStorageDefaults(v)
	setNATSDefaults(v, "ardhi-titlectl")
	v.SetDefault("wallet.mode", WalletModeMnemonic)
	v.SetDefault("wallet.sign_timeout", "2m")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg TitleCtlConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Algorand.AppID == 0 {
		return nil, errors.New("algorand.app_id is required")
	}
	if cfg.Wallet.Mode != WalletModeMnemonic && cfg.Wallet.Mode != WalletModeBridge {
		return nil, fmt.Errorf("unknown wallet.mode: %s", cfg.Wallet.Mode)
	}

	return &cfg, nil
}

// Validate checks the credentials required by the configured wallet mode
func (c *WalletConfig) Validate() error {
	switch c.Mode {
	case WalletModeMnemonic:
		if strings.TrimSpace(c.Mnemonic) == "" {
			return errors.New("wallet.mnemonic is required in mnemonic mode")
		}
	case WalletModeBridge:
		if c.BridgeURL == "" {
			return errors.New("wallet.bridge_url is required in bridge mode")
		}
	default:
		return fmt.Errorf("unknown wallet.mode: %s", c.Mode)
	}
	return nil
}

func setAlgorandDefaults(v *viper.Viper) {
	v.SetDefault("algorand.algod_url", domain.DEFAULT_TESTNET_ALGOD_URL)
	v.SetDefault("algorand.indexer_url", domain.DEFAULT_TESTNET_INDEXER_URL)
	v.SetDefault("algorand.explorer_url", domain.DEFAULT_TESTNET_EXPLORER_URL)
	v.SetDefault("algorand.wait_rounds", 4)
	v.SetDefault("algorand.verify_attempts", 3)
	v.SetDefault("algorand.verify_delay", "2s")
}

func setStorageDefaults(v *viper.Viper) {
	v.SetDefault("storage.provider", "pinata")
	v.SetDefault("storage.pinata.api_url", domain.DEFAULT_PINATA_API_URL)
	v.SetDefault("storage.pinata.gateway_url", domain.DEFAULT_PINATA_GATEWAY)
	v.SetDefault("storage.web3storage.api_url", domain.DEFAULT_WEB3STORAGE_API_URL)
	v.SetDefault("storage.web3storage.gateway_url", domain.DEFAULT_WEB3STORAGE_GATEWAY)
	v.SetDefault("storage.timeouts.upload", "60s")
	v.SetDefault("storage.timeouts.fetch", "30s")
	v.SetDefault("storage.timeouts.health", "10s")
	v.SetDefault("storage.rate_limit.local_fallback", true)
	v.SetDefault("storage.rate_limit.pinata.requests_per_second", 3)
	v.SetDefault("storage.rate_limit.pinata.burst", 5)
	v.SetDefault("storage.rate_limit.pinata.max_wait", "2m")
	v.SetDefault("storage.rate_limit.web3storage.requests_per_second", 2)
	v.SetDefault("storage.rate_limit.web3storage.burst", 4)
	v.SetDefault("storage.rate_limit.web3storage.max_wait", "2m")
}

func setMigrationDefaults(v *viper.Viper) {
	v.SetDefault("migration.delay", "1s")
	v.SetDefault("migration.source", "pinata")
	v.SetDefault("migration.target", "web3storage")
	v.SetDefault("migration.max_size", 100*1024*1024) // 100MB
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
}

func setNATSDefaults(v *viper.Viper, connectionName string) {
	v.SetDefault("nats.stream_name", "ARDHI_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", connectionName)
}

// readConfig reads the config file, falling back to environment variables when none exists
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/, cmd/migrate/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("ARDHI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Algorand
		"algorand.algod_url",
		"algorand.algod_token",
		"algorand.indexer_url",
		"algorand.indexer_token",
		"algorand.app_id",
		"algorand.admin_address",
		"algorand.explorer_url",
		"algorand.wait_rounds",
		"algorand.verify_attempts",
		"algorand.verify_delay",
		// Storage
		"storage.provider",
		"storage.pinata.jwt",
		"storage.pinata.api_url",
		"storage.pinata.gateway_url",
		"storage.web3storage.token",
		"storage.web3storage.api_url",
		"storage.web3storage.gateway_url",
		"storage.timeouts.upload",
		"storage.timeouts.fetch",
		"storage.timeouts.health",
		"storage.rate_limit.redis_addr",
		"storage.rate_limit.redis_password",
		"storage.rate_limit.redis_db",
		"storage.rate_limit.key_prefix",
		"storage.rate_limit.local_fallback",
		"storage.rate_limit.pinata.requests_per_second",
		"storage.rate_limit.pinata.burst",
		"storage.rate_limit.pinata.max_wait",
		"storage.rate_limit.web3storage.requests_per_second",
		"storage.rate_limit.web3storage.burst",
		"storage.rate_limit.web3storage.max_wait",
		// Migration
		"migration.delay",
		"migration.source",
		"migration.target",
		"migration.max_size",
		// Wallet
		"wallet.mode",
		"wallet.mnemonic",
		"wallet.bridge_url",
		"wallet.sign_timeout",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.jwt_issuer",
		"auth.jwt_audience",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Enabled reports whether a database host is configured
func (c *DatabaseConfig) Enabled() bool {
	return c.Host != "" && c.DBName != ""
}

// Enabled reports whether a NATS server is configured
func (c *NATSConfig) Enabled() bool {
	return c.URL != ""
}

// FactoryConfig converts the storage section into provider factory configuration
func (c *StorageConfig) FactoryConfig() (storage.Config, error) {
	providerType, ok := storage.ParseProviderType(c.Provider)
	if !ok {
		return storage.Config{}, fmt.Errorf("unknown storage.provider: %s", c.Provider)
	}

	return storage.Config{
		Provider: providerType,
		Pinata: storage.PinataConfig{
			JWT:        c.Pinata.JWT,
			APIURL:     c.Pinata.APIURL,
			GatewayURL: c.Pinata.GatewayURL,
		},
		Web3Storage: storage.Web3StorageConfig{
			Token:      c.Web3Storage.Token,
			APIURL:     c.Web3Storage.APIURL,
			GatewayURL: c.Web3Storage.GatewayURL,
		},
		Timeouts: storage.Timeouts{
			Upload: c.Timeouts.Upload,
			Fetch:  c.Timeouts.Fetch,
			Health: c.Timeouts.Health,
		},
	}, nil
}

// Enabled reports whether any backend has a request budget
func (c *RateLimitConfig) Enabled() bool {
	return c.Pinata.RequestsPerSecond > 0 || c.Web3Storage.RequestsPerSecond > 0
}

// LimiterConfig converts the rate_limit section into limiter configuration.
// Backends without a positive budget are left unthrottled.
func (c *RateLimitConfig) LimiterConfig() ratelimit.Config {
	providers := make(map[string]ratelimit.ProviderLimit, 2)
	backends := map[storage.ProviderType]BackendLimitConfig{
		storage.ProviderPinata:      c.Pinata,
		storage.ProviderWeb3Storage: c.Web3Storage,
	}
	for name, b := range backends {
		if b.RequestsPerSecond <= 0 {
			continue
		}
		providers[string(name)] = ratelimit.ProviderLimit{
			RequestsPerSecond: b.RequestsPerSecond,
			Burst:             b.Burst,
			MaxWait:           b.MaxWait,
		}
	}

	return ratelimit.Config{
		KeyPrefix:           c.KeyPrefix,
		EnableLocalFallback: c.LocalFallback,
		Providers:           providers,
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
