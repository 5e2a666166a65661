package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardhichain/ardhi-registry/internal/domain"
	"github.com/ardhichain/ardhi-registry/internal/ratelimit"
	"github.com/ardhichain/ardhi-registry/internal/storage"
)

func writeConfig(t *testing.T, content string) (string, string) {
	t.Helper()
	tmpDir := t.TempDir()
	if content == "" {
		return filepath.Join(tmpDir, "nonexistent.yaml"), tmpDir
	}
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile, tmpDir
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  allowed_origins:
    - https://ardhi.example.com
auth:
  jwt_public_key: "-----BEGIN PUBLIC KEY-----"
  jwt_issuer: ardhi
  api_keys:
    - key-one
    - key-two
algorand:
  algod_url: http://localhost:4001
  indexer_url: http://localhost:8980
  app_id: 123456
storage:
  provider: web3.storage
  web3storage:
    token: w3-token
  rate_limit:
    redis_addr: localhost:6379
    redis_db: 2
    pinata:
      requests_per_second: 10
      burst: 20
      max_wait: 30s
database:
  host: localhost
  user: ardhi
  password: secret
  dbname: ardhi
nats:
  url: nats://localhost:4222
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, []string{"https://ardhi.example.com"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, "ardhi", cfg.Auth.JWTIssuer)
				assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
				assert.Equal(t, uint64(123456), cfg.Algorand.AppID)
				assert.Equal(t, "http://localhost:4001", cfg.Algorand.AlgodURL)
				assert.Equal(t, "web3.storage", cfg.Storage.Provider)
				assert.Equal(t, "w3-token", cfg.Storage.Web3Storage.Token)
				assert.Equal(t, "localhost:6379", cfg.Storage.RateLimit.RedisAddr)
				assert.Equal(t, 2, cfg.Storage.RateLimit.RedisDB)
				assert.Equal(t, 10, cfg.Storage.RateLimit.Pinata.RequestsPerSecond)
				assert.Equal(t, 20, cfg.Storage.RateLimit.Pinata.Burst)
				assert.Equal(t, 30*time.Second, cfg.Storage.RateLimit.Pinata.MaxWait)
				assert.True(t, cfg.Database.Enabled())
				assert.True(t, cfg.NATS.Enabled())
			},
		},
		{
			name: "config with defaults",
			configFile: `
algorand:
  app_id: 1
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, domain.DEFAULT_TESTNET_ALGOD_URL, cfg.Algorand.AlgodURL)
				assert.Equal(t, domain.DEFAULT_TESTNET_INDEXER_URL, cfg.Algorand.IndexerURL)
				assert.Equal(t, uint64(4), cfg.Algorand.WaitRounds)
				assert.Equal(t, 2*time.Second, cfg.Algorand.VerifyDelay)
				assert.Equal(t, "pinata", cfg.Storage.Provider)
				assert.Equal(t, domain.DEFAULT_PINATA_GATEWAY, cfg.Storage.Pinata.GatewayURL)
				assert.Equal(t, 60*time.Second, cfg.Storage.Timeouts.Upload)
				assert.True(t, cfg.Storage.RateLimit.Enabled())
				assert.True(t, cfg.Storage.RateLimit.LocalFallback)
				assert.Equal(t, 3, cfg.Storage.RateLimit.Pinata.RequestsPerSecond)
				assert.Equal(t, 2*time.Minute, cfg.Storage.RateLimit.Web3Storage.MaxWait)
				assert.Empty(t, cfg.Storage.RateLimit.RedisAddr)
				assert.Equal(t, time.Second, cfg.Migration.Delay)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.False(t, cfg.Database.Enabled())
				assert.Equal(t, "ARDHI_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "ardhi-api", cfg.NATS.ConnectionName)
				assert.False(t, cfg.NATS.Enabled())
			},
		},
		{
			name:       "missing config file",
			configFile: "",
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, 8080, cfg.Server.Port)
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				server:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile, envPath := writeConfig(t, tt.configFile)

			cfg, err := LoadAPIConfig(configFile, envPath)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadAPIConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("ARDHI_SERVER_PORT", "7070")
	t.Setenv("ARDHI_ALGORAND_APP_ID", "987")
	t.Setenv("ARDHI_STORAGE_PINATA_JWT", "pinata-jwt")
	t.Setenv("ARDHI_DATABASE_HOST", "db.internal")

	cfg, err := LoadAPIConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, uint64(987), cfg.Algorand.AppID)
	assert.Equal(t, "pinata-jwt", cfg.Storage.Pinata.JWT)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoadAPIConfig_EnvFiles(t *testing.T) {
	envDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte("ARDHI_SERVER_HOST=base\nARDHI_SERVER_PORT=1000\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env.api.local"), []byte("ARDHI_SERVER_PORT=2000\n"), 0600))
	t.Cleanup(func() {
		_ = os.Unsetenv("ARDHI_SERVER_HOST")
		_ = os.Unsetenv("ARDHI_SERVER_PORT")
	})

	cfg, err := LoadAPIConfig(filepath.Join(envDir, "nonexistent.yaml"), envDir)
	require.NoError(t, err)

	assert.Equal(t, "base", cfg.Server.Host)
	assert.Equal(t, 2000, cfg.Server.Port)
}

func TestLoadMigrateConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *MigrateConfig)
	}{
		{
			name: "valid config file",
			configFile: `
storage:
  pinata:
    jwt: pinata-jwt
  web3storage:
    token: w3-token
migration:
  delay: 250ms
  source: web3storage
  target: pinata
`,
			validate: func(t *testing.T, cfg *MigrateConfig) {
				assert.Equal(t, "pinata-jwt", cfg.Storage.Pinata.JWT)
				assert.Equal(t, 250*time.Millisecond, cfg.Migration.Delay)
				assert.Equal(t, "web3storage", cfg.Migration.Source)
				assert.Equal(t, "pinata", cfg.Migration.Target)
				assert.Equal(t, "ardhi-migrate", cfg.NATS.ConnectionName)
			},
		},
		{
			name:       "defaults",
			configFile: "",
			validate: func(t *testing.T, cfg *MigrateConfig) {
				assert.Equal(t, "pinata", cfg.Migration.Source)
				assert.Equal(t, "web3storage", cfg.Migration.Target)
				assert.Equal(t, int64(100*1024*1024), cfg.Migration.MaxSize)
			},
		},
		{
			name: "same source and target",
			configFile: `
migration:
  source: pinata
  target: pinata
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile, envPath := writeConfig(t, tt.configFile)

			cfg, err := LoadMigrateConfig(configFile, envPath)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadTitleCtlConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError string
		validate    func(*testing.T, *TitleCtlConfig)
	}{
		{
			name: "mnemonic wallet",
			configFile: `
algorand:
  app_id: 42
wallet:
  mnemonic: "abandon abandon"
`,
			validate: func(t *testing.T, cfg *TitleCtlConfig) {
				assert.Equal(t, uint64(42), cfg.Algorand.AppID)
				assert.Equal(t, WalletModeMnemonic, cfg.Wallet.Mode)
				assert.Equal(t, 2*time.Minute, cfg.Wallet.SignTimeout)
				assert.NoError(t, cfg.Wallet.Validate())
			},
		},
		{
			name: "bridge wallet without url",
			configFile: `
algorand:
  app_id: 42
wallet:
  mode: bridge
`,
			validate: func(t *testing.T, cfg *TitleCtlConfig) {
				assert.EqualError(t, cfg.Wallet.Validate(), "wallet.bridge_url is required in bridge mode")
			},
		},
		{
			name: "missing mnemonic",
			configFile: `
algorand:
  app_id: 42
`,
			validate: func(t *testing.T, cfg *TitleCtlConfig) {
				assert.EqualError(t, cfg.Wallet.Validate(), "wallet.mnemonic is required in mnemonic mode")
			},
		},
		{
			name:        "missing app id",
			configFile:  "",
			expectError: "algorand.app_id is required",
		},
		{
			name: "unknown wallet mode",
			configFile: `
algorand:
  app_id: 42
wallet:
  mode: ledger
`,
			expectError: "unknown wallet.mode: ledger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile, envPath := writeConfig(t, tt.configFile)

			cfg, err := LoadTitleCtlConfig(configFile, envPath)

			if tt.expectError != "" {
				assert.EqualError(t, err, tt.expectError)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestStorageConfig_FactoryConfig(t *testing.T) {
	cfg := StorageConfig{
		Provider:    "W3S",
		Pinata:      PinataConfig{JWT: "jwt"},
		Web3Storage: Web3StorageConfig{Token: "token", GatewayURL: "https://w3s.link"},
		Timeouts:    StorageTimeoutsConfig{Upload: time.Minute},
	}

	factoryCfg, err := cfg.FactoryConfig()
	require.NoError(t, err)
	assert.Equal(t, storage.ProviderWeb3Storage, factoryCfg.Provider)
	assert.Equal(t, "jwt", factoryCfg.Pinata.JWT)
	assert.Equal(t, "token", factoryCfg.Web3Storage.Token)
	assert.Equal(t, time.Minute, factoryCfg.Timeouts.Upload)

	cfg.Provider = "dropbox"
	_, err = cfg.FactoryConfig()
	assert.EqualError(t, err, "unknown storage.provider: dropbox")
}

func TestRateLimitConfig_LimiterConfig(t *testing.T) {
	cfg := RateLimitConfig{
		KeyPrefix:     "ardhi:test:",
		LocalFallback: true,
		Pinata:        BackendLimitConfig{RequestsPerSecond: 3, Burst: 5, MaxWait: time.Minute},
	}
	assert.True(t, cfg.Enabled())

	limiterCfg := cfg.LimiterConfig()
	assert.Equal(t, "ardhi:test:", limiterCfg.KeyPrefix)
	assert.True(t, limiterCfg.EnableLocalFallback)
	assert.Equal(t, map[string]ratelimit.ProviderLimit{
		"pinata": {RequestsPerSecond: 3, Burst: 5, MaxWait: time.Minute},
	}, limiterCfg.Providers)

	assert.False(t, (&RateLimitConfig{}).Enabled())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "ardhi",
		Password: "secret",
		DBName:   "registry",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=ardhi password=secret dbname=registry sslmode=disable", cfg.DSN())
}
