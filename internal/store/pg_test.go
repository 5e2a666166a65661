package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ardhichain/ardhi-registry/internal/logger"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests.
// Without TEST_DB_HOST or a working container runtime the database tests are skipped.
func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	ctx := context.Background()

	dsn, err := testDSN(ctx)
	if err != nil {
		fmt.Printf("Database unavailable, skipping store tests: %v\n", err)
		os.Exit(m.Run())
	}

	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	if err := NewPGStore(testDB).AutoMigrate(ctx); err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		terminateContainer(ctx)
		os.Exit(1)
	}

	code := m.Run()

	terminateContainer(ctx)
	os.Exit(code)
}

// testDSN returns the DSN of an external database when TEST_DB_HOST is set,
// otherwise starts a PostgreSQL container
func testDSN(ctx context.Context) (string, error) {
	if dbHost := os.Getenv("TEST_DB_HOST"); dbHost != "" {
		dbPort := envOr("TEST_DB_PORT", "5432")
		dbUser := envOr("TEST_DB_USER", "postgres")
		dbPassword := envOr("TEST_DB_PASSWORD", "postgres")
		dbName := envOr("TEST_DB_NAME", "test_db")

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName), nil
	}

	if err := containerRuntimeHealthy(ctx); err != nil {
		return "", err
	}

	container, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}
	pgContainer = container

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminateContainer(ctx)
		return "", fmt.Errorf("failed to get connection string: %w", err)
	}

	fmt.Printf("Started PostgreSQL container\n")
	return dsn, nil
}

// containerRuntimeHealthy reports whether a container runtime can be reached.
// testcontainers panics when no docker host can be resolved.
func containerRuntimeHealthy(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("container runtime unavailable: %v", r)
		}
	}()

	provider, err := testcontainers.ProviderDocker.GetProvider()
	if err != nil {
		return fmt.Errorf("container runtime unavailable: %w", err)
	}
	defer func() { _ = provider.Close() }()

	if err := provider.Health(ctx); err != nil {
		return fmt.Errorf("container runtime unhealthy: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func terminateContainer(ctx context.Context) {
	if pgContainer == nil {
		return
	}
	if err := pgContainer.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
	pgContainer = nil
}

// initPGTestDB returns a store bound to a transaction that is rolled back after the test
func initPGTestDB(t *testing.T) Store {
	if testDB == nil {
		t.Skip("test database not available")
	}

	tx := testDB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewPGStore(tx)
}

// TestPostgreSQLStore runs all store tests against PostgreSQL
func TestPostgreSQLStore(t *testing.T) {
	RunStoreTests(t, initPGTestDB)
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	require.Equal(t, 10, open)
	require.Equal(t, 2, idle)
	require.Equal(t, 5*time.Minute, lifetime)
	require.Equal(t, 10*time.Minute, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(3, 8, time.Minute, time.Minute)
	require.Equal(t, 3, open)
	require.Equal(t, 3, idle)
}
