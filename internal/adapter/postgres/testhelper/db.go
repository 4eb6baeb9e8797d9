// Package testhelper provides a shared PostgreSQL container for repository
// tests, migrated with the same code path the server uses at startup.
package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/rapidlingo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rapidlingo-backend/internal/config"
)

const (
	image    = "postgres:17-alpine"
	user     = "rapidlingo"
	password = "rapidlingo"
	dbName   = "rapidlingo_test"
)

var (
	once      sync.Once
	sharedCfg config.DatabaseConfig
	initErr   error
)

// SetupTestDB returns a pool on the shared, migrated test database. The
// container starts once per test binary; the pool is closed via t.Cleanup.
// Tests isolate their rows by using a fresh user id.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	once.Do(func() {
		sharedCfg, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, sharedCfg)
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func startContainerAndMigrate() (config.DatabaseConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       dbName,
			},
			// Postgres logs readiness twice: once for the init server, once for the real one.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return config.DatabaseConfig{}, fmt.Errorf("mapped port: %w", err)
	}

	cfg := config.DatabaseConfig{
		DSN:             fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port.Port(), dbName),
		MaxConns:        10,
		MinConns:        0,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return config.DatabaseConfig{}, err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		return config.DatabaseConfig{}, err
	}

	return cfg, nil
}
