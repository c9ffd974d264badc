package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/sparkrides/internal/pkg/models"
	"github.com/piresc/sparkrides/internal/pkg/retry"
)

// PostgresClient represents a PostgreSQL database client
type PostgresClient struct {
	db *sqlx.DB
}

// PostgresDSN builds a connection URL from config
func PostgresDSN(config models.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)
}

// NewPostgresClient connects to PostgreSQL, retrying with backoff while the
// database is still coming up.
func NewPostgresClient(ctx context.Context, config models.DatabaseConfig, retrier *retry.Retrier) (*PostgresClient, error) {
	driver := config.Driver
	if driver == "" {
		driver = "pgx"
	}

	var db *sqlx.DB
	err := retrier.Execute(ctx, func(ctx context.Context) error {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		var err error
		db, err = sqlx.ConnectContext(connectCtx, driver, PostgresDSN(config))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	configurePool(db, config)
	return &PostgresClient{db: db}, nil
}

// NewPostgresClientFromDB wraps an existing connection
func NewPostgresClientFromDB(db *sqlx.DB, config models.DatabaseConfig) *PostgresClient {
	configurePool(db, config)
	return &PostgresClient{db: db}
}

func configurePool(db *sqlx.DB, config models.DatabaseConfig) {
	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(time.Hour)
}

// GetDB returns the underlying sqlx handle
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// Ping verifies the connection is alive
func (p *PostgresClient) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the database connection pool
func (p *PostgresClient) Close() error {
	return p.db.Close()
}
