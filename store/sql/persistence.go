package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"
	"time"

	persistence "github.com/goliatone/go-persistence-bun"
	"github.com/goliatone/go-wekeza/migrations"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config selects the database backing the intent ledger. The driver must be
// registered by the caller, usually with a blank import of lib/pq or
// mattn/go-sqlite3.
type Config struct {
	Driver      string
	DSN         string
	Debug       bool
	PingTimeout time.Duration
}

func (c Config) GetDebug() bool {
	return c.Debug
}

func (c Config) GetDriver() string {
	return c.Driver
}

func (c Config) GetServer() string {
	return c.DSN
}

func (c Config) GetPingTimeout() time.Duration {
	if c.PingTimeout <= 0 {
		return 5 * time.Second
	}
	return c.PingTimeout
}

func (c Config) GetOtelIdentifier() string {
	return "go-wekeza"
}

// Open connects, applies the ledger migrations for the configured dialect and
// returns the persistence client.
func Open(ctx context.Context, cfg Config) (*persistence.Client, error) {
	cfg.Driver = strings.TrimSpace(strings.ToLower(cfg.Driver))
	cfg.DSN = strings.TrimSpace(cfg.DSN)
	if cfg.DSN == "" {
		return nil, fmt.Errorf("sqlstore: dsn is required")
	}
	dialect, migrationDialect, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", cfg.Driver, err)
	}
	if migrationDialect == migrations.DialectSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	client, err := persistence.New(cfg, sqlDB, dialect)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlstore: new persistence client: %w", err)
	}
	if err := Migrate(ctx, client, migrationDialect); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Migrate registers the embedded migrations for dialect and applies them.
func Migrate(ctx context.Context, client *persistence.Client, dialect string) error {
	if client == nil {
		return fmt.Errorf("sqlstore: persistence client is required")
	}
	_, err := migrations.Register(ctx, func(_ context.Context, target string, _ string, fsys fs.FS) error {
		if target != dialect {
			return nil
		}
		client.RegisterSQLMigrations(fsys)
		return nil
	}, migrations.WithValidationTargets(dialect))
	if err != nil {
		return err
	}
	if err := client.Migrate(ctx); err != nil {
		return fmt.Errorf("sqlstore: migrate: %w", err)
	}
	return nil
}

func dialectFor(driver string) (schema.Dialect, string, error) {
	switch driver {
	case DriverPostgres:
		return pgdialect.New(), migrations.DialectPostgres, nil
	case DriverSQLite:
		return sqlitedialect.New(), migrations.DialectSQLite, nil
	default:
		return nil, "", fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}
}
