package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	wekeza "github.com/goliatone/go-wekeza"
	_ "github.com/mattn/go-sqlite3"
)

func TestFilesystems_ReturnsPostgresAndSQLite(t *testing.T) {
	filesystems, err := Filesystems()
	if err != nil {
		t.Fatalf("filesystems: %v", err)
	}
	if len(filesystems) != 2 {
		t.Fatalf("expected 2 filesystems, got %d", len(filesystems))
	}
	dialects := map[string]bool{}
	for _, entry := range filesystems {
		matches, err := fs.Glob(entry.FS, "*.up.sql")
		if err != nil {
			t.Fatalf("glob %s: %v", entry.Dialect, err)
		}
		if len(matches) == 0 {
			t.Fatalf("expected %s migration files, got none", entry.Dialect)
		}
		dialects[entry.Dialect] = true
	}
	if !dialects[DialectPostgres] || !dialects[DialectSQLite] {
		t.Fatalf("expected postgres and sqlite filesystems, got %v", dialects)
	}
}

func TestFilesystems_RejectsTreeWithoutUpMigrations(t *testing.T) {
	root := fstest.MapFS{
		"data/sql/migrations/00001_x.down.sql":        {Data: []byte("SELECT 1;")},
		"data/sql/migrations/sqlite/00001_x.down.sql": {Data: []byte("SELECT 1;")},
	}
	if _, err := Filesystems(root); err == nil {
		t.Fatalf("expected missing up migrations to fail")
	}
}

func TestRegister_UsesValidationTargets(t *testing.T) {
	var calls []string
	reg, err := Register(context.Background(), func(_ context.Context, dialect string, label string, _ fs.FS) error {
		calls = append(calls, dialect+":"+label)
		return nil
	}, WithValidationTargets(" SQLite "), WithSourceLabel("ledger"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(calls) != 1 || calls[0] != "sqlite:ledger" {
		t.Fatalf("expected one sqlite registration, got %v", calls)
	}
	if reg.SourceLabel != "ledger" {
		t.Fatalf("expected source label override, got %q", reg.SourceLabel)
	}
}

func TestRegister_RequiresRegisterFunc(t *testing.T) {
	if _, err := Register(context.Background(), nil); err == nil {
		t.Fatalf("expected nil register func to fail")
	}
}

func TestPaymentIntentMigrationPair_ExistsForBothDialects(t *testing.T) {
	root := wekeza.GetMigrationsFS()
	paths := []string{
		"data/sql/migrations/00001_wekeza_payment_intents.up.sql",
		"data/sql/migrations/00001_wekeza_payment_intents.down.sql",
		"data/sql/migrations/sqlite/00001_wekeza_payment_intents.up.sql",
		"data/sql/migrations/sqlite/00001_wekeza_payment_intents.down.sql",
	}
	for _, migrationPath := range paths {
		content, err := fs.ReadFile(root, migrationPath)
		if err != nil {
			t.Fatalf("read migration %s: %v", migrationPath, err)
		}
		if strings.TrimSpace(string(content)) == "" {
			t.Fatalf("expected migration %s to have SQL content", migrationPath)
		}
	}
}

func TestSQLitePaymentIntentMigration_EnforcesUniqueIntent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite3", "file:migrations-payment-intents?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)

	sqliteMigrations, err := fs.Sub(wekeza.GetMigrationsFS(), "data/sql/migrations/sqlite")
	if err != nil {
		t.Fatalf("resolve sqlite migrations: %v", err)
	}
	if err := execSQLMigration(ctx, db, sqliteMigrations, "00001_wekeza_payment_intents.up.sql"); err != nil {
		t.Fatalf("apply up migration: %v", err)
	}

	insert := `INSERT INTO wekeza_payment_intents (id, intent_id, idempotency_key) VALUES (?, ?, ?)`
	if _, err := db.ExecContext(ctx, insert, "row-1", "order-1", "payment_1_aa"); err != nil {
		t.Fatalf("insert first intent: %v", err)
	}
	if _, err := db.ExecContext(ctx, insert, "row-2", "order-1", "payment_1_bb"); err == nil {
		t.Fatalf("expected duplicate intent id to violate unique index")
	}
	if _, err := db.ExecContext(ctx, insert, "row-3", "order-2", "payment_1_aa"); err == nil {
		t.Fatalf("expected duplicate idempotency key to violate unique index")
	}

	if err := execSQLMigration(ctx, db, sqliteMigrations, "00001_wekeza_payment_intents.down.sql"); err != nil {
		t.Fatalf("apply down migration: %v", err)
	}
	var name string
	err = db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?",
		"wekeza_payment_intents",
	).Scan(&name)
	if err != sql.ErrNoRows {
		t.Fatalf("expected table to be dropped, got name=%q err=%v", name, err)
	}
}

func execSQLMigration(ctx context.Context, db *sql.DB, fsys fs.FS, filename string) error {
	content, err := fs.ReadFile(fsys, filepath.Clean(filename))
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, string(content))
	return err
}
