package sqlstore_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	persistence "github.com/goliatone/go-persistence-bun"
	"github.com/goliatone/go-wekeza/api"
	sqlstore "github.com/goliatone/go-wekeza/store/sql"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrationSmokeApplySQLite(t *testing.T) {
	client := newSQLiteClient(t)

	var tableName string
	if err := client.DB().NewRaw(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?",
		"wekeza_payment_intents",
	).Scan(context.Background(), &tableName); err != nil {
		t.Fatalf("query sqlite master: %v", err)
	}
	if tableName != "wekeza_payment_intents" {
		t.Fatalf("expected wekeza_payment_intents table, got %q", tableName)
	}
}

func TestIntentStore_KeyForReusesStoredKey(t *testing.T) {
	ctx := context.Background()
	store := newIntentStore(t, newSQLiteClient(t))

	calls := 0
	generate := func() (string, error) {
		calls++
		return api.GenerateIdempotencyKey()
	}

	first, err := store.KeyFor(ctx, "order-1", generate)
	if err != nil {
		t.Fatalf("first key: %v", err)
	}
	again, err := store.KeyFor(ctx, "order-1", generate)
	if err != nil {
		t.Fatalf("second key: %v", err)
	}
	if first != again {
		t.Fatalf("expected stored key %q, got %q", first, again)
	}
	if calls != 1 {
		t.Fatalf("expected generator to run once, ran %d times", calls)
	}

	other, err := store.KeyFor(ctx, "order-2", generate)
	if err != nil {
		t.Fatalf("other key: %v", err)
	}
	if other == first {
		t.Fatalf("expected distinct intents to get distinct keys")
	}
}

func TestIntentStore_SharedDatabaseAcrossStoreInstances(t *testing.T) {
	ctx := context.Background()
	client := newSQLiteClient(t)
	storeA := newIntentStore(t, client)
	storeB := newIntentStore(t, client)

	keyA, err := storeA.KeyFor(ctx, "order-1", api.GenerateIdempotencyKey)
	if err != nil {
		t.Fatalf("store a: %v", err)
	}
	keyB, err := storeB.KeyFor(ctx, "order-1", func() (string, error) {
		t.Fatalf("generator must not run for a stored intent")
		return "", nil
	})
	if err != nil {
		t.Fatalf("store b: %v", err)
	}
	if keyA != keyB {
		t.Fatalf("expected both stores to agree, got %q and %q", keyA, keyB)
	}
}

func TestIntentStore_ConcurrentCallersConverge(t *testing.T) {
	ctx := context.Background()
	store := newIntentStore(t, newSQLiteClient(t))

	const workers = 8
	keys := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keys[i], errs[i] = store.KeyFor(ctx, "order-race", api.GenerateIdempotencyKey)
		}(i)
	}
	wg.Wait()

	for i := range workers {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if keys[i] != keys[0] {
			t.Fatalf("expected one key for the intent, got %q and %q", keys[0], keys[i])
		}
	}
}

func TestIntentStore_RecordGetAndForget(t *testing.T) {
	ctx := context.Background()
	store := newIntentStore(t, newSQLiteClient(t))

	if _, err := store.Get(ctx, "order-1"); !errors.Is(err, sqlstore.ErrIntentNotFound) {
		t.Fatalf("expected not found before create, got %v", err)
	}
	if err := store.RecordPayment(ctx, "order-1", "pay_1"); !errors.Is(err, sqlstore.ErrIntentNotFound) {
		t.Fatalf("expected record on unknown intent to fail, got %v", err)
	}

	key, err := store.KeyFor(ctx, "order-1", func() (string, error) { return "payment_1_abc", nil })
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	if err := store.RecordPayment(ctx, "order-1", "pay_1"); err != nil {
		t.Fatalf("record payment: %v", err)
	}

	intent, err := store.Get(ctx, "order-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if intent.IdempotencyKey != key || intent.PaymentID != "pay_1" {
		t.Fatalf("unexpected intent %+v", intent)
	}
	if intent.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	if err := store.Forget(ctx, "order-1"); err != nil {
		t.Fatalf("forget: %v", err)
	}
	if _, err := store.Get(ctx, "order-1"); !errors.Is(err, sqlstore.ErrIntentNotFound) {
		t.Fatalf("expected not found after forget, got %v", err)
	}
}

func TestIntentStore_GeneratorFailureLeavesNoRow(t *testing.T) {
	ctx := context.Background()
	store := newIntentStore(t, newSQLiteClient(t))

	if _, err := store.KeyFor(ctx, "order-1", func() (string, error) {
		return "", errors.New("entropy unavailable")
	}); err == nil {
		t.Fatalf("expected generator failure")
	}
	if _, err := store.Get(ctx, "order-1"); !errors.Is(err, sqlstore.ErrIntentNotFound) {
		t.Fatalf("expected no ledger row, got %v", err)
	}
}

func TestIntentStore_RejectsEmptyIntent(t *testing.T) {
	store := newIntentStore(t, newSQLiteClient(t))
	if _, err := store.KeyFor(context.Background(), "  ", api.GenerateIdempotencyKey); err == nil {
		t.Fatalf("expected empty intent id to fail")
	}
}

func TestOpen_RejectsUnsupportedDriver(t *testing.T) {
	if _, err := sqlstore.Open(context.Background(), sqlstore.Config{Driver: "oracle", DSN: "x"}); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
	if _, err := sqlstore.Open(context.Background(), sqlstore.Config{Driver: sqlstore.DriverSQLite}); err == nil {
		t.Fatalf("expected missing dsn error")
	}
}

func TestRepositoryFactory_ResolvesPersistenceClient(t *testing.T) {
	client := newSQLiteClient(t)
	factory, err := sqlstore.NewRepositoryFactoryFromPersistence(client)
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if factory.IntentStore() == nil || factory.DB() == nil {
		t.Fatalf("expected factory to build the intent store")
	}
	if _, err := sqlstore.NewRepositoryFactoryFromDB(nil); err == nil {
		t.Fatalf("expected nil db to fail")
	}
}

func newIntentStore(t *testing.T, client *persistence.Client) *sqlstore.IntentStore {
	t.Helper()
	store, err := sqlstore.NewIntentStore(client.DB())
	if err != nil {
		t.Fatalf("new intent store: %v", err)
	}
	return store
}

func newSQLiteClient(t *testing.T) *persistence.Client {
	t.Helper()
	dsn := fmt.Sprintf(
		"file:wekeza-test-%d?mode=memory&cache=shared&_foreign_keys=on",
		time.Now().UnixNano(),
	)
	client, err := sqlstore.Open(context.Background(), sqlstore.Config{
		Driver: sqlstore.DriverSQLite,
		DSN:    dsn,
	})
	if err != nil {
		t.Fatalf("open sqlite client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}
