package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	wekeza "github.com/goliatone/go-wekeza"
	"github.com/goliatone/go-wekeza/adapters/gocommand"
	"github.com/goliatone/go-wekeza/adapters/gologger"
	"github.com/goliatone/go-wekeza/api"
	wekezacommand "github.com/goliatone/go-wekeza/command"
	"github.com/goliatone/go-wekeza/core"
	wekezaquery "github.com/goliatone/go-wekeza/query"
	sqlstore "github.com/goliatone/go-wekeza/store/sql"
	"github.com/shopspring/decimal"

	gocmd "github.com/goliatone/go-command"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	envLogLevel       = "WEKEZA_LOG_LEVEL"
	envIntentDBDriver = "WEKEZA_INTENT_DB_DRIVER"
	envIntentDBDSN    = "WEKEZA_INTENT_DB_DSN"
	envIntentID       = "WEKEZA_DEMO_INTENT_ID"
)

func main() {
	os.Exit(execute())
}

func execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: gologger.ParseLevel(os.Getenv(envLogLevel)),
	}))
	provider := gologger.NewSlogProvider(base)
	logger := provider.GetLogger("wekeza.demo")

	opts := []wekeza.Option{wekeza.WithLoggerProvider(provider)}
	closeStore, storeOpt, err := openIntentStore(ctx)
	if err != nil {
		logger.Error("intent store unavailable", "error", core.Describe(err))
		return 1
	}
	defer closeStore()
	if storeOpt != nil {
		opts = append(opts, storeOpt)
	}

	client, err := wekeza.FromEnv(ctx, opts...)
	if err != nil {
		logger.Error("client setup failed", "error", core.Describe(err))
		return 1
	}

	if err := run(ctx, os.Stdout, client); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %s\n", core.Describe(err))
		return 1
	}
	return 0
}

// run walks the account and payment flow through the go-command dispatcher.
func run(ctx context.Context, out io.Writer, client *wekeza.Client) error {
	facade, err := wekeza.NewFacade(client)
	if err != nil {
		return err
	}
	subs, err := gocommand.SubscribeFacade(gocommand.NewRegistryAdapter(nil), facade)
	if err != nil {
		return err
	}
	defer subs.Unsubscribe()

	fmt.Fprintln(out, "=== Wekeza API Demo ===")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "1. Fetching accounts...")
	accounts, err := gocommand.Query[wekezaquery.ListAccountsMessage, api.AccountList](ctx, wekezaquery.ListAccountsMessage{})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Found %d accounts\n", len(accounts.Data))
	printJSON(out, accounts)

	if len(accounts.Data) > 0 {
		accountID := accounts.Data[0].ID

		fmt.Fprintf(out, "2. Getting balance for account %s...\n", accountID)
		balance, err := gocommand.Query[wekezaquery.GetBalanceMessage, api.Balance](ctx, wekezaquery.GetBalanceMessage{AccountID: accountID})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Balance: %s %s\n\n", balance.Currency, balance.Available.String())

		fmt.Fprintf(out, "3. Getting transactions for account %s...\n", accountID)
		transactions, err := gocommand.Query[wekezaquery.GetTransactionsMessage, api.TransactionList](ctx, wekezaquery.GetTransactionsMessage{
			AccountID: accountID,
			Params:    api.TransactionParams{Limit: 5},
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Found %d recent transactions\n", len(transactions.Data))
		printJSON(out, transactions)
	}

	fmt.Fprintln(out, "4. Initiating a payment...")
	collector := gocmd.NewResult[api.Payment]()
	err = gocommand.Dispatch(gocmd.ContextWithResult(ctx, collector), wekezacommand.InitiatePaymentMessage{
		Request: api.PaymentRequest{
			SourceAccountID:          "acc_test_12345",
			DestinationAccountNumber: "1009876543",
			Amount:                   decimal.RequireFromString("1000.00"),
			Currency:                 "KES",
			Reference:                "TEST-PAYMENT-001",
			Description:              "Test payment from SDK",
		},
		IntentID: strings.TrimSpace(os.Getenv(envIntentID)),
	})
	if err != nil {
		return err
	}
	payment, ok := collector.Load()
	if !ok {
		return fmt.Errorf("demo: payment command returned no result")
	}
	fmt.Fprintln(out, "Payment initiated successfully:")
	printJSON(out, payment)

	fmt.Fprintln(out, "5. Checking payment status...")
	status, err := gocommand.Query[wekezaquery.GetPaymentStatusMessage, api.PaymentStatus](ctx, wekezaquery.GetPaymentStatusMessage{PaymentID: payment.ID})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Payment Status: %s\n\n", status.Status)

	fmt.Fprintln(out, "=== Demo Complete ===")
	return nil
}

// openIntentStore opens the durable idempotency ledger when a driver is
// configured. Keys are reused only for payments sent with an intent id.
func openIntentStore(ctx context.Context) (func(), wekeza.Option, error) {
	driver := strings.TrimSpace(os.Getenv(envIntentDBDriver))
	if driver == "" {
		return func() {}, nil, nil
	}
	client, err := sqlstore.Open(ctx, sqlstore.Config{
		Driver: driver,
		DSN:    os.Getenv(envIntentDBDSN),
	})
	if err != nil {
		return func() {}, nil, err
	}
	closeFn := func() { _ = client.Close() }

	factory, err := sqlstore.NewRepositoryFactoryFromPersistence(client)
	if err != nil {
		closeFn()
		return func() {}, nil, err
	}
	return closeFn, wekeza.WithIntentStore(factory.IntentStore()), nil
}

func printJSON(out io.Writer, value any) {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		fmt.Fprintf(out, "%+v\n\n", value)
		return
	}
	fmt.Fprintf(out, "%s\n\n", encoded)
}
