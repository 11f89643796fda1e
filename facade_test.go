package wekeza

import (
	"context"
	"testing"

	gocmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-wekeza/api"
	wekezacommand "github.com/goliatone/go-wekeza/command"
	wekezaquery "github.com/goliatone/go-wekeza/query"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewFacade_RequiresClient(t *testing.T) {
	_, err := NewFacade(nil)
	require.Error(t, err)
	_, err = NewFacade(&Client{})
	require.Error(t, err)

	var facade *Facade
	require.Nil(t, facade.Commands().InitiatePayment)
	require.Nil(t, facade.Queries().ListAccounts)
}

func TestFacade_CommandsAndQueriesReachTheAPI(t *testing.T) {
	fake := newFakeWekeza(t)
	client, err := New(fake.config(), WithHTTPClient(fake.Client()))
	require.NoError(t, err)
	facade, err := NewFacade(client)
	require.NoError(t, err)
	require.Same(t, client, facade.Client())

	collector := gocmd.NewResult[api.Payment]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)
	msg := wekezacommand.InitiatePaymentMessage{
		Request: api.PaymentRequest{
			SourceAccountID:          "acc_1",
			DestinationAccountNumber: "1009876543",
			Amount:                   decimal.NewFromInt(250),
		},
		IdempotencyKey: "facade-key-1",
	}
	require.NoError(t, msg.Validate())
	require.NoError(t, facade.Commands().InitiatePayment.Execute(ctx, msg))

	payment, ok := collector.Load()
	require.True(t, ok)
	require.Equal(t, "pay_1", payment.ID)
	require.Equal(t, []string{"facade-key-1"}, fake.paymentKeys)

	list, err := facade.Queries().ListAccounts.Query(context.Background(), wekezaquery.ListAccountsMessage{})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
}
