package gocommand

import (
	"fmt"

	commanddispatcher "github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	wekeza "github.com/goliatone/go-wekeza"
	"github.com/goliatone/go-wekeza/api"
	wekezacommand "github.com/goliatone/go-wekeza/command"
	wekezaquery "github.com/goliatone/go-wekeza/query"
)

// Subscriptions holds every dispatcher subscription made for a facade.
type Subscriptions []commanddispatcher.Subscription

// Unsubscribe removes all handlers from the dispatcher.
func (s Subscriptions) Unsubscribe() {
	for _, subscription := range s {
		unsubscribe(subscription)
	}
}

// SubscribeFacade registers the facade commands and queries with adapter and
// subscribes them to the global dispatcher, so callers can use Dispatch and
// Query with the wekeza message types.
func SubscribeFacade(adapter *RegistryAdapter, facade *wekeza.Facade, runnerOpts ...runner.Option) (Subscriptions, error) {
	if facade == nil {
		return nil, fmt.Errorf("gocommand: facade is required")
	}
	commands := facade.Commands()
	queries := facade.Queries()

	var subs Subscriptions
	steps := []func() (commanddispatcher.Subscription, error){
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribe[wekezacommand.InitiatePaymentMessage](adapter, commands.InitiatePayment, runnerOpts...)
		},
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribe[wekezacommand.CancelPaymentMessage](adapter, commands.CancelPayment, runnerOpts...)
		},
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribe[wekezacommand.MpesaSTKPushMessage](adapter, commands.MpesaSTKPush, runnerOpts...)
		},
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribe[wekezacommand.RegisterWebhookEndpointMessage](adapter, commands.RegisterWebhookEndpoint, runnerOpts...)
		},
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribeQuery[wekezaquery.ListAccountsMessage, api.AccountList](adapter, queries.ListAccounts, runnerOpts...)
		},
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribeQuery[wekezaquery.GetAccountMessage, api.Account](adapter, queries.GetAccount, runnerOpts...)
		},
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribeQuery[wekezaquery.GetBalanceMessage, api.Balance](adapter, queries.GetBalance, runnerOpts...)
		},
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribeQuery[wekezaquery.GetTransactionsMessage, api.TransactionList](adapter, queries.GetTransactions, runnerOpts...)
		},
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribeQuery[wekezaquery.GetPaymentMessage, api.Payment](adapter, queries.GetPayment, runnerOpts...)
		},
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribeQuery[wekezaquery.GetPaymentStatusMessage, api.PaymentStatus](adapter, queries.GetPaymentStatus, runnerOpts...)
		},
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribeQuery[wekezaquery.ListPaymentsMessage, api.PaymentList](adapter, queries.ListPayments, runnerOpts...)
		},
		func() (commanddispatcher.Subscription, error) {
			return RegisterAndSubscribeQuery[wekezaquery.ListWebhookEndpointsMessage, api.WebhookEndpointList](adapter, queries.ListWebhookEndpoints, runnerOpts...)
		},
	}
	for _, step := range steps {
		subscription, err := step()
		if err != nil {
			subs.Unsubscribe()
			return nil, err
		}
		subs = append(subs, subscription)
	}
	return subs, nil
}
