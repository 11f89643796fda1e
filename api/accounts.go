package api

import (
	"context"
	"net/http"
)

const accountsPath = "/accounts"

// Accounts reads account data. It holds no state beyond its Requester.
type Accounts struct {
	requester *Requester
}

func NewAccounts(requester *Requester) *Accounts {
	return &Accounts{requester: requester}
}

func (a *Accounts) ListAccounts(ctx context.Context, params ListAccountsParams) (AccountList, error) {
	var out AccountList
	err := a.requester.DoInto(ctx, Call{
		Method: http.MethodGet,
		Path:   accountsPath,
		Query:  params.query(),
	}, &out)
	return out, err
}

func (a *Accounts) GetAccount(ctx context.Context, accountID string) (Account, error) {
	id, err := requireID("account_id", accountID)
	if err != nil {
		return Account{}, err
	}
	var out Account
	err = a.requester.DoInto(ctx, Call{
		Method: http.MethodGet,
		Path:   resourcePath(accountsPath, id),
	}, &out)
	return out, err
}

func (a *Accounts) GetBalance(ctx context.Context, accountID string) (Balance, error) {
	id, err := requireID("account_id", accountID)
	if err != nil {
		return Balance{}, err
	}
	var out Balance
	err = a.requester.DoInto(ctx, Call{
		Method: http.MethodGet,
		Path:   resourcePath(accountsPath, id, "balance"),
	}, &out)
	return out, err
}

func (a *Accounts) GetTransactions(ctx context.Context, accountID string, params TransactionParams) (TransactionList, error) {
	id, err := requireID("account_id", accountID)
	if err != nil {
		return TransactionList{}, err
	}
	var out TransactionList
	err = a.requester.DoInto(ctx, Call{
		Method: http.MethodGet,
		Path:   resourcePath(accountsPath, id, "transactions"),
		Query:  params.query(),
	}, &out)
	return out, err
}
