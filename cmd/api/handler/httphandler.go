package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/DavidArdelean7/ledger-api/cmd/api/notification"
	"github.com/DavidArdelean7/ledger-api/cmd/api/savings"
	"github.com/DavidArdelean7/ledger-api/cmd/api/transaction"
	"github.com/DavidArdelean7/ledger-api/internal/cache"
	"github.com/DavidArdelean7/ledger-api/internal/store"
)

const (
	accounts              = "/accounts"
	balanceByAccountId    = "/accounts/:id/balance"
	transactionsByAccount = "/accounts/:id/transactions"
	transfers             = "/transfers"
	withdrawals           = "/withdrawals"
	passTime              = "/time/pass"
)

type Application struct {
	Store    *store.AccountStore
	Tm       *transaction.Manager
	Sm       *savings.Manager
	Cache    *cache.Redis
	Notifier *notification.Publisher
	handler  http.Handler
}

func (a *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func NewApplication(st *store.AccountStore, tm *transaction.Manager, sm *savings.Manager,
	c *cache.Redis, n *notification.Publisher) *Application {
	app := Application{
		Store:    st,
		Tm:       tm,
		Sm:       sm,
		Cache:    c,
		Notifier: n,
	}

	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, accounts, app.FindAllAccounts)
	router.HandlerFunc(http.MethodGet, balanceByAccountId, app.GetBalance)
	router.HandlerFunc(http.MethodGet, transactionsByAccount, app.GetTransactions)
	router.HandlerFunc(http.MethodPost, transfers, app.TransferFunds)
	router.HandlerFunc(http.MethodPost, withdrawals, app.WithdrawFunds)
	router.HandlerFunc(http.MethodPost, passTime, app.PassTime)

	app.handler = router
	return &app
}
