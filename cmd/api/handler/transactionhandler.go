package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/DavidArdelean7/ledger-api/cmd/api/account"
	"github.com/DavidArdelean7/ledger-api/cmd/api/money"
	"github.com/DavidArdelean7/ledger-api/cmd/api/transaction"
	"github.com/DavidArdelean7/ledger-api/internal/web"
)

func (a *Application) TransferFunds(w http.ResponseWriter, r *http.Request) {
	// request validation
	var payload transaction.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request payload, unable to parse")
		return
	}
	defer r.Body.Close()

	if payload.FromID == "" || payload.ToID == "" {
		web.RespondError(w, http.StatusBadRequest, "from and to are required fields")
		return
	}
	if payload.Amount.IsNegative() {
		web.RespondError(w, http.StatusBadRequest, "transfer amount can't be negative")
		return
	}
	if !payload.Currency.Supported() {
		web.RespondError(w, http.StatusBadRequest, fmt.Sprintf("currency %s is not supported", payload.Currency))
		return
	}

	txs, err := a.Tm.Transfer(payload.FromID, payload.ToID,
		money.New(payload.Amount, payload.Currency), payload.AuthCode)
	if err != nil {
		respondTransactionError(w, err)
		return
	}

	a.Cache.Invalidate(r.Context(), payload.FromID, payload.ToID)
	a.Notifier.PublishCommitted(transaction.Transfer, txs...)

	web.Respond(w, http.StatusCreated, txs)
}

func (a *Application) WithdrawFunds(w http.ResponseWriter, r *http.Request) {
	// request validation
	var payload transaction.WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		web.RespondError(w, http.StatusBadRequest, "invalid request payload, unable to parse")
		return
	}
	defer r.Body.Close()

	if payload.AccountID == "" {
		web.RespondError(w, http.StatusBadRequest, "accountId is a required field")
		return
	}
	if payload.Amount.IsNegative() {
		web.RespondError(w, http.StatusBadRequest, "withdrawal amount can't be negative")
		return
	}
	if !payload.Currency.Supported() {
		web.RespondError(w, http.StatusBadRequest, fmt.Sprintf("currency %s is not supported", payload.Currency))
		return
	}

	tx, err := a.Tm.Withdraw(payload.AccountID, money.New(payload.Amount, payload.Currency), payload.AuthCode)
	if err != nil {
		respondTransactionError(w, err)
		return
	}

	a.Cache.Invalidate(r.Context(), payload.AccountID)
	a.Notifier.PublishCommitted(transaction.Withdraw, tx)

	web.Respond(w, http.StatusCreated, tx)
}

func respondTransactionError(w http.ResponseWriter, err error) {
	var fundsErr *account.FundsError
	var pairErr *money.PairError

	switch cause := errors.Cause(err); {
	case cause == account.ErrNotFound:
		web.RespondError(w, http.StatusNotFound, err.Error())
	case cause == transaction.ErrForbiddenTransaction:
		web.RespondError(w, http.StatusForbidden, err.Error())
	case cause == transaction.ErrIncorrectCVV, cause == transaction.ErrIncorrectPIN:
		web.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &fundsErr), errors.As(err, &pairErr),
		cause == transaction.ErrCurrencyMismatch,
		cause == transaction.ErrCardInactiveOrExpired,
		cause == transaction.ErrDailyTransactionLimitExceeded,
		cause == transaction.ErrDailyWithdrawalLimitExceeded:
		web.RespondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		web.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}
