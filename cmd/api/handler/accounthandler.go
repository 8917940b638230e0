package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/DavidArdelean7/ledger-api/cmd/api/account"
	"github.com/DavidArdelean7/ledger-api/cmd/api/money"
	"github.com/DavidArdelean7/ledger-api/internal/web"
)

type accountSummary struct {
	ID           string       `json:"id"`
	Kind         account.Kind `json:"kind"`
	Balance      string       `json:"balance"`
	Transactions int          `json:"transactions"`
}

func (a *Application) FindAllAccounts(w http.ResponseWriter, _ *http.Request) {
	a.Store.Lock()
	all := a.Store.GetAll()

	summaries := make([]accountSummary, 0, len(all))
	for _, acc := range all {
		summaries = append(summaries, accountSummary{
			ID:           acc.ID,
			Kind:         acc.Kind,
			Balance:      acc.Balance.Display(),
			Transactions: len(acc.Transactions),
		})
	}
	a.Store.Unlock()

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })

	web.Respond(w, http.StatusOK, summaries)
}

func (a *Application) GetBalance(w http.ResponseWriter, r *http.Request) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if len(id) == 0 {
		web.RespondError(w, http.StatusBadRequest, "account id is missing")
		return
	}

	// serve from cache when possible
	if b, ok := a.Cache.Get(r.Context(), id); ok {
		var m money.Money
		if err := json.Unmarshal(b, &m); err == nil {
			web.Respond(w, http.StatusOK, map[string]string{"balance": m.Display()})
			return
		}
	}

	m, err := a.Tm.CheckFunds(id)
	if err != nil {
		if errors.Cause(err) == account.ErrNotFound {
			web.RespondError(w, http.StatusNotFound, fmt.Sprintf("account id %s is not found", id))
			return
		}

		web.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("unable to find account: %s", err.Error()))
		return
	}

	if b, err := json.Marshal(m); err == nil {
		a.Cache.Set(r.Context(), id, b)
	}

	web.Respond(w, http.StatusOK, map[string]string{"balance": m.Display()})
}

func (a *Application) GetTransactions(w http.ResponseWriter, r *http.Request) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if len(id) == 0 {
		web.RespondError(w, http.StatusBadRequest, "account id is missing")
		return
	}

	txs, err := a.Tm.RetrieveTransactions(id)
	if err != nil {
		if errors.Cause(err) == account.ErrNotFound {
			web.RespondError(w, http.StatusNotFound, fmt.Sprintf("account id %s is not found", id))
			return
		}

		web.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("unable to retrieve transactions: %s", err.Error()))
		return
	}

	web.Respond(w, http.StatusOK, txs)
}
