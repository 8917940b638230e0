package handler

import (
	"net/http"
	"time"

	"github.com/DavidArdelean7/ledger-api/cmd/api/account"
	"github.com/DavidArdelean7/ledger-api/internal/web"
)

// PassTime advances the virtual calendar by one month and capitalizes
// due savings accounts.
func (a *Application) PassTime(w http.ResponseWriter, r *http.Request) {
	systemDate, err := a.Sm.PassTime()
	if err != nil {
		web.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// savings balances may have changed, drop their cached entries
	a.Store.Lock()
	var ids []string
	for _, acc := range a.Store.GetAll() {
		if acc.Kind == account.Savings {
			ids = append(ids, acc.ID)
		}
	}
	a.Store.Unlock()
	a.Cache.Invalidate(r.Context(), ids...)

	web.Respond(w, http.StatusOK, map[string]string{"systemDate": systemDate.Format(time.RFC3339)})
}
