package http

import (
	"net/http"

	"github.com/Leonelvm1/FinanceApp/internal/finance/service"
	"github.com/Leonelvm1/FinanceApp/pkg/httpx"
	"github.com/Leonelvm1/FinanceApp/pkg/moneyx"
)

// LedgerHandler serves the read-side aggregates.
type LedgerHandler struct {
	LedgerService *service.LedgerService
}

func (h *LedgerHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sheet, err := h.LedgerService.Balance(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, balanceResponse{
		UserID:       sheet.UserID,
		TotalIncome:  moneyx.FormatCents(sheet.TotalIncome),
		TotalExpense: moneyx.FormatCents(sheet.TotalExpense),
		Balance:      moneyx.FormatCents(sheet.Balance),
	})
}

func (h *LedgerHandler) HandleSavings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.LedgerService.Savings(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, savingsResponse{
		UserID:      report.UserID,
		SavingsGoal: moneyx.FormatCents(report.SavingsGoal),
		Balance:     moneyx.FormatCents(report.Balance),
		Progress:    report.Progress,
	})
}
