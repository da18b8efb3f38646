package http

import (
	"encoding/json"
	"net/http"

	"github.com/Leonelvm1/FinanceApp/internal/finance/service"
	"github.com/Leonelvm1/FinanceApp/pkg/httpx"
)

// ExpensesHandler serves the /v1/expenses surface.
type ExpensesHandler struct {
	ExpenseService *service.ExpenseService
}

type expenseRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	CategoryID  string `json:"category_id"`
}

func (h *ExpensesHandler) decodeInput(r *http.Request) (service.ExpenseInput, bool) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return service.ExpenseInput{}, false
	}

	amount, err := parseWireAmount(req.Amount)
	if err != nil {
		return service.ExpenseInput{}, false
	}
	date, err := parseWireDate(req.Date)
	if err != nil {
		return service.ExpenseInput{}, false
	}

	return service.ExpenseInput{
		Description: req.Description,
		Amount:      amount,
		Date:        date,
		CategoryID:  req.CategoryID,
	}, true
}

func (h *ExpensesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	expenses, err := h.ExpenseService.List(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ExpensesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, ok := h.decodeInput(r)
	if !ok {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	e, err := h.ExpenseService.Create(ctx, httpx.UserIDFromCtx(ctx), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toExpenseResponse(e))
}

func (h *ExpensesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, ok := h.decodeInput(r)
	if !ok {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	e, err := h.ExpenseService.Update(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toExpenseResponse(e))
}

func (h *ExpensesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.ExpenseService.Delete(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
