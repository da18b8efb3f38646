package http

import (
	"encoding/json"
	"net/http"

	"github.com/Leonelvm1/FinanceApp/internal/finance/service"
	"github.com/Leonelvm1/FinanceApp/pkg/httpx"
)

// IncomesHandler serves the /v1/incomes surface.
type IncomesHandler struct {
	IncomeService *service.IncomeService
}

type incomeRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

func (h *IncomesHandler) decodeInput(r *http.Request) (service.IncomeInput, bool) {
	var req incomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return service.IncomeInput{}, false
	}

	amount, err := parseWireAmount(req.Amount)
	if err != nil {
		return service.IncomeInput{}, false
	}
	date, err := parseWireDate(req.Date)
	if err != nil {
		return service.IncomeInput{}, false
	}

	return service.IncomeInput{
		Description: req.Description,
		Amount:      amount,
		Date:        date,
	}, true
}

func (h *IncomesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	incomes, err := h.IncomeService.List(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]incomeResponse, 0, len(incomes))
	for _, i := range incomes {
		out = append(out, toIncomeResponse(i))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *IncomesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, ok := h.decodeInput(r)
	if !ok {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	i, err := h.IncomeService.Create(ctx, httpx.UserIDFromCtx(ctx), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toIncomeResponse(i))
}

func (h *IncomesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, ok := h.decodeInput(r)
	if !ok {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	i, err := h.IncomeService.Update(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toIncomeResponse(i))
}

func (h *IncomesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.IncomeService.Delete(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
