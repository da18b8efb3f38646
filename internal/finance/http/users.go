package http

import (
	"encoding/json"
	"net/http"

	"github.com/Leonelvm1/FinanceApp/internal/finance/service"
	"github.com/Leonelvm1/FinanceApp/pkg/httpx"
)

// MeHandler serves the authenticated account's own profile.
type MeHandler struct {
	UserService *service.UserService
}

func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	u, err := h.UserService.Get(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

type meUpdateRequest struct {
	SavingsGoal string `json:"savings_goal"`
}

// HandleUpdate changes the account's savings goal. The handle, birth date
// and password have no update path through this surface.
func (h *MeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req meUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	goal, err := parseWireAmount(req.SavingsGoal)
	if err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	userID := httpx.UserIDFromCtx(ctx)
	if err := h.UserService.UpdateSavingsGoal(ctx, userID, goal); err != nil {
		writeServiceError(w, r, err)
		return
	}

	u, err := h.UserService.Get(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}

func (h *MeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.UserService.Delete(ctx, httpx.UserIDFromCtx(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
