package http

import (
	"encoding/json"
	"net/http"

	"github.com/Leonelvm1/FinanceApp/internal/finance/service"
	"github.com/Leonelvm1/FinanceApp/pkg/httpx"
)

// CategoriesHandler serves the /v1/categories surface. Ownership always
// comes from the resolved identity; the request body cannot set is_global
// or user_id.
type CategoriesHandler struct {
	CategoryService *service.CategoryService
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *CategoriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cats, err := h.CategoryService.VisibleTo(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *CategoriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	c, err := h.CategoryService.Create(ctx, httpx.UserIDFromCtx(ctx), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCategoryResponse(c))
}

func (h *CategoriesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	c, err := h.CategoryService.Update(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCategoryResponse(c))
}

func (h *CategoriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.CategoryService.Delete(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
