package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
	"github.com/Leonelvm1/FinanceApp/internal/finance/service"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store"
	"github.com/Leonelvm1/FinanceApp/pkg/httpx"
	"github.com/Leonelvm1/FinanceApp/pkg/moneyx"
	"github.com/Leonelvm1/FinanceApp/pkg/slogx"
)

// Wire formats: dates are "2006-01-02" strings, monetary amounts are
// decimal strings ("120.50"); cents never leak onto the wire directly.
const dateLayout = "2006-01-02"

type userResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	BirthDate   string `json:"birth_date"`
	Location    string `json:"location"`
	SavingsGoal string `json:"savings_goal"`
	CreatedAt   string `json:"created_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		BirthDate:   u.BirthDate.Format(dateLayout),
		Location:    u.Location,
		SavingsGoal: moneyx.FormatCents(u.SavingsGoal),
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsGlobal    bool   `json:"is_global"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsGlobal:    c.IsGlobal,
	}
}

type expenseResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	CategoryID  string `json:"category_id"`
}

func toExpenseResponse(e domain.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      moneyx.FormatCents(e.Amount),
		Date:        e.Date.Format(dateLayout),
		CategoryID:  e.CategoryID,
	}
}

type incomeResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

func toIncomeResponse(i domain.Income) incomeResponse {
	return incomeResponse{
		ID:          i.ID,
		Description: i.Description,
		Amount:      moneyx.FormatCents(i.Amount),
		Date:        i.Date.Format(dateLayout),
	}
}

type balanceResponse struct {
	UserID       string `json:"user_id"`
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
}

type savingsResponse struct {
	UserID      string  `json:"user_id"`
	SavingsGoal string  `json:"savings_goal"`
	Balance     string  `json:"balance"`
	Progress    float64 `json:"progress"`
}

// parseWireDate parses the canonical "2006-01-02" form.
func parseWireDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// parseWireAmount turns a decimal string into cents.
func parseWireAmount(s string) (int64, error) {
	return moneyx.ParseCents(s)
}

// writeServiceError maps service sentinels onto the uniform error bodies.
// Anything unmapped is a persistence or internal failure: it gets logged
// with detail and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		httpx.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrUnknownSubject):
		httpx.ErrUnauthenticated.WriteError(w)
	case errors.Is(err, service.ErrScopeViolation):
		httpx.ErrScopeViolation.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		httpx.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrInUse):
		httpx.ErrResourceInUse.WriteError(w)
	case errors.Is(err, store.ErrAlreadyExists):
		httpx.ErrConflict.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		httpx.ErrServerError.WriteError(w)
	}
}
