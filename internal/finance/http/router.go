package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Leonelvm1/FinanceApp/internal/finance/service"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store"
	"github.com/Leonelvm1/FinanceApp/pkg/httpx"
	"github.com/Leonelvm1/FinanceApp/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	UserService     *service.UserService
	CategoryService *service.CategoryService
	ExpenseService  *service.ExpenseService
	IncomeService   *service.IncomeService
	LedgerService   *service.LedgerService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerCategories()
	r.registerExpenses()
	r.registerIncomes()
	r.registerLedger()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps a handler with bearer token resolution.
func (r *Router) secured(h http.Handler) http.Handler {
	return httpx.Chain(h, AuthnMiddleware(r.AuthService))
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /v1/signup", &SignupHandler{AuthService: r.AuthService})
	r.Mux.Handle("POST /v1/login", &LoginHandler{AuthService: r.AuthService})
}

func (r *Router) registerUsers() {
	h := &MeHandler{UserService: r.UserService}

	r.Mux.Handle("GET /v1/users/me", r.secured(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PUT /v1/users/me", r.secured(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/users/me", r.secured(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerCategories() {
	h := &CategoriesHandler{CategoryService: r.CategoryService}

	r.Mux.Handle("GET /v1/categories", r.secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /v1/categories", r.secured(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /v1/categories/{id}", r.secured(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/categories/{id}", r.secured(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerExpenses() {
	h := &ExpensesHandler{ExpenseService: r.ExpenseService}

	r.Mux.Handle("GET /v1/expenses", r.secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /v1/expenses", r.secured(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /v1/expenses/{id}", r.secured(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/expenses/{id}", r.secured(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerIncomes() {
	h := &IncomesHandler{IncomeService: r.IncomeService}

	r.Mux.Handle("GET /v1/incomes", r.secured(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("POST /v1/incomes", r.secured(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /v1/incomes/{id}", r.secured(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/incomes/{id}", r.secured(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerLedger() {
	h := &LedgerHandler{LedgerService: r.LedgerService}

	r.Mux.Handle("GET /v1/balance", r.secured(http.HandlerFunc(h.HandleBalance)))
	r.Mux.Handle("GET /v1/savings", r.secured(http.HandlerFunc(h.HandleSavings)))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
