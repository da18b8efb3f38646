package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Leonelvm1/FinanceApp/internal/finance/service"
	"github.com/Leonelvm1/FinanceApp/pkg/httpx"
)

// SignupHandler serves POST /v1/signup.
type SignupHandler struct {
	AuthService *service.AuthService
}

type signupRequest struct {
	FullName    string `json:"full_name"`
	BirthDate   string `json:"birth_date"`
	Location    string `json:"location"`
	SavingsGoal string `json:"savings_goal"`
	Password    string `json:"password"`
}

func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	birthDate, err := parseWireDate(req.BirthDate)
	if err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	goal := int64(0)
	if strings.TrimSpace(req.SavingsGoal) != "" {
		goal, err = parseWireAmount(req.SavingsGoal)
		if err != nil {
			httpx.ErrInvalidRequest.WriteError(w)
			return
		}
	}

	u, err := h.AuthService.Register(r.Context(), service.Signup{
		FullName:    req.FullName,
		BirthDate:   birthDate,
		Location:    req.Location,
		SavingsGoal: goal,
		Password:    req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}

// LoginHandler serves POST /v1/login. It accepts
// application/x-www-form-urlencoded with username and password fields.
type LoginHandler struct {
	AuthService *service.AuthService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := r.ParseForm(); err != nil {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	username := strings.TrimSpace(r.Form.Get("username"))
	password := r.Form.Get("password")
	if username == "" || password == "" {
		httpx.ErrInvalidRequest.WriteError(w)
		return
	}

	tok, err := h.AuthService.Login(r.Context(), username, password, time.Now())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: tok.Token,
		TokenType:   tok.TokenType,
		ExpiresIn:   int64(tok.ExpiresIn.Seconds()),
	})
}
