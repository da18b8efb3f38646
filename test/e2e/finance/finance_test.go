package finance_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignupAndLoginFlow(t *testing.T) {
	srv := setupServer(t)

	signup(t, srv.URL, "alice", "correct-horse")

	t.Run("duplicate signup conflicts", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/signup", "", map[string]any{
			"full_name":    "alice",
			"birth_date":   "1985-01-01",
			"location":     "Lisbon",
			"savings_goal": "0.00",
			"password":     "other-password",
		})
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		require.Equal(t, "conflict", body["error"])
	})

	t.Run("login issues a usable token", func(t *testing.T) {
		token := login(t, srv.URL, "alice", "correct-horse")

		resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/users/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "alice", body["full_name"])
		require.Equal(t, "1000.00", body["savings_goal"])
	})

	t.Run("bad credentials are indistinguishable", func(t *testing.T) {
		readBody := func(handle, password string) (int, string) {
			form := url.Values{"username": {handle}, "password": {password}}
			resp, err := http.Post(srv.URL+"/v1/login", "application/x-www-form-urlencoded",
				strings.NewReader(form.Encode()))
			require.NoError(t, err)
			defer resp.Body.Close()
			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			return resp.StatusCode, string(raw)
		}

		wrongPassStatus, wrongPassBody := readBody("alice", "wrong-password")
		unknownStatus, unknownBody := readBody("nobody", "correct-horse")

		require.Equal(t, http.StatusUnauthorized, wrongPassStatus)
		require.Equal(t, http.StatusUnauthorized, unknownStatus)
		require.Equal(t, wrongPassBody, unknownBody, "401 bodies must be byte-identical")
	})

	t.Run("protected routes without a token", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/users/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "unauthenticated", body["error"])
	})
}

func TestCategoryScoping(t *testing.T) {
	srv := setupServer(t)

	signup(t, srv.URL, "alice", "alice-password")
	signup(t, srv.URL, "bob", "bob-password")
	aliceToken := login(t, srv.URL, "alice", "alice-password")
	bobToken := login(t, srv.URL, "bob", "bob-password")

	// Both start with the seven seeded globals.
	resp, cats := doJSONList(t, srv.URL+"/v1/categories", aliceToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cats, 7)

	var globalID string
	for _, c := range cats {
		require.Equal(t, true, c["is_global"])
		if c["name"] == "Food" {
			globalID = c["id"].(string)
		}
	}
	require.NotEmpty(t, globalID)

	resp, created := doJSON(t, http.MethodPost, srv.URL+"/v1/categories", aliceToken, map[string]any{
		"name":        "Travel",
		"description": "trips",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, false, created["is_global"])
	personalID := created["id"].(string)

	t.Run("personal category invisible to others", func(t *testing.T) {
		_, bobCats := doJSONList(t, srv.URL+"/v1/categories", bobToken)
		require.Len(t, bobCats, 7)
	})

	t.Run("globals immutable", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPut, srv.URL+"/v1/categories/"+globalID, aliceToken, map[string]any{
			"name": "Meals",
		})
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, "scope_violation", body["error"])
	})

	t.Run("foreign personal category looks missing", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPut, srv.URL+"/v1/categories/"+personalID, bobToken, map[string]any{
			"name": "Stolen",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("expense on foreign personal category forbidden", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/expenses", bobToken, map[string]any{
			"description": "sneaky",
			"amount":      "10.00",
			"date":        "2026-02-10",
			"category_id": personalID,
		})
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, "scope_violation", body["error"])
	})

	t.Run("category with expenses cannot be deleted", func(t *testing.T) {
		resp, expense := doJSON(t, http.MethodPost, srv.URL+"/v1/expenses", aliceToken, map[string]any{
			"description": "hotel",
			"amount":      "120.00",
			"date":        "2026-02-10",
			"category_id": personalID,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, body := doJSON(t, http.MethodDelete, srv.URL+"/v1/categories/"+personalID, aliceToken, nil)
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		require.Equal(t, "conflict", body["error"])

		resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/expenses/"+expense["id"].(string), aliceToken, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/categories/"+personalID, aliceToken, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestLedgerFlow(t *testing.T) {
	srv := setupServer(t)

	signup(t, srv.URL, "alice", "alice-password")
	token := login(t, srv.URL, "alice", "alice-password")

	_, cats := doJSONList(t, srv.URL+"/v1/categories", token)
	foodID := ""
	for _, c := range cats {
		if c["name"] == "Food" {
			foodID = c["id"].(string)
		}
	}
	require.NotEmpty(t, foodID)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/incomes", token, map[string]any{
		"description": "salary",
		"amount":      "500.00",
		"date":        "2026-02-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, expense := doJSON(t, http.MethodPost, srv.URL+"/v1/expenses", token, map[string]any{
		"description": "groceries",
		"amount":      "200.00",
		"date":        "2026-02-10",
		"category_id": foodID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("balance is income minus expense", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/balance", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "500.00", body["total_income"])
		require.Equal(t, "200.00", body["total_expense"])
		require.Equal(t, "300.00", body["balance"])
	})

	t.Run("savings progress against the goal", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/savings", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "1000.00", body["savings_goal"])
		require.Equal(t, "300.00", body["balance"])
		require.InDelta(t, 30.0, body["progress"].(float64), 1e-9)
	})

	t.Run("invalid amount rejected", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/expenses", token, map[string]any{
			"description": "bad",
			"amount":      "-5.00",
			"date":        "2026-02-10",
			"category_id": foodID,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("update and delete an expense", func(t *testing.T) {
		id := expense["id"].(string)

		resp, updated := doJSON(t, http.MethodPut, srv.URL+"/v1/expenses/"+id, token, map[string]any{
			"description": "groceries and wine",
			"amount":      "250.00",
			"date":        "2026-02-11",
			"category_id": foodID,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "250.00", updated["amount"])

		resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/expenses/"+id, token, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/balance", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "0.00", body["total_expense"])
	})
}

func TestSavingsGoalUpdate(t *testing.T) {
	srv := setupServer(t)

	signup(t, srv.URL, "alice", "alice-password")
	token := login(t, srv.URL, "alice", "alice-password")

	resp, body := doJSON(t, http.MethodPut, srv.URL+"/v1/users/me", token, map[string]any{
		"savings_goal": "2500.00",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "2500.00", body["savings_goal"])

	t.Run("new goal drives savings progress", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/savings", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "2500.00", body["savings_goal"])
	})

	t.Run("malformed goal rejected", func(t *testing.T) {
		for _, goal := range []string{"-1.00", "abc", "."} {
			resp, _ := doJSON(t, http.MethodPut, srv.URL+"/v1/users/me", token, map[string]any{
				"savings_goal": goal,
			})
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		}
	})
}

func TestAccountDeletion(t *testing.T) {
	srv := setupServer(t)

	signup(t, srv.URL, "alice", "alice-password")
	token := login(t, srv.URL, "alice", "alice-password")

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/v1/users/me", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	t.Run("outstanding token stops working", func(t *testing.T) {
		resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/users/me", token, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "unauthenticated", body["error"])
	})

	t.Run("handle becomes available again", func(t *testing.T) {
		signup(t, srv.URL, "alice", "brand-new-password")
	})
}

func TestHealthEndpoints(t *testing.T) {
	srv := setupServer(t)

	for _, path := range []string{"/livez", "/readyz"} {
		resp, body := doJSON(t, http.MethodGet, srv.URL+path, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "ok", body["status"])
	}
}
