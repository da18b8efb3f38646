package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Leonelvm1/FinanceApp/internal/finance/domain"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store"
	"github.com/Leonelvm1/FinanceApp/internal/finance/store/drivers/sqlite"
	"github.com/Leonelvm1/FinanceApp/pkg/cryptox"
	"github.com/Leonelvm1/FinanceApp/pkg/jwtx"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "finance-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// newTestStore opens a fresh migrated sqlite database under t.TempDir.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "finance-test.db")
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestTokens(t *testing.T) *TokenService {
	t.Helper()

	hs, err := jwtx.NewHS256([]byte("test-signing-secret"))
	require.NoError(t, err)

	return &TokenService{
		Signer:   hs,
		Verifier: hs,
		Issuer:   "finance-test",
		TTL:      30 * time.Minute,
	}
}

func newTestAuth(t *testing.T, st store.Store) *AuthService {
	t.Helper()
	return &AuthService{Store: st, Tokens: newTestTokens(t)}
}

// registerUser creates an account with sensible defaults and returns it.
func registerUser(t *testing.T, auth *AuthService, handle string) domain.User {
	t.Helper()

	u, err := auth.Register(context.Background(), Signup{
		FullName:    handle,
		BirthDate:   time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Location:    "Madrid",
		SavingsGoal: 100000,
		Password:    "correct-horse",
	})
	require.NoError(t, err)
	return u
}
