package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoSession = errors.New("session not found")

type fakeResolver struct {
	sessions map[string]uuid.UUID
}

func (f *fakeResolver) Resolve(_ context.Context, token string) (uuid.UUID, error) {
	id, ok := f.sessions[token]
	if !ok {
		return uuid.Nil, errNoSession
	}
	return id, nil
}

func setupAuthTest(t *testing.T) (*gin.Engine, uuid.UUID, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accountID := uuid.New()
	resolver := &fakeResolver{sessions: map[string]uuid.UUID{"goodtoken": accountID}}

	mutations := 0
	router := gin.New()
	router.POST("/mutate", RequireAuth("portfolio_session", resolver), func(c *gin.Context) {
		mutations++
		id, err := GetAccountID(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{"account_id": id.String()})
	})

	return router, accountID, &mutations
}

func TestRequireAuthMissingCookie(t *testing.T) {
	router, _, mutations := setupAuthTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "Unauthorized"}`, w.Body.String())
	assert.Zero(t, *mutations, "handler must not run without a session")
}

func TestRequireAuthInvalidToken(t *testing.T) {
	router, _, mutations := setupAuthTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req.AddCookie(&http.Cookie{Name: "portfolio_session", Value: "expiredtoken"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, *mutations)
}

func TestRequireAuthValidToken(t *testing.T) {
	router, accountID, mutations := setupAuthTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
	req.AddCookie(&http.Cookie{Name: "portfolio_session", Value: "goodtoken"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), accountID.String())
	assert.Equal(t, 1, *mutations)
}
