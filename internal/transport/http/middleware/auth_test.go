package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plateful/backend/internal/auth/dto"
	authErrors "github.com/plateful/backend/internal/auth/errors"
	"github.com/plateful/backend/internal/auth/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	principal uuid.UUID
	token     string
}

func (f *fakeAuth) Signup(context.Context, dto.SignupDTO) (model.Account, error) {
	return model.Account{}, nil
}
func (f *fakeAuth) VerifyEmail(context.Context, string) error { return nil }
func (f *fakeAuth) Login(context.Context, dto.LoginDTO) (model.Session, error) {
	return model.Session{}, nil
}

func (f *fakeAuth) Authenticate(_ context.Context, header string, preflight bool) (uuid.UUID, error) {
	if preflight {
		return uuid.Nil, nil
	}
	switch header {
	case "":
		return uuid.Nil, authErrors.ErrMissingToken
	case "Bearer " + f.token:
		return f.principal, nil
	default:
		return uuid.Nil, authErrors.ErrInvalidToken
	}
}

func setupRouter(f *fakeAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(f))
	handle := func(c *gin.Context) {
		id, ok := Principal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no principal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"principal": id.String()})
	}
	router.GET("/protected", handle)
	router.OPTIONS("/protected", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return router
}

func TestAuth_ValidToken(t *testing.T) {
	f := &fakeAuth{principal: uuid.New(), token: "good"}
	router := setupRouter(f)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), f.principal.String())
}

func TestAuth_MissingToken(t *testing.T) {
	router := setupRouter(&fakeAuth{token: "good"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Missing or invalid token")
}

func TestAuth_InvalidToken(t *testing.T) {
	router := setupRouter(&fakeAuth{token: "good"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer forged")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuth_PreflightBypassesCheck(t *testing.T) {
	router := setupRouter(&fakeAuth{token: "good"})

	req := httptest.NewRequest(http.MethodOptions, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
}
