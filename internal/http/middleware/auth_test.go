// README: Auth middleware tests with a stub verifier.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tabi/internal/infra"
)

type stubVerifier struct {
	uid string
	err error
}

func (s *stubVerifier) VerifyIDToken(_ context.Context, _ string) (*infra.AuthToken, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &infra.AuthToken{UID: s.uid}, nil
}

func authTestRouter(verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Auth(verifier), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UIDKey))
	})
	return r
}

func TestAuthMissingHeader(t *testing.T) {
	r := authTestRouter(&stubVerifier{uid: "user-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthNonBearerScheme(t *testing.T) {
	r := authTestRouter(&stubVerifier{uid: "user-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectedToken(t *testing.T) {
	r := authTestRouter(&stubVerifier{err: errors.New("token expired")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthValidToken(t *testing.T) {
	r := authTestRouter(&stubVerifier{uid: "user-42"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "user-42" {
		t.Errorf("uid = %q, want %q", w.Body.String(), "user-42")
	}
}
