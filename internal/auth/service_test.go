package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	svc := NewService("secret")

	token, err := svc.IssueToken("sess_123")
	require.NoError(t, err)

	sessionID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "sess_123", sessionID)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, err := NewService("one").IssueToken("sess_123")
	require.NoError(t, err)

	_, err = NewService("two").ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewService("secret")
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, err := svc.IssueToken("sess_123")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthMiddleware(t *testing.T) {
	svc := NewService("secret")
	token, err := svc.IssueToken("sess_abc")
	require.NoError(t, err)

	var seen string
	h := svc.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token "+token)
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "sess_abc", seen)
}
