package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"homenest-backend/internal/auth"
	"homenest-backend/internal/middleware"
)

type stubVerifier map[string]string

func (s stubVerifier) Verify(_ context.Context, token string) (string, error) {
	if email, ok := s[token]; ok {
		return email, nil
	}
	return "", auth.ErrInvalidToken
}

func TestVerifyToken(t *testing.T) {
	v := stubVerifier{"good": "a@x.com"}

	var seen string
	var called bool
	h := middleware.VerifyToken(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen = middleware.GetEmail(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
		wantCalled bool
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized, wantBody: "un-authorize access!\n"},
		{name: "scheme only", header: "Bearer", wantStatus: http.StatusUnauthorized, wantBody: "un-authorize access!\n"},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantBody: "un-authorize access!\n"},
		{name: "rejected", header: "Bearer bad", wantStatus: http.StatusNotFound, wantBody: `{"message":"forbidden access!"}` + "\n"},
		{name: "accepted", header: "Bearer good", wantStatus: http.StatusTeapot, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called, seen = false, ""
			req := httptest.NewRequest(http.MethodGet, "/property", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
			if tt.wantCalled {
				assert.Equal(t, "a@x.com", seen)
			}
		})
	}
}

func TestGetEmail_Absent(t *testing.T) {
	assert.Equal(t, "", middleware.GetEmail(context.Background()))
	assert.Equal(t, "b@x.com", middleware.GetEmail(middleware.WithEmail(context.Background(), "b@x.com")))
}

func TestVerifyToken_ProviderError(t *testing.T) {
	failing := verifierFunc(func(context.Context, string) (string, error) {
		return "", errors.New("provider unavailable")
	})
	h := middleware.VerifyToken(failing)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodPost, "/ratings", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

type verifierFunc func(context.Context, string) (string, error)

func (f verifierFunc) Verify(ctx context.Context, token string) (string, error) { return f(ctx, token) }
