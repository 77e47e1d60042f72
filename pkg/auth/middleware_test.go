package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeDenylist struct {
	revoked map[string]bool
	err     error
}

func (f *fakeDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if f.revoked == nil {
		f.revoked = map[string]bool{}
	}
	f.revoked[token] = true
	return f.err
}

func (f *fakeDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	return f.revoked[token], f.err
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	validToken, err := jwtService.GenerateJWT("3f8e8a3e-7c35-4a31-b7b2-8a2f9b13f001", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		name         string
		authHeader   string
		denylist     DenylistInterface
		expectedCode int
		expectNext   bool
	}{
		{
			name:         "Valid token",
			authHeader:   "Bearer " + validToken,
			denylist:     &fakeDenylist{},
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
		{
			name:         "Missing header",
			authHeader:   "",
			denylist:     &fakeDenylist{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Malformed header",
			authHeader:   "Token abc",
			denylist:     &fakeDenylist{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid token",
			authHeader:   "Bearer not.a.token",
			denylist:     &fakeDenylist{},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Revoked token",
			authHeader:   "Bearer " + validToken,
			denylist:     &fakeDenylist{revoked: map[string]bool{validToken: true}},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Denylist lookup error",
			authHeader:   "Bearer " + validToken,
			denylist:     &fakeDenylist{err: errors.New("redis down")},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Nil denylist skips revocation check",
			authHeader:   "Bearer " + validToken,
			denylist:     nil,
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, "3f8e8a3e-7c35-4a31-b7b2-8a2f9b13f001", r.Context().Value(ProfessionalIDKey))
				assert.Equal(t, validToken, r.Context().Value(TokenKey))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/professional/appointments", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(tt.denylist)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
