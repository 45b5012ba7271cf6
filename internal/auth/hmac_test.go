package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homenest-backend/internal/auth"
)

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestHMACVerifier(t *testing.T) {
	v := auth.NewHMACVerifier("s3cret")
	ctx := context.Background()
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid",
			token: signHS256(t, "s3cret", jwt.MapClaims{"email": "a@x.com", "exp": exp}),
			want:  "a@x.com",
		},
		{
			name:    "wrong secret",
			token:   signHS256(t, "other", jwt.MapClaims{"email": "a@x.com", "exp": exp}),
			wantErr: true,
		},
		{
			name:    "expired",
			token:   signHS256(t, "s3cret", jwt.MapClaims{"email": "a@x.com", "exp": time.Now().Add(-time.Minute).Unix()}),
			wantErr: true,
		},
		{
			name:    "no exp",
			token:   signHS256(t, "s3cret", jwt.MapClaims{"email": "a@x.com"}),
			wantErr: true,
		},
		{
			name:    "no email",
			token:   signHS256(t, "s3cret", jwt.MapClaims{"exp": exp}),
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   "not.a.jwt",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Verify(ctx, tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, auth.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
