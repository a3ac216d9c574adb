package token_test

import (
	"testing"
	"time"

	"github.com/alexfurtado22/djangobnb/infras/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	return signed
}

func TestInspector_IsExpired(t *testing.T) {
	inspector := token.New()

	tests := []struct {
		name        string
		token       string
		wantExpired bool
		wantErr     bool
	}{
		{
			name:        "live token",
			token:       signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}),
			wantExpired: false,
		},
		{
			name:        "expired token",
			token:       signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()}),
			wantExpired: true,
		},
		{
			name:        "token without expiry",
			token:       signedToken(t, jwt.MapClaims{"sub": "17"}),
			wantExpired: true,
			wantErr:     true,
		},
		{
			name:        "malformed token",
			token:       "not-a-jwt",
			wantExpired: true,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expired, err := inspector.IsExpired(tt.token)

			assert.Equal(t, tt.wantExpired, expired)

			if tt.wantErr {
				assert.ErrorIs(t, err, token.ErrMalformedToken)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInspector_Subject(t *testing.T) {
	inspector := token.New()

	subject, err := inspector.Subject(signedToken(t, jwt.MapClaims{"sub": "17"}))
	assert.NoError(t, err)
	assert.Equal(t, "17", subject)

	_, err = inspector.Subject("not-a-jwt")
	assert.ErrorIs(t, err, token.ErrMalformedToken)
}
