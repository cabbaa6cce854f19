package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"thinklie-backend/config"
	"thinklie-backend/internal/authgw"
	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "unit-test-secret"

func newAuthService() *AuthService {
	cfg := &config.Config{
		JWTSecret:   testJWTSecret,
		JWTAudience: "authenticated",
	}
	return NewAuthService(authgw.NewClient("", ""), cfg)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParseAccessToken(t *testing.T) {
	svc := newAuthService()
	userID := uuid.New()

	token := signToken(t, testJWTSecret, jwt.MapClaims{
		"sub": userID.String(),
		"aud": "authenticated",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestParseAccessTokenRejections(t *testing.T) {
	svc := newAuthService()
	future := time.Now().Add(time.Hour).Unix()

	cases := map[string]string{
		"empty": "",
		"wrong secret": signToken(t, "someone-else", jwt.MapClaims{
			"sub": uuid.NewString(), "aud": "authenticated", "exp": future,
		}),
		"expired": signToken(t, testJWTSecret, jwt.MapClaims{
			"sub": uuid.NewString(), "aud": "authenticated",
			"exp": time.Now().Add(-time.Minute).Unix(),
		}),
		"wrong audience": signToken(t, testJWTSecret, jwt.MapClaims{
			"sub": uuid.NewString(), "aud": "anon", "exp": future,
		}),
		"missing subject": signToken(t, testJWTSecret, jwt.MapClaims{
			"aud": "authenticated", "exp": future,
		}),
		"garbage": "not.a.token",
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseAccessToken(token)
			assert.ErrorIs(t, err, thinklie_errors.ErrUnauthorized)
		})
	}
}

func TestCredentialValidation(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, CredentialsInput{Email: "", Password: "pw"})
	assert.ErrorIs(t, err, thinklie_errors.ErrInvalidInput)

	_, err = svc.Signup(ctx, CredentialsInput{Email: "not-an-email", Password: "pw"})
	assert.ErrorIs(t, err, thinklie_errors.ErrInvalidInput)

	_, err = svc.Login(ctx, CredentialsInput{Email: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, thinklie_errors.ErrInvalidInput)
}

func TestUserContextRoundTrip(t *testing.T) {
	userID := uuid.New()
	ctx := WithUserContext(context.Background(), userID)

	got, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	_, ok = UserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(thinklie_errors.ErrInvalidInput))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(thinklie_errors.ErrUnauthorized))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(thinklie_errors.ErrNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(thinklie_errors.ErrAlreadyExists))
	assert.Equal(t, http.StatusTooManyRequests, HTTPStatus(thinklie_errors.ErrRateLimited))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(thinklie_errors.ErrUpstream))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
