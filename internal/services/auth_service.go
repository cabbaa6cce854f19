package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"thinklie-backend/config"
	"thinklie-backend/internal/authgw"
	thinklie_errors "thinklie-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService fronts the hosted auth provider. Credentials pass through to
// the provider untouched; the only local work is verifying the tokens the
// provider signed.
type AuthService struct {
	gateway   *authgw.Client
	jwtSecret []byte
	audience  string
}

func NewAuthService(gateway *authgw.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		gateway:   gateway,
		jwtSecret: []byte(cfg.JWTSecret),
		audience:  cfg.JWTAudience,
	}
}

type CredentialsInput struct {
	Email    string
	Password string
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       string `json:"user_id,omitempty"`
}

type AccessClaims struct {
	UserID string `json:"sub"`
	jwt.RegisteredClaims
}

func (s *AuthService) Signup(ctx context.Context, in CredentialsInput) (AuthResponse, error) {
	if err := validateCredentials(in); err != nil {
		return AuthResponse{}, err
	}
	session, err := s.gateway.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return AuthResponse{}, err
	}
	return toAuthResponse(session), nil
}

func (s *AuthService) Login(ctx context.Context, in CredentialsInput) (AuthResponse, error) {
	if err := validateCredentials(in); err != nil {
		return AuthResponse{}, err
	}
	session, err := s.gateway.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return AuthResponse{}, err
	}
	return toAuthResponse(session), nil
}

// ParseAccessToken verifies a provider-issued HS256 token and returns its
// claims. Expiry and audience are enforced by the parser.
func (s *AuthService) ParseAccessToken(token string) (*AccessClaims, error) {
	if token == "" {
		return nil, thinklie_errors.ErrUnauthorized
	}

	claims := &AccessClaims{}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, thinklie_errors.ErrUnauthorized
	}
	if claims.UserID == "" {
		return nil, thinklie_errors.ErrUnauthorized
	}
	return claims, nil
}

func toAuthResponse(session authgw.Session) AuthResponse {
	return AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
		UserID:       session.UserID,
	}
}

func validateCredentials(in CredentialsInput) error {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return thinklie_errors.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return thinklie_errors.ErrInvalidInput
	}
	return nil
}

type contextKey string

const userIDKey contextKey = "auth.user_id"

func WithUserContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// HTTPStatus maps service errors onto response codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, thinklie_errors.ErrInvalidInput), errors.Is(err, thinklie_errors.ErrTooLarge):
		return 400
	case errors.Is(err, thinklie_errors.ErrUnauthorized):
		return 401
	case errors.Is(err, thinklie_errors.ErrForbidden):
		return 403
	case errors.Is(err, thinklie_errors.ErrNotFound):
		return 404
	case errors.Is(err, thinklie_errors.ErrAlreadyExists), errors.Is(err, thinklie_errors.ErrConflict):
		return 409
	case errors.Is(err, thinklie_errors.ErrRateLimited):
		return 429
	case errors.Is(err, thinklie_errors.ErrUpstream):
		return 502
	default:
		return 500
	}
}
