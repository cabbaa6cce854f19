// Package authgw forwards credentials to the hosted auth provider. No
// passwords are stored or verified locally; the provider owns the identity.
package authgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	thinklie_errors "thinklie-backend/pkg/errors"
)

const clientTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Session is the provider-issued credential bundle returned on signup/login.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"-"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID string `json:"id"`
	} `json:"user"`
}

type errorResponse struct {
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: clientTimeout},
	}
}

// SignUp registers the credentials with the provider and returns the session
// it issues. Providers configured with email confirmation return no session;
// that surfaces as an upstream error here since the chat UI expects a token.
func (c *Client) SignUp(ctx context.Context, email, password string) (Session, error) {
	return c.exchange(ctx, "/auth/v1/signup", email, password)
}

// SignIn performs the password grant against the provider token endpoint.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	return c.exchange(ctx, "/auth/v1/token?grant_type=password", email, password)
}

func (c *Client) exchange(ctx context.Context, path, email, password string) (Session, error) {
	if c.baseURL == "" {
		return Session{}, thinklie_errors.ErrUpstream
	}

	body, err := json.Marshal(credentialsRequest{Email: email, Password: password})
	if err != nil {
		return Session{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", thinklie_errors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", thinklie_errors.ErrUpstream, err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return Session{}, thinklie_errors.ErrUpstream
	case resp.StatusCode >= http.StatusBadRequest:
		var er errorResponse
		_ = json.Unmarshal(raw, &er)
		msg := er.ErrorDescription
		if msg == "" {
			msg = er.Msg
		}
		if msg == "" {
			msg = "invalid credentials"
		}
		return Session{}, fmt.Errorf("%w: %s", thinklie_errors.ErrUnauthorized, msg)
	}

	var sr sessionResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return Session{}, fmt.Errorf("%w: malformed provider response", thinklie_errors.ErrUpstream)
	}
	if sr.AccessToken == "" {
		return Session{}, fmt.Errorf("%w: provider returned no session", thinklie_errors.ErrUpstream)
	}

	return Session{
		AccessToken:  sr.AccessToken,
		TokenType:    sr.TokenType,
		ExpiresIn:    sr.ExpiresIn,
		RefreshToken: sr.RefreshToken,
		UserID:       sr.User.ID,
	}, nil
}
