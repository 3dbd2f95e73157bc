// Package api is a thin HTTP client for the Gatekeeper API, used by the
// terminal client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// AuthResult mirrors the register/login response body.
type AuthResult struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type apiError struct {
	Error string `json:"error"`
}

// Register creates a new account and returns the issued token.
// A 409 maps to common.ErrorAlreadyExists.
func (c *Client) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	return c.postCredentials(ctx, "/api/register", email, password)
}

// Login authenticates and returns the issued token.
// A 401 maps to common.ErrorInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	return c.postCredentials(ctx, "/api/login", email, password)
}

// Me calls the guarded identity route with the given token and returns the
// server-derived user id.
func (c *Client) Me(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/me", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.asError(resp)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return body["id"], nil
}

func (c *Client) postCredentials(ctx context.Context, path, email, password string) (*AuthResult, error) {
	payload, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.asError(resp)
	}

	result := &AuthResult{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}

// asError maps well-known statuses to the shared sentinel errors so callers
// can branch with errors.Is instead of matching messages.
func (c *Client) asError(resp *http.Response) error {
	e := apiError{}
	_ = json.NewDecoder(resp.Body).Decode(&e)

	switch resp.StatusCode {
	case http.StatusConflict:
		return common.ErrorAlreadyExists
	case http.StatusUnauthorized:
		return common.ErrorInvalidCredentials
	case http.StatusBadRequest:
		if e.Error != "" {
			return fmt.Errorf("%w: %s", common.ErrorValidation, e.Error)
		}
		return common.ErrorValidation
	default:
		if e.Error != "" {
			return fmt.Errorf("server error: %s", e.Error)
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}
}
