package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/expenses/internal/entity"
	"github.com/samandr77/microservices/expenses/pkg/transport"
)

const (
	timeout      = time.Second * 2
	retryWaitMin = time.Millisecond * 100
	retryWaitMax = time.Second
)

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient retries only transport failures. A definite answer from the auth
// service, including 401, is returned as is.
func NewClient(baseURL string, retryAttempts int) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryAttempts
	retryClient.RetryWaitMin = retryWaitMin
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.HTTPClient.Timeout = timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(http.DefaultTransport)
	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		baseURL: baseURL,
		http:    retryClient.StandardClient(),
	}
}

type ValidateRequest struct {
	Token string `json:"accessToken"`
}

type ValidateResponse struct {
	ID    uuid.UUID       `json:"id"`
	Email string          `json:"email"`
	Type  entity.UserType `json:"type"`
}

func (c *Client) User(ctx context.Context, token string) (entity.User, error) {
	j, err := json.Marshal(ValidateRequest{Token: token})
	if err != nil {
		return entity.User{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/validate", bytes.NewReader(j))
	if err != nil {
		return entity.User{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return entity.User{}, &entity.StatusError{Code: resp.StatusCode, Message: string(body)}
	}

	var data ValidateResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	if data.Email == "" {
		return entity.User{}, fmt.Errorf("%w: token has no email", entity.ErrUnauthenticated)
	}

	if data.Type == "" {
		data.Type = entity.UserTypeEmployee
	}

	return entity.User{
		ID:    data.ID,
		Email: data.Email,
		Type:  data.Type,
	}, nil
}
