//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/2beens/physiq/internal/middleware"
	"github.com/2beens/physiq/internal/users"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

const testPassword = "testpass123"

// registerUser creates a fresh account and returns its session token.
func (s *IntegrationTestSuite) registerUser(ctx context.Context) (string, string) {
	t := s.T()
	username := gofakeit.Username() + gofakeit.DigitN(5)

	resp := s.doRequest(ctx, t, http.MethodPost, "/a/register", "", users.Credentials{
		Username: username,
		Password: testPassword,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var loginResp users.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	require.NotEmpty(t, loginResp.Token)

	return username, loginResp.Token
}

func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	t *testing.T,
	method, path, token string,
	body any,
) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reqJson, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(reqJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// tokenTransport puts the session token on every outgoing request.
type tokenTransport struct {
	token string
	base  http.RoundTripper
}

func (tt *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(middleware.TokenHeader, tt.token)
	return tt.base.RoundTrip(req)
}
