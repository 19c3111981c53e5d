package tidal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Login exchanges an application token plus user credentials for a session.
//
// It issues a single POST to the login endpoint with the application token
// as a query parameter and the user credentials as a form-encoded body.
// The exchange is single-shot: no retries, no backoff. Cancellation and
// timeouts are imposed through ctx.
//
// On a 2xx response the body is decoded into a Session. A non-2xx response
// yields ErrSessionRejected; any transport or decoding failure yields a
// *RequestError carrying the cause.
func (c *Client) Login(ctx context.Context, token, username, password string) (*Session, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	endpoint := c.baseURL + loginPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "undertow/1.0")

	query := url.Values{}
	query.Set("token", token)
	req.URL.RawQuery = query.Encode()

	// Each call gets its own transport client unless one was injected, so
	// concurrent logins share no state.
	httpClient := c.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The failure body is informational only; it is logged, never parsed
		// into a typed structure. The password is never logged.
		body, _ := io.ReadAll(resp.Body)
		c.logErrorf("tidal: creating session failed. status: %d, token: %q, username: %q", resp.StatusCode, token, username)
		c.logErrorf("tidal: failure body: %s", body)
		return nil, ErrSessionRejected
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, &RequestError{Err: fmt.Errorf("failed to decode session response: %w", err)}
	}

	c.logDebugf("tidal: login succeeded for user %d (%s)", session.UserID, session.CountryCode)
	return &session, nil
}
