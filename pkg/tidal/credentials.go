package tidal

import "context"

// Credentials pairs an application token with an optional established
// session. The zero session means "not logged in".
//
// Credentials have value semantics: WithSession and Authenticate return new
// values and never mutate their receiver.
type Credentials struct {
	Token   string   `json:"token"`             // Application token identifying the calling app
	Session *Session `json:"session,omitempty"` // Established session, nil until login succeeds
}

// NewCredentials creates Credentials for the given application token with no
// session attached. No validation is performed here; an empty token is
// rejected at use time by Authenticate.
func NewCredentials(token string) Credentials {
	return Credentials{Token: token}
}

// WithSession returns a copy of the credentials with the session replaced.
// Pure: the receiver is unaffected.
func (c Credentials) WithSession(session *Session) Credentials {
	c.Session = session
	return c
}

// Authenticate performs one login exchange and returns credentials with the
// resulting session attached, or with no session if the exchange failed for
// any reason. This surface deliberately does not report why a login failed;
// callers that need to distinguish a rejection from a network error should
// use Client.Login directly.
//
// Panics if the application token is empty. That is a programmer error, not
// a recoverable condition, and it is caught before any network activity.
func (c Credentials) Authenticate(ctx context.Context, client *Client, username, password string) Credentials {
	if c.Token == "" {
		panic("tidal: application token must be set before authenticating")
	}
	session, err := client.Login(ctx, c.Token, username, password)
	if err != nil {
		return c.WithSession(nil)
	}
	return c.WithSession(session)
}
