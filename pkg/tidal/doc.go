// Package tidal provides a client library for the Tidal login API.
//
// # Overview
//
// This package implements the credential/session lifecycle against Tidal's
// login endpoint: it exchanges an application token plus user credentials for
// a short-lived session used to authorize later API calls. It provides a
// clean, type-safe API with context support and proper error handling.
//
// # Installation
//
//	go get github.com/jfmyers9/undertow/pkg/tidal
//
// # Quick Start
//
// Create a client, then exchange credentials for a session:
//
//	import "github.com/jfmyers9/undertow/pkg/tidal"
//
//	client := tidal.NewClient(tidal.Config{})
//
//	session, err := client.Login(ctx, "app-token", "user@example.com", "password")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("session:", session.SessionID)
//
// # Credential Holder
//
// The Credentials type pairs an application token with an optional
// established session. Its Authenticate method is a best-effort surface:
// it never returns an error, it only attaches a session when the exchange
// succeeds:
//
//	creds := tidal.NewCredentials("app-token")
//	creds = creds.Authenticate(ctx, client, "user@example.com", "password")
//	if creds.Session != nil {
//	    // logged in
//	}
//
// Callers that need to distinguish failure causes should call Client.Login
// directly, which returns the full error taxonomy.
//
// # Error Handling
//
// Two failure kinds are surfaced by Login:
//
//   - *RequestError wraps any transport or decoding failure. The underlying
//     cause is preserved and reachable via errors.Unwrap / errors.As.
//   - ErrSessionRejected means the server explicitly refused the login
//     (bad credentials, invalid application token). Match with errors.Is.
//
// Example:
//
//	session, err := client.Login(ctx, token, username, password)
//	if err != nil {
//	    var reqErr *tidal.RequestError
//	    switch {
//	    case errors.Is(err, tidal.ErrSessionRejected):
//	        // wrong credentials or token
//	    case errors.As(err, &reqErr):
//	        // network / decoding trouble, see reqErr.Unwrap()
//	    }
//	}
//
// Calling Credentials.Authenticate with an empty application token is a
// programmer error and panics before any network activity.
//
// # Context Support
//
// Login accepts a context.Context for cancellation and timeouts. The
// exchange itself is single-shot: no retries, no backoff. Retry policy
// belongs to the caller.
//
// # Configuration
//
// The client can be configured with a custom HTTP client, a base URL (for
// testing), and an optional logger:
//
//	client := tidal.NewClient(tidal.Config{
//	    HTTPClient: &http.Client{Timeout: 30 * time.Second},
//	    BaseURL:    server.URL,
//	    Logger:     myLogger, // Implements tidal.Logger interface
//	})
package tidal
