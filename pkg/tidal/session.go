package tidal

// Session represents an authenticated session from a successful login.
//
// A Session is created exclusively by Client.Login; all three fields are
// populated from the server response, partial sessions never exist. It is
// never mutated after creation.
type Session struct {
	UserID      int    `json:"userId"`      // Numeric user identifier
	SessionID   string `json:"sessionId"`   // Opaque session token for later requests
	CountryCode string `json:"countryCode"` // Two-letter region code, e.g. "US"
}
