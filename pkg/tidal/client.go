package tidal

import (
	"net/http"
	"strings"
)

// Config holds client configuration.
type Config struct {
	HTTPClient *http.Client // Optional: HTTP client (defaults to a fresh client per call)
	BaseURL    string       // Optional: Base URL for the API (defaults to Tidal, used for testing)
	Logger     Logger       // Optional: Logger interface for diagnostics
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
	// Errorf logs an error message with format and arguments.
	Errorf(format string, args ...interface{})
}

// Client is the entry point for Tidal login operations.
//
// A Client holds no credentials of its own; the application token flows in
// per call from the Credentials holder. Clients are safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     Logger
}

const (
	// DefaultBaseURL is the default Tidal API endpoint.
	DefaultBaseURL = "https://api.tidalhifi.com/v1"

	loginPath = "/login/username"
)

// NewClient creates a new Tidal login client.
//
// All configuration is optional; the zero Config yields a production client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &Client{
		httpClient: cfg.HTTPClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}

// logErrorf logs an error message if a logger is configured.
func (c *Client) logErrorf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Errorf(format, args...)
	}
}
