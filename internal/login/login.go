package login

import (
	"context"
	"fmt"

	"github.com/jfmyers9/undertow/pkg/tidal"
	"github.com/rs/zerolog"
)

// Config holds the settings needed to reach the login endpoint.
type Config struct {
	Token   string // Required: application token
	BaseURL string // Optional: alternate endpoint (self-hosted proxy, test rig)
}

// Service drives login exchanges on behalf of the application.
//
// It validates the application token at construction so a misconfigured
// deployment fails at startup instead of panicking mid-flight, and it feeds
// the SDK's diagnostics into the application logger.
type Service struct {
	client *tidal.Client
	token  string
	logger zerolog.Logger
}

// New creates a Service. Returns an error if the application token is empty.
func New(cfg Config, logger zerolog.Logger) (*Service, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("application token is required")
	}

	logger = logger.With().Str("component", "login").Logger()
	client := tidal.NewClient(tidal.Config{
		BaseURL: cfg.BaseURL,
		Logger:  &zerologAdapter{logger: logger},
	})

	return &Service{
		client: client,
		token:  cfg.Token,
		logger: logger,
	}, nil
}

// Login performs one login exchange and reports exactly why it failed, if it
// did. Use this surface when the caller needs to distinguish a rejection
// from a network error.
func (s *Service) Login(ctx context.Context, username, password string) (*tidal.Session, error) {
	session, err := s.client.Login(ctx, s.token, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.Info().
		Int("user_id", session.UserID).
		Str("country_code", session.CountryCode).
		Msg("Login succeeded")

	return session, nil
}

// Authenticate performs one login exchange and returns best-effort
// credentials: the session is attached on success and absent on any failure.
// Failure causes are visible only in the logs.
func (s *Service) Authenticate(ctx context.Context, username, password string) tidal.Credentials {
	return tidal.NewCredentials(s.token).Authenticate(ctx, s.client, username, password)
}

// zerologAdapter exposes a zerolog.Logger through the SDK's Logger interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

func (a *zerologAdapter) Debugf(format string, args ...interface{}) {
	a.logger.Debug().Msgf(format, args...)
}

func (a *zerologAdapter) Errorf(format string, args ...interface{}) {
	a.logger.Error().Msgf(format, args...)
}
