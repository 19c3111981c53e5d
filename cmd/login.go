package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jfmyers9/undertow/internal/config"
	"github.com/jfmyers9/undertow/internal/login"
	"github.com/jfmyers9/undertow/pkg/tidal"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var loginLogLevel string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to Tidal",
	Long: `Log in to Tidal and print the resulting session.

This command will guide you through the login process:
1. You'll be prompted for your application token (reused from the config
   file if already set)
2. You'll be prompted for your Tidal username and password
3. A single login exchange is performed and the session is printed

The password is never saved and never logged. The session is printed once
and not persisted; run the command again when it expires.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Tidal Login")
	fmt.Println("===========")
	fmt.Println()

	// Check if we already have an application token
	if cfg.Tidal.Token != "" {
		fmt.Printf("Found existing application token.\n")
		fmt.Print("\nUse existing token? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			// User wants to enter a new token
			cfg.Tidal.Token = ""
		}
	}

	// Prompt for the token if not set
	if cfg.Tidal.Token == "" {
		fmt.Print("Enter your application token: ")
		token, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		cfg.Tidal.Token = strings.TrimSpace(token)
	}

	// Prompt for username, defaulting to the configured one
	username := cfg.Tidal.Username
	if username != "" {
		fmt.Printf("Username [%s]: ", username)
	} else {
		fmt.Print("Username: ")
	}
	entered, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if entered = strings.TrimSpace(entered); entered != "" {
		username = entered
	}

	fmt.Print("Password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")

	if cfg.Tidal.Token == "" || username == "" || password == "" {
		return fmt.Errorf("application token, username and password are required")
	}

	// Set up logging
	logger := setupLogger(loginLogLevel)

	service, err := login.New(login.Config{
		Token:   cfg.Tidal.Token,
		BaseURL: cfg.Tidal.BaseURL,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create login service: %w", err)
	}

	fmt.Println("\nLogging in...")
	session, err := service.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, tidal.ErrSessionRejected) {
			return fmt.Errorf("login rejected: check your username, password and application token")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	// Save token and username (never the password, never the session)
	cfg.Tidal.Username = username
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n✓ Login successful!\n")
	fmt.Printf("  User ID:      %d\n", session.UserID)
	fmt.Printf("  Country code: %s\n", session.CountryCode)
	fmt.Printf("  Session ID:   %s\n", session.SessionID)
	fmt.Printf("\n✓ Token and username saved to %s/config.yaml\n", config.GetConfigDir())

	return nil
}

// setupLogger creates a logger with the specified configuration
func setupLogger(logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Create logger with pretty console output
	logger := zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger().
		Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	return logger
}
