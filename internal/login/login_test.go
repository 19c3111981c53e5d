package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jfmyers9/undertow/pkg/tidal"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresToken(t *testing.T) {
	_, err := New(Config{Token: ""}, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "application token is required")
}

func TestService_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "some_token", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(`{"userId": 123, "sessionId": "session-id-123", "countryCode": "US"}`))
	}))
	defer server.Close()

	service, err := New(Config{Token: "some_token", BaseURL: server.URL}, zerolog.Nop())
	require.NoError(t, err)

	session, err := service.Login(context.Background(), "myuser@example.com", "somepassword")
	require.NoError(t, err)
	assert.Equal(t, "session-id-123", session.SessionID)
}

func TestService_Login_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status": 401, "subStatus": 3001, "userMessage": "Invalid credentials"}`))
	}))
	defer server.Close()

	service, err := New(Config{Token: "some_token", BaseURL: server.URL}, zerolog.Nop())
	require.NoError(t, err)

	session, err := service.Login(context.Background(), "myuser@example.com", "wrong")
	assert.Nil(t, session)
	require.ErrorIs(t, err, tidal.ErrSessionRejected)
}

func TestService_Authenticate_SwallowsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	service, err := New(Config{Token: "some_token", BaseURL: server.URL}, zerolog.Nop())
	require.NoError(t, err)

	creds := service.Authenticate(context.Background(), "myuser@example.com", "wrong")
	assert.Equal(t, "some_token", creds.Token)
	assert.Nil(t, creds.Session)
}

func TestService_Authenticate_AttachesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"userId": 123, "sessionId": "session-id-123", "countryCode": "US"}`))
	}))
	defer server.Close()

	service, err := New(Config{Token: "some_token", BaseURL: server.URL}, zerolog.Nop())
	require.NoError(t, err)

	creds := service.Authenticate(context.Background(), "myuser@example.com", "somepassword")
	require.NotNil(t, creds.Session)
	assert.Equal(t, 123, creds.Session.UserID)
}
