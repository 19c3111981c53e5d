package tidal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_JSONFieldMapping(t *testing.T) {
	var session Session
	require.NoError(t, json.Unmarshal(
		[]byte(`{"userId": 123, "sessionId": "session-id-123", "countryCode": "US"}`),
		&session,
	))

	assert.Equal(t, 123, session.UserID)
	assert.Equal(t, "session-id-123", session.SessionID)
	assert.Equal(t, "US", session.CountryCode)

	// Round trip is lossless for the three defined fields.
	encoded, err := json.Marshal(session)
	require.NoError(t, err)

	var decoded Session
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, session, decoded)
}

func TestCredentials_JSONOmitsAbsentSession(t *testing.T) {
	encoded, err := json.Marshal(NewCredentials("some_token"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"token": "some_token"}`, string(encoded))
}
