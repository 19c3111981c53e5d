package tidal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Nil(t, client.httpClient)
	assert.Nil(t, client.logger)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:8080/"})

	assert.Equal(t, "http://localhost:8080", client.baseURL)
}
