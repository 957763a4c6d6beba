package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommand(t *testing.T) {
	_, url := newFakeAPI(t)

	out, err := runCLI(t, "show", "--api-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Ada Lovelace <ada@example.com>")
	assert.Contains(t, out, "Acme")
}

func TestShowCommand_RequiresAPIURL(t *testing.T) {
	t.Setenv("JOBSEEKER_API_URL", "")
	_, err := runCLI(t, "show", "--api-url", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_url")
}
