package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"api_url": "https://api.example.com",
		"token": "secret",
		"timeout": "10s",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, 10*time.Second, cfg.TimeoutDuration())
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{APIURL: "https://api.example.com", Timeout: "5s"}, ""},
		{"missing url", Config{}, "'api_url' is required"},
		{"relative url", Config{APIURL: "/api"}, "absolute http(s) URL"},
		{"bad timeout", Config{APIURL: "http://localhost:8080", Timeout: "soon"}, "invalid 'timeout'"},
		{"negative timeout", Config{APIURL: "http://localhost:8080", Timeout: "-1s"}, "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTimeoutDuration_Default(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, 30*time.Second, cfg.TimeoutDuration())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		APIURL:  "https://default.example.com",
		Token:   "default-token",
		Timeout: "45s",
		Verbose: true,
	}

	partial := Config{
		APIURL:        "https://custom.example.com",
		SessionCookie: "cookie",
	}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, "https://custom.example.com", merged.APIURL)
	assert.Equal(t, "cookie", merged.SessionCookie)
	assert.Equal(t, "default-token", merged.Token)
	assert.Equal(t, "45s", merged.Timeout)
	assert.True(t, merged.Verbose)
}

func TestResolve_Precedence(t *testing.T) {
	t.Setenv(EnvAPIURL, "https://env.example.com")
	t.Setenv(EnvToken, "env-token")
	t.Setenv(EnvSessionCookie, "env-cookie")
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvVerbose, "")

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"api_url":"https://file.example.com","token":"file-token"}`), 0644))

	cfg, err := Resolve(tmpFile, Config{Token: "flag-token"})
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.APIURL)
	assert.Equal(t, "flag-token", cfg.Token)
	assert.Equal(t, "env-cookie", cfg.SessionCookie)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.Verbose)
}

func TestResolve_MissingFile(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "missing.json"), Config{})
	assert.Error(t, err)
}
