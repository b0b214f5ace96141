package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GATEWAY_CONFIG_FILE", "ERP_BASE_URL", "ERP_TOKEN_KEY", "ERP_TOKEN_SECRET", "ERP_TIMEOUT",
		"ERP_MAX_RPS", "ERP_RATE_BURST", "PORT", "ALLOWED_ORIGIN", "ALLOWED_HEADERS", "AUDIT_ENABLED",
		"RESERVATION_AUDIT_TABLE", "AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.ERP.BaseURL)
	assert.Equal(t, "session", cfg.ERP.Credentials.Mode())
	assert.Equal(t, 10*time.Second, cfg.ERP.Timeout)
	assert.Equal(t, 1, cfg.ERP.RateBurst)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "*", cfg.HTTP.AllowedOrigin)
	assert.Equal(t, "reservation_audit", cfg.Audit.Table)
	assert.False(t, cfg.Audit.Enabled)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)

	err = cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingBaseURL))
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "ERP_BASE_URL", cfgErr.Field)
}

func TestLoad_FromEnvSanitizesEverything(t *testing.T) {
	clearEnv(t)
	t.Setenv("ERP_BASE_URL", "  https://erp.example.com/‎")
	t.Setenv("ERP_TOKEN_KEY", "‎key")
	t.Setenv("ERP_TOKEN_SECRET", "secret\uFEFF")
	t.Setenv("ERP_TIMEOUT", "3s")
	t.Setenv("ERP_MAX_RPS", "2.5")
	t.Setenv("ERP_RATE_BURST", "4")
	t.Setenv("ALLOWED_ORIGIN", "https://app.example.com‎")
	t.Setenv("AUDIT_ENABLED", "true")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://erp.example.com", cfg.ERP.BaseURL)
	assert.Equal(t, "token key:secret", cfg.ERP.Credentials.AuthHeader())
	assert.Equal(t, "token", cfg.ERP.Credentials.Mode())
	assert.Equal(t, 3*time.Second, cfg.ERP.Timeout)
	assert.Equal(t, 2.5, cfg.ERP.MaxRPS)
	assert.Equal(t, 4, cfg.ERP.RateBurst)
	assert.Equal(t, "https://app.example.com", cfg.HTTP.AllowedOrigin)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	content := `
erp:
  base_url: "https://file.example.com/"
  token_key: "filekey"
  token_secret: "filesecret"
  timeout: "7s"
http:
  allowed_origin: "https://file-origin.example.com"
audit:
  enabled: true
  table: "audit_from_file"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("GATEWAY_CONFIG_FILE", path)
	t.Setenv("ERP_BASE_URL", "https://env.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.ERP.BaseURL)
	assert.Equal(t, "token filekey:filesecret", cfg.ERP.Credentials.AuthHeader())
	assert.Equal(t, 7*time.Second, cfg.ERP.Timeout)
	assert.Equal(t, "https://file-origin.example.com", cfg.HTTP.AllowedOrigin)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, "audit_from_file", cfg.Audit.Table)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"ERP_TIMEOUT":    "ten seconds",
		"ERP_MAX_RPS":    "fast",
		"ERP_RATE_BURST": "many",
		"PORT":           "http",
		"AUDIT_ENABLED":  "maybe",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %v", err)
			assert.Equal(t, key, cfgErr.Field)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GATEWAY_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load()
		var cfgErr *ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "GATEWAY_CONFIG_FILE", cfgErr.Field)
	})
}

func TestValidate_UnsafeTokenFailsClosed(t *testing.T) {
	cfg := Config{ERP: ERPConfig{
		BaseURL:     "https://erp.example.com",
		Credentials: Credentials{token: "token key‎:secret"},
		Timeout:     time.Second,
	}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsafeToken))
	assert.False(t, errors.Is(err, ErrMissingBaseURL))
}

func TestValidate_Timeout(t *testing.T) {
	cfg := Config{ERP: ERPConfig{BaseURL: "https://erp.example.com"}}
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalidTimeout))
}
