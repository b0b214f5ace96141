package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort           = 8080
	defaultERPTimeout     = 10 * time.Second
	defaultAllowedOrigin  = "*"
	defaultAllowedHeaders = "Content-Type, Authorization, X-Request-ID"
	defaultAuditTable     = "reservation_audit"
	defaultAWSRegion      = "us-east-1"
)

var (
	ErrMissingBaseURL = errors.New("ERP_BASE_URL missing or invalid (invisible characters?)")
	ErrUnsafeToken    = errors.New("ERP token contains control or non-ASCII characters; clean ERP_TOKEN_KEY/ERP_TOKEN_SECRET")
	ErrInvalidTimeout = errors.New("ERP_TIMEOUT must be positive")
)

// ConfigurationError reports a configuration value the gateway cannot run with.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Credentials holds the composed ERP token. It is built once by Load and is
// read-only afterwards.
type Credentials struct {
	token string
}

func NewCredentials(key, secret string) Credentials {
	return Credentials{token: ComposeToken(key, secret)}
}

// AuthHeader returns the Authorization header value, or "" for session auth.
func (c Credentials) AuthHeader() string {
	return c.token
}

// Mode is safe to log: "token" or "session".
func (c Credentials) Mode() string {
	if c.token == "" {
		return "session"
	}
	return "token"
}

type ERPConfig struct {
	BaseURL     string
	Credentials Credentials
	Timeout     time.Duration
	MaxRPS      float64
	RateBurst   int
}

type HTTPConfig struct {
	Port           int
	AllowedOrigin  string
	AllowedHeaders string
}

type AuditConfig struct {
	Enabled bool
	Table   string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

// Config is the process-wide gateway configuration. Every string in it went
// through Sanitize.
type Config struct {
	ERP   ERPConfig
	HTTP  HTTPConfig
	Audit AuditConfig
	AWS   AWSConfig
}

// fileConfig mirrors the optional YAML file pointed to by GATEWAY_CONFIG_FILE.
type fileConfig struct {
	ERP struct {
		BaseURL     string  `yaml:"base_url"`
		TokenKey    string  `yaml:"token_key"`
		TokenSecret string  `yaml:"token_secret"`
		Timeout     string  `yaml:"timeout"`
		MaxRPS      float64 `yaml:"max_rps"`
		RateBurst   int     `yaml:"rate_burst"`
	} `yaml:"erp"`
	HTTP struct {
		Port           int    `yaml:"port"`
		AllowedOrigin  string `yaml:"allowed_origin"`
		AllowedHeaders string `yaml:"allowed_headers"`
	} `yaml:"http"`
	Audit struct {
		Enabled bool   `yaml:"enabled"`
		Table   string `yaml:"table"`
	} `yaml:"audit"`
	AWS struct {
		Region           string `yaml:"region"`
		AccessKeyID      string `yaml:"access_key_id"`
		SecretAccessKey  string `yaml:"secret_access_key"`
		DynamoDBEndpoint string `yaml:"dynamodb_endpoint"`
	} `yaml:"aws"`
}

// Load builds the configuration from defaults, the optional YAML file named by
// GATEWAY_CONFIG_FILE and the environment, in that order of precedence (env wins).
//
// Supported env vars:
//   - ERP_BASE_URL, ERP_TOKEN_KEY, ERP_TOKEN_SECRET
//   - ERP_TIMEOUT (Go duration, default 10s), ERP_MAX_RPS (0 = unlimited), ERP_RATE_BURST
//   - PORT (default 8080), ALLOWED_ORIGIN (default *), ALLOWED_HEADERS
//   - AUDIT_ENABLED, RESERVATION_AUDIT_TABLE (default reservation_audit)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//
// Load does not validate; call Validate on the result.
func Load() (Config, error) {
	var fc fileConfig
	if path := Sanitize(os.Getenv("GATEWAY_CONFIG_FILE")); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, &ConfigurationError{Field: "GATEWAY_CONFIG_FILE", Err: err}
		}
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return Config{}, &ConfigurationError{Field: "GATEWAY_CONFIG_FILE", Err: err}
		}
		log.Printf("[config] loaded file path=%s", path)
	}

	timeout := defaultERPTimeout
	if raw := Sanitize(getenvDefault("ERP_TIMEOUT", fc.ERP.Timeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, &ConfigurationError{Field: "ERP_TIMEOUT", Err: err}
		}
		timeout = d
	}

	maxRPS, err := getenvFloat("ERP_MAX_RPS", fc.ERP.MaxRPS)
	if err != nil {
		return Config{}, err
	}
	burst, err := getenvInt("ERP_RATE_BURST", fc.ERP.RateBurst)
	if err != nil {
		return Config{}, err
	}
	port, err := getenvInt("PORT", orInt(fc.HTTP.Port, defaultPort))
	if err != nil {
		return Config{}, err
	}
	auditEnabled, err := getenvBool("AUDIT_ENABLED", fc.Audit.Enabled)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		ERP: ERPConfig{
			BaseURL: SanitizeBaseURL(getenvDefault("ERP_BASE_URL", fc.ERP.BaseURL)),
			Credentials: NewCredentials(
				getenvDefault("ERP_TOKEN_KEY", fc.ERP.TokenKey),
				getenvDefault("ERP_TOKEN_SECRET", fc.ERP.TokenSecret),
			),
			Timeout:   timeout,
			MaxRPS:    maxRPS,
			RateBurst: burst,
		},
		HTTP: HTTPConfig{
			Port:           port,
			AllowedOrigin:  orString(Sanitize(getenvDefault("ALLOWED_ORIGIN", fc.HTTP.AllowedOrigin)), defaultAllowedOrigin),
			AllowedHeaders: orString(Sanitize(getenvDefault("ALLOWED_HEADERS", fc.HTTP.AllowedHeaders)), defaultAllowedHeaders),
		},
		Audit: AuditConfig{
			Enabled: auditEnabled,
			Table:   orString(Sanitize(getenvDefault("RESERVATION_AUDIT_TABLE", fc.Audit.Table)), defaultAuditTable),
		},
		AWS: AWSConfig{
			Region:           orString(Sanitize(getenvDefault("AWS_REGION", fc.AWS.Region)), defaultAWSRegion),
			AccessKeyID:      Sanitize(getenvDefault("AWS_ACCESS_KEY_ID", fc.AWS.AccessKeyID)),
			SecretAccessKey:  Sanitize(getenvDefault("AWS_SECRET_ACCESS_KEY", fc.AWS.SecretAccessKey)),
			DynamoDBEndpoint: Sanitize(getenvDefault("DYNAMODB_ENDPOINT", fc.AWS.DynamoDBEndpoint)),
		},
	}
	if cfg.ERP.RateBurst <= 0 {
		cfg.ERP.RateBurst = 1
	}
	return cfg, nil
}

// Validate checks the values that make the gateway unusable. Errors are joined,
// each one a *ConfigurationError.
func (c Config) Validate() error {
	var errs []error
	if c.ERP.BaseURL == "" {
		errs = append(errs, &ConfigurationError{Field: "ERP_BASE_URL", Err: ErrMissingBaseURL})
	}
	if HasForbiddenChars(c.ERP.Credentials.AuthHeader()) {
		errs = append(errs, &ConfigurationError{Field: "ERP_TOKEN_KEY/ERP_TOKEN_SECRET", Err: ErrUnsafeToken})
	}
	if c.ERP.Timeout <= 0 {
		errs = append(errs, &ConfigurationError{Field: "ERP_TIMEOUT", Err: ErrInvalidTimeout})
	}
	return errors.Join(errs...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	raw := Sanitize(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ConfigurationError{Field: key, Err: err}
	}
	return v, nil
}

func getenvFloat(key string, def float64) (float64, error) {
	raw := Sanitize(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ConfigurationError{Field: key, Err: err}
	}
	return v, nil
}

func getenvBool(key string, def bool) (bool, error) {
	raw := strings.ToLower(Sanitize(os.Getenv(key)))
	switch raw {
	case "":
		return def, nil
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, &ConfigurationError{Field: key, Err: fmt.Errorf("invalid boolean %q", raw)}
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
