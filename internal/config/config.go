package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

// ErrMissingCredentials is returned when the selected email provider lacks
// the identity or secrets it needs to send.
var ErrMissingCredentials = errors.New("missing email provider credentials")

// Config holds server configuration
type Config struct {
	Port           int      // Port to listen on
	Env            string   // Environment (development | production)
	AllowedOrigins []string // CORS allowlist
	UploadMaxSize  int64    // Maximum photo size in bytes
	Email          EmailConfig
}

func (c *Config) Log() {
	log.Info().
		Int("port", c.Port).
		Str("env", c.Env).
		Strs("allowed_origins", c.AllowedOrigins).
		Str("upload_max_size", humanize.Bytes(uint64(c.UploadMaxSize))).
		Str("email_provider", c.Email.Provider).
		Str("email_from", c.Email.From).
		Msg("server configuration")
}

// IsDevelopment reports whether the server runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}

type EmailConfig struct {
	// Provider type ("smtp", "resend" or "log")
	Provider string `json:"provider"`

	// Sender identity
	From string `json:"from"`

	// SMTP config
	SMTPHost     string `json:"smtp_host,omitempty"`
	SMTPPort     int    `json:"smtp_port,omitempty"`
	SMTPUsername string `json:"-"`
	SMTPPassword string `json:"-"`
	SMTPTLS      string `json:"smtp_tls,omitempty"`

	// Resend config
	ResendAPIKey string `json:"-"`
}

// AppEnv returns APP_ENV, defaulting to production. Entrypoints call it
// before NewConfig so the logger and the config agree on the environment.
func AppEnv() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "production"
}

// NewConfig creates a server configuration from environment variables
func NewConfig() (*Config, error) {
	port := 3001
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil || p <= 0 {
			log.Error().Err(err).Str("port", portStr).Msg("invalid PORT environment variable")
			return nil, fmt.Errorf("invalid PORT: %q", portStr)
		}
		port = p
	}

	env := AppEnv()

	uploadMaxSizeStr := os.Getenv("UPLOAD_MAX_SIZE")
	if uploadMaxSizeStr == "" {
		uploadMaxSizeStr = "25MB" // Default value
	}
	uploadMaxSize, err := parseUploadMaxSize(uploadMaxSizeStr)
	if err != nil {
		log.Error().Err(err).Msg("invalid UPLOAD_MAX_SIZE configuration")
		return nil, err
	}

	emailConfig, err := loadEmailConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:           port,
		Env:            env,
		AllowedOrigins: parseOrigins(os.Getenv("ALLOWED_ORIGINS")),
		UploadMaxSize:  uploadMaxSize,
		Email:          emailConfig,
	}

	if cfg.Email.Provider == "log" && !cfg.IsDevelopment() {
		return nil, fmt.Errorf("EMAIL_PROVIDER=log is not allowed in %s", cfg.Env)
	}

	return cfg, nil
}

func loadEmailConfig() (EmailConfig, error) {
	provider := strings.ToLower(os.Getenv("EMAIL_PROVIDER"))
	if provider == "" {
		provider = "smtp"
	}

	cfg := EmailConfig{
		Provider:     provider,
		From:         os.Getenv("EMAIL_FROM"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPUsername: os.Getenv("EMAIL_USER"),
		SMTPPassword: os.Getenv("EMAIL_PASSWORD"),
		SMTPTLS:      strings.ToLower(os.Getenv("SMTP_TLS")),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
	}

	if err := validateEmailConfig(&cfg); err != nil {
		log.Error().Err(err).Str("provider", provider).Msg("invalid email configuration")
		return EmailConfig{}, fmt.Errorf("invalid email configuration: %w", err)
	}
	return cfg, nil
}

// validateEmailConfig ensures the email configuration is valid and fills
// provider specific defaults
func validateEmailConfig(cfg *EmailConfig) error {
	switch cfg.Provider {
	case "smtp":
		if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
			return fmt.Errorf("%w: EMAIL_USER and EMAIL_PASSWORD are required for smtp", ErrMissingCredentials)
		}
		if cfg.SMTPHost == "" {
			cfg.SMTPHost = "smtp.gmail.com"
		}
		cfg.SMTPPort = 587
		if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
			p, err := strconv.Atoi(portStr)
			if err != nil || p <= 0 {
				return fmt.Errorf("invalid SMTP_PORT: %q", portStr)
			}
			cfg.SMTPPort = p
		}
		switch cfg.SMTPTLS {
		case "":
			cfg.SMTPTLS = "mandatory"
		case "mandatory", "opportunistic", "none":
		default:
			return fmt.Errorf("invalid SMTP_TLS: %q", cfg.SMTPTLS)
		}
		if cfg.From == "" {
			cfg.From = cfg.SMTPUsername
		}
	case "resend":
		if cfg.ResendAPIKey == "" {
			return fmt.Errorf("%w: RESEND_API_KEY is required for resend", ErrMissingCredentials)
		}
		if cfg.From == "" {
			return fmt.Errorf("%w: EMAIL_FROM is required for resend", ErrMissingCredentials)
		}
	case "log":
		if cfg.From == "" {
			cfg.From = "photos@localhost"
		}
	default:
		return fmt.Errorf("unsupported email provider: %s", cfg.Provider)
	}
	return nil
}

// parseOrigins splits ALLOWED_ORIGINS on commas. An empty value allows any origin.
func parseOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// parseUploadMaxSize parses the UPLOAD_MAX_SIZE environment variable
// Value accepts humanize units, e.g. "25MB" or "10MiB"
// If no unit is provided, the value is assumed to be in megabytes
func parseUploadMaxSize(size string) (int64, error) {
	if value, err := strconv.ParseInt(size, 10, 64); err == nil {
		if value <= 0 {
			return 0, fmt.Errorf("invalid UPLOAD_MAX_SIZE: %q", size)
		}
		return value * 1000 * 1000, nil
	}

	value, err := humanize.ParseBytes(size)
	if err != nil {
		return 0, fmt.Errorf("invalid UPLOAD_MAX_SIZE: %w", err)
	}
	if value == 0 {
		return 0, fmt.Errorf("invalid UPLOAD_MAX_SIZE: %q", size)
	}
	return int64(value), nil
}
