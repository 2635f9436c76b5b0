package config

import "time"

// Config holds runtime settings for the jobpilot CLI.
type Config struct {
	// ServerBaseURL is the base URL of the backend API.
	ServerBaseURL string
	// RequestTimeout bounds every individual API call.
	RequestTimeout time.Duration
	// OTPResendInterval is how long the resend button stays disabled after
	// a code is sent.
	OTPResendInterval time.Duration
	// DatabasePath is the location of the local client database.
	DatabasePath string
	// ResumeMaxBytes caps the size of resume files picked for upload.
	ResumeMaxBytes int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.OTPResendInterval = 30 * time.Second
	c.DatabasePath = "jobpilot.db"
	c.ResumeMaxBytes = 10 << 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
