package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ananyev/jobpilot/internal/flagx"
	"github.com/ananyev/jobpilot/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL     string         `json:"server_base_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	OTPResendInterval timex.Duration `json:"otp_resend_interval"`
	DatabasePath      string         `json:"database_path"`
	ResumeMaxBytes    int64          `json:"resume_max_bytes"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flag. Keys absent from the file keep their current
// values. Panics on read or unmarshal errors (caller should recover if
// desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.OTPResendInterval.Duration != 0 {
		cfg.OTPResendInterval = time.Duration(jc.OTPResendInterval.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ResumeMaxBytes != 0 {
		cfg.ResumeMaxBytes = jc.ResumeMaxBytes
	}
}
