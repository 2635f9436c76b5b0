// Package config loads runtime configuration for the jobpilot CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//	-r int      OTP resend interval (seconds)
//	-d string   path to the local client database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://api.jobpilot.dev",
//	  "request_timeout": "15s",
//	  "otp_resend_interval": "30s",
//	  "database_path": "jobpilot.db",
//	  "resume_max_bytes": 10485760
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
