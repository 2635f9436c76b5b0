// Package cli provides the interactive jobpilot command-line client.
//
// It wires configuration, local session storage, API services, and an
// interactive REPL. Typical flow: restore the cached session (or sign in via
// one-time code or magic link) and run the profile creation wizard.
//
// Key features:
//   - Sign up / Login (OTP with resend countdown) / magic-link login
//   - Profile creation wizard with optional resume upload and parsing
//   - Notifications, application detail, and subscription lookups
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
