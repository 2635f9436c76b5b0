// Package session persists the authenticated session between runs. It plays
// the role the secure on-device storage plays in the mobile app: a small
// key/value store holding the cached token and related metadata.
package session

import "context"

// Well-known keys.
const (
	KeyEmail    = "email"
	KeyToken    = "access_token"
	KeyDeviceID = "device_id"
)

type Repository interface {
	// Get returns the stored value for key, or "" when absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
