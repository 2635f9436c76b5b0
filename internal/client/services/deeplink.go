package services

import (
	"fmt"
	"net/url"
	"strings"
)

// Magic links arrive either as the app deep link
// jobpilot://auth/verify?token=… or as the https universal link the email
// client opens. Both carry the one-time token in the "token" query
// parameter.
const magicLinkScheme = "jobpilot"

// CaptureMagicLinkToken extracts the login token from a pasted magic link.
func CaptureMagicLinkToken(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadMagicLink, err)
	}

	switch u.Scheme {
	case magicLinkScheme, "https":
	default:
		return "", ErrBadMagicLink
	}

	token := u.Query().Get("token")
	if token == "" {
		return "", ErrBadMagicLink
	}
	return token, nil
}
