package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureMagicLinkToken(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		want    string
		wantErr bool
	}{
		{
			name:   "app deep link",
			rawURL: "jobpilot://auth/verify?token=abc123",
			want:   "abc123",
		},
		{
			name:   "universal link",
			rawURL: "https://app.jobpilot.dev/auth/verify?token=abc123&utm_source=email",
			want:   "abc123",
		},
		{
			name:   "surrounding whitespace",
			rawURL: "  jobpilot://auth/verify?token=abc123\n",
			want:   "abc123",
		},
		{
			name:    "wrong scheme",
			rawURL:  "http://app.jobpilot.dev/auth/verify?token=abc123",
			wantErr: true,
		},
		{
			name:    "missing token",
			rawURL:  "jobpilot://auth/verify",
			wantErr: true,
		},
		{
			name:    "not a url",
			rawURL:  "://",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CaptureMagicLinkToken(tc.rawURL)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrBadMagicLink)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
