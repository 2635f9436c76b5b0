// Package api defines the remote collaborator contract for the jobpilot
// client. Every backend the app talks to (auth, profile creation, resume
// parsing, applications, subscriptions) sits behind the Client interface so
// the wizard and the services never see the transport.
package api

import (
	"context"

	"github.com/ananyev/jobpilot/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	// Authorize sets the bearer token attached to subsequent requests.
	// An empty token clears it.
	Authorize(token string)

	SignUp(ctx context.Context, email, password string) error
	RequestOTP(ctx context.Context, email string) error
	// VerifyOTP exchanges a one-time code for an access token.
	VerifyOTP(ctx context.Context, email, code string) (string, error)

	// ParseResume submits a resume for extraction. A service-side
	// "success: false" response maps to ErrParseRejected; a successful
	// response with no extractable data returns (nil, nil).
	ParseResume(ctx context.Context, file models.ResumeFile) (*models.ParsedResume, error)
	CreateProfile(ctx context.Context, req models.CreateProfileRequest) (models.Profile, error)
	UploadResume(ctx context.Context, profileID string, file models.ResumeFile) error

	ListNotifications(ctx context.Context) ([]models.Notification, error)
	GetApplication(ctx context.Context, id string) (models.Application, error)
	GetSubscription(ctx context.Context) (models.Subscription, error)
}
