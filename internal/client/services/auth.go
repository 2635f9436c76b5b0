// Package services contains the application services behind the jobpilot
// CLI: authentication and session handling, and the account reads
// (notifications, applications, subscription). The profile wizard lives in
// its own package.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ananyev/jobpilot/internal/client/api"
	"github.com/ananyev/jobpilot/internal/client/repositories/session"
	"github.com/ananyev/jobpilot/internal/dbx"
)

var (
	ErrNoSession      = errors.New("no stored session")
	ErrSessionExpired = errors.New("stored session expired")
	ErrBadMagicLink   = errors.New("unrecognized magic link")
)

// AuthService covers the sign-up and login flows of the app: password
// sign-up followed by OTP verification, magic-link redemption, and the local
// session cache.
//
// All methods must honor context cancellation and timeouts.
type AuthService interface {
	SignUp(ctx context.Context, email string, password []byte) error
	RequestCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) (Session, error)
	RedeemMagicLink(ctx context.Context, rawURL string) (Session, error)
	Restore(ctx context.Context) (Session, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote API client
// and the local client database.
type authService struct {
	client api.Client
	db     *sql.DB
	now    func() time.Time
}

func NewAuthService(client api.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db, now: time.Now}
}

func (a *authService) SignUp(ctx context.Context, email string, password []byte) error {
	if err := a.client.SignUp(ctx, email, string(password)); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	return nil
}

func (a *authService) RequestCode(ctx context.Context, email string) error {
	if err := a.client.RequestOTP(ctx, email); err != nil {
		return fmt.Errorf("request code: %w", err)
	}
	return nil
}

// VerifyCode exchanges the one-time code for a token and establishes the
// session.
func (a *authService) VerifyCode(ctx context.Context, email, code string) (Session, error) {
	token, err := a.client.VerifyOTP(ctx, email, code)
	if err != nil {
		return Session{}, fmt.Errorf("verify code: %w", err)
	}
	return a.establish(ctx, email, token)
}

// RedeemMagicLink captures the token carried by a magic link and establishes
// the session with it. The email comes from the token's subject claim.
func (a *authService) RedeemMagicLink(ctx context.Context, rawURL string) (Session, error) {
	token, err := CaptureMagicLinkToken(rawURL)
	if err != nil {
		return Session{}, err
	}
	return a.establish(ctx, "", token)
}

// establish builds a session from a bearer token, persists it, and
// authorizes the API client. Opaque (non-JWT) tokens are accepted; they just
// carry no expiry or subject.
func (a *authService) establish(ctx context.Context, email, token string) (Session, error) {
	s := Session{Email: email, AccessToken: token}
	if info, err := tokenClaims(token); err == nil {
		if s.Email == "" {
			s.Email = info.subject
		}
		s.ExpiresAt = info.expiresAt
	}

	// the device id survives re-logins but not logout
	repo := session.NewSQLiteRepository(a.db)
	deviceID, err := repo.Get(ctx, session.KeyDeviceID)
	if err != nil {
		return Session{}, err
	}
	if deviceID == "" {
		deviceID = uuid.NewString()
	}
	s.DeviceID = deviceID

	if err := a.save(ctx, s); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}
	a.client.Authorize(token)
	return s, nil
}

// save persists the session atomically.
func (a *authService) save(ctx context.Context, s Session) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, session.KeyEmail, s.Email); err != nil {
			return err
		}
		if err := repo.Set(ctx, session.KeyToken, s.AccessToken); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyDeviceID, s.DeviceID)
	})
}

// Restore loads the cached session from the local database. Missing data
// returns ErrNoSession; a token past its lifetime returns ErrSessionExpired.
// On success the API client is authorized with the cached token.
func (a *authService) Restore(ctx context.Context) (Session, error) {
	repo := session.NewSQLiteRepository(a.db)

	token, err := repo.Get(ctx, session.KeyToken)
	if err != nil {
		return Session{}, err
	}
	if token == "" {
		return Session{}, ErrNoSession
	}

	email, err := repo.Get(ctx, session.KeyEmail)
	if err != nil {
		return Session{}, err
	}
	deviceID, err := repo.Get(ctx, session.KeyDeviceID)
	if err != nil {
		return Session{}, err
	}

	s := Session{Email: email, AccessToken: token, DeviceID: deviceID}
	if info, err := tokenClaims(token); err == nil {
		if s.Email == "" {
			s.Email = info.subject
		}
		s.ExpiresAt = info.expiresAt
	}

	if s.Expired(a.now()) {
		return Session{}, ErrSessionExpired
	}

	a.client.Authorize(token)
	return s, nil
}

// Logout wipes the cached session and deauthorizes the API client.
func (a *authService) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return session.NewSQLiteRepository(tx).Clear(ctx)
	})
	if err != nil {
		return err
	}
	a.client.Authorize("")
	return nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
