package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananyev/jobpilot/internal/client/api"
	"github.com/ananyev/jobpilot/internal/client/models"
	"github.com/ananyev/jobpilot/internal/client/repositories/session"

	_ "modernc.org/sqlite"
)

// fakeClient implements only the api.Client methods the auth flows touch.
type fakeClient struct {
	api.Client

	token     string
	verifyErr error

	authorized []string
	signedUp   []string
	otpSentTo  []string
}

func (f *fakeClient) Authorize(token string) {
	f.authorized = append(f.authorized, token)
}

func (f *fakeClient) SignUp(_ context.Context, email, _ string) error {
	f.signedUp = append(f.signedUp, email)
	return nil
}

func (f *fakeClient) RequestOTP(_ context.Context, email string) error {
	f.otpSentTo = append(f.otpSentTo, email)
	return nil
}

func (f *fakeClient) VerifyOTP(_ context.Context, _, _ string) (string, error) {
	return f.token, f.verifyErr
}

func (f *fakeClient) Ping(context.Context) error { return nil }

func (f *fakeClient) ParseResume(context.Context, models.ResumeFile) (*models.ParsedResume, error) {
	return nil, nil
}

var authDBSeq int

func setupAuthDB(t *testing.T) *sql.DB {
	t.Helper()
	authDBSeq++
	dsn := fmt.Sprintf("file:authsvc%d?mode=memory&cache=shared", authDBSeq)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func mintToken(t *testing.T, subject string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": subject}
	if !exp.IsZero() {
		claims["exp"] = jwt.NewNumericDate(exp)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestAuthService_VerifyCode(t *testing.T) {
	ctx := context.Background()
	db := setupAuthDB(t)
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	client := &fakeClient{token: mintToken(t, "jane@example.org", exp)}

	svc := NewAuthService(client, db)

	s, err := svc.VerifyCode(ctx, "jane@example.org", "123456")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.org", s.Email)
	assert.Equal(t, client.token, s.AccessToken)
	assert.NotEmpty(t, s.DeviceID)
	assert.True(t, exp.Equal(s.ExpiresAt))
	require.Equal(t, []string{client.token}, client.authorized)

	// the session landed in the store
	repo := session.NewSQLiteRepository(db)
	got, err := repo.Get(ctx, session.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, client.token, got)
}

func TestAuthService_VerifyCode_Error(t *testing.T) {
	db := setupAuthDB(t)
	client := &fakeClient{verifyErr: errors.New("bad code")}
	svc := NewAuthService(client, db)

	_, err := svc.VerifyCode(context.Background(), "jane@example.org", "000000")
	require.Error(t, err)
	assert.Empty(t, client.authorized)
}

func TestAuthService_DeviceIDSurvivesRelogin(t *testing.T) {
	ctx := context.Background()
	db := setupAuthDB(t)
	client := &fakeClient{token: mintToken(t, "jane@example.org", time.Now().Add(time.Hour))}
	svc := NewAuthService(client, db)

	s1, err := svc.VerifyCode(ctx, "jane@example.org", "111111")
	require.NoError(t, err)
	s2, err := svc.VerifyCode(ctx, "jane@example.org", "222222")
	require.NoError(t, err)
	assert.Equal(t, s1.DeviceID, s2.DeviceID)

	require.NoError(t, svc.Logout(ctx))
	s3, err := svc.VerifyCode(ctx, "jane@example.org", "333333")
	require.NoError(t, err)
	assert.NotEqual(t, s1.DeviceID, s3.DeviceID)
}

func TestAuthService_RedeemMagicLink(t *testing.T) {
	ctx := context.Background()
	db := setupAuthDB(t)
	token := mintToken(t, "jane@example.org", time.Now().Add(time.Hour))
	client := &fakeClient{}
	svc := NewAuthService(client, db)

	s, err := svc.RedeemMagicLink(ctx, "jobpilot://auth/verify?token="+token)
	require.NoError(t, err)
	// email comes from the token subject
	assert.Equal(t, "jane@example.org", s.Email)
	assert.Equal(t, token, s.AccessToken)

	_, err = svc.RedeemMagicLink(ctx, "mailto:someone@example.org")
	require.ErrorIs(t, err, ErrBadMagicLink)
}

func TestAuthService_Restore(t *testing.T) {
	ctx := context.Background()
	db := setupAuthDB(t)

	t.Run("no session", func(t *testing.T) {
		svc := NewAuthService(&fakeClient{}, db)
		_, err := svc.Restore(ctx)
		require.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("valid session", func(t *testing.T) {
		client := &fakeClient{token: mintToken(t, "jane@example.org", time.Now().Add(time.Hour))}
		svc := NewAuthService(client, db)
		_, err := svc.VerifyCode(ctx, "jane@example.org", "123456")
		require.NoError(t, err)

		client2 := &fakeClient{}
		s, err := NewAuthService(client2, db).Restore(ctx)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.org", s.Email)
		assert.Equal(t, client.token, s.AccessToken)
		require.Equal(t, []string{client.token}, client2.authorized)
	})

	t.Run("expired session", func(t *testing.T) {
		client := &fakeClient{token: mintToken(t, "jane@example.org", time.Now().Add(time.Hour))}
		svc := NewAuthService(client, db).(*authService)
		_, err := svc.VerifyCode(ctx, "jane@example.org", "123456")
		require.NoError(t, err)

		svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = svc.Restore(ctx)
		require.ErrorIs(t, err, ErrSessionExpired)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	db := setupAuthDB(t)
	client := &fakeClient{token: mintToken(t, "jane@example.org", time.Now().Add(time.Hour))}
	svc := NewAuthService(client, db)

	_, err := svc.VerifyCode(ctx, "jane@example.org", "123456")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	// the client token is cleared last
	require.Equal(t, []string{client.token, ""}, client.authorized)

	_, err = svc.Restore(ctx)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestAuthService_SignUpAndRequestCode(t *testing.T) {
	db := setupAuthDB(t)
	client := &fakeClient{}
	svc := NewAuthService(client, db)

	require.NoError(t, svc.SignUp(context.Background(), "jane@example.org", []byte("s3cret")))
	require.NoError(t, svc.RequestCode(context.Background(), "jane@example.org"))
	assert.Equal(t, []string{"jane@example.org"}, client.signedUp)
	assert.Equal(t, []string{"jane@example.org"}, client.otpSentTo)
}
