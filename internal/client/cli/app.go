package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/ananyev/jobpilot/internal/client/api"
	"github.com/ananyev/jobpilot/internal/client/config"
	"github.com/ananyev/jobpilot/internal/client/services"
	"github.com/ananyev/jobpilot/internal/client/storage"
	"github.com/ananyev/jobpilot/internal/logging"
)

// App wires the CLI together: configuration, the local client database, the
// API client, and the services the commands call into.
type App struct {
	config  *config.Config
	log     logging.Logger
	client  api.Client
	auth    services.AuthService
	account services.AccountService

	session *services.Session
	resend  *services.ResendGate
	reader  *bufio.Reader
	db      *sql.DB
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)

	return &App{
		config:  c,
		log:     log,
		client:  apiClient,
		auth:    services.NewAuthService(apiClient, db),
		account: services.NewAccountService(apiClient),
		resend:  services.NewResendGate(c.OTPResendInterval),
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
	}, nil
}

// Run restores any cached session and hands control to the REPL. It blocks
// until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Println("jobpilot CLI (type 'help' for commands)")

	s, err := a.auth.Restore(ctx)
	switch {
	case err == nil:
		a.session = &s
		fmt.Printf("Welcome back, %s\n", s.Email)
	case errors.Is(err, services.ErrSessionExpired):
		fmt.Println("Your session has expired, please login again")
	case errors.Is(err, services.ErrNoSession):
		// first run, nothing to restore
	default:
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() error {
	err := a.client.Close()
	if dbErr := a.db.Close(); err == nil {
		err = dbErr
	}
	return err
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Email)
}
