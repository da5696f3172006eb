package alphafit

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/harssh120/AlphaFit/internal/api"
	"github.com/harssh120/AlphaFit/internal/app"
	"github.com/harssh120/AlphaFit/internal/db"
	"github.com/harssh120/AlphaFit/internal/session"
)

const apiURLEnv = "ALPHAFIT_API_URL"

type cliApp struct {
	store   *sql.DB
	client  *api.Client
	session *session.Manager
}

func withApp(run func(ctx context.Context, a *cliApp) error) error {
	path, err := resolveStorePath()
	if err != nil {
		return err
	}
	if err := app.EnsureStoreDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}

	client := &api.Client{BaseURL: resolveAPIURL(sqldb)}
	mgr := session.NewManager(client, sqldb, slog.Default())
	return run(context.Background(), &cliApp{store: sqldb, client: client, session: mgr})
}

// withSession restores the persisted session before running the command.
// Restoration fully resolves first: either the profile is verified or the
// session is torn down and the command refuses to run.
func withSession(run func(ctx context.Context, a *cliApp) error) error {
	return withApp(func(ctx context.Context, a *cliApp) error {
		if err := a.session.Restore(ctx); err != nil {
			return fmt.Errorf("session could not be restored, log in again: %w", err)
		}
		if a.session.State() != session.StateAuthenticated {
			return fmt.Errorf("not logged in (run 'alphafit login')")
		}
		return run(ctx, a)
	})
}

func resolveStorePath() (string, error) {
	if storePath != "" {
		return storePath, nil
	}
	return app.DefaultStorePath()
}

// resolveAPIURL picks the service base URL: flag, then environment (.env
// honored), then the stored config value, then the client default.
func resolveAPIURL(sqldb *sql.DB) string {
	if strings.TrimSpace(apiURL) != "" {
		return apiURL
	}
	_ = godotenv.Load()
	if env := strings.TrimSpace(os.Getenv(apiURLEnv)); env != "" {
		return env
	}
	if value, ok, err := db.GetConfig(sqldb, db.ConfigAPIURL); err == nil && ok {
		return value
	}
	return ""
}
