package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/SaraBabic/PayTrackApp/internal/client/api"
	"github.com/SaraBabic/PayTrackApp/internal/client/config"
	"github.com/SaraBabic/PayTrackApp/internal/client/models"
	"github.com/SaraBabic/PayTrackApp/internal/client/services"
	"github.com/SaraBabic/PayTrackApp/internal/client/session"
	"github.com/SaraBabic/PayTrackApp/internal/client/storage"
	"github.com/SaraBabic/PayTrackApp/internal/logging"
)

// App wires the screens to the API client, the auth service, and the
// terminal. One screen runs at a time; each screen fetches its own data on
// entry and never caches it beyond its own invocation.
type App struct {
	config *config.Config
	api    api.Client
	auth   services.AuthService
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger

	db   *sql.DB
	user *models.User
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	apiClient := api.NewRestClient(c.APIBaseURL, c.RequestTimeout)
	auth := services.NewAuthService(apiClient, session.NewSQLiteRepository(db))

	return &App{
		config: c,
		api:    apiClient,
		auth:   auth,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    log,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
