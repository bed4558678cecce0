// Package cli wires the BrewClub client services into an interactive
// terminal session: session check on start, login/signup prompts, profile
// and avatar views, profile-picture change, and logout.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/dpetrovs/brewclub/internal/client/api"
	"github.com/dpetrovs/brewclub/internal/client/config"
	"github.com/dpetrovs/brewclub/internal/client/credentials"
	"github.com/dpetrovs/brewclub/internal/client/media"
	"github.com/dpetrovs/brewclub/internal/client/picker"
	"github.com/dpetrovs/brewclub/internal/client/services"
	"github.com/dpetrovs/brewclub/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	auth    *services.AuthService
	session *services.SessionService
	profile *services.ProfileService
	upload  *services.UploadService
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	status services.Status
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	db, err := credentials.OpenDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	store := credentials.NewSQLiteStore(db)

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	apiClient := api.NewHTTPClient(cfg.BackendBaseURL, httpClient)

	uploader, err := newUploader(ctx, cfg, httpClient)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	reader := bufio.NewReader(os.Stdin)
	photoPicker := picker.NewFilePicker(reader, os.Stdout)

	return &App{
		config:  cfg,
		db:      db,
		auth:    services.NewAuthService(apiClient, store, log),
		session: services.NewSessionService(apiClient, store, log),
		profile: services.NewProfileService(apiClient, store, log),
		upload:  services.NewUploadService(photoPicker, uploader, apiClient, store, log),
		log:     log,
		reader:  reader,
		out:     os.Stdout,
		status:  services.StatusChecking,
	}, nil
}

func newUploader(ctx context.Context, cfg *config.Config, httpClient *http.Client) (media.Uploader, error) {
	switch cfg.Uploader {
	case config.UploaderS3:
		return media.NewS3Uploader(ctx, media.S3Config{
			Endpoint:      cfg.S3Endpoint,
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			KeyPrefix:     cfg.S3KeyPrefix,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	case config.UploaderHost, "":
		return media.NewHostUploader(cfg.MediaUploadURL, cfg.MediaUploadPreset, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown uploader kind %q", cfg.Uploader)
	}
}

func (a *App) isLoggedIn() bool {
	return a.status == services.StatusAuthenticated
}

// Run performs the start-up session check and hands over to the REPL. The
// surface stays in the "checking" status until the check settles; only then
// is either command set offered.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Checking session...")
	a.status = a.session.Check(ctx)

	if a.isLoggedIn() {
		if subject := a.session.Subject(ctx); subject != "" {
			fmt.Fprintf(a.out, "Welcome back, %s!\n", subject)
		}
	}

	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
