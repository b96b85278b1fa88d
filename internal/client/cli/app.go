package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/zap"

	"github.com/Kushagra128/meetingmind-cli/internal/client/api"
	"github.com/Kushagra128/meetingmind-cli/internal/client/assets"
	"github.com/Kushagra128/meetingmind-cli/internal/client/audio"
	"github.com/Kushagra128/meetingmind-cli/internal/client/config"
	"github.com/Kushagra128/meetingmind-cli/internal/client/credentials"
	"github.com/Kushagra128/meetingmind-cli/internal/client/models"
	"github.com/Kushagra128/meetingmind-cli/internal/client/services"
	"github.com/Kushagra128/meetingmind-cli/internal/client/session"
	"github.com/Kushagra128/meetingmind-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// authRunner is the authentication surface the command handlers need.
// Satisfied by *services.AuthService; tests provide a stub.
type authRunner interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.User
	Authenticated(ctx context.Context) (bool, error)
}

type recordingRunner interface {
	List(ctx context.Context) ([]models.Recording, error)
	Get(ctx context.Context, id int64) (*models.Recording, error)
	Delete(ctx context.Context, id int64) error
	UploadAudio(ctx context.Context, path, title string, progress api.ProgressFunc) (int64, error)
	UploadText(ctx context.Context, path, title string, progress api.ProgressFunc) (int64, error)
}

type assetRunner interface {
	FetchAudio(ctx context.Context, recordingID int64) (*assets.Handle, error)
	Download(ctx context.Context, recordingID int64, kind, filename string) (string, error)
}

// recorder is one live recording session from start to navigation.
type recorder interface {
	OnTranscript(fn func(text string))
	OnStateChange(fn func(s session.State))
	Start(ctx context.Context) error
	Stop(ctx context.Context) (session.NavTarget, error)
	Close()
}

type App struct {
	config      *config.Config
	auth        authRunner
	recordings  recordingRunner
	assets      assetRunner
	blobs       assets.BlobStore
	player      *assets.Player
	capturer    audio.Capturer
	newRecorder func() recorder
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := newLogger(c.LogFormat)

	db, err := credentials.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init credential database: %w", err)
	}
	creds := credentials.NewSQLiteStore(db)

	apiClient := api.NewHTTPClient(c.ServerURL, creds, log, api.Options{
		Timeout: c.RequestTimeout,
		OnUnauthorized: func() {
			printlnFn("Session expired, please log in again.")
		},
	})

	blobs, err := assets.NewTempStore("")
	if err != nil {
		return nil, fmt.Errorf("init blob store: %w", err)
	}

	prober := audio.NewFFmpegProber()

	app := &App{
		config:     c,
		auth:       services.NewAuthService(apiClient, creds, log),
		recordings: services.NewRecordingService(apiClient, log),
		assets:     assets.NewService(apiClient, creds, blobs, c.DownloadsDir, log),
		blobs:      blobs,
		player:     assets.NewPlayer(),
		capturer:   prober,
		newRecorder: func() recorder {
			return session.New(apiClient, prober, log, session.WithInterval(c.PollInterval))
		},
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	return app, nil
}

func newLogger(format string) logging.Logger {
	if format == "json" {
		zl, err := zap.NewProduction()
		if err == nil {
			return logging.NewZapLogger(zl)
		}
	}
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	ok, err := a.auth.Authenticated(context.Background())
	return err == nil && ok
}
