package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/csyeteam03/trace-console/internal/client/api"
	"github.com/csyeteam03/trace-console/internal/client/config"
	"github.com/csyeteam03/trace-console/internal/client/credstore"
	"github.com/csyeteam03/trace-console/internal/client/models"
	"github.com/csyeteam03/trace-console/internal/client/session"
	"github.com/csyeteam03/trace-console/internal/logging"
)

// sessionAPI is the slice of the session controller the views drive.
type sessionAPI interface {
	State() session.State
	Init(ctx context.Context)
	Login(ctx context.Context, creds models.Credentials) error
	Signup(ctx context.Context, req models.UserRequest) error
	Logout()
}

// App is the interactive console. All state it renders comes from the session
// controller and from per-command fetches; App itself caches nothing.
type App struct {
	config *config.Config
	log    logging.Logger

	session     sessionAPI
	instructors api.InstructorAPI
	courses     api.CourseAPI
	lookups     api.LookupAPI
	traces      api.TraceAPI

	reader *bufio.Reader
	notify *notifier
}

// NewApp wires the store, gateway, resource clients and session controller.
func NewApp(cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	store, err := credstore.Open(cfg.StorePath)
	if err != nil {
		return nil, err
	}

	gw := api.NewGateway(cfg.APIBaseURL, store, log)
	auth := api.NewAuthClient(gw, store)

	return &App{
		config:      cfg,
		log:         log,
		session:     session.NewController(store, auth, log),
		instructors: api.NewInstructorClient(gw),
		courses:     api.NewCourseClient(gw),
		lookups:     api.NewLookupClient(gw),
		traces:      api.NewTraceClient(gw),
		reader:      bufio.NewReader(os.Stdin),
		notify:      &notifier{},
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State().Authenticated
}
