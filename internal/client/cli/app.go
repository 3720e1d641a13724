package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dmitrijs2005/cookbook/internal/client/client"
	"github.com/dmitrijs2005/cookbook/internal/client/config"
	"github.com/dmitrijs2005/cookbook/internal/client/controller"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
	"github.com/dmitrijs2005/cookbook/internal/client/render"
	"github.com/dmitrijs2005/cookbook/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/cookbook/internal/client/services"
	"github.com/dmitrijs2005/cookbook/internal/client/storage"
	"github.com/dmitrijs2005/cookbook/internal/logging"
)

// orchestrator is the part of controller.Controller the App drives.
type orchestrator interface {
	Snapshot() controller.State
	Start(ctx context.Context) error

	GoToMain(ctx context.Context) error
	GoToMyRecipes(ctx context.Context) error
	GoToRecipeBook(ctx context.Context) error
	ShowAddForm(ctx context.Context) error
	HideAddForm()

	ViewRecipe(ctx context.Context, id int64) error
	BackToList(ctx context.Context) error
	SetServings(text string) error
	AddFavorite(ctx context.Context, id int64) error
	RemoveFavorite(ctx context.Context, id int64) error

	CreateRecipe(ctx context.Context, p models.Payload) (*models.Recipe, error)
	StartEdit(ctx context.Context, id int64) (*models.Recipe, error)
	CancelEdit()
	UpdateRecipe(ctx context.Context, id int64, p models.Payload) error
	DeleteRecipe(ctx context.Context, id int64) error

	Search(ctx context.Context, query string) error
	ApplyFilters(ctx context.Context, f models.Filter) error
	Categories() []string
	IngredientSuggestions() []string

	AddComment(ctx context.Context, text string) error

	ViewProfile(ctx context.Context, userID int64) error
	MyProfile(ctx context.Context) error
	BackFromProfile(ctx context.Context) error
	UpdateProfile(ctx context.Context, p models.Payload) error

	OpenAuth(mode controller.AuthMode)
	CloseAuth()
	Login(ctx context.Context, c models.Credentials) error
	Register(ctx context.Context, r models.Registration) error
	Logout(ctx context.Context) error
}

// usernames supplies the login prompt default.
type usernames interface {
	LastUsername(ctx context.Context) (string, error)
}

type App struct {
	config *config.Config
	ctrl   orchestrator
	users  usernames
	logger logging.Logger
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database and wires the API client, services and
// controller according to c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel)

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.APIBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithRateLimit(c.RequestsPerSecond, int(math.Ceil(c.RequestsPerSecond))),
		client.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	auth := services.NewAuthService(api, db, logger)
	favorites := services.NewFavoriteService(api, logger, c.MaxParallelFetches)
	hints := preferences.NewNavigationHints(preferences.NewSQLiteRepository(db))
	notifier := render.NewTerminalNotifier(os.Stdout)

	return &App{
		config: c,
		ctrl:   controller.New(api, auth, favorites, hints, notifier, logger),
		users:  auth,
		logger: logger,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run loads the initial state and serves the REPL until the user exits or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	if err := a.ctrl.Start(ctx); err != nil {
		a.logger.Warn(ctx, "initial load failed", "error", err)
	}
	a.show()

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(context.Background(), "closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.Snapshot().User != nil
}

func (a *App) status() string {
	return render.Status(a.ctrl.Snapshot())
}

// show prints whatever the controller has on screen.
func (a *App) show() {
	fmt.Fprintln(a.out, render.View(a.ctrl.Snapshot()))
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
