package controller

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/cookbook/internal/client/client"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
	"github.com/dmitrijs2005/cookbook/internal/client/services"
	"github.com/dmitrijs2005/cookbook/internal/logging"
)

// NavigationHints stores the single pending destination. Take must clear it.
type NavigationHints interface {
	Put(ctx context.Context, view string) error
	Take(ctx context.Context) (string, error)
}

// Controller owns the application state. It is safe for concurrent use, but
// the intended use is one caller issuing one operation at a time.
type Controller struct {
	api       client.Client
	auth      services.AuthService
	favorites services.FavoriteService
	hints     NavigationHints
	notifier  Notifier
	logger    logging.Logger

	mu      sync.Mutex
	state   State
	epoch   uint64
	loading int
}

func New(
	api client.Client,
	auth services.AuthService,
	favorites services.FavoriteService,
	hints NavigationHints,
	notifier Notifier,
	logger logging.Logger,
) *Controller {
	return &Controller{
		api:       api,
		auth:      auth,
		favorites: favorites,
		hints:     hints,
		notifier:  notifier,
		logger:    logger,
		state: State{
			View:      ViewMain,
			AuthMode:  AuthLogin,
			Recipes:   []models.Recipe{},
			Displayed: []models.Recipe{},
			Favorites: map[int64]FavoriteStatus{},
		},
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state.clone()
	s.Loading = c.loading > 0
	return s
}

// Start restores a saved session, probes the identity, loads the collection
// and follows a pending navigation hint.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.auth.Restore(ctx); err != nil {
		c.logger.Warn(ctx, "session restore failed", "error", err)
	}

	u, err := c.auth.Current(ctx)
	if err != nil {
		c.logger.Warn(ctx, "identity probe failed", "error", err)
	}
	c.update(func(s *State) { s.User = u })

	if err := c.LoadCollection(ctx); err != nil {
		return err
	}
	return c.followHint(ctx)
}

// begin starts an operation that replaces what is on screen.
func (c *Controller) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.loading++
	return c.epoch
}

// track counts a request that changes state in place without replacing
// what is on screen.
func (c *Controller) track() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading++
}

// done must be deferred by every caller of begin and track.
func (c *Controller) done() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading > 0 {
		c.loading--
	}
}

// apply runs fn only if no newer operation started since epoch.
func (c *Controller) apply(ctx context.Context, epoch uint64, op string, fn func(s *State)) bool {
	c.mu.Lock()
	current := c.epoch
	if epoch == current {
		fn(&c.state)
	}
	c.mu.Unlock()

	if epoch != current {
		c.logger.Debug(ctx, "discarding stale response", "op", op, "epoch", epoch, "current", current)
		return false
	}
	return true
}

// mutate applies a change the server has confirmed to the held lists. List
// responses already in flight were computed without it and are discarded.
func (c *Controller) mutate(fn func(s *State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	fn(&c.state)
}

func (c *Controller) update(fn func(s *State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.state)
}

// navigate changes the view and invalidates in-flight responses.
func (c *Controller) navigate(fn func(s *State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	fn(&c.state)
}

func (c *Controller) view() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.View
}

func (c *Controller) user() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clonePtr(c.state.User)
}

// requireSession opens the login modal when nobody is logged in. A non-empty
// pending view is stored as the hint followed after a successful login.
func (c *Controller) requireSession(ctx context.Context, pending View, why string) bool {
	if c.user() != nil {
		return true
	}

	c.update(func(s *State) {
		s.ShowAuth = true
		s.AuthMode = AuthLogin
	})
	if pending != "" {
		if err := c.hints.Put(ctx, string(pending)); err != nil {
			c.logger.Warn(ctx, "failed to store navigation hint", "error", err)
		}
	}
	c.notify(ctx, Notice{Kind: NoticeWarning, Title: "Please log in", Text: why})
	return false
}

func (c *Controller) notify(ctx context.Context, n Notice) {
	if c.notifier != nil {
		c.notifier.Notify(ctx, n)
	}
}

// fail logs err and shows it once as an error notice.
func (c *Controller) fail(ctx context.Context, title string, err error) {
	c.logger.Warn(ctx, title, "error", err)
	c.notify(ctx, Notice{Kind: NoticeError, Title: title, Text: client.UserMessage(err)})
}

// favoriteIDs reads the favorites set of the session user. Without a
// session, or when the set cannot be read, it is empty.
func (c *Controller) favoriteIDs(ctx context.Context) models.FavoriteIDs {
	if c.user() == nil {
		return nil
	}
	ids, err := c.favorites.IDs(ctx)
	if err != nil {
		c.logger.Warn(ctx, "could not read favorites", "error", err)
		return nil
	}
	return ids
}

// markFavorites derives IsFavorite for recipes from the favorites set.
func (c *Controller) markFavorites(ctx context.Context, recipes []models.Recipe) []models.Recipe {
	ids := c.favoriteIDs(ctx)
	for i := range recipes {
		recipes[i].IsFavorite = ids.Contains(recipes[i].ID)
	}
	return recipes
}

// applyFavoriteIDs re-derives every cached IsFavorite flag.
func applyFavoriteIDs(s *State, ids models.FavoriteIDs) {
	mark := func(list []models.Recipe) {
		for i := range list {
			list[i].IsFavorite = ids.Contains(list[i].ID)
		}
	}
	mark(s.Recipes)
	mark(s.Displayed)
	if s.Selected != nil {
		s.Selected.IsFavorite = ids.Contains(s.Selected.ID)
	}
	if s.Profile != nil {
		mark(s.Profile.Recipes)
	}
}

// inheritFlags copies IsFavorite from the collection to recipes the server
// returned without it.
func inheritFlags(recipes, collection []models.Recipe) []models.Recipe {
	for i := range recipes {
		if r, ok := findRecipe(collection, recipes[i].ID); ok {
			recipes[i].IsFavorite = r.IsFavorite
		}
	}
	return recipes
}
