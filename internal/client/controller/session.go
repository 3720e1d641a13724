package controller

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

// OpenAuth shows the authentication modal with the given form.
func (c *Controller) OpenAuth(mode AuthMode) {
	c.update(func(s *State) {
		s.ShowAuth = true
		s.AuthMode = mode
	})
}

func (c *Controller) CloseAuth() {
	c.update(func(s *State) { s.ShowAuth = false })
}

// Login opens a session. A view stored while the user was logged out is
// opened afterwards.
func (c *Controller) Login(ctx context.Context, cr models.Credentials) error {
	c.track()
	u, err := c.auth.Login(ctx, cr)
	c.done()
	if err != nil {
		c.fail(ctx, "Login failed", err)
		return err
	}
	return c.signedIn(ctx, u)
}

// Register creates an account and opens a session for it.
func (c *Controller) Register(ctx context.Context, r models.Registration) error {
	c.track()
	u, err := c.auth.Register(ctx, r)
	c.done()
	if err != nil {
		c.fail(ctx, "Registration failed", err)
		return err
	}
	c.notify(ctx, Notice{Kind: NoticeSuccess, Title: "Registration successful", Text: "Welcome, " + u.Username + "!"})
	return c.signedIn(ctx, u)
}

func (c *Controller) signedIn(ctx context.Context, u *models.User) error {
	c.update(func(s *State) {
		s.User = u
		s.ShowAuth = false
	})

	ids := c.favoriteIDs(ctx)
	c.update(func(s *State) { applyFavoriteIDs(s, ids) })

	return c.followHint(ctx)
}

// followHint consumes the navigation hint and opens the session-only view
// it names. Other hints are dropped.
func (c *Controller) followHint(ctx context.Context) error {
	if c.user() == nil {
		return nil
	}

	hint, err := c.hints.Take(ctx)
	if err != nil {
		c.logger.Warn(ctx, "failed to read navigation hint", "error", err)
		return nil
	}

	switch View(hint) {
	case ViewMyRecipes:
		return c.GoToMyRecipes(ctx)
	case ViewRecipeBook:
		return c.GoToRecipeBook(ctx)
	default:
		return nil
	}
}

// Logout closes the session and returns to main with the add form closed.
// If the server does not confirm, the session is kept.
func (c *Controller) Logout(ctx context.Context) error {
	c.track()
	err := c.auth.Logout(ctx)
	c.done()
	if err != nil {
		c.fail(ctx, "Logout failed", err)
		return err
	}

	c.navigate(func(s *State) {
		s.User = nil
		s.View = ViewMain
		s.ShowAddForm = false
		s.Selected = nil
		s.Servings = nil
		s.Comments = nil
		s.Editing = nil
		s.Profile = nil
		s.Favorites = map[int64]FavoriteStatus{}
		applyFavoriteIDs(s, nil)
		s.Displayed = slices.Clone(s.Recipes)
	})
	c.notify(ctx, Notice{Kind: NoticeInfo, Title: "Logged out"})
	return nil
}
