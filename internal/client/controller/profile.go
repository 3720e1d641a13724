package controller

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

// ViewProfile opens the profile of userID with the recipes they authored.
// The user and the recipe list are fetched concurrently; a failed recipe
// list shows as empty.
func (c *Controller) ViewProfile(ctx context.Context, userID int64) error {
	epoch := c.begin()
	defer c.done()

	var (
		user    *models.User
		recipes []models.Recipe
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := c.api.User(gctx, userID)
		user = u
		return err
	})
	g.Go(func() error {
		list, err := c.api.RecipesByAuthor(gctx, userID)
		if err != nil {
			c.logger.Warn(ctx, "could not load profile recipes", "user_id", userID, "error", err)
			list = []models.Recipe{}
		}
		recipes = list
		return nil
	})
	if err := g.Wait(); err != nil {
		c.fail(ctx, "Could not open the profile", err)
		return err
	}
	recipes = c.markFavorites(ctx, recipes)

	c.apply(ctx, epoch, "view profile", func(s *State) {
		if s.View != ViewProfile {
			s.ProfileOrigin = s.View
		}
		s.Profile = &models.Profile{User: *user, Recipes: recipes}
		s.View = ViewProfile
		s.ShowAddForm = false
	})
	return nil
}

// MyProfile opens the session user's profile.
func (c *Controller) MyProfile(ctx context.Context) error {
	if !c.requireSession(ctx, "", "Log in to see your profile.") {
		return ErrAuthRequired
	}
	return c.ViewProfile(ctx, c.user().ID)
}

// BackFromProfile always returns to main, whatever view the profile was
// opened from.
func (c *Controller) BackFromProfile(ctx context.Context) error {
	if c.view() != ViewProfile {
		return nil
	}
	c.navigate(func(s *State) {
		s.Profile = nil
		s.View = ViewMain
		s.Displayed = slices.Clone(s.Recipes)
	})
	return nil
}

// UpdateProfile submits the session user's profile form. The session user
// and an open profile of the same user are refreshed.
func (c *Controller) UpdateProfile(ctx context.Context, p models.Payload) error {
	if !c.requireSession(ctx, "", "Log in to edit your profile.") {
		return ErrAuthRequired
	}
	me := c.user()

	c.track()
	updated, err := c.api.UpdateUser(ctx, me.ID, p)
	c.done()
	if err != nil {
		c.fail(ctx, "Could not update the profile", err)
		return err
	}
	if updated.ID == 0 {
		updated.ID = me.ID
	}
	if updated.Username == "" {
		updated.Username = me.Username
	}

	c.update(func(s *State) {
		s.User = updated
		if s.Profile != nil && s.Profile.User.ID == updated.ID {
			s.Profile.User = *updated
		}
	})
	c.notify(ctx, Notice{Kind: NoticeSuccess, Title: "Profile updated"})
	return nil
}
