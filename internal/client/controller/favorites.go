package controller

import "context"

type FavoriteAction int

const (
	FavoriteAdd FavoriteAction = iota
	FavoriteRemove
)

// ToggleFavorite adds a recipe to or removes it from the recipe book.
//
// The IsFavorite flags flip immediately and the recipe is marked pending;
// a failed request reverts the flags and marks it failed. Adding a recipe
// that is already in the book issues no request and returns
// ErrAlreadyFavorite. In the recipeBook view the list is reloaded after a
// successful change.
func (c *Controller) ToggleFavorite(ctx context.Context, id int64, action FavoriteAction) error {
	if !c.requireSession(ctx, "", "Log in to use your recipe book.") {
		return ErrAuthRequired
	}

	add := action == FavoriteAdd
	if add {
		already, err := c.favorites.Contains(ctx, id)
		if err != nil {
			c.logger.Warn(ctx, "could not check favorite status", "recipe_id", id, "error", err)
		} else if already {
			c.setFavorite(id, true, FavoriteConfirmed)
			c.notify(ctx, Notice{Kind: NoticeInfo, Title: "Already in the book", Text: "This recipe is already in your recipe book."})
			return ErrAlreadyFavorite
		}
	}

	prev := c.setFavorite(id, add, FavoritePending)

	c.track()
	var err error
	if add {
		err = c.favorites.Add(ctx, id)
	} else {
		err = c.favorites.Remove(ctx, id)
	}
	c.done()

	if err != nil {
		c.setFavorite(id, prev, FavoriteFailed)
		title := "Could not add to the recipe book"
		if !add {
			title = "Could not remove from the recipe book"
		}
		c.fail(ctx, title, err)
		return err
	}

	c.setFavorite(id, add, FavoriteConfirmed)
	if c.view() == ViewRecipeBook {
		return c.LoadFavorites(ctx)
	}
	return nil
}

func (c *Controller) AddFavorite(ctx context.Context, id int64) error {
	return c.ToggleFavorite(ctx, id, FavoriteAdd)
}

func (c *Controller) RemoveFavorite(ctx context.Context, id int64) error {
	return c.ToggleFavorite(ctx, id, FavoriteRemove)
}

// IsFavorite asks the server whether id is in the recipe book.
func (c *Controller) IsFavorite(ctx context.Context, id int64) bool {
	if c.user() == nil {
		return false
	}
	ok, err := c.favorites.Contains(ctx, id)
	if err != nil {
		c.logger.Warn(ctx, "could not check favorite status", "recipe_id", id, "error", err)
		return false
	}
	return ok
}

// setFavorite sets every cached IsFavorite flag of id and records status.
// It returns the flag held before the change.
func (c *Controller) setFavorite(id int64, flag bool, status FavoriteStatus) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &c.state
	prev := !flag
	for i := range s.Recipes {
		if s.Recipes[i].ID == id {
			prev = s.Recipes[i].IsFavorite
			s.Recipes[i].IsFavorite = flag
		}
	}
	for i := range s.Displayed {
		if s.Displayed[i].ID == id {
			s.Displayed[i].IsFavorite = flag
		}
	}
	if s.Selected != nil && s.Selected.ID == id {
		prev = s.Selected.IsFavorite
		s.Selected.IsFavorite = flag
	}
	if s.Profile != nil {
		for i := range s.Profile.Recipes {
			if s.Profile.Recipes[i].ID == id {
				s.Profile.Recipes[i].IsFavorite = flag
			}
		}
	}
	s.Favorites[id] = status
	return prev
}
