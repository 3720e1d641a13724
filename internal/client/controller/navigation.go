package controller

import "context"

// GoToMain shows the full collection.
func (c *Controller) GoToMain(ctx context.Context) error {
	c.navigate(func(s *State) {
		s.View = ViewMain
		s.ShowAddForm = false
		s.Profile = nil
		s.Selected = nil
		s.Servings = nil
		s.Comments = nil
	})
	return c.LoadCollection(ctx)
}

// GoToMyRecipes shows the user's recipes. When logged out the login modal is
// opened and the view is remembered for after the login.
func (c *Controller) GoToMyRecipes(ctx context.Context) error {
	return c.goToMine(ctx, false)
}

// ShowAddForm opens the recipe form on top of the user's recipes.
func (c *Controller) ShowAddForm(ctx context.Context) error {
	return c.goToMine(ctx, true)
}

func (c *Controller) goToMine(ctx context.Context, withForm bool) error {
	if !c.requireSession(ctx, ViewMyRecipes, "Log in to see your recipes.") {
		return ErrAuthRequired
	}
	c.navigate(func(s *State) {
		s.View = ViewMyRecipes
		s.ShowAddForm = withForm
		s.Profile = nil
		s.Selected = nil
		s.Servings = nil
		s.Comments = nil
	})
	return c.LoadMine(ctx)
}

func (c *Controller) HideAddForm() {
	c.update(func(s *State) { s.ShowAddForm = false })
}

// GoToRecipeBook shows the user's favorites.
func (c *Controller) GoToRecipeBook(ctx context.Context) error {
	if !c.requireSession(ctx, ViewRecipeBook, "Log in to open your recipe book.") {
		return ErrAuthRequired
	}
	c.navigate(func(s *State) {
		s.View = ViewRecipeBook
		s.ShowAddForm = false
		s.Profile = nil
		s.Selected = nil
		s.Servings = nil
		s.Comments = nil
	})
	return c.LoadFavorites(ctx)
}
