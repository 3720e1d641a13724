package controller

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrijs2005/cookbook/internal/client/client"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
	"github.com/dmitrijs2005/cookbook/internal/client/servings"
)

// LoadCollection fetches every recipe into both the collection and the
// displayed list. On failure the previous state is kept.
func (c *Controller) LoadCollection(ctx context.Context) error {
	epoch := c.begin()
	defer c.done()

	recipes, err := c.api.Recipes(ctx)
	if err != nil {
		c.fail(ctx, "Could not load recipes", err)
		return err
	}
	recipes = c.markFavorites(ctx, recipes)

	c.apply(ctx, epoch, "load collection", func(s *State) {
		s.Recipes = recipes
		s.Displayed = slices.Clone(recipes)
	})
	return nil
}

// LoadMine replaces the displayed list with the session user's recipes.
// Without a session the login modal is opened and nothing else changes.
func (c *Controller) LoadMine(ctx context.Context) error {
	if !c.requireSession(ctx, "", "Log in to see your recipes.") {
		return ErrAuthRequired
	}

	epoch := c.begin()
	defer c.done()

	recipes, err := c.api.MyRecipes(ctx)
	if err != nil {
		recipes = []models.Recipe{}
		if errors.Is(err, client.ErrMalformedResponse) {
			c.logger.Warn(ctx, "my recipes: unexpected response", "error", err)
			err = nil
		} else {
			c.fail(ctx, "Could not load your recipes", err)
		}
	}

	c.apply(ctx, epoch, "load mine", func(s *State) {
		s.Displayed = inheritFlags(recipes, s.Recipes)
	})
	return err
}

// LoadFavorites replaces the displayed list with the recipe book: every
// favorite id is resolved concurrently, unresolved ids are dropped and the
// order of the favorites set is kept.
func (c *Controller) LoadFavorites(ctx context.Context) error {
	if !c.requireSession(ctx, "", "Log in to open your recipe book.") {
		return ErrAuthRequired
	}

	epoch := c.begin()
	defer c.done()

	recipes, err := c.loadFavorites(ctx)
	if err != nil {
		recipes = []models.Recipe{}
		if errors.Is(err, client.ErrMalformedResponse) {
			c.logger.Warn(ctx, "favorites: unexpected response", "error", err)
			err = nil
		} else {
			c.fail(ctx, "Could not load your recipe book", err)
		}
	}

	c.apply(ctx, epoch, "load favorites", func(s *State) {
		s.Displayed = recipes
	})
	return err
}

func (c *Controller) loadFavorites(ctx context.Context) ([]models.Recipe, error) {
	ids, err := c.favorites.IDs(ctx)
	if err != nil {
		return nil, err
	}
	recipes, err := c.favorites.Resolve(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i].IsFavorite = true
	}
	return recipes, nil
}

// reload refreshes the list of the active view.
func (c *Controller) reload(ctx context.Context) error {
	switch c.view() {
	case ViewMyRecipes:
		return c.LoadMine(ctx)
	case ViewRecipeBook:
		return c.LoadFavorites(ctx)
	default:
		return c.LoadCollection(ctx)
	}
}

// Search shows recipes matching query. An empty query reloads the active
// view. When the server cannot be reached the list relevant to the active
// view is searched locally.
func (c *Controller) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.reload(ctx)
	}

	epoch := c.begin()
	defer c.done()

	results, err := c.api.SearchRecipes(ctx, query)
	switch {
	case err == nil:
		c.apply(ctx, epoch, "search", func(s *State) {
			s.Displayed = inheritFlags(results, s.Recipes)
		})
		return nil

	case errors.Is(err, client.ErrUnavailable):
		c.logger.Warn(ctx, "search failed, searching locally", "query", query, "error", err)
		c.apply(ctx, epoch, "search", func(s *State) {
			source := s.Recipes
			if s.View == ViewMyRecipes || s.View == ViewRecipeBook {
				source = s.Displayed
			}
			matched := make([]models.Recipe, 0, len(source))
			for _, r := range source {
				if r.MatchesQuery(query) {
					matched = append(matched, r)
				}
			}
			s.Displayed = matched
		})
		return nil

	case errors.Is(err, client.ErrMalformedResponse):
		c.logger.Warn(ctx, "search: unexpected response", "query", query, "error", err)
		c.apply(ctx, epoch, "search", func(s *State) { s.Displayed = []models.Recipe{} })
		return nil

	default:
		c.fail(ctx, "Search failed", err)
		c.apply(ctx, epoch, "search", func(s *State) { s.Displayed = []models.Recipe{} })
		return err
	}
}

// ApplyFilters shows recipes matching f. Any server failure falls back to
// filtering the full collection locally.
func (c *Controller) ApplyFilters(ctx context.Context, f models.Filter) error {
	epoch := c.begin()
	defer c.done()

	results, err := c.api.FilterRecipes(ctx, f)
	if err != nil {
		c.logger.Warn(ctx, "filter failed, filtering locally", "error", err)
		c.apply(ctx, epoch, "filter", func(s *State) {
			s.Displayed = f.Apply(s.Recipes)
		})
		return nil
	}

	c.apply(ctx, epoch, "filter", func(s *State) {
		s.Displayed = inheritFlags(results, s.Recipes)
	})
	return nil
}

// ViewRecipe opens the detail view. The list the user came from is stored
// as the navigation hint used by BackToList.
func (c *Controller) ViewRecipe(ctx context.Context, id int64) error {
	from := c.view()
	epoch := c.begin()
	defer c.done()

	r, err := c.api.Recipe(ctx, id)
	if err != nil {
		c.fail(ctx, "Could not open the recipe", err)
		return err
	}
	r.IsFavorite = c.favoriteIDs(ctx).Contains(r.ID)

	comments, err := c.api.Comments(ctx, id)
	if err != nil {
		c.logger.Warn(ctx, "could not load comments", "recipe_id", id, "error", err)
		comments = []models.Comment{}
	}

	hint := ViewMain
	if from == ViewMyRecipes || from == ViewRecipeBook {
		hint = from
	}

	applied := c.apply(ctx, epoch, "view recipe", func(s *State) {
		s.Selected = r
		s.Servings = servings.New(r.Servings)
		s.Comments = comments
		s.Editing = nil
		s.ShowAddForm = false
		s.View = ViewDetail
	})
	if applied {
		if err := c.hints.Put(ctx, string(hint)); err != nil {
			c.logger.Warn(ctx, "failed to store navigation hint", "error", err)
		}
	}
	return nil
}

// BackToList leaves the detail view for the list named by the navigation
// hint, or main. The hint is consumed.
func (c *Controller) BackToList(ctx context.Context) error {
	if c.view() != ViewDetail {
		return nil
	}

	hint, err := c.hints.Take(ctx)
	if err != nil {
		c.logger.Warn(ctx, "failed to read navigation hint", "error", err)
	}

	target := View(hint)
	if target != ViewMyRecipes && target != ViewRecipeBook {
		target = ViewMain
	}
	if target != ViewMain && c.user() == nil {
		target = ViewMain
	}

	c.navigate(func(s *State) {
		s.View = target
		s.Selected = nil
		s.Servings = nil
		s.Comments = nil
		s.ShowAddForm = false
	})
	return c.reload(ctx)
}

// SetServings changes the serving count of the open recipe. Values outside
// [1, 20] and non-numbers are rejected and the previous count is kept.
func (c *Controller) SetServings(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Servings == nil {
		return ErrNoRecipe
	}
	return c.state.Servings.SetText(text)
}

// CreateRecipe submits a new recipe and adds it to the top of the
// collection and, on main and myRecipes, of the displayed list.
func (c *Controller) CreateRecipe(ctx context.Context, p models.Payload) (*models.Recipe, error) {
	if !c.requireSession(ctx, "", "Log in to add a recipe.") {
		return nil, ErrAuthRequired
	}

	c.track()
	defer c.done()

	created, err := c.api.CreateRecipe(ctx, p)
	if err != nil {
		c.fail(ctx, "Could not create the recipe", err)
		return nil, err
	}

	c.mutate(func(s *State) {
		if created.Author.ID == 0 && s.User != nil {
			created.Author = models.Author{ID: s.User.ID, Name: s.User.Username}
		}
		s.Recipes = append([]models.Recipe{*created}, s.Recipes...)
		if s.View == ViewMain || s.View == ViewMyRecipes {
			s.Displayed = append([]models.Recipe{*created}, s.Displayed...)
		}
		s.ShowAddForm = false
	})
	c.notify(ctx, Notice{Kind: NoticeSuccess, Title: "Recipe added", Text: created.Title})
	return created, nil
}

// lookup finds a recipe among everything held in memory.
func (c *Controller) lookup(id int64) (models.Recipe, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := &c.state
	if s.Selected != nil && s.Selected.ID == id {
		return *s.Selected, true
	}
	if r, ok := findRecipe(s.Displayed, id); ok {
		return r, true
	}
	if r, ok := findRecipe(s.Recipes, id); ok {
		return r, true
	}
	if s.Profile != nil {
		return findRecipe(s.Profile.Recipes, id)
	}
	return models.Recipe{}, false
}

// authorize checks the UI-level author gate for recipe id.
func (c *Controller) authorize(ctx context.Context, id int64, why string) error {
	if !c.requireSession(ctx, "", why) {
		return ErrAuthRequired
	}
	if r, ok := c.lookup(id); ok && !r.IsAuthoredBy(c.user()) {
		c.notify(ctx, Notice{Kind: NoticeWarning, Title: "Not allowed", Text: ErrNotAuthor.Error()})
		return ErrNotAuthor
	}
	return nil
}

// StartEdit opens the edit form for one of the user's recipes.
func (c *Controller) StartEdit(ctx context.Context, id int64) (*models.Recipe, error) {
	if err := c.authorize(ctx, id, "Log in to edit recipes."); err != nil {
		return nil, err
	}

	r, ok := c.lookup(id)
	if !ok {
		c.track()
		fetched, err := c.api.Recipe(ctx, id)
		c.done()
		if err != nil {
			c.fail(ctx, "Could not open the recipe", err)
			return nil, err
		}
		if !fetched.IsAuthoredBy(c.user()) {
			c.notify(ctx, Notice{Kind: NoticeWarning, Title: "Not allowed", Text: ErrNotAuthor.Error()})
			return nil, ErrNotAuthor
		}
		r = *fetched
	}

	c.update(func(s *State) { s.Editing = &r })
	return &r, nil
}

func (c *Controller) CancelEdit() {
	c.update(func(s *State) { s.Editing = nil })
}

// UpdateRecipe submits an edit. On success every in-memory copy of the
// recipe is replaced; a rejected edit changes nothing locally.
func (c *Controller) UpdateRecipe(ctx context.Context, id int64, p models.Payload) error {
	if err := c.authorize(ctx, id, "Log in to edit recipes."); err != nil {
		return err
	}

	c.track()
	defer c.done()

	updated, err := c.api.UpdateRecipe(ctx, id, p)
	if err != nil {
		c.fail(ctx, "Could not update the recipe", err)
		return err
	}
	if updated.ID == 0 {
		updated.ID = id
	}

	c.mutate(func(s *State) {
		if old, ok := findRecipe(s.Recipes, id); ok {
			updated.IsFavorite = old.IsFavorite
		} else if s.Selected != nil && s.Selected.ID == id {
			updated.IsFavorite = s.Selected.IsFavorite
		}

		s.Recipes = replaceRecipe(s.Recipes, *updated)
		s.Displayed = replaceRecipe(s.Displayed, *updated)
		if s.Profile != nil {
			s.Profile.Recipes = replaceRecipe(s.Profile.Recipes, *updated)
		}
		if s.Selected != nil && s.Selected.ID == id {
			s.Selected = clonePtr(updated)
			if s.Servings == nil || s.Servings.Original() != updated.Servings {
				s.Servings = servings.New(updated.Servings)
			}
		}
		s.Editing = nil
	})
	c.notify(ctx, Notice{Kind: NoticeSuccess, Title: "Recipe updated", Text: updated.Title})
	return nil
}

// DeleteRecipe removes a recipe on the server and from every in-memory
// list. When the deleted recipe is open the view returns to a list.
func (c *Controller) DeleteRecipe(ctx context.Context, id int64) error {
	if err := c.authorize(ctx, id, "Log in to delete recipes."); err != nil {
		return err
	}

	c.track()
	err := c.api.DeleteRecipe(ctx, id)
	c.done()
	if err != nil {
		c.fail(ctx, "Could not delete the recipe", err)
		return err
	}

	var wasOpen bool
	c.mutate(func(s *State) {
		s.Recipes = removeRecipe(s.Recipes, id)
		s.Displayed = removeRecipe(s.Displayed, id)
		if s.Profile != nil {
			s.Profile.Recipes = removeRecipe(s.Profile.Recipes, id)
		}
		delete(s.Favorites, id)
		if s.Editing != nil && s.Editing.ID == id {
			s.Editing = nil
		}
		wasOpen = s.View == ViewDetail && s.Selected != nil && s.Selected.ID == id
	})
	c.notify(ctx, Notice{Kind: NoticeSuccess, Title: "Recipe deleted"})

	if wasOpen {
		return c.BackToList(ctx)
	}
	return nil
}

// Categories lists the categories present in the collection in order of
// first appearance.
func (c *Controller) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := map[string]bool{}
	var out []string
	for _, r := range c.state.Recipes {
		if r.Category != "" && !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}

var amountSuffix = regexp.MustCompile(`\s*[-–]\s*\d+.*$`)

// IngredientSuggestions lists the distinct lowercase ingredient names of the
// collection, sorted, with any trailing " - amount" removed.
func (c *Controller) IngredientSuggestions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	set := map[string]struct{}{}
	for _, r := range c.state.Recipes {
		for _, ing := range r.Ingredients {
			name := strings.ToLower(strings.TrimSpace(ing.Name))
			name = strings.TrimSpace(amountSuffix.ReplaceAllString(name, ""))
			if name != "" {
				set[name] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
