package controller

import (
	"slices"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
	"github.com/dmitrijs2005/cookbook/internal/client/servings"
)

type View string

const (
	ViewMain       View = "main"
	ViewMyRecipes  View = "myRecipes"
	ViewRecipeBook View = "recipeBook"
	ViewDetail     View = "detail"
	ViewProfile    View = "profile"
)

// IsList reports whether v shows a list of recipes.
func (v View) IsList() bool {
	return v == ViewMain || v == ViewMyRecipes || v == ViewRecipeBook
}

// AuthMode selects the form shown by the authentication modal.
type AuthMode string

const (
	AuthLogin    AuthMode = "login"
	AuthRegister AuthMode = "register"
)

// FavoriteStatus tracks an optimistic favorites mutation for one recipe.
type FavoriteStatus int

const (
	FavoriteIdle FavoriteStatus = iota
	FavoritePending
	FavoriteConfirmed
	FavoriteFailed
)

func (s FavoriteStatus) String() string {
	switch s {
	case FavoritePending:
		return "pending"
	case FavoriteConfirmed:
		return "confirmed"
	case FavoriteFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State is a snapshot of everything the client shows. Slices and pointers in
// a snapshot are copies; mutating them does not affect the controller.
type State struct {
	View    View
	User    *models.User
	Loading bool

	// Recipes is the full collection; Displayed is what the active list
	// view shows.
	Recipes   []models.Recipe
	Displayed []models.Recipe

	Selected *models.Recipe
	Servings *servings.Adjuster
	Comments []models.Comment

	Editing *models.Recipe

	Profile       *models.Profile
	ProfileOrigin View

	ShowAuth    bool
	AuthMode    AuthMode
	ShowAddForm bool

	Favorites map[int64]FavoriteStatus
}

func (s State) clone() State {
	out := s
	out.User = clonePtr(s.User)
	out.Recipes = slices.Clone(s.Recipes)
	out.Displayed = slices.Clone(s.Displayed)
	out.Selected = clonePtr(s.Selected)
	out.Editing = clonePtr(s.Editing)
	out.Comments = slices.Clone(s.Comments)
	if s.Servings != nil {
		adj := *s.Servings
		out.Servings = &adj
	}
	if s.Profile != nil {
		p := *s.Profile
		p.Recipes = slices.Clone(p.Recipes)
		out.Profile = &p
	}
	out.Favorites = make(map[int64]FavoriteStatus, len(s.Favorites))
	for k, v := range s.Favorites {
		out.Favorites[k] = v
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// replaceRecipe swaps every recipe with the same id for r.
func replaceRecipe(list []models.Recipe, r models.Recipe) []models.Recipe {
	for i := range list {
		if list[i].ID == r.ID {
			list[i] = r
		}
	}
	return list
}

func removeRecipe(list []models.Recipe, id int64) []models.Recipe {
	return slices.DeleteFunc(list, func(r models.Recipe) bool { return r.ID == id })
}

func findRecipe(list []models.Recipe, id int64) (models.Recipe, bool) {
	for _, r := range list {
		if r.ID == id {
			return r, true
		}
	}
	return models.Recipe{}, false
}
