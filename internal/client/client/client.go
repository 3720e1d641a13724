package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

// Client is the contract of the recipe API as used by the client.
type Client interface {
	// Me resolves the current session. It returns (nil, nil) when there is
	// no authenticated user.
	Me(ctx context.Context) (*models.User, error)
	Register(ctx context.Context, r models.Registration) (*models.User, error)
	Login(ctx context.Context, c models.Credentials) (*models.User, error)
	Logout(ctx context.Context) error

	Recipes(ctx context.Context) ([]models.Recipe, error)
	MyRecipes(ctx context.Context) ([]models.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error)
	FilterRecipes(ctx context.Context, f models.Filter) ([]models.Recipe, error)
	RecipesByAuthor(ctx context.Context, userID int64) ([]models.Recipe, error)
	Recipe(ctx context.Context, id int64) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, p models.Payload) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, p models.Payload) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error

	Comments(ctx context.Context, recipeID int64) ([]models.Comment, error)
	AddComment(ctx context.Context, recipeID int64, text string) (*models.Comment, error)

	Favorites(ctx context.Context) (models.FavoriteIDs, error)
	AddFavorite(ctx context.Context, recipeID int64) error
	RemoveFavorite(ctx context.Context, recipeID int64) error

	User(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, p models.Payload) (*models.User, error)

	// Cookies returns the session cookies held for the API host.
	Cookies() []*http.Cookie
	// SetCookies installs previously saved session cookies.
	SetCookies(cookies []*http.Cookie)
}
