package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

type sessionResponse struct {
	User  *models.User `json:"user"`
	Error string       `json:"error"`
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var resp sessionResponse
	err := c.getJSON(ctx, "/api/auth/me", nil, &resp)
	if errors.Is(err, ErrUnauthorized) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, r models.Registration) (*models.User, error) {
	return c.session(ctx, "/api/auth/register", r)
}

func (c *HTTPClient) Login(ctx context.Context, cr models.Credentials) (*models.User, error) {
	return c.session(ctx, "/api/auth/login", cr)
}

// session posts credentials and expects {user} or {error}.
func (c *HTTPClient) session(ctx context.Context, path string, in any) (*models.User, error) {
	var resp sessionResponse
	if err := c.sendJSON(ctx, http.MethodPost, path, in, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		if resp.Error != "" {
			return nil, &APIError{Status: http.StatusOK, Message: resp.Error}
		}
		return nil, fmt.Errorf("%w: no user in response", ErrMalformedResponse)
	}
	return resp.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *HTTPClient) recipes(ctx context.Context, path string, query url.Values) ([]models.Recipe, error) {
	var out []models.Recipe
	if err := c.getJSON(ctx, path, query, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Recipe{}
	}
	return out, nil
}

func (c *HTTPClient) Recipes(ctx context.Context) ([]models.Recipe, error) {
	return c.recipes(ctx, "/api/recipes", nil)
}

func (c *HTTPClient) MyRecipes(ctx context.Context) ([]models.Recipe, error) {
	return c.recipes(ctx, "/api/recipes/my", nil)
}

func (c *HTTPClient) SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	return c.recipes(ctx, "/api/recipes/search", url.Values{"q": {query}})
}

func (c *HTTPClient) FilterRecipes(ctx context.Context, f models.Filter) ([]models.Recipe, error) {
	return c.recipes(ctx, "/api/recipes/filter", f.Values())
}

func (c *HTTPClient) RecipesByAuthor(ctx context.Context, userID int64) ([]models.Recipe, error) {
	return c.recipes(ctx, "/api/recipes/user/"+id(userID), nil)
}

func (c *HTTPClient) Recipe(ctx context.Context, recipeID int64) (*models.Recipe, error) {
	var r models.Recipe
	if err := c.getJSON(ctx, "/api/recipes/"+id(recipeID), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) CreateRecipe(ctx context.Context, p models.Payload) (*models.Recipe, error) {
	var r models.Recipe
	if err := c.sendMultipart(ctx, http.MethodPost, "/api/recipes/with-steps", p, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) UpdateRecipe(ctx context.Context, recipeID int64, p models.Payload) (*models.Recipe, error) {
	var r models.Recipe
	path := "/api/recipes/" + id(recipeID) + "/update-with-steps"
	if err := c.sendMultipart(ctx, http.MethodPatch, path, p, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, recipeID int64) error {
	return c.sendJSON(ctx, http.MethodDelete, "/api/recipes/"+id(recipeID), nil, nil)
}

func (c *HTTPClient) Comments(ctx context.Context, recipeID int64) ([]models.Comment, error) {
	var out []models.Comment
	if err := c.getJSON(ctx, "/api/recipes/"+id(recipeID)+"/comments", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Comment{}
	}
	return out, nil
}

func (c *HTTPClient) AddComment(ctx context.Context, recipeID int64, text string) (*models.Comment, error) {
	var out models.Comment
	in := map[string]string{"text": text}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/recipes/"+id(recipeID)+"/comments", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Favorites(ctx context.Context) (models.FavoriteIDs, error) {
	var ids models.FavoriteIDs
	if err := c.getJSON(ctx, "/api/auth/favorites", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

type favoriteRequest struct {
	RecipeID int64 `json:"recipe_id"`
}

func (c *HTTPClient) AddFavorite(ctx context.Context, recipeID int64) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/auth/favorites", favoriteRequest{RecipeID: recipeID}, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, recipeID int64) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/auth/favorites/remove", favoriteRequest{RecipeID: recipeID}, nil)
}

func (c *HTTPClient) User(ctx context.Context, userID int64) (*models.User, error) {
	var u models.User
	if err := c.getJSON(ctx, "/api/users/"+id(userID), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, userID int64, p models.Payload) (*models.User, error) {
	var u models.User
	if err := c.sendMultipart(ctx, http.MethodPatch, "/api/users/"+id(userID), p, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}
