package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/cookbook/internal/client/client"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
	"github.com/dmitrijs2005/cookbook/internal/logging"
)

// FavoriteService queries and mutates the current user's favorites set.
// The set itself is never cached.
type FavoriteService interface {
	IDs(ctx context.Context) (models.FavoriteIDs, error)
	Contains(ctx context.Context, recipeID int64) (bool, error)
	Add(ctx context.Context, recipeID int64) error
	Remove(ctx context.Context, recipeID int64) error
	// Resolve fetches every recipe in ids concurrently and returns the ones
	// that resolved, in the order of ids.
	Resolve(ctx context.Context, ids models.FavoriteIDs) ([]models.Recipe, error)
}

type favoriteService struct {
	client   client.Client
	logger   logging.Logger
	parallel int
}

// NewFavoriteService builds a FavoriteService issuing at most parallel
// concurrent fetches from Resolve (no limit when parallel <= 0).
func NewFavoriteService(client client.Client, logger logging.Logger, parallel int) FavoriteService {
	return &favoriteService{client: client, logger: logger, parallel: parallel}
}

func (s *favoriteService) IDs(ctx context.Context) (models.FavoriteIDs, error) {
	ids, err := s.client.Favorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}
	return ids, nil
}

func (s *favoriteService) Contains(ctx context.Context, recipeID int64) (bool, error) {
	ids, err := s.IDs(ctx)
	if err != nil {
		return false, err
	}
	return ids.Contains(recipeID), nil
}

func (s *favoriteService) Add(ctx context.Context, recipeID int64) error {
	if err := s.client.AddFavorite(ctx, recipeID); err != nil {
		return fmt.Errorf("add favorite %d: %w", recipeID, err)
	}
	return nil
}

func (s *favoriteService) Remove(ctx context.Context, recipeID int64) error {
	if err := s.client.RemoveFavorite(ctx, recipeID); err != nil {
		return fmt.Errorf("remove favorite %d: %w", recipeID, err)
	}
	return nil
}

func (s *favoriteService) Resolve(ctx context.Context, ids models.FavoriteIDs) ([]models.Recipe, error) {
	if len(ids) == 0 {
		return []models.Recipe{}, nil
	}

	results := make([]*models.Recipe, len(ids))

	var g errgroup.Group
	if s.parallel > 0 {
		g.SetLimit(s.parallel)
	}
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			r, err := s.client.Recipe(ctx, id)
			if err != nil {
				s.logger.Warn(ctx, "dropping unresolved favorite", "recipe_id", id, "error", err)
				return nil
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]models.Recipe, 0, len(ids))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}
