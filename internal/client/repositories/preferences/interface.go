package preferences

import "context"

type Repository interface {
	// Get returns ("", false, nil) when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Take returns the value and removes the key in one statement.
	Take(ctx context.Context, key string) (string, bool, error)
	List(ctx context.Context) (map[string]string, error)
}
