package services

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cookbook/internal/client/client"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
	"github.com/dmitrijs2005/cookbook/internal/client/storage"
)

// fakeClient implements the parts of client.Client the services use.
// Calling anything else panics through the nil embedded interface.
type fakeClient struct {
	client.Client

	mu sync.Mutex

	me       *models.User
	meErr    error
	loginErr error
	user     *models.User

	logoutErr error
	logouts   int

	cookies []*http.Cookie

	favorites    models.FavoriteIDs
	favoritesErr error
	added        []int64
	removed      []int64
	addErr       error

	recipes    map[int64]models.Recipe
	recipeErrs map[int64]error
	fetched    []int64
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) { return f.me, f.meErr }

func (f *fakeClient) Login(ctx context.Context, c models.Credentials) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.cookies = []*http.Cookie{{Name: "session_id", Value: "s-" + c.Username, Path: "/"}}
	return f.user, nil
}

func (f *fakeClient) Register(ctx context.Context, r models.Registration) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.cookies = []*http.Cookie{{Name: "session_id", Value: "s-" + r.Username, Path: "/"}}
	return f.user, nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.logouts++
	return f.logoutErr
}

func (f *fakeClient) Cookies() []*http.Cookie { return f.cookies }

func (f *fakeClient) SetCookies(cookies []*http.Cookie) {
	var kept []*http.Cookie
	for _, c := range cookies {
		if c.MaxAge >= 0 {
			kept = append(kept, c)
		}
	}
	f.cookies = kept
}

func (f *fakeClient) Favorites(ctx context.Context) (models.FavoriteIDs, error) {
	return f.favorites, f.favoritesErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, id int64) error {
	f.added = append(f.added, id)
	return f.addErr
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, id int64) error {
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeClient) Recipe(ctx context.Context, id int64) (*models.Recipe, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, id)
	f.mu.Unlock()

	if err := f.recipeErrs[id]; err != nil {
		return nil, err
	}
	r, ok := f.recipes[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return &r, nil
}

var errBoom = errors.New("boom")

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
