package controller

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cookbook/internal/client/client"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
	"github.com/dmitrijs2005/cookbook/internal/client/repositories/preferences"
	"github.com/dmitrijs2005/cookbook/internal/client/services"
	"github.com/dmitrijs2005/cookbook/internal/client/storage"
	"github.com/dmitrijs2005/cookbook/internal/logging"
)

// fakeAPI implements the parts of client.Client the controller uses.
type fakeAPI struct {
	client.Client

	mu sync.Mutex

	recipes    []models.Recipe
	recipesErr error
	// block, when set, makes Recipes wait for a value after signalling started.
	block   chan struct{}
	started chan struct{}

	mine    []models.Recipe
	mineErr error

	search        []models.Recipe
	searchErr     error
	searchQueries []string

	filtered  []models.Recipe
	filterErr error

	byID       map[int64]models.Recipe
	recipeErrs map[int64]error
	fetched    []int64

	created   *models.Recipe
	createErr error

	updated   *models.Recipe
	updateErr error

	deleteErr error
	deleted   []int64

	comments   []models.Comment
	commentErr error
	posted     []string

	favorites    models.FavoriteIDs
	favoritesErr error
	added        []int64
	removed      []int64
	addErr       error
	removeErr    error

	users      map[int64]models.User
	byAuthor   map[int64][]models.Recipe
	userUpdate *models.User

	calls []string
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) called(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Recipes(ctx context.Context) ([]models.Recipe, error) {
	f.record("recipes")
	if f.block != nil {
		close(f.started)
		<-f.block
	}
	if f.recipesErr != nil {
		return nil, f.recipesErr
	}
	return cloneRecipes(f.recipes), nil
}

func (f *fakeAPI) MyRecipes(ctx context.Context) ([]models.Recipe, error) {
	f.record("mine")
	if f.mineErr != nil {
		return nil, f.mineErr
	}
	return cloneRecipes(f.mine), nil
}

func (f *fakeAPI) SearchRecipes(ctx context.Context, q string) ([]models.Recipe, error) {
	f.record("search")
	f.searchQueries = append(f.searchQueries, q)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return cloneRecipes(f.search), nil
}

func (f *fakeAPI) FilterRecipes(ctx context.Context, _ models.Filter) ([]models.Recipe, error) {
	f.record("filter")
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	return cloneRecipes(f.filtered), nil
}

func (f *fakeAPI) Recipe(ctx context.Context, id int64) (*models.Recipe, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, id)
	err := f.recipeErrs[id]
	r, ok := f.byID[id]
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, client.ErrNotFound
	}
	return &r, nil
}

func (f *fakeAPI) CreateRecipe(ctx context.Context, p models.Payload) (*models.Recipe, error) {
	f.record("create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	r := *f.created
	return &r, nil
}

func (f *fakeAPI) UpdateRecipe(ctx context.Context, id int64, p models.Payload) (*models.Recipe, error) {
	f.record("update")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	r := *f.updated
	return &r, nil
}

func (f *fakeAPI) DeleteRecipe(ctx context.Context, id int64) error {
	f.record("delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) Comments(ctx context.Context, id int64) ([]models.Comment, error) {
	f.record("comments")
	if f.commentErr != nil {
		return nil, f.commentErr
	}
	return append([]models.Comment{}, f.comments...), nil
}

func (f *fakeAPI) AddComment(ctx context.Context, id int64, text string) (*models.Comment, error) {
	f.record("comment")
	f.posted = append(f.posted, text)
	return &models.Comment{ID: int64(len(f.posted)), RecipeID: id, Text: text}, nil
}

func (f *fakeAPI) Favorites(ctx context.Context) (models.FavoriteIDs, error) {
	f.record("favorites")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.favoritesErr != nil {
		return nil, f.favoritesErr
	}
	return append(models.FavoriteIDs{}, f.favorites...), nil
}

func (f *fakeAPI) AddFavorite(ctx context.Context, id int64) error {
	f.record("add_favorite")
	if f.addErr != nil {
		return f.addErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, id)
	f.favorites = append(f.favorites, id)
	return nil
}

func (f *fakeAPI) RemoveFavorite(ctx context.Context, id int64) error {
	f.record("remove_favorite")
	if f.removeErr != nil {
		return f.removeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, id)
	kept := f.favorites[:0]
	for _, v := range f.favorites {
		if v != id {
			kept = append(kept, v)
		}
	}
	f.favorites = kept
	return nil
}

func (f *fakeAPI) User(ctx context.Context, id int64) (*models.User, error) {
	f.record("user")
	u, ok := f.users[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return &u, nil
}

func (f *fakeAPI) RecipesByAuthor(ctx context.Context, id int64) ([]models.Recipe, error) {
	f.record("by_author")
	return cloneRecipes(f.byAuthor[id]), nil
}

func (f *fakeAPI) UpdateUser(ctx context.Context, id int64, p models.Payload) (*models.User, error) {
	f.record("update_user")
	u := *f.userUpdate
	return &u, nil
}

func cloneRecipes(in []models.Recipe) []models.Recipe {
	if in == nil {
		return []models.Recipe{}
	}
	return append([]models.Recipe{}, in...)
}

type fakeAuth struct {
	current   *models.User
	loginUser *models.User
	loginErr  error
	logoutErr error
	logouts   int
}

func (f *fakeAuth) Restore(ctx context.Context) error { return nil }
func (f *fakeAuth) Current(ctx context.Context) (*models.User, error) {
	return f.current, nil
}
func (f *fakeAuth) Login(ctx context.Context, c models.Credentials) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginUser, nil
}
func (f *fakeAuth) Register(ctx context.Context, r models.Registration) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginUser, nil
}
func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logouts++
	return f.logoutErr
}
func (f *fakeAuth) LastUsername(ctx context.Context) (string, error) { return "", nil }

type recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *recorder) Notify(_ context.Context, n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recorder) kinds() []NoticeKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]NoticeKind, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, n.Kind)
	}
	return out
}

type harness struct {
	ctrl   *Controller
	api    *fakeAPI
	auth   *fakeAuth
	notes  *recorder
	hints  *preferences.NavigationHints
	faker  *gofakeit.Faker
	alice  models.User
	bob    models.User
	nextID int64
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "ctrl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	faker := gofakeit.New(42)
	h := &harness{
		api:   &fakeAPI{byID: map[int64]models.Recipe{}, users: map[int64]models.User{}, byAuthor: map[int64][]models.Recipe{}},
		auth:  &fakeAuth{},
		notes: &recorder{},
		hints: preferences.NewNavigationHints(preferences.NewSQLiteRepository(db)),
		faker: faker,
		alice: models.User{ID: 1, Username: "alice", Email: faker.Email()},
		bob:   models.User{ID: 2, Username: "bob", Email: faker.Email()},
	}

	logger := logging.Discard()
	favs := services.NewFavoriteService(h.api, logger, 4)
	h.ctrl = New(h.api, h.auth, favs, h.hints, h.notes, logger)
	return h
}

// recipe builds a realistic recipe; fn adjusts it.
func (h *harness) recipe(author models.User, fn func(r *models.Recipe)) models.Recipe {
	h.nextID++
	r := models.Recipe{
		ID:          h.nextID,
		Title:       h.faker.Sentence(3),
		Category:    h.faker.RandomString(models.Categories),
		Difficulty:  h.faker.RandomString(models.Difficulties),
		CookingTime: h.faker.Number(5, 180),
		Servings:    4,
		Ingredients: models.Ingredients{
			{Name: h.faker.Vegetable(), Amount: "200", Unit: "g"},
			{Name: h.faker.Fruit(), Amount: "2", Unit: "pcs"},
		},
		Instructions: models.Instructions{{Description: h.faker.Sentence(8)}},
		Author:       models.Author{ID: author.ID, Name: author.Username},
	}
	if fn != nil {
		fn(&r)
	}
	h.api.byID[r.ID] = r
	return r
}

// login puts u in the session without going through the auth modal.
func (h *harness) login(u models.User) {
	h.ctrl.update(func(s *State) { s.User = &u })
}

func ids(recipes []models.Recipe) []int64 {
	out := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}
