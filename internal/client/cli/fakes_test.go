package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/cookbook/internal/client/controller"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
	"github.com/dmitrijs2005/cookbook/internal/client/servings"
	"github.com/dmitrijs2005/cookbook/internal/logging"
)

// fakeCtrl records calls and keeps a hand-maintained state.
type fakeCtrl struct {
	state controller.State
	calls []string
	err   error

	ids       []int64
	servings  []string
	queries   []string
	filters   []models.Filter
	comments  []string
	creds     []models.Credentials
	regs      []models.Registration
	payloads  []models.Payload
	editing   *models.Recipe
	cancelled int
	hidden    int
}

func (f *fakeCtrl) call(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeCtrl) Snapshot() controller.State      { return f.state }
func (f *fakeCtrl) Start(ctx context.Context) error { return f.call("start") }

func (f *fakeCtrl) GoToMain(ctx context.Context) error       { return f.call("main") }
func (f *fakeCtrl) GoToMyRecipes(ctx context.Context) error  { return f.call("mine") }
func (f *fakeCtrl) GoToRecipeBook(ctx context.Context) error { return f.call("book") }
func (f *fakeCtrl) ShowAddForm(ctx context.Context) error    { return f.call("show_add") }
func (f *fakeCtrl) HideAddForm()                             { f.hidden++ }

func (f *fakeCtrl) ViewRecipe(ctx context.Context, id int64) error {
	f.ids = append(f.ids, id)
	return f.call("view")
}
func (f *fakeCtrl) BackToList(ctx context.Context) error { return f.call("back_to_list") }
func (f *fakeCtrl) SetServings(text string) error {
	f.servings = append(f.servings, text)
	return f.call("servings")
}
func (f *fakeCtrl) AddFavorite(ctx context.Context, id int64) error {
	f.ids = append(f.ids, id)
	return f.call("fav")
}
func (f *fakeCtrl) RemoveFavorite(ctx context.Context, id int64) error {
	f.ids = append(f.ids, id)
	return f.call("unfav")
}

func (f *fakeCtrl) CreateRecipe(ctx context.Context, p models.Payload) (*models.Recipe, error) {
	f.payloads = append(f.payloads, p)
	if err := f.call("create"); err != nil {
		return nil, err
	}
	return &models.Recipe{ID: 100}, nil
}
func (f *fakeCtrl) StartEdit(ctx context.Context, id int64) (*models.Recipe, error) {
	f.ids = append(f.ids, id)
	if err := f.call("start_edit"); err != nil {
		return nil, err
	}
	return f.editing, nil
}
func (f *fakeCtrl) CancelEdit() { f.cancelled++ }
func (f *fakeCtrl) UpdateRecipe(ctx context.Context, id int64, p models.Payload) error {
	f.payloads = append(f.payloads, p)
	return f.call("update")
}
func (f *fakeCtrl) DeleteRecipe(ctx context.Context, id int64) error {
	f.ids = append(f.ids, id)
	return f.call("delete")
}

func (f *fakeCtrl) Search(ctx context.Context, query string) error {
	f.queries = append(f.queries, query)
	return f.call("search")
}
func (f *fakeCtrl) ApplyFilters(ctx context.Context, flt models.Filter) error {
	f.filters = append(f.filters, flt)
	return f.call("filter")
}
func (f *fakeCtrl) Categories() []string            { return []string{"Soups", "Baking"} }
func (f *fakeCtrl) IngredientSuggestions() []string { return []string{"flour", "potato"} }

func (f *fakeCtrl) AddComment(ctx context.Context, text string) error {
	f.comments = append(f.comments, text)
	return f.call("comment")
}

func (f *fakeCtrl) ViewProfile(ctx context.Context, userID int64) error {
	f.ids = append(f.ids, userID)
	return f.call("profile")
}
func (f *fakeCtrl) MyProfile(ctx context.Context) error       { return f.call("my_profile") }
func (f *fakeCtrl) BackFromProfile(ctx context.Context) error { return f.call("back_from_profile") }
func (f *fakeCtrl) UpdateProfile(ctx context.Context, p models.Payload) error {
	f.payloads = append(f.payloads, p)
	return f.call("update_profile")
}

func (f *fakeCtrl) OpenAuth(mode controller.AuthMode) {
	f.state.ShowAuth = true
	f.state.AuthMode = mode
}
func (f *fakeCtrl) CloseAuth() { f.state.ShowAuth = false }
func (f *fakeCtrl) Login(ctx context.Context, c models.Credentials) error {
	f.creds = append(f.creds, c)
	return f.call("login")
}
func (f *fakeCtrl) Register(ctx context.Context, r models.Registration) error {
	f.regs = append(f.regs, r)
	return f.call("register")
}
func (f *fakeCtrl) Logout(ctx context.Context) error { return f.call("logout") }

type fakeUsers struct{ last string }

func (f fakeUsers) LastUsername(ctx context.Context) (string, error) { return f.last, nil }

// newTestApp builds an App over ctrl whose prompts are answered from
// answers in order; passwords come from the same queue.
func newTestApp(t *testing.T, ctrl *fakeCtrl, answers ...string) (*App, *bytes.Buffer) {
	t.Helper()

	queue := append([]string{}, answers...)
	next := func() (string, error) {
		if len(queue) == 0 {
			return "", io.EOF
		}
		v := queue[0]
		queue = queue[1:]
		return v, nil
	}

	origST, origGP, origML, origGL := getSimpleText, getPassword, getMultiline, getLines
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getPassword = func(_ string, _ io.Writer) (string, error) { return next() }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getLines = func(_ *bufio.Reader, _ string, _ io.Writer) ([]string, error) {
		v, err := next()
		if err != nil || v == "" {
			return nil, err
		}
		return strings.Split(v, "\n"), nil
	}
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline, getLines = origST, origGP, origML, origGL
	})

	var out bytes.Buffer
	return &App{
		ctrl:   ctrl,
		users:  fakeUsers{last: "alice"},
		logger: logging.Discard(),
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &out,
	}, &out
}

func openRecipe(ctrl *fakeCtrl, r models.Recipe) {
	ctrl.state.View = controller.ViewDetail
	ctrl.state.Selected = &r
	ctrl.state.Servings = servings.New(r.Servings)
}
