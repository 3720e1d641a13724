package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cookbook/internal/client/controller"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
	"github.com/dmitrijs2005/cookbook/internal/client/servings"
)

func fakeRecipe(f *gofakeit.Faker, id int64, author models.User) models.Recipe {
	return models.Recipe{
		ID:          id,
		Title:       f.Sentence(3),
		Category:    f.RandomString(models.Categories),
		Difficulty:  f.RandomString(models.Difficulties),
		CookingTime: 45,
		Servings:    4,
		Ingredients: models.Ingredients{
			{Name: "Flour", Amount: "200", Unit: "g"},
			{Name: "Salt", Amount: "to taste"},
		},
		Instructions: models.Instructions{
			{Description: "Mix everything."},
			{Description: "Bake for 30 minutes.", ImageURL: "/uploads/step2.jpg"},
		},
		Author:        models.Author{ID: author.ID, Name: author.Username},
		CommentsCount: 2,
	}
}

func TestRecipeList(t *testing.T) {
	f := gofakeit.New(7)
	alice := models.User{ID: 1, Username: "alice"}
	a := fakeRecipe(f, 1, alice)
	b := fakeRecipe(f, 2, alice)
	b.IsFavorite = true

	out := RecipeList("All recipes", []models.Recipe{a, b})

	assert.Contains(t, out, "All recipes (2)")
	assert.Contains(t, out, "#1 "+a.Title)
	assert.Contains(t, out, "#2 "+b.Title)
	assert.Contains(t, out, "by alice")
	assert.Contains(t, out, "45 min")
	assert.Equal(t, 1, strings.Count(out, heart))
}

func TestRecipeList_Empty(t *testing.T) {
	out := RecipeList("Recipe book", nil)
	assert.Contains(t, out, "Recipe book (0)")
	assert.Contains(t, out, "No recipes found.")
}

func TestRecipeDetail_ScalesAmounts(t *testing.T) {
	f := gofakeit.New(7)
	alice := models.User{ID: 1, Username: "alice"}
	r := fakeRecipe(f, 3, alice)
	adj := servings.New(r.Servings)
	require.NoError(t, adj.Set(8))

	out := RecipeDetail(controller.State{
		View:     controller.ViewDetail,
		Selected: &r,
		Servings: adj,
		Comments: []models.Comment{{Username: "bob", Text: "Great with butter"}},
	})

	assert.Contains(t, out, "Flour 400 g")
	assert.Contains(t, out, "Salt to taste")
	assert.Contains(t, out, "Servings: 8")
	assert.Contains(t, out, "recipe makes 4")
	assert.Contains(t, out, "2. Bake for 30 minutes.")
	assert.Contains(t, out, "image: /uploads/step2.jpg")
	assert.Contains(t, out, "Comments (1)")
	assert.Contains(t, out, "bob: Great with butter")
}

func TestRecipeDetail_AuthorControls(t *testing.T) {
	f := gofakeit.New(7)
	alice := models.User{ID: 1, Username: "alice"}
	bob := models.User{ID: 2, Username: "bob"}
	r := fakeRecipe(f, 5, alice)

	tests := []struct {
		name       string
		user       *models.User
		wantEdit   bool
		wantFavCmd bool
	}{
		{name: "anonymous", user: nil},
		{name: "other user", user: &bob, wantFavCmd: true},
		{name: "author", user: &alice, wantEdit: true, wantFavCmd: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RecipeDetail(controller.State{Selected: &r, User: tt.user, Servings: servings.New(r.Servings)})
			assert.Equal(t, tt.wantEdit, strings.Contains(out, "edit 5"))
			assert.Equal(t, tt.wantEdit, strings.Contains(out, "delete 5"))
			assert.Equal(t, tt.wantFavCmd, strings.Contains(out, "fav 5"))
		})
	}
}

func TestRecipeDetail_MissingServings(t *testing.T) {
	r := models.Recipe{ID: 9, Title: "Tea", Ingredients: models.Ingredients{{Name: "Water", Amount: "250", Unit: "ml"}}}

	out := RecipeDetail(controller.State{Selected: &r, Servings: servings.New(0)})

	assert.Contains(t, out, "Servings: 6")
	assert.Contains(t, out, "cannot be scaled")
	assert.Contains(t, out, "Water 250 ml")
}

func TestRecipeDetail_NothingOpen(t *testing.T) {
	assert.Contains(t, RecipeDetail(controller.State{}), "No recipe is open.")
}

func TestProfile(t *testing.T) {
	f := gofakeit.New(11)
	alice := models.User{ID: 1, Username: "alice", Bio: "Weekend baker"}
	p := &models.Profile{User: alice, Recipes: []models.Recipe{fakeRecipe(f, 1, alice)}}

	own := Profile(p, &alice)
	assert.Contains(t, own, "Weekend baker")
	assert.Contains(t, own, "1 recipes")
	assert.Contains(t, own, "Recipes by alice (1)")
	assert.Contains(t, own, "editprofile")

	other := Profile(p, &models.User{ID: 2})
	assert.NotContains(t, other, "editprofile")
}

func TestStatus(t *testing.T) {
	alice := models.User{ID: 1, Username: "alice"}

	out := Status(controller.State{
		View:          controller.ViewProfile,
		ProfileOrigin: controller.ViewRecipeBook,
		User:          &alice,
		Loading:       true,
		Favorites:     map[int64]controller.FavoriteStatus{1: controller.FavoritePending, 2: controller.FavoriteConfirmed},
	})

	assert.Contains(t, out, "view: profile")
	assert.Contains(t, out, "user: alice")
	assert.Contains(t, out, "from: recipeBook")
	assert.Contains(t, out, "1 favorite updates pending")
	assert.Contains(t, out, "loading")

	anon := Status(controller.State{View: controller.ViewMain, ShowAuth: true, AuthMode: controller.AuthLogin})
	assert.Contains(t, anon, "not logged in")
	assert.Contains(t, anon, "login required")
}

func TestView_PicksBody(t *testing.T) {
	r := models.Recipe{ID: 1, Title: "Pancakes"}

	assert.Contains(t, View(controller.State{View: controller.ViewMyRecipes, Displayed: []models.Recipe{r}}), "My recipes (1)")
	assert.Contains(t, View(controller.State{View: controller.ViewDetail, Selected: &r}), "Ingredients")
	assert.Contains(t, View(controller.State{View: controller.ViewProfile}), "No profile is open.")
}

func TestTerminalNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminalNotifier(&buf)

	n.Notify(context.Background(), controller.Notice{Kind: controller.NoticeError, Title: "Could not load recipes", Text: "Server unavailable"})
	n.Notify(context.Background(), controller.Notice{Kind: controller.NoticeSuccess, Title: "Recipe added"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "✖ Could not load recipes: Server unavailable")
	assert.Contains(t, lines[1], "✔ Recipe added")
}
