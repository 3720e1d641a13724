package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_UnmarshalServerShape(t *testing.T) {
	raw := `{
		"id": 10,
		"title": "Pancakes",
		"category": "Breakfast",
		"difficulty": "Easy",
		"cooking_time": 20,
		"servings": 4,
		"ingredients": "[{\"name\":\"Flour\",\"amount\":\"200\",\"unit\":\"g\"}]",
		"instructions": [{"description": "Mix"}, {"description": "Fry"}],
		"author": "alice",
		"author_id": 7,
		"likes": 3,
		"comments_count": 2,
		"step_images": [{"step_index": 1, "image_url": "/uploads/fry.jpg"}, {"step_index": 9, "image_url": "/x.jpg"}]
	}`

	var r Recipe
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, int64(10), r.ID)
	assert.Equal(t, Author{ID: 7, Name: "alice"}, r.Author)
	assert.Equal(t, 3, r.FavoritesCount)
	assert.Equal(t, Ingredients{{Name: "Flour", Amount: "200", Unit: "g"}}, r.Ingredients)
	require.Len(t, r.Instructions, 2)
	assert.Empty(t, r.Instructions[0].ImageURL)
	assert.Equal(t, "/uploads/fry.jpg", r.Instructions[1].ImageURL)
	assert.False(t, r.IsFavorite)
}

func TestRecipe_RoundTripKeepsAuthor(t *testing.T) {
	in := Recipe{ID: 1, Title: "Soup", Author: Author{ID: 2, Name: "bob"}, Ingredients: Ingredients{{Name: "water", Amount: "1", Unit: "l"}}}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out Recipe
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in.Author, out.Author)
	assert.Equal(t, in.Ingredients, out.Ingredients)
}

func TestRecipe_MatchesQuery(t *testing.T) {
	r := Recipe{Title: "Apple Pie", Category: "Baking", Ingredients: ParseIngredients("apples, Cinnamon")}

	assert.True(t, r.MatchesQuery("pie"))
	assert.True(t, r.MatchesQuery("CINNAMON"))
	assert.True(t, r.MatchesQuery("bak"))
	assert.True(t, r.MatchesQuery("  "))
	assert.False(t, r.MatchesQuery("chocolate"))
}

func TestRecipe_IsAuthoredBy(t *testing.T) {
	r := Recipe{Author: Author{ID: 5}}
	assert.True(t, r.IsAuthoredBy(&User{ID: 5}))
	assert.False(t, r.IsAuthoredBy(&User{ID: 6}))
	assert.False(t, r.IsAuthoredBy(nil))
	assert.False(t, Recipe{}.IsAuthoredBy(&User{}))
}
