package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Author identifies who created a recipe. The API sends it either as a
// plain display name or as an object.
type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (a *Author) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &a.Name)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	a.Name = firstScalar(fields, "name", "username")
	if raw, ok := fields["id"]; ok {
		_ = json.Unmarshal(raw, &a.ID)
	}
	return nil
}

// StepImage links an uploaded image to a zero-based instruction index.
type StepImage struct {
	StepIndex int    `json:"step_index"`
	ImageURL  string `json:"image_url"`
}

type Recipe struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Category       string       `json:"category"`
	Difficulty     string       `json:"difficulty"`
	CookingTime    int          `json:"cooking_time"`
	Servings       int          `json:"servings"`
	Ingredients    Ingredients  `json:"ingredients"`
	Instructions   Instructions `json:"instructions"`
	Author         Author       `json:"author"`
	ImageURL       string       `json:"image_url,omitempty"`
	StepImages     []StepImage  `json:"step_images,omitempty"`
	FavoritesCount int          `json:"favorites_count"`
	CommentsCount  int          `json:"comments_count"`
	Views          int          `json:"views"`
	Rating         float64      `json:"rating"`
	CreatedAt      string       `json:"created_at,omitempty"`
	UpdatedAt      string       `json:"updated_at,omitempty"`

	// IsFavorite is derived from the current user's favorites set.
	IsFavorite bool `json:"-"`
}

func (r *Recipe) UnmarshalJSON(b []byte) error {
	type plain Recipe
	aux := struct {
		*plain
		AuthorID *int64 `json:"author_id"`
		Likes    *int   `json:"likes"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	if aux.AuthorID != nil {
		r.Author.ID = *aux.AuthorID
	}
	if r.FavoritesCount == 0 && aux.Likes != nil {
		r.FavoritesCount = *aux.Likes
	}
	r.attachStepImages()
	return nil
}

func (r *Recipe) attachStepImages() {
	for _, si := range r.StepImages {
		if si.StepIndex < 0 || si.StepIndex >= len(r.Instructions) {
			continue
		}
		if r.Instructions[si.StepIndex].ImageURL == "" {
			r.Instructions[si.StepIndex].ImageURL = si.ImageURL
		}
	}
}

// IsAuthoredBy reports whether u wrote the recipe. A nil user authors nothing.
func (r Recipe) IsAuthoredBy(u *User) bool {
	return u != nil && r.Author.ID != 0 && r.Author.ID == u.ID
}

// MatchesQuery reports whether the lowercase query is a substring of the
// title, the ingredient text or the category.
func (r Recipe) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(r.Ingredients.Text(), q) ||
		strings.Contains(strings.ToLower(r.Category), q)
}
