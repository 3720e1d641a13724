package models

import (
	"net/url"
	"strings"
)

// Filter is the structured filter submitted from the search panel.
// All predicates are combined with AND; empty fields match everything.
type Filter struct {
	Category   string
	Difficulty string
	Include    []string
	Exclude    []string
}

func (f Filter) IsZero() bool {
	return f.Category == "" && f.Difficulty == "" && len(f.Include) == 0 && len(f.Exclude) == 0
}

// Values encodes the filter as query parameters for GET /api/recipes/filter.
func (f Filter) Values() url.Values {
	v := url.Values{}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Difficulty != "" {
		v.Set("difficulty", f.Difficulty)
	}
	if len(f.Include) > 0 {
		v.Set("ingredients", strings.Join(f.Include, ","))
	}
	if len(f.Exclude) > 0 {
		v.Set("exclude_ingredients", strings.Join(f.Exclude, ","))
	}
	return v
}

// Match applies the filter locally. Category and difficulty match exactly;
// every included term must be a case-insensitive substring of some
// ingredient name and no excluded term may be. Blank terms are ignored.
func (f Filter) Match(r Recipe) bool {
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Difficulty != "" && r.Difficulty != f.Difficulty {
		return false
	}
	for _, term := range f.Include {
		if isBlank(term) {
			continue
		}
		if !hasIngredient(r.Ingredients, term) {
			return false
		}
	}
	for _, term := range f.Exclude {
		if isBlank(term) {
			continue
		}
		if hasIngredient(r.Ingredients, term) {
			return false
		}
	}
	return true
}

// Apply returns the recipes matching the filter, preserving order.
func (f Filter) Apply(recipes []Recipe) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func hasIngredient(ings Ingredients, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	for _, ing := range ings {
		if strings.Contains(strings.ToLower(ing.Name), term) {
			return true
		}
	}
	return false
}

func isBlank(term string) bool { return strings.TrimSpace(term) == "" }
