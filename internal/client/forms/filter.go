package forms

import (
	"strings"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

// FilterForm is the search/filter panel. Ingredient lists are typed as
// comma separated text.
type FilterForm struct {
	Query      string
	Category   string
	Difficulty string
	Include    string
	Exclude    string
}

// Filter converts the panel into a models.Filter.
func (f FilterForm) Filter() models.Filter {
	return models.Filter{
		Category:   strings.TrimSpace(f.Category),
		Difficulty: strings.TrimSpace(f.Difficulty),
		Include:    SplitList(f.Include),
		Exclude:    SplitList(f.Exclude),
	}
}

// SplitList splits comma or semicolon separated text, trimming entries and
// dropping empty ones.
func SplitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
