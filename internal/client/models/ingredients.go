package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Ingredient is a single normalized ingredient line. Amount is kept as text:
// it is usually numeric but may be free text such as "to taste".
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Ingredients decodes from any of the supported source shapes and never
// fails to decode.
type Ingredients []Ingredient

func (i *Ingredients) UnmarshalJSON(b []byte) error {
	*i = NormalizeIngredients(b)
	return nil
}

// Names returns the ingredient names in order.
func (i Ingredients) Names() []string {
	names := make([]string, 0, len(i))
	for _, ing := range i {
		names = append(names, ing.Name)
	}
	return names
}

// Text joins the ingredient names into a single lowercase string used for
// substring search.
func (i Ingredients) Text() string {
	return strings.ToLower(strings.Join(i.Names(), ", "))
}

// NormalizeIngredients converts a raw JSON value into an ordered ingredient
// list. Arrays are taken item by item, strings are parsed with
// ParseIngredients and anything else yields an empty list.
func NormalizeIngredients(raw []byte) Ingredients {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Ingredients{}
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return Ingredients{}
		}
		return ingredientsFromItems(items)
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Ingredients{}
		}
		return ParseIngredients(s)
	case '{':
		return ingredientsFromItems([]json.RawMessage{raw})
	default:
		return Ingredients{}
	}
}

// ParseIngredients accepts either a JSON-encoded list or free text split on
// commas and semicolons. Segments are trimmed and empty ones dropped.
func ParseIngredients(s string) Ingredients {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") {
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(s), &items); err == nil {
			return ingredientsFromItems(items)
		}
	}

	segments := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	out := make(Ingredients, 0, len(segments))
	for _, seg := range segments {
		if name := strings.TrimSpace(seg); name != "" {
			out = append(out, Ingredient{Name: name})
		}
	}
	return out
}

func ingredientsFromItems(items []json.RawMessage) Ingredients {
	out := make(Ingredients, 0, len(items))
	for _, item := range items {
		ing, ok := ingredientFromItem(item)
		if !ok {
			continue
		}
		out = append(out, ing)
	}
	return out
}

func ingredientFromItem(item json.RawMessage) (Ingredient, bool) {
	item = bytes.TrimSpace(item)
	if len(item) == 0 {
		return Ingredient{}, false
	}

	var ing Ingredient
	switch item[0] {
	case '"':
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			return Ingredient{}, false
		}
		ing.Name = strings.TrimSpace(s)
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return Ingredient{}, false
		}
		ing.Name = strings.TrimSpace(firstScalar(fields, "name", "ingredient", "title"))
		ing.Amount = strings.TrimSpace(firstScalar(fields, "amount", "quantity"))
		ing.Unit = strings.TrimSpace(firstScalar(fields, "unit"))
	default:
		return Ingredient{}, false
	}

	return ing, ing.Name != ""
}

// firstScalar returns the first present key rendered as text. Numbers keep
// their literal form ("1.5"); null, objects and arrays count as absent.
func firstScalar(fields map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if s, ok := scalarText(raw); ok {
			return s
		}
	}
	return ""
}

func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", false
		}
		return n.String(), true
	default:
		return "", false
	}
}
