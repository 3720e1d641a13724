package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIngredients_Shapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Ingredients
	}{
		{
			name: "structured list",
			raw:  `[{"name":"Flour","amount":"200","unit":"g"},{"name":"Egg","amount":2,"unit":"pcs"}]`,
			want: Ingredients{{Name: "Flour", Amount: "200", Unit: "g"}, {Name: "Egg", Amount: "2", Unit: "pcs"}},
		},
		{
			name: "structured list with missing fields",
			raw:  `[{"name":"Salt"}]`,
			want: Ingredients{{Name: "Salt", Amount: "", Unit: ""}},
		},
		{
			name: "json encoded string",
			raw:  `"[{\"name\":\"Milk\",\"amount\":\"0.5\",\"unit\":\"l\"}]"`,
			want: Ingredients{{Name: "Milk", Amount: "0.5", Unit: "l"}},
		},
		{
			name: "delimited free text",
			raw:  `"egg, sugar; flour"`,
			want: Ingredients{{Name: "egg"}, {Name: "sugar"}, {Name: "flour"}},
		},
		{
			name: "empty segments dropped",
			raw:  `" egg ,, ; sugar ;"`,
			want: Ingredients{{Name: "egg"}, {Name: "sugar"}},
		},
		{
			name: "broken json string falls back to splitting",
			raw:  `"[not json, really"`,
			want: Ingredients{{Name: "[not json"}, {Name: "really"}},
		},
		{
			name: "list of strings",
			raw:  `["butter", " ", "honey"]`,
			want: Ingredients{{Name: "butter"}, {Name: "honey"}},
		},
		{
			name: "alternative keys",
			raw:  `[{"ingredient":"Rice","quantity":1.5,"unit":"kg"}]`,
			want: Ingredients{{Name: "Rice", Amount: "1.5", Unit: "kg"}},
		},
		{name: "null", raw: `null`, want: Ingredients{}},
		{name: "number", raw: `42`, want: Ingredients{}},
		{name: "empty string", raw: `""`, want: Ingredients{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeIngredients([]byte(tt.raw))
			assert.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestNormalizeIngredients_CardinalityAcrossShapes(t *testing.T) {
	names := []string{"egg", "sugar", "flour", "butter"}

	structured, err := json.Marshal([]Ingredient{
		{Name: names[0], Amount: "2"}, {Name: names[1], Amount: "100"},
		{Name: names[2], Amount: "200"}, {Name: names[3], Amount: "50"},
	})
	require.NoError(t, err)

	encoded, err := json.Marshal(string(structured))
	require.NoError(t, err)

	text, err := json.Marshal("egg, sugar;flour ; butter")
	require.NoError(t, err)

	for name, raw := range map[string][]byte{"structured": structured, "encoded": encoded, "text": text} {
		t.Run(name, func(t *testing.T) {
			got := NormalizeIngredients(raw)
			require.Len(t, got, len(names))
			assert.Equal(t, names, got.Names())
			for _, ing := range got {
				assert.NotEmpty(t, ing.Name)
			}
		})
	}
}

func TestIngredients_UnmarshalNeverFails(t *testing.T) {
	var r struct {
		Ingredients Ingredients `json:"ingredients"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"ingredients": {"unexpected": true}}`), &r))
	assert.Empty(t, r.Ingredients)

	require.NoError(t, json.Unmarshal([]byte(`{"ingredients": false}`), &r))
	assert.Empty(t, r.Ingredients)
}

func TestIngredients_Text(t *testing.T) {
	ings := Ingredients{{Name: "Egg"}, {Name: "Brown Sugar"}}
	assert.Equal(t, "egg, brown sugar", ings.Text())
}
