package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrUnexpectedShape is returned when a payload is neither of the accepted
// shapes for its type.
var ErrUnexpectedShape = errors.New("unexpected payload shape")

// FavoriteIDs is the favorites set of the current user in server order.
// It decodes from a bare list or from {"favorites": [...]}; list items may be
// numbers, numeric strings or objects carrying "id" or "recipe_id".
type FavoriteIDs []int64

func (f *FavoriteIDs) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return ErrUnexpectedShape
	}

	switch b[0] {
	case '[':
		ids, err := favoriteIDsFromList(b)
		if err != nil {
			return err
		}
		*f = ids
		return nil
	case '{':
		var env struct {
			Favorites json.RawMessage `json:"favorites"`
		}
		if err := json.Unmarshal(b, &env); err != nil {
			return err
		}
		if len(env.Favorites) == 0 || env.Favorites[0] != '[' {
			return ErrUnexpectedShape
		}
		ids, err := favoriteIDsFromList(env.Favorites)
		if err != nil {
			return err
		}
		*f = ids
		return nil
	default:
		return ErrUnexpectedShape
	}
}

// Contains reports whether id is in the set.
func (f FavoriteIDs) Contains(id int64) bool {
	for _, v := range f {
		if v == id {
			return true
		}
	}
	return false
}

func favoriteIDsFromList(b []byte) (FavoriteIDs, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}

	ids := make(FavoriteIDs, 0, len(items))
	for _, item := range items {
		if id, ok := favoriteID(item); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func favoriteID(item json.RawMessage) (int64, bool) {
	item = bytes.TrimSpace(item)
	if len(item) == 0 {
		return 0, false
	}

	var text string
	if item[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return 0, false
		}
		text = firstScalar(fields, "recipe_id", "id")
	} else {
		s, ok := scalarText(item)
		if !ok {
			return 0, false
		}
		text = s
	}

	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
