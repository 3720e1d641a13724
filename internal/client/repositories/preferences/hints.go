package preferences

import "context"

const navigationHintKey = "default_view"

// NavigationHints keeps the single pending destination used after leaving a
// recipe detail or after logging in. Reading a hint consumes it.
type NavigationHints struct {
	repo Repository
}

func NewNavigationHints(repo Repository) *NavigationHints {
	return &NavigationHints{repo: repo}
}

// Put records view as the pending destination, replacing any previous one.
func (h *NavigationHints) Put(ctx context.Context, view string) error {
	return h.repo.Set(ctx, navigationHintKey, view)
}

// Take returns the pending destination, or "" when none is set, and clears it.
func (h *NavigationHints) Take(ctx context.Context) (string, error) {
	v, _, err := h.repo.Take(ctx, navigationHintKey)
	return v, err
}

// Clear drops the pending destination without reading it.
func (h *NavigationHints) Clear(ctx context.Context) error {
	return h.repo.Delete(ctx, navigationHintKey)
}
