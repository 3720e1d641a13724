package controller

import (
	"context"
	"errors"
)

var (
	// ErrAuthRequired is returned by operations that need a session when
	// there is none. The authentication modal is opened instead.
	ErrAuthRequired = errors.New("authentication required")
	// ErrAlreadyFavorite is returned when adding a recipe that is already in
	// the recipe book; no request is issued.
	ErrAlreadyFavorite = errors.New("recipe is already in the recipe book")
	// ErrNotAuthor is returned when editing or deleting someone else's recipe.
	ErrNotAuthor = errors.New("only the author can change this recipe")
	// ErrNoRecipe is returned by detail-view operations when no recipe is open.
	ErrNoRecipe = errors.New("no recipe is open")
)

type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// Notice is a single user-visible message.
type Notice struct {
	Kind  NoticeKind
	Title string
	Text  string
}

// Notifier shows notices to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notice)

func (f NotifierFunc) Notify(ctx context.Context, n Notice) { f(ctx, n) }
