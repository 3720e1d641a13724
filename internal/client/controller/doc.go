// Package controller is the view orchestrator of the recipe client.
//
// A Controller is the single writer of the application state: the full
// recipe collection, the displayed (filtered) subset, the session user, the
// active view and the transient UI flags. Presentation code reads immutable
// snapshots through Snapshot and changes state only by calling Controller
// methods.
//
// # Views
//
//	main -> {myRecipes, recipeBook, profile, detail} -> main
//
// detail is opened from any list view and returns to the list recorded in
// the navigation hint (main when there is none). profile is opened from any
// view and always returns to main; the view it was opened from is kept in
// State.ProfileOrigin.
//
// # Failures
//
// Every failure is reported once through the Notifier and leaves the state
// navigable: loading is always cleared, list loads fall back to the previous
// or an empty result, and mutations rejected by the server change nothing
// locally. Methods still return the error so callers can react to it.
//
// # Stale responses
//
// Each operation that replaces what is on screen takes a new epoch before it
// issues requests. A response is applied only while its epoch is still the
// current one; otherwise it is logged and dropped.
package controller
