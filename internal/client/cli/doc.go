// Package cli provides the interactive cookbook command-line client.
//
// It wires configuration, the local sqlite store, the API client, services
// and the controller, then runs a REPL that renders controller state after
// every command. Failures are shown by the controller's notifier; the REPL
// itself only prints usage hints.
//
// Key features:
//   - Browse all recipes, your recipes and your recipe book
//   - Open a recipe and scale it to 1..20 servings
//   - Search and filter, with a local fallback when the server is down
//   - Add, edit and delete your recipes (interactive forms)
//   - Favorites, comments and profiles
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
