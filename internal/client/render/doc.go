// Package render turns controller state into styled terminal text.
//
// Every function returns a string and has no side effects, except
// TerminalNotifier which writes notices to its writer as they arrive.
// Styling uses lipgloss; when the output is not a terminal the text is
// plain, which is what the tests rely on.
package render
