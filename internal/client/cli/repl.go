package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	List(ctx context.Context) error
	Mine(ctx context.Context) error
	Book(ctx context.Context) error
	Add(ctx context.Context) error
	View(ctx context.Context, arg string) error
	Back(ctx context.Context) error
	Servings(ctx context.Context, arg string) error
	Favorite(ctx context.Context, arg string, add bool) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	Search(ctx context.Context, query string) error
	Filter(ctx context.Context) error
	Comment(ctx context.Context, text string) error
	Profile(ctx context.Context, arg string) error
	EditProfile(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: (l)ist, view <id>, back, servings <n>, search <text>, filter, profile <id>, register, login, exit"
	helpSession   = "Available commands: (l)ist, mine, book, add, view <id>, back, servings <n>, fav <id>, unfav <id>, " +
		"edit <id>, delete <id>, search <text>, filter, comment [text], profile [id], editprofile, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the cookbook CLI.
//
// It reads a line from reader, parses the first token as the command and
// passes the rest of the line as its argument. The loop exits on EOF, when
// ctx is cancelled or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help              show available commands
//	  - list | l          all recipes
//	  - view <id>         open a recipe
//	  - back              leave the recipe or profile
//	  - servings <n>      scale the open recipe
//	  - search <text>     search, an empty text reloads the list
//	  - filter            category, difficulty and ingredient filter
//	  - profile [id]      a user's page, your own without id
//	  - register | login
//	  - exit | quit
//
//	Logged in:
//	  - mine | book       your recipes | your recipe book
//	  - add               new recipe
//	  - fav <id> | unfav <id>
//	  - edit <id> | delete <id>
//	  - comment [text]    comment on the open recipe
//	  - editprofile
//	  - logout
//
// Errors returned by command handlers are not printed here; the controller
// reports failures as notices and handlers print usage problems themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("%s\ncookbook> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		switch strings.ToLower(cmd) {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSession)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "book":
			_ = a.Book(ctx)

		case "add":
			_ = a.Add(ctx)

		case "view", "show":
			_ = a.View(ctx, arg)

		case "back":
			_ = a.Back(ctx)

		case "servings":
			_ = a.Servings(ctx, arg)

		case "fav":
			_ = a.Favorite(ctx, arg, true)

		case "unfav":
			_ = a.Favorite(ctx, arg, false)

		case "edit":
			_ = a.Edit(ctx, arg)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "search":
			_ = a.Search(ctx, arg)

		case "filter":
			_ = a.Filter(ctx)

		case "comment":
			_ = a.Comment(ctx, arg)

		case "profile":
			_ = a.Profile(ctx, arg)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
