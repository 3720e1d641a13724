package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/cookbook/internal/client/controller"
)

// Status renders the one-line status bar: view, session and activity.
func Status(s controller.State) string {
	parts := []string{"view: " + string(s.View)}
	if s.User != nil {
		parts = append(parts, "user: "+s.User.Username)
	} else {
		parts = append(parts, "not logged in")
	}
	if s.View == controller.ViewProfile && s.ProfileOrigin != "" {
		parts = append(parts, "from: "+string(s.ProfileOrigin))
	}
	if s.ShowAddForm {
		parts = append(parts, "add form open")
	}
	if s.ShowAuth {
		parts = append(parts, string(s.AuthMode)+" required")
	}
	if pending := pendingFavorites(s); pending > 0 {
		parts = append(parts, fmt.Sprintf("%d favorite updates pending", pending))
	}
	if s.Loading {
		parts = append(parts, "loading…")
	}
	return statusStyle.Render(" " + strings.Join(parts, " │ ") + " ")
}

func pendingFavorites(s controller.State) int {
	n := 0
	for _, st := range s.Favorites {
		if st == controller.FavoritePending {
			n++
		}
	}
	return n
}

// View renders whatever the state has on screen.
func View(s controller.State) string {
	var body string
	switch s.View {
	case controller.ViewDetail:
		body = RecipeDetail(s)
	case controller.ViewProfile:
		body = Profile(s.Profile, s.User)
	default:
		body = RecipeList(ListTitle(s.View), s.Displayed)
	}
	return body + "\n" + Status(s)
}

func kindName(k controller.NoticeKind) string {
	switch k {
	case controller.NoticeSuccess:
		return "success"
	case controller.NoticeWarning:
		return "warning"
	case controller.NoticeError:
		return "error"
	default:
		return "info"
	}
}

var noticeIcons = map[string]string{
	"info":    "i",
	"success": "✔",
	"warning": "!",
	"error":   "✖",
}

// Notice renders a single notice line.
func Notice(n controller.Notice) string {
	kind := kindName(n.Kind)
	text := fmt.Sprintf("%s %s", noticeIcons[kind], n.Title)
	if n.Text != "" {
		text += ": " + n.Text
	}
	return noticeStyles[kind].Render(text)
}

// TerminalNotifier writes every notice to w on its own line.
type TerminalNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{w: w}
}

func (t *TerminalNotifier) Notify(_ context.Context, n controller.Notice) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, Notice(n))
}
