package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cookbook/internal/client/controller"
	"github.com/dmitrijs2005/cookbook/internal/client/forms"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

var errUsage = errors.New("usage")

func (a *App) usage(text string) error {
	a.println("Usage:", text)
	return errUsage
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(arg), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errUsage
	}
	return id, nil
}

// after shows the new state when op succeeded.
func (a *App) after(err error) error {
	if err == nil {
		a.show()
	}
	return err
}

func (a *App) List(ctx context.Context) error {
	return a.after(a.ctrl.GoToMain(ctx))
}

func (a *App) Mine(ctx context.Context) error {
	return a.after(a.ctrl.GoToMyRecipes(ctx))
}

func (a *App) Book(ctx context.Context) error {
	return a.after(a.ctrl.GoToRecipeBook(ctx))
}

func (a *App) View(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return a.usage("view <id>")
	}
	return a.after(a.ctrl.ViewRecipe(ctx, id))
}

// Back leaves the recipe detail or the profile page.
func (a *App) Back(ctx context.Context) error {
	switch a.ctrl.Snapshot().View {
	case controller.ViewDetail:
		return a.after(a.ctrl.BackToList(ctx))
	case controller.ViewProfile:
		return a.after(a.ctrl.BackFromProfile(ctx))
	default:
		a.show()
		return nil
	}
}

func (a *App) Servings(ctx context.Context, arg string) error {
	if adj := a.ctrl.Snapshot().Servings; adj != nil {
		switch arg {
		case "+":
			arg = strconv.Itoa(adj.Requested() + 1)
		case "-":
			arg = strconv.Itoa(adj.Requested() - 1)
		}
	}
	if err := a.ctrl.SetServings(arg); err != nil {
		if errors.Is(err, controller.ErrNoRecipe) {
			a.println("Open a recipe first: view <id>")
		} else {
			a.println(fmt.Sprintf("Servings must be a number from %d to %d.", models.MinServings, models.MaxServings))
		}
		return err
	}
	a.show()
	return nil
}

func (a *App) Favorite(ctx context.Context, arg string, add bool) error {
	id, err := parseID(arg)
	if err != nil {
		if add {
			return a.usage("fav <id>")
		}
		return a.usage("unfav <id>")
	}
	if add {
		return a.after(a.ctrl.AddFavorite(ctx, id))
	}
	return a.after(a.ctrl.RemoveFavorite(ctx, id))
}

func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return a.usage("delete <id>")
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete recipe #%d? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if !isYes(answer) {
		a.println("Cancelled.")
		return nil
	}
	return a.after(a.ctrl.DeleteRecipe(ctx, id))
}

func (a *App) Search(ctx context.Context, query string) error {
	return a.after(a.ctrl.Search(ctx, query))
}

// Filter asks for the filter panel fields. Categories and ingredient names
// found in the collection are offered as hints.
func (a *App) Filter(ctx context.Context) error {
	if cats := a.ctrl.Categories(); len(cats) > 0 {
		a.println("Categories:", strings.Join(cats, ", "))
	}
	if names := a.ctrl.IngredientSuggestions(); len(names) > 0 {
		a.println("Ingredients:", strings.Join(limit(names, 15), ", "))
	}

	var f forms.FilterForm
	var err error
	if f.Category, err = getSimpleText(a.reader, "Category (empty for any)", a.out); err != nil {
		return err
	}
	if f.Difficulty, err = getSimpleText(a.reader, "Difficulty: "+strings.Join(models.Difficulties, ", ")+" (empty for any)", a.out); err != nil {
		return err
	}
	if f.Include, err = getSimpleText(a.reader, "Must contain (comma separated)", a.out); err != nil {
		return err
	}
	if f.Exclude, err = getSimpleText(a.reader, "Must not contain (comma separated)", a.out); err != nil {
		return err
	}
	return a.after(a.ctrl.ApplyFilters(ctx, f.Filter()))
}

// Comment posts text on the open recipe; without text a multi-line prompt
// is shown.
func (a *App) Comment(ctx context.Context, text string) error {
	if text == "" {
		var err error
		if text, err = getMultiline(a.reader, "Your comment", a.out); err != nil {
			return err
		}
	}
	if err := a.ctrl.AddComment(ctx, text); err != nil {
		if errors.Is(err, controller.ErrNoRecipe) {
			a.println("Open a recipe first: view <id>")
		}
		return err
	}
	a.show()
	return nil
}

func isYes(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "y" || s == "yes"
}

func limit(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func splitErrors(errs forms.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for field, msg := range errs {
		out = append(out, field+": "+msg)
	}
	sort.Strings(out)
	return out
}
