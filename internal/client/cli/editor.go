package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cookbook/internal/client/forms"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

// Add opens the recipe form, asks for every field and creates the recipe.
func (a *App) Add(ctx context.Context) error {
	if err := a.ctrl.ShowAddForm(ctx); err != nil {
		return err
	}

	draft := forms.NewRecipeDraft()
	if err := a.fillDraft(draft); err != nil {
		a.ctrl.HideAddForm()
		return err
	}
	p, err := draft.Submit()
	if err != nil {
		a.printInvalid(err)
		a.ctrl.HideAddForm()
		return err
	}
	if _, err := a.ctrl.CreateRecipe(ctx, p); err != nil {
		return err
	}
	a.show()
	return nil
}

// Edit pre-fills the form from one of the user's recipes and submits the
// changes.
func (a *App) Edit(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return a.usage("edit <id>")
	}
	r, err := a.ctrl.StartEdit(ctx, id)
	if err != nil {
		return err
	}

	draft := forms.NewEditDraft(*r)
	if err := a.fillDraft(draft); err != nil {
		a.ctrl.CancelEdit()
		return err
	}
	p, err := draft.Submit()
	if err != nil {
		a.printInvalid(err)
		a.ctrl.CancelEdit()
		return err
	}
	return a.after(a.ctrl.UpdateRecipe(ctx, id, p))
}

// fillDraft walks the user through the draft. Empty answers keep the
// current values, so an edit only asks for what changes.
func (a *App) fillDraft(d *forms.RecipeDraft) error {
	var err error

	if d.Title, err = a.ask("Title", d.Title); err != nil {
		return err
	}

	a.println("Categories:", strings.Join(models.Categories, ", "))
	if d.Category, err = a.ask("Category", d.Category); err != nil {
		return err
	}
	a.println("Difficulties:", strings.Join(models.Difficulties, ", "))
	if d.Difficulty, err = a.ask("Difficulty", d.Difficulty); err != nil {
		return err
	}
	if d.CookingTime, err = a.ask("Cooking time (minutes)", d.CookingTime); err != nil {
		return err
	}
	if d.Servings, err = a.ask("Servings", d.Servings); err != nil {
		return err
	}

	if err := a.fillIngredients(d); err != nil {
		return err
	}
	if err := a.fillSteps(d); err != nil {
		return err
	}
	return a.fillImages(d)
}

func (a *App) fillIngredients(d *forms.RecipeDraft) error {
	if names := a.ctrl.IngredientSuggestions(); len(names) > 0 {
		a.println("Known ingredients:", strings.Join(limit(names, 15), ", "))
	}
	for _, ing := range d.Ingredients {
		if ing.Name != "" {
			a.println("  current:", ing.Name+"; "+ing.Amount+"; "+ing.Unit)
		}
	}

	prompt := fmt.Sprintf("Ingredients, one per line as name; amount; unit (units: %s, default %s)",
		strings.Join(models.Units, ", "), models.DefaultUnit)
	lines, err := getLines(a.reader, prompt, a.out)
	if err != nil || len(lines) == 0 {
		return err
	}

	d.Ingredients = d.Ingredients[:0]
	for _, line := range lines {
		d.AddIngredient()
		ing := &d.Ingredients[len(d.Ingredients)-1]
		parts := strings.Split(line, ";")
		ing.Name = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			ing.Amount = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
			ing.Unit = strings.TrimSpace(parts[2])
		}
	}
	return nil
}

func (a *App) fillSteps(d *forms.RecipeDraft) error {
	for i, st := range d.Steps {
		if st.Description != "" {
			a.println(fmt.Sprintf("  current %d: %s", i+1, st.Description))
		}
	}

	lines, err := getLines(a.reader, "Steps, one per line", a.out)
	if err != nil || len(lines) == 0 {
		return err
	}

	old := d.Steps
	d.Steps = make([]forms.StepDraft, 0, len(lines))
	for i, line := range lines {
		d.AddStep()
		st := &d.Steps[i]
		st.Description = strings.TrimSpace(line)
		if i < len(old) {
			st.ImageURL = old[i].ImageURL
		}
	}
	return nil
}

// fillImages asks for the dish photo and step photos. Rejected files are
// reported and the previous selection is kept.
func (a *App) fillImages(d *forms.RecipeDraft) error {
	if d.MainImageURL != "" {
		answer, err := getSimpleText(a.reader, "Remove the current photo? (y/N)", a.out)
		if err != nil {
			return err
		}
		d.RemoveMainImage = isYes(answer)
	}

	path, err := getSimpleText(a.reader, "Photo file (empty to skip)", a.out)
	if err != nil {
		return err
	}
	if path != "" {
		if err := d.SetMainImage(path); err != nil {
			a.println("Photo not used:", err)
		}
	}

	lines, err := getLines(a.reader, "Step photos as <step number> <file> (empty to skip)", a.out)
	if err != nil {
		return err
	}
	for _, line := range lines {
		num, file, ok := strings.Cut(strings.TrimSpace(line), " ")
		n, convErr := strconv.Atoi(num)
		if !ok || convErr != nil {
			a.println("Skipping:", line)
			continue
		}
		if err := d.SetStepImage(n-1, strings.TrimSpace(file)); err != nil {
			a.println(fmt.Sprintf("Step %d photo not used: %v", n, err))
		}
	}
	return nil
}
