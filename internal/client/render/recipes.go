package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/cookbook/internal/client/controller"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

const heart = "♥"

// RecipeCard renders the summary shown in recipe lists.
func RecipeCard(r models.Recipe) string {
	title := titleStyle.Render(fmt.Sprintf("#%d %s", r.ID, r.Title))
	if r.IsFavorite {
		title += " " + favoriteStyle.Render(heart)
	}

	lines := []string{
		title,
		primaryStyle.Render(facts(r)),
		secondaryStyle.Render(fmt.Sprintf("by %s · %d comments · %d favorites", authorName(r.Author), r.CommentsCount, r.FavoritesCount)),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// RecipeList renders a titled list of cards. An empty list renders a hint
// instead of nothing.
func RecipeList(title string, recipes []models.Recipe) string {
	parts := []string{headerStyle.Render(fmt.Sprintf("%s (%d)", title, len(recipes)))}
	if len(recipes) == 0 {
		parts = append(parts, secondaryStyle.Render("No recipes found."))
		return strings.Join(parts, "\n")
	}
	for _, r := range recipes {
		parts = append(parts, RecipeCard(r))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ListTitle names the list shown by a view.
func ListTitle(v controller.View) string {
	switch v {
	case controller.ViewMyRecipes:
		return "My recipes"
	case controller.ViewRecipeBook:
		return "Recipe book"
	default:
		return "All recipes"
	}
}

// RecipeDetail renders the open recipe with amounts scaled to the
// requested servings. Edit and delete controls are shown to the author
// only.
func RecipeDetail(s controller.State) string {
	if s.Selected == nil {
		return secondaryStyle.Render("No recipe is open.")
	}
	r := *s.Selected

	var b strings.Builder
	title := titleStyle.Render(r.Title)
	if r.IsFavorite {
		title += " " + favoriteStyle.Render(heart+" in your recipe book")
	}
	b.WriteString(title + "\n")
	b.WriteString(primaryStyle.Render(facts(r)) + "\n")
	b.WriteString(secondaryStyle.Render("by "+authorName(r.Author)) + "\n")
	if r.ImageURL != "" {
		b.WriteString(secondaryStyle.Render("image: "+r.ImageURL) + "\n")
	}

	b.WriteString("\n" + servingsLine(s) + "\n")

	b.WriteString("\n" + headerStyle.Render("Ingredients") + "\n")
	if len(r.Ingredients) == 0 {
		b.WriteString(secondaryStyle.Render("  none listed") + "\n")
	}
	for _, ing := range r.Ingredients {
		amount := ing.Amount
		if s.Servings != nil {
			amount = s.Servings.Amount(amount)
		}
		b.WriteString(primaryStyle.Render("  - "+ingredientLine(ing.Name, amount, ing.Unit)) + "\n")
	}

	b.WriteString("\n" + headerStyle.Render("Instructions") + "\n")
	for i, step := range r.Instructions {
		b.WriteString(primaryStyle.Render(fmt.Sprintf("  %d. %s", i+1, step.Description)) + "\n")
		if step.ImageURL != "" {
			b.WriteString(secondaryStyle.Render("     image: "+step.ImageURL) + "\n")
		}
	}

	b.WriteString("\n" + controls(s, r) + "\n")
	b.WriteString("\n" + Comments(s.Comments))
	return b.String()
}

// Comments renders a comment thread in posting order.
func Comments(list []models.Comment) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Comments (%d)", len(list))))
	if len(list) == 0 {
		b.WriteString("\n" + secondaryStyle.Render("  Be the first to comment."))
	}
	for _, c := range list {
		who := c.Username
		if who == "" {
			who = "anonymous"
		}
		line := fmt.Sprintf("  %s: %s", who, c.Text)
		if c.CreatedAt != "" {
			line += secondaryStyle.Render("  (" + c.CreatedAt + ")")
		}
		b.WriteString("\n" + primaryStyle.Render(line))
	}
	return b.String()
}

func servingsLine(s controller.State) string {
	if s.Servings == nil {
		return ""
	}
	if !s.Servings.Enabled() {
		return primaryStyle.Render(fmt.Sprintf("Servings: %d", s.Servings.Requested())) +
			secondaryStyle.Render(" (amounts cannot be scaled)")
	}
	return primaryStyle.Render(fmt.Sprintf("Servings: %d", s.Servings.Requested())) +
		secondaryStyle.Render(fmt.Sprintf(" (recipe makes %d)", s.Servings.Original()))
}

func controls(s controller.State, r models.Recipe) string {
	cmds := []string{"back", "servings <n>"}
	if s.User != nil {
		if r.IsFavorite {
			cmds = append(cmds, fmt.Sprintf("unfav %d", r.ID))
		} else {
			cmds = append(cmds, fmt.Sprintf("fav %d", r.ID))
		}
		cmds = append(cmds, "comment <text>")
	}
	if r.IsAuthoredBy(s.User) {
		cmds = append(cmds, fmt.Sprintf("edit %d", r.ID), fmt.Sprintf("delete %d", r.ID))
	}
	return controlStyle.Render(strings.Join(cmds, " | "))
}

func facts(r models.Recipe) string {
	parts := make([]string, 0, 4)
	if r.Category != "" {
		parts = append(parts, r.Category)
	}
	if r.Difficulty != "" {
		parts = append(parts, r.Difficulty)
	}
	if r.CookingTime > 0 {
		parts = append(parts, fmt.Sprintf("%d min", r.CookingTime))
	}
	if r.Servings > 0 {
		parts = append(parts, fmt.Sprintf("%d servings", r.Servings))
	}
	return strings.Join(parts, " · ")
}

func ingredientLine(name, amount, unit string) string {
	parts := []string{name}
	if amount != "" {
		parts = append(parts, amount)
	}
	if unit != "" && amount != "" {
		parts = append(parts, unit)
	}
	return strings.Join(parts, " ")
}

func authorName(a models.Author) string {
	if a.Name == "" {
		return "unknown"
	}
	return a.Name
}
