package render

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

// Profile renders a user page. The edit control is shown on the viewer's
// own profile.
func Profile(p *models.Profile, viewer *models.User) string {
	if p == nil {
		return secondaryStyle.Render("No profile is open.")
	}
	u := p.User

	var b strings.Builder
	b.WriteString(titleStyle.Render(u.Username) + "\n")
	if u.Bio != "" {
		b.WriteString(primaryStyle.Render(u.Bio) + "\n")
	}
	meta := []string{fmt.Sprintf("%d recipes", len(p.Recipes))}
	if u.FavoritesCount > 0 {
		meta = append(meta, fmt.Sprintf("%d favorites", u.FavoritesCount))
	}
	if u.CreatedAt != "" {
		meta = append(meta, "member since "+u.CreatedAt)
	}
	b.WriteString(secondaryStyle.Render(strings.Join(meta, " · ")) + "\n")
	if u.AvatarURL != "" {
		b.WriteString(secondaryStyle.Render("avatar: "+u.AvatarURL) + "\n")
	}

	cmds := []string{"back"}
	if viewer != nil && viewer.ID == u.ID {
		cmds = append(cmds, "editprofile")
	}
	b.WriteString(controlStyle.Render(strings.Join(cmds, " | ")) + "\n\n")

	b.WriteString(RecipeList("Recipes by "+u.Username, p.Recipes))
	return b.String()
}
