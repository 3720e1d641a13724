package models

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`

	RecipesCount   int `json:"recipes_count,omitempty"`
	FavoritesCount int `json:"favorites_count,omitempty"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Comment is append-only from the client's point of view.
type Comment struct {
	ID        int64  `json:"id"`
	RecipeID  int64  `json:"recipe_id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// Profile is a user together with the recipes they authored.
type Profile struct {
	User    User
	Recipes []Recipe
}
