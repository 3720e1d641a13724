package forms

import (
	"strings"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

// ProfileForm edits the current user's profile. The password block is
// optional: the current password is only required when a new one is given.
type ProfileForm struct {
	Email           string `form:"email" validate:"required,email"`
	Bio             string `form:"bio" validate:"max=500"`
	CurrentPassword string `form:"current_password" validate:"required_with=NewPassword"`
	NewPassword     string `form:"new_password" validate:"omitempty,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"eqfield=NewPassword"`

	AvatarPath string `form:"-"`

	touched touchSet
}

// NewProfileForm pre-fills the form from the user being edited.
func NewProfileForm(u models.User) *ProfileForm {
	return &ProfileForm{Email: u.Email, Bio: u.Bio}
}

// SetAvatar selects a new avatar; non-images are rejected and the previous
// selection is kept.
func (f *ProfileForm) SetAvatar(path string) error {
	if err := checkImage(path); err != nil {
		return err
	}
	f.AvatarPath = path
	return nil
}

func (f *ProfileForm) Touch(field string) { f.touched.touch(field) }

func (f *ProfileForm) Validate() ValidationErrors {
	f.Email = strings.TrimSpace(f.Email)
	f.Bio = strings.TrimSpace(f.Bio)
	return check(f)
}

func (f *ProfileForm) State(field string) FieldState {
	return stateOf(f.Validate(), &f.touched, field)
}

func (f *ProfileForm) Submit() (models.Payload, error) {
	f.touched.touchAll()
	if errs := f.Validate(); len(errs) > 0 {
		return models.Payload{}, errs
	}

	var p models.Payload
	p.Add("email", f.Email)
	p.Add("bio", f.Bio)
	if f.NewPassword != "" {
		p.Add("current_password", f.CurrentPassword)
		p.Add("new_password", f.NewPassword)
	}
	if f.AvatarPath != "" {
		p.AddFile("avatar", f.AvatarPath)
	}
	return p, nil
}
