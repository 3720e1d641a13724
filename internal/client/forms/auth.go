package forms

import (
	"strings"

	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`

	touched touchSet
}

func (f *LoginForm) Touch(field string) { f.touched.touch(field) }

func (f *LoginForm) Validate() ValidationErrors {
	f.Username = strings.TrimSpace(f.Username)
	return check(f)
}

func (f *LoginForm) State(field string) FieldState {
	return stateOf(f.Validate(), &f.touched, field)
}

func (f *LoginForm) Submit() (models.Credentials, error) {
	f.touched.touchAll()
	if errs := f.Validate(); len(errs) > 0 {
		return models.Credentials{}, errs
	}
	return models.Credentials{Username: f.Username, Password: f.Password}, nil
}

type RegistrationForm struct {
	Username        string `form:"username" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`

	touched touchSet
}

func (f *RegistrationForm) Touch(field string) { f.touched.touch(field) }

func (f *RegistrationForm) Validate() ValidationErrors {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	return check(f)
}

func (f *RegistrationForm) State(field string) FieldState {
	return stateOf(f.Validate(), &f.touched, field)
}

func (f *RegistrationForm) Submit() (models.Registration, error) {
	f.touched.touchAll()
	if errs := f.Validate(); len(errs) > 0 {
		return models.Registration{}, errs
	}
	return models.Registration{Username: f.Username, Email: f.Email, Password: f.Password}, nil
}
