package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/cookbook/internal/client/controller"
	"github.com/dmitrijs2005/cookbook/internal/client/forms"
)

// getSimpleText, getPassword, getMultiline and getLines are indirections
// used to facilitate testing. They point to interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getLines      = GetLines
)

// Register prompts for a username, email and password twice and creates
// the account. On success the session is opened and a view requested while
// logged out is shown.
func (a *App) Register(ctx context.Context) error {
	a.ctrl.OpenAuth(controller.AuthRegister)

	var f forms.RegistrationForm
	var err error
	if f.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return a.cancelAuth(err)
	}
	if f.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return a.cancelAuth(err)
	}
	if f.Password, err = getPassword("Enter password", a.out); err != nil {
		return a.cancelAuth(err)
	}
	if f.PasswordConfirm, err = getPassword("Repeat password", a.out); err != nil {
		return a.cancelAuth(err)
	}

	reg, err := f.Submit()
	if err != nil {
		a.printInvalid(err)
		return err
	}
	if err := a.ctrl.Register(ctx, reg); err != nil {
		return err
	}
	a.show()
	return nil
}

// Login prompts for credentials, offering the last used username as the
// default, and opens a session.
func (a *App) Login(ctx context.Context) error {
	a.ctrl.OpenAuth(controller.AuthLogin)

	last, err := a.users.LastUsername(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not read last username", "error", err)
	}

	var f forms.LoginForm
	if f.Username, err = a.ask("Enter username", last); err != nil {
		return a.cancelAuth(err)
	}
	if f.Password, err = getPassword("Enter password", a.out); err != nil {
		return a.cancelAuth(err)
	}

	creds, err := f.Submit()
	if err != nil {
		a.printInvalid(err)
		return err
	}
	if err := a.ctrl.Login(ctx, creds); err != nil {
		return err
	}
	a.show()
	return nil
}

// Logout closes the session. When the server does not confirm, the session
// is kept.
func (a *App) Logout(ctx context.Context) error {
	if err := a.ctrl.Logout(ctx); err != nil {
		return err
	}
	a.show()
	return nil
}

func (a *App) cancelAuth(err error) error {
	a.ctrl.CloseAuth()
	return err
}

// ask prompts with the current value as default; an empty answer keeps it.
func (a *App) ask(prompt, current string) (string, error) {
	if current != "" {
		prompt += " [" + current + "]"
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// printInvalid lists form validation errors, one field per line.
func (a *App) printInvalid(err error) {
	var verrs forms.ValidationErrors
	if !errors.As(err, &verrs) {
		a.println(err)
		return
	}
	a.println("Please fix the following:")
	for _, line := range splitErrors(verrs) {
		a.println("  " + line)
	}
}
