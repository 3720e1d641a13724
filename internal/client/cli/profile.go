package cli

import (
	"context"

	"github.com/dmitrijs2005/cookbook/internal/client/forms"
)

// Profile opens the page of the user with id arg, or the session user's
// own page when arg is empty.
func (a *App) Profile(ctx context.Context, arg string) error {
	if arg == "" {
		return a.after(a.ctrl.MyProfile(ctx))
	}
	id, err := parseID(arg)
	if err != nil {
		return a.usage("profile [id]")
	}
	return a.after(a.ctrl.ViewProfile(ctx, id))
}

// EditProfile edits the session user's email, bio, password and avatar.
// The password is changed only when a new one is entered.
func (a *App) EditProfile(ctx context.Context) error {
	me := a.ctrl.Snapshot().User
	if me == nil {
		return a.after(a.ctrl.MyProfile(ctx))
	}

	f := forms.NewProfileForm(*me)
	var err error
	if f.Email, err = a.ask("Email", f.Email); err != nil {
		return err
	}
	if f.Bio != "" {
		a.println("Current bio:", f.Bio)
	}
	bio, err := getMultiline(a.reader, "Bio (empty keeps the current one)", a.out)
	if err != nil {
		return err
	}
	if bio != "" {
		f.Bio = bio
	}

	if f.NewPassword, err = getPassword("New password (empty to keep)", a.out); err != nil {
		return err
	}
	if f.NewPassword != "" {
		if f.CurrentPassword, err = getPassword("Current password", a.out); err != nil {
			return err
		}
		if f.ConfirmPassword, err = getPassword("Repeat new password", a.out); err != nil {
			return err
		}
	}

	avatar, err := getSimpleText(a.reader, "Avatar file (empty to skip)", a.out)
	if err != nil {
		return err
	}
	if avatar != "" {
		if err := f.SetAvatar(avatar); err != nil {
			a.println("Avatar not used:", err)
		}
	}

	p, err := f.Submit()
	if err != nil {
		a.printInvalid(err)
		return err
	}
	return a.after(a.ctrl.UpdateProfile(ctx, p))
}
