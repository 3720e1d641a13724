package forms

import "strings"

type CommentForm struct {
	Text string `form:"text" validate:"required,max=1000"`
}

func (f *CommentForm) Submit() (string, error) {
	f.Text = strings.TrimSpace(f.Text)
	if errs := check(f); len(errs) > 0 {
		return "", errs
	}
	return f.Text, nil
}
