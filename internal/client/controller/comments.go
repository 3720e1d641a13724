package controller

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/cookbook/internal/client/client"
	"github.com/dmitrijs2005/cookbook/internal/client/forms"
	"github.com/dmitrijs2005/cookbook/internal/client/models"
)

// LoadComments refreshes the comments of the open recipe.
func (c *Controller) LoadComments(ctx context.Context) error {
	id, ok := c.selectedID()
	if !ok {
		return ErrNoRecipe
	}

	epoch := c.begin()
	defer c.done()

	comments, err := c.api.Comments(ctx, id)
	if err != nil {
		comments = []models.Comment{}
		if errors.Is(err, client.ErrMalformedResponse) {
			c.logger.Warn(ctx, "comments: unexpected response", "recipe_id", id, "error", err)
			err = nil
		} else {
			c.fail(ctx, "Could not load comments", err)
		}
	}

	c.apply(ctx, epoch, "load comments", func(s *State) {
		if s.Selected != nil && s.Selected.ID == id {
			s.Comments = comments
		}
	})
	return err
}

// AddComment appends a comment to the open recipe.
func (c *Controller) AddComment(ctx context.Context, text string) error {
	if !c.requireSession(ctx, "", "Log in to leave a comment.") {
		return ErrAuthRequired
	}
	id, ok := c.selectedID()
	if !ok {
		return ErrNoRecipe
	}

	form := forms.CommentForm{Text: text}
	text, err := form.Submit()
	if err != nil {
		c.notify(ctx, Notice{Kind: NoticeWarning, Title: "Comment not sent", Text: err.Error()})
		return err
	}

	c.track()
	comment, err := c.api.AddComment(ctx, id, text)
	c.done()
	if err != nil {
		c.fail(ctx, "Could not add the comment", err)
		return err
	}

	c.update(func(s *State) {
		if comment.Username == "" && s.User != nil {
			comment.Username = s.User.Username
		}
		if comment.Text == "" {
			comment.Text = text
		}
		bump := func(list []models.Recipe) {
			for i := range list {
				if list[i].ID == id {
					list[i].CommentsCount++
				}
			}
		}
		bump(s.Recipes)
		bump(s.Displayed)
		if s.Selected != nil && s.Selected.ID == id {
			s.Selected.CommentsCount++
			s.Comments = append(s.Comments, *comment)
		}
	})
	return nil
}

func (c *Controller) selectedID() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Selected == nil {
		return 0, false
	}
	return c.state.Selected.ID, true
}
