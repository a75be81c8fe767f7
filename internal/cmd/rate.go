package cmd

import (
	"errors"

	"github.com/jimezsa/eatcli/internal/api"
	"github.com/jimezsa/eatcli/internal/rating"
)

type RateCmd struct {
	Menu   RateMenuCmd   `cmd:"" help:"Rate a menu, optionally with a review."`
	Recipe RateRecipeCmd `cmd:"" help:"Rate a recipe."`
}

type RateMenuCmd struct {
	ID     string `arg:"" help:"Menu id."`
	Stars  int    `help:"Rating from 1 to 5."`
	Review string `help:"Review text."`
}

type RateRecipeCmd struct {
	ID    string `arg:"" help:"Recipe id."`
	Stars int    `help:"Rating from 1 to 5."`
}

func (c *RateMenuCmd) Run(ctx *Context) error {
	widget, stars, err := selectStars(c.Stars)
	if err != nil {
		return err
	}
	svc, err := ctx.API()
	if err != nil {
		return err
	}
	if err := svc.RateMenu(ctx.context(), c.ID, stars, c.Review); err != nil {
		if errors.Is(err, api.ErrRatingRejected) {
			return failure(msgMenuRatingFailed, err)
		}
		return failure(msgGenericFailure, err)
	}
	widget.Accept(stars)
	ctx.UI.Successf("%s %s", widget, msgRatingSubmitted)
	return nil
}

func (c *RateRecipeCmd) Run(ctx *Context) error {
	widget, stars, err := selectStars(c.Stars)
	if err != nil {
		return err
	}
	svc, err := ctx.API()
	if err != nil {
		return err
	}
	if err := svc.RateRecipe(ctx.context(), c.ID, stars); err != nil {
		return failure(msgRecipeRatingFailed, err)
	}
	widget.Accept(stars)
	ctx.UI.Successf("%s %s", widget, msgRatingSubmitted)
	return nil
}

// selectStars validates --stars before any request is made. Zero means the
// flag was not given.
func selectStars(stars int) (*rating.Widget, int, error) {
	widget := rating.New(0)
	if stars != 0 {
		if err := widget.Select(stars); err != nil {
			return nil, 0, err
		}
	}
	selected, err := widget.Selection()
	if err != nil {
		return nil, 0, failure(msgNoSelection, err)
	}
	return widget, selected, nil
}
