package cmd

import (
	"strings"

	"github.com/jimezsa/eatcli/internal/api"
	"github.com/jimezsa/eatcli/internal/config"
	"github.com/jimezsa/eatcli/internal/logging"
	"github.com/jimezsa/eatcli/internal/notify"
	"github.com/jimezsa/eatcli/internal/tui"
)

type InteractiveCmd struct {
	Members InteractiveMembersCmd `cmd:"" help:"Find users by email and add them to a group."`
	Recipes InteractiveRecipesCmd `cmd:"" help:"Browse recipes as you type."`
}

type InteractiveMembersCmd struct {
	Group string `help:"Group that selected users are added to." env:"EATCLI_GROUP"`
}

type InteractiveRecipesCmd struct{}

func (c *InteractiveMembersCmd) Run(ctx *Context) error {
	group := strings.TrimSpace(c.Group)
	if group == "" {
		group = ctx.Config.DefaultGroup
	}
	return runInteractive(ctx, api.SourceMembers, func(svc *api.Service, opts *tui.Options) {
		opts.Fetch = tui.MemberFetcher(svc)
		opts.Activate = tui.AddMemberAction(svc, group, opts.Logger)
	})
}

func (c *InteractiveRecipesCmd) Run(ctx *Context) error {
	return runInteractive(ctx, api.SourceRecipes, func(svc *api.Service, opts *tui.Options) {
		opts.Fetch = tui.RecipeFetcher(svc)
		opts.Activate = tui.ViewRecipeAction()
	})
}

// runInteractive owns the terminal for the duration of the screen, so logs
// go to a file instead of stderr.
func runInteractive(ctx *Context, name string, bind func(*api.Service, *tui.Options)) error {
	source, err := api.Lookup(ctx.Sources(), name)
	if err != nil {
		return err
	}

	logPath, err := config.LogPath(ctx.Config)
	if err != nil {
		return err
	}
	sink, err := logging.OpenFileSink(logPath)
	if err != nil {
		return err
	}
	defer sink.Close()
	logger := logging.New(sink, ctx.Verbose)

	svc, err := ctx.apiWithLogger(logger)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Source: source,
		Board:  notify.NewBoard(nil, ctx.Config.NoticeLifetime()),
		Logger: logger,
	}
	bind(svc, &opts)
	return tui.Run(ctx.context(), opts)
}
