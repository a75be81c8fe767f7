package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"k8s.io/utils/clock"

	"github.com/jimezsa/eatcli/internal/api"
	"github.com/jimezsa/eatcli/internal/notify"
	"github.com/jimezsa/eatcli/internal/search"
)

type Options struct {
	Source   api.Source
	Fetch    search.Fetcher[Row]
	Activate Activator
	Board    *notify.Board
	Logger   zerolog.Logger
	Clock    clock.WithDelayedExecution
}

// Run shows the search screen until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	renderer := NewRenderer()

	controllerOpts := []search.Option{
		search.WithDelay(opts.Source.Delay),
		search.WithLogger(opts.Logger),
		search.WithContext(ctx),
	}
	if opts.Clock != nil {
		controllerOpts = append(controllerOpts, search.WithClock(opts.Clock))
	}
	controller := search.New[Row](opts.Source.Name, opts.Fetch, renderer, controllerOpts...)

	model := NewModel(ctx, opts.Source, controller, opts.Activate, opts.Board)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	go renderer.Forward(p)

	opts.Logger.Debug().Str("field", opts.Source.Name).Msg("starting search screen")
	_, err := p.Run()

	controller.Close()
	renderer.Close()

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// MemberFetcher searches users by email.
func MemberFetcher(svc *api.Service) search.Fetcher[Row] {
	return func(ctx context.Context, query string) ([]Row, error) {
		users, err := svc.SearchUsers(ctx, query)
		if err != nil {
			return nil, err
		}
		return MemberRows(users), nil
	}
}

func RecipeFetcher(svc *api.Service) search.Fetcher[Row] {
	return func(ctx context.Context, query string) ([]Row, error) {
		recipes, err := svc.SearchRecipes(ctx, query)
		if err != nil {
			return nil, err
		}
		return RecipeRows(recipes), nil
	}
}

// AddMemberAction adds the selected user to groupID.
func AddMemberAction(svc *api.Service, groupID string, logger zerolog.Logger) Activator {
	return func(ctx context.Context, row Row) (notify.Level, string) {
		if groupID == "" {
			return notify.Info, "Pass --group to add members."
		}
		if err := svc.AddMember(ctx, groupID, row.Action.ID); err != nil {
			logger.Error().Err(err).Str("group", groupID).Str("member", row.Action.ID).Msg("add member failed")
			return notify.Danger, "Failed to add member."
		}
		return notify.Success, "Member added successfully!"
	}
}

func ViewRecipeAction() Activator {
	return func(_ context.Context, row Row) (notify.Level, string) {
		return notify.Info, api.RecipePath(row.Action.ID)
	}
}
