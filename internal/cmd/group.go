package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jimezsa/eatcli/internal/api"
	"github.com/jimezsa/eatcli/internal/export"
	"github.com/jimezsa/eatcli/internal/models"
	"github.com/jimezsa/eatcli/internal/notify"
)

type GroupCmd struct {
	Create       GroupCreateCmd       `cmd:"" help:"Create a group."`
	Join         GroupJoinCmd         `cmd:"" help:"Join a group by invite code."`
	AddMember    GroupAddMemberCmd    `cmd:"" name:"add-member" help:"Add a user to a group."`
	RemoveMember GroupRemoveMemberCmd `cmd:"" name:"remove-member" help:"Remove a user from a group."`
	Matches      GroupMatchesCmd      `cmd:"" help:"List the group's food matches."`
	Roulette     GroupRouletteCmd     `cmd:"" help:"Pick a random food match."`
	Prefs        GroupPrefsCmd        `cmd:"" help:"Update the guest preferences of a group."`
}

type GroupCreateCmd struct {
	Name        string `arg:"" help:"Group name."`
	Description string `help:"Group description."`
}

type GroupJoinCmd struct {
	Code string `arg:"" help:"Invite code."`
}

type GroupAddMemberCmd struct {
	Group  string `arg:"" help:"Group id."`
	Member string `arg:"" help:"User id."`
}

type GroupRemoveMemberCmd struct {
	Group  string `arg:"" help:"Group id."`
	Member string `arg:"" help:"User id."`
}

type GroupMatchesCmd struct {
	Group string `arg:"" help:"Group id."`
	OutputOptions
}

type GroupRouletteCmd struct {
	Group string `arg:"" help:"Group id."`
}

type GroupPrefsCmd struct {
	Group string            `arg:"" help:"Group id."`
	Set   map[string]string `help:"Preference as key=value (repeatable)." mapsep:","`
	JSON  string            `name:"data" help:"Preferences as a JSON object."`
}

func (c *GroupCreateCmd) Run(ctx *Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("group name must not be empty")
	}
	svc, err := ctx.API()
	if err != nil {
		return err
	}
	group, err := svc.CreateGroup(ctx.context(), name, strings.TrimSpace(c.Description))
	if err != nil {
		return failure(msgCreateGroupFailed, err)
	}
	return printGroup(ctx, "Group created", group)
}

func (c *GroupJoinCmd) Run(ctx *Context) error {
	svc, err := ctx.API()
	if err != nil {
		return err
	}
	group, err := svc.JoinGroup(ctx.context(), strings.TrimSpace(c.Code))
	if err != nil {
		return failure(msgJoinGroupFailed, err)
	}
	return printGroup(ctx, "Joined group", group)
}

func printGroup(ctx *Context, verb string, group models.Group) error {
	if ctx.JSONOutput {
		return writeJSON(ctx, group)
	}
	ctx.UI.Successf("%s: %s (id %s)", verb, group.Name, group.ID)
	return nil
}

func (c *GroupAddMemberCmd) Run(ctx *Context) error {
	svc, err := ctx.API()
	if err != nil {
		return err
	}
	if err := svc.AddMember(ctx.context(), c.Group, c.Member); err != nil {
		return failure(msgAddMemberFailed, err)
	}
	ctx.UI.Notify(notify.Success, msgMemberAdded)
	return nil
}

func (c *GroupRemoveMemberCmd) Run(ctx *Context) error {
	svc, err := ctx.API()
	if err != nil {
		return err
	}
	if err := svc.RemoveMember(ctx.context(), c.Group, c.Member); err != nil {
		return failure(msgRemoveMemberFailed, err)
	}
	ctx.UI.Notify(notify.Success, msgMemberRemoved)
	return nil
}

func (c *GroupMatchesCmd) Run(ctx *Context) error {
	svc, err := ctx.API()
	if err != nil {
		return err
	}
	matches, err := svc.FoodMatches(ctx.context(), c.Group)
	if err != nil {
		return failure(msgMatchesFailed, err)
	}
	source := api.Source{Name: "matches", Placeholder: "No food matches yet."}
	return writeResults(ctx, c.OutputOptions, source, len(matches), func(w io.Writer, format export.Format, opts export.WriteOptions) error {
		return export.WriteMatches(w, matches, format, opts)
	})
}

func (c *GroupRouletteCmd) Run(ctx *Context) error {
	svc, err := ctx.API()
	if err != nil {
		return err
	}
	match, err := svc.Roulette(ctx.context(), c.Group)
	if err != nil {
		if errors.Is(err, api.ErrNoMatches) {
			return fmt.Errorf("no food matches yet for group %s", c.Group)
		}
		return failure(msgMatchesFailed, err)
	}
	if ctx.JSONOutput {
		return writeJSON(ctx, match)
	}
	ctx.UI.Successf("%s", match.Name)
	ctx.UI.Infof("%s • %s", match.CuisineType, match.PriceRange)
	if match.Description != "" {
		fmt.Fprintln(ctx.Out, match.Description)
	}
	fmt.Fprintln(ctx.Out, ctx.UI.LinkText(strings.TrimRight(ctx.Config.BaseURL, "/")+export.RestaurantPath(match.ID.String())))
	return nil
}

func (c *GroupPrefsCmd) Run(ctx *Context) error {
	prefs, err := c.preferences()
	if err != nil {
		return err
	}
	svc, err := ctx.API()
	if err != nil {
		return err
	}
	if err := svc.UpdatePreferences(ctx.context(), c.Group, prefs); err != nil {
		return failure(msgPrefsFailed, err)
	}
	ctx.UI.Successf("Preferences updated.")
	return nil
}

func (c *GroupPrefsCmd) preferences() (map[string]any, error) {
	prefs := map[string]any{}
	if data := strings.TrimSpace(c.JSON); data != "" {
		if err := json.Unmarshal([]byte(data), &prefs); err != nil {
			return nil, fmt.Errorf("parse --data: %w", err)
		}
	}
	for key, value := range c.Set {
		prefs[key] = value
	}
	if len(prefs) == 0 {
		return nil, fmt.Errorf("no preferences given; use --set key=value or --data")
	}
	return prefs, nil
}

func writeJSON(ctx *Context, value any) error {
	enc := json.NewEncoder(ctx.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
