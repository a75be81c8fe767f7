package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jimezsa/eatcli/internal/stub"
)

type MenuCmd struct {
	List MenuListCmd `cmd:"" help:"List menu items."`
	Add  MenuAddCmd  `cmd:"" help:"Add a menu item."`
}

type MenuListCmd struct{}

type MenuAddCmd struct {
	Item string `arg:"" help:"Menu item as a JSON object."`
}

func (c *MenuListCmd) Run(ctx *Context) error {
	svc, err := ctx.API()
	if err != nil {
		return err
	}
	msg, err := svc.ListMenu(ctx.context())
	if err != nil {
		return failure(msgGenericFailure, err)
	}
	if ctx.JSONOutput {
		return writeJSON(ctx, msg)
	}
	_, err = fmt.Fprintln(ctx.Out, msg.Message)
	return err
}

func (c *MenuAddCmd) Run(ctx *Context) error {
	raw := strings.TrimSpace(c.Item)
	if !json.Valid([]byte(raw)) {
		return fmt.Errorf("menu item must be valid JSON")
	}
	svc, err := ctx.API()
	if err != nil {
		return err
	}
	added, err := svc.AddMenuItem(ctx.context(), json.RawMessage(raw))
	if err != nil {
		return failure(msgGenericFailure, err)
	}
	if ctx.JSONOutput {
		return writeJSON(ctx, added)
	}
	ctx.UI.Successf("%s", added.Message)
	_, err = fmt.Fprintln(ctx.Out, string(added.Item))
	return err
}

type StubCmd struct {
	Port int    `help:"Port to listen on." env:"PORT" default:"3000"`
	Host string `help:"Interface to bind." default:""`
}

func (c *StubCmd) Run(ctx *Context) error {
	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	ctx.UI.Infof("Menu service running on http://localhost:%d", c.Port)
	return stub.Run(ctx.context(), addr, ctx.Logger)
}
