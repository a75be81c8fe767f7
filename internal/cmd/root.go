package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`
	BaseURL string `name:"base-url" help:"Base URL of the eat-together API."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version     VersionCmd     `cmd:"" help:"Print version."`
	Config      ConfigCmd      `cmd:"" help:"Manage configuration."`
	Search      SearchCmd      `cmd:"" help:"Search members or recipes once."`
	Interactive InteractiveCmd `cmd:"" help:"Search as you type."`
	Group       GroupCmd       `cmd:"" help:"Manage eat-together groups."`
	Rate        RateCmd        `cmd:"" help:"Rate menus and recipes."`
	Menu        MenuCmd        `cmd:"" help:"Menu service endpoints."`
	Stub        StubCmd        `cmd:"" help:"Run the menu stub service."`
}

func NewCLI() *CLI {
	return &CLI{}
}
