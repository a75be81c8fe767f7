package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jimezsa/eatcli/internal/config"
)

type ConfigCmd struct {
	Init InitConfigCmd `cmd:"" help:"Write the default config file."`
	Path PathConfigCmd `cmd:"" help:"Print the config directory or file."`
	Show ShowConfigCmd `cmd:"" help:"Print the settings in effect after defaults, environment and file."`
}

type InitConfigCmd struct{}

type PathConfigCmd struct {
	File bool `help:"Print the config file instead of its directory."`
}

type ShowConfigCmd struct{}

// settings is the resolved view of config.Config, with debounce and
// timeout fallbacks applied.
type settings struct {
	BaseURL      string `json:"base_url"`
	Timeout      string `json:"timeout"`
	MemberDelay  string `json:"member_debounce"`
	RecipeDelay  string `json:"recipe_debounce"`
	NoticeLife   string `json:"notice_lifetime"`
	Proxy        string `json:"proxy,omitempty"`
	DefaultGroup string `json:"default_group,omitempty"`
	LogPath      string `json:"interactive_log"`
}

func (c *InitConfigCmd) Run(ctx *Context) error {
	created, err := config.Init()
	if err != nil {
		return err
	}
	target := filepath.Join(ctx.ConfigDir, config.ConfigFileName)
	if len(created) == 0 {
		ctx.UI.Infof("Config already exists: %s", target)
		return nil
	}
	ctx.UI.Successf("Wrote defaults to %s", created[0])
	return nil
}

func (c *PathConfigCmd) Run(ctx *Context) error {
	path := ctx.ConfigDir
	if c.File {
		path = filepath.Join(path, config.ConfigFileName)
	}
	_, err := fmt.Fprintln(ctx.Out, path)
	return err
}

func (c *ShowConfigCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	logPath, err := config.LogPath(cfg)
	if err != nil {
		return err
	}
	view := settings{
		BaseURL:      cfg.BaseURL,
		Timeout:      cfg.Timeout().String(),
		MemberDelay:  cfg.MemberDelay().String(),
		RecipeDelay:  cfg.RecipeDelay().String(),
		NoticeLife:   cfg.NoticeLifetime().String(),
		Proxy:        cfg.Proxy,
		DefaultGroup: cfg.DefaultGroup,
		LogPath:      logPath,
	}
	if ctx.JSONOutput {
		return writeJSON(ctx, view)
	}

	rows := [][2]string{
		{"base_url", view.BaseURL},
		{"timeout", view.Timeout},
		{"member_debounce", view.MemberDelay},
		{"recipe_debounce", view.RecipeDelay},
		{"notice_lifetime", view.NoticeLife},
		{"proxy", view.Proxy},
		{"default_group", view.DefaultGroup},
		{"interactive_log", view.LogPath},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(ctx.Out, "%-16s %s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}
