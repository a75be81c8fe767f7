package cmd

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/jimezsa/eatcli/internal/api"
	"github.com/jimezsa/eatcli/internal/config"
	"github.com/jimezsa/eatcli/internal/network"
	"github.com/jimezsa/eatcli/internal/ui"
)

type Context struct {
	Ctx        context.Context
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode

	// Caller replaces the HTTP client when set.
	Caller api.Caller
}

func (c *Context) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// API returns the endpoint bindings, logging request failures to c.Logger.
func (c *Context) API() (*api.Service, error) {
	return c.apiWithLogger(c.Logger)
}

func (c *Context) apiWithLogger(logger zerolog.Logger) (*api.Service, error) {
	if c.Caller != nil {
		return api.New(c.Caller), nil
	}
	client, err := network.NewClient(network.Options{
		BaseURL: c.Config.BaseURL,
		Timeout: c.Config.Timeout(),
		Proxy:   c.Config.Proxy,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}
	return api.New(client), nil
}

func (c *Context) Sources() map[string]api.Source {
	return api.Registry(c.Config.MemberDelay(), c.Config.RecipeDelay())
}
