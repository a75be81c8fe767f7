package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/jimezsa/eatcli/internal/api"
	"github.com/jimezsa/eatcli/internal/export"
	"github.com/jimezsa/eatcli/internal/search"
)

type SearchCmd struct {
	Members SearchMembersCmd `cmd:"" help:"Search users by email."`
	Recipes SearchRecipesCmd `cmd:"" help:"Search recipes by name."`
}

type SearchMembersCmd struct {
	Query string `arg:"" help:"Email (or part of it) to search for."`
	OutputOptions
}

type SearchRecipesCmd struct {
	Query string `arg:"" help:"Recipe search text."`
	OutputOptions
}

type OutputOptions struct {
	Format string `help:"Output format: table, csv, tsv, json, md, html." enum:",table,csv,tsv,json,md,html" default:""`
	Links  string `help:"Table link display: short or full." enum:"short,full" default:"full"`
	Output string `name:"output" short:"o" help:"Write output to a file."`
	Out    string `name:"out" help:"Alias for --output."`
	File   string `name:"file" help:"Alias for --output."`
}

func (s *SearchMembersCmd) Run(ctx *Context) error {
	source, query, err := prepareSearch(ctx, api.SourceMembers, s.Query)
	if err != nil {
		return err
	}
	svc, err := ctx.API()
	if err != nil {
		return err
	}

	stop := startSearchIndicator(ctx)
	users, err := svc.SearchUsers(ctx.context(), query)
	if stop != nil {
		stop()
	}
	if err != nil {
		return failure(source.FailureText, err)
	}

	return writeResults(ctx, s.OutputOptions, source, len(users), func(w io.Writer, format export.Format, opts export.WriteOptions) error {
		return export.WriteUsers(w, users, format, opts)
	})
}

func (s *SearchRecipesCmd) Run(ctx *Context) error {
	source, query, err := prepareSearch(ctx, api.SourceRecipes, s.Query)
	if err != nil {
		return err
	}
	svc, err := ctx.API()
	if err != nil {
		return err
	}

	stop := startSearchIndicator(ctx)
	recipes, err := svc.SearchRecipes(ctx.context(), query)
	if stop != nil {
		stop()
	}
	if err != nil {
		return failure(source.FailureText, err)
	}

	return writeResults(ctx, s.OutputOptions, source, len(recipes), func(w io.Writer, format export.Format, opts export.WriteOptions) error {
		return export.WriteRecipes(w, recipes, format, opts)
	})
}

func prepareSearch(ctx *Context, name string, raw string) (api.Source, string, error) {
	source, err := api.Lookup(ctx.Sources(), name)
	if err != nil {
		return api.Source{}, "", err
	}
	query := search.Normalize(raw)
	if query == "" {
		return api.Source{}, "", fmt.Errorf("search query must not be empty")
	}
	ctx.Logger.Debug().Str("field", source.Name).Str("query", query).Msg("one-shot search")
	return source, query, nil
}

type writeFunc func(w io.Writer, format export.Format, opts export.WriteOptions) error

// writeResults exports a result set. An empty set on the terminal prints
// the source placeholder instead of an empty table.
func writeResults(ctx *Context, opts OutputOptions, source api.Source, count int, write writeFunc) error {
	outputPath := resolveOutputPath(opts)
	format, err := resolveFormat(ctx, opts, outputPath)
	if err != nil {
		return err
	}

	if count == 0 && outputPath == "" && format == export.FormatTable {
		ctx.UI.Infof("%s", source.Placeholder)
		return nil
	}

	writer := ctx.Out
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	colorEnabled := ctx.UI != nil && ctx.UI.ColorEnabled
	hyperlinks := colorEnabled && isTTY(writer)
	linkStyle := export.LinkStyleShort
	if strings.EqualFold(opts.Links, string(export.LinkStyleFull)) {
		linkStyle = export.LinkStyleFull
	}
	return write(writer, format, export.WriteOptions{
		ColorEnabled: colorEnabled,
		Hyperlinks:   hyperlinks,
		LinkStyle:    linkStyle,
		BaseURL:      ctx.Config.BaseURL,
	})
}

func resolveOutputPath(opts OutputOptions) string {
	if opts.Output != "" {
		return opts.Output
	}
	if opts.Out != "" {
		return opts.Out
	}
	return opts.File
}

func resolveFormat(ctx *Context, opts OutputOptions, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if opts.Format != "" {
		return export.ParseFormat(opts.Format)
	}
	if outputPath != "" {
		if strings.EqualFold(strings.TrimPrefix(filepath.Ext(outputPath), "."), string(export.FormatHTML)) {
			return export.FormatHTML, nil
		}
		return export.FormatCSV, nil
	}
	if isTTY(ctx.Out) {
		return export.FormatTable, nil
	}
	return export.FormatCSV, nil
}

func isTTY(out io.Writer) bool {
	output := termenv.NewOutput(out)
	return output.ColorProfile() != termenv.Ascii
}

func startSearchIndicator(ctx *Context) func() {
	if ctx == nil || ctx.Err == nil || ctx.UI == nil {
		return nil
	}
	if !isTTY(ctx.Err) {
		return nil
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		start := time.Now()
		frames := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		index := 0

		for {
			select {
			case <-done:
				fmt.Fprint(ctx.Err, "\r\033[2K")
				return
			case <-ticker.C:
				seconds := int(time.Since(start).Seconds())
				frame := frames[index%len(frames)]
				fmt.Fprintf(ctx.Err, "\r\033[2KSearching... %ds %s", seconds, frame)
				index++
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
