package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jimezsa/eatcli/internal/notify"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const LinkColor = "#87CEEB"

// levelColors maps notice levels to ANSI colours. Danger goes to stderr.
var levelColors = map[notify.Level]string{
	notify.Success: "2",
	notify.Info:    "4",
	notify.Danger:  "1",
}

type UI struct {
	Out          io.Writer
	Err          io.Writer
	Output       *termenv.Output
	ErrOutput    *termenv.Output
	ColorEnabled bool
}

func New(out io.Writer, err io.Writer, mode ColorMode, disableColor bool) *UI {
	output := termenv.NewOutput(out)
	return &UI{
		Out:          out,
		Err:          err,
		Output:       output,
		ErrOutput:    termenv.NewOutput(err),
		ColorEnabled: colorAllowed(output, mode, disableColor),
	}
}

func colorAllowed(output *termenv.Output, mode ColorMode, disableColor bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok || disableColor {
		return false
	}
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return output.ColorProfile() != termenv.Ascii
	}
}

// Notify prints message in the colour of its notice level.
func (u *UI) Notify(level notify.Level, message string) {
	w, output := u.Out, u.Output
	if level == notify.Danger {
		w, output = u.Err, u.ErrOutput
	}
	message = strings.TrimRight(message, "\n")
	if color, ok := levelColors[level]; ok && u.ColorEnabled {
		message = output.String(message).Foreground(output.Color(color)).String()
	}
	fmt.Fprintln(w, message)
}

func (u *UI) Errorf(format string, args ...any) {
	u.Notify(notify.Danger, fmt.Sprintf(format, args...))
}

func (u *UI) Infof(format string, args ...any) {
	u.Notify(notify.Info, fmt.Sprintf(format, args...))
}

func (u *UI) Successf(format string, args ...any) {
	u.Notify(notify.Success, fmt.Sprintf(format, args...))
}

// LinkText colours a URL for terminal output.
func (u *UI) LinkText(text string) string {
	if !u.ColorEnabled || u.Output == nil {
		return text
	}
	return u.Output.String(text).Foreground(u.Output.Color(LinkColor)).String()
}

func NormalizeColorMode(value string) ColorMode {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case ColorAlways, ColorNever:
		return mode
	default:
		return ColorAuto
	}
}
