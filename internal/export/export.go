package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"github.com/jimezsa/eatcli/internal/api"
	"github.com/jimezsa/eatcli/internal/models"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
	FormatHTML     Format = "html"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	LinkStyle    LinkStyle
	// BaseURL turns relative recipe and restaurant links into absolute ones.
	BaseURL string
}

type LinkStyle string

const (
	LinkStyleShort LinkStyle = "short"
	LinkStyleFull  LinkStyle = "full"
)

func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatTSV:
		return FormatTSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown, "markdown":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func WriteUsers(w io.Writer, users []models.User, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, users)
	case FormatCSV:
		return writeCSV(w, userHeader(), userRows(users), ',')
	case FormatTSV:
		return writeCSV(w, userHeader(), userRows(users), '\t')
	case FormatMarkdown:
		return writeMarkdown(w, userLines(users))
	case FormatHTML:
		return writeUserHTML(w, users)
	default:
		return writeTable(w, userHeader(), userRows(users), nil, opts)
	}
}

func WriteRecipes(w io.Writer, recipes []models.Recipe, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, recipes)
	case FormatCSV:
		return writeCSV(w, recipeHeader(), recipeRows(recipes), ',')
	case FormatTSV:
		return writeCSV(w, recipeHeader(), recipeRows(recipes), '\t')
	case FormatMarkdown:
		return writeMarkdown(w, recipeLines(recipes, opts))
	case FormatHTML:
		return writeRecipeHTML(w, recipes)
	default:
		links := make([]string, 0, len(recipes))
		rows := make([][]string, 0, len(recipes))
		for _, recipe := range recipes {
			rows = append(rows, []string{
				safe(recipe.ID.String()),
				safe(recipe.Name),
				recipe.CookTime.String(),
				recipe.Rating.String(),
			})
			links = append(links, absolute(opts.BaseURL, api.RecipePath(recipe.ID.String())))
		}
		return writeTable(w, []string{"id", "name", "cook_time", "rating", "url"}, rows, links, opts)
	}
}

func WriteMatches(w io.Writer, matches []models.FoodMatch, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, matches)
	case FormatCSV:
		return writeCSV(w, matchHeader(), matchRows(matches), ',')
	case FormatTSV:
		return writeCSV(w, matchHeader(), matchRows(matches), '\t')
	case FormatMarkdown:
		return writeMarkdown(w, matchLines(matches, opts))
	case FormatHTML:
		return writeMatchHTML(w, matches)
	default:
		rows := make([][]string, 0, len(matches))
		links := make([]string, 0, len(matches))
		for _, match := range matches {
			rows = append(rows, []string{
				safe(match.ID.String()),
				safe(match.Name),
				safe(match.CuisineType),
				safe(match.PriceRange),
			})
			links = append(links, absolute(opts.BaseURL, RestaurantPath(match.ID.String())))
		}
		return writeTable(w, []string{"id", "name", "cuisine", "price", "url"}, rows, links, opts)
	}
}

// RestaurantPath is the details page of a food match.
func RestaurantPath(id string) string {
	return "/food/restaurant/" + url.PathEscape(id)
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeCSV(w io.Writer, header []string, rows [][]string, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeTable prints rows in aligned columns. When links is set, each row gets
// a trailing url column.
func writeTable(w io.Writer, header []string, rows [][]string, links []string, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	output := termenv.NewOutput(w)
	for i, row := range rows {
		if links != nil {
			row = append(row, displayLink(links[i], output, opts))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func userHeader() []string {
	return []string{"id", "email"}
}

func userRows(users []models.User) [][]string {
	rows := make([][]string, 0, len(users))
	for _, user := range users {
		rows = append(rows, []string{safe(user.ID.String()), safe(user.Email)})
	}
	return rows
}

func userLines(users []models.User) []string {
	lines := make([]string, 0, len(users))
	for _, user := range users {
		lines = append(lines, fmt.Sprintf("- **%s** (id %s)", safe(user.Email), safe(user.ID.String())))
	}
	return lines
}

func recipeHeader() []string {
	return []string{
		"id",
		"name",
		"cook_time",
		"rating",
		"image_url",
		"description",
	}
}

func recipeRows(recipes []models.Recipe) [][]string {
	rows := make([][]string, 0, len(recipes))
	for _, recipe := range recipes {
		rows = append(rows, []string{
			recipe.ID.String(),
			recipe.Name,
			recipe.CookTime.String(),
			recipe.Rating.String(),
			recipe.ImageURL,
			recipe.Description,
		})
	}
	return rows
}

func recipeLines(recipes []models.Recipe, opts WriteOptions) []string {
	var lines []string
	for _, recipe := range recipes {
		lines = append(lines,
			fmt.Sprintf("- **%s** (%s mins, %s/5)", safe(recipe.Name), recipe.CookTime, recipe.Rating.String()),
			fmt.Sprintf("  URL: [View Recipe](<%s>)", absolute(opts.BaseURL, api.RecipePath(recipe.ID.String()))),
		)
		if recipe.Description != "" {
			lines = append(lines, fmt.Sprintf("  Summary: %s", safe(recipe.Description)))
		}
	}
	return lines
}

func matchHeader() []string {
	return []string{
		"id",
		"name",
		"cuisine_type",
		"price_range",
		"description",
	}
}

func matchRows(matches []models.FoodMatch) [][]string {
	rows := make([][]string, 0, len(matches))
	for _, match := range matches {
		rows = append(rows, []string{
			match.ID.String(),
			match.Name,
			match.CuisineType,
			match.PriceRange,
			match.Description,
		})
	}
	return rows
}

func matchLines(matches []models.FoodMatch, opts WriteOptions) []string {
	var lines []string
	for _, match := range matches {
		lines = append(lines,
			fmt.Sprintf("- **%s** (%s • %s)", safe(match.Name), safe(match.CuisineType), safe(match.PriceRange)),
			fmt.Sprintf("  URL: [View Details](<%s>)", absolute(opts.BaseURL, RestaurantPath(match.ID.String()))),
		)
		if match.Description != "" {
			lines = append(lines, fmt.Sprintf("  Summary: %s", safe(match.Description)))
		}
	}
	return lines
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

func absolute(base, path string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	return base + path
}

func displayLink(link string, output *termenv.Output, opts WriteOptions) string {
	const linkColor = "#87CEEB"

	link = safe(link)
	if link == "" {
		return "-"
	}
	display := link
	if opts.LinkStyle == LinkStyleShort && opts.Hyperlinks {
		display = shortURLLabel(link)
	}
	if opts.ColorEnabled {
		display = output.String(display).Foreground(output.Color(linkColor)).String()
	}
	if opts.Hyperlinks {
		display = hyperlink(link, display)
	}
	return display
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func shortURLLabel(raw string) string {
	const maxLen = 60
	label := strings.TrimSpace(raw)
	if parsed, err := url.Parse(raw); err == nil {
		host := strings.TrimPrefix(parsed.Host, "www.")
		if host != "" {
			label = host + parsed.Path
		}
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = raw
	}
	if len(label) > maxLen {
		label = label[:maxLen-3] + "..."
	}
	return label
}
