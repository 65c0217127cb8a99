package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"profile-readme/internal/config"
	"profile-readme/internal/markdown"
	"profile-readme/internal/profile"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const simulatedMark = " (simulated)"

type Formatter struct {
	w      io.Writer
	format string
}

func NewFormatter(w io.Writer, format string) (*Formatter, error) {
	switch format {
	case "", FormatTable:
		format = FormatTable
	case FormatJSON:
	default:
		return nil, fmt.Errorf("invalid format: %s (must be 'table' or 'json')", format)
	}
	return &Formatter{w: w, format: format}, nil
}

// Profile prints what a fetch stored: identity, counts, languages and
// repositories. Simulated metrics are labelled.
func (f *Formatter) Profile(p profile.ProfileData) error {
	if f.format == FormatJSON {
		enc := json.NewEncoder(f.w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	cyan := color.New(color.FgCyan, color.Bold)
	_, _ = cyan.Fprintln(f.w, "\n"+strings.Repeat("=", 80))
	_, _ = cyan.Fprintf(f.w, "  GitHub profile for @%s\n", p.GitHub)
	_, _ = cyan.Fprintln(f.w, strings.Repeat("=", 80))

	identity := [][]string{}
	add := func(label, value string) {
		if value != "" {
			identity = append(identity, []string{label, truncate(value, 60)})
		}
	}
	add("Name", p.Name)
	add("Username", p.GitHub)
	add("About", p.About)
	add("Company", p.Company)
	add("Location", p.Location)
	add("Website", p.Website)
	add("Twitter", p.Twitter)
	if err := f.table("👤 PROFILE", []string{"Field", "Value"}, identity); err != nil {
		return err
	}

	sim := func(n int, simulated bool) string {
		s := fmt.Sprintf("%d", n)
		if simulated {
			s += simulatedMark
		}
		return s
	}
	stats := [][]string{
		{"Public Repositories", fmt.Sprintf("%d", p.PublicRepos)},
		{"Followers", fmt.Sprintf("%d", p.Followers)},
		{"Following", fmt.Sprintf("%d", p.Following)},
		{"Total Stars", sim(p.TotalStars, p.Simulated.RepoStats)},
		{"Total Forks", sim(p.TotalForks, p.Simulated.RepoStats)},
		{"Contributions", sim(p.TotalContributions, p.Simulated.Streaks)},
		{"Current Streak", sim(p.CurrentStreak, p.Simulated.Streaks)},
		{"Longest Streak", sim(p.LongestStreak, p.Simulated.Streaks)},
		{"Profile Views", sim(p.ProfileViews, p.Simulated.ProfileViews)},
	}
	if err := f.table("📚 STATISTICS", []string{"Metric", "Value"}, stats); err != nil {
		return err
	}

	if len(p.Languages) > 0 {
		rows := make([][]string, 0, len(p.Languages))
		for _, l := range p.Languages {
			rows = append(rows, []string{l.Name, fmt.Sprintf("%d%% %s", l.Percent, createBar(l.Percent, 30))})
		}
		title := "💻 LANGUAGES"
		if p.Simulated.RepoStats {
			title += simulatedMark
		}
		if err := f.table(title, []string{"Language", "Share"}, rows); err != nil {
			return err
		}
	}

	if len(p.Repositories) > 0 {
		rows := make([][]string, 0, len(p.Repositories))
		for _, r := range p.Repositories {
			lang := r.Language
			if lang == "" {
				lang = "N/A"
			}
			rows = append(rows, []string{
				r.Name,
				fmt.Sprintf("%d ⭐", r.Stars),
				fmt.Sprintf("%d", r.Forks),
				lang,
			})
		}
		if err := f.table("🌟 TOP REPOSITORIES (by stars)", []string{"Repository", "Stars", "Forks", "Language"}, rows); err != nil {
			return err
		}
	}

	fmt.Fprintln(f.w)
	return nil
}

// Templates lists the README templates, marking current.
func (f *Formatter) Templates(templates []*markdown.Template, current string) error {
	if f.format == FormatJSON {
		type entry struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
			StatsTheme  string `json:"statsTheme"`
			Current     bool   `json:"current"`
		}
		out := make([]entry, 0, len(templates))
		for _, t := range templates {
			out = append(out, entry{string(t.ID), t.Name, t.Description, t.StatsTheme, string(t.ID) == current})
		}
		enc := json.NewEncoder(f.w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		id := string(t.ID)
		if id == current {
			id = "* " + id
		}
		rows = append(rows, []string{id, t.Name, t.StatsTheme, t.Description})
	}
	return f.table("🎨 TEMPLATES", []string{"ID", "Name", "Stats Theme", "Description"}, rows)
}

// Config prints the effective configuration with the token masked.
func (f *Formatter) Config(cfg *config.Config) error {
	file := cfg.File
	if file == "" {
		file = "(none)"
	}
	cacheState := "enabled"
	if cfg.NoCache {
		cacheState = "disabled"
	}
	rows := [][]string{
		{"Config File", file},
		{"Token", cfg.MaskedToken()},
		{"Template", cfg.Template},
		{"Profile Path", cfg.ProfilePath},
		{"Output", orDash(cfg.Output)},
		{"Log Level", cfg.LogLevel},
		{"Log File", orDash(cfg.LogFile)},
		{"Cache TTL", cfg.CacheTTL.String()},
		{"Cache", cacheState},
		{"API URL", orDash(cfg.APIURL)},
	}
	return f.table("⚙️  CONFIGURATION", []string{"Key", "Value"}, rows)
}

func (f *Formatter) table(title string, header []string, rows [][]string) error {
	green := color.New(color.FgGreen)
	fmt.Fprintln(f.w)
	_, _ = green.Fprintln(f.w, title)
	fmt.Fprintln(f.w, strings.Repeat("-", 80))

	table := tablewriter.NewWriter(f.w)
	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	table.Header(headerCells...)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to add table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func createBar(percentage, width int) string {
	filled := percentage * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
