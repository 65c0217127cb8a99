package markdown

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"profile-readme/internal/profile"
)

// BuildRepoCards renders p.Repositories as an HTML table laid out by s. Every
// row has exactly s.Columns() cells; the last row is padded with empty cells.
// It returns "" when there are no repositories.
func BuildRepoCards(p profile.ProfileData, s profile.RepoSettings) string {
	repos := p.Repositories
	if len(repos) == 0 {
		return ""
	}

	cols := s.Columns()
	width := 100 / cols
	align := s.Alignment
	switch align {
	case profile.AlignLeft, profile.AlignRight, profile.AlignCenter:
	default:
		align = profile.AlignCenter
	}
	cellOpen := fmt.Sprintf("<td align=\"%s\" width=\"%d%%\">", align, width)
	suffix := themeParam(s.Theme) + borderParam(s.BorderStyle)

	var b strings.Builder
	b.WriteString("<table>\n<tr>\n")
	for i, r := range repos {
		b.WriteString(cellOpen)
		b.WriteByte('\n')
		b.WriteString(repoCell(p.GitHub, r, s, suffix))
		b.WriteString("</td>\n")

		if (i+1)%cols == 0 && i != len(repos)-1 {
			b.WriteString("</tr>\n<tr>\n")
		}
	}
	if rem := len(repos) % cols; rem != 0 {
		for i := rem; i < cols; i++ {
			b.WriteString(cellOpen)
			b.WriteString("</td>\n")
		}
	}
	b.WriteString("</tr>\n</table>\n")
	return b.String()
}

func themeParam(theme string) string {
	if theme == "" || theme == "default" {
		return ""
	}
	return "&theme=" + url.QueryEscape(theme)
}

func borderParam(style string) string {
	switch style {
	case "", "default":
		return ""
	case "none":
		return "&hide_border=true"
	}
	return "&border_color=" + url.QueryEscape(hex(style))
}

// repoLink returns the repository page, or "" when neither a URL nor an
// owner is known.
func repoLink(username string, r profile.Repository) string {
	if r.URL != "" {
		return r.URL
	}
	if username == "" || r.Name == "" {
		return ""
	}
	return githubProfileURL + url.PathEscape(username) + "/" + url.PathEscape(r.Name)
}

func pinURL(username string, r profile.Repository, s profile.RepoSettings, suffix string) string {
	u := pinBaseURL + "?username=" + url.QueryEscape(username) + "&repo=" + url.QueryEscape(r.Name)
	if s.ShowOwner {
		u += "&show_owner=true"
	}
	return u + suffix
}

func repoCell(username string, r profile.Repository, s profile.RepoSettings, suffix string) string {
	link := html.EscapeString(repoLink(username, r))
	name := html.EscapeString(r.Name)
	title := name
	if link != "" && name != "" {
		title = fmt.Sprintf("<a href=\"%s\">%s</a>", link, name)
	}
	if title != "" {
		title = "<h4>" + title + "</h4>\n"
	}

	// The pin card needs both an owner and a repository name.
	pin := title
	if username != "" && r.Name != "" {
		pin = fmt.Sprintf("<a href=\"%s\"><img src=\"%s\" alt=\"%s\" /></a>\n",
			link, html.EscapeString(pinURL(username, r, s, suffix)), name)
	}

	var b strings.Builder
	switch s.CardStyle {
	case profile.CardStyleDetailed:
		b.WriteString(pin)
		if s.ShowDescription && r.Description != "" {
			fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(r.Description))
		}
		if s.ShowLanguage && r.Language != "" {
			fmt.Fprintf(&b, "<p><b>Language:</b> %s</p>\n", html.EscapeString(r.Language))
		}
		if s.ShowStats {
			fmt.Fprintf(&b, "<p>⭐ %d &nbsp; 🍴 %d</p>\n", r.Stars, r.Forks)
		}
	case profile.CardStyleMinimal:
		b.WriteString(title)
		if s.ShowDescription && r.Description != "" {
			fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(r.Description))
		}
		if s.ShowLanguage && r.Language != "" {
			fmt.Fprintf(&b, "<code>%s</code>\n", html.EscapeString(r.Language))
		}
		if s.ShowStats {
			fmt.Fprintf(&b, "<sub>⭐ %d · 🍴 %d</sub>\n", r.Stars, r.Forks)
		}
	default:
		b.WriteString(pin)
	}
	return b.String()
}
