package markdown

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	shieldsBaseURL    = "https://img.shields.io/badge/"
	statsBaseURL      = "https://github-readme-stats.vercel.app/api"
	topLangsBaseURL   = "https://github-readme-stats.vercel.app/api/top-langs/"
	pinBaseURL        = "https://github-readme-stats.vercel.app/api/pin/"
	streakBaseURL     = "https://streak-stats.demolab.com/"
	graphBaseURL      = "https://github-readme-activity-graph.vercel.app/graph"
	trophyBaseURL     = "https://github-profile-trophy.vercel.app/"
	visitorsBaseURL   = "https://komarev.com/ghpvc/"
	githubProfileURL  = "https://github.com/"
	twitterProfileURL = "https://twitter.com/"
	linkedinURL       = "https://linkedin.com/in/"

	defaultBadgeColor = "5847eb"
)

// hex strips the leading # that badge services do not accept.
func hex(color string) string {
	return strings.TrimPrefix(strings.TrimSpace(color), "#")
}

// badgeText escapes a label for the shields path syntax, where - and _ are
// separators.
func badgeText(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	s = strings.ReplaceAll(s, " ", "_")
	return url.PathEscape(s)
}

// shieldsURL builds a static badge. The logo is passed through as-is; icon
// slugs that do not match the label simply render without an icon.
func shieldsURL(label, color, style, logo string) string {
	c := hex(color)
	if c == "" {
		c = defaultBadgeColor
	}
	u := fmt.Sprintf("%s%s-%s?style=%s", shieldsBaseURL, badgeText(label), url.PathEscape(c), url.QueryEscape(style))
	if logo != "" {
		u += "&logo=" + url.QueryEscape(logo) + "&logoColor=white"
	}
	return u
}

func skillLogo(skill string) string {
	return strings.ToLower(skill)
}

type query []string

func (q query) add(key, value string) query {
	return append(q, key+"="+url.QueryEscape(value))
}

func (q query) String() string {
	return strings.Join(q, "&")
}

func imageURL(base string, q query) string {
	return base + "?" + q.String()
}

func statsCardURL(t *Template, username string, c colorSet) string {
	q := query{}.add("username", username).
		add("show_icons", "true").
		add("theme", t.StatsTheme).
		add("hide_border", "true").
		add("title_color", c.primary).
		add("icon_color", c.secondary)
	return imageURL(statsBaseURL, q)
}

func topLangsURL(t *Template, username string, c colorSet) string {
	q := query{}.add("username", username).
		add("layout", "compact").
		add("theme", t.StatsTheme).
		add("hide_border", "true").
		add("title_color", c.primary)
	return imageURL(topLangsBaseURL, q)
}

// streakURL targets a service that names the parameter "user".
func streakURL(t *Template, username string, c colorSet) string {
	q := query{}.add("user", username).
		add("theme", t.StatsTheme).
		add("hide_border", "true").
		add("ring", c.primary).
		add("fire", c.secondary)
	return imageURL(streakBaseURL, q)
}

func contribGraphURL(t *Template, username string, c colorSet) string {
	q := query{}.add("username", username).
		add("theme", t.graphTheme()).
		add("hide_border", "true").
		add("color", c.primary).
		add("line", c.secondary).
		add("point", c.accent)
	return imageURL(graphBaseURL, q)
}

func trophiesURL(t *Template, username string) string {
	q := query{}.add("username", username).
		add("theme", t.trophyTheme()).
		add("no-frame", "true").
		add("margin-w", "4").
		add("row", "1")
	return imageURL(trophyBaseURL, q)
}

func visitorsURL(t *Template, username string, c colorSet) string {
	q := query{}.add("username", username).
		add("label", "Profile views").
		add("color", c.primary).
		add("style", t.BadgeStyle)
	return imageURL(visitorsBaseURL, q)
}

type colorSet struct {
	primary, secondary, accent string
}

func colorsOf(primary, secondary, accent string) colorSet {
	return colorSet{primary: hex(primary), secondary: hex(secondary), accent: hex(accent)}
}
