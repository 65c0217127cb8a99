package markdown

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"profile-readme/internal/profile"
)

type TemplateID string

const (
	Modern       TemplateID = "modern"
	Minimal      TemplateID = "minimal"
	Creative     TemplateID = "creative"
	Developer    TemplateID = "developer"
	Professional TemplateID = "professional"
	Elegant      TemplateID = "elegant"
)

// Template describes the cosmetic choices of one README style. Which sections
// appear never depends on the template.
type Template struct {
	ID          TemplateID
	Name        string
	Description string

	// StatsTheme is passed as theme= to the stats image services.
	StatsTheme string
	// BadgeStyle is the shields style parameter.
	BadgeStyle string
	// Centered wraps badge rows and images in <div align="center">.
	Centered bool
	// SkillsAsCode renders skills as inline code instead of badges.
	SkillsAsCode bool
	Emoji        bool

	header  func(b *builder, p profile.ProfileData)
	heading func(title, emoji string) string
	// repoSettings adjusts the user's card settings to fit the style.
	repoSettings func(s profile.RepoSettings) profile.RepoSettings
	footer       string
}

var templates = []*Template{
	{
		ID:          Modern,
		Name:        "Modern",
		Description: "Emoji headings, for-the-badge shields and the radical stats theme",
		StatsTheme:  "radical",
		BadgeStyle:  "for-the-badge",
		Centered:    true,
		Emoji:       true,
		header:      modernHeader,
		heading:     emojiHeading("##"),
		footer:      "⭐️ Thanks for stopping by!",
	},
	{
		ID:           Minimal,
		Name:         "Minimal",
		Description:  "Plain headings and flat badges, minimal repository cards",
		StatsTheme:   "default",
		BadgeStyle:   "flat",
		Emoji:        false,
		header:       minimalHeader,
		heading:      plainHeading("##"),
		repoSettings: forceCardStyle(profile.CardStyleMinimal),
		footer:       "---",
	},
	{
		ID:           Creative,
		Name:         "Creative",
		Description:  "Wave banner, centered HTML layout and the tokyonight theme",
		StatsTheme:   "tokyonight",
		BadgeStyle:   "for-the-badge",
		Centered:     true,
		Emoji:        true,
		header:       creativeHeader,
		heading:      htmlHeading,
		repoSettings: defaultTheme("tokyonight"),
		footer:       "<p align=\"center\">✨ Let's build something amazing together ✨</p>",
	},
	{
		ID:           Developer,
		Name:         "Developer",
		Description:  "Code-block header, code-span skills and the dark theme",
		StatsTheme:   "dark",
		BadgeStyle:   "flat-square",
		SkillsAsCode: true,
		header:       developerHeader,
		heading:      codeHeading,
		repoSettings: defaultTheme("dark"),
		footer:       "```\n$ exit 0\n```",
	},
	{
		ID:          Professional,
		Name:        "Professional",
		Description: "Sober headings with rules between sections",
		StatsTheme:  "default",
		BadgeStyle:  "flat-square",
		header:      professionalHeader,
		heading:     ruledHeading,
		footer:      "---\n\n*Open to new opportunities.*",
	},
	{
		ID:          Elegant,
		Name:        "Elegant",
		Description: "Blockquote header, italic headings and the graywhite theme",
		StatsTheme:  "graywhite",
		BadgeStyle:  "flat",
		Centered:    true,
		header:      elegantHeader,
		heading:     italicHeading,
		footer:      "<p align=\"center\"><i>Thank you for visiting</i></p>",
	},
}

// Templates returns every template in display order.
func Templates() []*Template {
	return templates
}

// Lookup returns the template for id and whether it is known.
func Lookup(id string) (*Template, bool) {
	for _, t := range templates {
		if string(t.ID) == strings.ToLower(strings.TrimSpace(id)) {
			return t, true
		}
	}
	return nil, false
}

// ParseTemplate returns the template for id, falling back to modern.
func ParseTemplate(id string) *Template {
	if t, ok := Lookup(id); ok {
		return t
	}
	return templates[0]
}

func (t *Template) graphTheme() string {
	switch t.StatsTheme {
	case "radical", "tokyonight", "dark":
		return t.StatsTheme
	}
	return "github-compact"
}

func (t *Template) trophyTheme() string {
	switch t.StatsTheme {
	case "radical", "tokyonight":
		return t.StatsTheme
	case "dark":
		return "darkhub"
	}
	return "flat"
}

func (t *Template) repoCardSettings(s profile.RepoSettings) profile.RepoSettings {
	if t.repoSettings == nil {
		return s
	}
	return t.repoSettings(s)
}

func forceCardStyle(style string) func(profile.RepoSettings) profile.RepoSettings {
	return func(s profile.RepoSettings) profile.RepoSettings {
		s.CardStyle = style
		return s
	}
}

func defaultTheme(theme string) func(profile.RepoSettings) profile.RepoSettings {
	return func(s profile.RepoSettings) profile.RepoSettings {
		if s.Theme == "" || s.Theme == "default" {
			s.Theme = theme
		}
		return s
	}
}

func emojiHeading(prefix string) func(title, emoji string) string {
	return func(title, emoji string) string {
		return prefix + " " + emoji + " " + title
	}
}

func plainHeading(prefix string) func(title, emoji string) string {
	return func(title, _ string) string {
		return prefix + " " + title
	}
}

func htmlHeading(title, emoji string) string {
	return fmt.Sprintf("<h2 align=\"center\">%s %s</h2>", emoji, html.EscapeString(title))
}

func codeHeading(title, _ string) string {
	return "## `> " + strings.ToLower(title) + "`"
}

func ruledHeading(title, _ string) string {
	return "---\n\n## " + title
}

func italicHeading(title, _ string) string {
	return "## *" + title + "*"
}

func modernHeader(b *builder, p profile.ProfileData) {
	b.line("# Hi there, I'm " + p.Name + " 👋")
	if p.Title != "" {
		b.blank()
		b.line("### " + p.Title)
	}
	if p.About != "" {
		b.blank()
		b.line(p.About)
	}
}

func minimalHeader(b *builder, p profile.ProfileData) {
	b.line("# " + p.Name)
	if p.Title != "" {
		b.blank()
		b.line(p.Title)
	}
	if p.About != "" {
		b.blank()
		b.line(p.About)
	}
}

const bannerBaseURL = "https://capsule-render.vercel.app/api"

func creativeHeader(b *builder, p profile.ProfileData) {
	q := query{}.add("type", "waving").
		add("color", hex(p.Colors.Primary)).
		add("height", "200").
		add("section", "header").
		add("text", p.Name).
		add("fontSize", "50").
		add("fontColor", "ffffff")

	b.line("<div align=\"center\">")
	b.line(fmt.Sprintf("  <img src=\"%s\" width=\"100%%\" alt=\"%s\" />", imageURL(bannerBaseURL, q), html.EscapeString(p.Name)))
	b.line("</div>")
	if p.Title != "" {
		b.blank()
		b.line(fmt.Sprintf("<h3 align=\"center\">%s</h3>", html.EscapeString(p.Title)))
	}
	if p.About != "" {
		b.blank()
		b.line(fmt.Sprintf("<p align=\"center\">%s</p>", html.EscapeString(p.About)))
	}
}

func developerHeader(b *builder, p profile.ProfileData) {
	b.line("# " + p.Name)
	b.blank()
	b.line("```typescript")
	b.line("interface Developer {")
	b.line(fmt.Sprintf("  name: %q;", p.Name))
	if p.Title != "" {
		b.line(fmt.Sprintf("  role: %q;", p.Title))
	}
	if p.Location != "" {
		b.line(fmt.Sprintf("  location: %q;", p.Location))
	}
	if p.About != "" {
		b.line(fmt.Sprintf("  bio: %q;", p.About))
	}
	if p.GitHub != "" {
		b.line(fmt.Sprintf("  github: %q;", p.GitHub))
	}
	b.line("}")
	b.line("```")
}

func professionalHeader(b *builder, p profile.ProfileData) {
	b.line("# " + p.Name)
	if p.Title != "" {
		b.blank()
		b.line("**" + p.Title + "**")
	}
	if p.About != "" {
		b.blank()
		b.line(p.About)
	}
}

func elegantHeader(b *builder, p profile.ProfileData) {
	b.line("# " + p.Name)
	if p.Title == "" && p.About == "" {
		return
	}
	b.blank()
	if p.Title != "" {
		b.line("> *" + p.Title + "*")
	}
	if p.Title != "" && p.About != "" {
		b.line(">")
	}
	if p.About != "" {
		for _, l := range strings.Split(p.About, "\n") {
			b.line("> " + l)
		}
	}
}

// GitHubProfileLink returns the public GitHub page for a handle.
func GitHubProfileLink(handle string) string { return profileLink(githubProfileURL, handle) }

// TwitterProfileLink returns the public Twitter page for a handle.
func TwitterProfileLink(handle string) string { return profileLink(twitterProfileURL, handle) }

// LinkedInProfileLink returns the public LinkedIn page for a handle.
func LinkedInProfileLink(handle string) string { return profileLink(linkedinURL, handle) }

// RepoLink returns the page of r, or "" when it cannot be addressed.
func RepoLink(username string, r profile.Repository) string { return repoLink(username, r) }

// profileLink returns the public URL for a social handle.
func profileLink(base, handle string) string {
	return base + url.PathEscape(handle)
}
