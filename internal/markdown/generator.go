// Package markdown renders a profile into the Markdown of a GitHub profile
// README. Output is a pure function of the profile and the template id.
package markdown

import (
	"fmt"
	"html"
	"strings"

	"profile-readme/internal/profile"
)

// Generate renders p with the named template. Unknown ids use modern.
func Generate(p profile.ProfileData, templateID string) string {
	return ParseTemplate(templateID).Render(p)
}

// Render assembles the README. Section presence comes from p.Sections(); the
// template only decides how each section looks.
func (t *Template) Render(p profile.ProfileData) string {
	b := &builder{}
	c := colorsOf(p.Colors.Primary, p.Colors.Secondary, p.Colors.Accent)

	for i, s := range p.Sections() {
		if i > 0 {
			b.blank()
		}
		if s == profile.SectionHeader {
			t.header(b, p)
			continue
		}
		title, emoji := sectionTitle(s)
		b.line(t.heading(title, emoji))
		b.blank()
		t.section(b, s, p, c)
	}

	if t.footer != "" {
		b.blank()
		b.line(t.footer)
	}
	return b.String()
}

var sectionTitles = map[profile.Section][2]string{
	profile.SectionAbout:        {"About Me", "🚀"},
	profile.SectionSocials:      {"Connect with Me", "🌐"},
	profile.SectionSkills:       {"Skills", "🛠️"},
	profile.SectionStats:        {"GitHub Stats", "📊"},
	profile.SectionTopLangs:     {"Top Languages", "💻"},
	profile.SectionStreak:       {"Contribution Streak", "🔥"},
	profile.SectionContribGraph: {"Contribution Graph", "📈"},
	profile.SectionTrophies:     {"GitHub Trophies", "🏆"},
	profile.SectionRepos:        {"Featured Repositories", "📌"},
	profile.SectionProjects:     {"Projects", "🧪"},
	profile.SectionBlog:         {"Latest Blog Posts", "✍️"},
	profile.SectionTimeline:     {"Experience", "💼"},
	profile.SectionEducation:    {"Education", "🎓"},
	profile.SectionContact:      {"Contact", "📫"},
	profile.SectionVisitors:     {"Profile Views", "👀"},
}

// SectionTitle returns the display title and emoji shared by the generator and
// the preview.
func SectionTitle(s profile.Section) (string, string) {
	return sectionTitle(s)
}

func sectionTitle(s profile.Section) (string, string) {
	t := sectionTitles[s]
	return t[0], t[1]
}

func (t *Template) section(b *builder, s profile.Section, p profile.ProfileData, c colorSet) {
	switch s {
	case profile.SectionAbout:
		t.about(b, p)
	case profile.SectionSocials:
		t.socials(b, p)
	case profile.SectionSkills:
		t.skills(b, p)
	case profile.SectionStats:
		t.image(b, "GitHub Stats", statsCardURL(t, p.GitHub, c))
	case profile.SectionTopLangs:
		t.image(b, "Top Languages", topLangsURL(t, p.GitHub, c))
	case profile.SectionStreak:
		t.image(b, "GitHub Streak", streakURL(t, p.GitHub, c))
	case profile.SectionContribGraph:
		t.image(b, "Contribution Graph", contribGraphURL(t, p.GitHub, c))
	case profile.SectionTrophies:
		t.image(b, "GitHub Trophies", trophiesURL(t, p.GitHub))
	case profile.SectionVisitors:
		t.image(b, "Profile Views", visitorsURL(t, p.GitHub, c))
	case profile.SectionRepos:
		b.raw(BuildRepoCards(p, t.repoCardSettings(p.RepoSettings)))
	case profile.SectionProjects:
		t.projects(b, p.Projects)
	case profile.SectionBlog:
		t.blog(b, p.BlogPosts)
	case profile.SectionTimeline:
		t.timeline(b, p.Timeline)
	case profile.SectionEducation:
		t.education(b, p.Education)
	case profile.SectionContact:
		t.contact(b, p.ContactInfo)
	}
}

func (t *Template) label(emoji, text string) string {
	if t.Emoji {
		return emoji + " **" + text + ":**"
	}
	return "**" + text + ":**"
}

func (t *Template) about(b *builder, p profile.ProfileData) {
	if p.Location != "" {
		b.line("- " + t.label("📍", "Location") + " " + p.Location)
	}
	if p.Company != "" {
		b.line("- " + t.label("🏢", "Company") + " " + p.Company)
	}
	if p.Website != "" {
		b.line("- " + t.label("🔗", "Website") + " [" + p.Website + "](" + p.Website + ")")
	}
}

func (t *Template) socials(b *builder, p profile.ProfileData) {
	var links []string
	add := func(handle, platform, color, logo, target string) {
		if handle == "" {
			return
		}
		links = append(links, fmt.Sprintf("[![%s](%s)](%s)", platform, shieldsURL(platform, color, t.BadgeStyle, logo), target))
	}
	add(p.GitHub, "GitHub", "181717", "github", GitHubProfileLink(p.GitHub))
	add(p.Twitter, "Twitter", "1DA1F2", "twitter", TwitterProfileLink(p.Twitter))
	add(p.LinkedIn, "LinkedIn", "0A66C2", "linkedin", LinkedInProfileLink(p.LinkedIn))
	add(p.Website, "Website", p.Colors.Primary, "google-chrome", p.Website)

	t.centered(b, strings.Join(links, "\n"))
}

func (t *Template) skills(b *builder, p profile.ProfileData) {
	skills := p.SkillList()
	if t.SkillsAsCode {
		b.line(codeSpans(skills))
		return
	}

	badges := make([]string, len(skills))
	for i, s := range skills {
		badges[i] = fmt.Sprintf("![%s](%s)", s, shieldsURL(s, p.Colors.Primary, t.BadgeStyle, skillLogo(s)))
	}
	t.centered(b, strings.Join(badges, "\n"))
}

func (t *Template) image(b *builder, alt, src string) {
	if t.Centered {
		b.line("<div align=\"center\">")
		b.line(fmt.Sprintf("  <img src=\"%s\" alt=\"%s\" />", html.EscapeString(src), alt))
		b.line("</div>")
		return
	}
	b.line(fmt.Sprintf("![%s](%s)", alt, src))
}

func (t *Template) centered(b *builder, body string) {
	if !t.Centered {
		b.line(body)
		return
	}
	b.line("<div align=\"center\">")
	b.blank()
	b.line(body)
	b.blank()
	b.line("</div>")
}

// codeSpan wraps s in backticks, widening the fence when s holds one.
func codeSpan(s string) string {
	if strings.Contains(s, "`") {
		return "`` " + s + " ``"
	}
	return "`" + s + "`"
}

func codeSpans(items []string) string {
	spans := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			spans = append(spans, codeSpan(it))
		}
	}
	return strings.Join(spans, " ")
}

// paragraphs writes blocks separated by single blank lines, skipping empty
// ones so a missing value never leaves a bare heading or gap.
type paragraphs struct {
	b     *builder
	wrote bool
}

func (w *paragraphs) add(s string) {
	if s == "" {
		return
	}
	if w.wrote {
		w.b.blank()
	}
	w.b.line(s)
	w.wrote = true
}

func itemHeading(title string) string {
	if title == "" {
		return ""
	}
	return "### " + title
}

func (t *Template) projects(b *builder, projects []profile.Project) {
	w := &paragraphs{b: b}
	for _, pr := range projects {
		w.add(itemHeading(pr.Title))
		if pr.Image != "" {
			alt := pr.Title
			if alt == "" {
				alt = "Project"
			}
			w.add(fmt.Sprintf("![%s](%s)", alt, pr.Image))
		}
		w.add(pr.Description)
		if tech := codeSpans(pr.Technologies); tech != "" {
			w.add(t.label("🧰", "Tech") + " " + tech)
		}

		var links []string
		if pr.RepoURL != "" {
			links = append(links, "[Repository]("+pr.RepoURL+")")
		}
		if pr.LiveURL != "" {
			links = append(links, "[Live Demo]("+pr.LiveURL+")")
		}
		w.add(strings.Join(links, " · "))
	}
}

func (t *Template) blog(b *builder, posts []profile.BlogPost) {
	w := &paragraphs{b: b}
	for _, post := range posts {
		title := post.Title
		if post.URL != "" {
			text := title
			if text == "" {
				text = post.URL
			}
			title = "[" + text + "](" + post.URL + ")"
		}
		w.add(itemHeading(title))

		var meta []string
		if post.Date != "" {
			meta = append(meta, post.Date)
		}
		if post.ReadTime != "" {
			meta = append(meta, post.ReadTime)
		}
		if len(meta) > 0 {
			w.add("*" + strings.Join(meta, " · ") + "*")
		}
		w.add(post.Excerpt)
		w.add(codeSpans(post.Tags))
	}
}

func (t *Template) timeline(b *builder, entries []profile.TimelineEntry) {
	w := &paragraphs{b: b}
	for _, e := range entries {
		title := e.Title
		if e.Organization != "" {
			if title != "" {
				title += " @ "
			}
			title += e.Organization
		}
		w.add(itemHeading(title))
		if e.Period != "" {
			w.add("*" + e.Period + "*")
		}
		w.add(e.Description)
		w.add(codeSpans(e.Tags))
	}
}

func (t *Template) education(b *builder, entries []profile.Education) {
	w := &paragraphs{b: b}
	for _, e := range entries {
		title := e.Degree
		if e.Field != "" {
			if title != "" {
				title += " in "
			}
			title += e.Field
		}
		if title == "" {
			title = e.Institution
		}
		w.add(itemHeading(title))

		place := e.Institution
		if e.Location != "" {
			if place != "" {
				place += ", "
			}
			place += e.Location
		}
		if place != "" {
			w.add("**" + place + "**")
		}
		if period := joinPeriod(e.StartDate, e.EndDate); period != "" {
			w.add("*" + period + "*")
		}
		if e.GPA != "" {
			w.add("GPA: " + e.GPA)
		}
		w.add(e.Description)

		var achievements []string
		for _, a := range e.Achievements {
			if a != "" {
				achievements = append(achievements, "- "+a)
			}
		}
		w.add(strings.Join(achievements, "\n"))
	}
}

func joinPeriod(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start + " - Present"
	default:
		return end
	}
}

func (t *Template) contact(b *builder, c profile.ContactInfo) {
	if c.Email != "" {
		b.line("- " + t.label("📧", "Email") + " [" + c.Email + "](mailto:" + c.Email + ")")
	}
	if c.Location != "" {
		b.line("- " + t.label("📍", "Location") + " " + c.Location)
	}
	for _, s := range c.Socials {
		if s.URL == "" {
			continue
		}
		name := s.Platform
		if name == "" {
			name = s.URL
		}
		b.line("- [" + name + "](" + s.URL + ")")
	}
}

type builder struct {
	sb strings.Builder
}

func (b *builder) line(s string) {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
}

func (b *builder) blank() {
	b.sb.WriteByte('\n')
}

// raw writes s, adding a trailing newline when it lacks one.
func (b *builder) raw(s string) {
	b.sb.WriteString(s)
	if !strings.HasSuffix(s, "\n") {
		b.sb.WriteByte('\n')
	}
}

func (b *builder) String() string {
	return b.sb.String()
}
