// Package preview builds a visual rendition of a profile README. It walks the
// same section list as the markdown generator, but GitHub-derived sections
// show real numbers and fall back to a placeholder until data is fetched.
package preview

import (
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"profile-readme/internal/markdown"
	"profile-readme/internal/profile"
)

// FetchPlaceholder is shown in GitHub-derived sections before a fetch.
const FetchPlaceholder = `Click "Fetch GitHub Data" to load your statistics`

type Document struct {
	Template  *markdown.Template
	Name      string
	Title     string
	About     string
	AvatarURL string
	Colors    profile.Colors
	Sections  []Section
}

type Section struct {
	Kind  profile.Section
	Title string
	Emoji string

	// Placeholder replaces the body of a GitHub-derived section when no data
	// has been fetched.
	Placeholder string

	Facts   []Fact
	Badges  []Badge
	Metrics []Metric
	Bars    []Bar
	Items   []Item
	Columns int
}

type Fact struct {
	Label string
	Value string
	Link  string
}

type Badge struct {
	Label string
	Link  string
}

type Metric struct {
	Label     string
	Value     string
	Simulated bool
}

type Bar struct {
	Label   string
	Percent int
}

type Item struct {
	Title    string
	Link     string
	Subtitle string
	Body     string
	Image    string
	Tags     []string
	Links    []Fact
	Bullets  []string
}

var numbers = message.NewPrinter(language.English)

func count(n int) string {
	return numbers.Sprintf("%d", n)
}

var cssColor = regexp.MustCompile(`^#[0-9a-fA-F]{3}([0-9a-fA-F]{3})?$`)

func safeColors(c profile.Colors) profile.Colors {
	pick := func(v, fallback string) string {
		if cssColor.MatchString(v) {
			return v
		}
		return fallback
	}
	return profile.Colors{
		Primary:   pick(c.Primary, "#5847eb"),
		Secondary: pick(c.Secondary, "#f97316"),
		Accent:    pick(c.Accent, "#10b981"),
	}
}

// Build lays out p as the named template would. Unknown templates use modern.
func Build(p profile.ProfileData, templateID string) Document {
	doc := Document{
		Template:  markdown.ParseTemplate(templateID),
		Name:      p.Name,
		Title:     p.Title,
		About:     p.About,
		AvatarURL: p.AvatarURL,
		Colors:    safeColors(p.Colors),
	}

	for _, kind := range p.Sections() {
		s := Section{Kind: kind}
		if kind != profile.SectionHeader {
			s.Title, s.Emoji = markdown.SectionTitle(kind)
		}
		if kind.GitHubDerived() && !p.GitHubDataFetched {
			s.Placeholder = FetchPlaceholder
		} else {
			fill(&s, p)
		}
		doc.Sections = append(doc.Sections, s)
	}
	return doc
}

// Kinds returns the section kinds in display order.
func (d Document) Kinds() []profile.Section {
	out := make([]profile.Section, len(d.Sections))
	for i, s := range d.Sections {
		out[i] = s.Kind
	}
	return out
}

func fill(s *Section, p profile.ProfileData) {
	switch s.Kind {
	case profile.SectionAbout:
		s.Facts = aboutFacts(p)
	case profile.SectionSocials:
		s.Badges = socialBadges(p)
	case profile.SectionSkills:
		for _, skill := range p.SkillList() {
			s.Badges = append(s.Badges, Badge{Label: skill})
		}
	case profile.SectionStats:
		s.Metrics = []Metric{
			{Label: "Total Stars", Value: count(p.TotalStars), Simulated: p.Simulated.RepoStats},
			{Label: "Total Forks", Value: count(p.TotalForks), Simulated: p.Simulated.RepoStats},
			{Label: "Public Repos", Value: count(p.PublicRepos)},
			{Label: "Followers", Value: count(p.Followers)},
			{Label: "Following", Value: count(p.Following)},
			{Label: "Contributions", Value: count(p.TotalContributions), Simulated: p.Simulated.Streaks},
		}
	case profile.SectionTopLangs:
		for _, l := range p.Languages.Sorted() {
			s.Bars = append(s.Bars, Bar{Label: l.Name, Percent: clampPercent(l.Percent)})
		}
	case profile.SectionStreak:
		s.Metrics = []Metric{
			{Label: "Current Streak", Value: count(p.CurrentStreak) + " days", Simulated: p.Simulated.Streaks},
			{Label: "Longest Streak", Value: count(p.LongestStreak) + " days", Simulated: p.Simulated.Streaks},
			{Label: "Total Contributions", Value: count(p.TotalContributions), Simulated: p.Simulated.Streaks},
		}
	case profile.SectionContribGraph:
		s.Metrics = []Metric{
			{Label: "Contributions this year", Value: count(p.TotalContributions), Simulated: p.Simulated.Streaks},
		}
	case profile.SectionTrophies:
		s.Metrics = trophies(p)
	case profile.SectionVisitors:
		s.Metrics = []Metric{
			{Label: "Profile Views", Value: count(p.ProfileViews), Simulated: p.Simulated.ProfileViews},
		}
	case profile.SectionRepos:
		s.Columns = p.RepoSettings.Columns()
		s.Items = repoItems(p)
	case profile.SectionProjects:
		s.Items = projectItems(p.Projects)
	case profile.SectionBlog:
		s.Items = blogItems(p.BlogPosts)
	case profile.SectionTimeline:
		s.Items = timelineItems(p.Timeline)
	case profile.SectionEducation:
		s.Items = educationItems(p.Education)
	case profile.SectionContact:
		s.Facts = contactFacts(p.ContactInfo)
	}
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
