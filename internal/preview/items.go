package preview

import (
	"fmt"
	"strings"

	"profile-readme/internal/markdown"
	"profile-readme/internal/profile"
)

func aboutFacts(p profile.ProfileData) []Fact {
	var facts []Fact
	if p.Location != "" {
		facts = append(facts, Fact{Label: "Location", Value: p.Location})
	}
	if p.Company != "" {
		facts = append(facts, Fact{Label: "Company", Value: p.Company})
	}
	if p.Website != "" {
		facts = append(facts, Fact{Label: "Website", Value: p.Website, Link: p.Website})
	}
	return facts
}

func socialBadges(p profile.ProfileData) []Badge {
	var badges []Badge
	if p.GitHub != "" {
		badges = append(badges, Badge{Label: "GitHub", Link: markdown.GitHubProfileLink(p.GitHub)})
	}
	if p.Twitter != "" {
		badges = append(badges, Badge{Label: "Twitter", Link: markdown.TwitterProfileLink(p.Twitter)})
	}
	if p.LinkedIn != "" {
		badges = append(badges, Badge{Label: "LinkedIn", Link: markdown.LinkedInProfileLink(p.LinkedIn)})
	}
	if p.Website != "" {
		badges = append(badges, Badge{Label: "Website", Link: p.Website})
	}
	return badges
}

// rank mirrors the trophy service's letter grades.
func rank(n int, thresholds [4]int) string {
	grades := [4]string{"S", "A", "B", "C"}
	for i, t := range thresholds {
		if n >= t {
			return grades[i]
		}
	}
	return "-"
}

func trophies(p profile.ProfileData) []Metric {
	return []Metric{
		{Label: "Stars", Value: rank(p.TotalStars, [4]int{2000, 200, 30, 1}), Simulated: p.Simulated.RepoStats},
		{Label: "Followers", Value: rank(p.Followers, [4]int{1000, 100, 20, 1})},
		{Label: "Repositories", Value: rank(p.PublicRepos, [4]int{100, 50, 20, 1})},
		{Label: "Commits", Value: rank(p.TotalContributions, [4]int{4000, 1000, 200, 1}), Simulated: p.Simulated.Streaks},
	}
}

func repoItems(p profile.ProfileData) []Item {
	s := p.RepoSettings
	items := make([]Item, 0, len(p.Repositories))
	for _, r := range p.Repositories {
		it := Item{Title: r.Name, Link: markdown.RepoLink(p.GitHub, r)}
		if s.ShowOwner && p.GitHub != "" && r.Name != "" {
			it.Title = p.GitHub + "/" + r.Name
		}
		if s.ShowDescription {
			it.Body = r.Description
		}
		if s.ShowLanguage && r.Language != "" {
			it.Tags = []string{r.Language}
		}
		if s.ShowStats {
			it.Subtitle = fmt.Sprintf("★ %s · ⑂ %s", count(r.Stars), count(r.Forks))
		}
		items = append(items, it)
	}
	return items
}

func projectItems(projects []profile.Project) []Item {
	items := make([]Item, 0, len(projects))
	for _, pr := range projects {
		it := Item{Title: pr.Title, Body: pr.Description, Image: pr.Image, Tags: pr.Technologies}
		if pr.RepoURL != "" {
			it.Links = append(it.Links, Fact{Label: "Repository", Link: pr.RepoURL})
		}
		if pr.LiveURL != "" {
			it.Links = append(it.Links, Fact{Label: "Live Demo", Link: pr.LiveURL})
		}
		items = append(items, it)
	}
	return items
}

func blogItems(posts []profile.BlogPost) []Item {
	items := make([]Item, 0, len(posts))
	for _, b := range posts {
		var meta []string
		if b.Date != "" {
			meta = append(meta, b.Date)
		}
		if b.ReadTime != "" {
			meta = append(meta, b.ReadTime)
		}
		title := b.Title
		if title == "" {
			title = b.URL
		}
		items = append(items, Item{
			Title:    title,
			Link:     b.URL,
			Subtitle: strings.Join(meta, " · "),
			Body:     b.Excerpt,
			Image:    b.Image,
			Tags:     b.Tags,
		})
	}
	return items
}

func timelineItems(entries []profile.TimelineEntry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		title := e.Title
		if e.Organization != "" {
			if title != "" {
				title += " @ "
			}
			title += e.Organization
		}
		items = append(items, Item{Title: title, Subtitle: e.Period, Body: e.Description, Tags: e.Tags})
	}
	return items
}

func educationItems(entries []profile.Education) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		title := strings.TrimSpace(strings.Join(nonEmpty(e.Degree, e.Field), " in "))
		if title == "" {
			title = e.Institution
		}
		sub := strings.Join(nonEmpty(e.Institution, e.Location, period(e.StartDate, e.EndDate)), " · ")
		it := Item{Title: title, Subtitle: sub, Body: e.Description, Image: e.Logo, Bullets: e.Achievements}
		if e.GPA != "" {
			it.Tags = []string{"GPA " + e.GPA}
		}
		items = append(items, it)
	}
	return items
}

func contactFacts(c profile.ContactInfo) []Fact {
	var facts []Fact
	if c.Email != "" {
		facts = append(facts, Fact{Label: "Email", Value: c.Email, Link: "mailto:" + c.Email})
	}
	if c.Location != "" {
		facts = append(facts, Fact{Label: "Location", Value: c.Location})
	}
	for _, s := range c.Socials {
		if s.URL != "" {
			facts = append(facts, Fact{Label: s.Platform, Value: s.URL, Link: s.URL})
		}
	}
	return facts
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func period(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start + " - Present"
	}
	return end
}
