package profile

import (
	"slices"
	"strings"
)

// Update is a reducer step applied to a private copy of a profile.
type Update func(*ProfileData)

// Apply returns a copy of p with updates applied in order. p is not modified.
func (p ProfileData) Apply(updates ...Update) ProfileData {
	next := p.Clone()
	for _, u := range updates {
		if u != nil {
			u(&next)
		}
	}
	return next
}

// Clone returns a deep copy.
func (p ProfileData) Clone() ProfileData {
	c := p
	c.Skills = slices.Clone(p.Skills)
	c.Languages = slices.Clone(p.Languages)
	c.Repositories = slices.Clone(p.Repositories)

	if p.Projects != nil {
		c.Projects = make([]Project, len(p.Projects))
		for i, pr := range p.Projects {
			pr.Technologies = slices.Clone(pr.Technologies)
			c.Projects[i] = pr
		}
	}
	if p.BlogPosts != nil {
		c.BlogPosts = make([]BlogPost, len(p.BlogPosts))
		for i, b := range p.BlogPosts {
			b.Tags = slices.Clone(b.Tags)
			c.BlogPosts[i] = b
		}
	}
	if p.Timeline != nil {
		c.Timeline = make([]TimelineEntry, len(p.Timeline))
		for i, t := range p.Timeline {
			t.Tags = slices.Clone(t.Tags)
			c.Timeline[i] = t
		}
	}
	if p.Education != nil {
		c.Education = make([]Education, len(p.Education))
		for i, e := range p.Education {
			e.Achievements = slices.Clone(e.Achievements)
			c.Education[i] = e
		}
	}
	c.ContactInfo.Socials = slices.Clone(p.ContactInfo.Socials)
	return c
}

// Identity groups the free-text header fields.
type Identity struct {
	Name     string
	Title    string
	About    string
	Location string
	Company  string
	Website  string
}

func SetIdentity(id Identity) Update {
	return func(p *ProfileData) {
		p.Name = id.Name
		p.Title = id.Title
		p.About = id.About
		p.Location = id.Location
		p.Company = id.Company
		p.Website = id.Website
	}
}

// SetSocials stores bare handles. A pasted profile URL is reduced to its last
// path segment.
func SetSocials(github, twitter, linkedin string) Update {
	return func(p *ProfileData) {
		p.GitHub = Handle(github)
		p.Twitter = Handle(twitter)
		p.LinkedIn = Handle(linkedin)
	}
}

// Handle strips URL prefixes, a leading @ and trailing slashes from a social handle.
func Handle(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimPrefix(s, "@")
}

func SetColors(c Colors) Update {
	return func(p *ProfileData) {
		p.Colors = c
	}
}

// AddSkill appends a skill unless an equal one (ignoring case) exists.
func AddSkill(skill string) Update {
	return func(p *ProfileData) {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			return
		}
		for _, s := range p.Skills {
			if strings.EqualFold(s, skill) {
				return
			}
		}
		p.Skills = append(p.Skills, skill)
	}
}

func RemoveSkill(skill string) Update {
	return func(p *ProfileData) {
		p.Skills = slices.DeleteFunc(p.Skills, func(s string) bool {
			return strings.EqualFold(s, skill)
		})
	}
}

func SetFlag(f Flag, on bool) Update {
	return func(p *ProfileData) {
		if ref := p.flagRef(f); ref != nil {
			*ref = on
		}
	}
}

func SetRepoSettings(s RepoSettings) Update {
	return func(p *ProfileData) {
		p.RepoSettings = s
	}
}

func AddProject(pr Project) Update {
	return func(p *ProfileData) {
		p.Projects = append(p.Projects, pr)
	}
}

func AddBlogPost(b BlogPost) Update {
	return func(p *ProfileData) {
		p.BlogPosts = append(p.BlogPosts, b)
	}
}

func AddTimelineEntry(t TimelineEntry) Update {
	return func(p *ProfileData) {
		p.Timeline = append(p.Timeline, t)
	}
}

func AddEducation(e Education) Update {
	return func(p *ProfileData) {
		p.Education = append(p.Education, e)
	}
}

func SetContact(c ContactInfo) Update {
	return func(p *ProfileData) {
		p.ContactInfo = c
	}
}
