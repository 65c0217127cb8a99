package profile

import (
	"fmt"
	"strings"
)

// Section identifies one block of a generated README.
type Section int

const (
	SectionHeader Section = iota
	SectionAbout
	SectionSocials
	SectionSkills
	SectionStats
	SectionTopLangs
	SectionStreak
	SectionContribGraph
	SectionTrophies
	SectionRepos
	SectionProjects
	SectionBlog
	SectionTimeline
	SectionEducation
	SectionContact
	SectionVisitors
)

var sectionNames = map[Section]string{
	SectionHeader:       "header",
	SectionAbout:        "about",
	SectionSocials:      "socials",
	SectionSkills:       "skills",
	SectionStats:        "stats",
	SectionTopLangs:     "topLangs",
	SectionStreak:       "streak",
	SectionContribGraph: "contribGraph",
	SectionTrophies:     "trophies",
	SectionRepos:        "repos",
	SectionProjects:     "projects",
	SectionBlog:         "blog",
	SectionTimeline:     "timeline",
	SectionEducation:    "education",
	SectionContact:      "contact",
	SectionVisitors:     "visitors",
}

// AllSections lists every section in render order.
var AllSections = []Section{
	SectionHeader, SectionAbout, SectionSocials, SectionSkills,
	SectionStats, SectionTopLangs, SectionStreak, SectionContribGraph, SectionTrophies,
	SectionRepos, SectionProjects, SectionBlog, SectionTimeline, SectionEducation,
	SectionContact, SectionVisitors,
}

func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("section(%d)", int(s))
}

// GitHubDerived reports whether the section displays metrics that only exist
// after a GitHub fetch.
func (s Section) GitHubDerived() bool {
	switch s {
	case SectionStats, SectionTopLangs, SectionStreak, SectionContribGraph, SectionTrophies, SectionVisitors:
		return true
	}
	return false
}

// Flag is a feature toggle on ProfileData.
type Flag string

const (
	FlagStats            Flag = "stats"
	FlagStreak           Flag = "streak"
	FlagTopLangs         Flag = "topLangs"
	FlagVisitors         Flag = "visitors"
	FlagShowRepos        Flag = "showRepos"
	FlagShowContribGraph Flag = "showContribGraph"
	FlagShowTrophies     Flag = "showTrophies"
	FlagShowProjects     Flag = "showProjects"
	FlagShowBlog         Flag = "showBlog"
	FlagShowTimeline     Flag = "showTimeline"
	FlagShowEducation    Flag = "showEducation"
	FlagShowContact      Flag = "showContact"
)

var AllFlags = []Flag{
	FlagStats, FlagStreak, FlagTopLangs, FlagVisitors,
	FlagShowRepos, FlagShowContribGraph, FlagShowTrophies,
	FlagShowProjects, FlagShowBlog, FlagShowTimeline, FlagShowEducation, FlagShowContact,
}

// ParseFlag matches a flag name case-insensitively.
func ParseFlag(name string) (Flag, error) {
	name = strings.TrimSpace(name)
	for _, f := range AllFlags {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown section flag %q", name)
}

func (p *ProfileData) flagRef(f Flag) *bool {
	switch f {
	case FlagStats:
		return &p.Stats
	case FlagStreak:
		return &p.Streak
	case FlagTopLangs:
		return &p.TopLangs
	case FlagVisitors:
		return &p.Visitors
	case FlagShowRepos:
		return &p.ShowRepos
	case FlagShowContribGraph:
		return &p.ShowContribGraph
	case FlagShowTrophies:
		return &p.ShowTrophies
	case FlagShowProjects:
		return &p.ShowProjects
	case FlagShowBlog:
		return &p.ShowBlog
	case FlagShowTimeline:
		return &p.ShowTimeline
	case FlagShowEducation:
		return &p.ShowEducation
	case FlagShowContact:
		return &p.ShowContact
	}
	return nil
}

// Enabled reports the value of a feature toggle. Unknown flags are off.
func (p ProfileData) Enabled(f Flag) bool {
	if ref := p.flagRef(f); ref != nil {
		return *ref
	}
	return false
}

func (p ProfileData) HasAbout() bool {
	return p.Location != "" || p.Company != "" || p.Website != ""
}

func (p ProfileData) HasSocials() bool {
	return p.GitHub != "" || p.Twitter != "" || p.LinkedIn != "" || p.Website != ""
}

// SkillList returns the skills with surrounding space trimmed, dropping blank
// entries.
func (p ProfileData) SkillList() []string {
	var out []string
	for _, s := range p.Skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Includes reports whether a section is rendered for this profile. The rule is
// the same for every template: flag-backed sections need the flag, and
// collection-backed sections additionally need a non-empty collection.
func (p ProfileData) Includes(s Section) bool {
	switch s {
	case SectionHeader:
		return true
	case SectionAbout:
		return p.HasAbout()
	case SectionSocials:
		return p.HasSocials()
	case SectionSkills:
		return len(p.SkillList()) > 0
	case SectionStats:
		return p.Stats
	case SectionTopLangs:
		return p.TopLangs
	case SectionStreak:
		return p.Streak
	case SectionContribGraph:
		return p.ShowContribGraph
	case SectionTrophies:
		return p.ShowTrophies
	case SectionVisitors:
		return p.Visitors
	case SectionRepos:
		return p.ShowRepos && len(p.Repositories) > 0
	case SectionProjects:
		return p.ShowProjects && len(p.Projects) > 0
	case SectionBlog:
		return p.ShowBlog && len(p.BlogPosts) > 0
	case SectionTimeline:
		return p.ShowTimeline && len(p.Timeline) > 0
	case SectionEducation:
		return p.ShowEducation && len(p.Education) > 0
	case SectionContact:
		return p.ShowContact && p.ContactInfo.present()
	}
	return false
}

func (c ContactInfo) present() bool {
	if c.Email != "" || c.Location != "" {
		return true
	}
	for _, s := range c.Socials {
		if s.URL != "" {
			return true
		}
	}
	return false
}

// Sections returns the included sections in render order.
func (p ProfileData) Sections() []Section {
	out := make([]Section, 0, len(AllSections))
	for _, s := range AllSections {
		if p.Includes(s) {
			out = append(out, s)
		}
	}
	return out
}
