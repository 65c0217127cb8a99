package github

import (
	"sort"

	"profile-readme/internal/profile"
)

var languageColors = map[string]string{
	"C":          "#555555",
	"C#":         "#178600",
	"C++":        "#f34b7d",
	"CSS":        "#563d7c",
	"Dart":       "#00B4AB",
	"Elixir":     "#6e4a7e",
	"Go":         "#00ADD8",
	"HTML":       "#e34c26",
	"Java":       "#b07219",
	"JavaScript": "#f1e05a",
	"Kotlin":     "#A97BFF",
	"Lua":        "#000080",
	"PHP":        "#4F5D95",
	"Python":     "#3572A5",
	"Ruby":       "#701516",
	"Rust":       "#dea584",
	"Scala":      "#c22d40",
	"Shell":      "#89e051",
	"Swift":      "#F05138",
	"TypeScript": "#3178c6",
	"Vue":        "#41b883",
	"Zig":        "#ec915c",
}

const unknownLanguageColor = "#858585"

func languageColor(lang string) string {
	if c, ok := languageColors[lang]; ok {
		return c
	}
	return unknownLanguageColor
}

// shares converts per-language counts into integer percentages that sum to
// 100, ordered by descending share then name.
func shares(counts map[string]int) profile.Languages {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return nil
	}

	type entry struct {
		name      string
		percent   int
		remainder int
	}
	entries := make([]entry, 0, len(counts))
	assigned := 0
	for name, n := range counts {
		p := n * 100 / total
		entries = append(entries, entry{name: name, percent: p, remainder: n * 100 % total})
		assigned += p
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].remainder != entries[j].remainder {
			return entries[i].remainder > entries[j].remainder
		}
		return entries[i].name < entries[j].name
	})
	for i := 0; assigned < 100; i++ {
		entries[i%len(entries)].percent++
		assigned++
	}

	out := make(profile.Languages, 0, len(entries))
	for _, e := range entries {
		if e.percent > 0 {
			out = append(out, profile.LanguageShare{Name: e.name, Percent: e.percent})
		}
	}
	return out.Sorted()
}
