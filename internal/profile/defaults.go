package profile

// DefaultRepoSettings returns the repository card layout used for new profiles.
func DefaultRepoSettings() RepoSettings {
	return RepoSettings{
		CardStyle:       CardStyleDefault,
		GridColumns:     2,
		Alignment:       AlignCenter,
		ShowDescription: true,
		ShowLanguage:    true,
		ShowStats:       true,
		ShowOwner:       false,
		Theme:           "default",
		BorderStyle:     "default",
		IconSize:        "medium",
	}
}

// Default returns the sample profile a new user starts from.
func Default() ProfileData {
	return ProfileData{
		Name:     "Jane Developer",
		Title:    "Full Stack Developer",
		About:    "I build fast, accessible web applications and enjoy contributing to open source.",
		Location: "San Francisco, CA",
		Company:  "Acme Corp",
		Website:  "https://example.dev",
		GitHub:   "janedev",
		Twitter:  "janedev",
		LinkedIn: "janedev",
		Skills:   []string{"JavaScript", "TypeScript", "React", "Go", "Docker", "PostgreSQL"},
		Colors: Colors{
			Primary:   "#5847eb",
			Secondary: "#f97316",
			Accent:    "#10b981",
		},
		Stats:    true,
		Streak:   true,
		TopLangs: true,
		Projects: []Project{
			{
				Title:        "Task Board",
				Description:  "A collaborative kanban board with real-time sync.",
				Technologies: []string{"React", "Go", "WebSockets"},
				RepoURL:      "https://github.com/janedev/task-board",
				LiveURL:      "https://task-board.example.dev",
			},
			{
				Title:        "Weather CLI",
				Description:  "Forecasts in your terminal.",
				Technologies: []string{"Go"},
				RepoURL:      "https://github.com/janedev/weather-cli",
			},
		},
		BlogPosts: []BlogPost{
			{
				Title:    "Shipping a Side Project in a Weekend",
				Excerpt:  "Scope ruthlessly, automate deploys, and write the README first.",
				Date:     "2024-03-12",
				ReadTime: "5 min read",
				URL:      "https://example.dev/blog/weekend-project",
				Tags:     []string{"productivity", "side-projects"},
			},
		},
		Timeline: []TimelineEntry{
			{
				Title:        "Senior Software Engineer",
				Organization: "Acme Corp",
				Period:       "2021 - Present",
				Description:  "Leading the platform team.",
				Tags:         []string{"Go", "Kubernetes"},
			},
			{
				Title:        "Software Engineer",
				Organization: "Startup Inc",
				Period:       "2018 - 2021",
				Description:  "Built the customer dashboard from scratch.",
				Tags:         []string{"React", "Node.js"},
			},
		},
		Education: []Education{
			{
				Institution:  "State University",
				Degree:       "B.S.",
				Field:        "Computer Science",
				Location:     "Springfield",
				StartDate:    "2014",
				EndDate:      "2018",
				GPA:          "3.8",
				Achievements: []string{"Dean's List", "ACM chapter lead"},
			},
		},
		ContactInfo: ContactInfo{
			Email:    "jane@example.dev",
			Location: "San Francisco, CA",
			Socials: []Social{
				{Platform: "Mastodon", URL: "https://mastodon.social/@janedev"},
			},
		},
		RepoSettings: DefaultRepoSettings(),
	}
}
