package profile

type ProfileData struct {
	Name      string `json:"name" yaml:"name"`
	Title     string `json:"title" yaml:"title"`
	About     string `json:"about" yaml:"about"`
	Location  string `json:"location" yaml:"location"`
	Company   string `json:"company" yaml:"company"`
	Website   string `json:"website" yaml:"website"`
	AvatarURL string `json:"avatarUrl" yaml:"avatarUrl"`

	// Bare handles, never full URLs.
	GitHub   string `json:"github" yaml:"github"`
	Twitter  string `json:"twitter" yaml:"twitter"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`

	Skills []string `json:"skills" yaml:"skills"`
	Colors Colors   `json:"colors" yaml:"colors"`

	Stats            bool `json:"stats" yaml:"stats"`
	Streak           bool `json:"streak" yaml:"streak"`
	TopLangs         bool `json:"topLangs" yaml:"topLangs"`
	Visitors         bool `json:"visitors" yaml:"visitors"`
	ShowRepos        bool `json:"showRepos" yaml:"showRepos"`
	ShowContribGraph bool `json:"showContribGraph" yaml:"showContribGraph"`
	ShowTrophies     bool `json:"showTrophies" yaml:"showTrophies"`
	ShowProjects     bool `json:"showProjects" yaml:"showProjects"`
	ShowBlog         bool `json:"showBlog" yaml:"showBlog"`
	ShowTimeline     bool `json:"showTimeline" yaml:"showTimeline"`
	ShowEducation    bool `json:"showEducation" yaml:"showEducation"`
	ShowContact      bool `json:"showContact" yaml:"showContact"`

	GitHubDataFetched  bool         `json:"githubDataFetched" yaml:"githubDataFetched"`
	PublicRepos        int          `json:"publicRepos" yaml:"publicRepos"`
	Followers          int          `json:"followers" yaml:"followers"`
	Following          int          `json:"following" yaml:"following"`
	TotalStars         int          `json:"totalStars" yaml:"totalStars"`
	TotalForks         int          `json:"totalForks" yaml:"totalForks"`
	TotalContributions int          `json:"totalContributions" yaml:"totalContributions"`
	CurrentStreak      int          `json:"currentStreak" yaml:"currentStreak"`
	LongestStreak      int          `json:"longestStreak" yaml:"longestStreak"`
	Languages          Languages    `json:"languages" yaml:"languages"`
	ProfileViews       int          `json:"profileViews" yaml:"profileViews"`
	Repositories       []Repository `json:"repositories" yaml:"repositories"`
	Simulated          Simulated    `json:"simulated" yaml:"simulated"`

	Projects    []Project       `json:"projects" yaml:"projects"`
	BlogPosts   []BlogPost      `json:"blogPosts" yaml:"blogPosts"`
	Timeline    []TimelineEntry `json:"timeline" yaml:"timeline"`
	Education   []Education     `json:"education" yaml:"education"`
	ContactInfo ContactInfo     `json:"contactInfo" yaml:"contactInfo"`

	RepoSettings RepoSettings `json:"repoSettings" yaml:"repoSettings"`
}

// Colors holds #rrggbb strings.
type Colors struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
	Accent    string `json:"accent" yaml:"accent"`
}

// Simulated marks metrics that were synthesized rather than read from GitHub.
// The REST API exposes neither contribution streaks nor profile views.
type Simulated struct {
	Streaks      bool `json:"streaks" yaml:"streaks"`
	ProfileViews bool `json:"profileViews" yaml:"profileViews"`
	RepoStats    bool `json:"repoStats" yaml:"repoStats"`
}

// Any reports whether at least one metric is synthetic.
func (s Simulated) Any() bool {
	return s.Streaks || s.ProfileViews || s.RepoStats
}

type Repository struct {
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description" yaml:"description"`
	URL           string `json:"url" yaml:"url"`
	Stars         int    `json:"stars" yaml:"stars"`
	Forks         int    `json:"forks" yaml:"forks"`
	Language      string `json:"language" yaml:"language"`
	LanguageColor string `json:"languageColor" yaml:"languageColor"`
}

type Project struct {
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Image        string   `json:"image" yaml:"image"`
	RepoURL      string   `json:"repoUrl" yaml:"repoUrl"`
	LiveURL      string   `json:"liveUrl" yaml:"liveUrl"`
}

type BlogPost struct {
	Title    string   `json:"title" yaml:"title"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Date     string   `json:"date" yaml:"date"`
	ReadTime string   `json:"readTime" yaml:"readTime"`
	URL      string   `json:"url" yaml:"url"`
	Image    string   `json:"image" yaml:"image"`
	Tags     []string `json:"tags" yaml:"tags"`
}

type TimelineEntry struct {
	Title        string   `json:"title" yaml:"title"`
	Organization string   `json:"organization" yaml:"organization"`
	Period       string   `json:"period" yaml:"period"`
	Description  string   `json:"description" yaml:"description"`
	Tags         []string `json:"tags" yaml:"tags"`
}

type Education struct {
	Institution  string   `json:"institution" yaml:"institution"`
	Degree       string   `json:"degree" yaml:"degree"`
	Field        string   `json:"field" yaml:"field"`
	Location     string   `json:"location" yaml:"location"`
	StartDate    string   `json:"startDate" yaml:"startDate"`
	EndDate      string   `json:"endDate" yaml:"endDate"`
	Description  string   `json:"description" yaml:"description"`
	Logo         string   `json:"logo" yaml:"logo"`
	GPA          string   `json:"gpa" yaml:"gpa"`
	Achievements []string `json:"achievements" yaml:"achievements"`
}

type ContactInfo struct {
	Email    string   `json:"email" yaml:"email"`
	Location string   `json:"location" yaml:"location"`
	Socials  []Social `json:"socials" yaml:"socials"`
}

type Social struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

const (
	CardStyleDefault  = "default"
	CardStyleCompact  = "compact"
	CardStyleDetailed = "detailed"
	CardStyleMinimal  = "minimal"
)

const (
	AlignCenter = "center"
	AlignLeft   = "left"
	AlignRight  = "right"
)

// RepoSettings configures how repository cards are laid out.
type RepoSettings struct {
	CardStyle       string `json:"cardStyle" yaml:"cardStyle"`
	GridColumns     int    `json:"gridColumns" yaml:"gridColumns"`
	Alignment       string `json:"alignment" yaml:"alignment"`
	ShowDescription bool   `json:"showDescription" yaml:"showDescription"`
	ShowLanguage    bool   `json:"showLanguage" yaml:"showLanguage"`
	ShowStats       bool   `json:"showStats" yaml:"showStats"`
	ShowOwner       bool   `json:"showOwner" yaml:"showOwner"`
	Theme           string `json:"theme" yaml:"theme"`
	BorderStyle     string `json:"borderStyle" yaml:"borderStyle"`
	IconSize        string `json:"iconSize" yaml:"iconSize"`
}

// Columns returns GridColumns clamped to at least one.
func (s RepoSettings) Columns() int {
	if s.GridColumns < 1 {
		return 1
	}
	return s.GridColumns
}
