package github

import (
	"math/rand/v2"
	"sync"

	"profile-readme/internal/profile"
)

// Activity holds metrics the REST API does not expose. Values are synthetic.
type Activity struct {
	TotalContributions int
	CurrentStreak      int
	LongestStreak      int
	ProfileViews       int
}

// RepoStats stands in for repository totals when the repository list could
// not be fetched.
type RepoStats struct {
	TotalStars int
	TotalForks int
	Languages  profile.Languages
}

// Simulator produces placeholder metrics. Anything it returns is flagged as
// simulated on the profile.
type Simulator interface {
	Activity() Activity
	RepoStats(publicRepos int) RepoStats
}

type RandomSimulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSimulator(seed uint64) *RandomSimulator {
	return &RandomSimulator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// between returns a value in [lo, hi].
func (s *RandomSimulator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *RandomSimulator) Activity() Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.between(0, 30)
	return Activity{
		TotalContributions: s.between(200, 2000),
		CurrentStreak:      current,
		LongestStreak:      current + s.between(0, 100),
		ProfileViews:       s.between(100, 5000),
	}
}

var placeholderLanguages = []string{"JavaScript", "TypeScript", "Python", "Go"}

func (s *RandomSimulator) RepoStats(publicRepos int) RepoStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stars := s.between(0, publicRepos*10+10)
	counts := make(map[string]int, len(placeholderLanguages))
	for _, l := range placeholderLanguages {
		counts[l] = s.between(1, 10)
	}
	return RepoStats{
		TotalStars: stars,
		TotalForks: s.between(0, stars/3+1),
		Languages:  shares(counts),
	}
}
