package roster

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/preston-bernstein/football-career-sim/internal/domain"
	"github.com/preston-bernstein/football-career-sim/internal/rng"
)

// Provider is the club directory the simulation draws opponents from.
type Provider interface {
	Clubs() []domain.Club
	ClubsInLeague(league string) []domain.Club
	Club(name string) (domain.Club, bool)
	Leagues() []string
}

// Memory keeps a thread-safe club directory in memory.
type Memory struct {
	mu    sync.RWMutex
	clubs []domain.Club
	index map[string]int
}

// NewMemory constructs a directory seeded with clubs.
func NewMemory(clubs []domain.Club) *Memory {
	m := &Memory{}
	m.SetClubs(clubs)
	return m
}

// Clubs returns a copy of every club.
func (m *Memory) Clubs() []domain.Club {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Club, len(m.clubs))
	copy(out, m.clubs)
	return out
}

// ClubsInLeague returns the league's clubs in directory order.
func (m *Memory) ClubsInLeague(league string) []domain.Club {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Club
	for _, c := range m.clubs {
		if c.League == league {
			out = append(out, c)
		}
	}
	return out
}

// Club looks a club up by name.
func (m *Memory) Club(name string) (domain.Club, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.index[name]
	if !ok {
		return domain.Club{}, false
	}
	return m.clubs[i], true
}

// Leagues lists league names in first-seen order.
func (m *Memory) Leagues() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, c := range m.clubs {
		if _, ok := seen[c.League]; ok {
			continue
		}
		seen[c.League] = struct{}{}
		out = append(out, c.League)
	}
	return out
}

// Countries lists the countries with at least one club, sorted.
func (m *Memory) Countries() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, c := range m.clubs {
		if _, ok := seen[c.Country]; ok {
			continue
		}
		seen[c.Country] = struct{}{}
		out = append(out, c.Country)
	}
	sort.Strings(out)
	return out
}

// SetClubs replaces the directory with a new snapshot.
func (m *Memory) SetClubs(clubs []domain.Club) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clubs = make([]domain.Club, len(clubs))
	copy(m.clubs, clubs)
	m.index = make(map[string]int, len(clubs))
	for i, c := range m.clubs {
		m.index[c.Name] = i
	}
}

// FreeAgent returns the sentinel club for unattached players.
func FreeAgent() domain.Club {
	return domain.Club{
		ID:       "free-agent",
		Name:     domain.FreeAgentName,
		League:   "None",
		Country:  "None",
		Tier:     5,
		Prestige: 0,
		Strength: 0,
	}
}

// TierName is the generic league name used after promotion or relegation.
func TierName(tier int) string {
	switch tier {
	case 1:
		return "Premier Division"
	case 2:
		return "Championship Division"
	case 3:
		return "League One / Tier 3"
	case 4:
		return "League Two / Tier 4"
	case 5:
		return "National / Tier 5"
	default:
		return "Lower Division"
	}
}

var fillerCities = map[string][]string{
	"England": {"London", "Manchester", "Liverpool", "Birmingham", "Leeds", "Sheffield", "Bristol", "Newcastle", "Derby", "Nottingham", "Leicester", "Coventry", "Hull", "Stoke", "Plymouth", "Reading", "Preston", "Norwich"},
	"Spain":   {"Madrid", "Barcelona", "Valencia", "Seville", "Zaragoza", "Malaga", "Bilbao", "Alicante", "Vigo", "Granada"},
	"Germany": {"Berlin", "Hamburg", "Munich", "Cologne", "Frankfurt", "Stuttgart", "Dortmund", "Leipzig", "Bremen", "Dresden"},
	"Italy":   {"Rome", "Milan", "Naples", "Turin", "Palermo", "Genoa", "Bologna", "Florence", "Bari", "Verona"},
	"France":  {"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Nantes", "Strasbourg", "Bordeaux", "Lille", "Rennes"},
}

var fillerSuffixes = []string{"United", "City", "FC", "Athletic", "Rovers", "Wanderers", "Town", "Sporting", "Real", "Inter", "Dynamo", "Union"}

// Filler generates a made-up club around a league's baseline strength.
// Strength is baseline ± spread, clamped to [10, 99].
func Filler(src rng.Source, league, country string, tier, baseline, spread int) domain.Club {
	cities, ok := fillerCities[country]
	if !ok {
		cities = fillerCities["England"]
	}
	name := fmt.Sprintf("%s %s", rng.Pick(src, cities), rng.Pick(src, fillerSuffixes))

	strength := baseline + src.Int(-spread, spread)
	strength = min(max(strength, 10), 99)

	return domain.Club{
		ID:       Slug(name),
		Name:     name,
		League:   league,
		Country:  country,
		Tier:     tier,
		Prestige: max(strength-5, 0),
		Strength: strength,
	}
}

// Slug turns a club name into a stable identifier.
func Slug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
