package international

import "slices"

// Confederation regions.
const (
	RegionEurope       = "Europe"
	RegionSouthAmerica = "South America"
	RegionAfrica       = "Africa"
	RegionAsia         = "Asia"
	RegionNorthAmerica = "North America"
)

var regions = map[string][]string{
	RegionEurope: {
		"Austria", "Belgium", "Croatia", "Czech Republic", "Denmark", "England", "France", "Germany",
		"Greece", "Italy", "Netherlands", "Norway", "Poland", "Portugal", "Republic of Ireland",
		"Scotland", "Serbia", "Spain", "Sweden", "Switzerland", "Turkey", "Ukraine", "Wales",
	},
	RegionSouthAmerica: {"Argentina", "Brazil", "Chile", "Colombia", "Uruguay"},
	RegionAfrica:       {"Cameroon", "Egypt", "Ghana", "Ivory Coast", "Morocco", "Nigeria", "Senegal"},
	RegionAsia:         {"Australia", "Japan", "South Korea"},
	RegionNorthAmerica: {"Canada", "Mexico", "United States"},
}

var eliteNations = []string{"Argentina", "Brazil", "England", "France", "Germany", "Italy", "Portugal", "Spain", "Netherlands"}

// Countries lists every modelled nation, sorted.
func Countries() []string {
	var out []string
	for _, nations := range regions {
		out = append(out, nations...)
	}
	slices.Sort(out)
	return out
}

// Region returns a nation's confederation. Unknown nations count as European.
func Region(country string) string {
	for region, nations := range regions {
		if slices.Contains(nations, country) {
			return region
		}
	}
	return RegionEurope
}

// NationStrength is the match strength of a national side.
func NationStrength(country string) int {
	if slices.Contains(eliteNations, country) {
		return 88
	}
	return 70
}

// opponentPool lists the nations eligible to face country in a tournament.
func opponentPool(country string, t Tournament) []string {
	var pool []string
	for _, c := range Countries() {
		if c == country {
			continue
		}
		switch {
		case t.Kind == KindWorldCup || t.Kind == KindFriendlies:
			pool = append(pool, c)
		case t.Name == "Copa America":
			if r := Region(c); r == RegionSouthAmerica || r == RegionNorthAmerica {
				pool = append(pool, c)
			}
		case Region(c) == Region(country):
			pool = append(pool, c)
		}
	}
	if len(pool) < groupOpponents {
		pool = nil
		for _, c := range Countries() {
			if c != country {
				pool = append(pool, c)
			}
		}
	}
	return pool
}
