package domain

import "strings"

// Level is the competitive tier a player spent the season at.
type Level string

const (
	LevelSenior    Level = "Senior"
	LevelU21       Level = "U21"
	LevelU18       Level = "U18"
	LevelReserves  Level = "Youth/Reserves"
	LevelFreeAgent Level = "Free Agent"
)

// IsYouthSquad reports whether the level is an age-group side.
func (l Level) IsYouthSquad() bool {
	return l == LevelU18 || l == LevelU21
}

// Stage is the decision state of a knockout competition run.
type Stage string

const (
	StageNotQualified Stage = "not_qualified"
	StageActive       Stage = "active"
	StageEliminated   Stage = "eliminated"
	StageWinner       Stage = "winner"
)

// Progress records where a club stands in a knockout competition.
// Round indexes the competition's round list.
type Progress struct {
	Stage Stage `json:"stage"`
	Round int   `json:"round"`
}

// Terminal reports whether the run is over.
func (p Progress) Terminal() bool {
	return p.Stage == StageEliminated || p.Stage == StageWinner
}

// SeasonStats is the full per-season breakdown.
type SeasonStats struct {
	Total                  StatSet            `json:"total"`
	Youth                  StatSet            `json:"youth"`
	League                 StatSet            `json:"league"`
	Cup                    StatSet            `json:"cup"`
	Europe                 StatSet            `json:"europe"`
	International          StatSet            `json:"international"`
	InternationalBreakdown map[string]StatSet `json:"internationalBreakdown"`
	Level                  Level              `json:"level"`
	Injuries               []string           `json:"injuries"`
	WeeksOut               int                `json:"weeksOut"`
	CupStatus              string             `json:"cupStatus"`
	EuropeStatus           string             `json:"europeStatus"`
	EuropeCompetition      string             `json:"europeCompetitionName,omitempty"`
	CupProgress            Progress           `json:"cupProgress"`
	EuropeProgress         Progress           `json:"europeProgress"`
	Awards                 []string           `json:"awards"`
}

// SeasonRecord is the immutable history entry appended at season end.
type SeasonRecord struct {
	Year           int         `json:"year"`
	Age            int         `json:"age"`
	Club           Club        `json:"club"`
	IsLoan         bool        `json:"isLoan"`
	Stats          SeasonStats `json:"stats"`
	Trophies       []string    `json:"trophies"`
	Events         []string    `json:"events"`
	LeaguePosition int         `json:"leaguePosition"`
	WorldState     WorldTables `json:"worldState,omitempty"`
	Narrative      string      `json:"narrative,omitempty"`
	GrowthLog      string      `json:"growthLog,omitempty"`
}

// Injury describes one sideline tier.
type Injury struct {
	Description string
	Weeks       int
	Major       bool
}

// Injury tiers, mildest first.
var (
	InjuryAnkleSprain = Injury{Description: "Ankle Sprain (2 weeks)", Weeks: 2}
	InjuryHamstring   = Injury{Description: "Hamstring Strain (1 month)", Weeks: 4}
	InjuryBrokenFoot  = Injury{Description: "Broken Foot (3 months)", Weeks: 12, Major: true}
	InjuryACL         = Injury{Description: "ACL Tear (6 months)", Weeks: 24, Major: true}
)

var knownInjuries = map[string]Injury{
	InjuryAnkleSprain.Description: InjuryAnkleSprain,
	InjuryHamstring.Description:   InjuryHamstring,
	InjuryBrokenFoot.Description:  InjuryBrokenFoot,
	InjuryACL.Description:         InjuryACL,
}

// IsMajorInjury reports whether a recorded injury is a long-term one.
// Descriptions from older saves fall back to keyword matching.
func IsMajorInjury(description string) bool {
	if inj, ok := knownInjuries[description]; ok {
		return inj.Major
	}
	return strings.Contains(description, "ACL") ||
		strings.Contains(description, "Broken") ||
		strings.Contains(description, "Tear")
}

// Lifestyle events that speed up off-season recovery.
const (
	EventPhysio = "Hired private physio"
	EventDiet   = "Adopted new diet"
	EventYoga   = "Started yoga"
)

// LifestyleEvents lists the random recovery-boosting events.
var LifestyleEvents = []string{EventPhysio, EventDiet, EventYoga}

// HasLifestyleEvent reports whether any recovery event happened.
func HasLifestyleEvent(events []string) bool {
	for _, e := range events {
		for _, l := range LifestyleEvents {
			if e == l {
				return true
			}
		}
	}
	return false
}
