package domain

// Position is the player's pitch role.
type Position string

const (
	PositionGK  Position = "Goalkeeper"
	PositionDEF Position = "Defender"
	PositionMID Position = "Midfielder"
	PositionFWD Position = "Forward"
)

// Defensive reports whether clean sheets are credited to the position.
func (p Position) Defensive() bool {
	return p == PositionGK || p == PositionDEF
}

// Role is the squad status promised or derived for a player.
type Role string

const (
	RoleStar      Role = "Star Player"
	RoleImportant Role = "Important Starter"
	RoleRegular   Role = "Regular Starter"
	RoleRotation  Role = "Rotation"
	RoleBackup    Role = "Backup"
	RoleYouth     Role = "Youth/Prospect"
)

// ContractType distinguishes scholarship deals from professional ones.
type ContractType string

const (
	ContractYouth        ContractType = "Youth"
	ContractProfessional ContractType = "Professional"
)

// ContinentalTier is the continental competition a club enters.
type ContinentalTier int

const (
	ContinentalNone ContinentalTier = iota
	ContinentalConference
	ContinentalEuropa
	ContinentalChampions
)

// FreeAgentName is the sentinel club name for unattached players.
const FreeAgentName = "Free Agent"

// Club is a league member. Strength drives every win probability.
type Club struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	League          string          `json:"league"`
	Country         string          `json:"country"`
	Tier            int             `json:"tier"`
	Prestige        int             `json:"prestige"`
	Strength        int             `json:"strength"`
	ContinentalTier ContinentalTier `json:"continentalTier"`
}

// IsFreeAgent reports whether the club is the free-agent sentinel.
func (c Club) IsFreeAgent() bool {
	return c.Name == FreeAgentName
}

// Zone tags a league row for promotion, relegation or continental places.
type Zone string

const (
	ZonePromotion  Zone = "PRO"
	ZoneRelegation Zone = "REL"
	ZoneChampions  Zone = "UCL"
	ZoneEuropa     Zone = "UEL"
	ZoneConference Zone = "UECL"
)

// LeagueRow is one team's standing.
type LeagueRow struct {
	Position     int    `json:"position"`
	Name         string `json:"name"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalDiff     int    `json:"gd"`
	Points       int    `json:"points"`
	IsPlayerClub bool   `json:"isPlayerClub"`
	Status       Zone   `json:"status,omitempty"`
}

// WorldTables maps league name to its ordered standings.
type WorldTables map[string][]LeagueRow

// Contract is always held with the parent club while on loan.
type Contract struct {
	Wage           int          `json:"wage"`
	YearsLeft      int          `json:"yearsLeft"`
	ExpiryYear     int          `json:"expiryYear"`
	Type           ContractType `json:"type"`
	PromisedRole   Role         `json:"promisedRole"`
	YearlyWageRise int          `json:"yearlyWageRise"`
}

// Modifiers are the career-wide rule toggles picked at creation.
type Modifiers struct {
	NoTransfers        bool     `json:"noTransfers"`
	NoStartsUnder21    bool     `json:"noStartsUnder21"`
	ForceMoveEveryYear bool     `json:"forceMoveEveryYear"`
	RandomLifeEvents   bool     `json:"randomLifeEvents"`
	InjuriesOff        bool     `json:"injuriesOff"`
	DislikedTeams      []string `json:"dislikedTeams"`
}

// Player is the root aggregate of a career.
type Player struct {
	Name        string   `json:"name"`
	Nationality string   `json:"nationality"`
	Age         int      `json:"age"`
	Position    Position `json:"position"`

	CurrentAbility   int `json:"currentAbility"`
	PotentialAbility int `json:"potentialAbility"`
	NaturalFitness   int `json:"naturalFitness"`
	InjuryProne      int `json:"injuryProne"`
	Form             int `json:"form"`

	Fatigue   int  `json:"fatigue"`
	IsSurplus bool `json:"isSurplus"`

	CurrentClub Club     `json:"currentClub"`
	ParentClub  *Club    `json:"parentClub"`
	Contract    Contract `json:"contract"`
	MarketValue int      `json:"marketValue"`

	History       []SeasonRecord `json:"history"`
	TrophyCabinet []string       `json:"trophyCabinet"`
	AwardsCabinet []string       `json:"awardsCabinet"`
	Cash          int            `json:"cash"`

	Modifiers Modifiers `json:"modifiers"`
}

// OnLoan reports whether another club owns the player's contract.
func (p Player) OnLoan() bool {
	return p.ParentClub != nil
}

// Validate rejects states the simulation cannot reason about.
func (p Player) Validate() error {
	checks := []struct {
		field string
		value int
	}{
		{"currentAbility", p.CurrentAbility},
		{"potentialAbility", p.PotentialAbility},
		{"fatigue", p.Fatigue},
		{"naturalFitness", p.NaturalFitness},
		{"injuryProne", p.InjuryProne},
		{"age", p.Age},
	}
	for _, c := range checks {
		if c.value < 0 {
			return NewPreconditionError("player", c.field, float64(c.value), "must be non-negative")
		}
	}
	return nil
}

// OfferType classifies an incoming offer.
type OfferType string

const (
	OfferTransfer  OfferType = "TRANSFER"
	OfferLoan      OfferType = "LOAN"
	OfferRenewal   OfferType = "RENEWAL"
	OfferExtension OfferType = "LOAN EXTENSION"
)

// Offer is a contract proposal from a club.
type Offer struct {
	ID             string    `json:"id"`
	Type           OfferType `json:"type"`
	Club           Club      `json:"club"`
	Wage           int       `json:"wage"`
	Years          int       `json:"years"`
	TransferFee    int       `json:"transferFee"`
	Description    string    `json:"description"`
	Negotiable     bool      `json:"negotiable"`
	PromisedRole   Role      `json:"promisedRole"`
	YearlyWageRise int       `json:"yearlyWageRise"`
}
