package xivapi

// Wire names are carried by the json tags. Pointer fields are optional:
// absent or null upstream decodes to nil and encodes back as null. Every
// other field is required.

// SearchResults is the paginated envelope returned by search endpoints.
// Results keep the server's ranking order.
type SearchResults[T any] struct {
	Pagination Pagination `json:"Pagination"`
	Results    []T        `json:"Results"`
}

// Pagination describes one page of a search. PageNext and PagePrev are nil
// on the last and first page respectively.
type Pagination struct {
	Page           uint8  `json:"Page"`
	PageNext       *uint8 `json:"PageNext"`
	PagePrev       *uint8 `json:"PagePrev"`
	PageTotal      uint8  `json:"PageTotal"`
	Results        uint8  `json:"Results"`
	ResultsPerPage uint8  `json:"ResultsPerPage"`
	ResultsTotal   uint16 `json:"ResultsTotal"`
}

// CharacterSearch is a character as listed by a name search, a friends list
// or a Free Company roster.
type CharacterSearch struct {
	Avatar       string  `json:"Avatar"`
	FeastMatches uint32  `json:"FeastMatches"`
	ID           uint32  `json:"ID"`
	Lang         *string `json:"Lang"`
	Name         string  `json:"Name"`
	Rank         *string `json:"Rank"`
	RankIcon     *string `json:"RankIcon"`
	Server       string  `json:"Server"`
}

// CharacterResult is the response of a character lookup. Sections other than
// Character are only present when requested and public.
type CharacterResult struct {
	Achievements       *CharacterAchievements `json:"Achievements"`
	AchievementsPublic *bool                  `json:"AchievementsPublic"`
	Character          Character              `json:"Character"`
	FreeCompany        *FreeCompany           `json:"FreeCompany"`
	FreeCompanyMembers *[]CharacterSearch     `json:"FreeCompanyMembers"`
	Friends            *[]CharacterSearch     `json:"Friends"`
	FriendsPublic      *bool                  `json:"FriendsPublic"`
	Minions            *[]Collectible         `json:"Minions"`
	Mounts             *[]Collectible         `json:"Mounts"`
	PvPTeam            *string                `json:"PvPTeam"`
}

// Character is the full profile of one character.
type Character struct {
	ActiveClassJob     Class          `json:"ActiveClassJob"`
	Avatar             string         `json:"Avatar"`
	Bio                string         `json:"Bio"`
	ClassJobs          []Class        `json:"ClassJobs"`
	ClassJobsBozjan    ClassBozjan    `json:"ClassJobsBozjan"`
	ClassJobsElemental ClassElemental `json:"ClassJobsElemental"`
	DC                 string         `json:"DC"`
	FreeCompanyID      *string        `json:"FreeCompanyId"`
	FreeCompanyName    *string        `json:"FreeCompanyName"`
	GearSet            GearSet        `json:"GearSet"`
	Gender             uint8          `json:"Gender"`
	GrandCompany       GrandCompany   `json:"GrandCompany"`
	ID                 uint32         `json:"ID"`
	Lang               *string        `json:"Lang"`
	Name               string         `json:"Name"`
	Nameday            string         `json:"Nameday"`
	ParseDate          uint32         `json:"ParseDate"`
	Portrait           string         `json:"Portrait"`
	PvPTeamID          *string        `json:"PvPTeamId"`
	Race               uint8          `json:"Race"`
	Server             string         `json:"Server"`
	Title              uint16         `json:"Title"`
	TitleTop           bool           `json:"TitleTop"`
	Town               uint8          `json:"Town"`
	Tribe              uint8          `json:"Tribe"`
}

// GrandCompany is a character's Grand Company standing. Both ids are zero
// for characters without a Grand Company.
type GrandCompany struct {
	NameID uint8 `json:"NameID"`
	RankID uint8 `json:"RankID"`
}

// CharacterAchievements is only returned when achievements are public.
type CharacterAchievements struct {
	List   []Achievement `json:"List"`
	Points uint32        `json:"Points"`
}

type Achievement struct {
	Date uint32 `json:"Date"`
	ID   uint32 `json:"ID"`
}

// Collectible is a mount or a minion.
type Collectible struct {
	Icon string `json:"Icon"`
	Name string `json:"Name"`
}
