package xivapi

// FreeCompanySearch is a Free Company as listed by a name search.
type FreeCompanySearch struct {
	Crest  []string `json:"Crest"`
	ID     string   `json:"ID"`
	Name   string   `json:"Name"`
	Server string   `json:"Server"`
}

// FreeCompanyResult is the response of a Free Company lookup. Members are
// only present when requested with the FreeCompanyMembers selector.
type FreeCompanyResult struct {
	FreeCompany        FreeCompany        `json:"FreeCompany"`
	FreeCompanyMembers *[]CharacterSearch `json:"FreeCompanyMembers"`
}

// FreeCompany is the profile of a Free Company. Crest lists the layered crest
// images, background first.
type FreeCompany struct {
	Active            string                  `json:"Active"`
	ActiveMemberCount uint16                  `json:"ActiveMemberCount"`
	Crest             []string                `json:"Crest"`
	DC                string                  `json:"DC"`
	Estate            *FreeCompanyEstate      `json:"Estate"`
	Focus             []FreeCompanyFlag       `json:"Focus"`
	Formed            uint32                  `json:"Formed"`
	GrandCompany      string                  `json:"GrandCompany"`
	ID                string                  `json:"ID"`
	Name              string                  `json:"Name"`
	ParseDate         uint32                  `json:"ParseDate"`
	Rank              uint8                   `json:"Rank"`
	Ranking           FreeCompanyRanking      `json:"Ranking"`
	Recruitment       string                  `json:"Recruitment"`
	Reputation        []FreeCompanyReputation `json:"Reputation"`
	Seeking           []FreeCompanyFlag       `json:"Seeking"`
	Server            string                  `json:"Server"`
	Slogan            string                  `json:"Slogan"`
	Tag               string                  `json:"Tag"`
}

// FreeCompanyEstate is nil for companies without a house.
type FreeCompanyEstate struct {
	Greeting string `json:"Greeting"`
	Name     string `json:"Name"`
	Plot     string `json:"Plot"`
}

// FreeCompanyFlag is one focus or seeking role, set when Status is true.
type FreeCompanyFlag struct {
	Icon   string `json:"Icon"`
	Name   string `json:"Name"`
	Status bool   `json:"Status"`
}

// FreeCompanyRanking holds the weekly and monthly ranks. A nil rank means the
// company was not ranked for that period.
type FreeCompanyRanking struct {
	Monthly *uint16 `json:"Monthly"`
	Weekly  *uint16 `json:"Weekly"`
}

// FreeCompanyReputation is the standing with one Grand Company.
type FreeCompanyReputation struct {
	Name     string `json:"Name"`
	Progress uint8  `json:"Progress"`
	Rank     string `json:"Rank"`
}

// ActiveFlags returns the names of the flags whose Status is set.
func ActiveFlags(flags []FreeCompanyFlag) []string {
	var names []string
	for _, f := range flags {
		if f.Status {
			names = append(names, f.Name)
		}
	}
	return names
}
