package xivapi

// Class is the progression of one class or job.
type Class struct {
	ClassID uint8 `json:"ClassID"`
	// ExpLevel is the experience earned towards the next level.
	ExpLevel      uint32 `json:"ExpLevel"`
	ExpLevelMax   uint32 `json:"ExpLevelMax"`
	ExpLevelTogo  uint32 `json:"ExpLevelTogo"`
	IsSpecialised bool   `json:"IsSpecialised"`
	// JobID is set once the class has been upgraded to a job.
	JobID         *uint8        `json:"JobID"`
	Level         uint8         `json:"Level"`
	Name          string        `json:"Name"`
	UnlockedState UnlockedState `json:"UnlockedState"`
}

// UnlockedState tells whether and as what a class was unlocked. ID is nil
// for classes that are still locked.
type UnlockedState struct {
	ID   *uint32 `json:"ID"`
	Name string  `json:"Name"`
}

// Unlocked reports whether the class has been unlocked.
func (u UnlockedState) Unlocked() bool {
	return u.ID != nil
}

// ClassBozjan is the Save the Queen progression. Level and Mettle are nil for
// characters who never entered Bozja.
type ClassBozjan struct {
	Level  *uint8  `json:"Level"`
	Mettle *uint32 `json:"Mettle"`
	Name   string  `json:"Name"`
}

// ClassElemental is the Eureka progression.
type ClassElemental struct {
	ExpLevel     *uint32 `json:"ExpLevel"`
	ExpLevelMax  *uint32 `json:"ExpLevelMax"`
	ExpLevelTogo *uint32 `json:"ExpLevelTogo"`
	Level        *uint8  `json:"Level"`
	Name         string  `json:"Name"`
}
