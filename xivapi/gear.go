package xivapi

// GearSet is the snapshot of what the character had equipped when the
// profile was parsed.
type GearSet struct {
	// Attributes maps a BaseParam id to its resolved total.
	Attributes map[uint32]uint32 `json:"Attributes"`
	ClassID    uint8             `json:"ClassID"`
	Gear       Gear              `json:"Gear"`
	GearKey    string            `json:"GearKey"`
	JobID      uint8             `json:"JobID"`
	Level      uint8             `json:"Level"`
}

// Gear holds the twelve equipment slots. Empty slots are nil.
type Gear struct {
	Body      *GearPiece `json:"Body,omitempty"`
	Bracelets *GearPiece `json:"Bracelets,omitempty"`
	Earrings  *GearPiece `json:"Earrings,omitempty"`
	Feet      *GearPiece `json:"Feet,omitempty"`
	Hands     *GearPiece `json:"Hands,omitempty"`
	Head      *GearPiece `json:"Head,omitempty"`
	Legs      *GearPiece `json:"Legs,omitempty"`
	MainHand  *GearPiece `json:"MainHand,omitempty"`
	Necklace  *GearPiece `json:"Necklace,omitempty"`
	OffHand   *GearPiece `json:"OffHand,omitempty"`
	Ring1     *GearPiece `json:"Ring1,omitempty"`
	Ring2     *GearPiece `json:"Ring2,omitempty"`
}

// Slots returns the equipped pieces keyed by slot name.
func (g Gear) Slots() map[string]GearPiece {
	all := map[string]*GearPiece{
		"Body":      g.Body,
		"Bracelets": g.Bracelets,
		"Earrings":  g.Earrings,
		"Feet":      g.Feet,
		"Hands":     g.Hands,
		"Head":      g.Head,
		"Legs":      g.Legs,
		"MainHand":  g.MainHand,
		"Necklace":  g.Necklace,
		"OffHand":   g.OffHand,
		"Ring1":     g.Ring1,
		"Ring2":     g.Ring2,
	}
	slots := make(map[string]GearPiece, len(all))
	for name, piece := range all {
		if piece != nil {
			slots[name] = *piece
		}
	}
	return slots
}

// GearPiece is the item equipped in one slot.
type GearPiece struct {
	// Creator is the crafter's signature, if any.
	Creator *string  `json:"Creator"`
	Dye     *uint32  `json:"Dye"`
	ID      uint32   `json:"ID"`
	Materia []uint32 `json:"Materia"`
	// Mirage is the glamour item shown in place of ID.
	Mirage *uint32 `json:"Mirage"`
}
