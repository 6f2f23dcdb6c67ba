package xivapi

import (
	"strconv"
	"strings"
)

// DataSelector requests an optional section on a lookup response.
type DataSelector uint8

const (
	SelectAchievements DataSelector = iota + 1
	SelectFriends
	SelectFreeCompany
	SelectFreeCompanyMembers
	SelectMinions
	SelectMounts
	SelectPvPTeam
)

var selectorTokens = map[DataSelector]string{
	SelectAchievements:       "AC",
	SelectFriends:            "FR",
	SelectFreeCompany:        "FC",
	SelectFreeCompanyMembers: "FCM",
	// Minions and mounts are served together upstream.
	SelectMinions: "MIMO",
	SelectMounts:  "MIMO",
	SelectPvPTeam: "PVP",
}

var selectorNames = map[DataSelector]string{
	SelectAchievements:       "achievements",
	SelectFriends:            "friends",
	SelectFreeCompany:        "free-company",
	SelectFreeCompanyMembers: "free-company-members",
	SelectMinions:            "minions",
	SelectMounts:             "mounts",
	SelectPvPTeam:            "pvp-team",
}

// String returns the long name, e.g. "free-company-members".
func (d DataSelector) String() string {
	if name, ok := selectorNames[d]; ok {
		return name
	}
	return "DataSelector(" + strconv.Itoa(int(d)) + ")"
}

// Token returns the upstream query token, e.g. "FCM".
func (d DataSelector) Token() (string, error) {
	token, ok := selectorTokens[d]
	if !ok {
		return "", &InvalidSelectorError{Value: d.String()}
	}
	return token, nil
}

// Valid reports whether d is one of the known selectors.
func (d DataSelector) Valid() bool {
	_, ok := selectorTokens[d]
	return ok
}

// ParseDataSelector accepts a long name ("friends", "free_company") or an
// upstream token ("FR"), case-insensitively.
func ParseDataSelector(s string) (DataSelector, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	for d, name := range selectorNames {
		if key == name {
			return d, nil
		}
	}
	switch strings.ToUpper(key) {
	case "AC":
		return SelectAchievements, nil
	case "FR":
		return SelectFriends, nil
	case "FC":
		return SelectFreeCompany, nil
	case "FCM":
		return SelectFreeCompanyMembers, nil
	case "MIMO":
		return SelectMounts, nil
	case "PVP":
		return SelectPvPTeam, nil
	}
	return 0, &InvalidSelectorError{Value: s}
}

// joinSelectors validates every selector and returns the comma-joined tokens
// in first-seen order without duplicates.
func joinSelectors(data []DataSelector) (string, error) {
	seen := make(map[string]bool, len(data))
	tokens := make([]string, 0, len(data))
	for _, d := range data {
		token, err := d.Token()
		if err != nil {
			return "", err
		}
		if seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return strings.Join(tokens, ","), nil
}
