package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a search has no results or a lookup targets
// an id the game servers do not know.
var ErrNotFound = errors.New("not found")

type CharacterSummary struct {
	ID              uint32
	Name            string
	Server          string
	DataCenter      string
	Portrait        string
	Avatar          string
	Nameday         string
	ActiveJob       string
	ActiveLevel     int
	FreeCompanyName string
	Bio             string
}

type FreeCompanySummary struct {
	ID            string
	Name          string
	Tag           string
	Server        string
	DataCenter    string
	Slogan        string
	GrandCompany  string
	ActiveMembers int
	Rank          int
	Formed        time.Time
	EstateName    string
	Seeking       []string
	Members       []string
	CrestURL      string
}

type GuildConfig struct {
	DiscordGuildID string
	HomeServer     string
	UpdatedAt      time.Time
}

// CharacterHit is one ranked entry of a character name search.
type CharacterHit struct {
	ID     uint32
	Name   string
	Server string
}

// FreeCompanyHit is one ranked entry of a Free Company name search.
type FreeCompanyHit struct {
	ID     string
	Name   string
	Server string
}
