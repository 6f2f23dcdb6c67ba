package xivapi

import (
	"time"

	"xivapi-go/internal/core/domain"
	api "xivapi-go/xivapi"
)

func mapCharacterHits(results []api.CharacterSearch) []domain.CharacterHit {
	hits := make([]domain.CharacterHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, domain.CharacterHit{
			ID:     r.ID,
			Name:   r.Name,
			Server: r.Server,
		})
	}
	return hits
}

func mapFreeCompanyHits(results []api.FreeCompanySearch) []domain.FreeCompanyHit {
	hits := make([]domain.FreeCompanyHit, 0, len(results))
	for _, r := range results {
		hits = append(hits, domain.FreeCompanyHit{
			ID:     r.ID,
			Name:   r.Name,
			Server: r.Server,
		})
	}
	return hits
}

func mapCharacter(res *api.CharacterResult) *domain.CharacterSummary {
	c := res.Character

	summary := &domain.CharacterSummary{
		ID:          c.ID,
		Name:        c.Name,
		Server:      c.Server,
		DataCenter:  c.DC,
		Portrait:    c.Portrait,
		Avatar:      c.Avatar,
		Nameday:     c.Nameday,
		ActiveJob:   activeJobName(c.ActiveClassJob),
		ActiveLevel: int(c.ActiveClassJob.Level),
		Bio:         c.PlainBio(),
	}
	if c.FreeCompanyName != nil {
		summary.FreeCompanyName = *c.FreeCompanyName
	}
	return summary
}

// activeJobName prefers the unlocked job's display name over the raw
// "class / job" pair.
func activeJobName(class api.Class) string {
	if class.UnlockedState.Name != "" {
		return class.UnlockedState.Name
	}
	return class.Name
}

func mapFreeCompany(res *api.FreeCompanyResult) *domain.FreeCompanySummary {
	fc := res.FreeCompany

	summary := &domain.FreeCompanySummary{
		ID:            fc.ID,
		Name:          fc.Name,
		Tag:           fc.Tag,
		Server:        fc.Server,
		DataCenter:    fc.DC,
		Slogan:        fc.Slogan,
		GrandCompany:  fc.GrandCompany,
		ActiveMembers: int(fc.ActiveMemberCount),
		Rank:          int(fc.Rank),
		Seeking:       api.ActiveFlags(fc.Seeking),
	}
	if fc.Formed > 0 {
		summary.Formed = time.Unix(int64(fc.Formed), 0).UTC()
	}
	if fc.Estate != nil {
		summary.EstateName = fc.Estate.Name
	}
	if n := len(fc.Crest); n > 0 {
		summary.CrestURL = fc.Crest[n-1]
	}
	if res.FreeCompanyMembers != nil {
		for _, m := range *res.FreeCompanyMembers {
			summary.Members = append(summary.Members, m.Name)
		}
	}
	return summary
}
