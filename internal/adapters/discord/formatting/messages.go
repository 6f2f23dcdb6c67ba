package formatting

import (
	"fmt"
	"strings"

	"xivapi-go/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

const (
	MsgAdminRequired      = "You need Administrator permissions to use this command."
	MsgNameRequired       = "A name is required."
	MsgServerRequired     = "Server name is required."
	MsgSaveError          = "Failed to save configuration."
	MsgClearError         = "Failed to clear the home server."
	MsgClearSuccess       = "Home server cleared. Lookups will use the default server."
	MsgLookupError        = "The lookup failed. Please try again later."
	MsgRateLimited        = "XIVAPI is rate limiting requests right now. Please try again in a minute."
	MsgLodestoneDown      = "The Lodestone is not responding. It may be under maintenance."
	MsgUnexpectedResponse = "XIVAPI returned data this bot could not read."
)

const (
	lodestoneBaseURL = "https://na.finalfantasyxiv.com/lodestone"

	embedColor       = 0x3b6fb6
	maxFieldLength   = 1024
	maxBioLength     = 1000
	maxListedMembers = 40
)

func MsgHomeServerSet(server string) string {
	return fmt.Sprintf("Home server set to **%s**. Lookups without a server will search there.", server)
}

func MsgCharacterNotFound(name, server string) string {
	if server == "" {
		return fmt.Sprintf("No character named '%s' was found.", name)
	}
	return fmt.Sprintf("No character named '%s' was found on %s.", name, server)
}

func MsgFreeCompanyNotFound(name, server string) string {
	if server == "" {
		return fmt.Sprintf("No Free Company named '%s' was found.", name)
	}
	return fmt.Sprintf("No Free Company named '%s' was found on %s.", name, server)
}

func MsgInvalidQuery(reason string) string {
	return fmt.Sprintf("Invalid search: %s.", reason)
}

func CharacterURL(id uint32) string {
	return fmt.Sprintf("%s/character/%d/", lodestoneBaseURL, id)
}

func FreeCompanyURL(id string) string {
	return fmt.Sprintf("%s/freecompany/%s/", lodestoneBaseURL, id)
}

func CharacterEmbed(c *domain.CharacterSummary) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       c.Name,
		URL:         CharacterURL(c.ID),
		Description: truncate(c.Bio, maxBioLength),
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Server", Value: serverLabel(c.Server, c.DataCenter), Inline: true},
		},
	}

	if c.ActiveJob != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Active Job",
			Value:  fmt.Sprintf("%s (Lv. %d)", c.ActiveJob, c.ActiveLevel),
			Inline: true,
		})
	}
	if c.FreeCompanyName != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Free Company", Value: c.FreeCompanyName, Inline: true,
		})
	}
	if c.Nameday != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Nameday", Value: c.Nameday,
		})
	}
	if c.Avatar != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: c.Avatar}
	}
	if c.Portrait != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: c.Portrait}
	}

	return embed
}

func FreeCompanyEmbed(fc *domain.FreeCompanySummary) *discordgo.MessageEmbed {
	title := fc.Name
	if fc.Tag != "" {
		title = fmt.Sprintf("%s «%s»", fc.Name, fc.Tag)
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		URL:         FreeCompanyURL(fc.ID),
		Description: fc.Slogan,
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Server", Value: serverLabel(fc.Server, fc.DataCenter), Inline: true},
			{Name: "Active Members", Value: fmt.Sprintf("%d", fc.ActiveMembers), Inline: true},
			{Name: "Rank", Value: fmt.Sprintf("%d", fc.Rank), Inline: true},
		},
	}

	if fc.GrandCompany != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Grand Company", Value: fc.GrandCompany, Inline: true,
		})
	}
	if fc.EstateName != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Estate", Value: fc.EstateName, Inline: true,
		})
	}
	if len(fc.Seeking) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Recruiting", Value: strings.Join(fc.Seeking, ", "),
		})
	}
	if len(fc.Members) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Members (%d)", len(fc.Members)),
			Value: MemberList(fc.Members),
		})
	}
	if !fc.Formed.IsZero() {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Formed " + fc.Formed.Format("2006-01-02")}
	}
	if fc.CrestURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: fc.CrestURL}
	}

	return embed
}

// MemberList renders member names one per line, cut to fit an embed field.
func MemberList(members []string) string {
	shown := members
	if len(shown) > maxListedMembers {
		shown = shown[:maxListedMembers]
	}

	var b strings.Builder
	for i, name := range shown {
		line := name + "\n"
		rest := len(members) - i
		suffix := fmt.Sprintf("... and %d more", rest)
		if b.Len()+len(line)+len(suffix) > maxFieldLength {
			b.WriteString(suffix)
			return b.String()
		}
		b.WriteString(line)
	}

	if hidden := len(members) - len(shown); hidden > 0 {
		b.WriteString(fmt.Sprintf("... and %d more", hidden))
	}
	return strings.TrimRight(b.String(), "\n")
}

func serverLabel(server, dc string) string {
	if dc == "" {
		return server
	}
	return fmt.Sprintf("%s [%s]", server, dc)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
