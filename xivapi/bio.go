package xivapi

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// PlainBio returns the character biography with markup removed. Lodestone
// bios carry <br> line breaks and HTML entities.
func (c Character) PlainBio() string {
	return htmlToText(c.Bio)
}

func htmlToText(s string) string {
	if s == "" || s == "-" {
		return ""
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return cleanLines(b.String())
			}
			return strings.TrimSpace(s)
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "br" || string(name) == "p" {
				b.WriteByte('\n')
			}
		}
	}
}

func cleanLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
