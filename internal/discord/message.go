package discord

import (
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

const maxMessageLength = 2000

// parseCommand splits "<prefix><name> <rest>" into the lowercased name and
// the raw remainder.
func parseCommand(content, prefix string) (name, raw string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", "", false
	}
	body := strings.TrimPrefix(content, prefix)
	if body == "" || isSpace(rune(body[0])) {
		return "", "", false
	}

	name, raw, _ = strings.Cut(body, " ")
	if i := strings.IndexAny(name, "\n\t"); i >= 0 {
		raw = name[i+1:] + " " + raw
		name = name[:i]
	}
	return strings.ToLower(name), strings.TrimSpace(raw), true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}

func splitArgs(raw string) []string {
	return strings.Fields(raw)
}

// splitMessage cuts text into chunks of at most limit runes, preferring line
// breaks as cut points.
func splitMessage(text string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit; i > 0; i-- {
			if runes[i] == '\n' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
		if len(runes) > 0 && runes[0] == '\n' {
			runes = runes[1:]
		}
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

// displayName is the guild nick, then the global name, then the username.
func displayName(m *discordgo.Member, u *discordgo.User) string {
	if m != nil && m.Nick != "" {
		return m.Nick
	}
	if u == nil && m != nil {
		u = m.User
	}
	if u == nil {
		return ""
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// matchMember finds the member named by query: an id or mention, then an
// exact case-insensitive username, global name or nick.
func matchMember(members []*discordgo.Member, query string) *discordgo.Member {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	id := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(q, "<@"), "!"), ">")

	for _, m := range members {
		if m == nil || m.User == nil {
			continue
		}
		if m.User.ID == id {
			return m
		}
	}
	for _, m := range members {
		if m == nil || m.User == nil {
			continue
		}
		if strings.EqualFold(m.User.Username, q) ||
			strings.EqualFold(m.User.GlobalName, q) ||
			strings.EqualFold(m.Nick, q) {
			return m
		}
	}
	return nil
}
