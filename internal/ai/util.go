package ai

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

// cleanReply strips reasoning blocks, surrounding quotes and whitespace.
func cleanReply(reply string) string {
	reply = strings.TrimSpace(reply)
	reply = thinkBlock.ReplaceAllString(reply, "")
	reply = strings.TrimSpace(reply)

	if len(reply) >= 2 {
		quotes := []struct{ open, close string }{
			{`"`, `"`}, {`'`, `'`}, {"“", "”"}, {"‘", "’"},
		}
		for _, q := range quotes {
			if strings.HasPrefix(reply, q.open) && strings.HasSuffix(reply, q.close) && len(reply) >= len(q.open)+len(q.close) {
				reply = strings.TrimSuffix(strings.TrimPrefix(reply, q.open), q.close)
				reply = strings.TrimSpace(reply)
				break
			}
		}
	}

	return reply
}

// preview shortens s to at most n runes for log lines.
func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
