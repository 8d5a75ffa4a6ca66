package discord

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		content string
		name    string
		raw     string
		ok      bool
	}{
		{"!monday why is my code broken", "monday", "why is my code broken", true},
		{"!MONDAY hi", "monday", "hi", true},
		{"!roast", "roast", "", true},
		{"!roast   <@42>  ", "roast", "<@42>", true},
		{"!monday\nmultiline question", "monday", "multiline question", true},
		{"hello !monday", "", "", false},
		{"!", "", "", false},
		{"! monday", "", "", false},
		{"?monday hi", "", "", false},
	}
	for _, tt := range tests {
		name, raw, ok := parseCommand(tt.content, "!")
		assert.Equal(t, tt.ok, ok, tt.content)
		assert.Equal(t, tt.name, name, tt.content)
		assert.Equal(t, tt.raw, raw, tt.content)
	}
}

func TestParseCommandCustomPrefix(t *testing.T) {
	name, raw, ok := parseCommand("mon:status now", "mon:")
	require.True(t, ok)
	assert.Equal(t, "status", name)
	assert.Equal(t, "now", raw)

	_, _, ok = parseCommand("mon: status now", "mon:")
	assert.False(t, ok, "the name must follow the prefix directly")

	_, _, ok = parseCommand("anything", "")
	assert.False(t, ok)
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, splitMessage("short", 2000))

	long := strings.Repeat("a", 4500)
	chunks := splitMessage(long, 2000)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 2000)
	assert.Len(t, chunks[2], 500)
	assert.Equal(t, long, strings.Join(chunks, ""))

	lines := strings.Repeat("a", 1500) + "\n" + strings.Repeat("b", 1500)
	chunks = splitMessage(lines, 2000)
	require.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 1500), chunks[0])
	assert.Equal(t, strings.Repeat("b", 1500), chunks[1])
}

func TestSplitMessageCountsRunes(t *testing.T) {
	text := strings.Repeat("é", 2000)
	assert.Equal(t, []string{text}, splitMessage(text, 2000))

	chunks := splitMessage(strings.Repeat("é", 2001), 2000)
	require.Len(t, chunks, 2)
	assert.Equal(t, "é", chunks[1])
}

func TestDisplayName(t *testing.T) {
	u := &discordgo.User{ID: "1", Username: "ann_42", GlobalName: "Ann"}

	assert.Equal(t, "Annie", displayName(&discordgo.Member{Nick: "Annie"}, u))
	assert.Equal(t, "Ann", displayName(&discordgo.Member{}, u))
	assert.Equal(t, "Ann", displayName(nil, u))
	assert.Equal(t, "ann_42", displayName(nil, &discordgo.User{Username: "ann_42"}))
	assert.Equal(t, "bob", displayName(&discordgo.Member{User: &discordgo.User{Username: "bob"}}, nil))
	assert.Empty(t, displayName(nil, nil))
}

func TestMatchMember(t *testing.T) {
	members := []*discordgo.Member{
		nil,
		{User: nil},
		{User: &discordgo.User{ID: "10", Username: "ann_42", GlobalName: "Ann"}},
		{User: &discordgo.User{ID: "20", Username: "bob"}, Nick: "Bobby"},
	}

	assert.Equal(t, "10", matchMember(members, "10").User.ID)
	assert.Equal(t, "20", matchMember(members, "<@20>").User.ID)
	assert.Equal(t, "20", matchMember(members, "<@!20>").User.ID)
	assert.Equal(t, "10", matchMember(members, "ANN").User.ID)
	assert.Equal(t, "20", matchMember(members, "bobby").User.ID)
	assert.Nil(t, matchMember(members, "carol"))
	assert.Nil(t, matchMember(members, " "))
}

func TestNewRequiresToken(t *testing.T) {
	_, err := New(nil, Options{})
	assert.Error(t, err)

	b, err := New(nil, Options{Token: "x"})
	require.NoError(t, err)
	assert.Equal(t, "!", b.prefix)
}
