// Package discord connects the command registry to a Discord gateway session.
package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/keshon/monday-bot/internal/command"
	"github.com/keshon/monday-bot/pkg/cmd"
)

const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

// Options configure a Bot.
type Options struct {
	Token    string
	Prefix   string
	Presence string
	Logger   zerolog.Logger
}

// Bot is a Discord bot
type Bot struct {
	reg      *cmd.Registry
	prefix   string
	presence string
	token    string
	log      zerolog.Logger

	dg  *discordgo.Session
	ctx context.Context
}

// New returns a bot dispatching prefixed messages to reg.
func New(reg *cmd.Registry, opts Options) (*Bot, error) {
	if opts.Token == "" {
		return nil, errors.New("discord token is empty")
	}
	if opts.Prefix == "" {
		opts.Prefix = "!"
	}
	return &Bot{
		reg:      reg,
		prefix:   opts.Prefix,
		presence: opts.Presence,
		token:    opts.Token,
		log:      opts.Logger.With().Str("component", "discord").Logger(),
	}, nil
}

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	dg.Identify.Intents = intents

	b.dg = dg
	b.ctx = ctx

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if b.presence != "" {
		if err := s.UpdateGameStatus(0, b.presence); err != nil {
			b.log.Warn().Err(err).Msg("failed to set presence")
		}
	}
	b.log.Info().
		Str("user", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Msg("bot is now online and being sarcastic")
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}

	name, raw, ok := parseCommand(m.Content, b.prefix)
	if !ok {
		return
	}
	c := b.reg.Get(name)
	if c == nil {
		return
	}

	inv := &cmd.Invocation{
		Args: splitArgs(raw),
		Raw:  raw,
		Data: b.request(s, m),
	}
	if err := c.Run(b.ctx, inv); err != nil {
		b.log.Debug().Err(err).Str("command", c.Name()).Msg("command returned error")
	}
}

// request wraps m into the transport-agnostic command request.
func (b *Bot) request(s *discordgo.Session, m *discordgo.MessageCreate) *command.Request {
	author := command.User{ID: m.Author.ID, Name: displayName(m.Member, m.Author)}

	mentions := make([]command.User, 0, len(m.Mentions))
	for _, u := range m.Mentions {
		if u.ID == s.State.User.ID {
			continue
		}
		mentions = append(mentions, command.User{ID: u.ID, Name: displayName(b.member(s, m.GuildID, u.ID), u)})
	}

	return &command.Request{
		Author:    author,
		Mentions:  mentions,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		Reply: func(ctx context.Context, text string) error {
			return b.reply(ctx, s, m.Message, text)
		},
		Typing: func() {
			if err := s.ChannelTyping(m.ChannelID); err != nil {
				b.log.Debug().Err(err).Msg("failed to send typing indicator")
			}
		},
		Lookup: func(query string) (command.User, bool) {
			return b.lookup(s, m.GuildID, query)
		},
	}
}

// reply answers msg, splitting text over several messages when it is too long.
// Only the first chunk references the original message.
func (b *Bot) reply(ctx context.Context, s *discordgo.Session, msg *discordgo.Message, text string) error {
	for i, chunk := range splitMessage(text, maxMessageLength) {
		var err error
		if i == 0 {
			_, err = s.ChannelMessageSendReply(msg.ChannelID, chunk, msg.Reference(), discordgo.WithContext(ctx))
		} else {
			_, err = s.ChannelMessageSend(msg.ChannelID, chunk, discordgo.WithContext(ctx))
		}
		if err != nil {
			return fmt.Errorf("send reply: %w", err)
		}
	}
	return nil
}

func (b *Bot) member(s *discordgo.Session, guildID, userID string) *discordgo.Member {
	if guildID == "" {
		return nil
	}
	m, err := s.State.Member(guildID, userID)
	if err != nil {
		return nil
	}
	return m
}

// lookup resolves a member by id, mention, username, global name or nick.
// The state cache is tried first, then the member search endpoint.
func (b *Bot) lookup(s *discordgo.Session, guildID, query string) (command.User, bool) {
	if guildID == "" {
		return command.User{}, false
	}
	var members []*discordgo.Member
	if g, err := s.State.Guild(guildID); err == nil {
		members = g.Members
	}
	if m := matchMember(members, query); m != nil {
		return command.User{ID: m.User.ID, Name: displayName(m, m.User)}, true
	}

	found, err := s.GuildMembersSearch(guildID, query, 5, discordgo.WithContext(b.ctx))
	if err != nil {
		b.log.Debug().Err(err).Str("query", query).Msg("member search failed")
		return command.User{}, false
	}
	if m := matchMember(found, query); m != nil {
		return command.User{ID: m.User.ID, Name: displayName(m, m.User)}, true
	}
	return command.User{}, false
}
