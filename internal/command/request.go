package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/keshon/monday-bot/pkg/cmd"
)

var (
	ErrMissingArgument = errors.New("message is a required argument that is missing")
	ErrMemberNotFound  = errors.New("member not found")
	ErrNoRequest       = errors.New("invocation carries no chat request")
)

// User is a chat participant as the adapter resolved it.
type User struct {
	ID   string
	Name string // display name
}

// Request is the chat payload an adapter puts into cmd.Invocation.Data.
type Request struct {
	Author    User
	Mentions  []User
	GuildID   string
	ChannelID string

	// Reply sends text back to where the command came from.
	Reply func(ctx context.Context, text string) error
	// Typing, when set, shows that a slow reply is on its way.
	Typing func()
	// Lookup, when set, resolves a member by name for commands that take one.
	Lookup func(query string) (User, bool)
}

// RequestFrom extracts the chat request from inv.
func RequestFrom(inv *cmd.Invocation) (*Request, error) {
	if inv == nil {
		return nil, ErrNoRequest
	}
	req, ok := inv.Data.(*Request)
	if !ok || req == nil || req.Reply == nil {
		return nil, fmt.Errorf("%w: got %T", ErrNoRequest, inv.Data)
	}
	return req, nil
}
