// Package cmd provides a transport-agnostic command core: a command is something
// with a name, description, and Run(ctx, invocation). How it is parsed and
// dispatched (Discord prefix messages, CLI, HTTP) is defined by adapters that
// wrap this.
package cmd

import "context"

// Invocation carries the minimal input any command runner can pass: the
// whitespace-split arguments, the raw argument text as typed, and an opaque
// payload. Adapters set Data to their context (e.g. a chat request with a
// reply function).
type Invocation struct {
	Args []string
	Raw  string
	Data interface{}
}

// Command is the universal contract: identity plus execution. Parsing, reply
// delivery and transport-specific registration stay in adapters.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

// AliasProvider is implemented by commands reachable under more than one name.
type AliasProvider interface {
	Aliases() []string
}

// UsageProvider is implemented by commands that take arguments.
// The returned string excludes the command name, e.g. "<text>".
type UsageProvider interface {
	Usage() string
}
