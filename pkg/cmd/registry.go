package cmd

import (
	"sort"
	"strings"
)

// Registry stores commands by name and alias. It does not perform dispatch;
// each adapter (CLI, Discord, HTTP) looks up commands and invokes them with its
// own context. Lookups are case-insensitive.
type Registry struct {
	commands map[string]Command
	aliases  map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		aliases:  make(map[string]string),
	}
}

// Register adds a command. The root command's aliases (see Root) are
// registered too, so middleware-wrapped commands keep their alternate names.
func (r *Registry) Register(c Command) {
	name := strings.ToLower(c.Name())
	r.commands[name] = c
	if ap, ok := Root(c).(AliasProvider); ok {
		for _, a := range ap.Aliases() {
			r.aliases[strings.ToLower(a)] = name
		}
	}
}

// Get returns the command with the given name or alias, or nil.
func (r *Registry) Get(name string) Command {
	name = strings.ToLower(name)
	if c, ok := r.commands[name]; ok {
		return c
	}
	if target, ok := r.aliases[name]; ok {
		return r.commands[target]
	}
	return nil
}

// GetAll returns all registered commands, sorted by name. Aliases are not
// repeated.
func (r *Registry) GetAll() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
