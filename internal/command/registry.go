package command

import "github.com/keshon/monday-bot/pkg/cmd"

// Register adds every chat command to reg, each wrapped in mws. When
// deps.Registry is nil, help lists reg.
func Register(reg *cmd.Registry, deps Deps, mws ...cmd.Middleware) {
	d := &deps
	if d.Registry == nil {
		d.Registry = reg
	}
	if d.Prefix == "" {
		d.Prefix = "!"
	}

	for _, c := range []cmd.Command{
		&MondayCommand{deps: d},
		&RoastCommand{deps: d},
		&MotivationCommand{deps: d},
		&StatusCommand{deps: d},
		&MoodCommand{deps: d},
		&HelpCommand{deps: d},
	} {
		reg.Register(cmd.Apply(c, mws...))
	}
}
