package cmd

// Middleware wraps a command (e.g. logging, panic recovery, error replies).
// The wrapped type remains Command, so a chain can be registered directly.
type Middleware func(Command) Command

// Apply applies middlewares in order. Each middleware wraps the result of the
// previous one, so the last in the list is the outermost and runs first.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}
