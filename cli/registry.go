package cli

import "strings"

// Registry maps lower-cased command names to commands. It is filled during
// setup and read-only once the driver loop starts.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Add registers every name of cmd, lower-cased. A name already present is
// overwritten: the last registration wins, which lets hosts shadow builtins.
func (r *Registry) Add(cmd Command) {
	for _, name := range cmd.Names() {
		r.commands[strings.ToLower(name)] = cmd
	}
}

// Get looks up a command by name, case-insensitively.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[strings.ToLower(name)]
	return cmd, ok
}

// All returns every distinct registered command exactly once, even when a
// command is reachable under several names. Order is unspecified.
func (r *Registry) All() []Command {
	list := make([]Command, 0, len(r.commands))
	seen := make(map[Command]struct{})
	for _, cmd := range r.commands {
		if _, ok := seen[cmd]; !ok {
			list = append(list, cmd)
			seen[cmd] = struct{}{}
		}
	}
	return list
}

// Len returns the number of registered names (not distinct commands).
func (r *Registry) Len() int {
	return len(r.commands)
}
