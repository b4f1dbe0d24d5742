package cli

import (
	"log/slog"
	"sync"

	"github.com/pkg/errors"
)

// BuiltinNamespace is the namespace the bundled commands register under.
const BuiltinNamespace = "builtin"

// Factory constructs a command. Construction may fail; a failing factory is
// skipped during discovery.
type Factory func() (Command, error)

// Provider enumerates the constructible commands of a namespace. It is the
// pluggable discovery mechanism: the driver only ever sees constructed
// instances.
type Provider interface {
	Discover(namespace string) ([]Command, error)
}

var (
	factoriesMu sync.Mutex
	factories   = make(map[string][]Factory)
)

// RegisterFactory adds a command factory to a namespace. Commands call this
// from init so that a blank import of their package is enough to make them
// discoverable.
func RegisterFactory(namespace string, f Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[namespace] = append(factories[namespace], f)
}

// Registered returns a Provider backed by the package-level factory table.
func Registered() Provider {
	return &factoryProvider{log: slog.Default()}
}

type factoryProvider struct {
	log *slog.Logger
}

func (p *factoryProvider) Discover(namespace string) ([]Command, error) {
	factoriesMu.Lock()
	fs := append([]Factory(nil), factories[namespace]...)
	factoriesMu.Unlock()

	if len(fs) == 0 {
		return nil, errors.Errorf("no commands registered under namespace %q", namespace)
	}

	cmds := make([]Command, 0, len(fs))
	for _, f := range fs {
		cmd, err := f()
		if err != nil {
			// A broken candidate never aborts discovery.
			p.log.Debug("skipping command that failed to construct",
				"namespace", namespace, "error", err)
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
