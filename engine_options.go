package navkit

import (
	"log/slog"

	"github.com/navkit/navkit/core/navigator"
	"github.com/navkit/navkit/core/navstate"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRuntime supplies a pre-built tree runtime, for hosts that already own
// one (or that installed an OnDirty hook on it).
func WithRuntime(rt *navstate.Runtime) Option {
	return func(e *Engine) {
		if rt != nil {
			e.rt = rt
		}
	}
}

// WithRoot installs an initial root node without firing subscribers.
func WithRoot(root *navstate.Node) Option {
	return func(e *Engine) {
		e.root = root
	}
}

// WithNavigator overrides the navigator policy for one route name, taking
// precedence over the route declaration. Useful for injecting Custom
// policies into a YAML-declared route table.
func WithNavigator(name string, nav navigator.Navigator) Option {
	return func(e *Engine) {
		e.navs[name] = nav
	}
}
