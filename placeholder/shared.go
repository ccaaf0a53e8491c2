package placeholder

import (
	"sync/atomic"

	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/log"
	"github.com/prism-cli/prism/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var shared atomic.Pointer[Registry]

// FromConfig builds a registry with the builtins, the configured static values and,
// when enabled, the Lua scripts of the placeholders directory. Script failures are logged.
func FromConfig() *Registry {
	r := NewRegistry()
	lo.Must0(r.Register(Builtins()...))
	lo.Must0(r.Register(Static(viper.GetStringMap(key.PlaceholdersStatic))...))

	if viper.GetBool(key.PlaceholdersScripts) {
		scripts, err := LoadScripts(where.Placeholders())
		if err != nil {
			log.Warnf("loading placeholder scripts: %v", err)
		}
		lo.Must0(r.Register(scripts...))
	}

	log.Debugf("registered %d placeholders", r.Len())
	return r
}

// Shared returns the process-wide registry, building it from configuration on first use.
func Shared() *Registry {
	if r := shared.Load(); r != nil {
		return r
	}

	r := FromConfig()
	if !shared.CompareAndSwap(nil, r) {
		r.Close()
	}
	return shared.Load()
}

// Reload rebuilds the process-wide registry from configuration and closes the previous one.
func Reload() *Registry {
	r := FromConfig()
	if old := shared.Swap(r); old != nil {
		old.Close()
	}
	return r
}
