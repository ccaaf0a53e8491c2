// Package gate decides whether the host environment supports extended colors and gradients.
package gate

import (
	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/log"
	"github.com/prism-cli/prism/version"
	"github.com/spf13/viper"
)

// Gate is a static predicate over the host's feature level.
type Gate interface {
	SupportsGradients() bool
}

// Static is a Gate with a fixed answer.
type Static bool

// SupportsGradients implements Gate.
func (s Static) SupportsGradients() bool {
	return bool(s)
}

// MinimumVersion passes when Host is at least Required. Unparsable versions fail the gate.
type MinimumVersion struct {
	Host     string
	Required string
}

// SupportsGradients implements Gate.
func (m MinimumVersion) SupportsGradients() bool {
	ok, err := version.AtLeast(m.Host, m.Required)
	if err != nil {
		log.Warnf("gradient gate: %v", err)
		return false
	}
	return ok
}

// All passes only when every gate passes.
type All []Gate

// SupportsGradients implements Gate.
func (a All) SupportsGradients() bool {
	for _, g := range a {
		if !g.SupportsGradients() {
			return false
		}
	}
	return true
}

// FromConfig returns the gate described by the gradients and host configuration.
func FromConfig() Gate {
	return All{
		Static(viper.GetBool(key.GradientsEnabled)),
		MinimumVersion{
			Host:     viper.GetString(key.HostVersion),
			Required: viper.GetString(key.GradientsMinimumVersion),
		},
	}
}
