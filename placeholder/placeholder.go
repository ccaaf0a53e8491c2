// Package placeholder resolves %identifier% tokens into values, optionally with respect to a requesting entity.
package placeholder

import (
	"strings"

	"github.com/prism-cli/prism/stringify"
	"github.com/samber/mo"
)

// Entity is the subject placeholders are resolved for, such as a player or a user.
type Entity struct {
	Name       string         `json:"name"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Attribute returns the named attribute, if any. Names are matched case-insensitively.
func (e Entity) Attribute(name string) (any, bool) {
	if v, ok := e.Attributes[name]; ok {
		return v, true
	}

	for k, v := range e.Attributes {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// Resolver substitutes placeholder tokens in text.
// Implementations must pass text without tokens through unchanged and never fail.
type Resolver interface {
	Resolve(text string, ctx mo.Option[Entity]) string
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(text string, ctx mo.Option[Entity]) string

// Resolve calls f.
func (f ResolverFunc) Resolve(text string, ctx mo.Option[Entity]) string {
	return f(text, ctx)
}

// Nop leaves text untouched.
var Nop Resolver = ResolverFunc(func(text string, _ mo.Option[Entity]) string {
	return text
})

// ValueFunc computes a placeholder value. arg is the part of the identifier
// following the placeholder's own identifier and is empty unless Prefix is set.
type ValueFunc func(ctx mo.Option[Entity], arg string) stringify.Value

// Placeholder is a named value source.
type Placeholder struct {
	// Identifier is matched case-insensitively against the token between the percent signs.
	Identifier  string
	Description string
	// RequiresContext placeholders resolve to an empty string when no entity is given.
	RequiresContext bool
	// Prefix placeholders match every identifier that starts with Identifier.
	Prefix bool
	Value  ValueFunc

	// release frees resources held by Value, such as a Lua state.
	release func()
}

// Close frees resources held by the placeholder. Value returns an empty text afterwards
// for script placeholders.
func (p *Placeholder) Close() {
	if p.release != nil {
		p.release()
	}
}
