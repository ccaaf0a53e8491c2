package placeholder

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/prism-cli/prism/log"
	"github.com/prism-cli/prism/stringify"
	"github.com/prism-cli/prism/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// tokenPattern matches %identifier%.
var tokenPattern = regexp.MustCompile(`%([A-Za-z0-9_.:-]+)%`)

// Registry is a concurrency-safe set of placeholders and the default Resolver.
type Registry struct {
	mu           sync.RWMutex
	placeholders map[string]*Placeholder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{placeholders: make(map[string]*Placeholder)}
}

// Register adds placeholders, replacing any with the same identifier.
func (r *Registry) Register(placeholders ...*Placeholder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range placeholders {
		if p.Identifier == "" {
			return fmt.Errorf("placeholder identifier is empty")
		}
		if p.Value == nil {
			return fmt.Errorf("placeholder %s has no value function", p.Identifier)
		}

		r.placeholders[strings.ToLower(p.Identifier)] = p
	}

	return nil
}

// Get finds the placeholder for identifier, falling back to the longest matching prefix placeholder.
// The returned argument is the identifier remainder for prefix placeholders.
func (r *Registry) Get(identifier string) (p *Placeholder, arg string, ok bool) {
	identifier = strings.ToLower(identifier)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.placeholders[identifier]; ok && !p.Prefix {
		return p, "", true
	}

	var best string
	for id, candidate := range r.placeholders {
		if !candidate.Prefix || !strings.HasPrefix(identifier, id) || identifier == id {
			continue
		}
		if len(id) > len(best) {
			best = id
		}
	}

	if best == "" {
		return nil, "", false
	}
	return r.placeholders[best], util.RemovePrefix(identifier, best), true
}

// All returns every registered placeholder sorted by identifier.
func (r *Registry) All() []*Placeholder {
	r.mu.RLock()
	all := lo.Values(r.placeholders)
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].Identifier < all[j].Identifier
	})
	return all
}

// Close frees the resources of every registered placeholder.
// Script placeholders resolve to empty text once their registry is closed.
func (r *Registry) Close() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.placeholders {
		p.Close()
	}
}

// Len returns the number of registered placeholders.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.placeholders)
}

// Resolve implements Resolver. Unknown tokens are left literal; placeholders that
// require an entity resolve to an empty string when ctx is absent.
func (r *Registry) Resolve(text string, ctx mo.Option[Entity]) string {
	matches := tokenPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	formatter := stringify.Default()

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		last = m[1]

		p, arg, ok := r.Get(text[m[2]:m[3]])
		if !ok {
			b.WriteString(text[m[0]:m[1]])
			continue
		}

		if p.RequiresContext && ctx.IsAbsent() {
			continue
		}

		b.WriteString(formatter.String(value(p, ctx, arg)))
	}
	b.WriteString(text[last:])

	return b.String()
}

// value evaluates p, turning a panicking value function into an empty value.
func value(p *Placeholder, ctx mo.Option[Entity], arg string) (v stringify.Value) {
	defer func() {
		if err := recover(); err != nil {
			log.Warnf("placeholder %s panicked: %v", p.Identifier, err)
			v = stringify.Text("")
		}
	}()

	return p.Value(ctx, arg)
}
