// Package decorate runs the full text decoration pipeline: gradients, placeholders,
// hex colors and legacy codes, in that order.
package decorate

import (
	"unicode/utf8"

	"github.com/prism-cli/prism/code"
	"github.com/prism-cli/prism/gate"
	"github.com/prism-cli/prism/key"
	"github.com/prism-cli/prism/log"
	"github.com/prism-cli/prism/markup"
	"github.com/prism-cli/prism/placeholder"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// DefaultPrefix is the legacy code prefix used when none is configured.
const DefaultPrefix = '&'

// Translator rewrites prefix-marked legacy codes into host escapes.
type Translator func(prefix rune, text string) string

// Pipeline decorates messages. The zero value expands gradients, leaves
// placeholders alone and translates '&' codes.
type Pipeline struct {
	Gate       gate.Gate
	Resolver   placeholder.Resolver
	Translator Translator
	Prefix     rune
}

// Decorate decorates message without a contextual entity.
func (p Pipeline) Decorate(message string) string {
	return p.DecorateFor(message, mo.None[placeholder.Entity]())
}

// DecorateFor decorates message, resolving placeholders for ctx.
func (p Pipeline) DecorateFor(message string, ctx mo.Option[placeholder.Entity]) string {
	if p.gate().SupportsGradients() {
		message = markup.Gradients(message)
	} else {
		log.Tracef("gradients unsupported, skipping expansion")
	}

	message = p.resolver().Resolve(message, ctx)
	message = markup.Hex(message)
	message = p.translator()(p.prefix(), message)

	log.Tracef("decorated message: %q", message)
	return message
}

func (p Pipeline) gate() gate.Gate {
	if p.Gate == nil {
		return gate.Static(true)
	}
	return p.Gate
}

func (p Pipeline) resolver() placeholder.Resolver {
	if p.Resolver == nil {
		return placeholder.Nop
	}
	return p.Resolver
}

func (p Pipeline) translator() Translator {
	if p.Translator == nil {
		return code.Translate
	}
	return p.Translator
}

func (p Pipeline) prefix() rune {
	if p.Prefix == 0 {
		return DefaultPrefix
	}
	return p.Prefix
}

// Default returns the pipeline described by configuration, resolving
// placeholders with the shared registry.
func Default() Pipeline {
	return Pipeline{
		Gate:       gate.FromConfig(),
		Resolver:   placeholder.Shared(),
		Translator: code.Translate,
		Prefix:     configuredPrefix(),
	}
}

func configuredPrefix() rune {
	prefix := viper.GetString(key.LegacyPrefix)
	if prefix == "" {
		return DefaultPrefix
	}

	r, _ := utf8.DecodeRuneInString(prefix)
	if r == utf8.RuneError {
		log.Warnf("invalid legacy prefix %q, using %q", prefix, DefaultPrefix)
		return DefaultPrefix
	}
	return r
}

// Decorate decorates message with the configured pipeline.
func Decorate(message string) string {
	return Default().Decorate(message)
}

// DecorateFor decorates message for ctx with the configured pipeline.
func DecorateFor(message string, ctx mo.Option[placeholder.Entity]) string {
	return Default().DecorateFor(message, ctx)
}
