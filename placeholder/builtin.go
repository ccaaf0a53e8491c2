package placeholder

import (
	"github.com/prism-cli/prism/stringify"
	"github.com/samber/mo"
)

// AttributePrefix introduces entity attribute placeholders such as %attr_rank%.
const AttributePrefix = "attr_"

// Builtins returns the placeholders available without any configuration.
func Builtins() []*Placeholder {
	return []*Placeholder{
		{
			Identifier:      "entity",
			Description:     "Name of the requesting entity",
			RequiresContext: true,
			Value: func(ctx mo.Option[Entity], _ string) stringify.Value {
				return stringify.Text(ctx.MustGet().Name)
			},
		},
		{
			Identifier:      AttributePrefix,
			Description:     "Attribute of the requesting entity, e.g. %" + AttributePrefix + "rank%",
			RequiresContext: true,
			Prefix:          true,
			Value: func(ctx mo.Option[Entity], arg string) stringify.Value {
				v, ok := ctx.MustGet().Attribute(arg)
				if !ok {
					return stringify.Text("")
				}
				return stringify.Of(v)
			},
		},
	}
}

// Static returns one placeholder per entry of values.
func Static(values map[string]any) []*Placeholder {
	placeholders := make([]*Placeholder, 0, len(values))
	for id, v := range values {
		value := stringify.Of(v)
		placeholders = append(placeholders, &Placeholder{
			Identifier:  id,
			Description: "Static value from configuration",
			Value: func(mo.Option[Entity], string) stringify.Value {
				return value
			},
		})
	}
	return placeholders
}
