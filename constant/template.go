// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Placeholder script globals - these names are looked up in every Lua placeholder script.
const (
	ResolveFn             = "Resolve"
	DescriptionGlobal     = "Description"
	RequiresContextGlobal = "RequiresContext"
)

// PlaceholderExtension is the file extension of Lua placeholder scripts.
const PlaceholderExtension = ".lua"

// PlaceholderTemplate is a Go text/template for scaffolding new Lua placeholder scripts.
const PlaceholderTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}

-- Used as %{{ .Name }}% inside decorated text.

---@alias entity { name: string, attributes: table }


----- VARIABLES -----

{{ .DescriptionGlobal }} = {{ quote .Description }}
{{ .RequiresContextGlobal }} = {{ .RequiresContext }}

--- END VARIABLES ---



----- MAIN -----

--- Resolves the placeholder value.
-- @param entity entity|nil The requesting entity, nil when there is none
-- @return string|number|table Value to substitute
function {{ .ResolveFn }}(entity)
	return ""
end

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
