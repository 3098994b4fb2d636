package constant

// PhysicalConstantGlobal is the Lua global table through which scripts reach the constants.
const PhysicalConstantGlobal = "PhysicalConstant"

// ScriptExtension is the file extension of Lua scripts stored in the scripts directory.
const ScriptExtension = ".lua"

// ScriptTemplate is a Go text/template for scaffolding new Lua scripts.
const ScriptTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@class PhysicalConstant
---@field value fun(self: PhysicalConstant): number
---@field name fun(self: PhysicalConstant): string
---@field unit fun(self: PhysicalConstant): string
---@field symbol fun(self: PhysicalConstant): string


----- MAIN -----

for _, c in ipairs({{ .Global }}.all()) do
	print(c:name(), c:symbol(), c:value(), c:unit())
end

print(tostring({{ .Global }}.SpeedOfLight))

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
