package render

import (
	"encoding/json"
	"fmt"

	"github.com/kdl-tools/kdlview/ir"
)

// FormatValue returns the display text for a value: null for null, the
// string contents wrapped in double quotes, the canonical form for numbers
// and booleans, and the compact JSON form for structured extension values.
// The result is raw text; backends escape it on output.
func FormatValue(v *ir.Value) string {
	if v == nil {
		return "null"
	}
	switch v.Type {
	case ir.NullType:
		return "null"
	case ir.StringType:
		return `"` + v.String + `"`
	case ir.BoolType:
		if v.Bool {
			return "true"
		}
		return "false"
	case ir.NumberType:
		return v.Canon()
	case ir.ExtensionType:
		d, err := json.Marshal(v.Extension)
		if err != nil {
			return fmt.Sprintf("%v", v.Extension)
		}
		return string(d)
	}
	return "null"
}

// FormatEntry returns the inline display text for an entry: the formatted
// value for an argument, key=value for a property.
func FormatEntry(e ir.Entry) string {
	if e.Kind == ir.PropertyEntry {
		return e.Key + "=" + FormatValue(e.Value)
	}
	return FormatValue(e.Value)
}
