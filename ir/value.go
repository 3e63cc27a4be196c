package ir

import (
	"encoding/json"
	"strconv"
)

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ExtensionType
)

func Types() []Type {
	return []Type{NullType, BoolType, NumberType, StringType, ExtensionType}
}

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "bool"
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case ExtensionType:
		return "extension"
	}
	return "<err: invalid type>"
}

// Value is a single KDL value. Type selects which payload field is
// meaningful.
type Value struct {
	Type Type

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64

	// Extension holds a structured (array/object) value produced only by
	// non-standard parser extensions. It must be JSON-serializable.
	Extension any
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Value {
	return &Value{Type: NumberType, Float64: &f}
}

// FromNumber holds a numeric literal that fits neither int64 nor float64.
func FromNumber(v string) *Value {
	return &Value{Type: NumberType, Number: v}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromExtension(v any) *Value {
	return &Value{Type: ExtensionType, Extension: v}
}

// Canon returns the canonical string form of a number value.
func (v *Value) Canon() string {
	if v.Int64 != nil {
		return strconv.FormatInt(*v.Int64, 10)
	}
	if v.Float64 != nil {
		return strconv.FormatFloat(*v.Float64, 'g', -1, 64)
	}
	return v.Number
}

// Plain converts the value into a plain JSON-serializable form: nil, bool,
// int64, float64, json.Number, string, or the extension payload as-is.
func (v *Value) Plain() any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case NullType:
		return nil
	case BoolType:
		return v.Bool
	case NumberType:
		if v.Int64 != nil {
			return *v.Int64
		}
		if v.Float64 != nil {
			return *v.Float64
		}
		return json.Number(v.Number)
	case StringType:
		return v.String
	case ExtensionType:
		return v.Extension
	}
	return nil
}

// Clone returns a copy of the value. The extension payload is shared, not
// copied; values are read-only after parse.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:      v.Type,
		String:    v.String,
		Bool:      v.Bool,
		Number:    v.Number,
		Extension: v.Extension,
	}
	if v.Int64 != nil {
		i := *v.Int64
		res.Int64 = &i
	}
	if v.Float64 != nil {
		f := *v.Float64
		res.Float64 = &f
	}
	return res
}
