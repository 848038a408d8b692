package action

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ValueKind identifies which wire shape a Value holds.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// String returns the lower-case name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	}
	return "unknown"
}

// Value is a scalar action parameter value: null, boolean, integer, float
// or string, decoded from the wire shape with no discriminator. Unlike the
// factsheet parameter value it has no object or array variant; structural
// input is rejected at decode time. The zero Value is the null variant.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null returns the null value. Distinct from an absent field.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Kind reports which variant is active.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether this is the null variant.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean content, if this is the boolean variant.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt returns the integer content, if this is the integer variant.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the float content, if this is the float variant.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// AsString returns the string content, if this is the string variant.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Equal reports structural equality. Values of different variants are never
// equal, so Int(42) and Float(42) differ.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindInt:
		return v.i == w.i
	case KindFloat:
		return v.f == w.f
	case KindString:
		return v.s == w.s
	}
	return false
}

// String renders the value as human-readable text regardless of variant.
// For logging and diagnostics only; it is not the wire encoding.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	}
	return ""
}

// UnmarshalJSON classifies a scalar wire value by its shape: null, boolean
// and string are syntactically distinct, and a numeric literal becomes the
// integer variant when it parses as a 64-bit signed integer, otherwise the
// float variant. Objects and arrays are outside this family's grammar.
func (v *Value) UnmarshalJSON(data []byte) error {
	t := bytes.TrimSpace(data)
	if len(t) == 0 {
		return fmt.Errorf("action: empty parameter value")
	}
	switch t[0] {
	case 'n':
		if string(t) != "null" {
			return fmt.Errorf("action: invalid literal %q", t)
		}
		*v = Value{kind: KindNull}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(t, &b); err != nil {
			return err
		}
		*v = Value{kind: KindBool, b: b}
	case '"':
		var s string
		if err := json.Unmarshal(t, &s); err != nil {
			return err
		}
		*v = Value{kind: KindString, s: s}
	case '{', '[':
		return fmt.Errorf("action: parameter value must be a scalar, got %c", t[0])
	default:
		lit := string(t)
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			*v = Value{kind: KindInt, i: i}
			return nil
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return fmt.Errorf("action: invalid number %q", lit)
		}
		*v = Value{kind: KindFloat, f: f}
	}
	return nil
}

// MarshalJSON renders the active variant as its wire shape. A whole-number
// float keeps a trailing ".0" so it re-decodes as a float.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	case KindInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, fmt.Errorf("action: unsupported float %v", v.f)
		}
		b := strconv.AppendFloat(nil, v.f, 'g', -1, 64)
		if !bytes.ContainsAny(b, ".eE") {
			b = append(b, '.', '0')
		}
		return b, nil
	case KindString:
		return json.Marshal(v.s)
	}
	return nil, fmt.Errorf("action: unknown kind %d", int(v.kind))
}
