package vda5050

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies which wire shape a Value holds.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindObject
	KindArray
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
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Value is a polymorphic action parameter value. The wire form carries no
// type discriminator: the JSON shape alone determines the variant. Exactly
// one variant is active at a time, and the zero Value is the null variant.
//
// Integer and float are distinct variants even when numerically equal, and
// the distinction survives a round trip: an integer literal decodes to the
// integer variant and is re-encoded without a decimal point, a float literal
// decodes to the float variant and is always re-encoded with one.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
	obj  json.RawMessage   // compacted, key order preserved
	arr  []json.RawMessage // compacted elements, in order
}

// Null returns the null value. Distinct from an absent field.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Number returns a floating-point value. Historical alias for Float, kept
// for the NUMBER declared data type of earlier schema generations.
func Number(f float64) Value { return Float(f) }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// ParseValue decodes a single JSON value into its variant.
func ParseValue(data []byte) (Value, error) {
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return Value{}, err
	}
	return v, nil
}

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

// AsNumber is a historical alias for AsFloat.
func (v Value) AsNumber() (float64, bool) { return v.AsFloat() }

// AsString returns the string content, if this is the string variant.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsObject returns the object content as compacted raw JSON, if this is the
// object variant. The content is opaque to this layer.
func (v Value) AsObject() (json.RawMessage, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// AsArray returns the array elements as compacted raw JSON, in wire order,
// if this is the array variant.
func (v Value) AsArray() ([]json.RawMessage, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// Equal reports structural equality between two values. Values of different
// variants are never equal, so Int(42) and Float(42) differ.
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
	case KindObject:
		return bytes.Equal(v.obj, w.obj)
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !bytes.Equal(v.arr[i], w.arr[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value as human-readable text regardless of variant.
// For logging and diagnostics only; it is not the wire encoding and drops
// the integer/float distinction for whole numbers.
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
	case KindObject:
		return string(v.obj)
	case KindArray:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.Write(e)
		}
		sb.WriteByte(']')
		return sb.String()
	}
	return ""
}

// UnmarshalJSON classifies a wire value by its shape. Classification is
// total over well-formed JSON: null, boolean, string, object and array are
// mutually exclusive at the syntax level, and a numeric literal becomes the
// integer variant when it parses as a 64-bit signed integer, otherwise the
// float variant. Errors can only arise from malformed input, which the
// surrounding decoder normally rejects before this method runs.
func (v *Value) UnmarshalJSON(data []byte) error {
	t := bytes.TrimSpace(data)
	if len(t) == 0 {
		return fmt.Errorf("value: empty input")
	}
	switch t[0] {
	case 'n':
		if string(t) != "null" {
			return fmt.Errorf("value: invalid literal %q", t)
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
	case '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, t); err != nil {
			return err
		}
		*v = Value{kind: KindObject, obj: json.RawMessage(buf.Bytes())}
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(t, &elems); err != nil {
			return err
		}
		arr := make([]json.RawMessage, len(elems))
		for i, e := range elems {
			var buf bytes.Buffer
			if err := json.Compact(&buf, e); err != nil {
				return err
			}
			arr[i] = json.RawMessage(buf.Bytes())
		}
		*v = Value{kind: KindArray, arr: arr}
	default:
		lit := string(t)
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			*v = Value{kind: KindInt, i: i}
			return nil
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return fmt.Errorf("value: invalid number %q", lit)
		}
		*v = Value{kind: KindFloat, f: f}
	}
	return nil
}

// MarshalJSON renders the active variant as its wire shape, with no
// discriminator.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	case KindInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindFloat:
		return appendFloat(v.f)
	case KindString:
		return json.Marshal(v.s)
	case KindObject:
		return v.obj, nil
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(e)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("value: unknown kind %d", int(v.kind))
}

// appendFloat renders a float literal that always re-decodes as a float: a
// whole number keeps a trailing ".0" so it cannot be mistaken for an
// integer on the next pass.
func appendFloat(f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("value: unsupported float %v", f)
	}
	b := strconv.AppendFloat(nil, f, 'g', -1, 64)
	if !bytes.ContainsAny(b, ".eE") {
		b = append(b, '.', '0')
	}
	return b, nil
}
