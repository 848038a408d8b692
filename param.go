package vda5050

// ValueDataType is the declared data type of an action parameter value,
// rendered as an upper-case token. The declaration is advisory: it is never
// checked against the variant the value actually decoded to, so a hint and
// its value may disagree.
type ValueDataType string

const (
	DataTypeBool    ValueDataType = "BOOL"
	DataTypeNumber  ValueDataType = "NUMBER"
	DataTypeInteger ValueDataType = "INTEGER"
	DataTypeFloat   ValueDataType = "FLOAT"
	DataTypeString  ValueDataType = "STRING"
	DataTypeObject  ValueDataType = "OBJECT"
	DataTypeArray   ValueDataType = "ARRAY"
)

// ActionParameter is the extended parameter shape used in factsheets: a key,
// the value, and optional declared type and metadata. Optional fields with
// no value are omitted from the wire form entirely; a null value is a
// present field.
type ActionParameter struct {
	Key           string         `json:"key"`
	ValueDataType *ValueDataType `json:"valueDataType,omitempty"`
	Value         Value          `json:"value"`
	Description   *string        `json:"description,omitempty"`
	IsOptional    *bool          `json:"isOptional,omitempty"`
}

// DataTypeOf returns the natural declared type for a value's active variant.
// The null variant has no token; ok is false.
func DataTypeOf(v Value) (ValueDataType, bool) {
	switch v.Kind() {
	case KindBool:
		return DataTypeBool, true
	case KindInt:
		return DataTypeInteger, true
	case KindFloat:
		return DataTypeFloat, true
	case KindString:
		return DataTypeString, true
	case KindObject:
		return DataTypeObject, true
	case KindArray:
		return DataTypeArray, true
	}
	return "", false
}
