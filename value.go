package codec

import "fmt"

// This module's Avro runtime values are plain Go shapes for unnamed
// schema types (bool, int32, int64, float32, float64, string, []byte,
// []any, map[string]any, nil for null) plus three named-container
// wrappers for RECORD/ENUM/FIXED, each of which carries its own Schema so
// that UNION decode (spec §4.4) can resolve an incoming value by full
// name without being told the schema up front. Grounded on the per-type
// shapes hamba/avro's generic.go assigns (generic.go: genericReceiver)
// and goavro's plain-map/slice convention for collections.

// GenericRecord is the runtime value for a RECORD schema: field values
// keyed by field name.
type GenericRecord struct {
	Schema *RecordSchema
	Values map[string]any
}

// NewGenericRecord creates a runtime record value for schema s.
func NewGenericRecord(s *RecordSchema) *GenericRecord {
	return &GenericRecord{Schema: s, Values: make(map[string]any, len(s.Fields()))}
}

// FullName returns the record schema's full name.
func (r *GenericRecord) FullName() string { return r.Schema.FullName() }

// Get returns the named field's value and whether it was set.
func (r *GenericRecord) Get(name string) (any, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// Set stores a value for the named field.
func (r *GenericRecord) Set(name string, v any) {
	r.Values[name] = v
}

// GenericEnumSymbol is the runtime value for an ENUM schema.
type GenericEnumSymbol struct {
	Schema *EnumSchema
	Symbol string
}

// NewGenericEnumSymbol creates a runtime enum value for schema s.
func NewGenericEnumSymbol(s *EnumSchema, symbol string) *GenericEnumSymbol {
	return &GenericEnumSymbol{Schema: s, Symbol: symbol}
}

// FullName returns the enum schema's full name.
func (e *GenericEnumSymbol) FullName() string { return e.Schema.FullName() }

// GenericFixed is the runtime value for a FIXED schema.
type GenericFixed struct {
	Schema *FixedSchema
	Value  []byte
}

// NewGenericFixed creates a runtime fixed value for schema s.
func NewGenericFixed(s *FixedSchema, value []byte) *GenericFixed {
	return &GenericFixed{Schema: s, Value: value}
}

// FullName returns the fixed schema's full name.
func (f *GenericFixed) FullName() string { return f.Schema.FullName() }

// namedValue is implemented by every runtime value that carries its own
// schema and can therefore be resolved by full name during UNION decode.
type namedValue interface {
	FullName() string
}

var (
	_ namedValue = (*GenericRecord)(nil)
	_ namedValue = (*GenericEnumSymbol)(nil)
	_ namedValue = (*GenericFixed)(nil)
)

// asNamedValue returns v's full name and true if v is a named container
// value (record/enum/fixed); otherwise ("", false).
func asNamedValue(v any) (string, bool) {
	nv, ok := v.(namedValue)
	if !ok {
		return "", false
	}
	return nv.FullName(), true
}

// runtimeTag renders a short label for a runtime value's shape, used in
// decodeUnexpectedType error messages.
func runtimeTag(v any) string {
	switch vv := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int32:
		return "int"
	case int64:
		return "long"
	case float32:
		return "float"
	case float64:
		return "double"
	case string:
		return "utf8"
	case []byte:
		return "bytes"
	case []any:
		return "array"
	case map[string]any:
		return "map"
	case *GenericRecord:
		return "record"
	case *GenericEnumSymbol:
		return "enum"
	case *GenericFixed:
		return "fixed"
	default:
		return fmt.Sprintf("%T", vv)
	}
}
