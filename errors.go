package codec

import "fmt"

// Kind identifies one member of the closed AvroError taxonomy (spec §4.1).
// Rendering is a pure function of Kind plus the contextual fields carried
// on Error — grounded on moby/moby's errdefs tagged-error convention
// (github.com/moby/moby/errdefs), since the teacher library (hamba/avro)
// only returns ad hoc fmt.Errorf values and this module's whole value is a
// precise, structured error taxonomy (spec §1, §7).
type Kind int

// Error kinds, one per spec §4.1 constructor.
const (
	EncodeUnexpectedSchemaType Kind = iota
	DecodeUnexpectedSchemaType
	EncodeUnexpectedLogicalType
	DecodeUnexpectedLogicalType
	EncodeUnexpectedType
	DecodeUnexpectedType
	EncodeNameMismatch
	DecodeNameMismatch
	DecodeUnexpectedRecordName
	EncodeMissingRecordField
	DecodeMissingRecordField
	EncodeSymbolNotInSchema
	DecodeSymbolNotInSchema
	EncodeMissingUnionSchema
	DecodeMissingUnionSchema
	DecodeMissingUnionAlternative
	EncodeExhaustedAlternatives
	DecodeExhaustedAlternatives
	EncodeDecimalPrecisionExceeded
	DecodeDecimalPrecisionExceeded
	EncodeDecimalScalesMismatch
	EncodeExceedsFixedSize
	DecodeExceedsFixedSize
	UnexpectedByte
	UnexpectedShort
	UnexpectedChar
	DecodeEmptyCollection
	EncodeUnexpectedOptionSchema
	DecodeUnexpectedOptionSchema
	SchemaConstructionFailed
)

var kindNames = map[Kind]string{
	EncodeUnexpectedSchemaType:     "encode_unexpected_schema_type",
	DecodeUnexpectedSchemaType:     "decode_unexpected_schema_type",
	EncodeUnexpectedLogicalType:    "encode_unexpected_logical_type",
	DecodeUnexpectedLogicalType:    "decode_unexpected_logical_type",
	EncodeUnexpectedType:           "encode_unexpected_type",
	DecodeUnexpectedType:           "decode_unexpected_type",
	EncodeNameMismatch:             "encode_name_mismatch",
	DecodeNameMismatch:             "decode_name_mismatch",
	DecodeUnexpectedRecordName:     "decode_unexpected_record_name",
	EncodeMissingRecordField:       "encode_missing_record_field",
	DecodeMissingRecordField:       "decode_missing_record_field",
	EncodeSymbolNotInSchema:        "encode_symbol_not_in_schema",
	DecodeSymbolNotInSchema:        "decode_symbol_not_in_schema",
	EncodeMissingUnionSchema:       "encode_missing_union_schema",
	DecodeMissingUnionSchema:       "decode_missing_union_schema",
	DecodeMissingUnionAlternative:  "decode_missing_union_alternative",
	EncodeExhaustedAlternatives:    "encode_exhausted_alternatives",
	DecodeExhaustedAlternatives:    "decode_exhausted_alternatives",
	EncodeDecimalPrecisionExceeded: "encode_decimal_precision_exceeded",
	DecodeDecimalPrecisionExceeded: "decode_decimal_precision_exceeded",
	EncodeDecimalScalesMismatch:    "encode_decimal_scales_mismatch",
	EncodeExceedsFixedSize:         "encode_exceeds_fixed_size",
	DecodeExceedsFixedSize:         "decode_exceeds_fixed_size",
	UnexpectedByte:                 "unexpected_byte",
	UnexpectedShort:                "unexpected_short",
	UnexpectedChar:                 "unexpected_char",
	DecodeEmptyCollection:          "decode_empty_collection",
	EncodeUnexpectedOptionSchema:   "encode_unexpected_option_schema",
	DecodeUnexpectedOptionSchema:   "decode_unexpected_option_schema",
	SchemaConstructionFailed:       "schema_construction_failed",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Error is the error value produced by this module's own encode/decode
// checks and by catchNonFatal (spec §3.5, §7). Errors returned by
// caller-supplied functions (ImapError's f, Enum's decode, Record's
// assemble) and by the schema constructors that the record, union, option
// and fixed codecs call (NewField, NewRecordSchema, NewUnionSchema,
// NewFixedSchema) are passed through unwrapped. It is a closed tagged
// union: Kind selects which of the fields below are meaningful, and
// Error() renders them deterministically.
type Error struct {
	Kind Kind

	TypeLabel string
	Actual    string
	Expected  []string

	Value any

	SchemaName   string
	ExpectedName string

	FieldName string

	Symbol       string
	KnownSymbols []string

	AltName string

	Given int
	Limit int

	Required int

	Length int
	Max    int

	Schema Schema

	cause error
}

// Error renders a deterministic, human-readable message for logs and test
// assertions (spec §7).
func (e *Error) Error() string {
	switch e.Kind {
	case EncodeUnexpectedSchemaType, DecodeUnexpectedSchemaType:
		return fmt.Sprintf("avro: %s: unexpected schema type %s, expected one of %v", e.TypeLabel, e.Actual, e.Expected)
	case EncodeUnexpectedLogicalType, DecodeUnexpectedLogicalType:
		return fmt.Sprintf("avro: %s: unexpected logical type %s", e.TypeLabel, e.Actual)
	case EncodeUnexpectedType:
		return fmt.Sprintf("avro: %s: cannot encode value of runtime type %s, expected %s", e.TypeLabel, e.Actual, e.Expected)
	case DecodeUnexpectedType:
		return fmt.Sprintf("avro: %s: unexpected runtime value %s, expected %s", e.TypeLabel, e.Actual, e.Expected)
	case EncodeNameMismatch:
		return fmt.Sprintf("avro: schema name %q does not match expected name %q", e.SchemaName, e.ExpectedName)
	case DecodeNameMismatch:
		return fmt.Sprintf("avro: schema name %q does not match expected name %q", e.SchemaName, e.ExpectedName)
	case DecodeUnexpectedRecordName:
		return fmt.Sprintf("avro: record name %q does not match expected name %q", e.SchemaName, e.ExpectedName)
	case EncodeMissingRecordField:
		return fmt.Sprintf("avro: %s: no schema field named %q", e.TypeLabel, e.FieldName)
	case DecodeMissingRecordField:
		return fmt.Sprintf("avro: %s: record is missing required field %q", e.TypeLabel, e.FieldName)
	case EncodeSymbolNotInSchema:
		return fmt.Sprintf("avro: %s: symbol %q not in schema symbols %v", e.TypeLabel, e.Symbol, e.KnownSymbols)
	case DecodeSymbolNotInSchema:
		return fmt.Sprintf("avro: %s: symbol %q not in schema symbols %v", e.TypeLabel, e.Symbol, e.KnownSymbols)
	case EncodeMissingUnionSchema:
		return fmt.Sprintf("avro: %s: union has no member schema for alternative %q", e.TypeLabel, e.AltName)
	case DecodeMissingUnionSchema:
		return fmt.Sprintf("avro: %s: union has no member schema for alternative %q", e.TypeLabel, e.AltName)
	case DecodeMissingUnionAlternative:
		return fmt.Sprintf("avro: %s: no alternative registered for union member %q", e.TypeLabel, e.AltName)
	case EncodeExhaustedAlternatives:
		return fmt.Sprintf("avro: %s: no alternative accepted value %v", e.TypeLabel, e.Value)
	case DecodeExhaustedAlternatives:
		return fmt.Sprintf("avro: %s: no alternative could decode value %v", e.TypeLabel, e.Value)
	case EncodeDecimalPrecisionExceeded:
		return fmt.Sprintf("avro: decimal precision %d exceeds schema precision %d", e.Given, e.Limit)
	case DecodeDecimalPrecisionExceeded:
		return fmt.Sprintf("avro: decoded decimal precision %d exceeds schema precision %d", e.Given, e.Limit)
	case EncodeDecimalScalesMismatch:
		return fmt.Sprintf("avro: decimal scale %d does not match schema scale %d", e.Given, e.Required)
	case EncodeExceedsFixedSize:
		return fmt.Sprintf("avro: byte length %d exceeds fixed size %d", e.Length, e.Max)
	case DecodeExceedsFixedSize:
		return fmt.Sprintf("avro: byte length %d exceeds fixed size %d", e.Length, e.Max)
	case UnexpectedByte:
		return fmt.Sprintf("avro: value %d is out of range for byte", e.Given)
	case UnexpectedShort:
		return fmt.Sprintf("avro: value %d is out of range for short", e.Given)
	case UnexpectedChar:
		return fmt.Sprintf("avro: string of length %d cannot decode to a single char", e.Length)
	case DecodeEmptyCollection:
		return fmt.Sprintf("avro: %s: decoded collection must not be empty", e.TypeLabel)
	case EncodeUnexpectedOptionSchema:
		return fmt.Sprintf("avro: option requires a 2-member nullable union schema, got %s", e.Schema)
	case DecodeUnexpectedOptionSchema:
		return fmt.Sprintf("avro: option requires a 2-member nullable union schema, got %s", e.Schema)
	case SchemaConstructionFailed:
		return fmt.Sprintf("avro: schema construction failed: %v", e.cause)
	default:
		return "avro: unknown error"
	}
}

// Unwrap exposes the underlying cause captured by catchNonFatal.
func (e *Error) Unwrap() error { return e.cause }

func errEncodeUnexpectedSchemaType(typeLabel string, actual Type, expected ...Type) *Error {
	return &Error{Kind: EncodeUnexpectedSchemaType, TypeLabel: typeLabel, Actual: string(actual), Expected: typesToStrings(expected)}
}

func errDecodeUnexpectedSchemaType(typeLabel string, actual Type, expected ...Type) *Error {
	return &Error{Kind: DecodeUnexpectedSchemaType, TypeLabel: typeLabel, Actual: string(actual), Expected: typesToStrings(expected)}
}

func errEncodeUnexpectedLogicalType(actual LogicalType, typeLabel string) *Error {
	return &Error{Kind: EncodeUnexpectedLogicalType, TypeLabel: typeLabel, Actual: string(actual)}
}

func errDecodeUnexpectedLogicalType(actual LogicalType, typeLabel string) *Error {
	return &Error{Kind: DecodeUnexpectedLogicalType, TypeLabel: typeLabel, Actual: string(actual)}
}

func errEncodeUnexpectedType(value any, expectedRuntimeTag, typeLabel string) *Error {
	return &Error{Kind: EncodeUnexpectedType, TypeLabel: typeLabel, Value: value, Actual: runtimeTag(value), Expected: []string{expectedRuntimeTag}}
}

func errDecodeUnexpectedType(value any, expectedRuntimeTag, typeLabel string) *Error {
	return &Error{Kind: DecodeUnexpectedType, TypeLabel: typeLabel, Value: value, Actual: runtimeTag(value), Expected: []string{expectedRuntimeTag}}
}

func errEncodeNameMismatch(schemaName, expectedName string) *Error {
	return &Error{Kind: EncodeNameMismatch, SchemaName: schemaName, ExpectedName: expectedName}
}

func errDecodeNameMismatch(schemaName, expectedName string) *Error {
	return &Error{Kind: DecodeNameMismatch, SchemaName: schemaName, ExpectedName: expectedName}
}

func errDecodeUnexpectedRecordName(actual, expected string) *Error {
	return &Error{Kind: DecodeUnexpectedRecordName, SchemaName: actual, ExpectedName: expected}
}

func errEncodeMissingRecordField(name, typeLabel string) *Error {
	return &Error{Kind: EncodeMissingRecordField, TypeLabel: typeLabel, FieldName: name}
}

func errDecodeMissingRecordField(name, typeLabel string) *Error {
	return &Error{Kind: DecodeMissingRecordField, TypeLabel: typeLabel, FieldName: name}
}

func errEncodeSymbolNotInSchema(symbol string, knownSymbols []string, typeLabel string) *Error {
	return &Error{Kind: EncodeSymbolNotInSchema, TypeLabel: typeLabel, Symbol: symbol, KnownSymbols: knownSymbols}
}

func errDecodeSymbolNotInSchema(symbol string, knownSymbols []string, typeLabel string) *Error {
	return &Error{Kind: DecodeSymbolNotInSchema, TypeLabel: typeLabel, Symbol: symbol, KnownSymbols: knownSymbols}
}

func errEncodeMissingUnionSchema(altName, typeLabel string) *Error {
	return &Error{Kind: EncodeMissingUnionSchema, TypeLabel: typeLabel, AltName: altName}
}

func errDecodeMissingUnionSchema(altName, typeLabel string) *Error {
	return &Error{Kind: DecodeMissingUnionSchema, TypeLabel: typeLabel, AltName: altName}
}

func errDecodeMissingUnionAlternative(altName, typeLabel string) *Error {
	return &Error{Kind: DecodeMissingUnionAlternative, TypeLabel: typeLabel, AltName: altName}
}

func errEncodeExhaustedAlternatives(value any, typeLabel string) *Error {
	return &Error{Kind: EncodeExhaustedAlternatives, TypeLabel: typeLabel, Value: value}
}

func errDecodeExhaustedAlternatives(value any, typeLabel string) *Error {
	return &Error{Kind: DecodeExhaustedAlternatives, TypeLabel: typeLabel, Value: value}
}

func errEncodeDecimalPrecisionExceeded(given, limit int) *Error {
	return &Error{Kind: EncodeDecimalPrecisionExceeded, Given: given, Limit: limit}
}

func errDecodeDecimalPrecisionExceeded(given, limit int) *Error {
	return &Error{Kind: DecodeDecimalPrecisionExceeded, Given: given, Limit: limit}
}

func errEncodeDecimalScalesMismatch(given, required int) *Error {
	return &Error{Kind: EncodeDecimalScalesMismatch, Given: given, Required: required}
}

func errEncodeExceedsFixedSize(length, max int) *Error {
	return &Error{Kind: EncodeExceedsFixedSize, Length: length, Max: max}
}

func errDecodeExceedsFixedSize(length, max int) *Error {
	return &Error{Kind: DecodeExceedsFixedSize, Length: length, Max: max}
}

func errUnexpectedByte(v int) *Error  { return &Error{Kind: UnexpectedByte, Given: v} }
func errUnexpectedShort(v int) *Error { return &Error{Kind: UnexpectedShort, Given: v} }
func errUnexpectedChar(strLen int) *Error {
	return &Error{Kind: UnexpectedChar, Length: strLen}
}

func errDecodeEmptyCollection(typeLabel string) *Error {
	return &Error{Kind: DecodeEmptyCollection, TypeLabel: typeLabel}
}

func errEncodeUnexpectedOptionSchema(schema Schema) *Error {
	return &Error{Kind: EncodeUnexpectedOptionSchema, Schema: schema}
}

func errDecodeUnexpectedOptionSchema(schema Schema) *Error {
	return &Error{Kind: DecodeUnexpectedOptionSchema, Schema: schema}
}

func typesToStrings(types []Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

// catchNonFatal runs thunk and converts any panic raised while constructing
// a schema into a SchemaConstructionFailed *Error. It is used only around
// schema-building code (decimal parameter validation, enum/fixed schema
// construction), never around the encode/decode hot path (spec §4.1, §7).
func catchNonFatal[T any](thunk func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			if e, ok := r.(error); ok {
				err = &Error{Kind: SchemaConstructionFailed, cause: e}
				return
			}
			err = &Error{Kind: SchemaConstructionFailed, cause: fmt.Errorf("%v", r)}
		}
	}()
	return thunk()
}
