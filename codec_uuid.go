package codec

import "github.com/google/uuid"

// UUID is a codec for a uuid.UUID, backed by a STRING with the uuid
// logical type (spec §4.2 uuid row). A parse failure on decode is
// reported as a DecodeUnexpectedType error wrapping the underlying
// uuid.Parse error, since catchNonFatal is reserved for schema
// construction, not decode-time value parsing.
var UUID = ImapError(uuidString,
	func(s string) (uuid.UUID, error) {
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.UUID{}, &Error{Kind: DecodeUnexpectedType, TypeLabel: "uuid", Value: s, Actual: "utf8", Expected: []string{"uuid"}, cause: err}
		}
		return id, nil
	},
	func(id uuid.UUID) string { return id.String() },
)

// uuidString is the STRING-with-uuid-logical-type schema shared by UUID's
// encode and decode sides.
var uuidString = NewCodec[string](
	func() (Schema, error) {
		return NewPrimitiveSchema(TypeString, NewPrimitiveLogicalSchema(UUIDLogical)), nil
	},
	func(a string, s Schema) (any, error) {
		if err := requireSchemaType("uuid", s, errEncodeUnexpectedSchemaType, TypeString); err != nil {
			return nil, err
		}
		if err := requireLogicalType("uuid", s, UUIDLogical, errEncodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		return a, nil
	},
	func(v any, s Schema) (string, error) {
		if err := requireSchemaType("uuid", s, errDecodeUnexpectedSchemaType, TypeString); err != nil {
			return "", err
		}
		if err := requireLogicalType("uuid", s, UUIDLogical, errDecodeUnexpectedLogicalType); err != nil {
			return "", err
		}
		str, ok := v.(string)
		if !ok {
			return "", errDecodeUnexpectedType(v, "utf8", "uuid")
		}
		return str, nil
	},
)
