package codec

import "time"

// Instant is a codec for a timestamp, backed by a LONG with the
// timestamp-millis logical type, carrying epoch-millisecond precision
// (spec §4.2 instant row). Sub-millisecond precision is truncated on
// encode, matching hamba/avro's timestamp-millis.Native handling.
var Instant = NewCodec[time.Time](
	func() (Schema, error) {
		return NewPrimitiveSchema(TypeLong, NewPrimitiveLogicalSchema(TimestampMillisLogical)), nil
	},
	func(a time.Time, s Schema) (any, error) {
		if err := requireSchemaType("instant", s, errEncodeUnexpectedSchemaType, TypeLong); err != nil {
			return nil, err
		}
		if err := requireLogicalType("instant", s, TimestampMillisLogical, errEncodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		return a.UnixMilli(), nil
	},
	func(v any, s Schema) (time.Time, error) {
		if err := requireSchemaType("instant", s, errDecodeUnexpectedSchemaType, TypeLong); err != nil {
			return time.Time{}, err
		}
		if err := requireLogicalType("instant", s, TimestampMillisLogical, errDecodeUnexpectedLogicalType); err != nil {
			return time.Time{}, err
		}
		ms, ok := v.(int64)
		if !ok {
			return time.Time{}, errDecodeUnexpectedType(v, "long", "instant")
		}
		return time.UnixMilli(ms).UTC(), nil
	},
)

// localDateEpoch is the zero value for epoch-day arithmetic (spec §4.2
// localDate row: INT + logical date, epoch-days).
var localDateEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// LocalDate is a codec for a calendar date with no time-of-day or zone,
// backed by an INT with the date logical type, carrying whole days since
// the Unix epoch.
var LocalDate = NewCodec[time.Time](
	func() (Schema, error) {
		return NewPrimitiveSchema(TypeInt, NewPrimitiveLogicalSchema(DateLogical)), nil
	},
	func(a time.Time, s Schema) (any, error) {
		if err := requireSchemaType("localDate", s, errEncodeUnexpectedSchemaType, TypeInt); err != nil {
			return nil, err
		}
		if err := requireLogicalType("localDate", s, DateLogical, errEncodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		days := int32(a.UTC().Truncate(24 * time.Hour).Sub(localDateEpoch).Hours() / 24)
		return days, nil
	},
	func(v any, s Schema) (time.Time, error) {
		if err := requireSchemaType("localDate", s, errDecodeUnexpectedSchemaType, TypeInt); err != nil {
			return time.Time{}, err
		}
		if err := requireLogicalType("localDate", s, DateLogical, errDecodeUnexpectedLogicalType); err != nil {
			return time.Time{}, err
		}
		days, ok := v.(int32)
		if !ok {
			return time.Time{}, errDecodeUnexpectedType(v, "int", "localDate")
		}
		return localDateEpoch.AddDate(0, 0, int(days)), nil
	},
)

// requireLogicalType checks that s carries exactly the wanted logical type,
// using errFn to report EncodeUnexpectedLogicalType or
// DecodeUnexpectedLogicalType depending on the caller's side.
func requireLogicalType(typeLabel string, s Schema, want LogicalType, errFn logicalTypeErrFn) error {
	lts, ok := s.(LogicalTypeSchema)
	if !ok || lts.Logical() == nil || lts.Logical().Type() != want {
		return errFn(logicalTypeOf(s), typeLabel)
	}
	return nil
}

func logicalTypeOf(s Schema) LogicalType {
	if lts, ok := s.(LogicalTypeSchema); ok && lts.Logical() != nil {
		return lts.Logical().Type()
	}
	return ""
}
