package codec

// Boolean is the BOOLEAN codec.
var Boolean = NewCodec[bool](
	func() (Schema, error) { return NewPrimitiveSchema(TypeBoolean, nil), nil },
	func(a bool, s Schema) (any, error) {
		if err := requireSchemaType("boolean", s, errEncodeUnexpectedSchemaType, TypeBoolean); err != nil {
			return nil, err
		}
		if err := requireNoLogicalType("boolean", s, errEncodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		return a, nil
	},
	func(v any, s Schema) (bool, error) {
		if err := requireSchemaType("boolean", s, errDecodeUnexpectedSchemaType, TypeBoolean); err != nil {
			return false, err
		}
		if err := requireNoLogicalType("boolean", s, errDecodeUnexpectedLogicalType); err != nil {
			return false, err
		}
		b, ok := v.(bool)
		if !ok {
			return false, errDecodeUnexpectedType(v, "boolean", "boolean")
		}
		return b, nil
	},
)

// Int is the INT codec.
var Int = NewCodec[int32](
	func() (Schema, error) { return NewPrimitiveSchema(TypeInt, nil), nil },
	func(a int32, s Schema) (any, error) {
		if err := requireSchemaType("int", s, errEncodeUnexpectedSchemaType, TypeInt); err != nil {
			return nil, err
		}
		if err := requireNoLogicalType("int", s, errEncodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		return a, nil
	},
	func(v any, s Schema) (int32, error) {
		if err := requireSchemaType("int", s, errDecodeUnexpectedSchemaType, TypeInt); err != nil {
			return 0, err
		}
		if err := requireNoLogicalType("int", s, errDecodeUnexpectedLogicalType); err != nil {
			return 0, err
		}
		i, ok := v.(int32)
		if !ok {
			return 0, errDecodeUnexpectedType(v, "int", "int")
		}
		return i, nil
	},
)

// Long is the LONG codec.
var Long = NewCodec[int64](
	func() (Schema, error) { return NewPrimitiveSchema(TypeLong, nil), nil },
	func(a int64, s Schema) (any, error) {
		if err := requireSchemaType("long", s, errEncodeUnexpectedSchemaType, TypeLong); err != nil {
			return nil, err
		}
		if err := requireNoLogicalType("long", s, errEncodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		return a, nil
	},
	func(v any, s Schema) (int64, error) {
		if err := requireSchemaType("long", s, errDecodeUnexpectedSchemaType, TypeLong); err != nil {
			return 0, err
		}
		if err := requireNoLogicalType("long", s, errDecodeUnexpectedLogicalType); err != nil {
			return 0, err
		}
		i, ok := v.(int64)
		if !ok {
			return 0, errDecodeUnexpectedType(v, "long", "long")
		}
		return i, nil
	},
)

// Float is the FLOAT codec.
var Float = NewCodec[float32](
	func() (Schema, error) { return NewPrimitiveSchema(TypeFloat, nil), nil },
	func(a float32, s Schema) (any, error) {
		if err := requireSchemaType("float", s, errEncodeUnexpectedSchemaType, TypeFloat); err != nil {
			return nil, err
		}
		if err := requireNoLogicalType("float", s, errEncodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		return a, nil
	},
	func(v any, s Schema) (float32, error) {
		if err := requireSchemaType("float", s, errDecodeUnexpectedSchemaType, TypeFloat); err != nil {
			return 0, err
		}
		if err := requireNoLogicalType("float", s, errDecodeUnexpectedLogicalType); err != nil {
			return 0, err
		}
		f, ok := v.(float32)
		if !ok {
			return 0, errDecodeUnexpectedType(v, "float", "float")
		}
		return f, nil
	},
)

// Double is the DOUBLE codec.
var Double = NewCodec[float64](
	func() (Schema, error) { return NewPrimitiveSchema(TypeDouble, nil), nil },
	func(a float64, s Schema) (any, error) {
		if err := requireSchemaType("double", s, errEncodeUnexpectedSchemaType, TypeDouble); err != nil {
			return nil, err
		}
		if err := requireNoLogicalType("double", s, errEncodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		return a, nil
	},
	func(v any, s Schema) (float64, error) {
		if err := requireSchemaType("double", s, errDecodeUnexpectedSchemaType, TypeDouble); err != nil {
			return 0, err
		}
		if err := requireNoLogicalType("double", s, errDecodeUnexpectedLogicalType); err != nil {
			return 0, err
		}
		f, ok := v.(float64)
		if !ok {
			return 0, errDecodeUnexpectedType(v, "double", "double")
		}
		return f, nil
	},
)

// String is the STRING codec.
var String = NewCodec[string](
	func() (Schema, error) { return NewPrimitiveSchema(TypeString, nil), nil },
	func(a string, s Schema) (any, error) {
		if err := requireSchemaType("string", s, errEncodeUnexpectedSchemaType, TypeString); err != nil {
			return nil, err
		}
		if err := requireNoLogicalType("string", s, errEncodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		return a, nil
	},
	func(v any, s Schema) (string, error) {
		if err := requireSchemaType("string", s, errDecodeUnexpectedSchemaType, TypeString); err != nil {
			return "", err
		}
		if err := requireNoLogicalType("string", s, errDecodeUnexpectedLogicalType); err != nil {
			return "", err
		}
		str, ok := v.(string)
		if !ok {
			return "", errDecodeUnexpectedType(v, "utf8", "string")
		}
		return str, nil
	},
)

// Unit is the NULL codec, for types that carry no information.
var Unit = NewCodec[struct{}](
	func() (Schema, error) { return NewNullSchema(), nil },
	func(_ struct{}, s Schema) (any, error) {
		if err := requireSchemaType("unit", s, errEncodeUnexpectedSchemaType, TypeNull); err != nil {
			return nil, err
		}
		if err := requireNoLogicalType("unit", s, errEncodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		return nil, nil
	},
	func(v any, s Schema) (struct{}, error) {
		if err := requireSchemaType("unit", s, errDecodeUnexpectedSchemaType, TypeNull); err != nil {
			return struct{}{}, err
		}
		if err := requireNoLogicalType("unit", s, errDecodeUnexpectedLogicalType); err != nil {
			return struct{}{}, err
		}
		if v != nil {
			return struct{}{}, errDecodeUnexpectedType(v, "null", "unit")
		}
		return struct{}{}, nil
	},
)

// schemaTypeErrFn is the shape shared by errEncodeUnexpectedSchemaType and
// errDecodeUnexpectedSchemaType, so requireSchemaType can report the right
// Kind for whichever side of the codec is calling it.
type schemaTypeErrFn func(typeLabel string, actual Type, expected ...Type) *Error

// logicalTypeErrFn is the shape shared by errEncodeUnexpectedLogicalType and
// errDecodeUnexpectedLogicalType.
type logicalTypeErrFn func(actual LogicalType, typeLabel string) *Error

// requireSchemaType checks s.Type() against expected, using errFn to build
// the failure so encode-time callers report EncodeUnexpectedSchemaType and
// decode-time callers report DecodeUnexpectedSchemaType (spec §4.2 contract
// rule 1).
func requireSchemaType(typeLabel string, s Schema, errFn schemaTypeErrFn, expected ...Type) error {
	for _, t := range expected {
		if s.Type() == t {
			return nil
		}
	}
	return errFn(typeLabel, s.Type(), expected...)
}

// requireNoLogicalType fails if s carries a logical type this codec does
// not expect (spec §4.2 contract rule 2), using errFn to report
// EncodeUnexpectedLogicalType or DecodeUnexpectedLogicalType depending on
// the caller's side.
func requireNoLogicalType(typeLabel string, s Schema, errFn logicalTypeErrFn) error {
	lts, ok := s.(LogicalTypeSchema)
	if !ok || lts.Logical() == nil {
		return nil
	}
	return errFn(lts.Logical().Type(), typeLabel)
}
