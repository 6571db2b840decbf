package codec

// Bytes is the BYTES codec, carrying a raw byte string with no length
// limit.
var Bytes = NewCodec[[]byte](
	func() (Schema, error) { return NewPrimitiveSchema(TypeBytes, nil), nil },
	func(a []byte, s Schema) (any, error) {
		if err := requireSchemaType("bytes", s, errEncodeUnexpectedSchemaType, TypeBytes); err != nil {
			return nil, err
		}
		if err := requireNoLogicalType("bytes", s, errEncodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		return a, nil
	},
	func(v any, s Schema) ([]byte, error) {
		if err := requireSchemaType("bytes", s, errDecodeUnexpectedSchemaType, TypeBytes); err != nil {
			return nil, err
		}
		if err := requireNoLogicalType("bytes", s, errDecodeUnexpectedLogicalType); err != nil {
			return nil, err
		}
		b, ok := v.([]byte)
		if !ok {
			return nil, errDecodeUnexpectedType(v, "bytes", "bytes")
		}
		return b, nil
	},
)

// Fixed is a codec for a byte string of exactly the schema's declared size
// (spec §4.2 bytes row). Encode fails if len(a) exceeds the fixed size;
// shorter byte strings are zero-padded on the left, matching hamba/avro's
// fixed-encoding convention for numeric logical types over FIXED.
func Fixed(size int) *Codec[[]byte] {
	return NewCodec[[]byte](
		func() (Schema, error) {
			return NewFixedSchema("fixed", "", size, nil, nil, nil)
		},
		func(a []byte, s Schema) (any, error) {
			fs, err := requireFixedSchema(s, errEncodeUnexpectedSchemaType)
			if err != nil {
				return nil, err
			}
			if len(a) > fs.Size() {
				return nil, errEncodeExceedsFixedSize(len(a), fs.Size())
			}
			buf := make([]byte, fs.Size())
			copy(buf[fs.Size()-len(a):], a)
			return NewGenericFixed(fs, buf), nil
		},
		func(v any, s Schema) ([]byte, error) {
			fs, err := requireFixedSchema(s, errDecodeUnexpectedSchemaType)
			if err != nil {
				return nil, err
			}
			gf, ok := v.(*GenericFixed)
			if !ok {
				return nil, errDecodeUnexpectedType(v, "fixed", "fixed")
			}
			if len(gf.Value) > fs.Size() {
				return nil, errDecodeExceedsFixedSize(len(gf.Value), fs.Size())
			}
			return gf.Value, nil
		},
	)
}

func requireFixedSchema(s Schema, errFn schemaTypeErrFn) (*FixedSchema, error) {
	fs, ok := s.(*FixedSchema)
	if !ok {
		return nil, errFn("fixed", s.Type(), TypeFixed)
	}
	return fs, nil
}
