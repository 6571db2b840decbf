package codec

// Option builds a codec for an optional A over a 2-member nullable union
// schema (spec §4.2 Option codec). A nil *A encodes to null; a non-nil *A
// encodes through inner against the union's non-null member.
func Option[A any](inner *Codec[A]) *Codec[*A] {
	return NewCodec[*A](
		func() (Schema, error) {
			innerSchema, err := inner.Schema()
			if err != nil {
				return nil, err
			}
			return NewUnionSchema([]Schema{NewNullSchema(), innerSchema})
		},
		func(a *A, s Schema) (any, error) {
			us, err := requireNullableUnion("option", s, errEncodeUnexpectedOptionSchema)
			if err != nil {
				return nil, err
			}
			if a == nil {
				return nil, nil
			}
			return inner.EncodeTo(*a, nonNullMember(us))
		},
		func(v any, s Schema) (*A, error) {
			us, err := requireNullableUnion("option", s, errDecodeUnexpectedOptionSchema)
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, nil
			}
			decoded, err := inner.DecodeFrom(v, nonNullMember(us))
			if err != nil {
				return nil, err
			}
			return &decoded, nil
		},
	)
}

func requireNullableUnion(typeLabel string, s Schema, errFn func(Schema) *Error) (*UnionSchema, error) {
	us, ok := s.(*UnionSchema)
	if !ok || !us.Nullable() {
		return nil, errFn(s)
	}
	return us, nil
}

func nonNullMember(us *UnionSchema) Schema {
	for _, m := range us.Types() {
		if m.Type() != TypeNull {
			return m
		}
	}
	return us.Types()[0]
}
