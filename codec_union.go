package codec

// Union builds the UNION codec for A from an ordered, non-empty list of
// alternatives (spec §4.4). The schema is the union of each alternative's
// own schema in declaration order; Avro forbids nested unions and
// duplicate member type-names, and, as the spec notes, this core relies on
// the Avro runtime (NewUnionSchema) to reject those rather than
// re-validating here.
func Union[A any](alts ...altEntry[A]) *Codec[A] {
	return NewCodec[A](
		func() (Schema, error) {
			members := make([]Schema, len(alts))
			for i, alt := range alts {
				s, err := alt.altSchema()
				if err != nil {
					return nil, err
				}
				members[i] = s
			}
			return NewUnionSchema(members)
		},
		func(a A, s Schema) (any, error) {
			us, ok := s.(*UnionSchema)
			if !ok {
				return nil, errEncodeUnexpectedSchemaType("union", s.Type(), TypeUnion)
			}
			for _, alt := range alts {
				boxed, matched := alt.project(a)
				if !matched {
					continue
				}
				altSchema, err := alt.altSchema()
				if err != nil {
					return nil, err
				}
				member, _ := us.Types().Get(schemaTypeName(altSchema))
				if member == nil {
					return nil, errEncodeMissingUnionSchema(schemaTypeName(altSchema), "union")
				}
				return alt.encodeBoxed(boxed, member)
			}
			return nil, errEncodeExhaustedAlternatives(a, "union")
		},
		func(v any, s Schema) (A, error) {
			var zero A
			us, ok := s.(*UnionSchema)
			if !ok {
				return zero, errDecodeUnexpectedSchemaType("union", s.Type(), TypeUnion)
			}

			if fullName, isNamed := asNamedValue(v); isNamed {
				member, _ := us.Types().Get(fullName)
				if member == nil {
					return zero, errDecodeMissingUnionSchema(fullName, "union")
				}
				for _, alt := range alts {
					altSchema, err := alt.altSchema()
					if err != nil {
						return zero, err
					}
					if schemaTypeName(altSchema) != fullName {
						continue
					}
					a, _, decErr := alt.tryDecode(v, member)
					return a, decErr
				}
				return zero, errDecodeMissingUnionAlternative(fullName, "union")
			}

			members := us.Types()
			for i, alt := range alts {
				if i >= len(members) {
					break
				}
				a, matched, err := alt.tryDecode(v, members[i])
				if matched && err == nil {
					return a, nil
				}
			}
			return zero, errDecodeExhaustedAlternatives(v, "union")
		},
	)
}
