package codec

// Record builds the RECORD codec for A from an ordered field program (spec
// §4.3). assemble recombines the decoded, by-name field values into an A;
// it is this module's REDESIGN-FLAGS replacement for the spec's
// applicative field program (no higher-kinded machinery is needed in Go:
// a recombinator closure is enough).
func Record[A any](name, namespace, doc string, aliases []string, props []Prop, assemble func(values map[string]any) (A, error), fields ...fieldEntry[A]) *Codec[A] {
	typeName := name
	if namespace != "" {
		typeName = namespace + "." + name
	}

	return NewCodec[A](
		func() (Schema, error) {
			schemaFields := make([]*Field, len(fields))
			for i, f := range fields {
				sf, err := f.schemaField()
				if err != nil {
					return nil, err
				}
				schemaFields[i] = sf
			}
			return NewRecordSchema(name, namespace, schemaFields, doc, aliases, props)
		},
		func(a A, s Schema) (any, error) {
			rs, ok := s.(*RecordSchema)
			if !ok {
				return nil, errEncodeUnexpectedSchemaType("record", s.Type(), TypeRecord)
			}
			if rs.FullName() != typeName {
				return nil, errEncodeNameMismatch(rs.FullName(), typeName)
			}
			rec := NewGenericRecord(rs)
			for _, f := range fields {
				sf, _ := rs.FieldByName(f.name())
				if sf == nil {
					return nil, errEncodeMissingRecordField(f.name(), "record")
				}
				v, err := f.encode(a)
				if err != nil {
					return nil, err
				}
				rec.Set(sf.Name(), v)
			}
			return rec, nil
		},
		func(v any, s Schema) (A, error) {
			var zero A
			if _, ok := s.(*RecordSchema); !ok {
				return zero, errDecodeUnexpectedSchemaType("record", s.Type(), TypeRecord)
			}
			rec, ok := v.(*GenericRecord)
			if !ok {
				return zero, errDecodeUnexpectedType(v, "record", "record")
			}
			if rec.FullName() != typeName {
				return zero, errDecodeUnexpectedRecordName(rec.FullName(), typeName)
			}
			values := make(map[string]any, len(fields))
			for _, f := range fields {
				decoded, err := f.decode(func(fname string) (any, Schema, bool) {
					sf, _ := rec.Schema.FieldByName(fname)
					if sf == nil {
						return nil, nil, false
					}
					val, ok := rec.Get(fname)
					if !ok {
						return nil, nil, false
					}
					return val, sf.Type(), true
				})
				if err != nil {
					return zero, err
				}
				values[f.name()] = decoded
			}
			return assemble(values)
		},
	)
}
