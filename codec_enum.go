package codec

// Enum builds the ENUM codec for A from a symbol list and a pair of
// user-supplied encode/decode functions between A and string (spec §4.5).
// Construction can panic on a runtime-rejected argument (e.g. a
// non-identifier symbol), caught by catchNonFatal and surfaced as a
// SchemaConstructionFailed schema error.
func Enum[A any](name, namespace, doc string, symbols []string, aliases []string, encode func(A) string, decode func(string) (A, error), def A, hasDef bool) *Codec[A] {
	typeName := name
	if namespace != "" {
		typeName = namespace + "." + name
	}

	return NewCodec[A](
		func() (Schema, error) {
			return catchNonFatal(func() (Schema, error) {
				defSymbol := ""
				if hasDef {
					defSymbol = encode(def)
				}
				es, err := NewEnumSchema(name, namespace, symbols, doc, aliases, defSymbol, hasDef, nil)
				if err != nil {
					panic(err)
				}
				return es, nil
			})
		},
		func(a A, s Schema) (any, error) {
			es, ok := s.(*EnumSchema)
			if !ok {
				return nil, errEncodeUnexpectedSchemaType("enum", s.Type(), TypeEnum)
			}
			if es.FullName() != typeName {
				return nil, errEncodeNameMismatch(es.FullName(), typeName)
			}
			symbol := encode(a)
			if !hasSymbol(es.Symbols(), symbol) {
				return nil, errEncodeSymbolNotInSchema(symbol, es.Symbols(), "enum")
			}
			return NewGenericEnumSymbol(es, symbol), nil
		},
		func(v any, s Schema) (A, error) {
			var zero A
			es, ok := s.(*EnumSchema)
			if !ok {
				return zero, errDecodeUnexpectedSchemaType("enum", s.Type(), TypeEnum)
			}
			ges, ok := v.(*GenericEnumSymbol)
			if !ok {
				return zero, errDecodeUnexpectedType(v, "enum", "enum")
			}
			if es.FullName() != typeName {
				return zero, errDecodeNameMismatch(es.FullName(), typeName)
			}
			if !hasSymbol(es.Symbols(), ges.Symbol) {
				return zero, errDecodeSymbolNotInSchema(ges.Symbol, es.Symbols(), "enum")
			}
			return decode(ges.Symbol)
		},
	)
}
