package codec

import "sort"

// List builds an ARRAY codec for A over an element codec, preserving
// source iteration order on encode (spec §4.2 Collection codecs).
func List[A any](elem *Codec[A]) *Codec[[]A] {
	return arrayCodec(elem, "list", func(xs []A) []A { return xs })
}

// Vector is List under a different name (spec names list/vector/seq/chain
// as equivalent ordinary-array aliases; the distinction matters to the
// caller's own type, not to this codec).
func Vector[A any](elem *Codec[A]) *Codec[[]A] { return arrayCodec(elem, "vector", func(xs []A) []A { return xs }) }

// Seq is List under a different name.
func Seq[A any](elem *Codec[A]) *Codec[[]A] { return arrayCodec(elem, "seq", func(xs []A) []A { return xs }) }

// Chain is List under a different name.
func Chain[A any](elem *Codec[A]) *Codec[[]A] { return arrayCodec(elem, "chain", func(xs []A) []A { return xs }) }

// Set builds an ARRAY codec for A that deduplicates on decode, comparing
// decoded elements with == and keeping the first occurrence of each in
// array order (spec: "set dedups on decode").
func Set[A comparable](elem *Codec[A]) *Codec[[]A] {
	return arrayCodec(elem, "set", func(xs []A) []A {
		seen := make(map[A]bool, len(xs))
		out := make([]A, 0, len(xs))
		for _, x := range xs {
			if seen[x] {
				continue
			}
			seen[x] = true
			out = append(out, x)
		}
		return out
	})
}

// NonEmptyList is List, but rejects an empty decoded array with
// decodeEmptyCollection.
func NonEmptyList[A any](elem *Codec[A]) *Codec[[]A] {
	return nonEmptyArrayCodec(elem, "nonEmptyList", func(xs []A) []A { return xs })
}

// NonEmptyVector is NonEmptyList under a different name.
func NonEmptyVector[A any](elem *Codec[A]) *Codec[[]A] {
	return nonEmptyArrayCodec(elem, "nonEmptyVector", func(xs []A) []A { return xs })
}

// NonEmptyChain is NonEmptyList under a different name.
func NonEmptyChain[A any](elem *Codec[A]) *Codec[[]A] {
	return nonEmptyArrayCodec(elem, "nonEmptyChain", func(xs []A) []A { return xs })
}

// NonEmptySet is Set, but rejects an empty decoded array with
// decodeEmptyCollection and sorts the deduplicated result by less.
func NonEmptySet[A comparable](elem *Codec[A], less func(a, b A) bool) *Codec[[]A] {
	return nonEmptyArrayCodec(elem, "nonEmptySet", func(xs []A) []A {
		seen := make(map[A]bool, len(xs))
		out := make([]A, 0, len(xs))
		for _, x := range xs {
			if seen[x] {
				continue
			}
			seen[x] = true
			out = append(out, x)
		}
		sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
		return out
	})
}

func arrayCodec[A any](elem *Codec[A], typeLabel string, postDecode func([]A) []A) *Codec[[]A] {
	return NewCodec[[]A](
		func() (Schema, error) {
			es, err := elem.Schema()
			if err != nil {
				return nil, err
			}
			return NewArraySchema(es), nil
		},
		func(a []A, s Schema) (any, error) {
			as, err := requireArraySchema(typeLabel, s, errEncodeUnexpectedSchemaType)
			if err != nil {
				return nil, err
			}
			out := make([]any, len(a))
			for i, x := range a {
				encoded, err := elem.EncodeTo(x, as.Items())
				if err != nil {
					return nil, err
				}
				out[i] = encoded
			}
			return out, nil
		},
		func(v any, s Schema) ([]A, error) {
			as, err := requireArraySchema(typeLabel, s, errDecodeUnexpectedSchemaType)
			if err != nil {
				return nil, err
			}
			items, ok := v.([]any)
			if !ok {
				return nil, errDecodeUnexpectedType(v, "array", typeLabel)
			}
			out := make([]A, len(items))
			for i, it := range items {
				decoded, err := elem.DecodeFrom(it, as.Items())
				if err != nil {
					return nil, err
				}
				out[i] = decoded
			}
			return postDecode(out), nil
		},
	)
}

func nonEmptyArrayCodec[A any](elem *Codec[A], typeLabel string, postDecode func([]A) []A) *Codec[[]A] {
	base := arrayCodec(elem, typeLabel, postDecode)
	return NewCodec[[]A](
		base.Schema,
		base.EncodeTo,
		func(v any, s Schema) ([]A, error) {
			out, err := base.DecodeFrom(v, s)
			if err != nil {
				return nil, err
			}
			if len(out) == 0 {
				return nil, errDecodeEmptyCollection(typeLabel)
			}
			return out, nil
		},
	)
}

func requireArraySchema(typeLabel string, s Schema, errFn schemaTypeErrFn) (*ArraySchema, error) {
	as, ok := s.(*ArraySchema)
	if !ok {
		return nil, errFn(typeLabel, s.Type(), TypeArray)
	}
	return as, nil
}

// Map builds a MAP codec for a string-keyed map of V over a value codec,
// grounded on hamba/avro's codec_map.go MAP-schema/map[string]any-runtime
// contract generalized the same way the array codecs above are.
func Map[V any](elem *Codec[V]) *Codec[map[string]V] {
	return NewCodec[map[string]V](
		func() (Schema, error) {
			es, err := elem.Schema()
			if err != nil {
				return nil, err
			}
			return NewMapSchema(es), nil
		},
		func(a map[string]V, s Schema) (any, error) {
			ms, err := requireMapSchema(s, errEncodeUnexpectedSchemaType)
			if err != nil {
				return nil, err
			}
			out := make(map[string]any, len(a))
			for k, v := range a {
				encoded, err := elem.EncodeTo(v, ms.Values())
				if err != nil {
					return nil, err
				}
				out[k] = encoded
			}
			return out, nil
		},
		func(v any, s Schema) (map[string]V, error) {
			ms, err := requireMapSchema(s, errDecodeUnexpectedSchemaType)
			if err != nil {
				return nil, err
			}
			entries, ok := v.(map[string]any)
			if !ok {
				return nil, errDecodeUnexpectedType(v, "map", "map")
			}
			out := make(map[string]V, len(entries))
			for k, ev := range entries {
				decoded, err := elem.DecodeFrom(ev, ms.Values())
				if err != nil {
					return nil, err
				}
				out[k] = decoded
			}
			return out, nil
		},
	)
}

func requireMapSchema(s Schema, errFn schemaTypeErrFn) (*MapSchema, error) {
	ms, ok := s.(*MapSchema)
	if !ok {
		return nil, errFn("map", s.Type(), TypeMap)
	}
	return ms, nil
}
