package codec

// Alt describes one branch of a UNION program: a codec for the branch
// type B together with a Prism projecting/injecting it into the sum type
// A (spec §3.1, §4.4).
type Alt[A, B any] struct {
	codec *Codec[B]
	prism Prism[A, B]
}

// NewAlt lifts a codec and prism into a union alternative.
func NewAlt[A, B any](codec *Codec[B], prism Prism[A, B]) Alt[A, B] {
	return Alt[A, B]{codec: codec, prism: prism}
}

// altEntry type-erases Alt[A, B] over B so a UNION program can hold a
// heterogeneous, ordered, non-empty list of alternatives for a single sum
// type A.
type altEntry[A any] interface {
	// altSchema returns this alternative's own member schema.
	altSchema() (Schema, error)

	// project attempts a's prism.getOption for this branch; ok is false
	// if the prism does not match (spec §4.4 encode: "the FIRST
	// alternative whose prism.getOption yields Some"). The boxed B is
	// handed back to encodeBoxed once the matching union member schema
	// is known, so selection never needs the schema up front.
	project(a A) (boxed any, ok bool)

	// encodeBoxed encodes a value previously produced by project against
	// memberSchema.
	encodeBoxed(boxed any, memberSchema Schema) (any, error)

	// tryDecode attempts to decode v against memberSchema and inject the
	// result via this alternative's prism (spec §4.4 decode).
	tryDecode(v any, memberSchema Schema) (a A, ok bool, err error)
}

func (alt Alt[A, B]) altSchema() (Schema, error) {
	return alt.codec.Schema()
}

func (alt Alt[A, B]) project(a A) (any, bool) {
	b, ok := alt.prism.GetOption(a)
	if !ok {
		return nil, false
	}
	return b, true
}

func (alt Alt[A, B]) encodeBoxed(boxed any, memberSchema Schema) (any, error) {
	return alt.codec.EncodeTo(boxed.(B), memberSchema)
}

func (alt Alt[A, B]) tryDecode(v any, memberSchema Schema) (A, bool, error) {
	var zero A
	b, err := alt.codec.DecodeFrom(v, memberSchema)
	if err != nil {
		return zero, false, err
	}
	return alt.prism.ReverseGet(b), true, nil
}
