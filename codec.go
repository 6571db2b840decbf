// Package codec implements a typed, composable Avro encoding/decoding
// algebra: for every user-defined Go type it carries a schema producer, an
// encoder into the Avro runtime value representation, and a decoder back
// to the Go type, checked against a supplied Schema with a structured
// error taxonomy (see Error).
package codec

import "sync"

// Codec is the central abstraction: a schema producer paired with an
// encoder and decoder between A and the Avro runtime value representation
// (spec §3.2). Codec values are immutable and safe to share.
type Codec[A any] struct {
	schemaFn func() (Schema, error)
	encodeFn func(a A, s Schema) (any, error)
	decodeFn func(v any, s Schema) (A, error)

	schema    Schema
	schemaErr error
	once      sync.Once
}

// NewCodec builds a Codec from its three constituent operations. schemaFn
// is memoized on first call (spec §5, "SHOULD be memoized").
func NewCodec[A any](schemaFn func() (Schema, error), encodeFn func(A, Schema) (any, error), decodeFn func(any, Schema) (A, error)) *Codec[A] {
	return &Codec[A]{schemaFn: schemaFn, encodeFn: encodeFn, decodeFn: decodeFn}
}

// Schema returns this codec's schema, computing and memoizing it on first
// call. The producer is referentially transparent: repeated calls return
// structurally equal schemas (spec I2).
func (c *Codec[A]) Schema() (Schema, error) {
	c.once.Do(func() { c.schema, c.schemaErr = c.schemaFn() })
	return c.schema, c.schemaErr
}

// EncodeTo encodes a into a runtime Avro value fitting schema s.
func (c *Codec[A]) EncodeTo(a A, s Schema) (any, error) {
	return c.encodeFn(a, s)
}

// DecodeFrom parses runtime Avro value v as schema s into an A.
func (c *Codec[A]) DecodeFrom(v any, s Schema) (A, error) {
	return c.decodeFn(v, s)
}

// Encode encodes a against this codec's own schema.
func (c *Codec[A]) Encode(a A) (any, error) {
	s, err := c.Schema()
	if err != nil {
		return nil, err
	}
	return c.EncodeTo(a, s)
}

// Decode parses v against this codec's own schema.
func (c *Codec[A]) Decode(v any) (A, error) {
	var zero A
	s, err := c.Schema()
	if err != nil {
		return zero, err
	}
	return c.DecodeFrom(v, s)
}

// Imap lifts a pair of total, mutually-inverse functions into a Codec[B]
// built from a Codec[A]: decode composes c.decode with f, encode composes
// g with c.encode. The schema is unchanged (spec §3.2).
func Imap[A, B any](c *Codec[A], f func(A) B, g func(B) A) *Codec[B] {
	return NewCodec[B](
		c.Schema,
		func(b B, s Schema) (any, error) { return c.EncodeTo(g(b), s) },
		func(v any, s Schema) (B, error) {
			var zero B
			a, err := c.DecodeFrom(v, s)
			if err != nil {
				return zero, err
			}
			return f(a), nil
		},
	)
}

// ImapError is Imap for a decode-side mapping that may itself fail (spec
// §3.2), e.g. parsing a string into a stricter type.
func ImapError[A, B any](c *Codec[A], f func(A) (B, error), g func(B) A) *Codec[B] {
	return NewCodec[B](
		c.Schema,
		func(b B, s Schema) (any, error) { return c.EncodeTo(g(b), s) },
		func(v any, s Schema) (B, error) {
			var zero B
			a, err := c.DecodeFrom(v, s)
			if err != nil {
				return zero, err
			}
			return f(a)
		},
	)
}

// Show renders a codec as the canonical JSON of its schema, or the schema
// error's message if the schema could not be built (spec §4.6).
func Show[A any](c *Codec[A]) string {
	s, err := c.Schema()
	if err != nil {
		return err.Error()
	}
	return s.String()
}
