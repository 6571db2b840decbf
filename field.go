package codec

// FieldDef describes one lifted field of a RECORD program: how to read it off
// the record type A, its own codec over B, and the schema-level metadata
// attached to it (spec §4.3, §3.3). It is distinct from the schema-level
// Field that its schemaField method produces.
//
// The spec's applicative field program is replaced here by the ordered
// list of fieldEntry values plus a recombinator, per REDESIGN FLAGS: a
// visitor with an encode and a decode method is enough without a
// higher-kinded "natural transformation."
type FieldDef[A, B any] struct {
	fieldName string
	access  func(A) B
	codec   *Codec[B]
	doc     string
	hasDef  bool
	def     B
	order   Order
	aliases []string
	props   []Prop
}

// fieldConfig carries a Field's optional schema metadata, independent of
// the record type A it will eventually be lifted into.
type fieldConfig[B any] struct {
	doc     string
	def     B
	hasDef  bool
	order   Order
	aliases []string
	props   []Prop
}

// FieldOption configures optional Field metadata (doc, default, order,
// aliases, props).
type FieldOption[B any] func(*fieldConfig[B])

// Doc sets the field's schema doc string.
func Doc[B any](doc string) FieldOption[B] {
	return func(c *fieldConfig[B]) { c.doc = doc }
}

// Default sets the field's schema default value.
func Default[B any](def B) FieldOption[B] {
	return func(c *fieldConfig[B]) { c.def = def; c.hasDef = true }
}

// FieldOrder sets the field's schema sort order.
func FieldOrder[B any](order Order) FieldOption[B] {
	return func(c *fieldConfig[B]) { c.order = order }
}

// Aliases sets the field's schema aliases.
func Aliases[B any](aliases ...string) FieldOption[B] {
	return func(c *fieldConfig[B]) { c.aliases = aliases }
}

// Props sets the field's schema properties.
func Props[B any](props ...Prop) FieldOption[B] {
	return func(c *fieldConfig[B]) { c.props = props }
}

// RecordField lifts a named, accessed, coded field into a record program.
// hasDef distinguishes "no default" from a legitimate zero-value default
// (including an explicit null default).
func RecordField[A, B any](name string, access func(A) B, codec *Codec[B], opts ...FieldOption[B]) FieldDef[A, B] {
	cfg := fieldConfig[B]{order: Asc}
	for _, o := range opts {
		o(&cfg)
	}
	return FieldDef[A, B]{
		fieldName: name, access: access, codec: codec,
		doc: cfg.doc, hasDef: cfg.hasDef, def: cfg.def,
		order: cfg.order, aliases: cfg.aliases, props: cfg.props,
	}
}

// fieldEntry type-erases FieldDef[A, B] over B so a RECORD program can hold a
// heterogeneous, ordered list of fields for a single record type A.
type fieldEntry[A any] interface {
	// name returns the field's declared name, used for by-name lookup
	// (spec §4.3: "tolerated via name lookup, not position").
	name() string

	// schemaField computes this field's schema Field (spec §4.3 "Schema
	// assembly"): its inner schema, and, if it declares a default, that
	// default pre-encoded through the field's own codec.
	schemaField() (*Field, error)

	// encode reads this field off a and encodes it against its own
	// schema (spec §4.3 "Encode").
	encode(a A) (any, error)

	// decode looks up this field BY NAME in the incoming record via
	// lookup, decodes it, and returns the decoded B boxed as any; if the
	// field is absent it falls back to its declared default, else fails
	// with decodeMissingRecordField (spec §4.3 "Decode").
	decode(lookup func(name string) (value any, schema Schema, ok bool)) (any, error)
}

func (f FieldDef[A, B]) name() string { return f.fieldName }

func (f FieldDef[A, B]) schemaField() (*Field, error) {
	innerSchema, err := f.codec.Schema()
	if err != nil {
		return nil, err
	}
	var encodedDef any
	if f.hasDef {
		encodedDef, err = f.codec.EncodeTo(f.def, innerSchema)
		if err != nil {
			return nil, err
		}
	}
	return NewField(f.fieldName, innerSchema, f.doc, encodedDef, f.hasDef, f.order, f.aliases, f.props)
}

func (f FieldDef[A, B]) encode(a A) (any, error) {
	innerSchema, err := f.codec.Schema()
	if err != nil {
		return nil, err
	}
	return f.codec.EncodeTo(f.access(a), innerSchema)
}

func (f FieldDef[A, B]) decode(lookup func(name string) (any, Schema, bool)) (any, error) {
	v, s, ok := lookup(f.fieldName)
	if !ok {
		if f.hasDef {
			return f.def, nil
		}
		return nil, errDecodeMissingRecordField(f.fieldName, "record")
	}
	return f.codec.DecodeFrom(v, s)
}
