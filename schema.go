package codec

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Type is a schema type.
type Type string

// Schema type constants. Prefixed with Type (TypeInt, not Int) because
// this package also exports module-level Codec values named after their
// Go/Avro type (Int, Long, ...); the two naming schemes would otherwise
// collide.
const (
	TypeRecord  Type = "record"
	TypeEnum    Type = "enum"
	TypeArray   Type = "array"
	TypeMap     Type = "map"
	TypeUnion   Type = "union"
	TypeFixed   Type = "fixed"
	TypeString  Type = "string"
	TypeBytes   Type = "bytes"
	TypeInt     Type = "int"
	TypeLong    Type = "long"
	TypeFloat   Type = "float"
	TypeDouble  Type = "double"
	TypeBoolean Type = "boolean"
	TypeNull    Type = "null"
)

// Order is a record field order.
type Order string

// Field orders.
const (
	Asc    Order = "ascending"
	Desc   Order = "descending"
	Ignore Order = "ignore"
)

// LogicalType is a schema logical type.
type LogicalType string

// Schema logical type constants.
const (
	DecimalLogical         LogicalType = "decimal"
	UUIDLogical            LogicalType = "uuid"
	DateLogical            LogicalType = "date"
	TimestampMillisLogical LogicalType = "timestamp-millis"
)

// Schema represents an Avro schema. It is the "Avro runtime" half of the
// library that every Codec is checked against: schema construction and
// inspection, never binary wire encoding.
type Schema interface {
	// Type returns the top-level type of the schema.
	Type() Type

	// String returns the canonical JSON form of the schema.
	String() string
}

// LogicalSchema represents a logical type attached to a Schema.
type LogicalSchema interface {
	Type() LogicalType
	String() string
}

// PropertySchema represents a schema carrying custom key/value properties.
type PropertySchema interface {
	Prop(name string) any
	Props() map[string]any
}

// NamedSchema represents a schema with a namespace-qualified name.
type NamedSchema interface {
	Schema
	PropertySchema

	Name() string
	Namespace() string
	FullName() string
	Aliases() []string
}

// LogicalTypeSchema represents a schema that may carry a logical type.
type LogicalTypeSchema interface {
	Logical() LogicalSchema
}

// Schemas is an ordered list of member schemas, as carried by a union.
type Schemas []Schema

// Get finds a member schema by its type-name (the full name for named
// schemas, or the bare Type string for everything else).
func (s Schemas) Get(typeName string) (Schema, int) {
	for i, schema := range s {
		if schemaTypeName(schema) == typeName {
			return schema, i
		}
	}
	return nil, -1
}

func schemaTypeName(s Schema) string {
	if n, ok := s.(NamedSchema); ok {
		return n.FullName()
	}
	return string(s.Type())
}

type name struct {
	name      string
	namespace string
	full      string
	aliases   []string
}

func newName(n, ns string, aliases []string) (name, error) {
	if idx := strings.LastIndexByte(n, '.'); idx > -1 {
		ns = n[:idx]
		n = n[idx+1:]
	}

	full := n
	if ns != "" {
		full = ns + "." + n
	}

	for _, part := range strings.Split(full, ".") {
		if err := validateName(part); err != nil {
			return name{}, fmt.Errorf("codec: invalid name part %q in name %q: %w", part, full, err)
		}
	}

	a := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		if err := validateName(alias); err != nil {
			return name{}, fmt.Errorf("codec: invalid alias %q: %w", alias, err)
		}
		if ns != "" && !strings.Contains(alias, ".") {
			a = append(a, ns+"."+alias)
			continue
		}
		a = append(a, alias)
	}

	return name{name: n, namespace: ns, full: full, aliases: a}, nil
}

func (n name) Name() string      { return n.name }
func (n name) Namespace() string { return n.namespace }
func (n name) FullName() string  { return n.full }
func (n name) Aliases() []string { return n.aliases }

func invalidNameFirstChar(r rune) bool {
	return (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') && r != '_'
}

func invalidNameOtherChar(r rune) bool {
	return invalidNameFirstChar(r) && (r < '0' || r > '9')
}

func validateName(n string) error {
	if n == "" {
		return errors.New("name must be non-empty")
	}
	if strings.IndexFunc(n[:1], invalidNameFirstChar) > -1 {
		return fmt.Errorf("invalid name %q", n)
	}
	if strings.IndexFunc(n[1:], invalidNameOtherChar) > -1 {
		return fmt.Errorf("invalid name %q", n)
	}
	return nil
}

type properties struct {
	props map[string]any
}

func newProperties(props []Prop) properties {
	p := properties{props: make(map[string]any, len(props))}
	for _, kv := range props {
		p.props[kv.Key] = kv.Value
	}
	return p
}

// Prop is a single schema-level custom property. Schema constructors take
// props as a slice but store them in a map keyed by Key: a repeated key
// keeps its last value, and JSON rendering emits properties sorted by key,
// not in the order they were given.
type Prop struct {
	Key   string
	Value string
}

func (p properties) Prop(name string) any {
	if p.props == nil {
		return nil
	}
	return p.props[name]
}

func (p properties) Props() map[string]any {
	return p.props
}

func (p properties) marshalPropertiesToJSON(buf *bytes.Buffer) error {
	keys := make([]string, 0, len(p.props))
	for k := range p.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		vv, err := jsoniter.Marshal(p.props[k])
		if err != nil {
			return err
		}
		kk, err := jsoniter.Marshal(k)
		if err != nil {
			return err
		}
		buf.WriteString(",")
		buf.Write(kk)
		buf.WriteString(":")
		buf.Write(vv)
	}
	return nil
}

// PrimitiveSchema is an Avro primitive type schema, optionally carrying a
// logical type.
type PrimitiveSchema struct {
	properties

	typ     Type
	logical LogicalSchema
}

// NewPrimitiveSchema creates a primitive schema, optionally with a logical type.
func NewPrimitiveSchema(t Type, l LogicalSchema, props ...Prop) *PrimitiveSchema {
	return &PrimitiveSchema{properties: newProperties(props), typ: t, logical: l}
}

func (s *PrimitiveSchema) Type() Type                 { return s.typ }
func (s *PrimitiveSchema) Logical() LogicalSchema      { return s.logical }

func (s *PrimitiveSchema) String() string {
	if s.logical == nil {
		return `"` + string(s.typ) + `"`
	}
	return `{"type":"` + string(s.typ) + `",` + s.logical.String() + `}`
}

func (s *PrimitiveSchema) MarshalJSON() ([]byte, error) {
	if s.logical == nil && len(s.props) == 0 {
		return jsoniter.Marshal(s.typ)
	}
	buf := new(bytes.Buffer)
	buf.WriteString(`{"type":"` + string(s.typ) + `"`)
	if s.logical != nil {
		buf.WriteString(`,"logicalType":"` + string(s.logical.Type()) + `"`)
		if d, ok := s.logical.(*DecimalLogicalSchema); ok {
			buf.WriteString(`,"precision":` + strconv.Itoa(d.prec))
			buf.WriteString(`,"scale":` + strconv.Itoa(d.scale))
		}
	}
	if err := s.marshalPropertiesToJSON(buf); err != nil {
		return nil, err
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// Field is an Avro record field: name, type, optional doc/default/order/
// aliases/props.
type Field struct {
	properties

	name    string
	aliases []string
	doc     string
	typ     Schema
	hasDef  bool
	def     any
	order   Order
}

// NewField creates a record field. def/hasDef carry the field's default as
// a runtime Avro value already encoded against typ (this module's RECORD
// codec always derives defaults this way; it never parses a literal JSON
// default), so no type-coercion validation is performed here.
func NewField(fname string, typ Schema, doc string, def any, hasDef bool, order Order, aliases []string, props []Prop) (*Field, error) {
	if err := validateName(fname); err != nil {
		return nil, fmt.Errorf("codec: invalid field name: %w", err)
	}
	for _, a := range aliases {
		if err := validateName(a); err != nil {
			return nil, fmt.Errorf("codec: invalid field alias: %w", err)
		}
	}
	switch order {
	case "":
		order = Asc
	case Asc, Desc, Ignore:
	default:
		return nil, fmt.Errorf("codec: field %q order %q is invalid", fname, order)
	}

	return &Field{
		properties: newProperties(props),
		name:       fname,
		aliases:    aliases,
		doc:        doc,
		typ:        typ,
		hasDef:     hasDef,
		def:        def,
		order:      order,
	}, nil
}

func (f *Field) Name() string      { return f.name }
func (f *Field) Aliases() []string { return f.aliases }
func (f *Field) Type() Schema      { return f.typ }
func (f *Field) HasDefault() bool  { return f.hasDef }
func (f *Field) Default() any      { return f.def }
func (f *Field) Doc() string       { return f.doc }
func (f *Field) Order() Order      { return f.order }

func (f *Field) String() string {
	return `{"name":"` + f.name + `","type":` + f.typ.String() + `}`
}

func (f *Field) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(`{"name":"` + f.name + `"`)
	if len(f.aliases) > 0 {
		aj, err := jsoniter.Marshal(f.aliases)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"aliases":`)
		buf.Write(aj)
	}
	if f.doc != "" {
		dj, err := jsoniter.Marshal(f.doc)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"doc":`)
		buf.Write(dj)
	}
	tj, err := jsoniter.Marshal(f.typ)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`,"type":`)
	buf.Write(tj)
	if f.hasDef {
		defJSON, err := jsoniter.Marshal(f.def)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"default":`)
		buf.Write(defJSON)
	}
	if f.order != "" && f.order != Asc {
		buf.WriteString(`,"order":"` + string(f.order) + `"`)
	}
	if err := f.marshalPropertiesToJSON(buf); err != nil {
		return nil, err
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// RecordSchema is an Avro record type schema.
type RecordSchema struct {
	name
	properties

	fields []*Field
	doc    string
}

// NewRecordSchema creates a record schema from an ordered field list.
func NewRecordSchema(recName, namespace string, fields []*Field, doc string, aliases []string, props []Prop) (*RecordSchema, error) {
	n, err := newName(recName, namespace, aliases)
	if err != nil {
		return nil, err
	}
	return &RecordSchema{name: n, properties: newProperties(props), fields: fields, doc: doc}, nil
}

func (s *RecordSchema) Type() Type        { return TypeRecord }
func (s *RecordSchema) Doc() string       { return s.doc }
func (s *RecordSchema) Fields() []*Field  { return s.fields }

// FieldByName looks up a field by its declared name (records resolve
// fields by name, never position).
func (s *RecordSchema) FieldByName(name string) (*Field, int) {
	for i, f := range s.fields {
		if f.name == name {
			return f, i
		}
	}
	return nil, -1
}

func (s *RecordSchema) String() string {
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = f.String()
	}
	return `{"name":"` + s.FullName() + `","type":"record","fields":[` + strings.Join(parts, ",") + `]}`
}

func (s *RecordSchema) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(`{"name":"` + s.full + `"`)
	if len(s.aliases) > 0 {
		aj, err := jsoniter.Marshal(s.aliases)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"aliases":`)
		buf.Write(aj)
	}
	if s.doc != "" {
		dj, err := jsoniter.Marshal(s.doc)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"doc":`)
		buf.Write(dj)
	}
	buf.WriteString(`,"type":"record"`)
	fj, err := jsoniter.Marshal(s.fields)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`,"fields":`)
	buf.Write(fj)
	if err := s.marshalPropertiesToJSON(buf); err != nil {
		return nil, err
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// EnumSchema is an Avro enum type schema.
type EnumSchema struct {
	name
	properties

	symbols []string
	def     string
	hasDef  bool
	doc     string
}

// NewEnumSchema creates an enum schema from a non-empty symbol list.
func NewEnumSchema(enumName, namespace string, symbols []string, doc string, aliases []string, def string, hasDef bool, props []Prop) (*EnumSchema, error) {
	n, err := newName(enumName, namespace, aliases)
	if err != nil {
		return nil, err
	}
	if len(symbols) == 0 {
		return nil, errors.New("codec: enum must have a non-empty symbol list")
	}
	for _, sym := range symbols {
		if err := validateName(sym); err != nil {
			return nil, fmt.Errorf("codec: invalid enum symbol %q: %w", sym, err)
		}
	}
	if hasDef && !hasSymbol(symbols, def) {
		return nil, fmt.Errorf("codec: enum default %q must be one of the symbols", def)
	}
	return &EnumSchema{
		name:       n,
		properties: newProperties(props),
		symbols:    symbols,
		def:        def,
		hasDef:     hasDef,
		doc:        doc,
	}, nil
}

func hasSymbol(symbols []string, s string) bool {
	for _, sym := range symbols {
		if sym == s {
			return true
		}
	}
	return false
}

func (s *EnumSchema) Type() Type         { return TypeEnum }
func (s *EnumSchema) Doc() string        { return s.doc }
func (s *EnumSchema) Symbols() []string  { return s.symbols }
func (s *EnumSchema) HasDefault() bool   { return s.hasDef }
func (s *EnumSchema) Default() string    { return s.def }

func (s *EnumSchema) String() string {
	syms, _ := jsoniter.Marshal(s.symbols)
	return `{"name":"` + s.FullName() + `","type":"enum","symbols":` + string(syms) + `}`
}

func (s *EnumSchema) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(`{"name":"` + s.full + `"`)
	if len(s.aliases) > 0 {
		aj, err := jsoniter.Marshal(s.aliases)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"aliases":`)
		buf.Write(aj)
	}
	if s.doc != "" {
		dj, err := jsoniter.Marshal(s.doc)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"doc":`)
		buf.Write(dj)
	}
	buf.WriteString(`,"type":"enum"`)
	sj, err := jsoniter.Marshal(s.symbols)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`,"symbols":`)
	buf.Write(sj)
	if s.hasDef {
		buf.WriteString(`,"default":"` + s.def + `"`)
	}
	if err := s.marshalPropertiesToJSON(buf); err != nil {
		return nil, err
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// ArraySchema is an Avro array type schema.
type ArraySchema struct {
	properties

	items Schema
}

// NewArraySchema creates an array schema over an element schema.
func NewArraySchema(items Schema, props ...Prop) *ArraySchema {
	return &ArraySchema{properties: newProperties(props), items: items}
}

func (s *ArraySchema) Type() Type      { return TypeArray }
func (s *ArraySchema) Items() Schema   { return s.items }
func (s *ArraySchema) String() string  { return `{"type":"array","items":` + s.items.String() + `}` }

func (s *ArraySchema) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(`{"type":"array"`)
	ij, err := jsoniter.Marshal(s.items)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`,"items":`)
	buf.Write(ij)
	if err := s.marshalPropertiesToJSON(buf); err != nil {
		return nil, err
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// MapSchema is an Avro map type schema (string-keyed).
type MapSchema struct {
	properties

	values Schema
}

// NewMapSchema creates a map schema over a value schema.
func NewMapSchema(values Schema, props ...Prop) *MapSchema {
	return &MapSchema{properties: newProperties(props), values: values}
}

func (s *MapSchema) Type() Type     { return TypeMap }
func (s *MapSchema) Values() Schema { return s.values }
func (s *MapSchema) String() string { return `{"type":"map","values":` + s.values.String() + `}` }

func (s *MapSchema) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(`{"type":"map"`)
	vj, err := jsoniter.Marshal(s.values)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`,"values":`)
	buf.Write(vj)
	if err := s.marshalPropertiesToJSON(buf); err != nil {
		return nil, err
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// UnionSchema is an Avro union type schema: an ordered list of member
// schemas.
type UnionSchema struct {
	types Schemas
}

// NewUnionSchema creates a union schema. Avro forbids nested unions and
// duplicate member type-names; like the Avro runtime this models, those
// rules are enforced here rather than re-validated by every codec.
func NewUnionSchema(types []Schema) (*UnionSchema, error) {
	seen := map[string]bool{}
	for _, t := range types {
		if t.Type() == TypeUnion {
			return nil, errors.New("codec: union member cannot itself be a union")
		}
		tn := schemaTypeName(t)
		if seen[tn] {
			return nil, fmt.Errorf("codec: union member type %q is not unique", tn)
		}
		seen[tn] = true
	}
	return &UnionSchema{types: types}, nil
}

func (s *UnionSchema) Type() Type       { return TypeUnion }
func (s *UnionSchema) Types() Schemas   { return s.types }

// Nullable reports whether this is a 2-member union with NULL as one member.
func (s *UnionSchema) Nullable() bool {
	return len(s.types) == 2 && (s.types[0].Type() == TypeNull || s.types[1].Type() == TypeNull)
}

func (s *UnionSchema) String() string {
	parts := make([]string, len(s.types))
	for i, t := range s.types {
		parts[i] = t.String()
	}
	return `[` + strings.Join(parts, ",") + `]`
}

func (s *UnionSchema) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(s.types)
}

// FixedSchema is an Avro fixed type schema: a fixed-size byte sequence,
// optionally carrying a logical type (e.g. decimal).
type FixedSchema struct {
	name
	properties

	size    int
	logical LogicalSchema
}

// NewFixedSchema creates a fixed schema of the given byte size.
func NewFixedSchema(fixedName, namespace string, size int, logical LogicalSchema, aliases []string, props []Prop) (*FixedSchema, error) {
	n, err := newName(fixedName, namespace, aliases)
	if err != nil {
		return nil, err
	}
	return &FixedSchema{name: n, properties: newProperties(props), size: size, logical: logical}, nil
}

func (s *FixedSchema) Type() Type            { return TypeFixed }
func (s *FixedSchema) Size() int             { return s.size }
func (s *FixedSchema) Logical() LogicalSchema { return s.logical }

func (s *FixedSchema) String() string {
	logical := ""
	if s.logical != nil {
		logical = "," + s.logical.String()
	}
	return `{"name":"` + s.FullName() + `","type":"fixed","size":` + strconv.Itoa(s.size) + logical + `}`
}

func (s *FixedSchema) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(`{"name":"` + s.full + `"`)
	if len(s.aliases) > 0 {
		aj, err := jsoniter.Marshal(s.aliases)
		if err != nil {
			return nil, err
		}
		buf.WriteString(`,"aliases":`)
		buf.Write(aj)
	}
	buf.WriteString(`,"type":"fixed","size":` + strconv.Itoa(s.size))
	if s.logical != nil {
		buf.WriteString(`,"logicalType":"` + string(s.logical.Type()) + `"`)
		if d, ok := s.logical.(*DecimalLogicalSchema); ok {
			buf.WriteString(`,"precision":` + strconv.Itoa(d.prec))
			buf.WriteString(`,"scale":` + strconv.Itoa(d.scale))
		}
	}
	if err := s.marshalPropertiesToJSON(buf); err != nil {
		return nil, err
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// NullSchema is an Avro null type schema.
type NullSchema struct{}

// NewNullSchema creates a null schema.
func NewNullSchema() *NullSchema { return &NullSchema{} }

func (s *NullSchema) Type() Type       { return TypeNull }
func (s *NullSchema) String() string   { return `"null"` }
func (s *NullSchema) MarshalJSON() ([]byte, error) { return []byte(`"null"`), nil }

// PrimitiveLogicalSchema is a logical type with no parameters (uuid, date,
// timestamp-millis, ...).
type PrimitiveLogicalSchema struct {
	typ LogicalType
}

// NewPrimitiveLogicalSchema creates a parameterless logical type.
func NewPrimitiveLogicalSchema(typ LogicalType) *PrimitiveLogicalSchema {
	return &PrimitiveLogicalSchema{typ: typ}
}

func (s *PrimitiveLogicalSchema) Type() LogicalType { return s.typ }
func (s *PrimitiveLogicalSchema) String() string {
	return `"logicalType":"` + string(s.typ) + `"`
}

// DecimalLogicalSchema is the decimal logical type, carrying precision and
// scale.
type DecimalLogicalSchema struct {
	prec  int
	scale int
}

// NewDecimalLogicalSchema creates a decimal logical type.
func NewDecimalLogicalSchema(prec, scale int) *DecimalLogicalSchema {
	return &DecimalLogicalSchema{prec: prec, scale: scale}
}

func (s *DecimalLogicalSchema) Type() LogicalType { return DecimalLogical }
func (s *DecimalLogicalSchema) Precision() int    { return s.prec }
func (s *DecimalLogicalSchema) Scale() int        { return s.scale }
func (s *DecimalLogicalSchema) String() string {
	return `"logicalType":"decimal","precision":` + strconv.Itoa(s.prec) + `,"scale":` + strconv.Itoa(s.scale)
}
