package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codec "github.com/ssawyer-labs/avro-codec"
)

type person struct {
	Name string
	Age  int32
}

func personCodec() *codec.Codec[person] {
	nameField := codec.RecordField[person, string]("name", func(p person) string { return p.Name }, codec.String)
	ageField := codec.RecordField[person, int32]("age", func(p person) int32 { return p.Age }, codec.Int, codec.Default[int32](0))

	return codec.Record[person]("Person", "", "", nil, nil,
		func(values map[string]any) (person, error) {
			return person{Name: values["name"].(string), Age: values["age"].(int32)}, nil
		},
		nameField, ageField,
	)
}

func TestRecordRoundTrip(t *testing.T) {
	p := personCodec()
	s, err := p.Schema()
	require.NoError(t, err)

	want := person{Name: "Ada", Age: 36}
	v, err := p.EncodeTo(want, s)
	require.NoError(t, err)

	decoded, err := p.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.Equal(t, want, decoded)
}

func TestRecordDecodeUsesDefaultWhenFieldMissing(t *testing.T) {
	p := personCodec()
	s, err := p.Schema()
	require.NoError(t, err)

	rs, ok := s.(*codec.RecordSchema)
	require.True(t, ok)

	rec := codec.NewGenericRecord(rs)
	rec.Set("name", "Grace")

	decoded, err := p.DecodeFrom(rec, s)
	require.NoError(t, err)
	assert.Equal(t, person{Name: "Grace", Age: 0}, decoded)
}

func TestRecordEncodeNameMismatch(t *testing.T) {
	p := personCodec()
	other, err := codec.NewRecordSchema("Other", "", nil, "", nil, nil)
	require.NoError(t, err)

	_, err = p.EncodeTo(person{Name: "x"}, other)
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.EncodeNameMismatch, avroErr.Kind)
}
