package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codec "github.com/ssawyer-labs/avro-codec"
)

func TestOptionRoundTrip(t *testing.T) {
	opt := codec.Option(codec.Int)
	s, err := opt.Schema()
	require.NoError(t, err)

	n := int32(7)
	v, err := opt.EncodeTo(&n, s)
	require.NoError(t, err)

	decoded, err := opt.DecodeFrom(v, s)
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.Equal(t, n, *decoded)
}

func TestOptionEncodesNilAsNull(t *testing.T) {
	opt := codec.Option(codec.Int)
	s, err := opt.Schema()
	require.NoError(t, err)

	v, err := opt.EncodeTo(nil, s)
	require.NoError(t, err)
	assert.Nil(t, v)

	decoded, err := opt.DecodeFrom(nil, s)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestOptionRejectsNonNullableUnionSchema(t *testing.T) {
	opt := codec.Option(codec.Int)
	badSchema, err := codec.NewUnionSchema([]codec.Schema{
		codec.NewPrimitiveSchema(codec.TypeInt, nil),
		codec.NewPrimitiveSchema(codec.TypeString, nil),
	})
	require.NoError(t, err)

	n := int32(1)
	_, err = opt.EncodeTo(&n, badSchema)
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.EncodeUnexpectedOptionSchema, avroErr.Kind)
}
