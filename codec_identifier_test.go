package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codec "github.com/ssawyer-labs/avro-codec"
)

func TestByteRoundTrip(t *testing.T) {
	s, err := codec.Byte.Schema()
	require.NoError(t, err)

	v, err := codec.Byte.EncodeTo(int8(-12), s)
	require.NoError(t, err)

	decoded, err := codec.Byte.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.Equal(t, int8(-12), decoded)
}

func TestByteOutOfRange(t *testing.T) {
	s, err := codec.Byte.Schema()
	require.NoError(t, err)

	_, err = codec.Byte.DecodeFrom(int32(200), s)
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.UnexpectedByte, avroErr.Kind)
}

func TestShortOutOfRange(t *testing.T) {
	s, err := codec.Short.Schema()
	require.NoError(t, err)

	_, err = codec.Short.DecodeFrom(int32(40000), s)
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.UnexpectedShort, avroErr.Kind)
}

func TestCharRequiresSingleRune(t *testing.T) {
	s, err := codec.Char.Schema()
	require.NoError(t, err)

	v, err := codec.Char.EncodeTo('x', s)
	require.NoError(t, err)
	decoded, err := codec.Char.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.Equal(t, 'x', decoded)

	_, err = codec.Char.DecodeFrom("ab", s)
	require.Error(t, err)
	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.UnexpectedChar, avroErr.Kind)
}
