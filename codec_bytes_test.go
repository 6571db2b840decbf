package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codec "github.com/ssawyer-labs/avro-codec"
)

func TestBytesRoundTrip(t *testing.T) {
	s, err := codec.Bytes.Schema()
	require.NoError(t, err)

	v, err := codec.Bytes.EncodeTo([]byte{1, 2, 3}, s)
	require.NoError(t, err)

	decoded, err := codec.Bytes.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, decoded)
}

func TestFixedRoundTrip(t *testing.T) {
	fixed := codec.Fixed(4)
	s, err := fixed.Schema()
	require.NoError(t, err)

	v, err := fixed.EncodeTo([]byte{1, 2}, s)
	require.NoError(t, err)

	decoded, err := fixed.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 1, 2}, decoded)
}

func TestFixedEncodeExceedsSize(t *testing.T) {
	fixed := codec.Fixed(2)
	s, err := fixed.Schema()
	require.NoError(t, err)

	_, err = fixed.EncodeTo([]byte{1, 2, 3}, s)
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.EncodeExceedsFixedSize, avroErr.Kind)
}
