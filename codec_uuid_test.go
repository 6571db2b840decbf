package codec_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codec "github.com/ssawyer-labs/avro-codec"
)

func TestUUIDRoundTrip(t *testing.T) {
	s, err := codec.UUID.Schema()
	require.NoError(t, err)

	id := uuid.New()
	v, err := codec.UUID.EncodeTo(id, s)
	require.NoError(t, err)
	assert.Equal(t, id.String(), v)

	decoded, err := codec.UUID.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestUUIDDecodeParseFailure(t *testing.T) {
	s, err := codec.UUID.Schema()
	require.NoError(t, err)

	_, err = codec.UUID.DecodeFrom("not-a-uuid", s)
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.DecodeUnexpectedType, avroErr.Kind)
}
