package codec_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codec "github.com/ssawyer-labs/avro-codec"
)

func TestCodecSchemaIsMemoized(t *testing.T) {
	calls := 0
	c := codec.NewCodec[int32](
		func() (codec.Schema, error) {
			calls++
			return codec.NewPrimitiveSchema(codec.TypeInt, nil), nil
		},
		func(a int32, s codec.Schema) (any, error) { return a, nil },
		func(v any, s codec.Schema) (int32, error) { return v.(int32), nil },
	)

	_, err := c.Schema()
	require.NoError(t, err)
	_, err = c.Schema()
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestCodecEncodeDecodeUsesOwnSchema(t *testing.T) {
	v, err := codec.Int.Encode(int32(42))
	require.NoError(t, err)

	decoded, err := codec.Int.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, int32(42), decoded)
}

type fahrenheit float64

func TestImapRoundTrip(t *testing.T) {
	toF := func(f float64) fahrenheit { return fahrenheit(f) }
	toRaw := func(f fahrenheit) float64 { return float64(f) }

	tempCodec := codec.Imap(codec.Double, toF, toRaw)

	s, err := tempCodec.Schema()
	require.NoError(t, err)

	v, err := tempCodec.EncodeTo(fahrenheit(212), s)
	require.NoError(t, err)
	assert.Equal(t, 212.0, v)

	decoded, err := tempCodec.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.InDelta(t, float64(212), float64(decoded), 0.0001)
}

func TestImapErrorPropagatesDecodeFailure(t *testing.T) {
	strictPositive := codec.ImapError(codec.Int,
		func(n int32) (uint32, error) {
			if n < 0 {
				return 0, fmt.Errorf("negative value %d", n)
			}
			return uint32(n), nil
		},
		func(u uint32) int32 { return int32(u) },
	)

	s, err := strictPositive.Schema()
	require.NoError(t, err)

	v, err := strictPositive.EncodeTo(5, s)
	require.NoError(t, err)
	assert.Equal(t, int32(5), v)

	_, err = strictPositive.DecodeFrom(int32(-1), s)
	require.Error(t, err)
}

func TestShowRendersSchemaJSON(t *testing.T) {
	out := codec.Show(codec.Int)
	assert.Contains(t, out, "int")
}
