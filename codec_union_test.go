package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codec "github.com/ssawyer-labs/avro-codec"
)

type shape struct {
	circleRadius float64
	isCircle     bool
	squareSide   int32
	isSquare     bool
}

func circle(r float64) shape { return shape{circleRadius: r, isCircle: true} }
func square(s int32) shape   { return shape{squareSide: s, isSquare: true} }

func shapeCodec() *codec.Codec[shape] {
	circleAlt := codec.NewAlt(codec.Double, codec.NewPrism(
		func(s shape) (float64, bool) {
			if !s.isCircle {
				return 0, false
			}
			return s.circleRadius, true
		},
		circle,
	))
	squareAlt := codec.NewAlt(codec.Int, codec.NewPrism(
		func(s shape) (int32, bool) {
			if !s.isSquare {
				return 0, false
			}
			return s.squareSide, true
		},
		square,
	))
	return codec.Union[shape](circleAlt, squareAlt)
}

func TestUnionEncodeSelectsFirstMatchingAlternative(t *testing.T) {
	u := shapeCodec()
	s, err := u.Schema()
	require.NoError(t, err)

	v, err := u.EncodeTo(circle(2.0), s)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	v, err = u.EncodeTo(square(4), s)
	require.NoError(t, err)
	assert.Equal(t, int32(4), v)
}

func TestUnionDecodePositionalFallback(t *testing.T) {
	u := shapeCodec()
	s, err := u.Schema()
	require.NoError(t, err)

	decoded, err := u.DecodeFrom(3.0, s)
	require.NoError(t, err)
	assert.True(t, decoded.isCircle)
	assert.Equal(t, 3.0, decoded.circleRadius)

	decoded, err = u.DecodeFrom(int32(5), s)
	require.NoError(t, err)
	assert.True(t, decoded.isSquare)
	assert.Equal(t, int32(5), decoded.squareSide)
}

func TestUnionEncodeExhaustedAlternatives(t *testing.T) {
	u := shapeCodec()
	s, err := u.Schema()
	require.NoError(t, err)

	_, err = u.EncodeTo(shape{}, s)
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.EncodeExhaustedAlternatives, avroErr.Kind)
}
