package codec_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codec "github.com/ssawyer-labs/avro-codec"
)

type suit int

const (
	spades suit = iota
	hearts
	diamonds
	clubs
)

var suitSymbols = []string{"SPADES", "HEARTS", "DIAMONDS", "CLUBS"}

func suitEncode(s suit) string { return suitSymbols[s] }

func suitDecode(symbol string) (suit, error) {
	for i, sym := range suitSymbols {
		if sym == symbol {
			return suit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suit symbol %q", symbol)
}

func suitCodec() *codec.Codec[suit] {
	return codec.Enum[suit]("Suit", "", "", suitSymbols, nil, suitEncode, suitDecode, spades, true)
}

func TestEnumRoundTrip(t *testing.T) {
	e := suitCodec()
	s, err := e.Schema()
	require.NoError(t, err)

	v, err := e.EncodeTo(hearts, s)
	require.NoError(t, err)

	decoded, err := e.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.Equal(t, hearts, decoded)
}

func TestEnumDecodeNameMismatch(t *testing.T) {
	e := suitCodec()
	s, err := e.Schema()
	require.NoError(t, err)

	es, ok := s.(*codec.EnumSchema)
	require.True(t, ok)

	other, err := codec.NewEnumSchema("Other", "", suitSymbols, "", nil, "", false, nil)
	require.NoError(t, err)

	ges := codec.NewGenericEnumSymbol(es, "HEARTS")
	_, err = e.DecodeFrom(ges, other)
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.DecodeNameMismatch, avroErr.Kind)
}

func TestEnumEncodeSymbolNotInSchema(t *testing.T) {
	restricted, err := codec.NewEnumSchema("Suit", "", []string{"SPADES", "HEARTS"}, "", nil, "", false, nil)
	require.NoError(t, err)

	e := suitCodec()
	_, err = e.EncodeTo(clubs, restricted)
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.EncodeSymbolNotInSchema, avroErr.Kind)
}

func TestEnumDecodeSymbolNotInSchema(t *testing.T) {
	e := suitCodec()
	s, err := e.Schema()
	require.NoError(t, err)
	es := s.(*codec.EnumSchema)

	ges := codec.NewGenericEnumSymbol(es, "UNKNOWN")
	_, err = e.DecodeFrom(ges, s)
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.DecodeSymbolNotInSchema, avroErr.Kind)
}
