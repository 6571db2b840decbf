package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codec "github.com/ssawyer-labs/avro-codec"
)

func TestListRoundTrip(t *testing.T) {
	list := codec.List(codec.Int)
	s, err := list.Schema()
	require.NoError(t, err)

	v, err := list.EncodeTo([]int32{1, 2, 3}, s)
	require.NoError(t, err)

	decoded, err := list.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, decoded)
}

func TestSetDedupsOnDecode(t *testing.T) {
	set := codec.Set(codec.Int)
	s, err := set.Schema()
	require.NoError(t, err)

	decoded, err := set.DecodeFrom([]any{int32(1), int32(1), int32(2)}, s)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int32{1, 2}, decoded)
}

func TestNonEmptyListRejectsEmpty(t *testing.T) {
	nel := codec.NonEmptyList(codec.Int)
	s, err := nel.Schema()
	require.NoError(t, err)

	_, err = nel.DecodeFrom([]any{}, s)
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.DecodeEmptyCollection, avroErr.Kind)
}

func TestNonEmptySetSortsOnDecode(t *testing.T) {
	nes := codec.NonEmptySet(codec.Int, func(a, b int32) bool { return a < b })
	s, err := nes.Schema()
	require.NoError(t, err)

	decoded, err := nes.DecodeFrom([]any{int32(3), int32(1), int32(3), int32(2)}, s)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, decoded)
}

func TestMapRoundTrip(t *testing.T) {
	m := codec.Map(codec.String)
	s, err := m.Schema()
	require.NoError(t, err)

	v, err := m.EncodeTo(map[string]string{"a": "x"}, s)
	require.NoError(t, err)

	decoded, err := m.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "x"}, decoded)
}
