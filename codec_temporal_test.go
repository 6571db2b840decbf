package codec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codec "github.com/ssawyer-labs/avro-codec"
)

func TestInstantRoundTrip(t *testing.T) {
	s, err := codec.Instant.Schema()
	require.NoError(t, err)

	want := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	v, err := codec.Instant.EncodeTo(want, s)
	require.NoError(t, err)
	assert.Equal(t, want.UnixMilli(), v)

	decoded, err := codec.Instant.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.True(t, want.Equal(decoded))
}

func TestLocalDateRoundTrip(t *testing.T) {
	s, err := codec.LocalDate.Schema()
	require.NoError(t, err)

	want := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	v, err := codec.LocalDate.EncodeTo(want, s)
	require.NoError(t, err)

	decoded, err := codec.LocalDate.DecodeFrom(v, s)
	require.NoError(t, err)
	assert.True(t, want.Equal(decoded))
}
