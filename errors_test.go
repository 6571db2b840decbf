package codec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codec "github.com/ssawyer-labs/avro-codec"
)

func TestErrorRenderingUnexpectedSchemaType(t *testing.T) {
	_, err := codec.Int.EncodeTo(1, codec.NewPrimitiveSchema(codec.TypeString, nil))
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.EncodeUnexpectedSchemaType, avroErr.Kind)
	assert.Contains(t, err.Error(), "unexpected schema type")
}

func TestErrorRenderingUnexpectedType(t *testing.T) {
	_, err := codec.Int.DecodeFrom("not an int", codec.NewPrimitiveSchema(codec.TypeInt, nil))
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.DecodeUnexpectedType, avroErr.Kind)
	assert.Contains(t, err.Error(), "unexpected runtime value")
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "encode_unexpected_schema_type", codec.EncodeUnexpectedSchemaType.String())
	assert.Equal(t, "decode_exhausted_alternatives", codec.DecodeExhaustedAlternatives.String())
	assert.Equal(t, "unknown", codec.Kind(-1).String())
}

func TestErrorUnwrapExposesSchemaConstructionCause(t *testing.T) {
	_, err := codec.Decimal(-1, 0).Schema()
	require.Error(t, err)

	var avroErr *codec.Error
	require.ErrorAs(t, err, &avroErr)
	assert.Equal(t, codec.SchemaConstructionFailed, avroErr.Kind)
	assert.NotNil(t, errors.Unwrap(avroErr))
}
