package codec

import "math/big"

// DecimalValue is a big.Rat-free fixed-point decimal representation:
// an unscaled big.Int together with a scale, matching java.math.BigDecimal's
// model closely enough to round-trip through Avro's decimal logical type
// (spec §4.2 decimal row). Callers construct/inspect values via
// DecimalValue rather than a bare big.Int so the scale travels with the
// value.
type DecimalValue struct {
	Unscaled *big.Int
	Scale    int
}

// Decimal builds a codec for decimal(precision, scale): BYTES carrying the
// two's-complement big-endian unscaled integer, with the decimal logical
// type. Encode fails if the value's scale differs from scale
// (encodeDecimalScalesMismatch) or its precision exceeds precision
// (encodeDecimalPrecisionExceeded); decode fails if the decoded value's
// precision exceeds precision (spec §4.2, S4). Construction itself can
// panic on an invalid (precision, scale) pair, caught by catchNonFatal and
// surfaced as a SchemaConstructionFailed schema error.
func Decimal(precision, scale int) *Codec[DecimalValue] {
	return NewCodec[DecimalValue](
		func() (Schema, error) {
			return catchNonFatal(func() (Schema, error) {
				if precision <= 0 {
					panic("codec: decimal precision must be positive")
				}
				if scale < 0 || scale > precision {
					panic("codec: decimal scale must be in [0, precision]")
				}
				return NewPrimitiveSchema(TypeBytes, NewDecimalLogicalSchema(precision, scale)), nil
			})
		},
		func(a DecimalValue, s Schema) (any, error) {
			if err := requireSchemaType("decimal", s, errEncodeUnexpectedSchemaType, TypeBytes); err != nil {
				return nil, err
			}
			if err := requireLogicalType("decimal", s, DecimalLogical, errEncodeUnexpectedLogicalType); err != nil {
				return nil, err
			}
			if a.Scale != scale {
				return nil, errEncodeDecimalScalesMismatch(a.Scale, scale)
			}
			if p := decimalPrecision(a.Unscaled); p > precision {
				return nil, errEncodeDecimalPrecisionExceeded(p, precision)
			}
			return unscaledToBytes(a.Unscaled), nil
		},
		func(v any, s Schema) (DecimalValue, error) {
			if err := requireSchemaType("decimal", s, errDecodeUnexpectedSchemaType, TypeBytes); err != nil {
				return DecimalValue{}, err
			}
			if err := requireLogicalType("decimal", s, DecimalLogical, errDecodeUnexpectedLogicalType); err != nil {
				return DecimalValue{}, err
			}
			b, ok := v.([]byte)
			if !ok {
				return DecimalValue{}, errDecodeUnexpectedType(v, "bytes", "decimal")
			}
			unscaled := bytesToUnscaled(b)
			if p := decimalPrecision(unscaled); p > precision {
				return DecimalValue{}, errDecodeDecimalPrecisionExceeded(p, precision)
			}
			return DecimalValue{Unscaled: unscaled, Scale: scale}, nil
		},
	)
}

// decimalPrecision returns the number of decimal digits in |n|, with 0
// having a precision of 1 (matching java.math.BigInteger.toString length
// semantics hamba/avro's decimal.go relies on).
func decimalPrecision(n *big.Int) int {
	if n.Sign() == 0 {
		return 1
	}
	abs := new(big.Int).Abs(n)
	return len(abs.String())
}

// unscaledToBytes renders n as a minimal two's-complement big-endian byte
// string (Avro's decimal wire encoding).
func unscaledToBytes(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0}
	}
	if n.Sign() > 0 {
		b := n.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}
	// Two's complement of a negative value: invert the magnitude's bytes
	// and add one, matching the byte width java.math.BigInteger picks.
	mag := new(big.Int).Abs(n)
	nBytes := (new(big.Int).Sub(mag, big.NewInt(1)).BitLen() + 8) / 8
	buf := make([]byte, nBytes)
	magBytes := mag.Bytes()
	copy(buf[nBytes-len(magBytes):], magBytes)
	for i := range buf {
		buf[i] = ^buf[i]
	}
	carry := byte(1)
	for i := len(buf) - 1; i >= 0 && carry > 0; i-- {
		sum := int(buf[i]) + int(carry)
		buf[i] = byte(sum)
		carry = byte(sum >> 8)
	}
	return buf
}

// bytesToUnscaled parses a two's-complement big-endian byte string back
// into a signed big.Int.
func bytesToUnscaled(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}
	n := new(big.Int).SetBytes(b)
	if b[0]&0x80 == 0 {
		return n
	}
	// Negative: n - 2^(8*len(b))
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(b)))
	return n.Sub(n, mod)
}
