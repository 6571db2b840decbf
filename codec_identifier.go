package codec

// Byte is a codec for a single signed byte, backed by an Avro INT and
// range-checked against [-128, 127] on decode; encode needs no check, as
// every int8 is in range (spec §4.3).
var Byte = ImapError(Int,
	func(i int32) (int8, error) {
		if i < -128 || i > 127 {
			return 0, errUnexpectedByte(int(i))
		}
		return int8(i), nil
	},
	func(b int8) int32 { return int32(b) },
)

// Short is a codec for a 16-bit signed integer, backed by an Avro INT and
// range-checked against [-32768, 32767].
var Short = ImapError(Int,
	func(i int32) (int16, error) {
		if i < -32768 || i > 32767 {
			return 0, errUnexpectedShort(int(i))
		}
		return int16(i), nil
	},
	func(s int16) int32 { return int32(s) },
)

// Char is a codec for a single rune, backed by an Avro STRING whose value
// must decode to exactly one rune.
var Char = ImapError(String,
	func(s string) (rune, error) {
		runes := []rune(s)
		if len(runes) != 1 {
			return 0, errUnexpectedChar(len(runes))
		}
		return runes[0], nil
	},
	func(r rune) string { return string(r) },
)
