package codec

// Prism is a partial focus: a lawful pair of getOption/reverseGet for one
// branch B of a sum type A (spec §3.1, §4.4). Laws:
//
//	getOption(reverseGet(b)) == (b, true)
//	if getOption(a) == (b, true) then reverseGet(b) == a
type Prism[A, B any] struct {
	GetOption  func(A) (B, bool)
	ReverseGet func(B) A
}

// NewPrism constructs a Prism from its two constituent functions.
func NewPrism[A, B any](getOption func(A) (B, bool), reverseGet func(B) A) Prism[A, B] {
	return Prism[A, B]{GetOption: getOption, ReverseGet: reverseGet}
}
