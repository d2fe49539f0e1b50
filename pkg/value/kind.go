// Package value renders assertion operands into bounded,
// fixed-width diagnostic strings. All formatters write through a
// capacity-limited Buffer and truncate silently rather than fail;
// diagnostic rendering must never itself take a test process down.
package value

// Kind identifies how an operand is compared and formatted. It is
// a closed set: the dispatcher infers the kind once per assertion
// and both the comparison and the formatting honour it.
type Kind int

const (
	// SignedInt is a two's-complement integer of a declared
	// byte width.
	SignedInt Kind = iota
	// UnsignedInt is an unsigned integer of a declared byte
	// width.
	UnsignedInt
	// Float is a floating-point number compared exactly.
	Float
	// Pointer is compared by address identity, never by
	// pointee content.
	Pointer
	// String is compared textually, optionally over a bounded
	// prefix length.
	String
	// Bytes is a raw memory block compared byte for byte over
	// an explicit length.
	Bytes
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case SignedInt:
		return "signed_int"
	case UnsignedInt:
		return "unsigned_int"
	case Float:
		return "float"
	case Pointer:
		return "pointer"
	case String:
		return "string"
	case Bytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Mask returns the all-ones mask covering an integer of the given
// byte width. Widths of eight or more select every bit, avoiding
// an out-of-range shift.
func Mask(size int) uint64 {
	if size >= 8 {
		return ^uint64(0)
	}
	if size <= 0 {
		return 0
	}
	return (uint64(1) << (uint(size) * 8)) - 1
}

// Negative reports whether the top bit of the sized value is set,
// i.e. whether a two's-complement reading of the masked value is
// negative.
func Negative(raw uint64, size int) bool {
	if size <= 0 {
		return false
	}
	if size > 8 {
		size = 8
	}
	return raw&(uint64(1)<<(uint(size)*8-1)) != 0
}
