package huffpack

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCodeSize is the longest Code that can be represented.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit, i.e. the branch taken at the trie root.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Bit returns the i'th bit of the code, counting from the root.
func (hc Code) Bit(i byte) uint {
	return uint(hc.Bits>>i) & 1
}

// Append returns hc with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits | uint64(bit&1)<<hc.Size}
}

// HasPrefix reports whether prefix is a prefix of hc.  Every Code has the
// empty Code as a prefix, and every Code is a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	if prefix.Size == 0 {
		return true
	}
	mask := ^uint64(0) >> (64 - prefix.Size)
	return hc.Bits&mask == prefix.Bits&mask
}

// String returns the string representation of this Code, first bit first.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}
