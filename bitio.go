package huffpack

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

// BitWriter accumulates a sequence of bits in memory.  Bits fill each byte
// starting from its most significant bit.
type BitWriter struct {
	buf   []byte
	nbits uint64
}

// WriteBit appends the low bit of bit.
func (w *BitWriter) WriteBit(bit uint) {
	shift := 7 - byte(w.nbits&7)
	if shift == 7 {
		w.buf = append(w.buf, 0)
	}
	w.buf[len(w.buf)-1] |= byte(bit&1) << shift
	w.nbits++
}

// WriteBits appends the n low bits of v, most significant of them first.
func (w *BitWriter) WriteBits(v uint64, n byte) {
	assert.Assertf(n <= 64, "WriteBits: n %d > 64", n)
	for n > 0 {
		n--
		w.WriteBit(uint(v>>n) & 1)
	}
}

// WriteCode appends the bits of hc, first bit first.
func (w *BitWriter) WriteCode(hc Code) {
	for i := byte(0); i < hc.Size; i++ {
		w.WriteBit(hc.Bit(i))
	}
}

// Len returns the exact number of bits written.
func (w *BitWriter) Len() uint64 {
	return w.nbits
}

// Bytes returns the bits written so far, with the last byte padded with zero
// bits.  The returned slice aliases the writer's buffer.
func (w *BitWriter) Bytes() []byte {
	return w.buf
}

// Reset discards all bits written.
func (w *BitWriter) Reset() {
	w.buf = w.buf[:0]
	w.nbits = 0
}

// BitReader consumes a bounded sequence of bits from a byte slice, reading
// each byte starting from its most significant bit.  Bits beyond the limit,
// such as the padding in a final partial byte, are never returned.
type BitReader struct {
	buf   []byte
	pos   uint64
	limit uint64
}

// NewBitReader returns a BitReader over the first nbits bits of buf.  nbits
// must not exceed 8*len(buf).
func NewBitReader(buf []byte, nbits uint64) *BitReader {
	assert.Assertf(nbits <= 8*uint64(len(buf)), "NewBitReader: %d bits > %d bytes", nbits, len(buf))
	return &BitReader{buf: buf, limit: nbits}
}

// Pos returns the number of bits consumed so far.
func (r *BitReader) Pos() uint64 {
	return r.pos
}

// Remaining returns the number of bits left before the limit.
func (r *BitReader) Remaining() uint64 {
	return r.limit - r.pos
}

// ReadBit consumes one bit.  Once the limit is reached it returns
// io.ErrUnexpectedEOF, signalling that more input was needed.
func (r *BitReader) ReadBit() (uint, error) {
	if r.pos >= r.limit {
		return 0, io.ErrUnexpectedEOF
	}
	b := r.buf[r.pos>>3]
	bit := uint(b>>(7-byte(r.pos&7))) & 1
	r.pos++
	return bit, nil
}

// ReadBits consumes n bits and returns them with the first bit read as the
// most significant.  Nothing is consumed if fewer than n bits remain.
func (r *BitReader) ReadBits(n byte) (uint64, error) {
	assert.Assertf(n <= 64, "ReadBits: n %d > 64", n)
	if r.Remaining() < uint64(n) {
		return 0, io.ErrUnexpectedEOF
	}
	var v uint64
	for i := byte(0); i < n; i++ {
		bit, _ := r.ReadBit()
		v = v<<1 | uint64(bit)
	}
	return v, nil
}
