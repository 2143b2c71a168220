package huffpack

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestBitWriter(t *testing.T) {
	var w BitWriter
	w.WriteBit(1)
	w.WriteBits(0x41, 8)
	w.WriteCode(MakeCode(0, 0).Append(1).Append(1).Append(0))

	if w.Len() != 12 {
		t.Errorf("expected 12 bits, got %d", w.Len())
	}
	expect := []byte{0xa0, 0xe0}
	if actual := w.Bytes(); !bytes.Equal(expect, actual) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}

	w.Reset()
	if w.Len() != 0 || len(w.Bytes()) != 0 {
		t.Errorf("Reset left %d bits", w.Len())
	}
}

func TestBitReader(t *testing.T) {
	r := NewBitReader([]byte{0xa0, 0xe0}, 12)

	bit, err := r.ReadBit()
	if err != nil || bit != 1 {
		t.Fatalf("ReadBit: expected 1, got %d (%v)", bit, err)
	}
	v, err := r.ReadBits(8)
	if err != nil || v != 0x41 {
		t.Fatalf("ReadBits: expected 0x41, got %#x (%v)", v, err)
	}
	if r.Pos() != 9 || r.Remaining() != 3 {
		t.Errorf("expected position 9 with 3 remaining, got %d and %d", r.Pos(), r.Remaining())
	}

	if _, err := r.ReadBits(4); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if r.Pos() != 9 {
		t.Errorf("failed ReadBits consumed bits: position %d", r.Pos())
	}

	v, err = r.ReadBits(3)
	if err != nil || v != 0x6 {
		t.Fatalf("ReadBits: expected 0x6, got %#x (%v)", v, err)
	}

	// The padding bits of the last byte are never visible.
	if _, err := r.ReadBit(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF at limit, got %v", err)
	}
}
