package huffpack

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTrie_MarshalBits(t *testing.T) {
	trie, err := BuildTrie(Analyze([]byte("AAAAABBBCC")))
	if err != nil {
		t.Fatalf("BuildTrie failed: %v", err)
	}

	var w BitWriter
	trie.MarshalBits(&w)

	if w.Len() != 29 || trie.SerializedLen() != 29 {
		t.Errorf("expected 29 bits, wrote %d, predicted %d", w.Len(), trie.SerializedLen())
	}
	expect := []byte{0x50, 0x54, 0x3a, 0x10}
	if actual := w.Bytes(); !bytes.Equal(expect, actual) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, actual)
	}
}

func TestUnmarshalTrie_RoundTrip(t *testing.T) {
	inputs := []string{
		"AAAAABBBCC",
		"ZZZZ",
		"\x00\x00\x00\x01",
		"abracadabra",
		allBytesSkewed(),
	}
	for _, input := range inputs {
		trie, err := BuildTrie(Analyze([]byte(input)))
		if err != nil {
			t.Fatalf("BuildTrie failed: %v", err)
		}

		var w BitWriter
		trie.MarshalBits(&w)

		decoded, err := UnmarshalTrie(NewBitReader(w.Bytes(), w.Len()))
		if err != nil {
			t.Fatalf("%q: UnmarshalTrie failed: %v", input, err)
		}

		var expectDump, actualDump strings.Builder
		_, _ = NewCodeTable(trie).Dump(&expectDump)
		_, _ = NewCodeTable(decoded).Dump(&actualDump)
		if expectDump.String() != actualDump.String() {
			t.Errorf("%q: code tables differ:\n\texpect: %s\n\tactual: %s", input, expectDump.String(), actualDump.String())
		}
	}
}

func TestUnmarshalTrie_Corrupt(t *testing.T) {
	type testRow struct {
		name string
		bits string
	}

	testData := [...]testRow{
		{"empty", ""},
		{"truncated-leaf", "1010"},
		{"missing-right-child", "0" + "101000001"},
		{"trailing-bits", "101011010" + "0"},
		{"duplicate-symbol", "0" + "101000001" + "101000001"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var w BitWriter
			for _, ch := range row.bits {
				w.WriteBit(uint(ch - '0'))
			}
			_, err := UnmarshalTrie(NewBitReader(w.Bytes(), w.Len()))
			if !errors.Is(err, ErrCorruptTrie) {
				t.Errorf("expected ErrCorruptTrie, got %v", err)
			}
		})
	}
}

func TestUnmarshalTrie_TooLong(t *testing.T) {
	buf := make([]byte, MaxTrieBits/8+1)
	_, err := UnmarshalTrie(NewBitReader(buf, MaxTrieBits+1))
	if !errors.Is(err, ErrCorruptTrie) {
		t.Errorf("expected ErrCorruptTrie, got %v", err)
	}
}

// chainTrie returns the serialized form of a trie whose internal nodes each
// have a leaf on the left, so the two deepest leaves sit at depth n.
func chainTrie(n int) *BitWriter {
	var w BitWriter
	for i := 0; i < n; i++ {
		w.WriteBit(0)
		w.WriteBit(1)
		w.WriteBits(uint64(i), 8)
	}
	w.WriteBit(1)
	w.WriteBits(uint64(n), 8)
	return &w
}

func TestUnmarshalTrie_Depth(t *testing.T) {
	w := chainTrie(MaxCodeSize)
	trie, err := UnmarshalTrie(NewBitReader(w.Bytes(), w.Len()))
	if err != nil {
		t.Fatalf("UnmarshalTrie failed at depth %d: %v", MaxCodeSize, err)
	}
	ct := NewCodeTable(trie)
	if ct.MaxSize() != MaxCodeSize || ct.Len() != MaxCodeSize+1 {
		t.Errorf("expected %d codes of up to %d bits, got %d codes of up to %d bits", MaxCodeSize+1, MaxCodeSize, ct.Len(), ct.MaxSize())
	}

	for _, n := range []int{MaxCodeSize + 1, NumSymbols - 1} {
		w := chainTrie(n)
		_, err := UnmarshalTrie(NewBitReader(w.Bytes(), w.Len()))
		if !errors.Is(err, ErrCorruptTrie) {
			t.Errorf("depth %d: expected ErrCorruptTrie, got %v", n, err)
		}
	}
}
