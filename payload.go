package huffpack

import (
	"fmt"
)

// EncodePayload appends the code of every byte of data to w, in input order.
// It fails if data contains a byte that ct has no code for.
func EncodePayload(data []byte, ct CodeTable, w *BitWriter) error {
	for index, ch := range data {
		hc, ok := ct.Encode(Symbol(ch))
		if !ok {
			return fmt.Errorf("huffpack: no code for symbol %d at offset %d", ch, index)
		}
		w.WriteCode(hc)
	}
	return nil
}

// DecodePayload walks t once per bit remaining in r and returns the decoded
// symbols.  Every bit must be consumed, and the last bit must complete a code;
// otherwise the error wraps ErrDesyncedPayload.
//
// A Trie that is a lone leaf decodes each 0 bit as one occurrence of its
// symbol; a 1 bit has no meaning there.
func DecodePayload(t *Trie, r *BitReader) ([]byte, error) {
	hint := r.Remaining()
	if hint > 1<<20 {
		hint = 1 << 20
	}
	out := make([]byte, 0, hint)

	root := t.Root()
	if t.IsLeaf(root) {
		symbol := byte(t.Symbol(root))
		for r.Remaining() != 0 {
			bit, _ := r.ReadBit()
			if bit != 0 {
				return nil, fmt.Errorf("%w: unexpected 1 bit at %d in single-symbol stream", ErrDesyncedPayload, r.Pos()-1)
			}
			out = append(out, symbol)
		}
		return out, nil
	}

	cursor := root
	for r.Remaining() != 0 {
		bit, _ := r.ReadBit()
		left, right := t.Children(cursor)
		if bit == 0 {
			cursor = left
		} else {
			cursor = right
		}
		if t.IsLeaf(cursor) {
			out = append(out, byte(t.Symbol(cursor)))
			cursor = root
		}
	}

	if cursor != root {
		return nil, fmt.Errorf("%w: stream ends inside a code after %d symbols", ErrDesyncedPayload, len(out))
	}
	return out, nil
}
