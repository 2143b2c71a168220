package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol present in a Trie to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	size    int
	minSize byte
	maxSize byte
}

// NewCodeTable walks t once and records the root-to-leaf path of every leaf.
//
// A Trie that is a lone leaf has no branches to walk; its symbol is given the
// one-bit code "0", so that each occurrence still costs exactly one payload
// bit.
func NewCodeTable(t *Trie) CodeTable {
	var ct CodeTable

	record := func(symbol Symbol, hc Code) {
		assert.Assertf(!ct.present[symbol], "symbol %d appears twice in trie", symbol)
		ct.codes[symbol] = hc
		ct.present[symbol] = true
		if ct.size == 0 {
			ct.minSize = hc.Size
			ct.maxSize = hc.Size
		} else if ct.minSize > hc.Size {
			ct.minSize = hc.Size
		} else if ct.maxSize < hc.Size {
			ct.maxSize = hc.Size
		}
		ct.size++
	}

	root := t.Root()
	if t.IsLeaf(root) {
		record(t.Symbol(root), MakeCode(1, 0))
		return ct
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are pushed; the stack depth is the length of
	// the code for any leaf child of the top item.

	type stackItem struct {
		node int32
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.NumLeaves()))+1)

	processChild := func(child int32, hc Code) {
		assert.Assertf(hc.Size <= MaxCodeSize, "code length %d exceeds %d", hc.Size, MaxCodeSize)
		if t.IsLeaf(child) {
			record(t.Symbol(child), hc)
			return
		}
		stack = append(stack, stackItem{node: child, code: hc})
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			left, _ := t.Children(top.node)
			processChild(left, top.code.Append(0))
		case 1:
			_, right := t.Children(top.node)
			processChild(right, top.code.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}

	return ct
}

// Encode returns the Code for symbol.  The second result is false if symbol
// has no code in this table.
func (ct CodeTable) Encode(symbol Symbol) (Code, bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// Len returns the number of symbols with a code.
func (ct CodeTable) Len() int {
	return ct.size
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// EncodedSize returns the number of payload bits needed to encode input with
// the histogram ft.  Symbols in ft without a code contribute nothing.
func (ct CodeTable) EncodedSize(ft FrequencyTable) uint64 {
	var sum uint64
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			sum += uint64(ct.codes[symbol].Size) * ft.Count(Symbol(symbol))
		}
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, ct.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
