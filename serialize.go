package huffpack

import (
	"errors"
	"fmt"
	"io"
)

// MaxTrieBits is the length of the largest serialized trie: 256 leaves of 9
// bits each plus 255 one-bit internal nodes.
const MaxTrieBits = NumSymbols*9 + (NumSymbols - 1)

// SerializedLen returns the number of bits MarshalBits will write.
func (t *Trie) SerializedLen() uint64 {
	numLeaves := uint64(t.NumLeaves())
	return numLeaves*9 + (numLeaves - 1)
}

// MarshalBits writes the pre-order encoding of t to w: a 0 bit for each
// internal node, followed by its left and then its right subtree, and a 1 bit
// followed by the 8 bits of the symbol for each leaf.
func (t *Trie) MarshalBits(w *BitWriter) {
	stack := make([]int32, 0, t.NumLeaves())
	stack = append(stack, t.root)
	for len(stack) != 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[i]
		if n.kind == leafNode {
			w.WriteBit(1)
			w.WriteBits(uint64(n.symbol), 8)
			continue
		}
		w.WriteBit(0)
		stack = append(stack, n.right, n.left)
	}
}

// UnmarshalTrie reads a pre-order encoded trie from r.  The trie must use up
// every bit remaining in r, no more and no fewer, and no leaf may lie deeper
// than MaxCodeSize.  All failures wrap ErrCorruptTrie.
func UnmarshalTrie(r *BitReader) (*Trie, error) {
	if r.Remaining() > MaxTrieBits {
		return nil, fmt.Errorf("%w: declared length %d exceeds %d bits", ErrCorruptTrie, r.Remaining(), MaxTrieBits)
	}

	t := &Trie{nodes: make([]trieNode, 0, 2*NumSymbols-1), root: 0}
	var seen [NumSymbols]bool
	var numInternal int

	// pending holds internal nodes that are still missing a child, along
	// with their depth.  The root is at depth 0, so a leaf's depth is the
	// length of its code.
	type pendingNode struct {
		node  int32
		depth int
	}
	pending := make([]pendingNode, 0, 16)

	attach := func(child int32) {
		if len(pending) == 0 {
			return
		}
		parent := &t.nodes[pending[len(pending)-1].node]
		if parent.left == noChild {
			parent.left = child
			return
		}
		parent.right = child
		pending = pending[:len(pending)-1]
	}

	for {
		depth := 0
		if len(pending) != 0 {
			depth = pending[len(pending)-1].depth + 1
		}
		if depth > MaxCodeSize {
			return nil, fmt.Errorf("%w: depth exceeds %d", ErrCorruptTrie, MaxCodeSize)
		}

		bit, err := r.ReadBit()
		if err != nil {
			return nil, wrapTrieError(err, r.Pos())
		}

		if bit == 1 {
			v, err := r.ReadBits(8)
			if err != nil {
				return nil, wrapTrieError(err, r.Pos())
			}
			symbol := Symbol(v)
			if seen[symbol] {
				return nil, fmt.Errorf("%w: symbol %d appears twice", ErrCorruptTrie, symbol)
			}
			seen[symbol] = true
			attach(t.addLeaf(symbol, 0))
		} else {
			if numInternal == NumSymbols-1 {
				return nil, fmt.Errorf("%w: more than %d internal nodes", ErrCorruptTrie, NumSymbols-1)
			}
			numInternal++
			i := t.addInternal(noChild, noChild, 0)
			attach(i)
			pending = append(pending, pendingNode{node: i, depth: depth})
		}

		if len(pending) == 0 {
			break
		}
	}

	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%w: trie ends %d bits before declared length", ErrCorruptTrie, r.Remaining())
	}
	return t, nil
}

func wrapTrieError(err error, pos uint64) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: structure incomplete after %d bits", ErrCorruptTrie, pos)
	}
	return fmt.Errorf("%w: %v", ErrCorruptTrie, err)
}
