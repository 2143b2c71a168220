package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// nodeKind distinguishes leaves from internal nodes.  A leaf is identified by
// its kind, never by its symbol, so every byte value (including 0) is a
// legitimate leaf symbol.
type nodeKind byte

const (
	leafNode nodeKind = iota
	internalNode
)

// noChild marks the child slots of a leaf.
const noChild = int32(-1)

type trieNode struct {
	kind   nodeKind
	symbol Symbol
	left   int32
	right  int32
	freq   uint64
}

// Trie is a strict binary tree whose leaves hold Symbols.  The path from the
// root to a leaf, with left = 0 and right = 1, is that symbol's code.
//
// Nodes live in a single arena and refer to their children by index; node
// indices are only meaningful for the Trie that produced them.
type Trie struct {
	nodes []trieNode
	root  int32
}

// BuildTrie constructs an optimal prefix-free code trie for the given
// frequencies.  The two lowest-frequency nodes are merged repeatedly until a
// single root remains; ties go to the node that entered the queue first, and
// leaves enter in ascending symbol order, so the result is fully determined
// by ft.
//
// A table with one distinct symbol yields a Trie consisting of a lone leaf.
// An empty table is rejected with ErrEmptyTable.
func BuildTrie(ft FrequencyTable) (*Trie, error) {
	numLeaves := ft.Len()
	if numLeaves == 0 {
		return nil, ErrEmptyTable
	}

	t := &Trie{nodes: make([]trieNode, 0, 2*numLeaves-1)}
	q := newNodeQueue(numLeaves)
	for _, symbol := range ft.Symbols() {
		freq := ft.Count(symbol)
		q.Insert(t.addLeaf(symbol, freq), freq)
	}

	for q.Len() > 1 {
		a := q.DelMin()
		b := q.DelMin()
		freqSum := a.freq + b.freq
		q.Insert(t.addInternal(a.node, b.node, freqSum), freqSum)
	}

	t.root = q.DelMin().node
	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "trie has %d nodes for %d leaves", len(t.nodes), numLeaves)
	return t, nil
}

func (t *Trie) addLeaf(symbol Symbol, freq uint64) int32 {
	t.nodes = append(t.nodes, trieNode{kind: leafNode, symbol: symbol, left: noChild, right: noChild, freq: freq})
	return int32(len(t.nodes) - 1)
}

func (t *Trie) addInternal(left int32, right int32, freq uint64) int32 {
	t.nodes = append(t.nodes, trieNode{kind: internalNode, left: left, right: right, freq: freq})
	return int32(len(t.nodes) - 1)
}

// Root returns the index of the root node.
func (t *Trie) Root() int32 {
	return t.root
}

// IsLeaf reports whether node i is a leaf.
func (t *Trie) IsLeaf(i int32) bool {
	return t.nodes[i].kind == leafNode
}

// Symbol returns the symbol held by leaf i.
func (t *Trie) Symbol(i int32) Symbol {
	n := &t.nodes[i]
	assert.Assertf(n.kind == leafNode, "Symbol called on internal node %d", i)
	return n.symbol
}

// Children returns the left and right children of internal node i.
func (t *Trie) Children(i int32) (left int32, right int32) {
	n := &t.nodes[i]
	assert.Assertf(n.kind == internalNode, "Children called on leaf node %d", i)
	return n.left, n.right
}

// Freq returns the frequency recorded for node i during construction.  A
// deserialized Trie carries no frequencies and always reports 0.
func (t *Trie) Freq(i int32) uint64 {
	return t.nodes[i].freq
}

// NumNodes returns the total number of nodes.
func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. distinct symbols.
func (t *Trie) NumLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Dump writes a programmer-readable debugging dump of the Trie to the given
// writer, one node per line in pre-order.
func (t *Trie) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Trie{\n")

	type stackItem struct {
		node  int32
		depth int
	}
	stack := []stackItem{{t.root, 1}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[top.node]
		indent := strings.Repeat("\t", top.depth)
		if n.kind == leafNode {
			fmt.Fprintf(&buf, "%sLeaf(%d) freq=%d\n", indent, n.symbol, n.freq)
			continue
		}
		fmt.Fprintf(&buf, "%sInternal freq=%d\n", indent, n.freq)
		stack = append(stack, stackItem{n.right, top.depth + 1}, stackItem{n.left, top.depth + 1})
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
