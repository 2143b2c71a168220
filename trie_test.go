package huffpack

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildTrie(t *testing.T) {
	trie, err := BuildTrie(Analyze([]byte("AAAAABBBCC")))
	if err != nil {
		t.Fatalf("BuildTrie failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Trie{\n",
		"\tInternal freq=10\n",
		"\t\tLeaf(65) freq=5\n",
		"\t\tInternal freq=5\n",
		"\t\t\tLeaf(67) freq=2\n",
		"\t\t\tLeaf(66) freq=3\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = trie.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if trie.NumLeaves() != 3 || trie.NumNodes() != 5 {
		t.Errorf("expected 3 leaves and 5 nodes, got %d and %d", trie.NumLeaves(), trie.NumNodes())
	}
	if trie.Freq(trie.Root()) != 10 {
		t.Errorf("expected root frequency 10, got %d", trie.Freq(trie.Root()))
	}
}

func TestBuildTrie_SingleSymbol(t *testing.T) {
	trie, err := BuildTrie(Analyze([]byte("ZZZZ")))
	if err != nil {
		t.Fatalf("BuildTrie failed: %v", err)
	}
	root := trie.Root()
	if !trie.IsLeaf(root) {
		t.Fatalf("expected lone leaf, got internal root")
	}
	if trie.Symbol(root) != 'Z' {
		t.Errorf("expected symbol %d, got %d", 'Z', trie.Symbol(root))
	}
	if trie.NumLeaves() != 1 {
		t.Errorf("expected 1 leaf, got %d", trie.NumLeaves())
	}
}

func TestBuildTrie_ZeroSymbol(t *testing.T) {
	trie, err := BuildTrie(Analyze([]byte{0, 0, 0, 1}))
	if err != nil {
		t.Fatalf("BuildTrie failed: %v", err)
	}
	left, right := trie.Children(trie.Root())
	if !trie.IsLeaf(left) || !trie.IsLeaf(right) {
		t.Fatalf("expected two leaves under the root")
	}
	if trie.Symbol(left) != 1 || trie.Symbol(right) != 0 {
		t.Errorf("expected leaves 1 and 0, got %d and %d", trie.Symbol(left), trie.Symbol(right))
	}
}

func TestBuildTrie_Empty(t *testing.T) {
	_, err := BuildTrie(Analyze(nil))
	if !errors.Is(err, ErrEmptyTable) {
		t.Errorf("expected ErrEmptyTable, got %v", err)
	}
}

func TestBuildTrie_Deterministic(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog")
	a, err := BuildTrie(Analyze(input))
	if err != nil {
		t.Fatalf("BuildTrie failed: %v", err)
	}
	b, err := BuildTrie(Analyze(input))
	if err != nil {
		t.Fatalf("BuildTrie failed: %v", err)
	}

	var bufA, bufB strings.Builder
	_, _ = a.Dump(&bufA)
	_, _ = b.Dump(&bufB)
	if bufA.String() != bufB.String() {
		t.Errorf("two builds differ:\n%s\n%s", bufA.String(), bufB.String())
	}
}
