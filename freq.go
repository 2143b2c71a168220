package huffpack

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// FrequencyTable counts the occurrences of each Symbol in some input.
// Symbols that never occur are absent from the table.
type FrequencyTable struct {
	counts [NumSymbols]uint64
	total  uint64
	size   uint32
}

// Analyze returns the FrequencyTable for data.
func Analyze(data []byte) FrequencyTable {
	var ft FrequencyTable
	ft.Add(data)
	return ft
}

// Add accumulates the symbols of data into the table.  It may be called
// repeatedly to build a table over input that arrives in pieces.
func (ft *FrequencyTable) Add(data []byte) {
	for _, ch := range data {
		if ft.counts[ch] == 0 {
			ft.size++
		}
		ft.counts[ch]++
	}
	ft.total += uint64(len(data))
}

// Count returns the number of occurrences of symbol.
func (ft FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Has reports whether symbol occurs at least once.
func (ft FrequencyTable) Has(symbol Symbol) bool {
	return ft.counts[symbol] != 0
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Len returns the number of distinct symbols present.
func (ft FrequencyTable) Len() int {
	return int(ft.size)
}

// Symbols returns the present symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.size)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ft.counts[symbol] != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}

// Entropy returns the Shannon entropy of the distribution in bits per
// symbol.  An empty or single-symbol table has an entropy of 0.
func (ft FrequencyTable) Entropy() float64 {
	if ft.total == 0 {
		return 0
	}
	total := float64(ft.total)
	var h float64
	for _, count := range ft.counts {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	return h
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.size)
	for _, symbol := range ft.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
