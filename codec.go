package huffpack

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// headerSize is the width of each of the two length fields.
const headerSize = 4

// Stats describes one compression run.
type Stats struct {
	// InputBytes is the length of the original input.
	InputBytes uint64

	// Symbols is the number of distinct byte values in the input.
	Symbols int

	// TrieBits is the exact length of the serialized trie.
	TrieBits uint64

	// PayloadBits is the exact length of the encoded payload.
	PayloadBits uint64

	// OutputBytes is the length of the artifact, headers and padding
	// included.
	OutputBytes uint64
}

// Ratio returns OutputBytes / InputBytes, or 0 for an empty input.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBytes) / float64(s.InputBytes)
}

// Compress returns the artifact for data.  Empty input yields an artifact
// whose two length fields are both zero.
func Compress(data []byte) ([]byte, error) {
	out, _, err := CompressStats(data)
	return out, err
}

// CompressStats is like Compress, but also reports the sizes involved.
func CompressStats(data []byte) ([]byte, Stats, error) {
	ft := Analyze(data)
	t, ct, stats, err := plan(ft)
	if err != nil {
		return nil, stats, err
	}
	if t == nil {
		return make([]byte, 2*headerSize), stats, nil
	}

	var tw BitWriter
	t.MarshalBits(&tw)

	var pw BitWriter
	if err := EncodePayload(data, ct, &pw); err != nil {
		return nil, stats, err
	}

	out := make([]byte, 0, 2*headerSize+bytesForBits(tw.Len())+bytesForBits(pw.Len()))
	out = binary.BigEndian.AppendUint32(out, uint32(tw.Len()))
	out = append(out, tw.Bytes()...)
	out = binary.BigEndian.AppendUint32(out, uint32(pw.Len()))
	out = append(out, pw.Bytes()...)

	assert.Assertf(uint64(len(out)) == stats.OutputBytes, "artifact is %d bytes, planned %d", len(out), stats.OutputBytes)
	return out, stats, nil
}

// Measure returns the Stats that compressing an input with histogram ft
// would produce, without encoding anything.
func Measure(ft FrequencyTable) (Stats, error) {
	_, _, stats, err := plan(ft)
	return stats, err
}

// plan builds the trie and code table for ft and computes the resulting
// sizes.  For an empty table the returned Trie is nil.
func plan(ft FrequencyTable) (*Trie, CodeTable, Stats, error) {
	stats := Stats{InputBytes: ft.Total(), Symbols: ft.Len(), OutputBytes: 2 * headerSize}
	if ft.Len() == 0 {
		return nil, CodeTable{}, stats, nil
	}

	t, err := BuildTrie(ft)
	if err != nil {
		return nil, CodeTable{}, stats, err
	}
	ct := NewCodeTable(t)

	stats.TrieBits = t.SerializedLen()
	stats.PayloadBits = ct.EncodedSize(ft)
	if stats.PayloadBits > math.MaxUint32 {
		return nil, CodeTable{}, stats, fmt.Errorf("%w: payload needs %d bits, limit is %d", ErrTooLarge, stats.PayloadBits, uint64(math.MaxUint32))
	}
	stats.OutputBytes += bytesForBits(stats.TrieBits) + bytesForBits(stats.PayloadBits)
	return t, ct, stats, nil
}

// Expand reverses Compress.  Any inconsistency in the artifact is reported as
// an error wrapping one of ErrTruncatedHeader, ErrCorruptTrie,
// ErrDesyncedPayload, or ErrTrailingData; no partial output is returned.
func Expand(artifact []byte) ([]byte, error) {
	rest := artifact

	trieBits, rest, err := readLength(rest, "trie length")
	if err != nil {
		return nil, err
	}
	if trieBits > MaxTrieBits {
		return nil, fmt.Errorf("%w: declared length %d exceeds %d bits", ErrCorruptTrie, trieBits, MaxTrieBits)
	}
	trieRegion, rest, err := readRegion(rest, trieBits, "trie")
	if err != nil {
		return nil, err
	}

	payloadBits, rest, err := readLength(rest, "payload length")
	if err != nil {
		return nil, err
	}
	payloadRegion, rest, err := readRegion(rest, payloadBits, "payload")
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d extra bytes", ErrTrailingData, len(rest))
	}

	if trieBits == 0 {
		if payloadBits != 0 {
			return nil, fmt.Errorf("%w: empty trie with %d payload bits", ErrCorruptTrie, payloadBits)
		}
		return []byte{}, nil
	}

	t, err := UnmarshalTrie(NewBitReader(trieRegion, trieBits))
	if err != nil {
		return nil, err
	}
	return DecodePayload(t, NewBitReader(payloadRegion, payloadBits))
}

func readLength(buf []byte, what string) (uint64, []byte, error) {
	if len(buf) < headerSize {
		return 0, nil, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncatedHeader, what, headerSize, len(buf))
	}
	return uint64(binary.BigEndian.Uint32(buf)), buf[headerSize:], nil
}

func readRegion(buf []byte, nbits uint64, what string) ([]byte, []byte, error) {
	n := bytesForBits(nbits)
	if uint64(len(buf)) < n {
		return nil, nil, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrTruncatedHeader, what, n, len(buf))
	}
	return buf[:n], buf[n:], nil
}
