// Package huffpack implements a self-describing Huffman compressor for byte
// streams.  A frequency histogram of the input drives construction of an
// optimal prefix-free binary trie, the trie is serialized in pre-order into
// the artifact header, and the input is re-encoded as a packed bit stream.
//
// Artifact layout (all integers big-endian):
//
//	[4 bytes]                      trie bit length T
//	[ceil(T/8) bytes]              pre-order trie, zero-padded
//	[4 bytes]                      payload bit count P
//	[ceil(P/8) bytes]              payload, zero-padded
//
// Bits are packed most significant bit first within each byte.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffpack
