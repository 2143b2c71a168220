package huffpack

import (
	"errors"
)

var (
	// ErrEmptyTable is returned by BuildTrie when there are no symbols to
	// build a trie from.
	ErrEmptyTable = errors.New("huffpack: empty frequency table")

	// ErrTruncatedHeader is returned when an artifact ends before one of its
	// declared regions is complete.
	ErrTruncatedHeader = errors.New("huffpack: truncated artifact")

	// ErrCorruptTrie is returned when the serialized trie does not describe
	// a valid trie of exactly the declared length.
	ErrCorruptTrie = errors.New("huffpack: corrupt trie")

	// ErrDesyncedPayload is returned when the payload bits do not decode to
	// a whole number of symbols.
	ErrDesyncedPayload = errors.New("huffpack: desynchronized payload")

	// ErrTrailingData is returned when bytes follow the payload region.
	ErrTrailingData = errors.New("huffpack: trailing data after payload")

	// ErrSameFile is returned by CompressFile and ExpandFile when the
	// destination is the source file.
	ErrSameFile = errors.New("huffpack: source and destination are the same file")

	// ErrTooLarge is returned when the encoded payload would not fit the
	// 32-bit bit count field.
	ErrTooLarge = errors.New("huffpack: input too large")
)
