package trie

import "errors"

// Sentinel error kinds. Wrap with fmt.Errorf("...: %w", ErrX) for context.
var (
	// ErrInvalidArgument is returned for a negative correction budget or a
	// non-positive min_match_length.
	ErrInvalidArgument = errors.New("prefixtrie: invalid argument")
	// ErrImmutableViolation is returned when Add or Remove is called on a
	// trie constructed with mutable=false.
	ErrImmutableViolation = errors.New("prefixtrie: trie is immutable")
)
