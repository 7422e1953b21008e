package trie

// equalPrefix returns the smallest offset < n at which a and b differ,
// or n if they are identical over [0, n). Callers must ensure both a
// and b have length >= n.
//
// This is C1, the byte-compare primitive. The width-8 loop below is the
// Go-idiomatic analogue of the widened-load optimization spec.md §9
// describes (the original's simd_strncmp): the compiler already
// autovectorizes a straight-line XOR-and-branch loop over []byte on
// amd64/arm64, so no build-tag-gated assembly is worth the maintenance
// cost here. Correctness never depends on the stride.
func equalPrefix(a, b []byte, n int) int {
	i := 0
	for i+8 <= n {
		if a[i] != b[i] || a[i+1] != b[i+1] || a[i+2] != b[i+2] || a[i+3] != b[i+3] ||
			a[i+4] != b[i+4] || a[i+5] != b[i+5] || a[i+6] != b[i+6] || a[i+7] != b[i+7] {
			break
		}
		i += 8
	}
	for i < n {
		if a[i] != b[i] {
			return i
		}
		i++
	}
	return n
}
