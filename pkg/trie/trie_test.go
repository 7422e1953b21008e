package trie

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructionDedupAndLen(t *testing.T) {
	tr := New([]string{"apple", "apple", "apricot", ""}, false, false)
	require.Equal(t, 3, tr.Len())
	require.True(t, tr.Contains(""))
	require.True(t, tr.Contains("apple"))
	require.True(t, tr.Contains("apricot"))
	require.False(t, tr.Contains("app"))
}

func TestEntriesLexicographicOrder(t *testing.T) {
	words := []string{"banana", "band", "bandana", "an", "ant", "anthem", "a"}
	tr := New(words, false, false)

	want := append([]string(nil), words...)
	sort.Strings(want)

	require.Equal(t, want, tr.Entries())
}

func TestContainsIsIndependentOfTreeStructure(t *testing.T) {
	tr := New([]string{"ACGT", "ACGG", "ACGC"}, true, false)
	for _, e := range []string{"ACGT", "ACGG", "ACGC"} {
		require.True(t, tr.Contains(e))
	}
	require.False(t, tr.Contains("ACG"))
	require.False(t, tr.Contains("ACGA"))
}

// TestCompressionFixpoint checks P8: no non-terminal, non-root node
// has exactly one child, by walking the arena directly.
func TestCompressionFixpoint(t *testing.T) {
	tr := New([]string{"apple", "apricot", "application", "app"}, false, true)
	assertCompressed(t, tr)
}

func assertCompressed(t *testing.T, tr *Trie) {
	t.Helper()
	var walk func(r nodeRef, isRoot bool)
	walk = func(r nodeRef, isRoot bool) {
		n := tr.store.get(r)
		if !isRoot && !n.terminal {
			require.NotEqual(t, 1, len(n.children), "non-terminal non-root node has exactly one child")
		}
		if !isRoot {
			require.NotEmpty(t, n.label, "non-root node has an empty label")
		}
		for _, c := range n.children {
			walk(c, false)
		}
	}
	walk(tr.root, true)
}

func TestSiblingsHaveDistinctFirstBytes(t *testing.T) {
	tr := New([]string{"cat", "car", "cart", "dog", "do"}, false, false)
	var walk func(r nodeRef)
	walk = func(r nodeRef) {
		n := tr.store.get(r)
		seen := map[byte]bool{}
		for b, c := range n.children {
			require.False(t, seen[b])
			seen[b] = true
			walk(c)
		}
	}
	walk(tr.root)
}

// TestSpecScenarios replays concrete scenarios 1-8 of spec.md §8.
func TestSpecScenarios(t *testing.T) {
	t.Run("scenario 1: exact match", func(t *testing.T) {
		tr := New([]string{"ACGT", "ACGG", "ACGC"}, true, false)
		s, d, err := tr.Search("ACGT", 0)
		require.NoError(t, err)
		require.Equal(t, "ACGT", s)
		require.Equal(t, 0, d)
	})

	t.Run("scenario 2: substitution tie-break picks lex-first", func(t *testing.T) {
		tr := New([]string{"ACGT", "ACGG", "ACGC"}, true, false)
		s, d, err := tr.Search("ACGA", 1)
		require.NoError(t, err)
		require.Equal(t, "ACGC", s)
		require.Equal(t, 1, d)
	})

	t.Run("scenario 3: insertion tie-break picks lex-first", func(t *testing.T) {
		tr := New([]string{"ACGT", "ACGG", "ACGC"}, true, false)
		s, d, err := tr.Search("ACG", 1)
		require.NoError(t, err)
		require.Equal(t, "ACGC", s)
		require.Equal(t, 1, d)
	})

	t.Run("scenario 4: one deletion", func(t *testing.T) {
		tr := New([]string{"ACGT", "ACGG", "ACGC"}, true, false)
		s, d, err := tr.Search("ACGTA", 1)
		require.NoError(t, err)
		require.Equal(t, "ACGT", s)
		require.Equal(t, 1, d)
	})

	t.Run("scenario 5: no match within budget", func(t *testing.T) {
		tr := New([]string{"ACGT", "ACGG", "ACGC"}, true, false)
		s, d, err := tr.Search("TTTT", 1)
		require.NoError(t, err)
		require.Equal(t, "", s)
		require.Equal(t, -1, d)
	})

	t.Run("scenario 6: indels disabled blocks insertion-needing matches", func(t *testing.T) {
		tr := New([]string{"apple", "apricot"}, false, false)
		_, d, err := tr.Search("aple", 1)
		require.NoError(t, err)
		require.Equal(t, -1, d)

		trIndel := New([]string{"apple", "apricot"}, true, false)
		s, d, err := trIndel.Search("aple", 1)
		require.NoError(t, err)
		require.Equal(t, "apple", s)
		require.Equal(t, 1, d)
	})

	t.Run("scenario 7: substring search", func(t *testing.T) {
		tr := New([]string{"HELLO"}, false, false)
		s, d, start, end, err := tr.SearchSubstring("AAAAHELLOAAAA", 0)
		require.NoError(t, err)
		require.Equal(t, "HELLO", s)
		require.Equal(t, 0, d)
		require.Equal(t, 4, start)
		require.Equal(t, 9, end)
	})

	t.Run("scenario 8: longest prefix match", func(t *testing.T) {
		tr := New([]string{"ACG", "ACGT"}, false, false)

		s, start, length, err := tr.LongestPrefixMatch("ACGTAGGT", 4)
		require.NoError(t, err)
		require.Equal(t, "ACGT", s)
		require.Equal(t, 0, start)
		require.Equal(t, 4, length)

		s, start, length, err = tr.LongestPrefixMatch("ACGTAGGT", 5)
		require.NoError(t, err)
		require.Equal(t, "", s)
		require.Equal(t, -1, start)
		require.Equal(t, -1, length)
	})
}

func TestSearchExactFastPathNoTreeTouch(t *testing.T) {
	tr := New([]string{"foo", "bar"}, false, false)
	s, d, ok := tr.searchExact("foo")
	require.True(t, ok)
	require.Equal(t, "foo", s)
	require.Equal(t, 0, d)

	_, _, ok = tr.searchExact("baz")
	require.False(t, ok)
}

func TestInvalidArguments(t *testing.T) {
	tr := New([]string{"a"}, false, true)

	_, _, err := tr.Search("a", -1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = tr.SearchCount("a", -1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, _, _, _, err = tr.SearchSubstring("a", -1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, _, _, err = tr.LongestPrefixMatch("a", 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, _, _, err = tr.LongestPrefixMatch("a", -3)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEmptyTrie(t *testing.T) {
	tr := New(nil, true, false)
	require.Equal(t, 0, tr.Len())
	s, d, err := tr.Search("anything", 3)
	require.NoError(t, err)
	require.Equal(t, "", s)
	require.Equal(t, -1, d)
}
