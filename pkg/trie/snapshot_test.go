package trie

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	tr := New([]string{"apple", "apricot", "application"}, true, true)

	snap := tr.Snapshot()
	require.Equal(t, tr.allowIndels, snap.AllowIndels)
	require.Equal(t, tr.mutable, snap.Mutable)
	require.Equal(t, tr.Entries(), snap.Entries)

	rebuilt := snap.Rebuild()
	require.Equal(t, tr.Entries(), rebuilt.Entries())
	require.Equal(t, tr.AllowIndels(), rebuilt.AllowIndels())
	require.Equal(t, tr.Mutable(), rebuilt.Mutable())
}

func TestMarshalUnmarshalBinaryRoundTrip(t *testing.T) {
	tr := New([]string{"one", "two", "three"}, false, false)

	data, err := tr.MarshalBinary()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	rebuilt, err := UnmarshalTrie(data)
	require.NoError(t, err)
	require.Equal(t, tr.Entries(), rebuilt.Entries())
	require.Equal(t, tr.AllowIndels(), rebuilt.AllowIndels())
	require.Equal(t, tr.Mutable(), rebuilt.Mutable())
}

func TestUnmarshalTrieRejectsGarbage(t *testing.T) {
	_, err := UnmarshalTrie([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}

func TestSaveLoadFileRoundTrip(t *testing.T) {
	tr := New([]string{"x", "xy", "xyz"}, true, false)
	path := filepath.Join(t.TempDir(), "snapshot.bin")

	require.NoError(t, tr.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, tr.Entries(), loaded.Entries())
	require.Equal(t, tr.AllowIndels(), loaded.AllowIndels())

	s, d, err := loaded.Search("xz", 1)
	require.NoError(t, err)
	require.Equal(t, "x", s)
	require.Equal(t, 1, d)
}

func TestLoadFileMissingPath(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	require.Error(t, err)
}

// TestSnapshotRebuildIsStructurallyCompressed checks P7: rebuilding
// from a snapshot produces a trie obeying the same compression
// invariants as one built directly, for any order of entries.
func TestSnapshotRebuildIsStructurallyCompressed(t *testing.T) {
	tr := New([]string{"zebra", "zeal", "zest", "zealous"}, true, true)
	rebuilt := tr.Snapshot().Rebuild()
	assertCompressed(t, rebuilt)
	assertEntrySetMatches(t, rebuilt, tr.Entries())
}
