package trie

import (
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the persisted-state format spec.md §6 mandates: enough
// to rebuild a structurally-equal compressed trie (the compressed
// structure itself need not round-trip byte-for-byte, only the
// entries and flags that determine it — spec.md §5 and §9's P7).
type Snapshot struct {
	AllowIndels bool     `msgpack:"allow_indels"`
	Mutable     bool     `msgpack:"mutable"`
	Entries     []string `msgpack:"entries"`
}

// Snapshot captures enough state to rebuild an equivalent trie
// elsewhere — the external collaborators spec.md §5 calls out
// (language bindings, shared-memory transport) serialize this, not
// the node arena directly.
func (t *Trie) Snapshot() Snapshot {
	return Snapshot{
		AllowIndels: t.allowIndels,
		Mutable:     t.mutable,
		Entries:     t.Entries(), // already lexicographic
	}
}

// Rebuild constructs a fresh Trie from a Snapshot.
func (s Snapshot) Rebuild() *Trie {
	return New(s.Entries, s.AllowIndels, s.Mutable)
}

// MarshalBinary encodes the trie's persisted state as msgpack, the
// wire format the teacher's IPC protocol (pkg/server/interface.go)
// uses for the same reason: materially smaller than JSON for this
// shape of payload, and it round-trips Go structs without a schema.
func (t *Trie) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(t.Snapshot())
}

// UnmarshalTrie decodes a msgpack-encoded Snapshot and rebuilds a Trie.
func UnmarshalTrie(data []byte) (*Trie, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return snap.Rebuild(), nil
}

// SaveFile writes the trie's snapshot to path as msgpack.
func (t *Trie) SaveFile(path string) error {
	data, err := t.MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFile reads a msgpack snapshot previously written by SaveFile
// and rebuilds a Trie.
func LoadFile(path string) (*Trie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalTrie(data)
}
