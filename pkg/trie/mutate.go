package trie

import "fmt"

// Add inserts entry into the trie (spec.md §4.7 / §6). Idempotent: if
// entry is already stored, this is a no-op. Fails with
// ErrImmutableViolation if the trie was built with mutable=false.
func (t *Trie) Add(entry string) error {
	if !t.mutable {
		return fmt.Errorf("Add(%q): %w", entry, ErrImmutableViolation)
	}
	if _, ok := t.entries[entry]; ok {
		return nil
	}
	t.insertEntry(entry)
	t.entries[entry] = struct{}{}
	t.recalcBounds()
	return nil
}

// insertEntry performs the descend/split/attach walk of spec.md
// §4.7's add() step 2-3, independent of entry-set bookkeeping so the
// same code path builds the trie at construction time.
func (t *Trie) insertEntry(s string) {
	cur := t.root
	pos := 0
	suffix := []byte(s)

	for {
		n := t.store.get(cur)
		if pos == len(suffix) {
			n.terminal = true
			return
		}
		if n.children == nil {
			n.children = make(map[byte]nodeRef)
		}
		b := suffix[pos]
		childRef, ok := n.children[b]
		if !ok {
			newRef := t.store.alloc(append([]byte(nil), suffix[pos:]...), true)
			n.children[b] = newRef
			return
		}

		child := t.store.get(childRef)
		remaining := suffix[pos:]
		cpl := equalPrefix(child.label, remaining, min(len(child.label), len(remaining)))

		if cpl == len(child.label) {
			// Edge fully consumed; descend.
			pos += cpl
			cur = childRef
			continue
		}

		// Proper common prefix of length cpl: split the edge.
		splitLabel := append([]byte(nil), child.label[:cpl]...)
		oldTail := append([]byte(nil), child.label[cpl:]...)
		child.label = oldTail

		newSuffix := remaining[cpl:]
		var interRef nodeRef
		if len(newSuffix) == 0 {
			interRef = t.store.alloc(splitLabel, true)
			inter := t.store.get(interRef)
			inter.children = map[byte]nodeRef{oldTail[0]: childRef}
		} else {
			interRef = t.store.alloc(splitLabel, false)
			newRef := t.store.alloc(append([]byte(nil), newSuffix...), true)
			inter := t.store.get(interRef)
			inter.children = map[byte]nodeRef{
				oldTail[0]:   childRef,
				newSuffix[0]: newRef,
			}
		}
		n.children[b] = interRef
		return
	}
}

// Remove deletes entry from the trie (spec.md §4.7 / §6). Idempotent:
// if entry is absent, this is a no-op. Fails with
// ErrImmutableViolation if the trie was built with mutable=false.
func (t *Trie) Remove(entry string) error {
	if !t.mutable {
		return fmt.Errorf("Remove(%q): %w", entry, ErrImmutableViolation)
	}
	if _, ok := t.entries[entry]; !ok {
		return nil
	}
	t.removeEntry(entry)
	delete(t.entries, entry)
	t.recalcBounds()
	return nil
}

type pathStep struct {
	parent nodeRef
	edge   byte
	node   nodeRef
}

// removeEntry clears the terminal flag for entry and recompresses the
// path back up to (but not including) the root, per spec.md §4.7
// step 2-3.
func (t *Trie) removeEntry(entry string) {
	path := []pathStep{{parent: -1, edge: 0, node: t.root}}
	cur := t.root
	pos := 0
	suffix := []byte(entry)

	for pos < len(suffix) {
		n := t.store.get(cur)
		b := suffix[pos]
		childRef := n.children[b]
		child := t.store.get(childRef)
		path = append(path, pathStep{parent: cur, edge: b, node: childRef})
		pos += len(child.label)
		cur = childRef
	}

	target := t.store.get(cur)
	target.terminal = false

	for i := len(path) - 1; i >= 1; i-- {
		step := path[i]
		n := t.store.get(step.node)

		if len(n.children) == 0 && !n.terminal {
			parent := t.store.get(step.parent)
			delete(parent.children, step.edge)
			t.store.release(step.node)
			continue // re-examine the parent on the next iteration
		}

		if len(n.children) == 1 && !n.terminal {
			var onlyByte byte
			var onlyRef nodeRef
			for k, v := range n.children {
				onlyByte, onlyRef = k, v
			}
			child := t.store.get(onlyRef)
			n.label = append(n.label, child.label...)
			n.terminal = child.terminal
			n.children = child.children
			t.store.release(onlyRef)
			_ = onlyByte
		}
		// Either merged (node count now satisfies I2) or the node has
		// >=2 children or is terminal: stable, nothing propagates
		// further up.
		break
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
