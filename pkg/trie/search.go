package trie

import "fmt"

func wrapInvalid(op, msg string) error {
	return fmt.Errorf("%s: %s: %w", op, msg, ErrInvalidArgument)
}

type substringMatch struct {
	entry      string
	dist       int
	start, end int
	found      bool
}

// considerBetter applies the tie-break of spec.md §4.6: minimize
// distance, then start, then window length.
func (m *substringMatch) considerBetter(entry string, dist, start, end int) {
	if !m.found {
		*m = substringMatch{entry, dist, start, end, true}
		return
	}
	if dist != m.dist {
		if dist < m.dist {
			*m = substringMatch{entry, dist, start, end, true}
		}
		return
	}
	if start != m.start {
		if start < m.start {
			*m = substringMatch{entry, dist, start, end, true}
		}
		return
	}
	if end-start < m.end-m.start {
		*m = substringMatch{entry, dist, start, end, true}
	}
}

// SearchSubstring is search_substring (spec.md §4.6 / §6): find a
// window of text within correctionBudget edits of some stored entry,
// minimizing distance, then start, then window length.
func (t *Trie) SearchSubstring(text string, correctionBudget int) (string, int, int, int, error) {
	if correctionBudget < 0 {
		return "", -1, -1, -1, wrapInvalid("SearchSubstring", "correction_budget must be >= 0")
	}
	tb := []byte(text)
	var best substringMatch

	for start := 0; start <= len(tb); start++ {
		tail := tb[start:]
		var localBest substringMatch
		var visit visitFn
		visit = func(ref nodeRef, qi, remaining int, path []byte) bool {
			n := t.store.get(ref)
			if n.terminal {
				d := correctionBudget - remaining
				localBest.considerBetter(string(path), d, start, start+qi)
			}
			// Substring mode never requires consuming the rest of
			// tail, so the length-gap prune (which assumes a fixed
			// target length) does not apply; descend unconditionally.
			return t.descendChildren(ref, tail, qi, remaining, path, false, visit)
		}
		t.matchEdge(t.root, 0, tail, 0, correctionBudget, nil, visit)

		if localBest.found {
			best.considerBetter(localBest.entry, localBest.dist, localBest.start, localBest.end)
			if best.dist == 0 {
				break
			}
		}
	}

	if !best.found {
		return "", -1, -1, -1, nil
	}
	return best.entry, best.dist, best.start, best.end, nil
}

// LongestPrefixMatch implements longest_prefix_match (spec.md §4.6 /
// §6): the longest entry that is an exact prefix of text[start:],
// with length >= minMatchLength, for the best-scoring start. Ties on
// length are broken by smallest start.
func (t *Trie) LongestPrefixMatch(text string, minMatchLength int) (string, int, int, error) {
	if minMatchLength <= 0 {
		return "", -1, -1, wrapInvalid("LongestPrefixMatch", "min_match_length must be > 0")
	}
	tb := []byte(text)

	bestEntry := ""
	bestStart, bestLen := -1, -1

	for start := 0; start < len(tb); start++ {
		entry, length := t.deepestTerminal(tb[start:], minMatchLength)
		if length < 0 {
			continue
		}
		if length > bestLen {
			bestEntry, bestStart, bestLen = entry, start, length
		}
	}

	if bestLen < 0 {
		return "", -1, -1, nil
	}
	return bestEntry, bestStart, bestLen, nil
}

// deepestTerminal walks the trie exactly along tail, returning the
// longest terminal's entry and length reached that is >= minLen, or
// ("", -1) if none qualifies.
func (t *Trie) deepestTerminal(tail []byte, minLen int) (string, int) {
	cur := t.root
	pos := 0
	var path []byte
	bestEntry := ""
	bestLen := -1

	for {
		n := t.store.get(cur)
		if n.terminal && pos >= minLen {
			if pos > bestLen {
				bestLen = pos
				bestEntry = string(path)
			}
		}
		if pos >= len(tail) {
			return bestEntry, bestLen
		}
		childRef, ok := n.children[tail[pos]]
		if !ok {
			return bestEntry, bestLen
		}
		child := t.store.get(childRef)
		remaining := len(tail) - pos
		cpl := equalPrefix(child.label, tail[pos:], min(len(child.label), remaining))
		if cpl != len(child.label) {
			return bestEntry, bestLen
		}
		path = append(path, child.label...)
		pos += cpl
		cur = childRef
	}
}
