package trie

// This file is C5: the budget-bounded recursive descent shared by
// Search (best single match), SearchCount (all matches within
// budget), and, via matchEdge, SearchSubstring (search.go).
//
// The recursion walks a node's label one byte at a time. At each
// label position it branches into up to four moves (spec.md §4.5's
// table): Match/Substitute both consume one query byte and one edge
// byte; Insert consumes only the edge byte (there's a "virtual"
// character being inserted into the query to match it); Delete
// consumes only the query byte (drop it without matching edge). Once
// a node's whole label is consumed, visit is called with the
// position reached in the query and the remaining budget; visit
// decides whether to accept (node terminal) and/or recurse into
// children.

// visitFn is called once a node's label has been fully walked.
// Returning true requests early termination of the whole search
// (propagated back up through every pending matchEdge frame).
type visitFn func(ref nodeRef, qi, remaining int, path []byte) bool

func (t *Trie) matchEdge(ref nodeRef, li int, query []byte, qi, remaining int, path []byte, visit visitFn) bool {
	if remaining < 0 {
		return false
	}
	n := t.store.get(ref)
	label := n.label

	if li == len(label) {
		return visit(ref, qi, remaining, path)
	}

	edge := label[li]

	if qi < len(query) {
		if query[qi] == edge {
			if t.matchEdge(ref, li+1, query, qi+1, remaining, append(path, edge), visit) {
				return true
			}
		} else {
			if t.matchEdge(ref, li+1, query, qi+1, remaining-1, append(path, edge), visit) {
				return true
			}
		}
	}

	if t.allowIndels {
		// Insert into Q: the edge byte is treated as an insertion
		// relative to the query, so the query cursor doesn't move.
		if t.matchEdge(ref, li+1, query, qi, remaining-1, append(path, edge), visit) {
			return true
		}
		// Delete from Q: drop a query byte without matching an edge
		// byte, so the label cursor doesn't move.
		if qi < len(query) {
			if t.matchEdge(ref, li, query, qi+1, remaining-1, path, visit) {
				return true
			}
		}
	}
	return false
}

// lengthGap is the minimum number of edits a reachable entry of
// length in [minLen,maxLen] could possibly need relative to a query
// tail of length remainingQ, purely from the length mismatch. It is a
// sound lower bound (spec.md §4.5) used to prune hopeless subtrees
// before descending into them.
func lengthGap(remainingQ, minLen, maxLen int) int {
	if minLen < 0 {
		return 0 // no entries reachable at all; caller won't descend anyway
	}
	if remainingQ < minLen {
		return minLen - remainingQ
	}
	if remainingQ > maxLen {
		return remainingQ - maxLen
	}
	return 0
}

// descendChildren walks every child of ref in first-byte order
// (determinism, spec.md §4.5), pruning any child whose reachable
// entry lengths make it provably out of budget.
func (t *Trie) descendChildren(ref nodeRef, query []byte, qi, remaining int, path []byte, prune bool, visit visitFn) bool {
	n := t.store.get(ref)
	for _, b := range sortedKeys(n.children) {
		child := n.children[b]
		if prune {
			cn := t.store.get(child)
			if lengthGap(len(query)-qi, cn.minLen, cn.maxLen) > remaining {
				continue
			}
		}
		if t.matchEdge(child, 0, query, qi, remaining, path, visit) {
			return true
		}
	}
	return false
}

type bestMatch struct {
	entry string
	dist  int
	found bool
}

func (b *bestMatch) consider(entry string, dist int) {
	if !b.found || dist < b.dist || (dist == b.dist && entry < b.entry) {
		b.found, b.entry, b.dist = true, entry, dist
	}
}

// search is the shared engine behind the public Search method:
// minimize distance, ties broken by lexicographic order. The same
// entry can be accepted at a given distance along several edit paths,
// and a lex-later sibling can be accepted before a lex-earlier one, so
// consider compares entries explicitly on equal distance rather than
// relying on traversal order.
func (t *Trie) search(query []byte, budget int) bestMatch {
	var best bestMatch
	var visit visitFn
	visit = func(ref nodeRef, qi, remaining int, path []byte) bool {
		n := t.store.get(ref)
		if n.terminal {
			if qi == len(query) {
				best.consider(string(path), budget-remaining)
			} else if t.allowIndels {
				extra := len(query) - qi
				if extra <= remaining {
					best.consider(string(path), budget-remaining+extra)
				}
			}
			if best.found && best.dist == 0 {
				return true
			}
		}
		return t.descendChildren(ref, query, qi, remaining, path, true, visit)
	}
	t.matchEdge(t.root, 0, query, 0, budget, nil, visit)
	return best
}

// searchCount implements search_count: the number of distinct stored
// entries within budget edits of query, without early termination.
// Distinct terminal nodes are deduplicated since more than one edit
// path can reach the same node.
func (t *Trie) searchCount(query []byte, budget int) int {
	seen := make(map[nodeRef]struct{})
	var visit visitFn
	visit = func(ref nodeRef, qi, remaining int, path []byte) bool {
		n := t.store.get(ref)
		if n.terminal {
			if qi == len(query) {
				seen[ref] = struct{}{}
			} else if t.allowIndels {
				extra := len(query) - qi
				if extra <= remaining {
					seen[ref] = struct{}{}
				}
			}
		}
		return t.descendChildren(ref, query, qi, remaining, path, true, visit)
	}
	t.matchEdge(t.root, 0, query, 0, budget, nil, visit)
	return len(seen)
}

// Search is the fuzzy search engine entry point (spec.md §4.5 / §6).
// budget = 0 behaves like exact search. Returns (entry, distance) or
// ("", -1) if nothing is within budget.
func (t *Trie) Search(query string, correctionBudget int) (string, int, error) {
	if correctionBudget < 0 {
		return "", -1, wrapInvalid("Search", "correction_budget must be >= 0")
	}
	if correctionBudget == 0 {
		s, d, ok := t.searchExact(query)
		if ok {
			return s, d, nil
		}
		return "", -1, nil
	}
	if s, d, ok := t.searchExact(query); ok {
		return s, d, nil
	}
	r := t.search([]byte(query), correctionBudget)
	if !r.found {
		return "", -1, nil
	}
	return r.entry, r.dist, nil
}

// SearchCount is search_count (spec.md §4.6 / §6).
func (t *Trie) SearchCount(query string, correctionBudget int) (int, error) {
	if correctionBudget < 0 {
		return 0, wrapInvalid("SearchCount", "correction_budget must be >= 0")
	}
	return t.searchCount([]byte(query), correctionBudget), nil
}
