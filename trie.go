package smaz

// match records a codebook entry found as a prefix of the input.
type match struct {
	code int16 // entry code, always a valid dictionary code
	n    int   // matched length in bytes
}

// trie is the codebook match index: a byte-level prefix tree over all
// entries, built once during Codebook construction and read-only afterwards.
// Nodes live in a flat slice and refer to children by index. Index 0 is the
// root, which is never anyone's child, so a zero child index means "absent".
type trie struct {
	nodes []trieNode
}

type trieNode struct {
	next [256]int32 // child node per byte value, 0 when absent
	code int16      // entry code terminating here, -1 when none
}

func newTrie() trie {
	return trie{nodes: []trieNode{{code: -1}}}
}

// insert adds entry under code. It reports false when the exact entry is
// already present.
func (t *trie) insert(entry []byte, code int16) bool {
	cur := int32(0)
	for _, b := range entry {
		next := t.nodes[cur].next[b]
		if next == 0 {
			next = int32(len(t.nodes))
			t.nodes = append(t.nodes, trieNode{code: -1})
			t.nodes[cur].next[b] = next
		}
		cur = next
	}
	if t.nodes[cur].code >= 0 {
		return false
	}
	t.nodes[cur].code = code
	return true
}

// longestMatch returns the longest entry that is a prefix of src. The walk
// descends at most one node per input byte and stops at the first absent
// child, so it touches no more than maxEntryLen+1 nodes. n is 0 when no
// entry matches.
func (t *trie) longestMatch(src []byte) (code int16, n int) {
	code = -1
	cur := int32(0)
	for i, b := range src {
		cur = t.nodes[cur].next[b]
		if cur == 0 {
			break
		}
		if c := t.nodes[cur].code; c >= 0 {
			code, n = c, i+1
		}
	}
	return code, n
}

// prefixMatches appends to dst every entry that is a prefix of src, shortest
// first, and returns the extended slice. Entries cap at maxEntryLen bytes,
// so at most maxEntryLen matches exist and a stack-backed dst never grows.
func (t *trie) prefixMatches(src []byte, dst []match) []match {
	cur := int32(0)
	for i, b := range src {
		cur = t.nodes[cur].next[b]
		if cur == 0 {
			break
		}
		if c := t.nodes[cur].code; c >= 0 {
			dst = append(dst, match{code: c, n: i + 1})
		}
	}
	return dst
}
