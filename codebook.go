package smaz

import (
	"errors"
	"fmt"
)

const (
	escLiteralOne = 254 // escape: one verbatim byte follows
	escLiteralRun = 255 // escape: a count byte and that many verbatim bytes follow

	maxEntries  = 254 // codes 0..253; 254 and 255 are reserved escapes
	maxEntryLen = 7   // longest codebook entry in bytes
	maxRunLen   = 255 // verbatim run chunk limit, the count must fit one byte
)

// ErrCodebookInvalid reports an entry set rejected by NewCodebook: an empty
// entry, an entry longer than 7 bytes, more than 254 entries, or a duplicate.
// It never occurs with the built-in codebook.
var ErrCodebookInvalid = errors.New("smaz: invalid codebook")

// Codebook is an immutable dictionary of byte strings, each addressed by a
// single-byte code equal to its position in the entry list. Construct one
// with NewCodebook or obtain the built-in English table from Default. A
// Codebook never changes after construction and is safe for concurrent use
// by any number of Compress and Decompress calls.
type Codebook struct {
	entries [][]byte // code -> entry bytes
	index   trie     // prefix match index over all entries
}

// NewCodebook builds a Codebook from entries. The code assigned to an entry
// is its index, so the order of entries is part of the wire format: streams
// compressed with one codebook decompress correctly only against a codebook
// with the same entries in the same order. Entry bytes are copied.
func NewCodebook(entries [][]byte) (*Codebook, error) {
	if len(entries) > maxEntries {
		return nil, fmt.Errorf("%w: %d entries exceeds limit %d", ErrCodebookInvalid, len(entries), maxEntries)
	}
	c := &Codebook{
		entries: make([][]byte, len(entries)),
		index:   newTrie(),
	}
	for code, entry := range entries {
		if len(entry) == 0 {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrCodebookInvalid, code)
		}
		if len(entry) > maxEntryLen {
			return nil, fmt.Errorf("%w: entry %d is %d bytes, limit %d", ErrCodebookInvalid, code, len(entry), maxEntryLen)
		}
		if !c.index.insert(entry, int16(code)) {
			return nil, fmt.Errorf("%w: duplicate entry %q", ErrCodebookInvalid, entry)
		}
		c.entries[code] = append([]byte(nil), entry...)
	}
	return c, nil
}

// NewCodebookStrings builds a Codebook from string entries.
func NewCodebookStrings(entries []string) (*Codebook, error) {
	b := make([][]byte, len(entries))
	for i, s := range entries {
		b[i] = []byte(s)
	}
	return NewCodebook(b)
}

// Len returns the number of dictionary entries.
func (c *Codebook) Len() int { return len(c.entries) }

// Entry returns a copy of the entry stored under code. It returns false when
// code addresses no entry, either out of range or one of the two escape
// values.
func (c *Codebook) Entry(code byte) ([]byte, bool) {
	if int(code) >= len(c.entries) {
		return nil, false
	}
	return append([]byte(nil), c.entries[code]...), true
}
