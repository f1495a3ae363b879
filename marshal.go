package smaz

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

const codebookVersion uint64 = 20090413

// ErrBadVersion indicates the serialized codebook version is not supported.
var ErrBadVersion = errors.New("smaz: unsupported codebook version")

// WriteTo serializes the Codebook to w using a compact header format.
// Layout:
// - 8 bytes version word: (version<<32)|(nEntries<<8)|1
// - nEntries length bytes (u8, each 1..7)
// - concatenated entry bytes for codes [0..nEntries) in code order
func (c *Codebook) WriteTo(w io.Writer) (int64, error) {
	// pack version
	ver := (codebookVersion << 32) |
		(uint64(len(c.entries)) << 8) |
		1
	var (
		n    int64
		buf8 [8]byte
	)
	binary.LittleEndian.PutUint64(buf8[:], ver)
	if nn, err := w.Write(buf8[:]); err != nil {
		return n, err
	} else {
		n += int64(nn)
	}
	lens := make([]byte, len(c.entries))
	for i, entry := range c.entries {
		lens[i] = byte(len(entry))
	}
	if nn, err := w.Write(lens); err != nil {
		return n, err
	} else {
		n += int64(nn)
	}
	// entry bytes
	for _, entry := range c.entries {
		if nn, err := w.Write(entry); err != nil {
			return n, err
		} else {
			n += int64(nn)
		}
	}
	return n, nil
}

// ReadFrom deserializes a Codebook from r, replacing the receiver. The
// decoded entry set passes the same validation as NewCodebook, so a stream
// carrying an empty, oversized, or duplicate entry fails with
// ErrCodebookInvalid.
func (c *Codebook) ReadFrom(r io.Reader) (int64, error) {
	var (
		n   int64
		hdr [8]byte
	)
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return n, err
	}
	n += 8
	ver := binary.LittleEndian.Uint64(hdr[:])
	if ver>>32 != codebookVersion {
		return n, ErrBadVersion
	}
	nEntries := int((ver >> 8) & 0xFF)
	// endian marker ignored (lowest byte)
	lens := make([]byte, nEntries)
	if _, err := io.ReadFull(r, lens); err != nil {
		return n, err
	}
	n += int64(nEntries)
	entries := make([][]byte, nEntries)
	for i, l := range lens {
		entry := make([]byte, l)
		if _, err := io.ReadFull(r, entry); err != nil {
			return n, err
		}
		n += int64(l)
		entries[i] = entry
	}
	built, err := NewCodebook(entries)
	if err != nil {
		return n, err
	}
	*c = *built
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Codebook) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (c *Codebook) UnmarshalBinary(data []byte) error {
	_, err := c.ReadFrom(bytes.NewReader(data))
	return err
}
