package smaz

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrCorrupt reports a malformed code stream: an escape truncated before its
// payload, a run claiming more bytes than remain, or a code byte with no
// codebook entry. Any output of Compress decodes cleanly, and decoding is a
// pure function of the input, so a corrupt stream fails the same way every
// time.
var ErrCorrupt = errors.New("smaz: corrupt input")

// Decompress decodes src against the built-in codebook.
func Decompress(src []byte) ([]byte, error) { return Default().DecompressAll(src) }

// Decompress decodes src, reusing buf when it has enough capacity. buf must
// not overlap src. On error the returned slice is nil, no partial output.
func (c *Codebook) Decompress(buf, src []byte) ([]byte, error) {
	if cap(buf) < len(src)*4+8 {
		buf = make([]byte, 0, len(src)*4+8)
	} else {
		buf = buf[:0]
	}
	return c.appendDecompressed(buf, src)
}

// DecompressAll decodes src into a freshly allocated buffer.
func (c *Codebook) DecompressAll(src []byte) ([]byte, error) {
	return c.Decompress(nil, src)
}

// DecompressString decodes s without copying it to a byte slice first.
func (c *Codebook) DecompressString(s string) ([]byte, error) {
	return c.Decompress(nil, unsafe.Slice(unsafe.StringData(s), len(s)))
}

// appendDecompressed appends the decoded form of src to dst. Each token
// starts with one byte: an escape introducing verbatim bytes, or a code
// looked up in the entry table. The stream must end exactly on a token
// boundary.
func (c *Codebook) appendDecompressed(dst, src []byte) ([]byte, error) {
	for p := 0; p < len(src); {
		b := src[p]
		p++
		switch b {
		case escLiteralOne:
			if p == len(src) {
				return nil, fmt.Errorf("%w: literal escape at offset %d truncated", ErrCorrupt, p-1)
			}
			dst = append(dst, src[p])
			p++
		case escLiteralRun:
			if p == len(src) {
				return nil, fmt.Errorf("%w: literal run at offset %d missing count", ErrCorrupt, p-1)
			}
			n := int(src[p])
			p++
			if n > len(src)-p {
				return nil, fmt.Errorf("%w: literal run at offset %d claims %d bytes, %d remain", ErrCorrupt, p-2, n, len(src)-p)
			}
			dst = append(dst, src[p:p+n]...)
			p += n
		default:
			if int(b) >= len(c.entries) {
				return nil, fmt.Errorf("%w: code %d at offset %d has no entry", ErrCorrupt, b, p-1)
			}
			dst = append(dst, c.entries[b]...)
		}
	}
	return dst, nil
}
