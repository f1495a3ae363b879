// Package smaz provides compression for short strings via a fixed codebook.
//
// # Overview
//
// smaz is a dictionary coder optimized for small natural-language strings.
// It replaces common substrings (1-7 bytes each) with single-byte codes from
// a fixed 254-entry codebook and escapes everything else verbatim. There is
// no per-stream model, header, or training phase, so even two- and
// three-byte inputs compress: "the" becomes a single byte.
//
// # When to Use smaz
//
// smaz excels at compressing:
//   - Short English text: chat messages, titles, descriptions
//   - URLs, hostnames, and file paths
//   - Keys and small values stored by the millions
//   - Strings far below the ~100 byte threshold where LZ coders break even
//
// Typical compression ratios: 1.3x to 2x on English text, even for inputs
// under 20 bytes.
//
// # When NOT to Use smaz
//
// smaz is not suitable for:
//   - Large documents (use gzip, zstd, or fsst)
//   - Binary, random, or encrypted data (incompressible, escaped verbatim)
//   - Non-English text with few codebook hits
//
// Incompressible input is never rejected, it just grows slightly: at most 2
// bytes per 255-byte block.
//
// # Basic Usage
//
//	// Compress and decompress with the built-in codebook
//	compressed := smaz.Compress([]byte("this is a small string"))
//	original, err := smaz.Decompress(compressed)
//
//	// Or use a custom codebook and reuse output buffers
//	cb, err := smaz.NewCodebookStrings([]string{"GET /", "/index", " HTTP/1"})
//	buf := cb.Compress(nil, []byte("GET /index HTTP/1.1"))
//	orig, err := cb.Decompress(nil, buf)
//
//	// Serialize a codebook for reuse
//	data, _ := cb.MarshalBinary()
//	var cb2 smaz.Codebook
//	cb2.UnmarshalBinary(data)
//
// # Wire Format
//
// Compressed output is a flat sequence of tokens. Each token starts with one
// byte: values below 254 are codebook codes and expand to the entry stored
// at that position, 254 is followed by one verbatim byte, and 255 is
// followed by a count byte and that many verbatim bytes. The stream is
// self-delimiting and carries no header or checksum; compressor and
// decompressor must agree on the codebook out of band.
//
// # Performance Characteristics
//
// Compression: O(n) with a bounded lookahead per token, single pass
// Decompression: O(n) table lookups, no branching beyond the escape check
//
// A Codebook is immutable after construction and safe for concurrent use.
package smaz
