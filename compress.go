package smaz

import "unsafe"

// Compress encodes src against the built-in codebook. Compression is total:
// any byte sequence encodes successfully and round-trips through Decompress,
// incompressible input grows by at most 2 bytes per 255-byte block.
func Compress(src []byte) []byte { return Default().CompressAll(src) }

// Compress encodes src, reusing buf when it has enough capacity. buf must
// not overlap src.
func (c *Codebook) Compress(buf, src []byte) []byte {
	if cap(buf) < maxCompressedLen(len(src)) {
		buf = make([]byte, 0, maxCompressedLen(len(src)))
	} else {
		buf = buf[:0]
	}
	return c.appendCompressed(buf, src)
}

// CompressAll encodes src into a freshly allocated buffer.
func (c *Codebook) CompressAll(src []byte) []byte {
	return c.Compress(nil, src)
}

// CompressString encodes s without copying it to a byte slice first.
func (c *Codebook) CompressString(s string) []byte {
	return c.CompressAll(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// maxCompressedLen bounds the encoder's output for n input bytes. The most
// expensive tokenization maps every input byte to a lone literal escape, 2
// output bytes each, and the encapsulation fallback only ever shrinks the
// result.
func maxCompressedLen(n int) int { return 2 * n }

// encapsulatedLen is the exact output size of escaping n bytes as verbatim
// runs with no dictionary matches at all: maxRunLen+2 bytes per full chunk,
// plus a short tail (a 1-byte tail costs 2 via the single-literal escape).
func encapsulatedLen(n int) int {
	size := n / maxRunLen * (maxRunLen + 2)
	switch rem := n % maxRunLen; {
	case rem == 0:
	case rem == 1:
		size += 2
	default:
		size += rem + 2
	}
	return size
}

// appendCompressed appends the encoded form of src to dst. A single pass
// emits dictionary codes and collects unmatched bytes into literal runs,
// flushed whenever a match or the end of input closes them. Inputs with
// scattered one-byte matches can tokenize to more bytes than escaping the
// whole input verbatim, so a final size check falls back to plain
// encapsulation, which keeps worst-case expansion at 2 bytes per 255-byte
// block.
func (c *Codebook) appendCompressed(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}
	base := len(dst)
	runStart := -1 // start of the open literal run, -1 when none
	var scratch [maxEntryLen]match

	for p := 0; p < len(src); {
		code, n := c.chooseToken(src, p, runStart >= 0, scratch[:0])
		if n == 0 {
			if runStart < 0 {
				runStart = p
			}
			p++
			continue
		}
		if runStart >= 0 {
			dst = appendLiteralRun(dst, src[runStart:p])
			runStart = -1
		}
		dst = append(dst, byte(code))
		p += n
	}
	if runStart >= 0 {
		dst = appendLiteralRun(dst, src[runStart:])
	}

	if len(dst)-base > encapsulatedLen(len(src)) {
		return appendLiteralRun(dst[:base], src)
	}
	return dst
}

// chooseToken picks the token to emit at src[p]: a dictionary match of n
// bytes, or a literal when n is 0. Greedy longest-match is the baseline. A
// strictly shorter match, or treating the byte as a literal, takes its place
// only when the window it opens covers at least as many source bytes for at
// most as many output bytes, better on one of the two. Consuming the single
// longest match can force a string of lone literal escapes that two shorter
// tokens would have avoided; the one-token lookahead catches exactly that.
// Ties keep the greedy choice, so equal inputs always encode identically.
func (c *Codebook) chooseToken(src []byte, p int, inRun bool, scratch []match) (code int16, n int) {
	matches := c.index.prefixMatches(src[p:], scratch)
	if len(matches) == 0 {
		return 0, 0
	}
	best := matches[len(matches)-1]
	bestOut, bestSrc := c.window(src, p, best.n, 1, 2)
	for i := len(matches) - 2; i >= 0; i-- {
		out, in := c.window(src, p, matches[i].n, 1, 2)
		if dominates(out, in, bestOut, bestSrc) {
			best, bestOut, bestSrc = matches[i], out, in
		}
	}
	// The literal candidate costs 1 byte inside an open run and 2 when it
	// has to open one. Either way the byte after it extends the run for 1.
	litCost := 2
	if inRun {
		litCost = 1
	}
	if out, in := c.window(src, p, 1, litCost, 1); dominates(out, in, bestOut, bestSrc) {
		return 0, 0
	}
	return best.code, best.n
}

// dominates reports whether a window spending out output bytes over srcN
// source bytes beats the incumbent: never worse on either count and strictly
// better on at least one.
func dominates(out, srcN, bestOut, bestSrc int) bool {
	return out <= bestOut && srcN >= bestSrc && (out < bestOut || srcN > bestSrc)
}

// window scores a candidate token consuming n bytes at p for emitCost output
// bytes, extending the view by the one token that follows it: the greedy
// match found right after the candidate, or a single literal byte priced at
// followLitCost.
func (c *Codebook) window(src []byte, p, n, emitCost, followLitCost int) (outBytes, srcBytes int) {
	outBytes, srcBytes = emitCost, n
	rest := src[p+n:]
	if len(rest) == 0 {
		return outBytes, srcBytes
	}
	if _, g := c.index.longestMatch(rest); g > 0 {
		return outBytes + 1, srcBytes + g
	}
	return outBytes + followLitCost, srcBytes + 1
}

// appendLiteralRun appends run escaped verbatim: the single-byte escape for
// a lone byte, otherwise length-prefixed chunks of at most maxRunLen bytes.
func appendLiteralRun(dst, run []byte) []byte {
	for len(run) > 0 {
		chunk := min(len(run), maxRunLen)
		if chunk == 1 {
			dst = append(dst, escLiteralOne, run[0])
		} else {
			dst = append(dst, escLiteralRun, byte(chunk))
			dst = append(dst, run[:chunk]...)
		}
		run = run[chunk:]
	}
	return dst
}
