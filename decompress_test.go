package smaz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecompressEmpty(t *testing.T) {
	got, err := Decompress(nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDecompressDictionaryCodes(t *testing.T) {
	got, err := Decompress([]byte{0})
	require.NoError(t, err)
	require.Equal(t, []byte(" "), got)

	got, err = Decompress([]byte{1, 0, 1})
	require.NoError(t, err)
	require.Equal(t, []byte("the the"), got)
}

func TestDecompressLiteralEscapes(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"single", []byte{escLiteralOne, 'x'}, "x"},
		{"run", []byte{escLiteralRun, 3, 'a', 'b', 'c'}, "abc"},
		{"run_then_code", []byte{escLiteralRun, 2, 'x', 'y', 1}, "xythe"},
		// Counts of 0 and 1 never come out of Compress but decode fine.
		{"empty_run", []byte{escLiteralRun, 0}, ""},
		{"one_byte_run", []byte{escLiteralRun, 1, 'q'}, "q"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decompress(tc.in)
			require.NoError(t, err)
			require.Equal(t, []byte(tc.want), got)
		})
	}
}

func TestDecompressRejectsCorrupt(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
	}{
		{"bare_single_escape", []byte{escLiteralOne}},
		{"bare_run_escape", []byte{escLiteralRun}},
		{"short_run", []byte{escLiteralRun, 10, 'a', 'b'}},
		{"run_count_past_end", []byte{1, escLiteralRun, 3, 'a'}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decompress(tc.in)
			require.ErrorIs(t, err, ErrCorrupt)
			require.Nil(t, got)
		})
	}
}

func TestDecompressRejectsUnknownCode(t *testing.T) {
	// The built-in table fills every code value, so an out-of-range code
	// needs a smaller codebook.
	cb, err := NewCodebookStrings([]string{"aa", "bb"})
	require.NoError(t, err)

	got, err := cb.DecompressAll([]byte{1, 7})
	require.ErrorIs(t, err, ErrCorrupt)
	require.Nil(t, got)
}

func TestDecompressErrorsCarryOffset(t *testing.T) {
	_, err := Decompress([]byte{1, 1, escLiteralOne})
	require.ErrorIs(t, err, ErrCorrupt)
	require.ErrorContains(t, err, "offset 2")
}

func TestDecompressBufReuse(t *testing.T) {
	cb := Default()
	comp := cb.CompressAll([]byte("a larger piece of text that the decoder expands"))

	buf := make([]byte, 0, 512)
	out, err := cb.Decompress(buf, comp)
	require.NoError(t, err)
	again, err := cb.Decompress(out, comp)
	require.NoError(t, err)
	require.Equal(t, out, again)
	require.Same(t, &out[0], &again[0])
}

func TestDecompressString(t *testing.T) {
	cb := Default()
	comp := cb.CompressAll([]byte("string in, bytes out"))

	got, err := cb.DecompressString(string(comp))
	require.NoError(t, err)
	require.Equal(t, []byte("string in, bytes out"), got)
}

func BenchmarkDecompress(b *testing.B) {
	inputs := []struct {
		name string
		data []byte
	}{
		{"short_16B", []byte("see you tomorrow")},
		{"url_30B", []byte("http://github.com/axiomhq/smaz")},
		{"english_1KB", bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 23)},
	}

	cb := Default()
	for _, input := range inputs {
		comp := cb.CompressAll(input.data)

		b.Run(input.name+"/alloc", func(b *testing.B) {
			b.SetBytes(int64(len(input.data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := cb.DecompressAll(comp); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(input.name+"/reuse", func(b *testing.B) {
			buf := make([]byte, 0, len(input.data)*2)
			b.SetBytes(int64(len(input.data)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var err error
				buf, err = cb.Decompress(buf, comp)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
