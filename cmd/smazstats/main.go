// Command smazstats reports how well the smaz codec performs on a corpus of
// short strings, one per line. It prints aggregate and per-line extremes,
// the most used codebook entries, and can render a scatter chart of line
// length against compressed size.
//
// Usage:
//
//	smazstats [-chart out.svg] [-top n] [corpus.txt]
//
// With no file argument the corpus is read from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/axiomhq/smaz"
)

var (
	chartPath = flag.String("chart", "", "write an SVG scatter of line length vs compressed size")
	topN      = flag.Int("top", 10, "number of codebook entries to list")
)

func main() {
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	stats, err := scanCorpus(in)
	if err != nil {
		log.Fatal(err)
	}
	stats.report(os.Stdout, *topN)

	if *chartPath != "" {
		if err := writeSizeChart(*chartPath, stats.sizeByLen); err != nil {
			log.Fatal(err)
		}
	}
}

// corpusStats accumulates per-line compression results.
type corpusStats struct {
	lines      int
	inBytes    int
	outBytes   int
	expanded   int // lines whose compressed form is larger than the input
	bestRatio  float64
	bestLine   string
	worstRatio float64
	worstLine  string
	codeCount  [256]int
	sizeByLen  map[int][2]int // line length -> {total compressed, lines}
}

func scanCorpus(r io.Reader) (*corpusStats, error) {
	stats := &corpusStats{
		bestRatio:  -1,
		worstRatio: -1,
		sizeByLen:  make(map[int][2]int),
	}
	cb := smaz.Default()

	var buf []byte
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		buf = cb.Compress(buf, line)

		stats.lines++
		stats.inBytes += len(line)
		stats.outBytes += len(buf)
		if len(buf) > len(line) {
			stats.expanded++
		}
		countCodes(buf, &stats.codeCount)

		acc := stats.sizeByLen[len(line)]
		acc[0] += len(buf)
		acc[1]++
		stats.sizeByLen[len(line)] = acc

		ratio := float64(len(buf)) / float64(len(line))
		if stats.bestRatio < 0 || ratio < stats.bestRatio {
			stats.bestRatio, stats.bestLine = ratio, clip(string(line))
		}
		if stats.worstRatio < 0 || ratio > stats.worstRatio {
			stats.worstRatio, stats.worstLine = ratio, clip(string(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	if stats.lines == 0 {
		return nil, fmt.Errorf("empty corpus")
	}
	return stats, nil
}

// countCodes tallies dictionary code usage in one compressed stream,
// skipping escape payloads so literal bytes are never miscounted as codes.
func countCodes(stream []byte, counts *[256]int) {
	for p := 0; p < len(stream); {
		b := stream[p]
		counts[b]++
		switch {
		case b == 254 && p+1 < len(stream):
			p += 2
		case b == 255 && p+1 < len(stream):
			p += 2 + int(stream[p+1])
		default:
			p++
		}
	}
}

func (s *corpusStats) report(w io.Writer, top int) {
	saved := s.inBytes - s.outBytes
	fmt.Fprintf(w, "Lines:             %d\n", s.lines)
	fmt.Fprintf(w, "Original bytes:    %d\n", s.inBytes)
	fmt.Fprintf(w, "Compressed bytes:  %d (%.1f%%)\n", s.outBytes, 100*float64(s.outBytes)/float64(s.inBytes))
	fmt.Fprintf(w, "Saved:             %d bytes\n", saved)
	fmt.Fprintf(w, "Expanded lines:    %d of %d\n", s.expanded, s.lines)
	fmt.Fprintf(w, "Best line:         %.1f%%  %q\n", 100*s.bestRatio, s.bestLine)
	fmt.Fprintf(w, "Worst line:        %.1f%%  %q\n", 100*s.worstRatio, s.worstLine)

	type usage struct {
		code  byte
		count int
	}
	used := make([]usage, 0, 254)
	for code, count := range s.codeCount {
		if count == 0 || code > 253 {
			continue
		}
		used = append(used, usage{code: byte(code), count: count})
	}
	sort.Slice(used, func(i, j int) bool {
		if used[i].count != used[j].count {
			return used[i].count > used[j].count
		}
		return used[i].code < used[j].code
	})
	fmt.Fprintf(w, "Top codebook entries:\n")
	for i, u := range used {
		if i == top {
			break
		}
		entry, _ := smaz.Default().Entry(u.code)
		fmt.Fprintf(w, "  %3d  %-9q %d\n", u.code, entry, u.count)
	}
}

// writeSizeChart renders average compressed size per line length as an SVG
// scatter.
func writeSizeChart(path string, sizeByLen map[int][2]int) error {
	keys := make([]int, 0, len(sizeByLen))
	for k := range sizeByLen {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	xvals := make([]float64, 0, len(keys))
	yvals := make([]float64, 0, len(keys))
	for _, k := range keys {
		acc := sizeByLen[k]
		xvals = append(xvals, float64(k))
		yvals = append(yvals, float64(acc[0])/float64(acc[1]))
	}
	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "line length (bytes)"},
		YAxis: chart.YAxis{Name: "avg compressed (bytes)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return graph.Render(chart.SVG, fh)
}

func clip(s string) string {
	const limit = 40
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
