package smaz

import (
	"fmt"
)

func Example() {
	inputs := []string{
		"this is a small string",
		"http://google.com",
	}
	for _, input := range inputs {
		comp := Compress([]byte(input))
		orig, err := Decompress(comp)
		if err != nil {
			panic(err)
		}
		fmt.Println(string(orig))
	}
	// Output:
	// this is a small string
	// http://google.com
}

func ExampleNewCodebookStrings() {
	cb, err := NewCodebookStrings([]string{"GET ", "/index", " HTTP/1"})
	if err != nil {
		panic(err)
	}
	comp := cb.CompressAll([]byte("GET /index HTTP/1"))
	orig, err := cb.DecompressAll(comp)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d -> %d bytes: %s\n", len(orig), len(comp), orig)
	// Output:
	// 17 -> 3 bytes: GET /index HTTP/1
}
