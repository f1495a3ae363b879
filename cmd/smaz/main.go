// Command smaz is a stdin/stdout filter around the smaz codec.
//
// Usage:
//
//	smaz < plain > compressed
//	smaz -d < compressed > plain
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/axiomhq/smaz"
)

var dec = flag.Bool("d", false, "decompress instead of compress")

func main() {
	flag.Parse()

	var err error
	if *dec {
		err = decompressInput()
	} else {
		err = compressInput()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func compressInput() error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if _, err := os.Stdout.Write(smaz.Compress(data)); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}

func decompressInput() error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	decompressed, err := smaz.Decompress(data)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(decompressed); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}
