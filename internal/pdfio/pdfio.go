// Package pdfio reads article text out of PDF files.
package pdfio

import (
	"fmt"
	"os"
	"strings"

	rpdf "rsc.io/pdf"
)

// FirstPageText extracts the plain text of the first page of the PDF at
// path. Text runs on the same baseline are concatenated; a baseline
// change starts a new line. The underlying parser panics on malformed
// files, so panics are recovered and returned as errors, which the batch
// treats as a per-file failure.
func FirstPageText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing %s: %v", path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	reader, err := rpdf.NewReader(f, fi.Size())
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if reader.NumPage() < 1 {
		return "", fmt.Errorf("%s has no pages", path)
	}

	page := reader.Page(1)
	if page.V.IsNull() {
		return "", fmt.Errorf("%s: first page is empty", path)
	}

	var b strings.Builder
	lastY := -1.0
	for _, t := range page.Content().Text {
		if b.Len() > 0 && t.Y != lastY {
			b.WriteByte('\n')
		}
		b.WriteString(t.S)
		lastY = t.Y
	}

	return b.String(), nil
}
