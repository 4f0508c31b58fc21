package pdfio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFirstPageTextMissingFile(t *testing.T) {
	_, err := FirstPageText(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFirstPageTextMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	// The parser must not panic out of the call; malformed input comes
	// back as an error the batch can skip past.
	_, err := FirstPageText(path)
	if err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestFirstPageTextTruncatedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := FirstPageText(path); err == nil {
		t.Fatal("expected error for truncated file")
	}
}
