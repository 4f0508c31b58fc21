package rename

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()

	got := OutputPath(dir, "20250210", "The-New-York-Times", "Some-Title", ".pdf")
	want := filepath.Join(dir, "20250210_The-New-York-Times_Some-Title.pdf")
	if got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
}

func TestOutputPathAppendsCounterOnCollision(t *testing.T) {
	dir := t.TempDir()
	base := "20250210_WIRED_Some-Title"

	touch(t, filepath.Join(dir, base+".pdf"))
	got := OutputPath(dir, "20250210", "WIRED", "Some-Title", ".pdf")
	if want := filepath.Join(dir, base+"_1.pdf"); got != want {
		t.Fatalf("after 1 collision: got %q, want %q", got, want)
	}

	touch(t, filepath.Join(dir, base+"_1.pdf"))
	touch(t, filepath.Join(dir, base+"_2.pdf"))
	got = OutputPath(dir, "20250210", "WIRED", "Some-Title", ".pdf")
	if want := filepath.Join(dir, base+"_3.pdf"); got != want {
		t.Fatalf("after 3 collisions: got %q, want %q", got, want)
	}
}

func TestOutputPathNeverReturnsExisting(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		got := OutputPath(dir, "no-date", "no-publisher", "title", ".pdf")
		if _, err := os.Stat(got); err == nil {
			t.Fatalf("OutputPath returned existing path %q", got)
		}
		touch(t, got)
	}
}
