package rename

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputPath returns a path inside dir for the renamed file that does not
// exist at the moment of the call. The first candidate is
// "{date}_{publisher}_{title}{ext}"; on collision a counter is appended
// before the extension: "..._1", "..._2", and so on. The existence check
// here and the move that follows are not atomic: a concurrent writer
// creating the same name in between can still collide. Known race,
// accepted.
func OutputPath(dir, date, publisher, title, ext string) string {
	base := fmt.Sprintf("%s_%s_%s", date, publisher, title)

	candidate := filepath.Join(dir, base+ext)
	for count := 1; ; count++ {
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, count, ext))
	}
}
