package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// illegalChars are characters rejected by common filesystems, plus line
// breaks which would corrupt log output.
const illegalChars = "<>:\"/\\|?*\n\r"

// Sanitize replaces every illegal filename character in stem with an
// underscore and trims surrounding whitespace. Runs of illegal characters
// collapse into a single underscore.
func Sanitize(stem string) string {
	var b strings.Builder
	b.Grow(len(stem))
	lastReplaced := false
	for _, r := range stem {
		if strings.ContainsRune(illegalChars, r) {
			if !lastReplaced {
				b.WriteRune('_')
				lastReplaced = true
			}
			continue
		}
		lastReplaced = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// Allocator hands out collision-free output stems for one run. It tracks
// stems it has already allocated in-memory and checks the output directory
// on every allocation, so repeated runs against the same output directory
// never overwrite earlier results.
type Allocator struct {
	outputDir string
	exts      []string
	counters  map[string]int // base stem → next counter to try
}

// New creates an allocator for outputDir. exts is the full set of output
// extensions (with leading dot) a stem may be combined with; a candidate is
// taken only when no file with any of these extensions exists.
func New(outputDir string, exts []string) *Allocator {
	return &Allocator{
		outputDir: outputDir,
		exts:      exts,
		counters:  make(map[string]int),
	}
}

// Allocate sanitizes rawStem and returns a stem that collides neither with
// a stem allocated earlier this run nor with any existing file in the
// output directory. The directory is re-checked on every call because each
// extraction changes its contents.
func (a *Allocator) Allocate(rawStem string) string {
	base := Sanitize(rawStem)
	if base == "" {
		base = "untitled"
	}

	counter := a.counters[base]
	candidate := a.candidate(base, counter)
	for a.existsOnDisk(candidate) {
		counter++
		candidate = a.candidate(base, counter)
	}

	// The next request for the same base must start past this counter,
	// otherwise it would race the file we are about to write.
	a.counters[base] = counter + 1

	return candidate
}

func (a *Allocator) candidate(base string, counter int) string {
	if counter == 0 {
		return base
	}
	return fmt.Sprintf("%s_%d", base, counter)
}

func (a *Allocator) existsOnDisk(stem string) bool {
	for _, ext := range a.exts {
		if _, err := os.Stat(filepath.Join(a.outputDir, stem+ext)); err == nil {
			return true
		}
	}
	return false
}
