package file

import (
	"os"
	"path/filepath"
)

// Tap is a set of files, matched by a glob
type Tap struct {
	glob string
}

// CreateTap is a factory for Taps
func CreateTap(glob string) *Tap {
	return &Tap{glob}
}

// Identifier returns a description of this Tap, for logging
func (t *Tap) Identifier() string {
	return "file:" + t.glob
}

// SizeHint returns the total number of bytes stored in the files matched by this Tap.
// The size is unknown if the glob is invalid, matches nothing, or a file cannot be inspected.
func (t *Tap) SizeHint() (int64, bool) {
	matches, err := filepath.Glob(t.glob)
	if err != nil || len(matches) == 0 {
		return 0, false
	}
	var total int64
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return 0, false
		}
		if info.IsDir() {
			continue
		}
		total += info.Size()
	}
	return total, true
}
