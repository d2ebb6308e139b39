package resolve

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lintrig/lintrig/src/fileglob"
)

// Walker collects Python source files under a root directory.
type Walker struct {
	RootDir string
	Exclude []string // glob patterns from the document's exclude key
}

// Collect walks the root and returns slash-normalized relative paths of all
// .py and .pyi files, sorted. Hidden directories and excluded paths are
// skipped.
func (w *Walker) Collect() ([]string, error) {
	var files []string

	err := filepath.WalkDir(w.RootDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(w.RootDir, p)
		if err != nil {
			return err
		}

		if d.IsDir() {
			base := filepath.Base(rel)
			if strings.HasPrefix(base, ".") && base != "." {
				return filepath.SkipDir
			}
			if rel != "." && w.isExcluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		ext := filepath.Ext(rel)
		if ext != ".py" && ext != ".pyi" {
			return nil
		}

		if w.isExcluded(rel) {
			return nil
		}

		files = append(files, fileglob.Normalize(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (w *Walker) isExcluded(rel string) bool {
	if len(w.Exclude) == 0 {
		return false
	}
	norm := fileglob.Normalize(rel)
	for _, pattern := range w.Exclude {
		if fileglob.MatchPath(pattern, norm) {
			return true
		}
	}
	return false
}
