package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/davidwu111/extract-livp/pkg/types"
)

// ArchiveExtension is the container extension this tool processes.
const ArchiveExtension = ".livp"

type Scanner struct {
	ext string
}

func New() *Scanner {
	return &Scanner{ext: ArchiveExtension}
}

// Scan walks root recursively and returns every .livp archive found, in
// walk order. Files inside the output directory are the caller's problem;
// Scan does not special-case any subdirectory.
func (s *Scanner) Scan(root string) ([]types.FileEntry, error) {
	var entries []types.FileEntry

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), s.ext) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		name := d.Name()
		entries = append(entries, types.FileEntry{
			Path:    path,
			Name:    name,
			Stem:    strings.TrimSuffix(name, filepath.Ext(name)),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})

		return nil
	})

	return entries, err
}
