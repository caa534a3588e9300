// Package blob keeps the uploaded original files on the local corpus
// directory, named by their canonical corpus filename.
package blob

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store writes uploaded originals under a single base directory.
type Store struct {
	dir string
}

// New creates a blob store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("files dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create files dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save writes data under the given filename. The name is flattened to its
// base component so payload-controlled paths cannot escape the corpus dir.
func (s *Store) Save(filename string, data []byte) error {
	name := filepath.Base(filename)
	if name == "." || name == ".." || name == string(filepath.Separator) || strings.TrimSpace(name) == "" {
		return fmt.Errorf("invalid filename %q", filename)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
