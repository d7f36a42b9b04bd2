package preview

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/svgmotion/svgmotion/pkg/fsutil"
)

// Store is the cold tier behind the in-memory index: it maps a cache key to
// a location and holds the rendered bytes there.
type Store interface {
	Locate(key string) string
	Exists(key string) (bool, error)
	Write(key string, data []byte) error
	Clear() error
}

const fileExt = ".svg"

// FSStore keeps one file per key in a directory.
type FSStore struct {
	dir string
}

// NewFSStore returns a store rooted at dir. The directory is created on first write.
func NewFSStore(dir string) *FSStore {
	return &FSStore{dir: dir}
}

// Dir returns the store's root directory.
func (s *FSStore) Dir() string {
	return s.dir
}

func (s *FSStore) Locate(key string) string {
	return filepath.Join(s.dir, key+fileExt)
}

func (s *FSStore) Exists(key string) (bool, error) {
	info, err := os.Stat(s.Locate(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", key, err)
	}
	return info.Mode().IsRegular(), nil
}

func (s *FSStore) Write(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create preview dir: %w", err)
	}
	return fsutil.AtomicWrite(s.Locate(key), data, 0644)
}

func (s *FSStore) Clear() error {
	if _, err := fsutil.RemoveMatching(s.dir, "*"+fileExt); err != nil {
		return fmt.Errorf("clear preview dir: %w", err)
	}
	return nil
}
