package audiostore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Имена генерим сами, поэтому всё, что не похоже на <uuid>.mp3 — чужое.
var filenameRe = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}\.mp3$`)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// NewPath выдаёт свежее имя для записи. Коллизий нет: uuid на каждый вызов.
func (s *Store) NewPath() (string, string) {
	filename := uuid.NewString() + ".mp3"
	return filename, filepath.Join(s.dir, filename)
}

func (s *Store) Open(filename string) (io.ReadCloser, error) {
	if !ValidFilename(filename) {
		return nil, os.ErrNotExist
	}
	return os.Open(filepath.Join(s.dir, filename))
}

func (s *Store) Remove(filename string) error {
	if !ValidFilename(filename) {
		return os.ErrNotExist
	}
	return os.Remove(filepath.Join(s.dir, filename))
}

// Sweep удаляет файлы старше ttl. Возвращает число удалённых.
func (s *Store) Sweep(ttl time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read audio dir: %w", err)
	}

	cutoff := time.Now().Add(-ttl)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".mp3") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err == nil {
			removed++
		}
	}

	return removed, nil
}

func ValidFilename(name string) bool {
	return filenameRe.MatchString(name)
}
