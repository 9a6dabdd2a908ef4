package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/ini.v1"
)

// DefaultSection is the INI section holding preferences.
const DefaultSection = "preferences"

// FileStore keeps preferences in an INI file:
//
//	[preferences]
//	theme = dark
//
// The file is re-read on every Get so that edits made by another process
// (or another carlot instance) are picked up.
type FileStore struct {
	path    string
	section string
	mu      sync.Mutex
}

// NewFileStore creates a store backed by the INI file at path.
// The file is created on the first Set.
func NewFileStore(path string) *FileStore {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &FileStore{path: path, section: DefaultSection}
}

// Path returns the INI file location.
func (f *FileStore) Path() string {
	return f.path
}

// Get implements Store. A missing file is the same as a missing key.
func (f *FileStore) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cfg, err := f.load()
	if err != nil {
		return "", false, err
	}

	sec := cfg.Section(f.section)
	if !sec.HasKey(key) {
		return "", false, nil
	}
	return sec.Key(key).String(), true, nil
}

// Set implements Store.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	cfg, err := f.load()
	if err != nil {
		return err
	}
	cfg.Section(f.section).Key(key).SetValue(value)

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("prefs: cannot create directory for %s: %w", f.path, err)
	}
	if err := cfg.SaveTo(f.path); err != nil {
		return fmt.Errorf("prefs: cannot save %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStore) load() (*ini.File, error) {
	if _, err := os.Stat(f.path); errors.Is(err, fs.ErrNotExist) {
		return ini.Empty(), nil
	}
	cfg, err := ini.Load(f.path)
	if err != nil {
		return nil, fmt.Errorf("prefs: cannot load %s: %w", f.path, err)
	}
	return cfg, nil
}
