package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileKV persists values as a single JSON document, rewritten on every
// mutation. Small enough to make that cheap: the client stores three keys.
type FileKV struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileKV loads the document at path, creating parent directories if
// missing. A missing file is an empty store.
func NewFileKV(path string) (*FileKV, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	kv := &FileKV{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return kv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &kv.values); err != nil {
			return nil, fmt.Errorf("parse storage file: %w", err)
		}
	}
	return kv, nil
}

func (f *FileKV) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.flush()
}

func (f *FileKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flush()
}

func (f *FileKV) Close() error { return nil }

// flush writes via a temp file and rename so a crash never leaves a
// half-written document. Caller holds the lock.
func (f *FileKV) flush() error {
	data, err := json.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}
	return nil
}
