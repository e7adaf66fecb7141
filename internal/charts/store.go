package charts

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// cacheFileSuffix is appended to the post's stem to name its side file.
const cacheFileSuffix = "_datawrapper.json"

// cacheFilePermissions: rw-r--r--
const cacheFilePermissions = 0o644

// Store loads and saves the chart mapping of one document.
// The mapping goes from canonical table key to chart id.
type Store interface {
	Load(docID string) (map[string]string, error)
	Save(docID string, entries map[string]string) error
}

// Compile-time interface checks.
var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// FileStore persists each document's mapping as a JSON object in a file
// next to the document. The document id is the post's file path.
type FileStore struct{}

// NewFileStore creates a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// CachePath returns the side-file path for a post: "dir/post.md" maps to
// "dir/post_datawrapper.json".
func CachePath(postPath string) string {
	dir := filepath.Dir(postPath)
	base := filepath.Base(postPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+cacheFileSuffix)
}

// Load reads the mapping for docID. A missing file is an empty mapping.
func (s *FileStore) Load(docID string) (map[string]string, error) {
	if docID == "" {
		return nil, ErrNoDocumentID
	}
	path := CachePath(docID)

	data, err := os.ReadFile(path) // #nosec G304 -- path derived from the post path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrCacheRead, err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCacheRead, path, err)
	}
	return entries, nil
}

// Save overwrites the side file for docID with entries.
func (s *FileStore) Save(docID string, entries map[string]string) error {
	if docID == "" {
		return ErrNoDocumentID
	}
	if entries == nil {
		entries = map[string]string{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	if err := os.WriteFile(CachePath(docID), data, cacheFilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return nil
}

// MemoryStore keeps mappings in memory. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[string]string)}
}

// Load returns a copy of the mapping stored for docID.
func (s *MemoryStore) Load(docID string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string, len(s.docs[docID]))
	maps.Copy(out, s.docs[docID])
	return out, nil
}

// Save replaces the mapping stored for docID with a copy of entries.
func (s *MemoryStore) Save(docID string, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[docID] = maps.Clone(entries)
	return nil
}
