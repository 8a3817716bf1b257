// Package cache keeps the conversion results of source files on disk so
// unchanged files are not converted again.
package cache

import (
	"crypto/md5"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gnolang/asciimath/check"
)

const cacheFileName = "asciimath_cache.gob"

// Entry is the stored result for one source file.
type Entry struct {
	Hash         string // md5 of the file content
	Settings     string // fingerprint of the options the output was rendered with
	Output       string // path of the written document
	Formulas     int
	Issues       []check.Issue
	CreatedAt    time.Time
	LastAccessed time.Time
}

type Cache struct {
	Dir     string
	entries map[string]Entry
	mutex   sync.Mutex
	maxAge  time.Duration // zero means entries never expire
}

// New opens the cache stored in dir, creating the directory if needed.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	c := &Cache{
		Dir:     dir,
		entries: make(map[string]Entry),
	}
	if err := c.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}
	return c, nil
}

func (c *Cache) load() error {
	file, err := os.Open(filepath.Join(c.Dir, cacheFileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(&c.entries); err != nil {
		return fmt.Errorf("failed to decode cache file: %w", err)
	}
	return nil
}

func (c *Cache) save() error {
	file, err := os.Create(filepath.Join(c.Dir, cacheFileName))
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(c.entries); err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}
	return nil
}

// Hash returns the key Get and Set compare file contents by.
func Hash(content []byte) string {
	return fmt.Sprintf("%x", md5.Sum(content))
}

// Set stores the entry for filename and writes the cache to disk.
func (c *Cache) Set(filename string, entry Entry) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	entry.CreatedAt = now
	entry.LastAccessed = now
	c.entries[filename] = entry

	return c.save()
}

// Get returns the entry for filename if it was rendered from content with
// the same hash and settings.
func (c *Cache) Get(filename, hash, settings string) (Entry, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, ok := c.entries[filename]
	if !ok {
		return Entry{}, false
	}
	if entry.Hash != hash || entry.Settings != settings || c.expired(entry) {
		delete(c.entries, filename)
		return Entry{}, false
	}

	entry.LastAccessed = time.Now()
	c.entries[filename] = entry
	return entry, true
}

func (c *Cache) expired(entry Entry) bool {
	return c.maxAge > 0 && time.Since(entry.CreatedAt) > c.maxAge
}

// SetMaxAge makes Get drop entries created more than d ago. Zero keeps
// entries until their file changes.
func (c *Cache) SetMaxAge(d time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.maxAge = d
}

// InvalidateAll drops every entry.
func (c *Cache) InvalidateAll() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]Entry)
	return c.save()
}
