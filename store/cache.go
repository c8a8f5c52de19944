package store

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/WhatDothLife/triads/internal/log"
)

// Cache is a directory-rooted, append-only line store keyed by relative
// path, used to memoize triad enumeration results across runs the way
// original_source/src/triad.rs's Cache/FileParser do (<constraint>/cores_<n>,
// nodes/pairs_<n>, arms/arms<n>). It also keeps an in-memory mirror of
// every key it has served this process, so repeated lookups within one
// run never re-read the filesystem.
//
// Cache is safe for concurrent use: the enumeration workers in package
// triad append discovered rows from multiple goroutines.
type Cache struct {
	dir string

	mu     sync.Mutex
	memory map[string][]string
}

// NewCache returns a Cache rooted at dir. dir is created lazily on first
// write, not at construction time.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir, memory: make(map[string][]string)}
}

// ReadLines returns the newline-delimited records stored under key,
// reading through to disk (and populating the in-memory mirror) on a
// cache miss. Returns ErrNotFound if key has never been written.
func (c *Cache) ReadLines(key string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lines, ok := c.memory[key]; ok {
		return lines, nil
	}

	path := filepath.Join(c.dir, key)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "store: opening %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "store: reading %s", path)
	}

	c.memory[key] = lines
	return lines, nil
}

// AppendLine appends line to the file backing key, creating both the
// parent directory and the file as needed. If key is already mirrored in
// memory, the mirror is updated so subsequent ReadLines calls within this
// process observe the line without a re-read; otherwise the next
// ReadLines reads the whole file. A write failure is logged as a warning
// and returned to the caller.
func (c *Cache) AppendLine(key, line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	path := filepath.Join(c.dir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.L().WithError(err).WithField("path", path).Warn("store: could not create cache directory")
		return errors.Wrapf(err, "store: creating directory for %s", path)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.L().WithError(err).WithField("path", path).Warn("store: could not open cache file for append")
		return errors.Wrapf(err, "store: opening %s for append", path)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		log.L().WithError(err).WithField("path", path).Warn("store: could not write to cache file")
		return errors.Wrapf(err, "store: writing to %s", path)
	}

	if lines, ok := c.memory[key]; ok {
		c.memory[key] = append(lines, line)
	}
	return nil
}

// SplitFields splits a cache line on commas, a small helper shared by
// every record format this package reads back (triads, pairs, arms).
func SplitFields(line string) []string {
	return strings.Split(line, ",")
}
