// Package docstore is a file-backed keyed document collection, one JSON file
// per collection. It offers point lookup, insert-if-absent and upsert with
// single-record atomicity only: there are no cross-key transactions and no
// coordination between a caller's read and its subsequent write.
package docstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// SchemaVersion is the per-collection version tag written into every file.
const SchemaVersion = "1.0"

// ErrDuplicateKey is returned by Insert when a record with the same key is
// already present.
var ErrDuplicateKey = errors.New("record with this key already exists")

// Document is anything the store can key.
type Document interface {
	DocumentID() string
}

// Collection is a keyed set of documents of one type persisted to a single
// JSON file. All exported methods are safe for concurrent use, but each call
// is an independent critical section: a FindByID followed by an Upsert can
// interleave with another caller's write on the same key.
type Collection[T Document] struct {
	mu   sync.Mutex
	path string
	data fileLayout[T]
}

type fileLayout[T Document] struct {
	SchemaVersion string       `json:"schemaVersion"`
	Records       map[string]T `json:"records"`
}

// Open loads the collection file under dir, creating an empty collection if
// the file does not exist. Opening an existing collection is a benign no-op
// rather than an error, so every service can attempt creation at startup.
func Open[T Document](dir, name string) (*Collection[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	c := &Collection[T]{
		path: filepath.Join(dir, name+".json"),
		data: fileLayout[T]{
			SchemaVersion: SchemaVersion,
			Records:       make(map[string]T),
		},
	}

	f, err := os.Open(c.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := c.flush(); err != nil {
			return nil, err
		}
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open collection %s: %w", name, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&c.data); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", name, err)
	}
	if c.data.Records == nil {
		c.data.Records = make(map[string]T)
	}
	return c, nil
}

// FindByID returns the record stored under id, or false when absent.
func (c *Collection[T]) FindByID(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.data.Records[id]
	return doc, ok
}

// Insert stores doc only if no record with the same key exists; otherwise it
// returns ErrDuplicateKey. The check and the write happen under one lock, so
// Insert is a usable conflict signal for create paths that want one.
func (c *Collection[T]) Insert(doc T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := doc.DocumentID()
	if _, ok := c.data.Records[id]; ok {
		return fmt.Errorf("insert %s: %w", id, ErrDuplicateKey)
	}
	c.data.Records[id] = doc
	return c.flush()
}

// Upsert stores doc under its key, replacing any existing record. Last
// writer wins; there is no version check.
func (c *Collection[T]) Upsert(doc T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Records[doc.DocumentID()] = doc
	return c.flush()
}

// All returns every record in the collection.
func (c *Collection[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	docs := make([]T, 0, len(c.data.Records))
	for _, doc := range c.data.Records {
		docs = append(docs, doc)
	}
	return docs
}

// flush writes the collection to a temp file and renames it over the real
// one, so a crash mid-write never corrupts the existing file. Callers must
// hold c.mu.
func (c *Collection[T]) flush() error {
	tmp := c.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("write collection: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close collection file: %w", err)
	}
	return os.Rename(tmp, c.path)
}
