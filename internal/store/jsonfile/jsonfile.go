// Package jsonfile implements the store contract on a single JSON document.
// Every operation is a whole-file read-modify-write under one mutex, so a
// single process may serve concurrent requests safely; the file itself is
// replaced atomically via rename.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/models"
	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/pkg/store"
	"github.com/qri-io/jsonschema"
)

// documentSchema describes the required shape of the storage document.
// A file that fails validation is rejected on open rather than silently
// reinterpreted.
const documentSchema = `{
	"type": "object",
	"required": ["portfolio", "catalogue"],
	"properties": {
		"portfolio": {"type": "array"},
		"catalogue": {"type": "array"},
		"contact": {"type": ["object", "null"]},
		"admin": {"type": ["object", "null"]}
	}
}`

type document struct {
	Portfolio []models.PortfolioItem `json:"portfolio"`
	Catalogue []models.CatalogueItem `json:"catalogue"`
	Contact   *models.Contact        `json:"contact"`
	Admin     *adminRecord           `json:"admin"`
}

// adminRecord is the document's own admin shape. models.Admin hides the
// secret from API responses with json:"-", which would also strip it from
// the document on write, so the stored form needs its own tags.
type adminRecord struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    int64  `json:"created_at"`
}

type Store struct {
	path   string
	logger *slog.Logger
	schema *jsonschema.Schema

	mu sync.Mutex
}

var _ store.Store = (*Store)(nil)

// New opens (or creates) the document at path and validates its shape.
func New(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(documentSchema), rs); err != nil {
		return nil, fmt.Errorf("compile document schema: %w", err)
	}

	s := &Store{path: path, logger: logger, schema: rs}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(&document{
			Portfolio: []models.PortfolioItem{},
			Catalogue: []models.CatalogueItem{},
		}); err != nil {
			return nil, fmt.Errorf("initialize storage document: %w", err)
		}
		return s, nil
	}

	// existing file must parse and validate
	if _, err := s.read(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return nil }

// read loads and validates the document. Callers must hold s.mu when the
// result is going to be mutated and written back.
func (s *Store) read(ctx context.Context) (*document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read storage document: %w", err)
	}

	verrs, err := s.schema.ValidateBytes(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("validate storage document: %w", err)
	}
	if len(verrs) > 0 {
		return nil, fmt.Errorf("storage document %s is malformed: %s", s.path, verrs[0].Error())
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode storage document: %w", err)
	}
	return &doc, nil
}

// write replaces the document atomically: marshal to a temp file in the same
// directory, then rename over the target.
func (s *Store) write(doc *document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".storage-*.json")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp document: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace storage document: %w", err)
	}
	return nil
}

// update runs fn against the current document under the store lock and
// persists the result when fn reports a change.
func (s *Store) update(ctx context.Context, fn func(doc *document) (changed bool, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read(ctx)
	if err != nil {
		return err
	}
	changed, err := fn(doc)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.write(doc)
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

func normalizeWindow(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	return skip, limit
}

// nextPortfolioID returns one greater than the highest assigned id.
func nextPortfolioID(doc *document) int64 {
	var max int64
	for _, p := range doc.Portfolio {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func nextCatalogueID(doc *document) int64 {
	var max int64
	for _, c := range doc.Catalogue {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
