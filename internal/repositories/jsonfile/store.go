package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/SscSPs/macro_dashboard_app/internal/apperrors"
	"github.com/SscSPs/macro_dashboard_app/internal/models"
	"github.com/pkg/errors"
)

// Document is the whole persisted state. Every mutation rewrites it wholesale.
type Document struct {
	ExchangeRates []models.ExchangeRate      `json:"exchangeRates"`
	Indicators    []models.EconomicIndicator `json:"indicators"`
	Charts        []models.ChartDataPoint    `json:"charts"`
	Market        []models.MarketQuote       `json:"market"`
	News          []models.NewsItem          `json:"news"`
}

// Store reads and writes the dashboard data file.
//
// Mutations are read-modify-write cycles over the whole file. They are serialized
// inside one process, but two processes sharing a file can still lose writes: there
// is no cross-process lock.
type Store struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for UpdatedAt and PublishedAt defaults.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore prepares a store backed by path, creating its directory if needed.
// The file itself is created on first write.
func NewStore(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("data file path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewStorageError("failed to prepare data directory", errors.Wrap(err, "create data dir"))
	}

	s := &Store{path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the data file location.
func (s *Store) Path() string {
	return s.path
}

// view loads the current document and hands it to fn.
func (s *Store) view(ctx context.Context, fn func(doc *Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// update loads the document, applies fn and writes the result back. Nothing is
// written when fn fails.
func (s *Store) update(ctx context.Context, fn func(doc *Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *Store) load() (*Document, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Document{}, nil
		}
		return nil, apperrors.NewStorageError("failed to read data file", errors.Wrap(err, "read data file"))
	}

	doc := &Document{}
	if len(payload) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(payload, doc); err != nil {
		return nil, apperrors.NewStorageError("failed to decode data file", errors.Wrap(err, "decode data file"))
	}
	return doc, nil
}

// save writes the document atomically via a temp file.
func (s *Store) save(doc *Document) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("failed to encode data file", errors.Wrap(err, "encode data file"))
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return apperrors.NewStorageError("failed to write data file", errors.Wrap(err, "write data temp file"))
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return apperrors.NewStorageError("failed to write data file", errors.Wrap(err, "persist data file"))
	}
	return nil
}
