package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"formulab/internal/models"
)

// ErrNotFound is returned by Get and Update for an unknown request ID.
var ErrNotFound = errors.New("request not found")

// RequestStore holds the working set of development requests for one session.
// It is constructed explicitly and passed by reference; there is no package
// level singleton. All operations are safe for concurrent use: Create and
// Update serialize the read-modify-write of the per-day sequence counter and
// the record map behind one mutex.
type RequestStore struct {
	mu      sync.RWMutex
	records map[string]*models.Request
	order   []string // insertion order of IDs
	now     func() time.Time
}

// New creates an empty RequestStore.
func New() *RequestStore {
	return NewWithNow(time.Now)
}

// NewWithNow creates a RequestStore with an injected clock. Used by tests and
// callers that need deterministic identifiers.
func NewWithNow(now func() time.Time) *RequestStore {
	return &RequestStore{
		records: make(map[string]*models.Request),
		now:     now,
	}
}

// Create inserts a new request and returns its assigned identifier. The
// identifier is {date}-{sequence}: the creation day plus a 1-based, zero
// padded count of records created that day. The counter is derived from the
// store contents under the write lock, so identifiers cannot collide.
func (s *RequestStore) Create(fields models.Fields) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	day := createdAt.Format("2006-01-02")

	seq := 1
	for _, id := range s.order {
		if strings.HasPrefix(id, day+"-") {
			seq++
		}
	}

	id := fmt.Sprintf("%s-%03d", day, seq)
	s.records[id] = &models.Request{
		ID:        id,
		CreatedAt: createdAt,
		Fields:    fields.Clone(),
	}
	s.order = append(s.order, id)

	return id, nil
}

// Get returns a copy of the request with the given ID.
func (s *RequestStore) Get(id string) (models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return models.Request{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}
	return snapshot(rec), nil
}

// Update merges the patch into the stored request. The identifier and
// creation date are never altered.
func (s *RequestStore) Update(id string, patch models.FieldPatch) (models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return models.Request{}, fmt.Errorf("update %q: %w", id, ErrNotFound)
	}
	patch.Apply(&rec.Fields)
	return snapshot(rec), nil
}

// List returns copies of all requests in insertion order.
func (s *RequestStore) List() []models.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Request, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, snapshot(s.records[id]))
	}
	return out
}

// Len returns the number of stored requests.
func (s *RequestStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func snapshot(rec *models.Request) models.Request {
	out := *rec
	out.Fields = rec.Fields.Clone()
	return out
}
