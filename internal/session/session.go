// Package session keeps each visitor's assessment list in process memory.
// Nothing here outlives the process; idle sessions are swept on a schedule.
package session

import (
	"context"
	"sync"

	"risk-demo/internal/domain"
)

var _ domain.AssessmentRepository = (*Session)(nil)

// Session is one visitor's ordered, append-only list of assessments.
type Session struct {
	ID string

	mu      sync.Mutex
	records []domain.Assessment
	latest  *domain.Assessment
}

func newSession(id string) *Session {
	return &Session{ID: id}
}

// Append adds an assessment to the end of the list and makes it the latest
// calculation.
func (s *Session) Append(_ context.Context, a domain.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, a)
	latest := a
	s.latest = &latest
	return nil
}

// List returns a copy of the records in insertion order.
func (s *Session) List(_ context.Context) ([]domain.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Assessment, len(s.records))
	copy(out, s.records)
	return out, nil
}

// RemoveAt deletes the record at index, keeping the relative order of the
// rest.
func (s *Session) RemoveAt(_ context.Context, index int) (domain.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.records) {
		return domain.Assessment{}, domain.ErrNotFound("assessment %d not found", index)
	}
	return s.removeLocked(index), nil
}

// RemoveByID deletes the record with the given ID.
func (s *Session) RemoveByID(_ context.Context, id string) (domain.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			return s.removeLocked(i), nil
		}
	}
	return domain.Assessment{}, domain.ErrNotFound("assessment %q not found", id)
}

func (s *Session) removeLocked(index int) domain.Assessment {
	removed := s.records[index]
	s.records = append(s.records[:index:index], s.records[index+1:]...)
	return removed
}

// Clear drops every record and the latest calculation.
func (s *Session) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.latest = nil
	return nil
}

// Latest returns the most recently created assessment. Deleting it from the
// list does not clear it.
func (s *Session) Latest() (domain.Assessment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return domain.Assessment{}, false
	}
	return *s.latest, true
}

// Len returns the number of records.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
