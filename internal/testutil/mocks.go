// Package testutil provides shared mock implementations of domain interfaces
// for use in tests across the codebase. This follows the Go convention of a
// shared test utility package (like net/http/httptest).
package testutil

import (
	"bytes"
	"context"
	"io"

	"risk-demo/internal/domain"
)

// === Assessment Repository Mock ===

// MockAssessmentRepo implements domain.AssessmentRepository for testing.
// Calls without a configured Fn operate on Records.
type MockAssessmentRepo struct {
	AppendFn     func(ctx context.Context, a domain.Assessment) error
	ListFn       func(ctx context.Context) ([]domain.Assessment, error)
	RemoveAtFn   func(ctx context.Context, index int) (domain.Assessment, error)
	RemoveByIDFn func(ctx context.Context, id string) (domain.Assessment, error)
	ClearFn      func(ctx context.Context) error
	Records      []domain.Assessment
}

// Append implements the interface method for testing.
func (m *MockAssessmentRepo) Append(ctx context.Context, a domain.Assessment) error {
	if m.AppendFn != nil {
		if err := m.AppendFn(ctx, a); err != nil {
			return err
		}
	}
	m.Records = append(m.Records, a)
	return nil
}

// List implements the interface method for testing.
func (m *MockAssessmentRepo) List(ctx context.Context) ([]domain.Assessment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	out := make([]domain.Assessment, len(m.Records))
	copy(out, m.Records)
	return out, nil
}

// RemoveAt implements the interface method for testing.
func (m *MockAssessmentRepo) RemoveAt(ctx context.Context, index int) (domain.Assessment, error) {
	if m.RemoveAtFn != nil {
		return m.RemoveAtFn(ctx, index)
	}
	if index < 0 || index >= len(m.Records) {
		return domain.Assessment{}, domain.ErrNotFound("assessment %d not found", index)
	}
	removed := m.Records[index]
	m.Records = append(m.Records[:index], m.Records[index+1:]...)
	return removed, nil
}

// RemoveByID implements the interface method for testing.
func (m *MockAssessmentRepo) RemoveByID(ctx context.Context, id string) (domain.Assessment, error) {
	if m.RemoveByIDFn != nil {
		return m.RemoveByIDFn(ctx, id)
	}
	for i := range m.Records {
		if m.Records[i].ID == id {
			return m.RemoveAt(ctx, i)
		}
	}
	return domain.Assessment{}, domain.ErrNotFound("assessment %q not found", id)
}

// Clear implements the interface method for testing.
func (m *MockAssessmentRepo) Clear(ctx context.Context) error {
	if m.ClearFn != nil {
		if err := m.ClearFn(ctx); err != nil {
			return err
		}
	}
	m.Records = nil
	return nil
}

// === Selection Catalog Mock ===

// MockSelectionCatalog implements domain.SelectionCatalog for testing.
// A nil set accepts every name.
type MockSelectionCatalog struct {
	Departments     map[string]bool
	Risks           map[string]bool
	ValueChainSteps map[string]bool
}

// HasDepartment implements the interface method for testing.
func (m *MockSelectionCatalog) HasDepartment(name string) bool {
	return m.Departments == nil || m.Departments[name]
}

// HasRisk implements the interface method for testing.
func (m *MockSelectionCatalog) HasRisk(name string) bool {
	return m.Risks == nil || m.Risks[name]
}

// HasValueChainStep implements the interface method for testing.
func (m *MockSelectionCatalog) HasValueChainStep(name string) bool {
	return m.ValueChainSteps == nil || m.ValueChainSteps[name]
}

// === Export Archiver Mock ===

// ArchivedExport records one Archive call.
type ArchivedExport struct {
	SessionID string
	Size      int64
	Body      []byte
}

// MockExportArchiver implements domain.ExportArchiver for testing.
type MockExportArchiver struct {
	ArchiveFn func(ctx context.Context, sessionID string, size int64, body io.Reader) (string, error)
	Calls     []ArchivedExport
}

// Archive implements the interface method for testing.
func (m *MockExportArchiver) Archive(ctx context.Context, sessionID string, size int64, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.Calls = append(m.Calls, ArchivedExport{SessionID: sessionID, Size: size, Body: data})
	if m.ArchiveFn != nil {
		return m.ArchiveFn(ctx, sessionID, size, bytes.NewReader(data))
	}
	return "exports/" + sessionID, nil
}
