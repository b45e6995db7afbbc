package domain

import (
	"context"
	"io"
)

// AssessmentRepository holds one session's ordered list of assessments.
// Implemented by session.Session.
type AssessmentRepository interface {
	Append(ctx context.Context, a Assessment) error
	List(ctx context.Context) ([]Assessment, error)
	RemoveAt(ctx context.Context, index int) (Assessment, error)
	RemoveByID(ctx context.Context, id string) (Assessment, error)
	Clear(ctx context.Context) error
}

// SelectionCatalog reports which departments, risks, and value-chain steps
// may be selected. Implemented by taxonomy.Taxonomy.
type SelectionCatalog interface {
	HasDepartment(name string) bool
	HasRisk(name string) bool
	HasValueChainStep(name string) bool
}

// ExportArchiver keeps a copy of an exported workbook outside the process.
// Implemented by export.S3Archiver and export.NopArchiver.
type ExportArchiver interface {
	Archive(ctx context.Context, sessionID string, size int64, body io.Reader) (string, error)
}
