// Package assessment provides the create, list, delete, and export use cases
// for risk assessments.
package assessment

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"risk-demo/internal/domain"
	"risk-demo/internal/export"
	"risk-demo/internal/scoring"
)

// Service provides business logic for a session's assessments. The session's
// record list is passed to each call, so one Service serves every session.
type Service struct {
	catalog  domain.SelectionCatalog
	archiver domain.ExportArchiver
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new assessment Service. A nil archiver disables export
// archiving.
func NewService(catalog domain.SelectionCatalog, archiver domain.ExportArchiver, logger *slog.Logger) *Service {
	if archiver == nil {
		archiver = export.NopArchiver{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		catalog:  catalog,
		archiver: archiver,
		logger:   logger,
		now:      time.Now,
	}
}

// Create validates the request, scores it, and appends the new record.
func (s *Service) Create(ctx context.Context, repo domain.AssessmentRepository, req domain.CreateAssessmentRequest) (*domain.Assessment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !s.catalog.HasDepartment(req.Department) || !s.catalog.HasRisk(req.Risk) || !s.catalog.HasValueChainStep(req.ValueChainStep) {
		return nil, domain.ErrValidation(domain.MsgSelectionRequired)
	}

	result := scoring.Assess(req.Probability, req.Frequency, req.Severity)
	a := domain.Assessment{
		ID:              domain.NewID(),
		Department:      req.Department,
		Risk:            req.Risk,
		ValueChainStep:  req.ValueChainStep,
		Probability:     req.Probability,
		Frequency:       req.Frequency,
		Severity:        req.Severity,
		RiskScore:       result.RiskScore,
		RiskDegree:      result.RiskDegree,
		FinancialImpact: result.FinancialImpact,
		Date:            s.now().UTC(),
	}
	if err := repo.Append(ctx, a); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "assessment created",
		"assessment_id", a.ID,
		"department", a.Department,
		"risk_score", a.RiskScore,
		"financial_impact", a.FinancialImpact,
	)
	return &a, nil
}

// List returns the session's records in creation order.
func (s *Service) List(ctx context.Context, repo domain.AssessmentRepository) ([]domain.Assessment, error) {
	return repo.List(ctx)
}

// Delete removes the record at index.
func (s *Service) Delete(ctx context.Context, repo domain.AssessmentRepository, index int) error {
	removed, err := repo.RemoveAt(ctx, index)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "assessment deleted", "assessment_id", removed.ID, "index", index)
	return nil
}

// DeleteByID removes the record with the given ID.
func (s *Service) DeleteByID(ctx context.Context, repo domain.AssessmentRepository, id string) error {
	if _, err := repo.RemoveByID(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "assessment deleted", "assessment_id", id)
	return nil
}

// Clear removes every record.
func (s *Service) Clear(ctx context.Context, repo domain.AssessmentRepository) error {
	if err := repo.Clear(ctx); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "assessments cleared")
	return nil
}

// Export writes the session's records as a workbook to w and returns the
// number of data rows. With no records nothing is written and a
// ValidationError is returned. Archiving failures are logged, not returned.
func (s *Service) Export(ctx context.Context, repo domain.AssessmentRepository, w io.Writer) (int, error) {
	records, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, export.ErrEmpty
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, records); err != nil {
		return 0, err
	}

	sessionID, _ := domain.SessionIDFromContext(ctx)
	key, err := s.archiver.Archive(ctx, sessionID, int64(buf.Len()), bytes.NewReader(buf.Bytes()))
	if err != nil {
		s.logger.WarnContext(ctx, "export archive failed", "error", err)
	} else if key != "" {
		s.logger.InfoContext(ctx, "export archived", "key", key)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "assessments exported", "rows", len(records), "bytes", buf.Len())
	return len(records), nil
}
