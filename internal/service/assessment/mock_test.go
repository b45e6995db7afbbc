package assessment

import (
	"errors"
	"log/slog"
	"time"

	"risk-demo/internal/domain"
	"risk-demo/internal/testutil"
)

// errTest is a sentinel error for test scenarios.
var errTest = errors.New("test error")

// Type aliases keep test code short.
type mockRepo = testutil.MockAssessmentRepo
type mockCatalog = testutil.MockSelectionCatalog
type mockArchiver = testutil.MockExportArchiver

var fixedNow = time.Date(2026, 10, 19, 8, 15, 0, 0, time.UTC)

func newTestService(archiver domain.ExportArchiver) *Service {
	svc := NewService(&mockCatalog{
		Departments:     map[string]bool{"Finans": true, "Üretim": true},
		Risks:           map[string]bool{"Finansal Risk": true},
		ValueChainSteps: map[string]bool{"Operasyonlar": true},
	}, archiver, slog.New(slog.DiscardHandler))
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func validRequest() domain.CreateAssessmentRequest {
	return domain.CreateAssessmentRequest{
		Department:     "Finans",
		Risk:           "Finansal Risk",
		ValueChainStep: "Operasyonlar",
		Probability:    6,
		Frequency:      6,
		Severity:       10,
	}
}
