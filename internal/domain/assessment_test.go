package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateAssessmentRequest {
	return CreateAssessmentRequest{
		Department:     "Finans",
		Risk:           "Finansal Risk",
		ValueChainStep: "Operasyonlar",
		Probability:    6,
		Frequency:      6,
		Severity:       10,
	}
}

func TestCreateAssessmentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreateAssessmentRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*CreateAssessmentRequest) {}},
		{name: "missing department", mutate: func(r *CreateAssessmentRequest) { r.Department = "" }, wantMsg: MsgSelectionRequired},
		{name: "blank risk", mutate: func(r *CreateAssessmentRequest) { r.Risk = "   " }, wantMsg: MsgSelectionRequired},
		{name: "missing step", mutate: func(r *CreateAssessmentRequest) { r.ValueChainStep = "" }, wantMsg: MsgSelectionRequired},
		{name: "zero probability", mutate: func(r *CreateAssessmentRequest) { r.Probability = 0 }, wantMsg: MsgRatingsRequired},
		{name: "zero frequency", mutate: func(r *CreateAssessmentRequest) { r.Frequency = 0 }, wantMsg: MsgRatingsRequired},
		{name: "zero severity", mutate: func(r *CreateAssessmentRequest) { r.Severity = 0 }, wantMsg: MsgRatingsRequired},
		{name: "NaN severity", mutate: func(r *CreateAssessmentRequest) { r.Severity = math.NaN() }, wantMsg: MsgRatingsRequired},
		{name: "infinite probability", mutate: func(r *CreateAssessmentRequest) { r.Probability = math.Inf(1) }, wantMsg: MsgRatingsRequired},
		{
			name: "selection checked before ratings",
			mutate: func(r *CreateAssessmentRequest) {
				r.Department = ""
				r.Probability = 0
			},
			wantMsg: MsgSelectionRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestCreateAssessmentRequest_ValidateTrimsSelections(t *testing.T) {
	req := validRequest()
	req.Department = "  Finans "
	require.NoError(t, req.Validate())
	assert.Equal(t, "Finans", req.Department)
}

func TestAssessment_DateString(t *testing.T) {
	loc := time.FixedZone("TRT", 3*60*60)
	a := Assessment{Date: time.Date(2026, 3, 14, 15, 9, 26, 535000000, loc)}
	assert.Equal(t, "2026-03-14T12:09:26.535Z", a.DateString())
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound("record %d not found", 3)))
	assert.False(t, IsNotFound(ErrValidation("x")))
	assert.Equal(t, "record 3 not found", ErrNotFound("record %d not found", 3).Error())
}
