package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-demo/internal/domain"
)

func TestDefault(t *testing.T) {
	tx := Default()
	require.NotEmpty(t, tx.Departments)
	require.NotEmpty(t, tx.Risks)
	require.NotEmpty(t, tx.ValueChainSteps)
	assert.True(t, tx.HasDepartment("Finans"))
	assert.True(t, tx.HasRisk("Finansal Risk"))
	assert.True(t, tx.HasValueChainStep("Operasyonlar"))
	assert.False(t, tx.HasDepartment("finans"))
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	tx, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), tx)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	doc := "departments: [Ops, ' IT ']\nrisks: [Fraud]\nvalueChainSteps: [Service]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	tx, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ops", "IT"}, tx.Departments)
	assert.True(t, tx.HasDepartment("IT"))
	assert.True(t, tx.HasRisk("Fraud"))
	assert.True(t, tx.HasValueChainStep("Service"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read taxonomy")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"malformed", "departments: [", "parse yaml"},
		{"empty departments", "risks: [a]\nvalueChainSteps: [b]\n", "departments must not be empty"},
		{"blank entry", "departments: [a, '  ']\nrisks: [a]\nvalueChainSteps: [b]\n", "blank entry"},
		{"duplicate", "departments: [a]\nrisks: [x, x]\nvalueChainSteps: [b]\n", "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_ValidationErrorsAreTyped(t *testing.T) {
	_, err := Parse([]byte("departments: []\n"))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
