package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uaetax/tax-calculator/internal/domain"
)

func sampleReport() *domain.Report {
	r := &domain.Report{
		Title:      "Corporate Tax Liability",
		Calculator: "corporate-tax",
		TotalLabel: "Corporate Tax Payable",
		Total:      decimal.NewFromInt(11250),
	}
	r.AddLine("Taxable Income", decimal.NewFromInt(500000))
	r.AddLine("Tax at 9%", decimal.NewFromInt(11250))
	r.AddNote("First AED 375,000 is taxed at 0%.")
	return r
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console", "console"},
		{"json", "json"},
		{"csv", "csv"},
		{"xlsx", "xlsx"},
		{"text", "console"},
		{"table", "console"},
		{"excel", "xlsx"},
		{"JSON", "json"},
		{"  Spreadsheet  ", "xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GetFormatterByName(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.expected, f.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.Equal(t, []string{"console", "csv", "json", "xlsx"}, names)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "AED 1,234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "9.00%", FormatPercentage(decimal.NewFromFloat(0.09)))
	assert.Equal(t, "100.00%", FormatPercentage(decimal.NewFromInt(1)))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "CORPORATE TAX LIABILITY")
	assert.Contains(t, text, "AED 500,000.00")
	assert.Contains(t, text, "Corporate Tax Payable")
	assert.Contains(t, text, "Note: First AED 375,000 is taxed at 0%.")
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "corporate-tax", decoded.Calculator)
	require.Len(t, decoded.Lines, 2)
	assert.Equal(t, "Taxable Income", decoded.Lines[0].Label)
	assert.True(t, decoded.Total.Equal(decimal.NewFromInt(11250)))
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Line,Amount (AED)", lines[0])
	assert.Equal(t, "Taxable Income,500000.00", lines[1])
	assert.Equal(t, "Corporate Tax Payable,11250.00", lines[3])
	assert.Contains(t, lines[4], "Note")
}

func TestXLSXFormatter(t *testing.T) {
	data, err := XLSXFormatter{}.Format(sampleReport())
	require.NoError(t, err)
	// XLSX files are zip archives; checking the magic bytes is enough here.
	require.True(t, len(data) > 4)
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
