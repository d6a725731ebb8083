package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitai/resume-screener/internal/models"
)

func TestCandidatesCSV(t *testing.T) {
	exporter := NewExportService()

	records := []models.CandidateRecord{
		sampleRecord("Jane Doe", 90),
		sampleRecord("John Roe", 40),
	}
	records[0].MatchedSkills = []string{"Go", "Kubernetes"}
	records[0].MissingRequirements = []string{"Rust"}

	data, err := exporter.CandidatesCSV(records)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per candidate")

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "Jane Doe", rows[1][0])
	assert.Equal(t, "90", rows[1][5])
	assert.Equal(t, "Go; Kubernetes", rows[1][6])
	assert.Equal(t, "Rust", rows[1][7])
	assert.Equal(t, "John Roe", rows[2][0])
}

func TestCandidatesCSVEmpty(t *testing.T) {
	exporter := NewExportService()

	data, err := exporter.CandidatesCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
