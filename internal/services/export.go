package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"recruitai/resume-screener/internal/models"
)

// ExportService packages candidate records as a downloadable spreadsheet.
type ExportService interface {
	CandidatesCSV(records []models.CandidateRecord) ([]byte, error)
}

type exportService struct{}

func NewExportService() ExportService {
	return &exportService{}
}

var csvHeader = []string{
	"name",
	"email",
	"phone",
	"profile_link",
	"education",
	"score",
	"matched_skills",
	"missing_requirements",
	"summary",
}

// CandidatesCSV renders the records in the order given; ranking is the
// caller's concern.
func (e *exportService) CandidatesCSV(records []models.CandidateRecord) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Name,
			record.Email,
			record.Phone,
			record.ProfileLink,
			record.Education,
			strconv.Itoa(record.Score),
			strings.Join(record.MatchedSkills, "; "),
			strings.Join(record.MissingRequirements, "; "),
			record.Summary,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
