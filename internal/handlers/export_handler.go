package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"recruitai/resume-screener/internal/services"
	"recruitai/resume-screener/internal/store"
)

type ExportHandler struct {
	sessions store.SessionStore
	exporter services.ExportService
	scorer   services.ScorerService
}

func NewExportHandler(
	sessions store.SessionStore,
	exporter services.ExportService,
	scorer services.ScorerService,
) *ExportHandler {
	return &ExportHandler{
		sessions: sessions,
		exporter: exporter,
		scorer:   scorer,
	}
}

// HandleExportCSV handles GET /export/candidates.csv. The export is the
// dashboard view: best score first.
func (h *ExportHandler) HandleExportCSV(c *fiber.Ctx) error {
	records := h.sessions.CandidatesByScore()
	if len(records) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no candidates to export",
		})
	}

	data, err := h.exporter.CandidatesCSV(records)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to build export: %v", err),
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates.csv"`)
	return c.Send(data)
}

// HandleOutreach handles POST /candidates/:id/outreach. The draft is a
// one-shot model call returned as a text download; nothing is stored.
func (h *ExportHandler) HandleOutreach(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid candidate ID format",
		})
	}

	record, ok := h.sessions.FindCandidate(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "candidate not found",
		})
	}

	draft, err := h.scorer.DraftOutreachEmail(c.UserContext(), h.sessions.JobDescription(), record)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to draft outreach email: %v", err),
		})
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="outreach_%s.txt"`, outreachFilename(record.Name)))
	return c.SendString(draft)
}

func outreachFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" {
		return "candidate"
	}
	return name
}
