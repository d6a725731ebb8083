package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"recruitai/resume-screener/internal/models"
	"recruitai/resume-screener/internal/store"
)

type CandidatesHandler struct {
	sessions store.SessionStore
}

func NewCandidatesHandler(sessions store.SessionStore) *CandidatesHandler {
	return &CandidatesHandler{sessions: sessions}
}

// HandleList handles GET /candidates. Records come back in upload order by
// default; ?sort=score returns the score-descending dashboard view. The
// list is readable while a batch is still appending to it.
func (h *CandidatesHandler) HandleList(c *fiber.Ctx) error {
	var candidates []models.CandidateRecord
	if c.Query("sort") == "score" {
		candidates = h.sessions.CandidatesByScore()
	} else {
		candidates = h.sessions.Candidates()
	}

	return c.JSON(models.CandidateListResponse{
		Candidates: candidates,
		Progress:   h.sessions.Progress(),
	})
}

// HandleGet handles GET /candidates/:id.
func (h *CandidatesHandler) HandleGet(c *fiber.Ctx) error {
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

	return c.JSON(record)
}
