package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"recruitai/resume-screener/internal/models"
	"recruitai/resume-screener/internal/services"
	"recruitai/resume-screener/internal/store"
)

type ScreenHandler struct {
	sessions    store.SessionStore
	screener    services.ScreenerService
	maxFileSize int64
}

func NewScreenHandler(
	sessions store.SessionStore,
	screener services.ScreenerService,
	maxFileSize int64,
) *ScreenHandler {
	return &ScreenHandler{
		sessions:    sessions,
		screener:    screener,
		maxFileSize: maxFileSize,
	}
}

// HandleScreen handles POST /screen. The batch runs in the background;
// callers poll /screen/status or /candidates for progress.
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files := form.File["resumes"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no resumes uploaded. Attach one or more files under 'resumes'",
		})
	}

	uploads := make([]services.ResumeUpload, 0, len(files))
	for _, file := range files {
		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
				"error": fmt.Sprintf("%s is too large. Max size: %d bytes", file.Filename, h.maxFileSize),
			})
		}

		data, err := readMultipartFile(file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to read %s: %v", file.Filename, err),
			})
		}

		uploads = append(uploads, services.ResumeUpload{
			FileName:  file.Filename,
			MediaType: file.Header.Get("Content-Type"),
			Data:      data,
		})
	}

	queued, err := h.screener.Start(uploads)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoJobDescription):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "upload a job description before screening resumes",
			})
		case errors.Is(err, services.ErrBatchRunning):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "a screening batch is already running",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusAccepted).JSON(models.ScreenResponse{
		Queued: queued,
		Status: "processing",
	})
}

// HandleStatus handles GET /screen/status.
func (h *ScreenHandler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.sessions.Progress())
}
