package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"recruitai/resume-screener/internal/models"
	"recruitai/resume-screener/internal/services"
)

const jdPreviewChars = 2000

type JobDescriptionHandler struct {
	screener    services.ScreenerService
	extractor   services.ExtractorService
	maxFileSize int64
}

func NewJobDescriptionHandler(
	screener services.ScreenerService,
	extractor services.ExtractorService,
	maxFileSize int64,
) *JobDescriptionHandler {
	return &JobDescriptionHandler{
		screener:    screener,
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /job-description. Uploading a JD starts a fresh
// review session; candidates from a previous batch are discarded. The reset
// goes through the screener so it cannot interleave with a running batch.
func (h *JobDescriptionHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("job_description")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": fmt.Sprintf("file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	data, err := readMultipartFile(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read uploaded file: %v", err),
		})
	}

	text := h.extractor.ExtractText(file.Header.Get("Content-Type"), file.Filename, data)
	if strings.TrimSpace(text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no text could be extracted from the job description",
		})
	}

	sessionID, err := h.screener.SetJobDescription(text)
	if err != nil {
		if errors.Is(err, services.ErrBatchRunning) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "a screening batch is already running",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.JobDescriptionResponse{
		SessionID:  sessionID.String(),
		Characters: utf8.RuneCountInString(text),
		Preview:    previewText(text, jdPreviewChars),
	})
}

func readMultipartFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}

func previewText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
