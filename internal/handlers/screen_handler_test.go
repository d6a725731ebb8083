package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitai/resume-screener/internal/models"
	"recruitai/resume-screener/internal/services"
	"recruitai/resume-screener/internal/store"
)

func TestHandleScreenQueuesBatch(t *testing.T) {
	app, sessions, screener := newScreeningApp(1 << 20)
	_, err := screener.SetJobDescription("backend engineer")
	require.NoError(t, err)

	req := multipartRequest(t, "/screen", "resumes", []uploadFile{
		{name: "alice.txt", content: "Alice Smith\nalice@x.com\nGo developer"},
		{name: "bob.txt", content: "Bob Jones\nbob@x.com\nGo developer"},
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var body models.ScreenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Queued)
	assert.Equal(t, "processing", body.Status)

	screener.Wait()

	records := sessions.Candidates()
	require.Len(t, records, 2)
	assert.Equal(t, "Alice Smith", records[0].Name)
	assert.Equal(t, "Bob Jones", records[1].Name)
}

func TestHandleScreenWithoutJobDescription(t *testing.T) {
	app, _, _ := newScreeningApp(1 << 20)

	req := multipartRequest(t, "/screen", "resumes", []uploadFile{
		{name: "alice.txt", content: "Alice Smith\nresume"},
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleScreenNoFiles(t *testing.T) {
	app, _, screener := newScreeningApp(1 << 20)
	_, err := screener.SetJobDescription("backend engineer")
	require.NoError(t, err)

	req := multipartRequest(t, "/screen", "unrelated", []uploadFile{
		{name: "alice.txt", content: "Alice Smith\nresume"},
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleScreenOversizedResume(t *testing.T) {
	app, _, screener := newScreeningApp(16)
	_, err := screener.SetJobDescription("backend jd")
	require.NoError(t, err)

	req := multipartRequest(t, "/screen", "resumes", []uploadFile{
		{name: "huge.txt", content: "this resume is far bigger than sixteen bytes"},
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestHandleScreenWhileBatchRunning(t *testing.T) {
	sessions := store.NewSessionStore()
	sessions.SetJobDescription("backend engineer")
	screener := &stubScreener{startErr: services.ErrBatchRunning}

	app := fiber.New()
	app.Post("/screen", NewScreenHandler(sessions, screener, 1<<20).HandleScreen)

	req := multipartRequest(t, "/screen", "resumes", []uploadFile{
		{name: "alice.txt", content: "Alice Smith\nresume"},
	})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestHandleStatusMidBatch(t *testing.T) {
	app, sessions, _ := newScreeningApp(1 << 20)
	sessions.SetJobDescription("backend engineer")
	sessions.BeginBatch(3)
	sessions.AppendCandidate(models.CandidateRecord{FileName: "done.txt"})

	resp, err := app.Test(httptest.NewRequest("GET", "/screen/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var progress models.BatchProgress
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&progress))
	assert.Equal(t, 1, progress.Completed)
	assert.Equal(t, 3, progress.Total)
	assert.True(t, progress.Running)
}
