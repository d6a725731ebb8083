package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"recruitai/resume-screener/internal/models"
	"recruitai/resume-screener/internal/store"
)

var (
	// ErrNoJobDescription rejects a batch before a JD has been uploaded.
	ErrNoJobDescription = errors.New("no job description uploaded")
	// ErrBatchRunning rejects a new batch while one is still processing.
	ErrBatchRunning = errors.New("a screening batch is already running")
	// ErrNoResumes rejects an empty batch.
	ErrNoResumes = errors.New("no resumes uploaded")
)

const excerptCharLimit = 500

// ResumeUpload carries one uploaded resume into a batch run.
type ResumeUpload struct {
	FileName  string
	MediaType string
	Data      []byte
}

// ScreenerService drives the extractor and scorer over a batch of resumes,
// one at a time, producing exactly one candidate record per upload. Session
// resets go through it too, so they cannot interleave with a running batch.
type ScreenerService interface {
	Start(uploads []ResumeUpload) (int, error)
	SetJobDescription(text string) (uuid.UUID, error)
	Running() bool
	Wait()
}

type screenerService struct {
	sessions  store.SessionStore
	extractor ExtractorService
	scorer    ScorerService
	logger    *zap.Logger

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup
}

func NewScreenerService(
	sessions store.SessionStore,
	extractor ExtractorService,
	scorer ScorerService,
	logger *zap.Logger,
) ScreenerService {
	return &screenerService{
		sessions:  sessions,
		extractor: extractor,
		scorer:    scorer,
		logger:    logger,
	}
}

// Start validates the batch, replaces the session candidate list and kicks
// off one background run. Resumes are processed strictly sequentially in
// upload order; only one batch may run at a time.
func (s *screenerService) Start(uploads []ResumeUpload) (int, error) {
	if strings.TrimSpace(s.sessions.JobDescription()) == "" {
		return 0, ErrNoJobDescription
	}
	if len(uploads) == 0 {
		return 0, ErrNoResumes
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return 0, ErrBatchRunning
	}
	s.running = true
	s.mu.Unlock()

	s.sessions.BeginBatch(len(uploads))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()
			s.sessions.EndBatch()
		}()

		s.run(context.Background(), uploads)
	}()

	return len(uploads), nil
}

// SetJobDescription starts a fresh session around a newly uploaded JD. It
// holds the same mutex as Start, so a reset can never race a batch that is
// appending records scored against the previous JD.
func (s *screenerService) SetJobDescription(text string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return uuid.Nil, ErrBatchRunning
	}

	return s.sessions.SetJobDescription(text), nil
}

func (s *screenerService) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Wait blocks until the current batch, if any, has finished. Used by
// graceful shutdown.
func (s *screenerService) Wait() {
	s.wg.Wait()
}

func (s *screenerService) run(ctx context.Context, uploads []ResumeUpload) {
	jobDescription := s.sessions.JobDescription()
	total := len(uploads)

	s.logger.Info("screening batch started", zap.Int("resumes", total))

	for i, upload := range uploads {
		record := s.processResume(ctx, jobDescription, upload)
		s.sessions.AppendCandidate(record)

		s.logger.Info("resume processed",
			zap.Int("completed", i+1),
			zap.Int("total", total),
			zap.String("filename", upload.FileName),
			zap.Int("score", record.Score),
		)
	}

	s.logger.Info("screening batch finished", zap.Int("resumes", total))
}

// processResume runs extract-then-score for a single upload. Every failure
// is contained here: a resume that cannot be read or scored still yields a
// record, so the output list length always equals the input count.
func (s *screenerService) processResume(ctx context.Context, jobDescription string, upload ResumeUpload) models.CandidateRecord {
	text := s.extractor.ExtractText(upload.MediaType, upload.FileName, upload.Data)
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("resume yielded no usable text", zap.String("filename", upload.FileName))
	}

	profile := ExtractProfile(text)
	if profile.Name == models.FieldNotFound {
		profile.Name = filenameStem(upload.FileName)
	}

	result, err := s.scorer.Score(ctx, jobDescription, text)
	if err != nil {
		s.logger.Warn("scoring failed, recording zero score",
			zap.String("filename", upload.FileName),
			zap.Error(err),
		)
	}

	return models.CandidateRecord{
		ID:               uuid.New(),
		FileName:         upload.FileName,
		CandidateProfile: profile,
		MatchResult:      result,
		ResumeExcerpt:    truncateChars(text, excerptCharLimit),
	}
}

// filenameStem derives a display name from the upload filename when the
// extractor found none.
func filenameStem(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.TrimSpace(stem)
	if stem == "" {
		return models.FieldNotFound
	}
	return stem
}
