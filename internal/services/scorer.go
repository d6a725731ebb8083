package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"recruitai/resume-screener/internal/models"
)

var (
	// ErrServiceUnavailable marks a model call that could not complete.
	ErrServiceUnavailable = errors.New("language model service unavailable")
	// ErrMalformedReply marks a model reply that is not parseable as the
	// expected structured shape.
	ErrMalformedReply = errors.New("malformed model reply")
)

const (
	topListSize         = 3
	scoreTemperature    = 0.3
	outreachTemperature = 0.7
	failedSummary       = "Analysis failed"
)

// ScorerService turns (job description, resume text) pairs into match
// results via one model call each, and drafts outreach emails on demand.
type ScorerService interface {
	Score(ctx context.Context, jobDescription, resumeText string) (models.MatchResult, error)
	DraftOutreachEmail(ctx context.Context, jobDescription string, record models.CandidateRecord) (string, error)
}

type scorerService struct {
	gemini          GeminiService
	promptBuilder   *PromptBuilder
	promptCharLimit int
	logger          *zap.Logger
}

func NewScorerService(gemini GeminiService, promptCharLimit int, logger *zap.Logger) ScorerService {
	if promptCharLimit <= 0 {
		promptCharLimit = 3000
	}
	return &scorerService{
		gemini:          gemini,
		promptBuilder:   NewPromptBuilder(),
		promptCharLimit: promptCharLimit,
		logger:          logger,
	}
}

// matchReply is the raw shape decoded from the model before validation.
// Score arrives as a float because models do not reliably emit integers.
type matchReply struct {
	Score               float64  `json:"score"`
	MatchedSkills       []string `json:"matched_skills"`
	MissingRequirements []string `json:"missing_requirements"`
	Summary             string   `json:"summary"`
}

// Score runs a single scoring call. On any failure it returns the
// zero-score result alongside the error, so the caller always has a
// renderable record and the batch can continue.
func (s *scorerService) Score(ctx context.Context, jobDescription, resumeText string) (models.MatchResult, error) {
	prompt := s.promptBuilder.BuildMatchPrompt(
		truncateChars(jobDescription, s.promptCharLimit),
		truncateChars(resumeText, s.promptCharLimit),
	)

	reply, err := s.gemini.GenerateText(ctx, prompt, scoreTemperature)
	if err != nil {
		s.logger.Warn("match scoring call failed", zap.Error(err))
		return models.FailedMatchResult(failedSummary), fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	var raw matchReply
	if err := json.Unmarshal([]byte(ExtractJSON(reply)), &raw); err != nil {
		s.logger.Warn("match reply not parseable",
			zap.Error(err),
			zap.Int("reply_length", len(reply)),
		)
		return models.FailedMatchResult(failedSummary), fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	return normalizeResult(raw), nil
}

// DraftOutreachEmail makes a second, single-shot call with no structured
// reply requirement. Failures propagate; nothing is recorded.
func (s *scorerService) DraftOutreachEmail(ctx context.Context, jobDescription string, record models.CandidateRecord) (string, error) {
	prompt := s.promptBuilder.BuildOutreachEmailPrompt(
		truncateChars(jobDescription, s.promptCharLimit),
		record.Name,
		record.MatchedSkills,
		record.Summary,
	)

	draft, err := s.gemini.GenerateText(ctx, prompt, outreachTemperature)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	return strings.TrimSpace(draft), nil
}

// normalizeResult enforces the result invariants: score clamped to [0,100]
// before the int conversion, both lists non-nil and capped, summary never
// empty.
func normalizeResult(raw matchReply) models.MatchResult {
	rawScore := raw.Score
	if math.IsNaN(rawScore) || rawScore < 0 {
		rawScore = 0
	}
	if rawScore > 100 {
		rawScore = 100
	}
	score := int(rawScore)

	summary := strings.TrimSpace(raw.Summary)
	if summary == "" {
		summary = "No summary provided"
	}

	return models.MatchResult{
		Score:               score,
		MatchedSkills:       capList(raw.MatchedSkills, topListSize),
		MissingRequirements: capList(raw.MissingRequirements, topListSize),
		Summary:             summary,
	}
}

func capList(items []string, limit int) []string {
	capped := make([]string, 0, limit)
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		capped = append(capped, item)
		if len(capped) == limit {
			break
		}
	}
	return capped
}

// ExtractJSON pulls a JSON object out of text that may be wrapped in
// markdown code fences or surrounding prose.
func ExtractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}
