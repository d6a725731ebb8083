package store

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"recruitai/resume-screener/internal/models"
)

// SessionStore holds the state of one review session: the job description
// and the candidate records produced by the latest batch run. The batch
// runner appends between resume iterations while handlers read snapshots,
// so a list that is still growing is a normal thing for readers to see.
type SessionStore interface {
	SetJobDescription(text string) uuid.UUID
	JobDescription() string
	SessionID() uuid.UUID

	BeginBatch(total int)
	AppendCandidate(record models.CandidateRecord)
	EndBatch()
	Progress() models.BatchProgress

	Candidates() []models.CandidateRecord
	CandidatesByScore() []models.CandidateRecord
	FindCandidate(id uuid.UUID) (models.CandidateRecord, bool)
}

type sessionStore struct {
	mu             sync.RWMutex
	sessionID      uuid.UUID
	jobDescription string
	candidates     []models.CandidateRecord
	completed      int
	total          int
	running        bool
}

func NewSessionStore() SessionStore {
	return &sessionStore{}
}

// SetJobDescription starts a fresh session around the uploaded JD. Any
// candidates from a previous batch are discarded.
func (s *sessionStore) SetJobDescription(text string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionID = uuid.New()
	s.jobDescription = text
	s.candidates = nil
	s.completed = 0
	s.total = 0
	s.running = false

	return s.sessionID
}

func (s *sessionStore) JobDescription() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobDescription
}

func (s *sessionStore) SessionID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// BeginBatch replaces the candidate list wholesale. Records from an earlier
// run never survive into a new one.
func (s *sessionStore) BeginBatch(total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.candidates = make([]models.CandidateRecord, 0, total)
	s.completed = 0
	s.total = total
	s.running = true
}

func (s *sessionStore) AppendCandidate(record models.CandidateRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.candidates = append(s.candidates, record)
	s.completed++
}

func (s *sessionStore) EndBatch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

func (s *sessionStore) Progress() models.BatchProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.BatchProgress{
		Completed: s.completed,
		Total:     s.total,
		Running:   s.running,
	}
}

// Candidates returns a snapshot of the records in upload order.
func (s *sessionStore) Candidates() []models.CandidateRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.CandidateRecord, len(s.candidates))
	copy(snapshot, s.candidates)
	return snapshot
}

// CandidatesByScore returns a snapshot sorted by score, best first. Ties
// keep their upload order.
func (s *sessionStore) CandidatesByScore() []models.CandidateRecord {
	snapshot := s.Candidates()
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Score > snapshot[j].Score
	})
	return snapshot
}

func (s *sessionStore) FindCandidate(id uuid.UUID) (models.CandidateRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.candidates {
		if record.ID == id {
			return record, true
		}
	}
	return models.CandidateRecord{}, false
}
