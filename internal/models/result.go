package models

// JobDescriptionResponse is returned after a JD upload.
type JobDescriptionResponse struct {
	SessionID  string `json:"session_id"`
	Characters int    `json:"characters"`
	Preview    string `json:"preview"`
}

// ScreenResponse acknowledges a started batch run.
type ScreenResponse struct {
	Queued int    `json:"queued"`
	Status string `json:"status"`
}

// BatchProgress reports how far the current batch run has come.
type BatchProgress struct {
	Completed int  `json:"completed"`
	Total     int  `json:"total"`
	Running   bool `json:"running"`
}

// CandidateListResponse is the dashboard-facing view of the session.
type CandidateListResponse struct {
	Candidates []CandidateRecord `json:"candidates"`
	Progress   BatchProgress     `json:"progress"`
}
