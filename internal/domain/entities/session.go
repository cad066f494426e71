package entities

import "time"

// WorkflowKind identifies which multi-step conversational workflow a session
// belongs to. Only the job-application flow exists today.

type WorkflowKind string

const WorkflowKindApplication WorkflowKind = "application"

// SessionStatus represents the progress of a conversational session.

type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
)

// Question is a single prompt of a workflow questionnaire.
type Question struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

// Session is the ephemeral per-user record tracking progress through a
// question/answer workflow. It lives only in the in-memory session store and
// is never persisted.
//
// Invariant: 0 <= CurrentIndex <= len(Questions), and Status is completed
// exactly when CurrentIndex == len(Questions).
type Session struct {
	UserID       string
	Kind         WorkflowKind
	Position     string
	Questions    []Question
	CurrentIndex int
	Answers      map[string]string
	Status       SessionStatus
	StartedAt    time.Time
}

// CurrentQuestion returns the question awaiting an answer, or false when the
// session is complete.
func (s Session) CurrentQuestion() (Question, bool) {
	if s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}
