package interfaces

import (
	"errors"

	"discord_clerk/internal/domain/entities"
)

// ErrNoQuestions is returned by Start when the questionnaire is empty.
var ErrNoQuestions = errors.New("no questions provided")

// Advance is the outcome of recording one answer.
//
// When Completed is false, Next holds the question to send along with its
// 1-based Number out of Total. Session is a snapshot taken after the answer
// was recorded; callers own the snapshot and must not assume it tracks later
// mutations.
type Advance struct {
	Completed bool
	Next      entities.Question
	Number    int
	Total     int
	Session   entities.Session
}

// ISessionStore holds the active conversational sessions, at most one per
// user. Entries expire on inactivity and on absolute age; expiry is silent
// best-effort cleanup, never an error.
//
// All methods are safe for concurrent use, and removal of an absent session
// is always a no-op so timer-fired and explicit removals cannot conflict.

type ISessionStore interface {
	// Start creates a session at question 0, replacing (and cancelling the
	// timer of) any prior session for the user. Fails with ErrNoQuestions
	// when questions is empty.
	Start(userID string, kind entities.WorkflowKind, position string, questions []entities.Question) (entities.Session, error)
	// Get returns a snapshot of the user's session, if any.
	Get(userID string) (entities.Session, bool)
	// RecordAnswer stores raw under the current question's id, advances the
	// index and resets the inactivity timer. Returns false when the user has
	// no in-progress session (unrelated direct messages end up here).
	RecordAnswer(userID, raw string) (Advance, bool)
	// Remove discards the session and cancels its timer. No-op when absent.
	Remove(userID string)
	// Count returns the number of live sessions.
	Count() int
}
