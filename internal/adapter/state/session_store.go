package state

import (
	"log"
	"sync"
	"time"

	"discord_clerk/internal/domain/entities"
	"discord_clerk/internal/usecase/interfaces"
)

const (
	// DefaultInactivityTimeout is how long a session survives without an
	// answer before its fast-path timer removes it.
	DefaultInactivityTimeout = 30 * time.Minute
	// DefaultMaxAge is the absolute lifetime enforced by the sweeper,
	// independent of activity. It is the authoritative bound; the inactivity
	// timer is only the fast path.
	DefaultMaxAge = time.Hour
	// DefaultSweepInterval is how often the sweeper runs.
	DefaultSweepInterval = 15 * time.Minute
)

type entry struct {
	session *entities.Session
	timer   *time.Timer
	// gen guards against a fired timer removing a session whose timer was
	// already reset or replaced: the callback only removes when its captured
	// generation still matches. Generations come from the store-wide counter,
	// never per entry, so a replacement entry can never reuse a generation a
	// stale callback still holds.
	gen uint64
}

// SessionStore is the in-memory store for conversational sessions, at most
// one per user. Expiry is handled twice over: a per-session inactivity timer
// and a periodic absolute-age sweep, both funneling into the same idempotent
// removal.

type SessionStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	gen     uint64

	inactivity    time.Duration
	maxAge        time.Duration
	sweepInterval time.Duration

	done chan struct{}
	once sync.Once
}

var _ interfaces.ISessionStore = (*SessionStore)(nil)

// NewSessionStore creates the store and starts its sweeper. Non-positive
// durations fall back to the defaults. Callers must Close the store on
// shutdown.
func NewSessionStore(inactivity, maxAge, sweepInterval time.Duration) *SessionStore {
	if inactivity <= 0 {
		inactivity = DefaultInactivityTimeout
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}

	s := &SessionStore{
		entries:       make(map[string]*entry),
		inactivity:    inactivity,
		maxAge:        maxAge,
		sweepInterval: sweepInterval,
		done:          make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

func (s *SessionStore) Start(userID string, kind entities.WorkflowKind, position string, questions []entities.Question) (entities.Session, error) {
	if len(questions) == 0 {
		return entities.Session{}, interfaces.ErrNoQuestions
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.entries[userID]; ok {
		prev.timer.Stop()
	}

	session := &entities.Session{
		UserID:       userID,
		Kind:         kind,
		Position:     position,
		Questions:    questions,
		CurrentIndex: 0,
		Answers:      make(map[string]string, len(questions)),
		Status:       entities.SessionStatusInProgress,
		StartedAt:    time.Now().UTC(),
	}
	e := &entry{session: session}
	s.entries[userID] = e
	s.armTimerLocked(userID, e)

	return snapshot(session), nil
}

func (s *SessionStore) Get(userID string) (entities.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok {
		return entities.Session{}, false
	}
	return snapshot(e.session), true
}

func (s *SessionStore) RecordAnswer(userID, raw string) (interfaces.Advance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok || e.session.Status != entities.SessionStatusInProgress {
		return interfaces.Advance{}, false
	}

	session := e.session
	q, ok := session.CurrentQuestion()
	if !ok {
		return interfaces.Advance{}, false
	}

	session.Answers[q.ID] = raw
	session.CurrentIndex++
	if session.CurrentIndex == len(session.Questions) {
		session.Status = entities.SessionStatusCompleted
	}
	// Activity resets the inactivity window even on the completing answer, so
	// a completed-but-unpersisted session keeps its grace period.
	s.armTimerLocked(userID, e)

	adv := interfaces.Advance{
		Total:   len(session.Questions),
		Session: snapshot(session),
	}
	if session.Status == entities.SessionStatusCompleted {
		adv.Completed = true
		return adv, true
	}
	adv.Next = session.Questions[session.CurrentIndex]
	adv.Number = session.CurrentIndex + 1
	return adv, true
}

func (s *SessionStore) Remove(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(userID)
}

func (s *SessionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close stops the sweeper and cancels every pending timer.
func (s *SessionStore) Close() {
	s.once.Do(func() { close(s.done) })

	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.entries {
		s.removeLocked(id)
	}
}

func (s *SessionStore) armTimerLocked(userID string, e *entry) {
	if e.timer != nil {
		e.timer.Stop()
	}
	s.gen++
	gen := s.gen
	e.gen = gen
	e.timer = time.AfterFunc(s.inactivity, func() {
		s.expire(userID, gen)
	})
}

func (s *SessionStore) expire(userID string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[userID]
	if !ok || e.gen != gen {
		// Already removed or the timer was reset after this fired.
		return
	}
	log.Printf("[session][store] expired user_id=%s inactivity=%s", userID, s.inactivity)
	s.removeLocked(userID)
}

func (s *SessionStore) removeLocked(userID string) {
	e, ok := s.entries[userID]
	if !ok {
		return
	}
	e.timer.Stop()
	delete(s.entries, userID)
}

func (s *SessionStore) sweepLoop() {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweepOnce(time.Now().UTC())
		}
	}
}

// sweepOnce removes every session older than maxAge in absolute terms. It is
// the safety net behind the inactivity timers.
func (s *SessionStore) sweepOnce(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []string
	for id, e := range s.entries {
		if now.Sub(e.session.StartedAt) > s.maxAge {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		s.removeLocked(id)
	}
	if len(expired) > 0 {
		log.Printf("[session][store] swept %d expired sessions", len(expired))
	}
}

// snapshot copies the session so callers never share the store's mutable
// state. Questions are treated as immutable by everyone and shared as-is.
func snapshot(s *entities.Session) entities.Session {
	out := *s
	out.Answers = make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		out.Answers[k] = v
	}
	return out
}
