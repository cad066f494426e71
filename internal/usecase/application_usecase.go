package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"discord_clerk/internal/domain/entities"
	"discord_clerk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidApplicantID     = errors.New("invalid applicant id")
	ErrUnknownPosition        = errors.New("no questions found for this position")
	ErrNoActiveApplication    = errors.New("no active application for this user")
	ErrApplicationNotComplete = errors.New("application has unanswered questions")
	ErrSubmissionPersist      = errors.New("failed to save the application")
	ErrApplicantUnreachable   = errors.New("could not deliver a direct message to the applicant")
)

// answerDisplayLimit is the platform's per-field display limit; answers are
// truncated to it in the staff notification only, never in the stored
// submission.
const answerDisplayLimit = 1024

// IApplicationUseCase drives the job-application Q&A workflow over direct
// messages: one question per message, answers collected in an ephemeral
// session, a durable Submission written on completion.

type IApplicationUseCase interface {
	StartApplication(ctx context.Context, userID, position string) (entities.Session, error)
	// HandleDirectMessage consumes one inbound DM. Messages from users with no
	// in-progress session are ignored.
	HandleDirectMessage(ctx context.Context, userID, content string) error
	// RetryCompletion re-runs persist+notify for a completed session that is
	// still retained after a submission persistence failure.
	RetryCompletion(ctx context.Context, userID string) (entities.Submission, error)
	CancelApplication(ctx context.Context, userID string) error
	ListUserSubmissions(ctx context.Context, userID string) ([]entities.Submission, error)
	ActiveCount() int
}

type ApplicationUseCase struct {
	store          interfaces.ISessionStore
	submissions    interfaces.ISubmissionRepository
	gateway        interfaces.IPlatformGateway
	questions      map[string][]entities.Question
	staffChannelID string
}

var _ IApplicationUseCase = (*ApplicationUseCase)(nil)

func NewApplicationUseCase(
	store interfaces.ISessionStore,
	submissions interfaces.ISubmissionRepository,
	gateway interfaces.IPlatformGateway,
	questions map[string][]entities.Question,
	staffChannelID string,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		store:          store,
		submissions:    submissions,
		gateway:        gateway,
		questions:      questions,
		staffChannelID: staffChannelID,
	}
}

func (u *ApplicationUseCase) StartApplication(ctx context.Context, userID, position string) (entities.Session, error) {
	userID = strings.TrimSpace(userID)
	position = strings.TrimSpace(position)
	if userID == "" {
		return entities.Session{}, ErrInvalidApplicantID
	}

	qs := u.questions[position]
	if len(qs) == 0 {
		return entities.Session{}, ErrUnknownPosition
	}

	session, err := u.store.Start(userID, entities.WorkflowKindApplication, position, qs)
	if err != nil {
		if errors.Is(err, interfaces.ErrNoQuestions) {
			return entities.Session{}, ErrUnknownPosition
		}
		return entities.Session{}, err
	}
	log.Printf("[application][usecase] started user_id=%s position=%s questions=%d", userID, position, len(qs))

	if err := u.sendQuestion(ctx, userID, qs[0], 1, len(qs), position); err != nil {
		// The user cannot receive DMs, so the flow cannot proceed; discard the
		// session rather than leaving it to time out.
		u.store.Remove(userID)
		log.Printf("[application][usecase] first question undeliverable user_id=%s err=%v", userID, err)
		return entities.Session{}, fmt.Errorf("%w: %v", ErrApplicantUnreachable, err)
	}
	return session, nil
}

func (u *ApplicationUseCase) HandleDirectMessage(ctx context.Context, userID, content string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidApplicantID
	}

	adv, ok := u.store.RecordAnswer(userID, content)
	if !ok {
		// Unrelated DM; nothing in flight for this user.
		return nil
	}

	if !adv.Completed {
		if err := u.sendQuestion(ctx, userID, adv.Next, adv.Number, adv.Total, adv.Session.Position); err != nil {
			// The answer is already recorded; keep the session so the user can
			// continue once their DMs reopen. The inactivity timer bounds how
			// long that grace lasts.
			log.Printf("[application][usecase] next question undeliverable user_id=%s err=%v", userID, err)
		}
		return nil
	}

	_, err := u.complete(ctx, adv.Session)
	return err
}

func (u *ApplicationUseCase) RetryCompletion(ctx context.Context, userID string) (entities.Submission, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Submission{}, ErrInvalidApplicantID
	}

	session, ok := u.store.Get(userID)
	if !ok {
		return entities.Submission{}, ErrNoActiveApplication
	}
	if session.Status != entities.SessionStatusCompleted {
		return entities.Submission{}, ErrApplicationNotComplete
	}
	return u.complete(ctx, session)
}

func (u *ApplicationUseCase) CancelApplication(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidApplicantID
	}
	if _, ok := u.store.Get(userID); !ok {
		return ErrNoActiveApplication
	}
	u.store.Remove(userID)
	log.Printf("[application][usecase] cancelled user_id=%s", userID)
	return nil
}

func (u *ApplicationUseCase) ListUserSubmissions(ctx context.Context, userID string) ([]entities.Submission, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidApplicantID
	}
	return u.submissions.ListByUserID(ctx, userID)
}

func (u *ApplicationUseCase) ActiveCount() int {
	return u.store.Count()
}

// complete persists the submission from a finished session and fires the
// follow-up messages. On persistence failure the session is retained so the
// completion can be retried; message failures after a successful persist are
// logged but never fail the completion.
func (u *ApplicationUseCase) complete(ctx context.Context, session entities.Session) (entities.Submission, error) {
	submission := entities.Submission{
		ID:          uuid.NewString(),
		UserID:      session.UserID,
		Kind:        session.Kind,
		Position:    session.Position,
		Answers:     orderedAnswers(session),
		SubmittedAt: time.Now().UTC(),
		Status:      entities.ReviewStatusPendingReview,
	}

	created, err := u.submissions.Create(ctx, submission)
	if err != nil {
		log.Printf("[application][usecase] submission persist failed user_id=%s err=%v", session.UserID, err)
		return entities.Submission{}, fmt.Errorf("%w: %v", ErrSubmissionPersist, err)
	}
	log.Printf("[application][usecase] submission saved id=%s user_id=%s position=%s", created.ID, created.UserID, created.Position)

	confirmation := fmt.Sprintf("Thank you! Your application for **%s** has been submitted and is pending review.", session.Position)
	if err := u.gateway.SendDirectMessage(ctx, session.UserID, confirmation); err != nil {
		log.Printf("[application][usecase] confirmation undeliverable user_id=%s err=%v", session.UserID, err)
	}
	if u.staffChannelID != "" {
		if err := u.gateway.SendChannelMessage(ctx, u.staffChannelID, staffNotification(created)); err != nil {
			log.Printf("[application][usecase] staff notification failed channel_id=%s err=%v", u.staffChannelID, err)
		}
	}

	u.store.Remove(session.UserID)
	return created, nil
}

func (u *ApplicationUseCase) sendQuestion(ctx context.Context, userID string, q entities.Question, number, total int, position string) error {
	content := fmt.Sprintf("**%s application — question %d of %d**\n\n%s", position, number, total, q.Prompt)
	return u.gateway.SendDirectMessage(ctx, userID, content)
}

// orderedAnswers flattens the session's answer map back into questionnaire
// order.
func orderedAnswers(session entities.Session) []entities.SubmissionAnswer {
	answers := make([]entities.SubmissionAnswer, 0, len(session.Questions))
	for _, q := range session.Questions {
		answers = append(answers, entities.SubmissionAnswer{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Answer:     session.Answers[q.ID],
		})
	}
	return answers
}

func staffNotification(s entities.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New application received!\n**Position:** %s\n**Applicant:** <@%s>\n**Submission:** %s\n", s.Position, s.UserID, s.ID)
	for i, a := range s.Answers {
		fmt.Fprintf(&b, "\n**%d. %s**\n%s\n", i+1, a.Prompt, truncateAnswer(a.Answer))
	}
	return b.String()
}

func truncateAnswer(s string) string {
	runes := []rune(s)
	if len(runes) <= answerDisplayLimit {
		return s
	}
	return string(runes[:answerDisplayLimit-3]) + "..."
}
