package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"discord_clerk/internal/domain/entities"
	"discord_clerk/internal/usecase/interfaces"
	mock_interfaces "discord_clerk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testQuestions = map[string][]entities.Question{
	"moderator": {
		{ID: "q1", Prompt: "Why do you want to moderate?"},
		{ID: "q2", Prompt: "How much time can you commit?"},
	},
}

func TestApplicationUseCase_StartApplication(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewApplicationUseCase(nil, nil, nil, testQuestions, "")
		_, err := uc.StartApplication(context.Background(), "  ", "moderator")
		if !errors.Is(err, ErrInvalidApplicantID) {
			t.Fatalf("expected ErrInvalidApplicantID, got %v", err)
		}
	})

	t.Run("unknown position", func(t *testing.T) {
		uc := NewApplicationUseCase(nil, nil, nil, testQuestions, "")
		_, err := uc.StartApplication(context.Background(), "u-1", "astronaut")
		if !errors.Is(err, ErrUnknownPosition) {
			t.Fatalf("expected ErrUnknownPosition, got %v", err)
		}
	})

	t.Run("sends first question", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewApplicationUseCase(store, nil, gateway, testQuestions, "")

		session := entities.Session{UserID: "u-1", Position: "moderator", Questions: testQuestions["moderator"]}
		store.EXPECT().Start("u-1", entities.WorkflowKindApplication, "moderator", testQuestions["moderator"]).Return(session, nil)
		gateway.EXPECT().SendDirectMessage(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, content string) error {
				if !strings.Contains(content, "question 1 of 2") || !strings.Contains(content, "Why do you want to moderate?") {
					t.Fatalf("unexpected first question: %q", content)
				}
				return nil
			},
		)

		got, err := uc.StartApplication(context.Background(), "u-1", "moderator")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UserID != "u-1" {
			t.Fatalf("unexpected session: %+v", got)
		}
	})

	t.Run("closed DMs discard the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewApplicationUseCase(store, nil, gateway, testQuestions, "")

		store.EXPECT().Start("u-1", entities.WorkflowKindApplication, "moderator", gomock.Any()).Return(entities.Session{UserID: "u-1"}, nil)
		gateway.EXPECT().SendDirectMessage(gomock.Any(), "u-1", gomock.Any()).Return(errors.New("cannot send messages to this user"))
		store.EXPECT().Remove("u-1")

		_, err := uc.StartApplication(context.Background(), "u-1", "moderator")
		if !errors.Is(err, ErrApplicantUnreachable) {
			t.Fatalf("expected ErrApplicantUnreachable, got %v", err)
		}
	})
}

func TestApplicationUseCase_HandleDirectMessage(t *testing.T) {
	t.Run("unrelated DM is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewApplicationUseCase(store, nil, nil, testQuestions, "")

		store.EXPECT().RecordAnswer("u-1", "hello bot").Return(interfaces.Advance{}, false)

		if err := uc.HandleDirectMessage(context.Background(), "u-1", "hello bot"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mid-flow answer sends next question", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewApplicationUseCase(store, nil, gateway, testQuestions, "")

		adv := interfaces.Advance{
			Next:    entities.Question{ID: "q2", Prompt: "How much time can you commit?"},
			Number:  2,
			Total:   2,
			Session: entities.Session{UserID: "u-1", Position: "moderator"},
		}
		store.EXPECT().RecordAnswer("u-1", "I like helping").Return(adv, true)
		gateway.EXPECT().SendDirectMessage(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, content string) error {
				if !strings.Contains(content, "question 2 of 2") {
					t.Fatalf("unexpected next question: %q", content)
				}
				return nil
			},
		)

		if err := uc.HandleDirectMessage(context.Background(), "u-1", "I like helping"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("undeliverable next question keeps session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewApplicationUseCase(store, nil, gateway, testQuestions, "")

		adv := interfaces.Advance{Next: entities.Question{ID: "q2"}, Number: 2, Total: 2}
		store.EXPECT().RecordAnswer("u-1", "answer").Return(adv, true)
		gateway.EXPECT().SendDirectMessage(gomock.Any(), "u-1", gomock.Any()).Return(errors.New("closed DMs"))

		// No Remove expected; the answer stays recorded.
		if err := uc.HandleDirectMessage(context.Background(), "u-1", "answer"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("final answer persists the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		submissions := mock_interfaces.NewMockISubmissionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewApplicationUseCase(store, submissions, gateway, testQuestions, "staff-1")

		session := entities.Session{
			UserID:    "u-1",
			Kind:      entities.WorkflowKindApplication,
			Position:  "moderator",
			Questions: testQuestions["moderator"],
			Answers:   map[string]string{"q1": "I like helping", "q2": "10 hours a week"},
			Status:    entities.SessionStatusCompleted,
		}
		store.EXPECT().RecordAnswer("u-1", "10 hours a week").Return(interfaces.Advance{Completed: true, Session: session}, true)
		submissions.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Submission{})).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) {
				if s.ID == "" || s.Position != "moderator" || s.Status != entities.ReviewStatusPendingReview {
					t.Fatalf("unexpected submission: %+v", s)
				}
				if len(s.Answers) != 2 || s.Answers[0].QuestionID != "q1" || s.Answers[1].Answer != "10 hours a week" {
					t.Fatalf("answers out of order: %+v", s.Answers)
				}
				return s, nil
			},
		)
		gateway.EXPECT().SendDirectMessage(gomock.Any(), "u-1", gomock.Any()).Return(nil)
		gateway.EXPECT().SendChannelMessage(gomock.Any(), "staff-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, content string) error {
				if !strings.Contains(content, "New application received!") || !strings.Contains(content, "<@u-1>") {
					t.Fatalf("unexpected staff notification: %q", content)
				}
				return nil
			},
		)
		store.EXPECT().Remove("u-1")

		if err := uc.HandleDirectMessage(context.Background(), "u-1", "10 hours a week"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("persist failure keeps session for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		submissions := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewApplicationUseCase(store, submissions, nil, testQuestions, "")

		session := entities.Session{UserID: "u-1", Position: "moderator", Status: entities.SessionStatusCompleted}
		store.EXPECT().RecordAnswer("u-1", "last answer").Return(interfaces.Advance{Completed: true, Session: session}, true)
		submissions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Submission{}, errors.New("throughput exceeded"))

		// No Remove: the session must survive for RetryCompletion.
		err := uc.HandleDirectMessage(context.Background(), "u-1", "last answer")
		if !errors.Is(err, ErrSubmissionPersist) {
			t.Fatalf("expected ErrSubmissionPersist, got %v", err)
		}
	})
}

func TestApplicationUseCase_RetryCompletion(t *testing.T) {
	t.Run("no active session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewApplicationUseCase(store, nil, nil, testQuestions, "")

		store.EXPECT().Get("u-1").Return(entities.Session{}, false)

		_, err := uc.RetryCompletion(context.Background(), "u-1")
		if !errors.Is(err, ErrNoActiveApplication) {
			t.Fatalf("expected ErrNoActiveApplication, got %v", err)
		}
	})

	t.Run("in-progress session is not retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewApplicationUseCase(store, nil, nil, testQuestions, "")

		store.EXPECT().Get("u-1").Return(entities.Session{UserID: "u-1", Status: entities.SessionStatusInProgress}, true)

		_, err := uc.RetryCompletion(context.Background(), "u-1")
		if !errors.Is(err, ErrApplicationNotComplete) {
			t.Fatalf("expected ErrApplicationNotComplete, got %v", err)
		}
	})

	t.Run("retry persists and clears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		submissions := mock_interfaces.NewMockISubmissionRepository(ctrl)
		gateway := mock_interfaces.NewMockIPlatformGateway(ctrl)
		uc := NewApplicationUseCase(store, submissions, gateway, testQuestions, "")

		session := entities.Session{UserID: "u-1", Position: "moderator", Status: entities.SessionStatusCompleted}
		store.EXPECT().Get("u-1").Return(session, true)
		submissions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) { return s, nil },
		)
		gateway.EXPECT().SendDirectMessage(gomock.Any(), "u-1", gomock.Any()).Return(nil)
		store.EXPECT().Remove("u-1")

		submission, err := uc.RetryCompletion(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if submission.UserID != "u-1" {
			t.Fatalf("unexpected submission: %+v", submission)
		}
	})
}

func TestApplicationUseCase_CancelApplication(t *testing.T) {
	t.Run("no active session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewApplicationUseCase(store, nil, nil, testQuestions, "")

		store.EXPECT().Get("u-1").Return(entities.Session{}, false)

		if err := uc.CancelApplication(context.Background(), "u-1"); !errors.Is(err, ErrNoActiveApplication) {
			t.Fatalf("expected ErrNoActiveApplication, got %v", err)
		}
	})

	t.Run("cancel removes the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewApplicationUseCase(store, nil, nil, testQuestions, "")

		store.EXPECT().Get("u-1").Return(entities.Session{UserID: "u-1"}, true)
		store.EXPECT().Remove("u-1")

		if err := uc.CancelApplication(context.Background(), "u-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTruncateAnswer(t *testing.T) {
	if got := truncateAnswer("short"); got != "short" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	long := strings.Repeat("é", answerDisplayLimit+10)
	got := truncateAnswer(long)
	if runes := []rune(got); len(runes) != answerDisplayLimit {
		t.Fatalf("expected %d runes, got %d", answerDisplayLimit, len(runes))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}
