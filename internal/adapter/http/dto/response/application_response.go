package response

import (
	"time"

	"discord_clerk/internal/domain/entities"
)

type SubmissionAnswerResponse struct {
	QuestionID string `json:"question_id"`
	Prompt     string `json:"prompt"`
	Answer     string `json:"answer"`
}

type SubmissionResponse struct {
	ID          string                     `json:"id"`
	UserID      string                     `json:"user_id"`
	Kind        string                     `json:"kind"`
	Position    string                     `json:"position"`
	Answers     []SubmissionAnswerResponse `json:"answers"`
	SubmittedAt time.Time                  `json:"submitted_at"`
	Status      string                     `json:"status"`
}

func FromSubmission(s entities.Submission) SubmissionResponse {
	answers := make([]SubmissionAnswerResponse, 0, len(s.Answers))
	for _, a := range s.Answers {
		answers = append(answers, SubmissionAnswerResponse{
			QuestionID: a.QuestionID,
			Prompt:     a.Prompt,
			Answer:     a.Answer,
		})
	}
	return SubmissionResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Kind:        string(s.Kind),
		Position:    s.Position,
		Answers:     answers,
		SubmittedAt: s.SubmittedAt,
		Status:      string(s.Status),
	}
}

func FromSubmissions(subs []entities.Submission) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubmission(s))
	}
	return out
}
