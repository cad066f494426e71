package entities

import "time"

// ReviewStatus represents the manual review state of a submitted application.
// The service only ever writes pending_review; review itself happens outside
// this core.

type ReviewStatus string

const ReviewStatusPendingReview ReviewStatus = "pending_review"

// SubmissionAnswer is one answered question, kept in the original
// questionnaire order.
type SubmissionAnswer struct {
	QuestionID string `json:"question_id"`
	Prompt     string `json:"prompt"`
	Answer     string `json:"answer"`
}

// Submission is the durable record of a fully answered workflow.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Created exactly once at workflow completion and never mutated afterwards.
type Submission struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	Kind        WorkflowKind       `json:"kind"`
	Position    string             `json:"position"`
	Answers     []SubmissionAnswer `json:"answers"`
	SubmittedAt time.Time          `json:"submitted_at"`
	Status      ReviewStatus       `json:"status"`
}
