package repository

import (
	"context"
	"time"

	"discord_clerk/internal/domain/entities"
	"discord_clerk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubmissionsTableName = "submissions"
	submissionsUserIDIndex      = "user_id-index"
)

type submissionAnswerItem struct {
	QuestionID string `dynamodbav:"question_id"`
	Prompt     string `dynamodbav:"prompt"`
	Answer     string `dynamodbav:"answer"`
}

type submissionItem struct {
	ID          string                 `dynamodbav:"id"`
	UserID      string                 `dynamodbav:"user_id"`
	Kind        string                 `dynamodbav:"kind"`
	Position    string                 `dynamodbav:"position"`
	Answers     []submissionAnswerItem `dynamodbav:"answers"`
	SubmittedAt string                 `dynamodbav:"submitted_at"`
	Status      string                 `dynamodbav:"status"`
}

// SubmissionDynamoRepository persists Submission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type SubmissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubmissionRepository = (*SubmissionDynamoRepository)(nil)

func NewSubmissionDynamoRepository(ddb *dynamodb.Client) *SubmissionDynamoRepository {
	return &SubmissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBMISSIONS_TABLE", defaultSubmissionsTableName),
	}
}

func (r *SubmissionDynamoRepository) Create(ctx context.Context, s entities.Submission) (entities.Submission, error) {
	av, err := attributevalue.MarshalMap(toSubmissionItem(s))
	if err != nil {
		return entities.Submission{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Submission{}, err
	}
	return s, nil
}

func (r *SubmissionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Submission, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(submissionsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	subs := make([]entities.Submission, 0, len(out.Items))
	for _, raw := range out.Items {
		var it submissionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		subs = append(subs, fromSubmissionItem(it))
	}
	return subs, nil
}

func toSubmissionItem(s entities.Submission) submissionItem {
	answers := make([]submissionAnswerItem, 0, len(s.Answers))
	for _, a := range s.Answers {
		answers = append(answers, submissionAnswerItem{
			QuestionID: a.QuestionID,
			Prompt:     a.Prompt,
			Answer:     a.Answer,
		})
	}
	return submissionItem{
		ID:          s.ID,
		UserID:      s.UserID,
		Kind:        string(s.Kind),
		Position:    s.Position,
		Answers:     answers,
		SubmittedAt: s.SubmittedAt.UTC().Format(time.RFC3339Nano),
		Status:      string(s.Status),
	}
}

func fromSubmissionItem(it submissionItem) entities.Submission {
	submittedAt, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	answers := make([]entities.SubmissionAnswer, 0, len(it.Answers))
	for _, a := range it.Answers {
		answers = append(answers, entities.SubmissionAnswer{
			QuestionID: a.QuestionID,
			Prompt:     a.Prompt,
			Answer:     a.Answer,
		})
	}
	return entities.Submission{
		ID:          it.ID,
		UserID:      it.UserID,
		Kind:        entities.WorkflowKind(it.Kind),
		Position:    it.Position,
		Answers:     answers,
		SubmittedAt: submittedAt,
		Status:      entities.ReviewStatus(it.Status),
	}
}
