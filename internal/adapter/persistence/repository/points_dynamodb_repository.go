package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"discord_clerk/internal/domain/entities"
	"discord_clerk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPointsTableName  = "points"
	defaultHistoryTableName = "points_history"
	historyUserIDIndex      = "user_id-index"

	// historyTimestampLayout pads the fractional second to nine digits so
	// entries within the same second still sort lexicographically.
	historyTimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

type pointsProjectionItem struct {
	UserID string `dynamodbav:"user_id"`
	Total  int    `dynamodbav:"total"`
}

type pointsEntryItem struct {
	ID            string `dynamodbav:"id"`
	UserID        string `dynamodbav:"user_id"`
	Action        string `dynamodbav:"action"`
	Amount        int    `dynamodbav:"amount"`
	Reason        string `dynamodbav:"reason"`
	ModeratorID   string `dynamodbav:"moderator_id"`
	Timestamp     string `dynamodbav:"timestamp"`
	PreviousTotal int    `dynamodbav:"previous_total"`
	NewTotal      int    `dynamodbav:"new_total"`
}

// PointsDynamoRepository persists the infraction ledger in DynamoDB.
//
// Table requirements:
//   - projection table: PK user_id (string), attribute total (number)
//   - history table:    PK id (string),
//     GSI user_id-index (PK user_id, SK timestamp)
//
// Timestamps are stored with a fixed-width fractional second so the strings
// sort lexicographically and the GSI sort key gives chronological order for
// free. RFC3339Nano would not: it trims trailing zeros, and a whole-second
// "…:01Z" sorts after "…:01.5Z" in the same second.

type PointsDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	historyTable string
}

var _ interfaces.IPointsRepository = (*PointsDynamoRepository)(nil)

func NewPointsDynamoRepository(ddb *dynamodb.Client) *PointsDynamoRepository {
	return &PointsDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("POINTS_TABLE", defaultPointsTableName),
		historyTable: getenvDefault("POINTS_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *PointsDynamoRepository) GetTotal(ctx context.Context, userID string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}

	var it pointsProjectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, err
	}
	return it.Total, nil
}

// Append writes the history entry and the new projection value in one
// transaction so the two tables can never disagree for the user.
func (r *PointsDynamoRepository) Append(ctx context.Context, entry entities.PointsEntry) error {
	entryAV, err := attributevalue.MarshalMap(toPointsEntryItem(entry))
	if err != nil {
		return err
	}
	projectionAV, err := attributevalue.MarshalMap(pointsProjectionItem{
		UserID: entry.UserID,
		Total:  entry.NewTotal,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.historyTable),
					Item:                entryAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      projectionAV,
				},
			},
		},
	})
	return err
}

func (r *PointsDynamoRepository) History(ctx context.Context, userID string, limit int) ([]entities.PointsEntry, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.historyTable),
		IndexName:              aws.String(historyUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		// Most recent first.
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.PointsEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pointsEntryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromPointsEntryItem(it))
	}
	return entries, nil
}

func (r *PointsDynamoRepository) ListTotals(ctx context.Context) ([]entities.UserPoints, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#total > :zero"),
		ExpressionAttributeNames: map[string]string{
			"#total": "total",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: strconv.Itoa(0)},
		},
	})
	if err != nil {
		return nil, err
	}

	totals := make([]entities.UserPoints, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pointsProjectionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		totals = append(totals, entities.UserPoints{UserID: it.UserID, Total: it.Total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Total > totals[j].Total })
	return totals, nil
}

func toPointsEntryItem(e entities.PointsEntry) pointsEntryItem {
	return pointsEntryItem{
		ID:            e.ID,
		UserID:        e.UserID,
		Action:        string(e.Action),
		Amount:        e.Amount,
		Reason:        e.Reason,
		ModeratorID:   e.ModeratorID,
		Timestamp:     e.Timestamp.UTC().Format(historyTimestampLayout),
		PreviousTotal: e.PreviousTotal,
		NewTotal:      e.NewTotal,
	}
}

func fromPointsEntryItem(it pointsEntryItem) entities.PointsEntry {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.PointsEntry{
		ID:            it.ID,
		UserID:        it.UserID,
		Action:        entities.PointsAction(it.Action),
		Amount:        it.Amount,
		Reason:        it.Reason,
		ModeratorID:   it.ModeratorID,
		Timestamp:     ts,
		PreviousTotal: it.PreviousTotal,
		NewTotal:      it.NewTotal,
	}
}
