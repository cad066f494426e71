package repository

import (
	"context"
	"errors"
	"time"

	"discord_clerk/internal/domain/entities"
	"discord_clerk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersUserIDIndex      = "user_id-index"

	// intakeItemID keys the single intake-status record kept alongside the
	// orders. It carries no user_id attribute so it never surfaces in the GSI.
	intakeItemID = "intake-status"
)

type orderItem struct {
	ID              string                 `dynamodbav:"id"`
	UserID          string                 `dynamodbav:"user_id"`
	OrderType       string                 `dynamodbav:"order_type"`
	Details         map[string]interface{} `dynamodbav:"details,omitempty"`
	GuildID         string                 `dynamodbav:"guild_id"`
	ChannelID       string                 `dynamodbav:"channel_id,omitempty"`
	Status          string                 `dynamodbav:"status"`
	TermsAccepted   bool                   `dynamodbav:"terms_accepted"`
	TermsAcceptedAt string                 `dynamodbav:"terms_accepted_at,omitempty"`
	CreatedAt       string                 `dynamodbav:"created_at"`
}

type intakeItem struct {
	ID        string `dynamodbav:"id"`
	Status    string `dynamodbav:"status"`
	UpdatedBy string `dynamodbav:"updated_by,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities and the intake singleton in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) SetChannelID(ctx context.Context, id, channelID string) (entities.Order, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #channel_id = :channel_id"
		vals := map[string]types.AttributeValue{
			":channel_id": &types.AttributeValueMemberS{Value: channelID},
		}
		names := map[string]string{
			"#channel_id": "channel_id",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) MarkTermsAccepted(ctx context.Context, id string, at time.Time) (entities.Order, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #terms_accepted = :accepted, #terms_accepted_at = :at, #status = :status"
		vals := map[string]types.AttributeValue{
			":accepted": &types.AttributeValueMemberBOOL{Value: true},
			":at":       &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":status":   &types.AttributeValueMemberS{Value: string(entities.OrderStatusInProgress)},
		}
		names := map[string]string{
			"#terms_accepted":    "terms_accepted",
			"#terms_accepted_at": "terms_accepted_at",
			"#status":            "status",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetIntakeState(ctx context.Context) (entities.IntakeState, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: intakeItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.IntakeState{}, err
	}
	if len(out.Item) == 0 {
		return entities.IntakeState{}, nil
	}

	var it intakeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.IntakeState{}, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.IntakeState{
		Status:    entities.IntakeStatus(it.Status),
		UpdatedBy: it.UpdatedBy,
		UpdatedAt: updatedAt,
	}, nil
}

func (r *OrderDynamoRepository) SetIntakeState(ctx context.Context, state entities.IntakeState) error {
	av, err := attributevalue.MarshalMap(intakeItem{
		ID:        intakeItemID,
		Status:    string(state.Status),
		UpdatedBy: state.UpdatedBy,
		UpdatedAt: state.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:            o.ID,
		UserID:        o.UserID,
		OrderType:     string(o.OrderType),
		Details:       o.Details,
		GuildID:       o.GuildID,
		ChannelID:     o.ChannelID,
		Status:        string(o.Status),
		TermsAccepted: o.TermsAccepted,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.TermsAcceptedAt != nil {
		it.TermsAcceptedAt = o.TermsAcceptedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	o := entities.Order{
		ID:            it.ID,
		UserID:        it.UserID,
		OrderType:     entities.OrderType(it.OrderType),
		Details:       it.Details,
		GuildID:       it.GuildID,
		ChannelID:     it.ChannelID,
		Status:        entities.OrderStatus(it.Status),
		TermsAccepted: it.TermsAccepted,
		CreatedAt:     createdAt,
	}
	if it.TermsAcceptedAt != "" {
		if at, err := time.Parse(time.RFC3339Nano, it.TermsAcceptedAt); err == nil {
			o.TermsAcceptedAt = &at
		}
	}
	return o
}
