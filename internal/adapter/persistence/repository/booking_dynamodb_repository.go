package repository

import (
	"context"
	"errors"
	"time"

	"jelajahsabang/internal/domain/entities"
	"jelajahsabang/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBookingsTableName = "bookings"

type bookingItem struct {
	ID            string  `dynamodbav:"id"`
	BookingNumber string  `dynamodbav:"booking_number"`
	ServiceID     string  `dynamodbav:"service_id"`
	UserID        string  `dynamodbav:"user_id"`
	ServiceName   string  `dynamodbav:"service_name"`
	CustomerName  string  `dynamodbav:"customer_name"`
	CustomerEmail string  `dynamodbav:"customer_email"`
	CustomerPhone string  `dynamodbav:"customer_phone,omitempty"`
	StartDate     string  `dynamodbav:"start_date"`
	Quantity      int     `dynamodbav:"quantity"`
	TotalPrice    float64 `dynamodbav:"total_price"`
	Status        string  `dynamodbav:"status"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

// BookingDynamoRepository reads and updates Booking rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Rows are written by the booking CRUD surface; this service only reads them
// and moves status along the payment lifecycle.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func fromBookingItem(it bookingItem) entities.Booking {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Booking{
		ID:            it.ID,
		BookingNumber: it.BookingNumber,
		ServiceID:     it.ServiceID,
		UserID:        it.UserID,
		ServiceName:   it.ServiceName,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		CustomerPhone: it.CustomerPhone,
		StartDate:     startDate,
		Quantity:      it.Quantity,
		TotalPrice:    it.TotalPrice,
		Status:        entities.BookingStatus(it.Status),
		CreatedAt:     createdAt,
	}
}
