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

const (
	defaultPaymentsTableName = "payments"
	paymentsBookingIDIndex   = "booking_id-index"
	paymentsInvoiceIDIndex   = "xendit_invoice_id-index"
)

type paymentItem struct {
	ID              string  `dynamodbav:"id"`
	BookingID       string  `dynamodbav:"booking_id"`
	Amount          float64 `dynamodbav:"amount"`
	Currency        string  `dynamodbav:"currency"`
	Status          string  `dynamodbav:"status"`
	PaymentMethod   string  `dynamodbav:"payment_method,omitempty"`
	XenditInvoiceID string  `dynamodbav:"xendit_invoice_id"`
	XenditPaymentID string  `dynamodbav:"xendit_payment_id,omitempty"`
	PaymentLink     string  `dynamodbav:"payment_link"`
	ExpiryDate      string  `dynamodbav:"expiry_date"`
	PaidAt          string  `dynamodbav:"paid_at,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)
//   - GSI: xendit_invoice_id-index (PK: xendit_invoice_id)
//
// The status column is the single protected piece of shared state: MarkPaid
// and MarkFailed write it with a ConditionExpression pinning the pre-state to
// pending, so concurrent poll/webhook reconciliation cannot double-apply a
// transition or leave the paid fields half-written.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// GetByBookingID returns the most recently created payment for the booking.
func (r *PaymentDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.Payment, error) {
	items, err := r.queryByBookingID(ctx, bookingID, nil)
	if err != nil {
		return entities.Payment{}, err
	}
	return latestPayment(items), nil
}

// GetOpenByBookingID returns the payment blocking a new intent, if any: a
// pending one (invoice still open) or a paid one (booking already settled).
func (r *PaymentDynamoRepository) GetOpenByBookingID(ctx context.Context, bookingID string) (entities.Payment, error) {
	filter := &dynamodb.QueryInput{
		FilterExpression: aws.String("#status = :pending OR #status = :paid"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":paid":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
		},
	}
	items, err := r.queryByBookingID(ctx, bookingID, filter)
	if err != nil {
		return entities.Payment{}, err
	}
	return latestPayment(items), nil
}

func (r *PaymentDynamoRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceIDIndex),
		KeyConditionExpression: aws.String("xendit_invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// MarkPaid applies the pending -> paid transition. The condition pins the
// stored status to pending at write time; a rejected condition means another
// caller already finished the transition and is reported as applied=false.
func (r *PaymentDynamoRepository) MarkPaid(ctx context.Context, id, paymentMethod, xenditPaymentID string, paidAt time.Time) (entities.Payment, bool, error) {
	return r.transition(ctx, id,
		"SET #status = :to, #payment_method = :pm, #xendit_payment_id = :xpid, #paid_at = :paid_at",
		map[string]types.AttributeValue{
			":from":    &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":to":      &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":pm":      &types.AttributeValueMemberS{Value: paymentMethod},
			":xpid":    &types.AttributeValueMemberS{Value: xenditPaymentID},
			":paid_at": &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)},
		},
		map[string]string{
			"#status":            "status",
			"#payment_method":    "payment_method",
			"#xendit_payment_id": "xendit_payment_id",
			"#paid_at":           "paid_at",
		},
	)
}

// MarkFailed applies the pending -> failed transition under the same
// compare-and-swap discipline as MarkPaid.
func (r *PaymentDynamoRepository) MarkFailed(ctx context.Context, id string) (entities.Payment, bool, error) {
	return r.transition(ctx, id,
		"SET #status = :to",
		map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":to":   &types.AttributeValueMemberS{Value: string(entities.PaymentStatusFailed)},
		},
		map[string]string{
			"#status": "status",
		},
	)
}

func (r *PaymentDynamoRepository) transition(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Payment, bool, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, false, nil
		}
		return entities.Payment{}, false, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, false, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, false, err
	}
	return fromPaymentItem(it), true, nil
}

func (r *PaymentDynamoRepository) queryByBookingID(ctx context.Context, bookingID string, filter *dynamodb.QueryInput) ([]entities.Payment, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	}
	if filter != nil {
		in.FilterExpression = filter.FilterExpression
		in.ExpressionAttributeNames = filter.ExpressionAttributeNames
		for k, v := range filter.ExpressionAttributeValues {
			in.ExpressionAttributeValues[k] = v
		}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func latestPayment(items []entities.Payment) entities.Payment {
	if len(items) == 0 {
		return entities.Payment{}
	}
	latest := items[0]
	for _, p := range items[1:] {
		if p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:              p.ID,
		BookingID:       p.BookingID,
		Amount:          p.Amount,
		Currency:        p.Currency,
		Status:          string(p.Status),
		PaymentMethod:   p.PaymentMethod,
		XenditInvoiceID: p.XenditInvoiceID,
		XenditPaymentID: p.XenditPaymentID,
		PaymentLink:     p.PaymentLink,
		ExpiryDate:      p.ExpiryDate.UTC().Format(time.RFC3339Nano),
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.PaidAt != nil {
		it.PaidAt = p.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	expiry, _ := time.Parse(time.RFC3339Nano, it.ExpiryDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.Payment{
		ID:              it.ID,
		BookingID:       it.BookingID,
		Amount:          it.Amount,
		Currency:        it.Currency,
		Status:          entities.PaymentStatus(it.Status),
		PaymentMethod:   it.PaymentMethod,
		XenditInvoiceID: it.XenditInvoiceID,
		XenditPaymentID: it.XenditPaymentID,
		PaymentLink:     it.PaymentLink,
		ExpiryDate:      expiry,
		CreatedAt:       createdAt,
	}
	if it.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			p.PaidAt = &paidAt
		}
	}
	return p
}
