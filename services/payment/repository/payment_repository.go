package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techclub-services/services/payment/models"
)

// historyLimit caps the admin payment history query.
const historyLimit = 200

// PaymentRepository handles payment-order persistence.
type PaymentRepository struct {
	col *mongo.Collection
}

// NewPaymentRepository creates the repository and ensures its indexes.
func NewPaymentRepository(database *mongo.Database) *PaymentRepository {
	r := &PaymentRepository{col: database.Collection("payments")}
	if err := r.ensureIndexes(context.Background()); err != nil {
		log.Printf("[warn] payments ensure indexes: %v", err)
	}
	return r
}

func (r *PaymentRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "orderId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("payments_order_id_unique"),
		},
		{
			Keys:    bson.D{{Key: "event", Value: 1}, {Key: "user", Value: 1}},
			Options: options.Index().SetName("payments_event_user"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("payments_status"),
		},
	})
	return err
}

// Create inserts a payment order and fills in its generated ID.
func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByOrderID returns the payment with the given orderId, or nil.
func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	var p models.Payment
	err := r.col.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return &p, nil
}

// MarkSuccess records a verified payment and its linked registration.
func (r *PaymentRepository) MarkSuccess(ctx context.Context, id primitive.ObjectID, paymentID, signature string, registrationID primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":       models.StatusSuccess,
		"paymentId":    paymentID,
		"signature":    signature,
		"registration": registrationID,
		"paidAt":       now,
		"updatedAt":    now,
	}})
	if err != nil {
		return fmt.Errorf("mark payment success: %w", err)
	}
	return nil
}

// MarkFailed records a failed verification attempt.
func (r *PaymentRepository) MarkFailed(ctx context.Context, id primitive.ObjectID, paymentID string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":    models.StatusFailed,
		"paymentId": paymentID,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("mark payment failed: %w", err)
	}
	return nil
}

// History returns the newest payments, capped at the history limit.
func (r *PaymentRepository) History(ctx context.Context) ([]models.Payment, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(historyLimit)
	cur, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cur.Close(ctx)

	var result []models.Payment
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return result, nil
}
