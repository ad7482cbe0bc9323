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

	"github.com/techclub-services/services/registration/models"
)

// RegistrationRepository handles event-registration persistence.
type RegistrationRepository struct {
	col *mongo.Collection
}

// NewRegistrationRepository creates the repository and ensures its indexes.
// The unique (event, registrationNo) index is the authoritative duplicate
// guard; application-level pre-checks only improve error messages.
func NewRegistrationRepository(database *mongo.Database) *RegistrationRepository {
	r := &RegistrationRepository{col: database.Collection("event_registrations")}
	if err := r.ensureIndexes(context.Background()); err != nil {
		log.Printf("[warn] registrations ensure indexes: %v", err)
	}
	return r
}

func (r *RegistrationRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "event", Value: 1}, {Key: "registrationNo", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("registrations_event_regno_unique"),
		},
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetName("registrations_user"),
		},
		{
			Keys:    bson.D{{Key: "registeredAt", Value: -1}},
			Options: options.Index().SetName("registrations_registered_at"),
		},
	})
	return err
}

// Create inserts a registration and fills in its generated ID. Callers must
// map mongo.IsDuplicateKeyError to the duplicate-registration error.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	if reg.RegisteredAt.IsZero() {
		reg.RegisteredAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, reg)
	if err != nil {
		return err
	}
	reg.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByEventAndRegNo returns the registration for a normalized registration
// number on an event, or nil when absent.
func (r *RegistrationRepository) FindByEventAndRegNo(ctx context.Context, eventID primitive.ObjectID, regNo string) (*models.Registration, error) {
	var reg models.Registration
	err := r.col.FindOne(ctx, bson.M{"event": eventID, "registrationNo": regNo}).Decode(&reg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find registration by regno: %w", err)
	}
	return &reg, nil
}

// FindByEventAndUser returns the registration a user holds on an event, or
// nil when absent.
func (r *RegistrationRepository) FindByEventAndUser(ctx context.Context, eventID, userID primitive.ObjectID) (*models.Registration, error) {
	var reg models.Registration
	err := r.col.FindOne(ctx, bson.M{"event": eventID, "user": userID}).Decode(&reg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find registration by user: %w", err)
	}
	return &reg, nil
}

// FindByEvent returns an event's registrations, newest first.
func (r *RegistrationRepository) FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Registration, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "registeredAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"event": eventID}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer cur.Close(ctx)

	var result []models.Registration
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode registrations: %w", err)
	}
	return result, nil
}

// FindByUser returns a user's registrations across events, newest first.
func (r *RegistrationRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Registration, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "registeredAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user": userID}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list user registrations: %w", err)
	}
	defer cur.Close(ctx)

	var result []models.Registration
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode user registrations: %w", err)
	}
	return result, nil
}
