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

	"github.com/techclub-services/services/event/models"
)

// EventRepository handles event persistence.
type EventRepository struct {
	col *mongo.Collection
}

// NewEventRepository creates an event repository and ensures its indexes.
func NewEventRepository(database *mongo.Database) *EventRepository {
	r := &EventRepository{col: database.Collection("events")}
	if err := r.ensureIndexes(context.Background()); err != nil {
		log.Printf("[warn] events ensure indexes: %v", err)
	}
	return r
}

func (r *EventRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("events_slug_unique"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: -1}},
			Options: options.Index().SetName("events_date"),
		},
	})
	return err
}

// FindAll returns all events, newest date first.
func (r *EventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	var result []models.Event
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return result, nil
}

// FindByID returns the event with the given id, or nil when absent.
func (r *EventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var e models.Event
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// FindBySlug returns the event with the given slug, or nil when absent.
func (r *EventRepository) FindBySlug(ctx context.Context, slug string) (*models.Event, error) {
	var e models.Event
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return &e, nil
}

// Resolve looks an event up by ObjectID when the identifier parses as one,
// falling back to slug lookup. Returns nil when neither matches.
func (r *EventRepository) Resolve(ctx context.Context, idOrSlug string) (*models.Event, error) {
	if oid, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
		event, err := r.FindByID(ctx, oid)
		if err != nil {
			return nil, err
		}
		if event != nil {
			return event, nil
		}
	}
	return r.FindBySlug(ctx, idOrSlug)
}

// SlugExists reports whether a slug is taken by any event other than excludeID.
func (r *EventRepository) SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new event and fills in its generated ID.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	res, err := r.col.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update applies a $set document and returns the updated event, or nil when
// the event does not exist.
func (r *EventRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Event, error) {
	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var e models.Event
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &e, nil
}

// Delete removes an event. Returns false when it did not exist.
func (r *EventRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// IncrementRegistrationCount bumps the denormalized counter by delta.
func (r *EventRepository) IncrementRegistrationCount(ctx context.Context, id primitive.ObjectID, delta int) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"registrationCount": delta}})
	if err != nil {
		return fmt.Errorf("increment registration count: %w", err)
	}
	return nil
}

// MarkPastEventsCompleted flips upcoming events whose date has passed to
// completed. Used by the status sweep scheduler.
func (r *EventRepository) MarkPastEventsCompleted(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"status": models.StatusUpcoming, "date": bson.M{"$gt": time.Time{}, "$lt": now}},
		bson.M{"$set": bson.M{"status": models.StatusCompleted, "updatedAt": now}},
	)
	if err != nil {
		return 0, fmt.Errorf("mark past events completed: %w", err)
	}
	return res.ModifiedCount, nil
}
