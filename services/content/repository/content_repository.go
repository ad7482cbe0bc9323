package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/techclub-services/services/content/models"
)

// ContentRepository handles members, gallery, testimonials and submissions.
// These collections share simple CRUD shapes, so one repository covers them.
type ContentRepository struct {
	members      *mongo.Collection
	gallery      *mongo.Collection
	testimonials *mongo.Collection
	submissions  *mongo.Collection
}

// NewContentRepository creates the repository.
func NewContentRepository(database *mongo.Database) *ContentRepository {
	return &ContentRepository{
		members:      database.Collection("members"),
		gallery:      database.Collection("gallery"),
		testimonials: database.Collection("testimonials"),
		submissions:  database.Collection("submissions"),
	}
}

// --- members ---

// ListMembers returns all members sorted by display order.
func (r *ContentRepository) ListMembers(ctx context.Context) ([]models.Member, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.members.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer cur.Close(ctx)

	var result []models.Member
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}
	return result, nil
}

// CreateMember inserts a member and fills in its generated ID.
func (r *ContentRepository) CreateMember(ctx context.Context, m *models.Member) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	res, err := r.members.InsertOne(ctx, m)
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateMember applies a partial update and returns the updated member, or
// nil when the id does not exist.
func (r *ContentRepository) UpdateMember(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Member, error) {
	var m models.Member
	err := r.members.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	return &m, nil
}

// DeleteMember removes a member; false when the id does not exist.
func (r *ContentRepository) DeleteMember(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.members.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete member: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// --- gallery ---

// ListGallery returns gallery items, newest first.
func (r *ContentRepository) ListGallery(ctx context.Context) ([]models.GalleryItem, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.gallery.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	defer cur.Close(ctx)

	var result []models.GalleryItem
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode gallery: %w", err)
	}
	return result, nil
}

// CreateGalleryItem inserts a gallery item and fills in its generated ID.
func (r *ContentRepository) CreateGalleryItem(ctx context.Context, item *models.GalleryItem) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	res, err := r.gallery.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("insert gallery item: %w", err)
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// DeleteGalleryItem removes a gallery item; false when the id does not exist.
func (r *ContentRepository) DeleteGalleryItem(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.gallery.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete gallery item: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// --- testimonials ---

// ListTestimonials returns testimonials matching the filter, newest first.
// Pass an empty filter for the admin view.
func (r *ContentRepository) ListTestimonials(ctx context.Context, filter bson.M) ([]models.Testimonial, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.testimonials.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer cur.Close(ctx)

	var result []models.Testimonial
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}
	return result, nil
}

// CreateTestimonial inserts a testimonial and fills in its generated ID.
func (r *ContentRepository) CreateTestimonial(ctx context.Context, t *models.Testimonial) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	res, err := r.testimonials.InsertOne(ctx, t)
	if err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	t.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateTestimonial applies a partial update and returns the updated
// testimonial, or nil when the id does not exist.
func (r *ContentRepository) UpdateTestimonial(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Testimonial, error) {
	var t models.Testimonial
	err := r.testimonials.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	return &t, nil
}

// DeleteTestimonial removes a testimonial; false when the id does not exist.
func (r *ContentRepository) DeleteTestimonial(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.testimonials.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete testimonial: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// --- submissions ---

// ListSubmissions returns join requests, newest first.
func (r *ContentRepository) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.submissions.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer cur.Close(ctx)

	var result []models.Submission
	if err := cur.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	return result, nil
}

// CreateSubmission inserts a join request and fills in its generated ID.
func (r *ContentRepository) CreateSubmission(ctx context.Context, s *models.Submission) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	res, err := r.submissions.InsertOne(ctx, s)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	s.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateSubmissionStatus sets a submission's status and returns the updated
// record, or nil when the id does not exist.
func (r *ContentRepository) UpdateSubmissionStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Submission, error) {
	var s models.Submission
	err := r.submissions.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update submission: %w", err)
	}
	return &s, nil
}
