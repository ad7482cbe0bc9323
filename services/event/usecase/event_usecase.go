package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/techclub-services/common/errors"
	"github.com/techclub-services/services/event/models"
	"github.com/techclub-services/services/event/repository"
)

// EventUseCase implements event CRUD with slug derivation.
type EventUseCase struct {
	eventRepo *repository.EventRepository
}

// NewEventUseCase creates the event use case.
func NewEventUseCase(eventRepo *repository.EventRepository) *EventUseCase {
	return &EventUseCase{eventRepo: eventRepo}
}

// List returns all events, newest date first.
func (uc *EventUseCase) List(ctx context.Context) ([]models.Event, error) {
	events, err := uc.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading events", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// Get resolves an event by id or slug.
func (uc *EventUseCase) Get(ctx context.Context, idOrSlug string) (*models.Event, error) {
	event, err := uc.eventRepo.Resolve(ctx, idOrSlug)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading event", err)
	}
	if event == nil {
		return nil, apperrors.NewNotFound("Event not found")
	}
	return event, nil
}

// Create builds a new event from input, deriving a unique slug from the title.
func (uc *EventUseCase) Create(ctx context.Context, input *models.EventInput) (*models.Event, error) {
	if input.Title == nil || *input.Title == "" {
		return nil, apperrors.NewValidation("Title is required")
	}

	event := &models.Event{
		Title:     *input.Title,
		Status:    models.StatusUpcoming,
		EventType: "other",
	}
	applyInput(event, input)

	slug, err := uc.uniqueSlug(ctx, event.Title, primitive.NilObjectID)
	if err != nil {
		return nil, apperrors.NewInternal("Error deriving slug", err)
	}
	event.Slug = slug

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, apperrors.NewInternal("Error creating event", err)
	}
	return event, nil
}

// Update applies a partial update. A changed title re-derives the slug.
func (uc *EventUseCase) Update(ctx context.Context, id string, input *models.EventInput) (*models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Event not found")
	}

	existing, err := uc.eventRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading event", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFound("Event not found")
	}

	set := buildSetDoc(input)
	if input.Title != nil && *input.Title != existing.Title {
		slug, err := uc.uniqueSlug(ctx, *input.Title, oid)
		if err != nil {
			return nil, apperrors.NewInternal("Error deriving slug", err)
		}
		set["slug"] = slug
	}

	updated, err := uc.eventRepo.Update(ctx, oid, set)
	if err != nil {
		return nil, apperrors.NewInternal("Error updating event", err)
	}
	if updated == nil {
		return nil, apperrors.NewNotFound("Event not found")
	}
	return updated, nil
}

// Delete removes an event.
func (uc *EventUseCase) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewNotFound("Event not found")
	}
	deleted, err := uc.eventRepo.Delete(ctx, oid)
	if err != nil {
		return apperrors.NewInternal("Error deleting event", err)
	}
	if !deleted {
		return apperrors.NewNotFound("Event not found")
	}
	return nil
}

// uniqueSlug derives the slug for a title, suffixing -1, -2, ... on collision.
func (uc *EventUseCase) uniqueSlug(ctx context.Context, title string, excludeID primitive.ObjectID) (string, error) {
	return disambiguateSlug(Slugify(title), func(candidate string) (bool, error) {
		return uc.eventRepo.SlugExists(ctx, candidate, excludeID)
	})
}

// disambiguateSlug probes candidates until one is free. Split out so the
// suffixing rule is testable without a store.
func disambiguateSlug(base string, exists func(string) (bool, error)) (string, error) {
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

func applyInput(event *models.Event, input *models.EventInput) {
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.ShortDescription != nil {
		event.ShortDescription = *input.ShortDescription
	}
	if input.Date != nil {
		event.Date = *input.Date
	}
	if input.Time != nil {
		event.Time = *input.Time
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Image != nil {
		event.Image = *input.Image
	}
	if input.Tags != nil {
		event.Tags = *input.Tags
	}
	if input.Status != nil {
		event.Status = *input.Status
	}
	if input.EventType != nil {
		event.EventType = *input.EventType
	}
	if input.TeamSettings != nil {
		event.TeamSettings = *input.TeamSettings
	}
	if input.IsPaid != nil {
		event.IsPaid = *input.IsPaid
	}
	if input.Price != nil {
		event.Price = *input.Price
	}
	if input.MaxAttendees != nil {
		event.MaxAttendees = *input.MaxAttendees
	}
	if input.Gallery != nil {
		event.Gallery = *input.Gallery
	}
}

func buildSetDoc(input *models.EventInput) bson.M {
	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.ShortDescription != nil {
		set["shortDescription"] = *input.ShortDescription
	}
	if input.Date != nil {
		set["date"] = *input.Date
	}
	if input.Time != nil {
		set["time"] = *input.Time
	}
	if input.Location != nil {
		set["location"] = *input.Location
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Tags != nil {
		set["tags"] = *input.Tags
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if input.EventType != nil {
		set["eventType"] = *input.EventType
	}
	if input.TeamSettings != nil {
		set["teamSettings"] = *input.TeamSettings
	}
	if input.IsPaid != nil {
		set["isPaid"] = *input.IsPaid
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.MaxAttendees != nil {
		set["maxAttendees"] = *input.MaxAttendees
	}
	if input.Gallery != nil {
		set["gallery"] = *input.Gallery
	}
	return set
}
