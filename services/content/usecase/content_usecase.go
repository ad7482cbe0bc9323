package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/techclub-services/common/errors"
	"github.com/techclub-services/common/validator"
	"github.com/techclub-services/services/content/models"
	"github.com/techclub-services/services/content/repository"
)

// ContentUseCase implements members, gallery, testimonials and submissions.
type ContentUseCase struct {
	repo *repository.ContentRepository
}

// NewContentUseCase creates the content use case.
func NewContentUseCase(repo *repository.ContentRepository) *ContentUseCase {
	return &ContentUseCase{repo: repo}
}

func parseID(id string) (primitive.ObjectID, *apperrors.AppError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewValidation("Invalid id")
	}
	return oid, nil
}

// --- members ---

// ListMembers returns the team page members sorted by display order.
func (uc *ContentUseCase) ListMembers(ctx context.Context) ([]models.Member, error) {
	members, err := uc.repo.ListMembers(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading members", err)
	}
	if members == nil {
		members = []models.Member{}
	}
	return members, nil
}

// CreateMember adds a team member.
func (uc *ContentUseCase) CreateMember(ctx context.Context, input *models.MemberInput) (*models.Member, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, apperrors.NewValidation("Member name is required")
	}

	member := &models.Member{Name: strings.TrimSpace(*input.Name)}
	if input.Role != nil {
		member.Role = strings.TrimSpace(*input.Role)
	}
	if input.Image != nil {
		member.Image = *input.Image
	}
	if input.Order != nil {
		member.Order = *input.Order
	}
	if input.Socials != nil {
		member.Socials = *input.Socials
	}

	if err := uc.repo.CreateMember(ctx, member); err != nil {
		return nil, apperrors.NewInternal("Failed to create member", err)
	}
	return member, nil
}

// UpdateMember applies a partial update to a member.
func (uc *ContentUseCase) UpdateMember(ctx context.Context, id string, input *models.MemberInput) (*models.Member, error) {
	oid, appErr := parseID(id)
	if appErr != nil {
		return nil, appErr
	}

	set := bson.M{}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperrors.NewValidation("Member name cannot be empty")
		}
		set["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Role != nil {
		set["role"] = strings.TrimSpace(*input.Role)
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}
	if input.Socials != nil {
		set["socials"] = *input.Socials
	}
	if len(set) == 0 {
		return nil, apperrors.NewValidation("No fields to update")
	}

	member, err := uc.repo.UpdateMember(ctx, oid, set)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to update member", err)
	}
	if member == nil {
		return nil, apperrors.NewNotFound("Member not found")
	}
	return member, nil
}

// DeleteMember removes a member.
func (uc *ContentUseCase) DeleteMember(ctx context.Context, id string) error {
	oid, appErr := parseID(id)
	if appErr != nil {
		return appErr
	}
	deleted, err := uc.repo.DeleteMember(ctx, oid)
	if err != nil {
		return apperrors.NewInternal("Failed to delete member", err)
	}
	if !deleted {
		return apperrors.NewNotFound("Member not found")
	}
	return nil
}

// --- gallery ---

// ListGallery returns gallery items, newest first.
func (uc *ContentUseCase) ListGallery(ctx context.Context) ([]models.GalleryItem, error) {
	items, err := uc.repo.ListGallery(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading gallery", err)
	}
	if items == nil {
		items = []models.GalleryItem{}
	}
	return items, nil
}

// CreateGalleryItem adds a gallery entry.
func (uc *ContentUseCase) CreateGalleryItem(ctx context.Context, input *models.GalleryInput) (*models.GalleryItem, error) {
	if strings.TrimSpace(input.URL) == "" {
		return nil, apperrors.NewValidation("Image URL is required")
	}

	item := &models.GalleryItem{URL: strings.TrimSpace(input.URL), Caption: strings.TrimSpace(input.Caption)}
	if err := uc.repo.CreateGalleryItem(ctx, item); err != nil {
		return nil, apperrors.NewInternal("Failed to create gallery item", err)
	}
	return item, nil
}

// DeleteGalleryItem removes a gallery entry.
func (uc *ContentUseCase) DeleteGalleryItem(ctx context.Context, id string) error {
	oid, appErr := parseID(id)
	if appErr != nil {
		return appErr
	}
	deleted, err := uc.repo.DeleteGalleryItem(ctx, oid)
	if err != nil {
		return apperrors.NewInternal("Failed to delete gallery item", err)
	}
	if !deleted {
		return apperrors.NewNotFound("Gallery item not found")
	}
	return nil
}

// --- testimonials ---

// ListApprovedTestimonials is the public testimonial view.
func (uc *ContentUseCase) ListApprovedTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return uc.listTestimonials(ctx, bson.M{"status": models.StatusApproved})
}

// ListAllTestimonials is the admin testimonial view, every status included.
func (uc *ContentUseCase) ListAllTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return uc.listTestimonials(ctx, bson.M{})
}

func (uc *ContentUseCase) listTestimonials(ctx context.Context, filter bson.M) ([]models.Testimonial, error) {
	items, err := uc.repo.ListTestimonials(ctx, filter)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading testimonials", err)
	}
	if items == nil {
		items = []models.Testimonial{}
	}
	return items, nil
}

// SubmitTestimonial stores a public submission as pending.
func (uc *ContentUseCase) SubmitTestimonial(ctx context.Context, input *models.TestimonialInput) (*models.Testimonial, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, apperrors.NewValidation("Name is required")
	}
	if input.Text == nil || strings.TrimSpace(*input.Text) == "" {
		return nil, apperrors.NewValidation("Testimonial text is required")
	}

	t := &models.Testimonial{
		Name:   strings.TrimSpace(*input.Name),
		Text:   strings.TrimSpace(*input.Text),
		Status: models.StatusPending,
	}
	if input.Role != nil {
		t.Role = strings.TrimSpace(*input.Role)
	}

	if err := uc.repo.CreateTestimonial(ctx, t); err != nil {
		return nil, apperrors.NewInternal("Failed to submit testimonial", err)
	}
	return t, nil
}

// UpdateTestimonial lets admins edit text or move status (approve/reject).
func (uc *ContentUseCase) UpdateTestimonial(ctx context.Context, id string, input *models.TestimonialInput) (*models.Testimonial, error) {
	oid, appErr := parseID(id)
	if appErr != nil {
		return nil, appErr
	}

	set := bson.M{}
	if input.Name != nil {
		set["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Text != nil {
		set["text"] = strings.TrimSpace(*input.Text)
	}
	if input.Role != nil {
		set["role"] = strings.TrimSpace(*input.Role)
	}
	if input.Status != nil {
		status := *input.Status
		if status != models.StatusPending && status != models.StatusApproved && status != models.StatusRejected {
			return nil, apperrors.NewValidation("Invalid testimonial status")
		}
		set["status"] = status
	}
	if len(set) == 0 {
		return nil, apperrors.NewValidation("No fields to update")
	}

	t, err := uc.repo.UpdateTestimonial(ctx, oid, set)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to update testimonial", err)
	}
	if t == nil {
		return nil, apperrors.NewNotFound("Testimonial not found")
	}
	return t, nil
}

// DeleteTestimonial removes a testimonial.
func (uc *ContentUseCase) DeleteTestimonial(ctx context.Context, id string) error {
	oid, appErr := parseID(id)
	if appErr != nil {
		return appErr
	}
	deleted, err := uc.repo.DeleteTestimonial(ctx, oid)
	if err != nil {
		return apperrors.NewInternal("Failed to delete testimonial", err)
	}
	if !deleted {
		return apperrors.NewNotFound("Testimonial not found")
	}
	return nil
}

// --- submissions ---

// CreateSubmission stores a public join request as pending.
func (uc *ContentUseCase) CreateSubmission(ctx context.Context, input *models.SubmissionInput) (*models.Submission, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidation("Name is required")
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, apperrors.NewValidation("Email is required")
	}
	if !validator.IsValidEmail(email) {
		return nil, apperrors.NewValidation("Invalid email address")
	}

	s := &models.Submission{
		Name:    strings.TrimSpace(input.Name),
		Email:   email,
		Phone:   strings.TrimSpace(input.Phone),
		RegNo:   strings.TrimSpace(input.RegNo),
		Stream:  strings.TrimSpace(input.Stream),
		Year:    strings.TrimSpace(input.Year),
		Message: strings.TrimSpace(input.Message),
		Status:  models.StatusPending,
	}
	if err := uc.repo.CreateSubmission(ctx, s); err != nil {
		return nil, apperrors.NewInternal("Failed to create submission", err)
	}
	return s, nil
}

// ListSubmissions is the admin join-request view, newest first.
func (uc *ContentUseCase) ListSubmissions(ctx context.Context) ([]models.Submission, error) {
	items, err := uc.repo.ListSubmissions(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading submissions", err)
	}
	if items == nil {
		items = []models.Submission{}
	}
	return items, nil
}

// UpdateSubmissionStatus moves a join request between statuses.
func (uc *ContentUseCase) UpdateSubmissionStatus(ctx context.Context, id string, input *models.SubmissionStatusInput) (*models.Submission, error) {
	oid, appErr := parseID(id)
	if appErr != nil {
		return nil, appErr
	}
	status := input.Status
	if status != models.StatusPending && status != models.StatusApproved && status != models.StatusRejected {
		return nil, apperrors.NewValidation("Invalid submission status")
	}

	s, err := uc.repo.UpdateSubmissionStatus(ctx, oid, status)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to update submission", err)
	}
	if s == nil {
		return nil, apperrors.NewNotFound("Submission not found")
	}
	return s, nil
}
