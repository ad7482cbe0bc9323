package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	apperrors "github.com/techclub-services/common/errors"
	"github.com/techclub-services/common/response"
	"github.com/techclub-services/services/content/models"
	"github.com/techclub-services/services/content/usecase"
)

// ContentHandler handles members, gallery, testimonials and submissions.
type ContentHandler struct {
	useCase *usecase.ContentUseCase
}

// NewContentHandler creates a new content handler
func NewContentHandler(uc *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{useCase: uc}
}

func decode(body string, v interface{}) error {
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return apperrors.NewValidation("Invalid request body")
	}
	return nil
}

// HandleListMembers handles GET /members
func (h *ContentHandler) HandleListMembers(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	members, err := h.useCase.ListMembers(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, members), nil
}

// HandleCreateMember handles POST /members (admin)
func (h *ContentHandler) HandleCreateMember(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var input models.MemberInput
	if err := decode(request.Body, &input); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	member, err := h.useCase.CreateMember(ctx, &input)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusCreated, member), nil
}

// HandleUpdateMember handles PUT /members/:id (admin)
func (h *ContentHandler) HandleUpdateMember(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var input models.MemberInput
	if err := decode(request.Body, &input); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	member, err := h.useCase.UpdateMember(ctx, request.PathParameters["id"], &input)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, member), nil
}

// HandleDeleteMember handles DELETE /members/:id (admin)
func (h *ContentHandler) HandleDeleteMember(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if err := h.useCase.DeleteMember(ctx, request.PathParameters["id"]); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.Message(http.StatusOK, "Member deleted"), nil
}

// HandleListGallery handles GET /gallery
func (h *ContentHandler) HandleListGallery(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	items, err := h.useCase.ListGallery(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, items), nil
}

// HandleCreateGalleryItem handles POST /gallery (admin)
func (h *ContentHandler) HandleCreateGalleryItem(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var input models.GalleryInput
	if err := decode(request.Body, &input); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	item, err := h.useCase.CreateGalleryItem(ctx, &input)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusCreated, item), nil
}

// HandleDeleteGalleryItem handles DELETE /gallery/:id (admin)
func (h *ContentHandler) HandleDeleteGalleryItem(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if err := h.useCase.DeleteGalleryItem(ctx, request.PathParameters["id"]); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.Message(http.StatusOK, "Gallery item deleted"), nil
}

// HandleListTestimonials handles GET /testimonials (approved only)
func (h *ContentHandler) HandleListTestimonials(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	items, err := h.useCase.ListApprovedTestimonials(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, items), nil
}

// HandleListAllTestimonials handles GET /testimonials/all (admin)
func (h *ContentHandler) HandleListAllTestimonials(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	items, err := h.useCase.ListAllTestimonials(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, items), nil
}

// HandleSubmitTestimonial handles POST /testimonials/submit
func (h *ContentHandler) HandleSubmitTestimonial(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var input models.TestimonialInput
	if err := decode(request.Body, &input); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	t, err := h.useCase.SubmitTestimonial(ctx, &input)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusCreated, t), nil
}

// HandleUpdateTestimonial handles PUT /testimonials/:id (admin)
func (h *ContentHandler) HandleUpdateTestimonial(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var input models.TestimonialInput
	if err := decode(request.Body, &input); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	t, err := h.useCase.UpdateTestimonial(ctx, request.PathParameters["id"], &input)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, t), nil
}

// HandleDeleteTestimonial handles DELETE /testimonials/:id (admin)
func (h *ContentHandler) HandleDeleteTestimonial(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if err := h.useCase.DeleteTestimonial(ctx, request.PathParameters["id"]); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.Message(http.StatusOK, "Testimonial deleted"), nil
}

// HandleCreateSubmission handles POST /submissions
func (h *ContentHandler) HandleCreateSubmission(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var input models.SubmissionInput
	if err := decode(request.Body, &input); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	s, err := h.useCase.CreateSubmission(ctx, &input)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusCreated, s), nil
}

// HandleListSubmissions handles GET /submissions (admin)
func (h *ContentHandler) HandleListSubmissions(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	items, err := h.useCase.ListSubmissions(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, items), nil
}

// HandleUpdateSubmission handles PUT /submissions/:id (admin)
func (h *ContentHandler) HandleUpdateSubmission(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var input models.SubmissionStatusInput
	if err := decode(request.Body, &input); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	s, err := h.useCase.UpdateSubmissionStatus(ctx, request.PathParameters["id"], &input)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, s), nil
}
