package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	apperrors "github.com/techclub-services/common/errors"
	"github.com/techclub-services/common/response"
	"github.com/techclub-services/services/registration/models"
	"github.com/techclub-services/services/registration/usecase"
)

// RegistrationHandler handles event-registration requests.
type RegistrationHandler struct {
	useCase *usecase.RegistrationUseCase
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(uc *usecase.RegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{useCase: uc}
}

// HandleRegister handles POST /events/:idOrSlug/register. Authentication is
// optional; X-User-Id is set by the router when a valid token was presented.
func (h *RegistrationHandler) HandleRegister(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var payload models.Payload
	if err := json.Unmarshal([]byte(request.Body), &payload); err != nil {
		return events.APIGatewayProxyResponse{}, apperrors.NewValidation("Invalid request body")
	}

	confirmation, err := h.useCase.Register(ctx, request.PathParameters["idOrSlug"], &payload, request.Headers["X-User-Id"])
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusCreated, confirmation), nil
}

// HandleListByEvent handles GET /events/:idOrSlug/registrations (admin)
func (h *RegistrationHandler) HandleListByEvent(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	regs, err := h.useCase.ListByEvent(ctx, request.PathParameters["idOrSlug"])
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, map[string]interface{}{
		"count":         len(regs),
		"registrations": regs,
	}), nil
}

// HandleExport handles GET /events/:idOrSlug/registrations/export (admin),
// returning the registration sheet as a PDF attachment.
func (h *RegistrationHandler) HandleExport(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	data, filename, err := h.useCase.ExportByEvent(ctx, request.PathParameters["idOrSlug"])
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.Binary(http.StatusOK, "application/pdf", filename, base64.StdEncoding.EncodeToString(data)), nil
}

// HandleCheck handles GET /events/:idOrSlug/check-registration. Missing or
// invalid credentials never fail the check; they just mean "not registered".
func (h *RegistrationHandler) HandleCheck(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	callerID := request.Headers["X-User-Id"]
	if callerID == "" {
		return response.JSON(http.StatusOK, &models.CheckResult{IsRegistered: false}), nil
	}

	result, err := h.useCase.Check(ctx, request.PathParameters["idOrSlug"], callerID)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, result), nil
}

// HandleUserRegistrations handles GET /events/user/registrations.
func (h *RegistrationHandler) HandleUserRegistrations(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	regs, err := h.useCase.ListByUser(ctx, request.Headers["X-User-Id"])
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, regs), nil
}
