package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	apperrors "github.com/techclub-services/common/errors"
	"github.com/techclub-services/common/response"
	"github.com/techclub-services/services/event/models"
	"github.com/techclub-services/services/event/usecase"
)

// EventHandler handles event CRUD requests.
type EventHandler struct {
	useCase *usecase.EventUseCase
}

// NewEventHandler creates a new event handler
func NewEventHandler(uc *usecase.EventUseCase) *EventHandler {
	return &EventHandler{useCase: uc}
}

// HandleList handles GET /events
func (h *EventHandler) HandleList(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	list, err := h.useCase.List(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, list), nil
}

// HandleGet handles GET /events/:idOrSlug
func (h *EventHandler) HandleGet(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	event, err := h.useCase.Get(ctx, request.PathParameters["idOrSlug"])
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, event), nil
}

// HandleCreate handles POST /events (admin)
func (h *EventHandler) HandleCreate(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var input models.EventInput
	if err := json.Unmarshal([]byte(request.Body), &input); err != nil {
		return events.APIGatewayProxyResponse{}, apperrors.NewValidation("Invalid request body")
	}

	event, err := h.useCase.Create(ctx, &input)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusCreated, event), nil
}

// HandleUpdate handles PUT /events/:id (admin)
func (h *EventHandler) HandleUpdate(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var input models.EventInput
	if err := json.Unmarshal([]byte(request.Body), &input); err != nil {
		return events.APIGatewayProxyResponse{}, apperrors.NewValidation("Invalid request body")
	}

	event, err := h.useCase.Update(ctx, request.PathParameters["id"], &input)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, event), nil
}

// HandleDelete handles DELETE /events/:id (admin)
func (h *EventHandler) HandleDelete(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if err := h.useCase.Delete(ctx, request.PathParameters["id"]); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.Message(http.StatusOK, "Event deleted"), nil
}
