package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	apperrors "github.com/techclub-services/common/errors"
	"github.com/techclub-services/common/response"
	"github.com/techclub-services/services/payment/models"
	"github.com/techclub-services/services/payment/usecase"
)

// PaymentHandler handles payment-order requests.
type PaymentHandler struct {
	useCase *usecase.PaymentUseCase
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{useCase: uc}
}

// HandleCreateOrder handles POST /payments/create-order (bearer)
func (h *PaymentHandler) HandleCreateOrder(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req models.CreateOrderRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{}, apperrors.NewValidation("Invalid request body")
	}

	resp, err := h.useCase.CreateOrder(ctx, &req, request.Headers["X-User-Id"])
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusCreated, resp), nil
}

// HandleVerify handles POST /payments/verify (bearer)
func (h *PaymentHandler) HandleVerify(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req models.VerifyRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{}, apperrors.NewValidation("Invalid request body")
	}

	resp, err := h.useCase.Verify(ctx, &req, request.Headers["X-User-Id"])
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, resp), nil
}

// HandleHistory handles GET /payments (admin)
func (h *PaymentHandler) HandleHistory(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	payments, err := h.useCase.History(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, map[string]interface{}{
		"count":    len(payments),
		"payments": payments,
	}), nil
}
