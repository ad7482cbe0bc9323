package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	apperrors "github.com/techclub-services/common/errors"
	"github.com/techclub-services/common/response"
	"github.com/techclub-services/services/auth/models"
	"github.com/techclub-services/services/auth/usecase"
)

// AuthHandler handles auth-related requests
type AuthHandler struct {
	useCase *usecase.AuthUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: uc}
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req models.LoginRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{}, apperrors.NewValidation("Invalid request body")
	}

	result, err := h.useCase.Login(ctx, &req)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, result), nil
}

// HandleSignup handles POST /auth/signup
func (h *AuthHandler) HandleSignup(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req models.SignupRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return events.APIGatewayProxyResponse{}, apperrors.NewValidation("Invalid request body")
	}

	result, err := h.useCase.Signup(ctx, &req)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusCreated, result), nil
}

// HandleMe handles GET /auth/me
func (h *AuthHandler) HandleMe(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	userID := request.Headers["X-User-Id"]
	if userID == "" {
		return events.APIGatewayProxyResponse{}, apperrors.NewUnauthorized("")
	}

	view, err := h.useCase.Me(ctx, userID)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, view), nil
}
