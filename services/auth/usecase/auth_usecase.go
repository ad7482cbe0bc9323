package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/techclub-services/common/errors"
	"github.com/techclub-services/common/hash"
	"github.com/techclub-services/common/jwt"
	"github.com/techclub-services/common/validator"
	"github.com/techclub-services/services/auth/models"
	"github.com/techclub-services/services/auth/repository"
)

// AuthUseCase implements login, signup and identity resolution.
type AuthUseCase struct {
	userRepo *repository.UserRepository
}

// NewAuthUseCase creates the auth use case.
func NewAuthUseCase(userRepo *repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Login verifies credentials and issues a 7-day bearer token.
func (uc *AuthUseCase) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.NewValidation("Email and password required")
	}

	user, err := uc.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading user", err)
	}
	if user == nil || !hash.VerifyPassword(req.Password, user.Password) {
		return nil, apperrors.NewUnauthorized("Invalid credentials")
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, apperrors.NewInternal("Error issuing token", err)
	}

	return &models.AuthResponse{Token: token, User: models.ViewOf(user)}, nil
}

// Signup creates a standard user account and issues a token.
func (uc *AuthUseCase) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.NewValidation("Name, email and password required")
	}
	if !validator.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidation("Invalid email address")
	}
	if !validator.IsValidPassword(req.Password) {
		return nil, apperrors.NewValidation("Password must be at least 6 characters with a letter and a digit")
	}

	existing, err := uc.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.NewInternal("Error checking email", err)
	}
	if existing != nil {
		return nil, apperrors.NewDuplicate(apperrors.CodeDuplicateEmail, "Email already registered")
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewInternal("Error hashing password", err)
	}

	user := &models.User{
		Name:               req.Name,
		Email:              req.Email,
		Password:           hashed,
		Role:               "user",
		RegistrationNumber: req.RegistrationNumber,
		Phone:              req.Phone,
		Stream:             req.Stream,
		Section:            req.Section,
		Session:            req.Session,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// The unique index is the authority on email conflicts; the
		// FindByEmail pre-check only improves the error message.
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewDuplicate(apperrors.CodeDuplicateEmail, "Email already registered")
		}
		return nil, apperrors.NewInternal("Error creating user", err)
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, apperrors.NewInternal("Error issuing token", err)
	}

	return &models.AuthResponse{Token: token, User: models.ViewOf(user)}, nil
}

// Me resolves the caller's public identity by user id.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*models.UserView, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading user", err)
	}
	if user == nil {
		return nil, apperrors.NewUnauthorized("User not found")
	}
	view := models.ViewOf(user)
	return &view, nil
}
