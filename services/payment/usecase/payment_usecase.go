package usecase

import (
	"context"
	"log"
	"math"
	"os"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/techclub-services/common/errors"
	authrepo "github.com/techclub-services/services/auth/repository"
	eventrepo "github.com/techclub-services/services/event/repository"
	"github.com/techclub-services/services/payment/models"
	"github.com/techclub-services/services/payment/repository"
	regmodels "github.com/techclub-services/services/registration/models"
	regrepo "github.com/techclub-services/services/registration/repository"
	regusecase "github.com/techclub-services/services/registration/usecase"
)

// PaymentUseCase implements the payment-order workflow for paid events.
type PaymentUseCase struct {
	payRepo   *repository.PaymentRepository
	eventRepo *eventrepo.EventRepository
	regRepo   *regrepo.RegistrationRepository
	userRepo  *authrepo.UserRepository
}

// NewPaymentUseCase creates the payment use case.
func NewPaymentUseCase(
	payRepo *repository.PaymentRepository,
	eventRepo *eventrepo.EventRepository,
	regRepo *regrepo.RegistrationRepository,
	userRepo *authrepo.UserRepository,
) *PaymentUseCase {
	return &PaymentUseCase{payRepo: payRepo, eventRepo: eventRepo, regRepo: regRepo, userRepo: userRepo}
}

func paymentSecret() string {
	return os.Getenv("PAYMENT_SECRET")
}

// CreateOrder opens a pending payment order for a paid event. The
// registration payload rides on the order; the registration record is only
// created once the payment verifies.
func (uc *PaymentUseCase) CreateOrder(ctx context.Context, req *models.CreateOrderRequest, callerID string) (*models.CreateOrderResponse, error) {
	user, err := uc.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading user", err)
	}
	if user == nil {
		return nil, apperrors.NewUnauthorized("")
	}

	event, err := uc.eventRepo.Resolve(ctx, req.EventID)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading event", err)
	}
	if event == nil {
		return nil, apperrors.NewNotFound("Event not found")
	}
	if !event.RequiresPayment() {
		return nil, apperrors.NewValidation("This event does not require payment")
	}
	if req.RegistrationData == nil {
		return nil, apperrors.NewValidation("Registration details are required")
	}
	if missing := regusecase.MissingFields(req.RegistrationData); len(missing) > 0 {
		return nil, apperrors.NewMissingFields(missing)
	}

	regNo := regusecase.NormalizeRegNo(req.RegistrationData.RegistrationNo)
	existing, err := uc.regRepo.FindByEventAndRegNo(ctx, event.ID, regNo)
	if err != nil {
		return nil, apperrors.NewInternal("Error checking registration", err)
	}
	if existing != nil {
		return nil, apperrors.NewDuplicate(apperrors.CodeDuplicateRegistration,
			"This registration number is already registered for this event")
	}

	orderID, err := NewOrderID()
	if err != nil {
		return nil, apperrors.NewInternal("Failed to create payment order", err)
	}

	payment := &models.Payment{
		OrderID:          orderID,
		Event:            event.ID,
		User:             user.ID,
		UserName:         strings.TrimSpace(req.RegistrationData.Name),
		UserEmail:        user.Email,
		RegistrationNo:   regNo,
		PhoneNumber:      strings.TrimSpace(req.RegistrationData.PhoneNumber),
		RegistrationData: req.RegistrationData,
		Amount:           event.Price,
		Currency:         models.DefaultCurrency,
		Status:           models.StatusPending,
	}
	if err := uc.payRepo.Create(ctx, payment); err != nil {
		return nil, apperrors.NewInternal("Failed to create payment order", err)
	}

	return &models.CreateOrderResponse{
		Success: true,
		Order: models.OrderView{
			ID:       orderID,
			Amount:   int64(math.Round(event.Price * 100)),
			Currency: models.DefaultCurrency,
		},
		KeyID: os.Getenv("PAYMENT_KEY_ID"),
	}, nil
}

// Verify checks the gateway signature for a pending order. A match settles
// the order and materializes the registration; a mismatch fails the order.
func (uc *PaymentUseCase) Verify(ctx context.Context, req *models.VerifyRequest, callerID string) (*models.VerifyResponse, error) {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return nil, apperrors.NewValidation("orderId, paymentId and signature are required")
	}

	payment, err := uc.payRepo.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading payment", err)
	}
	if payment == nil {
		return nil, apperrors.NewNotFound("Payment order not found")
	}
	if payment.User.Hex() != callerID {
		return nil, apperrors.NewForbidden("This payment order belongs to another user")
	}
	if payment.Status != models.StatusPending {
		return nil, apperrors.NewValidation("Payment order is already " + payment.Status)
	}

	if !VerifySignature(req.OrderID, req.PaymentID, req.Signature, paymentSecret()) {
		if err := uc.payRepo.MarkFailed(ctx, payment.ID, req.PaymentID); err != nil {
			log.Printf("[PAYMENT] failed to mark order %s failed: %v", payment.OrderID, err)
		}
		return nil, apperrors.NewValidation("Payment verification failed")
	}

	reg, err := uc.createPaidRegistration(ctx, payment)
	if err != nil {
		return nil, err
	}

	if err := uc.payRepo.MarkSuccess(ctx, payment.ID, req.PaymentID, req.Signature, reg.ID); err != nil {
		log.Printf("[PAYMENT] failed to settle order %s: %v", payment.OrderID, err)
		return nil, apperrors.NewInternal("Failed to record payment", err)
	}

	if err := uc.eventRepo.IncrementRegistrationCount(ctx, payment.Event, 1); err != nil {
		log.Printf("[PAYMENT] failed to bump count for event %s: %v", payment.Event.Hex(), err)
	}

	return &models.VerifyResponse{
		Success:        true,
		Message:        "Payment verified and registration confirmed",
		RegistrationID: reg.ID.Hex(),
	}, nil
}

// History returns recent payments for the admin view, newest first.
func (uc *PaymentUseCase) History(ctx context.Context) ([]models.Payment, error) {
	payments, err := uc.payRepo.History(ctx)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading payments", err)
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}

func (uc *PaymentUseCase) createPaidRegistration(ctx context.Context, payment *models.Payment) (*regmodels.Registration, error) {
	data := payment.RegistrationData
	if data == nil {
		return nil, apperrors.NewInternal("Payment order is missing registration details", nil)
	}

	userID := payment.User
	reg := &regmodels.Registration{
		Event:              payment.Event,
		User:               &userID,
		Name:               strings.TrimSpace(data.Name),
		RegistrationNo:     regusecase.NormalizeRegNo(data.RegistrationNo),
		PhoneNumber:        strings.TrimSpace(data.PhoneNumber),
		WhatsappNumber:     strings.TrimSpace(data.WhatsappNumber),
		Section:            strings.TrimSpace(data.Section),
		Department:         strings.TrimSpace(data.Department),
		Year:               strings.TrimSpace(data.Year),
		Course:             strings.TrimSpace(data.Course),
		IsTeamRegistration: data.IsTeamRegistration,
		TeamName:           strings.TrimSpace(data.TeamName),
		TeamMembers:        data.TeamMembers,
		Payment:            &payment.ID,
		PaymentStatus:      regmodels.PaymentStatusCompleted,
	}
	if reg.WhatsappNumber == "" {
		reg.WhatsappNumber = reg.PhoneNumber
	}

	if err := uc.regRepo.Create(ctx, reg); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewDuplicate(apperrors.CodeDuplicateRegistration,
				"This registration number is already registered for this event")
		}
		return nil, apperrors.NewInternal("Failed to create registration", err)
	}
	return reg, nil
}
