package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techclub-services/common/email"
	apperrors "github.com/techclub-services/common/errors"
	"github.com/techclub-services/common/pdf"
	"github.com/techclub-services/common/qrcode"
	authrepo "github.com/techclub-services/services/auth/repository"
	eventmodels "github.com/techclub-services/services/event/models"
	eventrepo "github.com/techclub-services/services/event/repository"
	"github.com/techclub-services/services/registration/models"
	"github.com/techclub-services/services/registration/repository"
)

// RegistrationUseCase implements the registration workflow.
type RegistrationUseCase struct {
	regRepo   *repository.RegistrationRepository
	eventRepo *eventrepo.EventRepository
	userRepo  *authrepo.UserRepository
	mailer    *email.EmailService
}

// NewRegistrationUseCase creates the registration use case.
func NewRegistrationUseCase(
	regRepo *repository.RegistrationRepository,
	eventRepo *eventrepo.EventRepository,
	userRepo *authrepo.UserRepository,
	mailer *email.EmailService,
) *RegistrationUseCase {
	return &RegistrationUseCase{regRepo: regRepo, eventRepo: eventRepo, userRepo: userRepo, mailer: mailer}
}

// Register runs the free-registration path for an event identified by id or
// slug. callerID is the authenticated user's hex id, empty for anonymous
// visitors. Validation happens before any write; on success the registration
// is inserted and the event's counter incremented.
func (uc *RegistrationUseCase) Register(ctx context.Context, idOrSlug string, payload *models.Payload, callerID string) (*models.Confirmation, error) {
	event, err := uc.resolveEvent(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if missing := MissingFields(payload); len(missing) > 0 {
		log.Printf("[REGISTRATION] missing fields for event %s: %s", event.Slug, strings.Join(missing, ", "))
		return nil, apperrors.NewMissingFields(missing)
	}

	if event.RequiresPayment() {
		return nil, apperrors.NewValidation("This is a paid event. Please complete payment first.").
			WithField("requiresPayment", true).
			WithField("price", event.Price)
	}

	regNo := NormalizeRegNo(payload.RegistrationNo)

	// Fast-path duplicate checks; the unique index remains the authority
	// under concurrent inserts.
	existing, err := uc.regRepo.FindByEventAndRegNo(ctx, event.ID, regNo)
	if err != nil {
		return nil, apperrors.NewInternal("Error checking registration", err)
	}
	if existing != nil {
		return nil, apperrors.NewDuplicate(apperrors.CodeDuplicateRegistration,
			"This registration number is already registered for this event")
	}

	var callerOID *primitive.ObjectID
	if callerID != "" {
		if oid, err := primitive.ObjectIDFromHex(callerID); err == nil {
			userReg, err := uc.regRepo.FindByEventAndUser(ctx, event.ID, oid)
			if err != nil {
				return nil, apperrors.NewInternal("Error checking registration", err)
			}
			if userReg != nil {
				return nil, apperrors.NewDuplicate(apperrors.CodeDuplicateRegistration,
					"You have already registered for this event")
			}
			callerOID = &oid
		}
	}

	if event.IsTeamEvent() {
		if teamErr := ValidateTeam(event, payload); teamErr != nil {
			return nil, teamErr
		}
	}

	reg := buildRegistration(event, payload, regNo, callerOID)
	reg.PaymentStatus = models.PaymentStatusFree

	if err := uc.regRepo.Create(ctx, reg); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewDuplicate(apperrors.CodeDuplicateRegistration,
				"This registration number is already registered for this event")
		}
		return nil, apperrors.NewInternal("Failed to register for event. Please try again.", err)
	}

	// Counter bump is best-effort denormalization; the registration itself
	// is already durable.
	if err := uc.eventRepo.IncrementRegistrationCount(ctx, event.ID, 1); err != nil {
		log.Printf("[REGISTRATION] failed to bump count for event %s: %v", event.ID.Hex(), err)
	}

	confirmation := uc.buildConfirmation(event, reg)
	uc.sendConfirmationEmail(ctx, event, reg, callerOID, confirmation.Registration.QRCode)
	return confirmation, nil
}

// ListByEvent returns an event's registrations for the admin view.
func (uc *RegistrationUseCase) ListByEvent(ctx context.Context, idOrSlug string) ([]models.Registration, error) {
	event, err := uc.resolveEvent(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	regs, err := uc.regRepo.FindByEvent(ctx, event.ID)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading registrations", err)
	}
	if regs == nil {
		regs = []models.Registration{}
	}
	return regs, nil
}

// ExportByEvent renders an event's registrations as a PDF sheet.
func (uc *RegistrationUseCase) ExportByEvent(ctx context.Context, idOrSlug string) ([]byte, string, error) {
	event, err := uc.resolveEvent(ctx, idOrSlug)
	if err != nil {
		return nil, "", err
	}
	regs, err := uc.regRepo.FindByEvent(ctx, event.ID)
	if err != nil {
		return nil, "", apperrors.NewInternal("Error loading registrations", err)
	}

	rows := make([]pdf.RegistrationRow, 0, len(regs))
	for _, reg := range regs {
		rows = append(rows, pdf.RegistrationRow{
			Name:           reg.Name,
			RegistrationNo: reg.RegistrationNo,
			PhoneNumber:    reg.PhoneNumber,
			Course:         reg.Course,
			Section:        reg.Section,
			Year:           reg.Year,
			Department:     reg.Department,
			TeamName:       reg.TeamName,
			RegisteredAt:   reg.RegisteredAt,
		})
	}

	data, err := pdf.GenerateRegistrationSheet(pdf.SheetData{
		EventTitle: event.Title,
		EventDate:  event.Date,
		Rows:       rows,
	})
	if err != nil {
		return nil, "", apperrors.NewInternal("Error generating registration sheet", err)
	}
	return data, fmt.Sprintf("%s-registrations.pdf", event.Slug), nil
}

// Check reports whether the caller already holds a registration on an event.
func (uc *RegistrationUseCase) Check(ctx context.Context, idOrSlug, callerID string) (*models.CheckResult, error) {
	event, err := uc.resolveEvent(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return &models.CheckResult{IsRegistered: false}, nil
	}

	reg, err := uc.regRepo.FindByEventAndUser(ctx, event.ID, oid)
	if err != nil {
		return nil, apperrors.NewInternal("Error checking registration", err)
	}
	return &models.CheckResult{IsRegistered: reg != nil, Registration: reg}, nil
}

// ListByUser returns the caller's registrations across events.
func (uc *RegistrationUseCase) ListByUser(ctx context.Context, callerID string) ([]models.Registration, error) {
	oid, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, apperrors.NewUnauthorized("")
	}
	regs, err := uc.regRepo.FindByUser(ctx, oid)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading registrations", err)
	}
	if regs == nil {
		regs = []models.Registration{}
	}
	return regs, nil
}

func (uc *RegistrationUseCase) resolveEvent(ctx context.Context, idOrSlug string) (*eventmodels.Event, error) {
	event, err := uc.eventRepo.Resolve(ctx, idOrSlug)
	if err != nil {
		return nil, apperrors.NewInternal("Error loading event", err)
	}
	if event == nil {
		return nil, apperrors.NewNotFound("Event not found")
	}
	return event, nil
}

func buildRegistration(event *eventmodels.Event, p *models.Payload, regNo string, user *primitive.ObjectID) *models.Registration {
	whatsapp := strings.TrimSpace(p.WhatsappNumber)
	if whatsapp == "" {
		whatsapp = strings.TrimSpace(p.PhoneNumber)
	}
	return &models.Registration{
		Event:              event.ID,
		User:               user,
		Name:               strings.TrimSpace(p.Name),
		RegistrationNo:     regNo,
		PhoneNumber:        strings.TrimSpace(p.PhoneNumber),
		WhatsappNumber:     whatsapp,
		Section:            strings.TrimSpace(p.Section),
		Department:         strings.TrimSpace(p.Department),
		Year:               strings.TrimSpace(p.Year),
		Course:             strings.TrimSpace(p.Course),
		IsTeamRegistration: p.IsTeamRegistration || event.IsTeamEvent(),
		TeamName:           strings.TrimSpace(p.TeamName),
		TeamMembers:        p.TeamMembers,
	}
}

func (uc *RegistrationUseCase) buildConfirmation(event *eventmodels.Event, reg *models.Registration) *models.Confirmation {
	qr, err := qrcode.GenerateRegistrationQRBase64(reg.ID.Hex(), event.Slug, 300)
	if err != nil {
		log.Printf("[REGISTRATION] failed to generate QR for %s: %v", reg.ID.Hex(), err)
		qr = ""
	}
	return &models.Confirmation{
		Success: true,
		Message: "Registration successful! You will receive confirmation shortly.",
		Registration: models.ConfirmationRegistration{
			ID:             reg.ID,
			Name:           reg.Name,
			RegistrationNo: reg.RegistrationNo,
			Event:          eventmodels.SummaryOf(event),
			QRCode:         qr,
		},
	}
}

// sendConfirmationEmail mails authenticated registrants. Failures are logged,
// never surfaced: the registration is already durable.
func (uc *RegistrationUseCase) sendConfirmationEmail(ctx context.Context, event *eventmodels.Event, reg *models.Registration, callerOID *primitive.ObjectID, qr string) {
	if callerOID == nil {
		return
	}
	user, err := uc.userRepo.FindByID(ctx, callerOID.Hex())
	if err != nil || user == nil {
		return
	}

	err = uc.mailer.SendRegistrationConfirmation(email.RegistrationEmailData{
		To:             user.Email,
		Name:           reg.Name,
		RegistrationNo: reg.RegistrationNo,
		EventTitle:     event.Title,
		EventDate:      event.Date,
		EventLocation:  event.Location,
		TeamName:       reg.TeamName,
		QRCodeDataURI:  qr,
	})
	if err != nil {
		log.Printf("[REGISTRATION] confirmation email to %s failed: %v", user.Email, err)
	}
}
