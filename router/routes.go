package router

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techclub-services/common/db"
	"github.com/techclub-services/common/email"
	"github.com/techclub-services/common/response"
	authhandler "github.com/techclub-services/services/auth/handler"
	authrepo "github.com/techclub-services/services/auth/repository"
	authusecase "github.com/techclub-services/services/auth/usecase"
	contenthandler "github.com/techclub-services/services/content/handler"
	contentrepo "github.com/techclub-services/services/content/repository"
	contentusecase "github.com/techclub-services/services/content/usecase"
	eventhandler "github.com/techclub-services/services/event/handler"
	eventrepo "github.com/techclub-services/services/event/repository"
	eventusecase "github.com/techclub-services/services/event/usecase"
	payhandler "github.com/techclub-services/services/payment/handler"
	payrepo "github.com/techclub-services/services/payment/repository"
	payusecase "github.com/techclub-services/services/payment/usecase"
	reghandler "github.com/techclub-services/services/registration/handler"
	regrepo "github.com/techclub-services/services/registration/repository"
	regusecase "github.com/techclub-services/services/registration/usecase"
)

// NewRouter wires every service and builds the ordered route table.
func NewRouter(database *mongo.Database) *Router {
	userRepository := authrepo.NewUserRepository(database)
	eventRepository := eventrepo.NewEventRepository(database)
	registrationRepository := regrepo.NewRegistrationRepository(database)
	paymentRepository := payrepo.NewPaymentRepository(database)
	contentRepository := contentrepo.NewContentRepository(database)

	mailer := email.NewEmailService(nil)

	authHandler := authhandler.NewAuthHandler(authusecase.NewAuthUseCase(userRepository))
	eventHandler := eventhandler.NewEventHandler(eventusecase.NewEventUseCase(eventRepository))
	registrationHandler := reghandler.NewRegistrationHandler(
		regusecase.NewRegistrationUseCase(registrationRepository, eventRepository, userRepository, mailer))
	paymentHandler := payhandler.NewPaymentHandler(
		payusecase.NewPaymentUseCase(paymentRepository, eventRepository, registrationRepository, userRepository))
	contentHandler := contenthandler.NewContentHandler(
		contentusecase.NewContentUseCase(contentRepository))

	routes := []Route{
		{Method: http.MethodGet, Path: "/health", Auth: AuthNone, Handler: handleHealth},

		{Method: http.MethodPost, Path: "/auth/login", Auth: AuthNone, Handler: authHandler.HandleLogin},
		{Method: http.MethodPost, Path: "/auth/signup", Auth: AuthNone, Handler: authHandler.HandleSignup},
		{Method: http.MethodGet, Path: "/auth/me", Auth: AuthBearer, Handler: authHandler.HandleMe},

		// Literal route first so the :idOrSlug wildcard cannot shadow it.
		{Method: http.MethodGet, Path: "/events/user/registrations", Auth: AuthBearer, Handler: registrationHandler.HandleUserRegistrations},
		{Method: http.MethodGet, Path: "/events", Auth: AuthNone, Handler: eventHandler.HandleList},
		{Method: http.MethodPost, Path: "/events", Auth: AuthAdmin, Handler: eventHandler.HandleCreate},
		{Method: http.MethodGet, Path: "/events/:idOrSlug/registrations/export", Auth: AuthAdmin, Handler: registrationHandler.HandleExport},
		{Method: http.MethodGet, Path: "/events/:idOrSlug/registrations", Auth: AuthAdmin, Handler: registrationHandler.HandleListByEvent},
		{Method: http.MethodGet, Path: "/events/:idOrSlug/check-registration", Auth: AuthSoft, Handler: registrationHandler.HandleCheck},
		{Method: http.MethodPost, Path: "/events/:idOrSlug/register", Auth: AuthSoft, Handler: registrationHandler.HandleRegister},
		{Method: http.MethodGet, Path: "/events/:idOrSlug", Auth: AuthNone, Handler: eventHandler.HandleGet},
		{Method: http.MethodPut, Path: "/events/:id", Auth: AuthAdmin, Handler: eventHandler.HandleUpdate},
		{Method: http.MethodDelete, Path: "/events/:id", Auth: AuthAdmin, Handler: eventHandler.HandleDelete},

		{Method: http.MethodPost, Path: "/payments/create-order", Auth: AuthBearer, Handler: paymentHandler.HandleCreateOrder},
		{Method: http.MethodPost, Path: "/payments/verify", Auth: AuthBearer, Handler: paymentHandler.HandleVerify},
		{Method: http.MethodGet, Path: "/payments", Auth: AuthAdmin, Handler: paymentHandler.HandleHistory},

		{Method: http.MethodGet, Path: "/members", Auth: AuthNone, Handler: contentHandler.HandleListMembers},
		{Method: http.MethodPost, Path: "/members", Auth: AuthAdmin, Handler: contentHandler.HandleCreateMember},
		{Method: http.MethodPut, Path: "/members/:id", Auth: AuthAdmin, Handler: contentHandler.HandleUpdateMember},
		{Method: http.MethodDelete, Path: "/members/:id", Auth: AuthAdmin, Handler: contentHandler.HandleDeleteMember},

		{Method: http.MethodGet, Path: "/gallery", Auth: AuthNone, Handler: contentHandler.HandleListGallery},
		{Method: http.MethodPost, Path: "/gallery", Auth: AuthAdmin, Handler: contentHandler.HandleCreateGalleryItem},
		{Method: http.MethodDelete, Path: "/gallery/:id", Auth: AuthAdmin, Handler: contentHandler.HandleDeleteGalleryItem},

		{Method: http.MethodGet, Path: "/testimonials/all", Auth: AuthAdmin, Handler: contentHandler.HandleListAllTestimonials},
		{Method: http.MethodGet, Path: "/testimonials", Auth: AuthNone, Handler: contentHandler.HandleListTestimonials},
		{Method: http.MethodPost, Path: "/testimonials/submit", Auth: AuthNone, Handler: contentHandler.HandleSubmitTestimonial},
		{Method: http.MethodPut, Path: "/testimonials/:id", Auth: AuthAdmin, Handler: contentHandler.HandleUpdateTestimonial},
		{Method: http.MethodDelete, Path: "/testimonials/:id", Auth: AuthAdmin, Handler: contentHandler.HandleDeleteTestimonial},

		{Method: http.MethodPost, Path: "/submissions", Auth: AuthNone, Handler: contentHandler.HandleCreateSubmission},
		{Method: http.MethodGet, Path: "/submissions", Auth: AuthAdmin, Handler: contentHandler.HandleListSubmissions},
		{Method: http.MethodPut, Path: "/submissions/:id", Auth: AuthAdmin, Handler: contentHandler.HandleUpdateSubmission},
	}
	for i := range routes {
		routes[i].compile()
	}

	return &Router{routes: routes, userRepo: userRepository}
}

// handleHealth reports service and database status.
func handleHealth(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	mongodb := "disconnected"
	if db.IsConnected(ctx) {
		mongodb = "connected"
	}
	return response.JSON(http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"mongodb":   mongodb,
	}), nil
}
