package httpx

import (
	"log/slog"
	"net/http"

	"github.com/fixnest/marketplace-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	JobRequests  *service.JobRequestService
	Offers       *service.OfferService
	Messaging    *service.MessagingService
	Bookings     *service.BookingService
	Auth         AuthServiceInterface
	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	jobRequestHandlers := &JobRequestHandlers{Svc: services.JobRequests}
	offerHandlers := &OfferHandlers{Svc: services.Offers, Bookings: services.Bookings}
	messageHandlers := &MessageHandlers{Svc: services.Messaging}
	bookingHandlers := &BookingHandlers{Svc: services.Bookings}

	registerJobRequestRoutes(mux, jobRequestHandlers, services.Auth)
	registerOfferRoutes(mux, offerHandlers, services.Auth)
	registerMessagingRoutes(mux, messageHandlers, services.Auth)
	registerBookingRoutes(mux, bookingHandlers, services.Auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.Auth != nil {
		authHandlers := &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: logger}
		registerAuthRoutes(mux, authHandlers)
	}

	return Logging(logger)(Recover(logger)(mux))
}

func registerJobRequestRoutes(mux *http.ServeMux, h *JobRequestHandlers, auth AuthServiceInterface) {
	authed := RequireAuth(auth)
	// The literal "open" segment wins over the {id} wildcard below.
	mux.Handle("GET /api/job-requests/open", authed(http.HandlerFunc(h.Board)))
	mux.Handle("POST /api/job-requests", authed(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/job-requests", authed(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/job-requests/{id}", authed(http.HandlerFunc(h.Get)))
	mux.Handle("POST /api/job-requests/{id}/close", authed(http.HandlerFunc(h.Close)))
}

func registerOfferRoutes(mux *http.ServeMux, h *OfferHandlers, auth AuthServiceInterface) {
	authed := RequireAuth(auth)
	mux.Handle("POST /api/offers", authed(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/offers", authed(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/job-requests/{id}/offers", authed(http.HandlerFunc(h.ListForJobRequest)))
	mux.Handle("POST /api/offers/{id}/withdraw", authed(http.HandlerFunc(h.Withdraw)))
	mux.Handle("POST /api/offers/{id}/accept", authed(http.HandlerFunc(h.Accept)))
}

func registerMessagingRoutes(mux *http.ServeMux, h *MessageHandlers, auth AuthServiceInterface) {
	authed := RequireAuth(auth)
	mux.Handle("POST /api/messages", authed(http.HandlerFunc(h.Send)))
	mux.Handle("GET /api/threads", authed(http.HandlerFunc(h.ListThreads)))
	mux.Handle("GET /api/threads/{id}/messages", authed(http.HandlerFunc(h.ListMessages)))
}

func registerBookingRoutes(mux *http.ServeMux, h *BookingHandlers, auth AuthServiceInterface) {
	authed := RequireAuth(auth)
	mux.Handle("GET /api/bookings", authed(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/bookings/{id}", authed(http.HandlerFunc(h.Get)))
	mux.Handle("POST /api/bookings/{id}/confirm-payment", authed(http.HandlerFunc(h.ConfirmPayment)))
	mux.Handle("POST /api/bookings/{id}/status", authed(http.HandlerFunc(h.UpdateStatus)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.Handle("GET /auth/login", http.HandlerFunc(h.Login))
	mux.Handle("GET /auth/callback", http.HandlerFunc(h.Callback))
	mux.Handle("POST /auth/logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /auth/me", http.HandlerFunc(h.Me))
}
