package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/fixnest/marketplace-api/config"
	"github.com/fixnest/marketplace-api/internal/data"
	"github.com/fixnest/marketplace-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	JobRequests *service.JobRequestService
	Offers      *service.OfferService
	Messaging   *service.MessagingService
	Bookings    *service.BookingService
	Auth        *service.AuthService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	Users       *data.UserRepo
	JobRequests *data.JobRequestRepo
	Offers      *data.OfferRepo
	Threads     *data.ThreadRepo
	Bookings    *data.BookingRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB) *serviceRepositories {
	return &serviceRepositories{
		Users:       data.NewUserRepo(db),
		JobRequests: data.NewJobRequestRepo(db),
		Offers:      data.NewOfferRepo(db),
		Threads:     data.NewThreadRepo(db),
		Bookings:    data.NewBookingRepo(db),
	}
}

// BuildServices constructs the full service container from configuration and
// storage connections.
func BuildServices(deps ServiceDeps) ServiceContainer {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
	}

	repos := buildRepositories(deps.DB)
	mkt := cfg.Marketplace

	jobRequests := service.NewJobRequestService(service.JobRequestServiceOptions{
		Requests: repos.JobRequests,
		Offers:   repos.Offers,
		Config: service.JobRequestServiceConfig{
			DefaultCountry: mkt.DefaultCountry,
		},
	})

	offers := service.NewOfferService(service.OfferServiceOptions{
		Offers:   repos.Offers,
		Requests: repos.JobRequests,
		Config: service.OfferServiceConfig{
			Currency: mkt.Currency,
		},
	})

	messaging := service.NewMessagingService(service.MessagingServiceOptions{
		Threads:  repos.Threads,
		Requests: repos.JobRequests,
	})

	bookings := service.NewBookingService(service.BookingServiceOptions{
		Bookings: repos.Bookings,
		Deps: service.BookingServiceDeps{
			Offers:   repos.Offers,
			Requests: repos.JobRequests,
		},
		Config: service.BookingServiceConfig{
			PlatformFeePercent: float64(mkt.PlatformFeePercent),
			SimulatedPayments:  mkt.SimulatedPayments,
		},
	})

	auth := BuildAuthService(AuthConfig{
		Auth:        cfg.Auth,
		RedisClient: deps.RedisClient,
		Users:       repos.Users,
		Logger:      deps.Logger,
	})

	return ServiceContainer{
		JobRequests: jobRequests,
		Offers:      offers,
		Messaging:   messaging,
		Bookings:    bookings,
		Auth:        auth,
	}
}
