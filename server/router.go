package server

import (
	"net/http"

	"github.com/Leerling-hub/Booking/cache"
	"github.com/Leerling-hub/Booking/controllers"
	"github.com/Leerling-hub/Booking/domain"
	"github.com/Leerling-hub/Booking/events"
	"github.com/Leerling-hub/Booking/middleware"
	"github.com/Leerling-hub/Booking/repositories"
	"github.com/Leerling-hub/Booking/services"
	"github.com/Leerling-hub/Booking/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Services are the business layers the router dispatches to
type Services struct {
	Auth       services.AuthService
	Users      services.ResourceService[domain.User]
	Hosts      services.ResourceService[domain.Host]
	Properties services.ResourceService[domain.Property]
	Bookings   services.ResourceService[domain.Booking]
	Reviews    services.ResourceService[domain.Review]
	Amenities  services.ResourceService[domain.Amenity]
}

// NewServices wires repositories and services on db. accounts may be nil.
func NewServices(db *gorm.DB, hasher *utils.PasswordHasher, tokens *utils.TokenService, accounts cache.AccountCache, publisher events.Publisher) Services {
	users := repositories.NewUserRepository(db)

	return Services{
		Auth:       services.NewAuthService(users, hasher, tokens, accounts),
		Users:      services.NewUserService(users, hasher, accounts, publisher),
		Hosts:      services.NewHostService(repositories.NewRepository[domain.Host](db), hasher, publisher),
		Properties: services.NewPropertyService(repositories.NewRepository[domain.Property](db), publisher),
		Bookings:   services.NewBookingService(repositories.NewRepository[domain.Booking](db), publisher),
		Reviews:    services.NewReviewService(repositories.NewRepository[domain.Review](db), publisher),
		Amenities:  services.NewAmenityService(repositories.NewRepository[domain.Amenity](db), publisher),
	}
}

// NewRouter builds the gin engine with every route of the API
func NewRouter(s Services) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.RequestLogger())

	// Public routes
	router.GET("/", controllers.Root)
	router.GET("/health", controllers.HealthCheck)
	router.POST("/login", controllers.NewAuthController(s.Auth).Login)

	// Protected routes (JWT required)
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware(s.Auth))
	{
		controllers.NewResourceController(s.Users).Register(protected, "/users")
		controllers.NewResourceController(s.Hosts).Register(protected, "/hosts")
		controllers.NewResourceController(s.Properties).Register(protected, "/properties")
		controllers.NewResourceController(s.Reviews).Register(protected, "/reviews")
		controllers.NewResourceController(s.Bookings).Register(protected, "/bookings")
		controllers.NewResourceController(s.Amenities).Register(protected, "/amenities")
	}

	router.NoRoute(func(c *gin.Context) {
		middleware.FallbackError(c, http.StatusNotFound, "Not found")
	})

	return router
}
