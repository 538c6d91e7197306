package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/resource-hub-backend/internal/admin"
	"github.com/campushub/resource-hub-backend/internal/api"
	"github.com/campushub/resource-hub-backend/internal/auth"
	"github.com/campushub/resource-hub-backend/internal/booking"
	"github.com/campushub/resource-hub-backend/internal/concierge"
	"github.com/campushub/resource-hub-backend/internal/message"
	"github.com/campushub/resource-hub-backend/internal/pkg/storage"
	"github.com/campushub/resource-hub-backend/internal/resource"
	"github.com/campushub/resource-hub-backend/internal/review"
	"github.com/campushub/resource-hub-backend/internal/user"
)

// Config holds the dependencies and settings required to start the
// application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	UploadDir    string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer wires every module bottom-up: repositories over the shared
// pool, services over repositories, handlers over services.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	files, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init upload storage failed: %w", err)
	}
	images := storage.NewImageProcessor()

	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	resourceRepo := resource.NewPgxRepository(cfg.DBPool)
	resourceService := resource.NewService(resourceRepo)

	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, resourceService)

	reviewRepo := review.NewPgxRepository(cfg.DBPool)
	reviewService := review.NewService(reviewRepo)

	messageRepo := message.NewPgxRepository(cfg.DBPool)
	messageService := message.NewService(messageRepo, userService)

	adminRepo := admin.NewPgxRepository(cfg.DBPool)
	adminService := admin.NewService(adminRepo)

	// The concierge only reads aggregates other modules already expose.
	conciergeService := concierge.NewService(reviewService, adminService)

	router := api.NewRouter(api.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		UploadDir:    cfg.UploadDir,

		UserService:      userService,
		ResourceService:  resourceService,
		BookingService:   bookingService,
		ReviewService:    reviewService,
		MessageService:   messageService,
		AdminService:     adminService,
		ConciergeService: conciergeService,

		JWTManager: jwtManager,
		Files:      files,
		Images:     images,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
