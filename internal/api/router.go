package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campushub/resource-hub-backend/internal/admin"
	adminHttp "github.com/campushub/resource-hub-backend/internal/admin/http"
	"github.com/campushub/resource-hub-backend/internal/auth"
	"github.com/campushub/resource-hub-backend/internal/booking"
	bookingHttp "github.com/campushub/resource-hub-backend/internal/booking/http"
	"github.com/campushub/resource-hub-backend/internal/concierge"
	conciergeHttp "github.com/campushub/resource-hub-backend/internal/concierge/http"
	"github.com/campushub/resource-hub-backend/internal/message"
	messageHttp "github.com/campushub/resource-hub-backend/internal/message/http"
	"github.com/campushub/resource-hub-backend/internal/pkg/storage"
	"github.com/campushub/resource-hub-backend/internal/resource"
	resourceHttp "github.com/campushub/resource-hub-backend/internal/resource/http"
	"github.com/campushub/resource-hub-backend/internal/review"
	reviewHttp "github.com/campushub/resource-hub-backend/internal/review/http"
	"github.com/campushub/resource-hub-backend/internal/user"
	userHttp "github.com/campushub/resource-hub-backend/internal/user/http"
)

// Config holds everything the router needs to assemble the HTTP surface.
type Config struct {
	IsProduction bool
	// ProdOrigins is a comma-separated allowlist for CORS in production.
	ProdOrigins string
	UploadDir   string

	UserService      user.Service
	ResourceService  resource.Service
	BookingService   booking.Service
	ReviewService    review.Service
	MessageService   message.Service
	AdminService     admin.Service
	ConciergeService concierge.Service

	JWTManager *auth.JWTManager
	Files      storage.Storage
	Images     *storage.ImageProcessor
}

// NewRouter assembles middleware and registers the routes of every module
// under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager, cfg.Files, cfg.Images)
	resourceHandler := resourceHttp.NewHandler(cfg.ResourceService, cfg.UserService, cfg.Files, cfg.Images)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.ResourceService, cfg.UserService, cfg.AdminService)
	reviewHandler := reviewHttp.NewHandler(cfg.ReviewService, cfg.ResourceService, cfg.UserService)
	messageHandler := messageHttp.NewHandler(cfg.MessageService)
	adminHandler := adminHttp.NewHandler(cfg.AdminService, cfg.UserService, cfg.ReviewService)
	conciergeHandler := conciergeHttp.NewHandler(cfg.ConciergeService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		resourceHttp.RegisterRoutes(v1, resourceHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		reviewHttp.RegisterRoutes(v1, reviewHandler, authMiddleware)
		messageHttp.RegisterRoutes(v1, messageHandler, authMiddleware)
		adminHttp.RegisterRoutes(v1, adminHandler, authMiddleware, adminMiddleware)
		conciergeHttp.RegisterRoutes(v1, conciergeHandler, authMiddleware)
	}

	// Uploaded images are served straight off disk.
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
