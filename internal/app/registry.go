package app

import (
	"context"
	"net/http"
	"time"

	"go-enlacerb/internal/attendance"
	"go-enlacerb/internal/config"
	"go-enlacerb/internal/document"
	"go-enlacerb/internal/employee"
	"go-enlacerb/internal/evaluation"
	"go-enlacerb/internal/hrrequest"
	"go-enlacerb/internal/messaging/kafka"
	"go-enlacerb/internal/middleware"
	"go-enlacerb/internal/role"
	"go-enlacerb/internal/shared/apperror"
	"go-enlacerb/internal/shared/response"
	"go-enlacerb/internal/store"
	"go-enlacerb/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const welcomeMessage = "Bienvenido al backend de EnlaceRB. Los recursos están bajo /api/v1."

// Deps are the collaborators RegisterModules wires into every module. Redis and
// Publisher are optional.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	Publisher kafka.Publisher
	Logger    *zap.Logger
}

func RegisterModules(router *gin.Engine, deps Deps) error {
	logger := deps.Logger
	if logger == nil {
		logger = zap.L()
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = kafka.NewNoopPublisher()
	}

	sqlDB, err := deps.DB.DB()
	if err != nil {
		return err
	}

	router.Use(middleware.ContextLogger(logger))
	if deps.Config.RateLimitRPS > 0 {
		router.Use(middleware.RateLimitByIP(rate.Limit(deps.Config.RateLimitRPS), deps.Config.RateLimitBurst))
	}
	idempotent := middleware.Idempotency(deps.Redis, logger)

	// --- Repositories ---
	roleRepo := role.NewRepository(deps.DB)
	userRepo := user.NewRepository(deps.DB)
	employeeRepo := employee.NewRepository(deps.DB)
	documentRepo := document.NewRepository(deps.DB)
	requestRepo := hrrequest.NewRepository(deps.DB)
	attendanceRepo := attendance.NewRepository(deps.DB)
	evaluationRepo := evaluation.NewRepository(deps.DB)

	// --- Services ---
	roleService := role.NewService(roleRepo, logger)
	userService := user.NewServiceWithPublisher(sqlDB, userRepo, employeeRepo, publisher, deps.Config.BcryptCost, logger)
	employeeService := employee.NewService(employeeRepo, logger)
	documentService := document.NewService(documentRepo, logger)
	requestService := hrrequest.NewServiceWithPublisher(requestRepo, publisher, logger)
	attendanceService := attendance.NewService(sqlDB, attendanceRepo, logger)
	evaluationService := evaluation.NewService(evaluationRepo, logger)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		role.RegisterRoutes(api, role.NewHandler(roleService, logger), idempotent)
		user.RegisterRoutes(api, user.NewHandler(userService, logger), idempotent)
		employee.RegisterRoutes(api, employee.NewHandler(employeeService, logger))
		document.RegisterRoutes(api, document.NewHandler(documentService, logger), idempotent)
		hrrequest.RegisterRoutes(api, hrrequest.NewHandler(requestService, logger), idempotent)
		attendance.RegisterRoutes(api, attendance.NewHandler(attendanceService, logger))
		evaluation.RegisterRoutes(api, evaluation.NewHandler(evaluationService, logger), idempotent)
	}

	router.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"mensaje": welcomeMessage}, nil)
	})
	router.GET("/healthz", healthz(deps.DB, logger))

	return nil
}

func healthz(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx, db); err != nil {
			logger.Error("health check failed", zap.Error(err))
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "Base de datos no disponible", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"estado": "ok"}, nil)
	}
}
