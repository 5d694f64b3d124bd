package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edusync_gateway/internal/config"
	"edusync_gateway/internal/controller"
	"edusync_gateway/internal/service"
	"edusync_gateway/internal/upstream"
	"edusync_gateway/pkg/database"
	"edusync_gateway/pkg/logger"
	"edusync_gateway/pkg/monitoring"
	"edusync_gateway/pkg/security"
	"edusync_gateway/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Redis           *redis.Client
	Upstream        *upstream.Client
	configCallbacks []func(*config.Config)
}

type services struct {
	sessions   service.SessionStore
	storage    *service.StorageService
	auth       *service.AuthService
	course     *service.CourseService
	assessment *service.AssessmentService
	attempt    *service.AttemptService
	result     *service.ResultService
	enrollment *service.EnrollmentService
	dashboard  *service.DashboardService
}

type controllers struct {
	auth       *controller.AuthController
	course     *controller.CourseController
	assessment *controller.AssessmentController
	attempt    *controller.AttemptController
	result     *controller.ResultController
	enrollment *controller.EnrollmentController
	dashboard  *controller.DashboardController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig fans a reloaded configuration out to registered listeners.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initServices(cfg *config.Config, up *upstream.Client, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	authz := service.ClaimsAuthorizer{}
	sessions := service.NewRedisSessionStore(rdb, cfg.Session.DefaultTTL)

	return &services{
		sessions:   sessions,
		storage:    storage,
		auth:       service.NewAuthService(up, sessions),
		course:     service.NewCourseService(up, storage, authz),
		assessment: service.NewAssessmentService(up, authz),
		attempt:    service.NewAttemptService(up),
		result:     service.NewResultService(up, authz),
		enrollment: service.NewEnrollmentService(up),
		dashboard:  service.NewDashboardService(up),
	}, nil
}

func (a *App) initControllers(s *services, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		course:     controller.NewCourseController(s.course),
		assessment: controller.NewAssessmentController(s.assessment),
		attempt:    controller.NewAttemptController(s.attempt),
		result:     controller.NewResultController(s.result),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		dashboard:  controller.NewDashboardController(s.dashboard),
		health:     controller.NewHealthController(rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	up := upstream.NewClient(&cfg.Upstream)

	app := &App{
		Config:   cfg,
		Redis:    rdb,
		Upstream: up,
	}

	services, err := app.initServices(cfg, up, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
		log.Fatalf("Failed to initialize services: %v", err)
	}
	controllers := app.initControllers(services, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("edusync-gateway", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Gateway running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if err := a.Redis.Close(); err != nil {
		logger.Log.Error("Failed to close redis", zap.Error(err))
	}

	log.Println("Server exiting")
}
