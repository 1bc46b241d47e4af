package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	maintenanceusecases "skymaint/internal/application/maintenance/usecases"
	ticketusecases "skymaint/internal/application/ticket/usecases"
	"skymaint/internal/domain/maintenance"
	"skymaint/internal/domain/shared/events"
	"skymaint/internal/infrastructure/auth"
	"skymaint/internal/infrastructure/cache"
	"skymaint/internal/infrastructure/config"
	"skymaint/internal/infrastructure/ledger"
	"skymaint/internal/infrastructure/repository"
	fleethandlers "skymaint/internal/interfaces/http/handlers/fleet"
	tickethandlers "skymaint/internal/interfaces/http/handlers/ticket"
	"skymaint/internal/interfaces/http/middleware"
	"skymaint/internal/interfaces/http/routes"
	"skymaint/internal/shared/db"
	"skymaint/internal/shared/logger"
)

// Router wires repositories, use cases, and handlers onto a gin engine.
type Router struct {
	engine         *gin.Engine
	ticketHandler  *tickethandlers.TicketHandler
	fleetHandler   *fleethandlers.FleetHandler
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(
	database *gorm.DB,
	redisClient *redis.Client,
	dispatcher events.EventDispatcher,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(database)
	eventRepo := repository.NewTicketEventRepository(database)
	attachmentRepo := repository.NewTicketAttachmentRepository(database)
	assetRepo := repository.NewAssetRepository(database)
	componentRepo := repository.NewComponentRepository(database)
	planRepo := repository.NewPlanRepository(database)

	usageLedger := ledger.NewGormUsageLedger(database)
	numberGen := repository.NewDBNumberGenerator(ticketRepo)
	txManager := db.NewTransactionManager(database)
	evaluator := maintenance.NewEvaluator(cfg.Maintenance.AlertRatio)

	statusCache := cache.NewRedisStatusCache(
		redisClient,
		time.Duration(cfg.Maintenance.StatusCacheTTL)*time.Second,
		log,
	)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(
		ticketRepo, eventRepo, assetRepo, componentRepo, planRepo,
		usageLedger, numberGen, evaluator, txManager, dispatcher, log,
	)
	assignTicketUC := ticketusecases.NewAssignTicketUseCase(ticketRepo, eventRepo, txManager, dispatcher, log)
	addReportUC := ticketusecases.NewAddReportUseCase(ticketRepo, eventRepo, usageLedger, txManager, statusCache, dispatcher, log)
	closeTicketUC := ticketusecases.NewCloseTicketUseCase(ticketRepo, eventRepo, usageLedger, txManager, statusCache, dispatcher, log)
	attachFileUC := ticketusecases.NewAttachFileUseCase(ticketRepo, eventRepo, attachmentRepo, txManager, dispatcher, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, attachmentRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	getEventsUC := ticketusecases.NewGetTicketEventsUseCase(ticketRepo, eventRepo, log)

	listStatusesUC := maintenanceusecases.NewListStatusesUseCase(
		assetRepo, componentRepo, planRepo, usageLedger, evaluator, statusCache, log,
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, assignTicketUC, addReportUC, closeTicketUC,
		attachFileUC, getTicketUC, listTicketsUC, getEventsUC,
	)
	fleetHandler := fleethandlers.NewFleetHandler(listStatusesUC)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine:         engine,
		ticketHandler:  ticketHandler,
		fleetHandler:   fleetHandler,
		authMiddleware: authMiddleware,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupFleetRoutes(r.engine, &routes.FleetRouteConfig{
		FleetHandler:   r.fleetHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
