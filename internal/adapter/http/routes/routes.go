package routes

import (
	"time"

	_ "salesops/docs" // This will be auto-generated
	"salesops/internal/adapter/http/handlers"
	"salesops/internal/adapter/http/middleware"
	"salesops/internal/infrastructure/metrics"
	"salesops/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Sales     usecase.ISaleUseCase
	Projects  usecase.IProjectUseCase
	Audit     usecase.IAuditUseCase
	Events    handlers.ISubscriber
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
	JWTSecret []byte
	Heartbeat time.Duration
	// Shutdown is closed when the process stops; open event streams end.
	Shutdown <-chan struct{}
}

// NewRouter builds the gin engine with every public and /v1 route.
func NewRouter(d Dependencies) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, d)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	getRoutes(router, d)
	return router
}

func getRoutes(router *gin.Engine, d Dependencies) {
	saleHandler := handlers.NewSaleHandler(d.Sales)
	projectHandler := handlers.NewProjectHandler(d.Projects)
	auditHandler := handlers.NewAuditHandler(d.Audit)
	eventHandler := handlers.NewEventHandler(d.Events, d.Heartbeat, handlers.WithShutdown(d.Shutdown))

	// Rotas publicas
	addPingRoutes(&router.RouterGroup)
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.Authenticate(d.JWTSecret))
	authed.GET(PathEvents, eventHandler.Stream)
	addSalesRoutes(authed, saleHandler)
	addProjectRoutes(authed, projectHandler)
	addAuditRoutes(authed, auditHandler)
}

func setMiddlewares(router *gin.Engine, d Dependencies) {
	router.Use(middleware.Recovery(d.Logger))
	router.Use(middleware.RequestLogger(d.Logger))
	if d.Metrics != nil {
		router.Use(middleware.Metrics(d.Metrics))
	}
}
