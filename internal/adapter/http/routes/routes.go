package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	_ "gateway_reservas/docs" // swagger spec
	"gateway_reservas/internal/adapter/http/handlers"
	"gateway_reservas/internal/adapter/http/middleware"
	"gateway_reservas/internal/adapter/persistence/repository"
	"gateway_reservas/internal/config"
	"gateway_reservas/internal/infrastructure/database"
	"gateway_reservas/internal/infrastructure/erp"
	"gateway_reservas/internal/infrastructure/metrics"
	"gateway_reservas/internal/usecase"
	"gateway_reservas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the wired components the router serves.
type Dependencies struct {
	ReservationUseCase usecase.IReservationUseCase
	Metrics            *metrics.Collector
}

// Run will start the server and block until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	deps := BuildDependencies(ctx, cfg)
	router := NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http][server] listening port=%d", cfg.HTTP.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Printf("[http][server] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// BuildDependencies wires the ERP client, the optional audit trail and the use
// case. A missing ERP base URL does not stop the server: every gateway call then
// answers with a configuration error.
func BuildDependencies(ctx context.Context, cfg config.Config) Dependencies {
	m := metrics.NewCollector(nil)

	var erpClient interfaces.IERPClient
	client, err := erp.NewClient(cfg.ERP, m)
	if err != nil {
		log.Printf("[http][routes] ERP client not configured: %v", err)
	} else {
		erpClient = client
	}

	var auditRepo interfaces.IReservationAuditRepository
	if cfg.Audit.Enabled {
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			log.Printf("[http][routes] audit trail disabled: %v", err)
		} else {
			auditRepo = repository.NewReservationAuditDynamoRepository(ddb, cfg.Audit.Table)
			log.Printf("[http][routes] audit trail enabled table=%s", cfg.Audit.Table)
		}
	}

	return Dependencies{
		ReservationUseCase: usecase.NewReservationUseCase(erpClient, auditRepo, m),
		Metrics:            m,
	}
}

func NewRouter(cfg config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	reservationHandler := handlers.NewReservationHandler(deps.ReservationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReservationRoutes(router.Group(PathReservationGateway), reservationHandler)

	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.HTTP.AllowedOrigin, cfg.HTTP.AllowedHeaders))
}
