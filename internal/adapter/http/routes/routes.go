package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "import_admin/docs"
	"import_admin/internal/adapter/cache"
	"import_admin/internal/adapter/export"
	"import_admin/internal/adapter/http/handlers"
	"import_admin/internal/adapter/http/middleware"
	"import_admin/internal/adapter/persistence/repository"
	"import_admin/internal/config"
	"import_admin/internal/domain/delivery"
	"import_admin/internal/infrastructure/backend"
	redisclient "import_admin/internal/infrastructure/cache"
	"import_admin/internal/infrastructure/database"
	"import_admin/internal/usecase"
	"import_admin/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Cars    *handlers.CarHandler
	Clients *handlers.ClientHandler
	Imports *handlers.ImportHandler
	Forms   *handlers.ImportFormHandler
	Shares  *handlers.ShareHandler
	Images  *handlers.ImageHandler
}

// Run wires the service from cfg and serves until SIGINT or SIGTERM.
func Run(cfg *config.Config, logger *logrus.Logger) error {
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h, cleanup, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           NewRouter(cfg, logger, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", srv.Addr).Info("[http][server] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildHandlers(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (Handlers, func(), error) {
	loc, err := cfg.Location()
	if err != nil {
		return Handlers{}, nil, err
	}
	tracker := delivery.NewTracker(loc, delivery.Locale(cfg.Tracker.Locale))

	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBConfig{
		Region:          cfg.DynamoDB.Region,
		Endpoint:        cfg.DynamoDB.Endpoint,
		AccessKeyID:     cfg.DynamoDB.AccessKeyID,
		SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
	})
	if err != nil {
		return Handlers{}, nil, fmt.Errorf("dynamodb: %w", err)
	}
	drafts := repository.NewImportDraftDynamoRepository(ddb, cfg.DynamoDB.DraftsTable)

	cleanup := func() {}
	var lookupCache interfaces.ILookupCache
	rdb, err := redisclient.ConnectRedis(ctx, redisclient.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.WithError(err).Warn("[cache][startup] redis unavailable, lookups read the backend directly")
	} else {
		lookupCache = cache.NewRedisLookupCache(rdb)
		cleanup = func() { _ = rdb.Close() }
	}

	api := backend.NewClient(backend.Config{
		BaseURL:       cfg.Backend.BaseURL,
		PublicBaseURL: cfg.Backend.PublicBaseURL,
		Timeout:       cfg.Backend.Timeout,
	}, logger)

	ttl := cfg.Redis.LookupTTL
	carUC := usecase.NewCarUseCase(api, api, lookupCache, ttl, logger)
	clientUC := usecase.NewClientUseCase(api, api, lookupCache, ttl, logger)
	importUC := usecase.NewImportUseCase(api, api, api, lookupCache, ttl, tracker, logger)
	trackingUC := usecase.NewImportTrackingUseCase(api, api, tracker, logger)
	reportUC := usecase.NewImportReportUseCase(api, api, api, export.NewXLSXCostSheetExporter(), tracker, logger)
	formUC := usecase.NewImportFormUseCase(drafts, api, tracker, cfg.Drafts.TTL, logger)
	shareUC := usecase.NewShareUseCase(api, api, tracker, logger)
	imageUC := usecase.NewImageUseCase(api, logger)

	return Handlers{
		Cars:    handlers.NewCarHandler(carUC),
		Clients: handlers.NewClientHandler(clientUC),
		Imports: handlers.NewImportHandler(importUC, trackingUC, reportUC),
		Forms:   handlers.NewImportFormHandler(formUC),
		Shares:  handlers.NewShareHandler(shareUC),
		Images:  handlers.NewImageHandler(imageUC),
	}, cleanup, nil
}

// NewRouter mounts middleware, operational endpoints and the /v1 API.
func NewRouter(cfg *config.Config, logger logrus.FieldLogger, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Metrics(),
		middleware.CORS(cfg.Server.CorsAllowedOrigins),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Cars, h.Clients)
	addImportRoutes(v1, h.Imports, h.Shares, h.Images)
	addImportFormRoutes(v1, h.Forms)
	addPublicRoutes(v1, h.Shares)
	return router
}
