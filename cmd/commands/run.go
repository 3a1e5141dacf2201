package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"vidvault"
	"vidvault/config"
	"vidvault/internal/application/usecase"
	"vidvault/internal/domain/repository/blob"
	authInfra "vidvault/internal/infrastructure/auth"
	"vidvault/internal/infrastructure/blob/memory"
	blobminio "vidvault/internal/infrastructure/blob/minio"
	"vidvault/internal/infrastructure/database"
	"vidvault/internal/observability"
	"vidvault/internal/presentation/handler"
	"vidvault/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running vidvault", "version", vidvault.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("failed to disconnect database", "err", err)
		}
	}()

	store, err := buildStore(cfg)
	if err != nil {
		ExitOnError(err)
	}

	retriever := database.NewVideoRetriever(db)
	updater := database.NewVideoUpdater(db)
	verifier := authInfra.NewVerifier(cfg.Auth)

	metrics, err := observability.InitMetrics()
	if err != nil {
		ExitOnError(err)
	}

	thumbnailUploader := usecase.NewUploader(verifier, retriever, updater, store,
		cfg.Uploads.Thumbnail, cfg.Server.PublicBaseURL)
	videoUploader := usecase.NewUploader(verifier, retriever, updater, store,
		cfg.Uploads.Video, cfg.Server.PublicBaseURL)
	getter := usecase.NewGetter(store)

	thumbnailHandler := handler.NewUploadHandler(thumbnailUploader, "thumbnail", metrics)
	videoHandler := handler.NewUploadHandler(videoUploader, "video", metrics)
	assetHandler := handler.NewAssetHandler(getter, metrics)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(bodyLimit(cfg)))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.POST("/api/videos/:videoID/thumbnail", thumbnailHandler.Handle)
	e.POST("/api/videos/:videoID/video", videoHandler.Handle)
	e.GET("/assets/:assetKey", assetHandler.HandleGet)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}
}

func buildStore(cfg *config.Config) (blob.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		logger.Warn("using the in-memory byte store, uploaded assets are lost on restart")

		return memory.NewStore(), nil

	default:
		client, err := blobminio.NewClient(cfg.MinIOClient, cfg.MinIOStore)
		if err != nil {
			return nil, err
		}

		return blobminio.NewStore(client, cfg.MinIOStore), nil
	}
}

func bodyLimit(cfg *config.Config) string {
	if cfg.Server.BodyLimit == "" {
		return "1100M"
	}

	return cfg.Server.BodyLimit
}
