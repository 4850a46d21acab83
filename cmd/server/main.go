package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/profile-analyzer/internal/config"
	"github.com/fadilmartias/profile-analyzer/internal/domain/fiber/handler"
	"github.com/fadilmartias/profile-analyzer/internal/ioc"
	"github.com/fadilmartias/profile-analyzer/internal/logger"
	"github.com/fadilmartias/profile-analyzer/internal/metrics"
	"github.com/fadilmartias/profile-analyzer/internal/middleware"
	"github.com/fadilmartias/profile-analyzer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	extractionConfig := config.LoadExtractionConfig()

	zl, err := logger.New(appConfig.LogJSON, appConfig.LogDebug)
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bank, engine, err := ioc.InitScoring(config.LoadScoringConfig())
	if err != nil {
		zl.Fatal("creating scoring engine", zap.Error(err))
	}

	m := metrics.New(nil)
	documents := ioc.InitDocumentExtractor(ctx, extractionConfig, config.LoadGeminiConfig(), zl)
	uc := usecase.NewAnalysisUsecase(engine, documents, extractionConfig.Timeout, m, zl)
	h := handler.NewAnalyzeHandler(uc, engine, bank, extractionConfig.MaxUploadBytes)

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		// Leave room for multipart framing around the largest allowed upload.
		BodyLimit: int(extractionConfig.MaxUploadBytes) + 1024*1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(middleware.RequestLogger(zl, m))

	corsConfig := config.LoadCORSConfig()
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: corsConfig.AllowsOrigin,
		AllowCredentials: corsConfig.AllowCredentials,
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(middleware.RateLimiter(appConfig.RateLimitMax, appConfig.RateLimitWindow))
	h.RegisterRoutes(app)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				zl.Debug("runtime stats", zap.Int("goroutines", runtime.NumGoroutine()))
			}
		}
	}()

	go func() {
		<-ctx.Done()
		zl.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zl.Error("shutdown", zap.Error(err))
		}
	}()

	zl.Info("server running",
		zap.String("port", appConfig.Port),
		zap.String("env", appConfig.Env),
		zap.String("engine", engine.Name()),
		zap.String("version", engine.Version()),
		zap.Int("keywords", bank.Len()))
	if err := app.Listen(appConfig.Port); err != nil {
		zl.Fatal("listen", zap.Error(err))
	}
}
