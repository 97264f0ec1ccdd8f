package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"marketplace/internal/audit"
	"marketplace/internal/config"
	"marketplace/internal/database"
	"marketplace/internal/events"
	"marketplace/internal/logger"
	"marketplace/internal/middleware"
	"marketplace/internal/modules/admin"
	"marketplace/internal/modules/auth"
	"marketplace/internal/modules/booking"
	"marketplace/internal/modules/checkout"
	"marketplace/internal/modules/listing"
	"marketplace/internal/modules/onboarding"
	"marketplace/internal/modules/order"
	"marketplace/internal/modules/rating"
	"marketplace/internal/modules/settlement"
	jwtsvc "marketplace/internal/pkg/jwt"
	"marketplace/internal/store"
	"marketplace/internal/stripe"
)

const (
	tokenTTL        = 24 * time.Hour
	settlementQueue = 64
	shutdownTimeout = 10 * time.Second
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", zap.Error(err))
	}

	st, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("open store", zap.Error(err))
	}

	var publisher *events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewPublisher(cfg.KafkaBrokers, cfg.AuditTopic, log)
		defer publisher.Close()
		log.Info("audit events mirrored to kafka",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.AuditTopic),
		)
	}
	recorder := audit.NewRecorder(publisher)

	tokens := jwtsvc.New(cfg.JWTSecret, tokenTTL)
	payments := stripe.NewClient(cfg.StripeSecretKey)

	authService := auth.NewService(st, tokens, recorder, log)
	listingService := listing.NewService(st, recorder)
	bookingService := booking.NewService(st, recorder, log)
	orderService := order.NewService(st, recorder, log)
	checkoutService := checkout.NewService(st, recorder, payments, checkout.Config{
		FeeBps:   cfg.PlatformFeeBps,
		Currency: cfg.Currency,
		BaseURL:  cfg.BaseURL,
	}, log)
	settlementService := settlement.NewService(st, recorder, log)
	ratingService := rating.NewService(st, recorder)
	onboardingService := onboarding.NewService(st, payments, recorder, cfg.BaseURL, log)
	adminService := admin.NewService(st)

	queue := settlement.NewQueue(settlementService, log, settlementQueue)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	listingHandler := listing.NewHandler(listingService)

	auth.NewHandler(authService).RegisterRoutes(r)
	listingHandler.RegisterPublicRoutes(r)
	settlement.NewHandler(queue, cfg.StripeWebhookSecret, log).RegisterRoutes(r)

	protected := r.Group("/", middleware.Auth(tokens))
	listingHandler.RegisterRoutes(protected)
	booking.NewHandler(bookingService).RegisterRoutes(protected)
	order.NewHandler(orderService).RegisterRoutes(protected)
	checkout.NewHandler(checkoutService).RegisterRoutes(protected)
	rating.NewHandler(ratingService).RegisterRoutes(protected)
	onboarding.NewHandler(onboardingService).RegisterRoutes(protected)

	adminGroup := r.Group("/admin", middleware.AdminKey(cfg.AdminKeys))
	admin.NewHandler(adminService).RegisterRoutes(adminGroup)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go queue.Run(ctx)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}

func openStore(cfg *config.Config, log *zap.Logger) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Info("using database snapshot store")
		return store.NewGormStore(db)
	}
	log.Info("using file snapshot store", zap.String("path", cfg.DataPath))
	return store.NewFileStore(cfg.DataPath)
}
