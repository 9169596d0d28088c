package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atlasrides/rental-backend/internal/config"
	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/atlasrides/rental-backend/internal/handlers"
	"github.com/atlasrides/rental-backend/internal/middleware"
	"github.com/atlasrides/rental-backend/internal/services"
	"github.com/atlasrides/rental-backend/pkg/email"
	"github.com/atlasrides/rental-backend/pkg/jwt"
	"github.com/atlasrides/rental-backend/pkg/validator"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting AtlasRides backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize repositories
	settingRepo := database.NewSettingRepository(db)
	blogRepo := database.NewBlogRepository(db)
	carRepo := database.NewCarRepository(db)
	tourRepo := database.NewTourRepository(db)
	redirectRepo := database.NewRedirectRepository(db)
	reviewRepo := database.NewReviewRepository(db)
	faqRepo := database.NewFAQRepository(db)
	locationRepo := database.NewLocationRepository(db)
	bookingRepo := database.NewBookingRepository(db)
	profileRepo := database.NewProfileRepository(db)

	// Initialize services
	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	emailValidator := validator.NewEmailValidator()
	settingsService := services.NewSettingsService(settingRepo)
	seoService := services.NewSEOService(settingsService, blogRepo, carRepo, tourRepo, cfg.Site.BaseURL, logger)
	redirectService := services.NewRedirectService(redirectRepo, logger)
	rateLimitService := services.NewRateLimitService(db, cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute)
	bookingService := services.NewBookingService(bookingRepo, carRepo, tourRepo, logger)
	authService := services.NewAdminAuthService(profileRepo, jwtService, logger)

	emailGateway := email.NewResendGateway(email.ResendConfig{
		APIURL: cfg.Email.APIURL,
		APIKey: cfg.Email.APIKey,
	})

	// Start background jobs
	cronService := services.NewCronService(bookingService, rateLimitService, cfg.Booking.PendingTTL, logger)
	if err := cronService.Start(); err != nil {
		logger.Fatalf("Failed to start cron service: %v", err)
	}

	// Initialize handlers
	seoHandler := handlers.NewSEOHandler(seoService, logger)
	redirectHandler := handlers.NewRedirectHandler(redirectService, redirectRepo)
	contactHandler := handlers.NewContactHandler(cfg, emailGateway, emailValidator, rateLimitService, logger)
	blogHandler := handlers.NewBlogHandler(blogRepo)
	carHandler := handlers.NewCarHandler(carRepo)
	tourHandler := handlers.NewTourHandler(tourRepo)
	reviewHandler := handlers.NewReviewHandler(reviewRepo)
	faqHandler := handlers.NewFAQHandler(faqRepo)
	locationHandler := handlers.NewLocationHandler(locationRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService, bookingRepo, logger)
	settingHandler := handlers.NewSettingHandler(settingRepo, settingsService)
	authHandler := handlers.NewAdminAuthHandler(authService, logger)
	healthHandler := handlers.NewHealthHandler(db)

	// Initialize Gin router
	router := gin.New()

	// A wrong method on a known route must answer 405, not 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(middleware.MetricsMiddleware())

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Crawler-facing documents
	router.GET("/robots.txt", seoHandler.RobotsTxt)
	router.GET("/sitemap.xml", seoHandler.Sitemap)

	// Operational endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public API
	api := router.Group("/api")
	{
		api.POST("/send-contact", contactHandler.SendContact)
		api.GET("/test-email-config", contactHandler.TestEmailConfig)
		api.GET("/redirects/resolve", redirectHandler.Resolve)

		api.GET("/settings/:key", settingHandler.GetPublicSetting)

		api.GET("/blogs", blogHandler.ListPublished)
		api.GET("/blogs/:slug", blogHandler.GetBySlug)
		api.GET("/cars", carHandler.ListActive)
		api.GET("/cars/:id", carHandler.GetActiveByID)
		api.GET("/tours", tourHandler.ListActive)
		api.GET("/tours/:id", tourHandler.GetActiveByID)
		api.GET("/faqs", faqHandler.ListActive)
		api.GET("/locations", locationHandler.ListActive)

		api.GET("/reviews", reviewHandler.ListApproved)
		api.POST("/reviews", reviewHandler.SubmitReview)

		api.POST("/bookings", bookingHandler.CreateBooking)
	}

	// Admin API
	admin := router.Group("/api/admin")
	{
		admin.POST("/auth/login", authHandler.Login)
		admin.POST("/auth/refresh", authHandler.Refresh)

		protected := admin.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService, logger))
		{
			protected.GET("/auth/me", authHandler.Me)

			protected.GET("/settings", settingHandler.ListSettings)
			protected.GET("/settings/:key", settingHandler.GetSetting)
			protected.PUT("/settings/:key", settingHandler.UpsertSetting)

			protected.GET("/blogs", blogHandler.ListAll)
			protected.POST("/blogs", blogHandler.CreateBlog)
			protected.PUT("/blogs/:id", blogHandler.UpdateBlog)
			protected.DELETE("/blogs/:id", blogHandler.DeleteBlog)

			protected.GET("/cars", carHandler.ListAll)
			protected.POST("/cars", carHandler.CreateCar)
			protected.PUT("/cars/:id", carHandler.UpdateCar)
			protected.DELETE("/cars/:id", carHandler.DeleteCar)

			protected.GET("/tours", tourHandler.ListAll)
			protected.POST("/tours", tourHandler.CreateTour)
			protected.PUT("/tours/:id", tourHandler.UpdateTour)
			protected.DELETE("/tours/:id", tourHandler.DeleteTour)

			protected.GET("/redirects", redirectHandler.ListRedirects)
			protected.POST("/redirects", redirectHandler.CreateRedirect)
			protected.PUT("/redirects/:id", redirectHandler.UpdateRedirect)
			protected.DELETE("/redirects/:id", redirectHandler.DeleteRedirect)

			protected.GET("/reviews", reviewHandler.ListAll)
			protected.PUT("/reviews/:id/approval", reviewHandler.SetApproval)
			protected.DELETE("/reviews/:id", reviewHandler.DeleteReview)

			protected.GET("/faqs", faqHandler.ListAll)
			protected.POST("/faqs", faqHandler.CreateFAQ)
			protected.PUT("/faqs/:id", faqHandler.UpdateFAQ)
			protected.DELETE("/faqs/:id", faqHandler.DeleteFAQ)

			protected.GET("/locations", locationHandler.ListAll)
			protected.POST("/locations", locationHandler.CreateLocation)
			protected.PUT("/locations/:id", locationHandler.UpdateLocation)
			protected.DELETE("/locations/:id", locationHandler.DeleteLocation)

			protected.GET("/bookings", bookingHandler.ListBookings)
			protected.GET("/bookings/:id", bookingHandler.GetBooking)
			protected.PUT("/bookings/:id/status", bookingHandler.UpdateBookingStatus)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	cronService.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": time.Since(start).Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}

		if admin, ok := middleware.GetAdmin(c); ok {
			fields["admin"] = admin.Email
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case len(c.Errors) > 0:
			entry.WithField("errors", c.Errors.String()).Error("Request failed with errors")
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}
