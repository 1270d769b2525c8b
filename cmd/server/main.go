package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/Viraj-016/buyhive-marketplace/internal/application/cart"
	catalogapp "github.com/Viraj-016/buyhive-marketplace/internal/application/catalog"
	identityapp "github.com/Viraj-016/buyhive-marketplace/internal/application/identity"
	orderapp "github.com/Viraj-016/buyhive-marketplace/internal/application/order"
	vendorapp "github.com/Viraj-016/buyhive-marketplace/internal/application/vendor"
	wishlistapp "github.com/Viraj-016/buyhive-marketplace/internal/application/wishlist"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/auth"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/cache"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/config"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/event"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/logger"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/payment"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/persistence"
	"github.com/Viraj-016/buyhive-marketplace/internal/interfaces/http/handler"
	"github.com/Viraj-016/buyhive-marketplace/internal/interfaces/http/middleware"
	"github.com/Viraj-016/buyhive-marketplace/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting BuyHive marketplace",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Redis backs the token blacklist and the product read cache.
	// Both degrade gracefully when Redis is unreachable: the blacklist
	// falls back to an in-process map and the cache is disabled.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	var blacklist auth.TokenBlacklist
	var productCache *cache.ProductCache
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
		if cfg.Catalog.CacheEnabled {
			productCache = cache.NewProductCache(redisClient, cfg.Catalog.CacheTTL)
		}
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	}
	defer func() {
		_ = redisClient.Close()
	}()

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	vendorRepo := persistence.NewGormVendorProfileRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	checkoutRepo := persistence.NewGormCheckoutRepository(db.DB)
	wishlistRepo := persistence.NewGormWishlistRepository(db.DB)

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()
	eventBus.Subscribe(event.NewAuditLogHandler(log))

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.JWT)
	hasher := auth.NewPasswordHasher()
	gateway := payment.NewMockGateway()

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, hasher, blacklist, eventBus, log)
	userService := identityapp.NewUserService(userRepo, log)
	addressService := identityapp.NewAddressService(addressRepo, log)
	vendorService := vendorapp.NewService(vendorRepo, eventBus, log)
	analyticsService := vendorapp.NewAnalyticsService(vendorRepo, productRepo, orderRepo, cfg.Catalog.LowStockThreshold, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, vendorRepo, productCache, log)
	reviewService := catalogapp.NewReviewService(reviewRepo, productRepo, log)
	cartService := cartapp.NewService(cartRepo, productRepo, log)
	checkoutService := orderapp.NewCheckoutService(cartRepo, productRepo, addressRepo, checkoutRepo, gateway, eventBus, log)
	orderService := orderapp.NewService(orderRepo, vendorRepo, eventBus, log)
	wishlistService := wishlistapp.NewService(wishlistRepo, productRepo, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(userService, addressService)
	vendorHandler := handler.NewVendorHandler(vendorService, analyticsService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(checkoutService, orderService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, "v1")
	r.Use(middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		SkipPathPrefixes: []string{
			"/api/v1/catalog",
		},
		Logger: log,
	}))

	// Public catalog reads
	catalogRoutes := router.NewDomainGroup("/catalog")
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.GET("/products/slug/:slug", productHandler.GetBySlug)
	catalogRoutes.GET("/products/:id/reviews", reviewHandler.ListByProduct)
	catalogRoutes.GET("/categories", categoryHandler.List)
	catalogRoutes.GET("/categories/:slug", categoryHandler.GetBySlug)
	catalogRoutes.GET("/vendors/:id", vendorHandler.GetByID)

	// Authentication
	authRoutes := router.NewDomainGroup("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	// Account profile and address book
	accountRoutes := router.NewDomainGroup("/account")
	accountRoutes.GET("/profile", accountHandler.GetProfile)
	accountRoutes.PUT("/profile", accountHandler.UpdateProfile)
	accountRoutes.DELETE("/profile", accountHandler.DeactivateAccount)
	accountRoutes.GET("/addresses", accountHandler.ListAddresses)
	accountRoutes.POST("/addresses", accountHandler.CreateAddress)
	accountRoutes.PUT("/addresses/:id", accountHandler.UpdateAddress)
	accountRoutes.POST("/addresses/:id/default", accountHandler.SetDefaultAddress)
	accountRoutes.DELETE("/addresses/:id", accountHandler.DeleteAddress)

	// Cart
	cartRoutes := router.NewDomainGroup("/cart")
	cartRoutes.GET("", cartHandler.Get)
	cartRoutes.DELETE("", cartHandler.Clear)
	cartRoutes.POST("/items", cartHandler.AddItem)
	cartRoutes.PUT("/items/:id", cartHandler.UpdateItem)
	cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)

	// Checkout and customer orders
	orderRoutes := router.NewDomainGroup("/orders")
	orderRoutes.POST("/checkout", orderHandler.Checkout)
	orderRoutes.GET("", orderHandler.ListOwn)
	orderRoutes.GET("/:id", orderHandler.GetOwn)
	orderRoutes.POST("/:id/cancel", orderHandler.Cancel)

	// Wishlist
	wishlistRoutes := router.NewDomainGroup("/wishlist")
	wishlistRoutes.GET("", wishlistHandler.List)
	wishlistRoutes.DELETE("", wishlistHandler.Clear)
	wishlistRoutes.POST("/items/:product_id", wishlistHandler.Toggle)
	wishlistRoutes.DELETE("/items/:product_id", wishlistHandler.Remove)

	// Reviews (authenticated writes)
	reviewRoutes := router.NewDomainGroup("/reviews")
	reviewRoutes.POST("/products/:id", reviewHandler.Create)
	reviewRoutes.PUT("/:id", reviewHandler.Update)
	reviewRoutes.DELETE("/:id", reviewHandler.Delete)

	// Vendor onboarding; reachable before the vendor flag is granted
	vendorRoutes := router.NewDomainGroup("/vendor")
	vendorRoutes.POST("/apply", vendorHandler.Apply)
	vendorRoutes.GET("/profile", vendorHandler.GetOwnProfile)

	// Vendor operations; requires a token carrying the vendor flag
	vendorOpsRoutes := router.NewDomainGroup("/vendor")
	vendorOpsRoutes.Use(middleware.RequireVendor())
	vendorOpsRoutes.PUT("/storefront", vendorHandler.UpdateStorefront)
	vendorOpsRoutes.GET("/dashboard", vendorHandler.Dashboard)
	vendorOpsRoutes.GET("/products", productHandler.ListOwn)
	vendorOpsRoutes.POST("/products", productHandler.Create)
	vendorOpsRoutes.PUT("/products/:id", productHandler.Update)
	vendorOpsRoutes.DELETE("/products/:id", productHandler.Delete)
	vendorOpsRoutes.POST("/products/:id/activate", productHandler.Activate)
	vendorOpsRoutes.POST("/products/:id/deactivate", productHandler.Deactivate)
	vendorOpsRoutes.POST("/products/:id/variants", productHandler.AddVariant)
	vendorOpsRoutes.PUT("/products/:id/variants/:variant_id", productHandler.UpdateVariant)
	vendorOpsRoutes.DELETE("/products/:id/variants/:variant_id", productHandler.RemoveVariant)
	vendorOpsRoutes.POST("/products/:id/images", productHandler.AddImage)
	vendorOpsRoutes.POST("/products/:id/images/:image_id/primary", productHandler.SetPrimaryImage)
	vendorOpsRoutes.DELETE("/products/:id/images/:image_id", productHandler.RemoveImage)
	vendorOpsRoutes.GET("/orders", orderHandler.ListVendorOrders)
	vendorOpsRoutes.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	vendorOpsRoutes.PUT("/orders/:id/tracking", orderHandler.SetTracking)

	// Staff administration
	adminRoutes := router.NewDomainGroup("/admin")
	adminRoutes.Use(middleware.RequireStaff())
	adminRoutes.GET("/vendors", vendorHandler.List)
	adminRoutes.PUT("/vendors/:id/review", vendorHandler.ReviewApplication)
	adminRoutes.POST("/vendors/:id/suspend", vendorHandler.Suspend)
	adminRoutes.POST("/vendors/:id/reinstate", vendorHandler.Reinstate)
	adminRoutes.POST("/categories", categoryHandler.Create)
	adminRoutes.PUT("/categories/:id", categoryHandler.Update)
	adminRoutes.DELETE("/categories/:id", categoryHandler.Delete)
	adminRoutes.PUT("/products/:id/featured", productHandler.SetFeatured)
	adminRoutes.POST("/reviews/:id/hide", reviewHandler.Hide)

	r.Register(catalogRoutes).
		Register(authRoutes).
		Register(accountRoutes).
		Register(cartRoutes).
		Register(orderRoutes).
		Register(wishlistRoutes).
		Register(reviewRoutes).
		Register(vendorRoutes).
		Register(vendorOpsRoutes).
		Register(adminRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness and database reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
