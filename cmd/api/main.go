package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"glowcart/internal/admin"
	"glowcart/internal/auth"
	"glowcart/internal/blog"
	"glowcart/internal/cart"
	"glowcart/internal/categories"
	"glowcart/internal/config"
	"glowcart/internal/consultations"
	"glowcart/internal/orders"
	"glowcart/internal/products"
	"glowcart/internal/reviews"
	"glowcart/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.AppEnv == "dev" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	s := store.New()
	store.Seed(s)

	jwtMgr := auth.NewJWTManager(auth.JWTConfig{
		Issuer:         cfg.JWTIssuer,
		AccessSecret:   cfg.JWTAccessSecret,
		RefreshSecret:  cfg.JWTRefreshSecret,
		AccessTTLMin:   cfg.AccessTokenTTLMin,
		RefreshTTLDays: cfg.RefreshTokenTTLDays,
	})

	userRepo := auth.NewUserRepo(s)
	refreshRepo := auth.NewRefreshRepo(s)
	seedAdmin(cfg, userRepo, logger)

	authHandler := auth.NewHandler(auth.Dependencies{
		JWT:     jwtMgr,
		Users:   userRepo,
		Refresh: refreshRepo,
	})

	catHandler := categories.NewHandler(categories.NewRepo(s))
	prodHandler := products.NewHandler(products.NewRepo(s))
	reviewHandler := reviews.NewHandler(reviews.NewRepo(s))
	cartHandler := cart.NewHandler(cart.NewRepo(s, cfg.ShippingFee, cfg.FreeShippingMin))
	orderHandler := orders.NewHandler(orders.NewRepo(s, cfg.ShippingFee, cfg.FreeShippingMin))
	consultHandler := consultations.NewHandler(consultations.NewRepo(s))
	blogHandler := blog.NewHandler(blog.NewRepo(s))
	adminHandler := admin.NewHandler(s)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())

	api := r.Group("/api")

	// Catalog (public)
	api.GET("/categories", catHandler.List)
	api.GET("/categories/:slug", catHandler.GetBySlug)
	api.GET("/brands", catHandler.ListBrands)
	api.GET("/brands/:slug", catHandler.GetBrandBySlug)
	api.GET("/skin-types", catHandler.ListSkinTypes)
	api.GET("/skin-concerns", catHandler.ListSkinConcerns)

	api.GET("/products", prodHandler.List)
	api.GET("/products/best-sellers", prodHandler.BestSellers)
	api.GET("/products/new-arrivals", prodHandler.NewArrivals)
	api.GET("/products/:slug", prodHandler.Get)
	api.GET("/products/:slug/related", prodHandler.Related)
	api.GET("/products/:slug/reviews", reviewHandler.ListForProduct)
	api.POST("/reviews", reviewHandler.Create)

	// Cart (session-keyed, no login required)
	api.GET("/cart", cartHandler.Get)
	api.DELETE("/cart", cartHandler.Clear)
	api.POST("/cart/items", cartHandler.AddItem)
	api.PATCH("/cart/items/:id", cartHandler.UpdateQty)
	api.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	api.POST("/cart/items/:id/save", cartHandler.SaveForLater)
	api.POST("/cart/saved/:id/move", cartHandler.MoveToCart)
	api.DELETE("/cart/saved/:id", cartHandler.RemoveSaved)

	// Checkout
	api.POST("/orders", orderHandler.Checkout)
	api.GET("/orders/:number", orderHandler.GetByNumber)

	// Consultations and content
	api.POST("/consultations", consultHandler.Create)
	api.GET("/blog", blogHandler.List)
	api.GET("/blog/:slug", blogHandler.GetBySlug)
	api.GET("/testimonials", blogHandler.Testimonials)

	// Accounts
	users := api.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.POST("/refresh", authHandler.Refresh)
		users.POST("/logout", authHandler.Logout)
	}

	protected := api.Group("/")
	protected.Use(auth.AuthMiddleware(jwtMgr))
	{
		protected.GET("/me", authHandler.Me)

		adminOnly := protected.Group("/")
		adminOnly.Use(auth.RequireRole("admin"))
		{
			adminOnly.POST("/products", prodHandler.AdminCreate)
			adminOnly.POST("/categories", catHandler.AdminCreate)
			adminOnly.GET("/admin/dashboard", adminHandler.Dashboard)
			adminOnly.GET("/admin/orders", orderHandler.AdminList)
			adminOnly.GET("/admin/consultations", consultHandler.AdminList)
		}
	}

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// seedAdmin creates the dashboard account from config. Skipped when no
// password is configured, which is the right default outside dev.
func seedAdmin(cfg config.Config, users *auth.UserRepo, logger *zap.Logger) {
	if cfg.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD not set, admin account not created")
		return
	}
	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		logger.Fatal("failed to hash admin password", zap.Error(err))
	}
	if _, err := users.Create(context.Background(), cfg.AdminUsername, cfg.AdminEmail, hash, "admin"); err != nil {
		logger.Warn("admin account not created", zap.Error(err))
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
