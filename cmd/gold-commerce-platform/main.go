package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aurumlabs/gold-commerce-platform/docs"
	"github.com/aurumlabs/gold-commerce-platform/internal/api/handlers"
	"github.com/aurumlabs/gold-commerce-platform/internal/api/middleware"
	"github.com/aurumlabs/gold-commerce-platform/internal/cache"
	"github.com/aurumlabs/gold-commerce-platform/internal/config"
	"github.com/aurumlabs/gold-commerce-platform/internal/health"
	"github.com/aurumlabs/gold-commerce-platform/internal/metrics"
	repository "github.com/aurumlabs/gold-commerce-platform/internal/repositories"
	service "github.com/aurumlabs/gold-commerce-platform/internal/services"
	"github.com/aurumlabs/gold-commerce-platform/internal/telemetry"
	"github.com/aurumlabs/gold-commerce-platform/pkg/events"
	"github.com/aurumlabs/gold-commerce-platform/pkg/sendgrid"
	"github.com/aurumlabs/gold-commerce-platform/pkg/stripe"
)

// @title           Gold Commerce Platform API
// @version         1.0
// @description     Precious-metal and crypto rate tracking with a full buying flow: catalog, cart, coupons, orders and Stripe payments.
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg)
	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	// Broker setup, optional
	publisher, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		slog.Error("❌ Error connecting to the message broker", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Error("⚠️ Error closing broker connection", slog.String("error", err.Error()))
		}
	}()

	jwtKey := []byte(cfg.Security.JWTKey)
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.User, rateLimiter, jwtKey, cfg.Security.TokenExpiry)
	resetService := service.NewPasswordResetService(repos.User, repos.Token, emailService, cfg.SendGrid.ResetURL)
	userHandler := handlers.NewUserHandler(userService, resetService)
	productService := service.NewProductService(repos.Product, redisCache)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService)
	orderService := service.NewOrderService(repos.Order, repos.Cart, repos.Product, repos.Coupon, cartService, emailService, publisher, redisCache)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentService := service.NewPaymentService(orderService, stripeClient, cfg.Stripe.Currency)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	couponService := service.NewCouponService(repos.Coupon)
	couponHandler := handlers.NewCouponHandler(couponService)
	rateService := service.NewRateService(repos.Rate, redisCache, cfg.Cache.TodayRateTTL)
	rateHandler := handlers.NewRateHandler(rateService)
	addressService := service.NewAddressService(repos.Address)
	addressHandler := handlers.NewAddressHandler(addressService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{
		DB:           repos.DB,
		RedisClient:  redisClient,
		StripeClient: stripeClient,
	})
	if err != nil {
		slog.Error("❌ Error registering health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	admin := func(h http.Handler) http.HandlerFunc {
		return authMiddleware.Authenticate(authMiddleware.RequireAdmin(h))
	}

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/auth/signup", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/auth/signin", userHandler.Login())
	routerMux.HandleFunc("POST /api/v1/auth/forgot-password", userHandler.ForgotPassword())
	routerMux.HandleFunc("GET /api/v1/auth/reset-password/verify", userHandler.VerifyResetToken())
	routerMux.HandleFunc("POST /api/v1/auth/reset-password", userHandler.ResetPassword())
	routerMux.HandleFunc("GET /api/v1/users/me", authMiddleware.Authenticate(userHandler.Profile()))
	routerMux.HandleFunc("PATCH /api/v1/users/me", authMiddleware.Authenticate(userHandler.UpdateProfile()))
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/rates/assets", rateHandler.ListAssets())
	routerMux.HandleFunc("GET /api/v1/rates/{asset}/today", rateHandler.TodayRate())
	routerMux.HandleFunc("GET /api/v1/rates/{asset}/history", rateHandler.RateHistory())
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("DELETE /api/v1/cart", authMiddleware.Authenticate(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PATCH /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.UpdateItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("GET /api/v1/addresses", authMiddleware.Authenticate(addressHandler.ListAddresses()))
	routerMux.HandleFunc("POST /api/v1/addresses", authMiddleware.Authenticate(addressHandler.CreateAddress()))
	routerMux.HandleFunc("GET /api/v1/addresses/default", authMiddleware.Authenticate(addressHandler.GetDefaultAddress()))
	routerMux.HandleFunc("GET /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.GetAddress()))
	routerMux.HandleFunc("PUT /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.UpdateAddress()))
	routerMux.HandleFunc("DELETE /api/v1/addresses/{id}", authMiddleware.Authenticate(addressHandler.DeleteAddress()))
	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.Authenticate(orderHandler.CreateOrder()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{code}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("POST /api/v1/coupons/validate", authMiddleware.Authenticate(orderHandler.ValidateCoupon()))
	routerMux.HandleFunc("POST /api/v1/payments/intent", authMiddleware.Authenticate(paymentHandler.CreatePaymentIntent()))
	routerMux.HandleFunc("POST /api/v1/payments/webhook", paymentHandler.HandleStripeWebhook())
	routerMux.HandleFunc("POST /api/v1/admin/products", admin(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/admin/products/{id}", admin(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/admin/products/{id}", admin(productHandler.DeleteProduct()))
	routerMux.HandleFunc("PUT /api/v1/admin/rates", admin(rateHandler.UpdateRate()))
	routerMux.HandleFunc("POST /api/v1/admin/coupons", admin(couponHandler.CreateCoupon()))
	routerMux.HandleFunc("GET /api/v1/admin/coupons", admin(couponHandler.ListCoupons()))
	routerMux.HandleFunc("PATCH /api/v1/admin/orders/{code}/status", admin(orderHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("PATCH /api/v1/admin/orders/{code}/payment-status", admin(orderHandler.UpdatePaymentStatus()))
	routerMux.HandleFunc("POST /api/v1/admin/payments/refund", admin(paymentHandler.Refund()))
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Recovery(handler)
	handler = telemetry.WrapHandler(handler, "gold-commerce-platform")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
		}
	}
}
