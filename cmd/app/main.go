package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/omosemola/my-ecommerce-web/external/paystack"
	"github.com/omosemola/my-ecommerce-web/external/resend"
	"github.com/omosemola/my-ecommerce-web/external/stripe"

	"github.com/omosemola/my-ecommerce-web/internal/cart"
	"github.com/omosemola/my-ecommerce-web/internal/db"
	"github.com/omosemola/my-ecommerce-web/internal/model"
	"github.com/omosemola/my-ecommerce-web/internal/pricing"
	"github.com/omosemola/my-ecommerce-web/internal/repository"
	"github.com/omosemola/my-ecommerce-web/internal/services"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// ======================
	// STORAGE
	// ======================
	var (
		orderRepo   repository.OrderRepository
		productRepo repository.ProductRepository
		userRepo    repository.UserRepository
		cartStore   cart.Store
		storageMode string
	)

	if os.Getenv("DATABASE_URL") != "" {
		migrationsDir := os.Getenv("MIGRATIONS_DIR")
		if migrationsDir == "" {
			migrationsDir = "migrations"
		}
		if err := db.RunMigrations(os.Getenv("DATABASE_URL"), migrationsDir); err != nil {
			log.Fatal(err)
		}
		pool, err := db.Connect(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()

		orderRepo = repository.NewPgOrderRepository(pool)
		productRepo = repository.NewPgProductRepository(pool)
		userRepo = repository.NewPgUserRepository(pool)
		cartStore = cart.NewMemoryStore()
		storageMode = "postgres"
	} else {
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		fileProducts := repository.NewFileProductRepository(dataDir)
		if err := fileProducts.Seed(sampleProducts()); err != nil {
			log.Fatal(err)
		}
		orderRepo = repository.NewFileOrderRepository(dataDir)
		productRepo = fileProducts
		userRepo = repository.NewFileUserRepository(dataDir)
		cartStore = cart.NewFileStore(dataDir + "/carts.json")
		storageMode = "file"
	}

	// ======================
	// EXTERNALS
	// ======================
	var mailer services.Mailer
	if m, err := resend.NewResendMailer("Shop<onboarding@resend.dev>"); err != nil {
		logger.Warn("email disabled", zap.Error(err))
		mailer = services.NopMailer{}
	} else {
		mailer = m
	}

	providers := map[string]services.PaymentProvider{}
	if sc, err := stripe.NewClient(); err != nil {
		logger.Warn("stripe disabled", zap.Error(err))
	} else {
		providers["stripe"] = sc
	}
	if pc, err := paystack.NewClient(); err != nil {
		logger.Warn("paystack disabled", zap.Error(err))
	} else {
		providers["paystack"] = pc
	}

	// ======================
	// SERVICES
	// ======================
	policy := pricing.DefaultPolicy()

	authSvc := services.NewAuthService(userRepo)
	productSvc := services.NewProductService(productRepo)
	orderSvc := services.NewOrderService(orderRepo, productRepo, policy, mailer, logger)
	paymentSvc := services.NewPaymentService(providers, orderRepo, productRepo, policy, mailer, logger)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerProductRoutes(api, productSvc)
	registerCartRoutes(api, cartStore, productSvc, policy)
	registerOrderRoutes(api, orderSvc)
	registerPaymentRoutes(api, paymentSvc)
	registerEmailRoutes(api, orderSvc, mailer)
	registerAdminRoutes(api, authSvc, orderSvc)

	api.GET("/health", func(c echo.Context) error {
		emailState := "Not configured"
		if os.Getenv("RESEND_API_KEY") != "" {
			emailState = "Configured"
		}
		return c.JSON(200, echo.Map{
			"status":  "Backend is running",
			"storage": storageMode,
			"email":   emailState,
		})
	})

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("server starting",
		zap.String("port", port),
		zap.String("storage", storageMode))
	e.Logger.Fatal(e.Start(":" + port))
}

// sampleProducts is the starter catalog used when the products file is
// still empty.
func sampleProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Cartoon Astronaut T-Shirts", Price: 49.00, Image: "img/products/f1.jpg", Description: "High quality cotton t-shirt", Category: "apparel"},
		{ID: 2, Name: "Leaf Printed T-Shirt", Price: 39.00, Image: "img/products/f2.jpg", Description: "Classic Leaf printed tee", Category: "apparel"},
		{ID: 3, Name: "Leaf Printed T-Shirt 2", Price: 34.00, Image: "img/products/f3.jpg", Description: "Classic Leaf printed tee with premium fabric", Category: "apparel"},
		{ID: 4, Name: "Flower Printed T-Shirt", Price: 12.99, Image: "img/products/f4.jpg", Description: "Classic Flower printed tee", Category: "apparel"},
		{ID: 5, Name: "Flower Printed T-Shirt 2", Price: 14.99, Image: "img/products/f5.jpg", Description: "Classic Leaf printed tee with premium fabric", Category: "apparel"},
		{ID: 6, Name: "Orange and Blue T-Shirt", Price: 9.99, Image: "img/products/f6.jpg", Description: "Classic Orange and Blue T-Shirt", Category: "apparel"},
		{ID: 7, Name: "Quality 3/4 Jeans", Price: 9.99, Image: "img/products/f7.jpg", Description: "Quality 3/4 Jeans", Category: "bottoms"},
		{ID: 8, Name: "Quality Women Linen Top", Price: 9.99, Image: "img/products/f8.jpg", Description: "Quality Women Linen Top", Category: "tops"},
	}
}
