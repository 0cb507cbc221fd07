package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/idan2468/go-store/internal/cache"
	h "github.com/idan2468/go-store/internal/http"
	"github.com/idan2468/go-store/internal/payment"
	"github.com/idan2468/go-store/internal/repository"
	s "github.com/idan2468/go-store/internal/service"
)

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	RedisPassword   string
	JWTSecret       string
	StripeKey       string
	BaseURL         string
	InvoiceDir      string
	ProductsPerPage int
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "shopdb"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		StripeKey:       getEnv("STRIPE_KEY", ""),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		InvoiceDir:      getEnv("INVOICE_DIR", "data/invoices"),
		ProductsPerPage: 8,
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	// Set up MongoDB connection
	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	users := repository.NewMongoUserRepository(mongoDB)
	products := repository.NewMongoProductRepository(mongoDB)
	orders := repository.NewMongoOrderRepository(mongoDB)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	cartCache := cache.NewRedisCache(redisClient)

	sweeper := s.NewSweeper(users, orders, cartCache)
	cartService := s.NewCartService(users, products, cartCache)
	orderService := s.NewOrderService(users, products, orders, cartCache, cfg.InvoiceDir)
	productService := s.NewProductService(products, sweeper)
	authService := s.NewAuthService(users)
	checkout := payment.NewStripeCheckout(cfg.StripeKey, cfg.BaseURL+"/checkout/success", cfg.BaseURL+"/checkout/cancel")

	tokens := h.NewTokenAuth(cfg.JWTSecret)
	authHandler := h.NewAuthHandler(authService, tokens, cfg.RequestTimeout)
	productHandler := h.NewProductHandler(productService, cfg.RequestTimeout, cfg.ProductsPerPage)
	cartHandler := h.NewCartHandler(cartService, cfg.RequestTimeout)
	ordersHandler := h.NewOrdersHandler(orderService, cartService, checkout, cfg.RequestTimeout)

	router := h.NewRouter(authHandler, productHandler, cartHandler, ordersHandler, tokens)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down storefront...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	if err := mongoDB.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}
	log.Println("Storefront stopped")
}
