package main

import (
	"net/http"

	cartapp "github.com/OuicestnousCA/oca/application/cart"
	checkoutapp "github.com/OuicestnousCA/oca/application/checkout"
	newsletterapp "github.com/OuicestnousCA/oca/application/newsletter"
	orderapp "github.com/OuicestnousCA/oca/application/order"
	userapp "github.com/OuicestnousCA/oca/application/user"
	"github.com/OuicestnousCA/oca/cmd/config"
	redisclient "github.com/OuicestnousCA/oca/cmd/redis"
	_ "github.com/OuicestnousCA/oca/docs"
	cartRepo "github.com/OuicestnousCA/oca/repository/cart"
	newsletterRepo "github.com/OuicestnousCA/oca/repository/newsletter"
	orderRepo "github.com/OuicestnousCA/oca/repository/order"
	sessionRepo "github.com/OuicestnousCA/oca/repository/session"
	userRepo "github.com/OuicestnousCA/oca/repository/user"
	"github.com/OuicestnousCA/oca/thirdparty/paystack"
	"github.com/OuicestnousCA/oca/thirdparty/rabbitmq"
	"github.com/OuicestnousCA/oca/transport"
	"github.com/OuicestnousCA/oca/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title OUICESTNOUS Storefront API
// @version 1.0
// @description Checkout, payment and order API for the OUICESTNOUS storefront
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Confirmation mail is best effort: a broker outage must not stop
	// checkout, so a failed publisher init only logs.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Error("err connect rabbitmq, confirmation mail disabled", zap.Error(err))
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	gateway := paystack.NewClient(cfg.Paystack.BaseURL, cfg.Paystack.SecretKey, cfg.Paystack.Timeout)

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	SessionRepo := sessionRepo.NewSessionRepository()
	OrderRepo := orderRepo.NewOrderRepository(db)
	CartRepo := cartRepo.NewCartRepository()
	NewsletterRepo := newsletterRepo.NewNewsletterRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, SessionRepo)
	CartApp := cartapp.NewCartApp(cfg, CartRepo)
	OrderApp := orderapp.NewOrderApp(OrderRepo)
	NewsletterApp := newsletterapp.NewNewsletterApp(NewsletterRepo)

	var dispatcher rabbitmq.Dispatcher
	if publisher != nil {
		dispatcher = publisher
	}
	CheckoutApp := checkoutapp.NewCheckoutApp(cfg, gateway, OrderRepo, CartApp, checkoutapp.FlatPricing{}, dispatcher)

	httpTransport := transport.NewTransport(UserApp, CartApp, CheckoutApp, OrderApp, NewsletterApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
