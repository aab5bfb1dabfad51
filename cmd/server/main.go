package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"product-management/internal/config"
	httpctrl "product-management/internal/controllers/http"
	"product-management/internal/domain"
	"product-management/internal/infra/mysql"
	"product-management/internal/infra/rabbitmq"
	"product-management/internal/infra/token"
	repomysql "product-management/internal/repository/mysql"
	"product-management/internal/services"
)

func main() {
	app := &cli.App{
		Name:  "product-management",
		Usage: "e-commerce back office service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema",
				Action: runMigrate,
			},
			{
				Name:   "seed",
				Usage:  "insert a default admin account and starter catalog",
				Action: runSeed,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}

func setup() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	db, err := mysql.Open(cfg.DSN())
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func runServe(c *cli.Context) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}

	products := repomysql.NewProductRepository(db)
	categories := repomysql.NewCategoryRepository(db)
	orders := repomysql.NewOrderRepository(db)
	payments := repomysql.NewPaymentRepository(db)
	inventoryLogs := repomysql.NewInventoryLogRepository(db)
	users := repomysql.NewUserRepository(db)
	carts := repomysql.NewCartRepository(db)
	wishlists := repomysql.NewWishlistRepository(db)
	ratings := repomysql.NewRatingRepository(db)
	tx := repomysql.NewTxManager(db)

	var publisher rabbitmq.PublisherInterface
	if pub, err := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange); err != nil {
		logrus.WithError(err).Warn("rabbitmq unavailable, events will be dropped")
		publisher = rabbitmq.NopPublisher{}
	} else {
		defer pub.Close()
		publisher = pub
	}

	signer := token.NewSigner(cfg.JWTSecret, cfg.TokenTTL)

	productSvc := services.NewProductService(products, categories)
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(c.Context).Err(); err != nil {
		logrus.WithError(err).Warn("redis unavailable, product cache disabled")
	} else {
		productSvc.SetRedisClient(redisClient)
	}

	handler := httpctrl.NewHandler(httpctrl.Services{
		Auth:       services.NewAuthService(users, signer),
		Users:      services.NewUserService(users),
		Products:   productSvc,
		Categories: services.NewCategoryService(categories),
		Carts:      services.NewCartService(carts, users, products),
		Wishlists:  services.NewWishlistService(wishlists, users, products),
		Ratings:    services.NewRatingService(ratings, products, users),
		Orders:     services.NewOrderService(orders, products, payments, users, tx, publisher, productSvc),
		Payments:   services.NewPaymentService(payments, orders, tx),
		Inventory:  services.NewInventoryService(inventoryLogs, products, tx, publisher, productSvc),
		Dashboard:  services.NewDashboardService(orders, products, users),
	}, signer)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	handler.RegisterRoutes(r)

	logrus.WithField("port", cfg.Port).Info("starting http server")
	return r.Run(":" + cfg.Port)
}

func runMigrate(c *cli.Context) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	if err := mysql.Migrate(db); err != nil {
		return err
	}
	logrus.Info("schema migrated")
	return nil
}

func runSeed(c *cli.Context) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	if err := mysql.Migrate(db); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := domain.User{
		Name:     "Administrator",
		Username: "admin",
		Email:    "admin@example.com",
		Password: string(hash),
		Role:     domain.RoleAdmin,
		Status:   domain.UserActive,
	}
	if err := db.Where(domain.User{Username: "admin"}).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	uncategorized := domain.Category{
		Name:        "Uncategorized",
		Description: "Default category",
		Status:      domain.CategoryActive,
	}
	if err := db.Where(domain.Category{Name: "Uncategorized"}).FirstOrCreate(&uncategorized).Error; err != nil {
		return err
	}

	logrus.Info("seed data inserted")
	return nil
}
