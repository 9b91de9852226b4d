package main

import (
	"context"
	"fsdine_restaurant/config"
	"fsdine_restaurant/database"
	"fsdine_restaurant/handler"
	"fsdine_restaurant/helper"
	"fsdine_restaurant/logger"
	"fsdine_restaurant/middleware"
	"fsdine_restaurant/model"
	"fsdine_restaurant/router"
	"fsdine_restaurant/service"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func main() {
	app := &cli.App{
		Name:   "fsdine",
		Usage:  "restaurant web ordering backend",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update database tables",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "load the demo menu and an expo admin",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "admin-email", EnvVars: []string{"SEED_ADMIN_EMAIL"}, Value: "expo@fsdine.local"},
					&cli.StringFlag{Name: "admin-password", EnvVars: []string{"SEED_ADMIN_PASSWORD"}, Required: true},
				},
				Action: seed,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Get().WithError(err).Fatal("fsdine stopped")
	}
}

func setup() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Setup(logger.New(cfg.LogLevel))

	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func migrate(*cli.Context) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	return database.Migrate(db)
}

func seed(c *cli.Context) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	return database.SeedData(db, c.String("admin-email"), c.String("admin-password"))
}

func serve(c *cli.Context) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	menuStore := database.NewMenuStore(db)
	var catalog model.MenuCatalog = menuStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer client.Close()

		cache := helper.NewMenuCache(client, menuStore, cfg.MenuCacheTTL)
		scheduler, err := helper.StartMenuCacheScheduler(cache, cfg.MenuCacheRefresh)
		if err != nil {
			return errors.Wrap(err, "failed to start menu cache scheduler")
		}
		defer scheduler.Shutdown()
		catalog = cache
	}

	notifier := service.NewNotifier(database.NewStaffStore(db), database.NewNotificationStore(db))
	orders := service.NewOrderService(database.NewOrderStore(db), catalog, notifier)

	app := fiber.New(fiber.Config{
		AppName:      "fsdine",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestContext())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	router.SetupRoutes(app, handler.New(db, orders, cfg), cfg.JWTSecret)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Get().WithField("addr", cfg.ListenAddr()).Info("http server listening")
		errCh <- app.Listen(cfg.ListenAddr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Get().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
