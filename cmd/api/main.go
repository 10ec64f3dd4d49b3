package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/channelry/merchant-api/internal/application/auth"
	appcatalog "github.com/channelry/merchant-api/internal/application/catalog"
	"github.com/channelry/merchant-api/internal/application/usecase"
	"github.com/channelry/merchant-api/internal/infrastructure/mail"
	"github.com/channelry/merchant-api/internal/infrastructure/postgres"
	infraredis "github.com/channelry/merchant-api/internal/infrastructure/redis"
	httpRouter "github.com/channelry/merchant-api/internal/interfaces/http"
	"github.com/channelry/merchant-api/pkg/config"
	"github.com/channelry/merchant-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Redis es opcional: sin REDIS_ADDR la app corre sin cache de
	// productos ni rate limit de login.
	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	listingRepo := postgres.NewListingRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	var productCache appcatalog.ProductCache
	var loginLimiter appauth.LoginLimiter
	if redisClient != nil {
		productCache = infraredis.NewProductCache(redisClient)
		loginLimiter = infraredis.NewLoginLimiter(redisClient)
	}

	var mailer appauth.Mailer
	if cfg.SMTP.Host != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTP)
	}

	authUC := appauth.NewUseCase(userRepo, txRunner, loginLimiter, mailer, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, productCache)
	menuUC := usecase.NewMenuUseCase(menuRepo)
	catalogUC := appcatalog.NewUseCase(productRepo, invRepo, listingRepo, menuRepo, txRunner, productCache)
	actioner := appcatalog.NewActioner(txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Channelry Merchant API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		MenuUC:    menuUC,
		CatalogUC: catalogUC,
		Actioner:  actioner,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
