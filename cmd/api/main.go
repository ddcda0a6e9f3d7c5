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

	"github.com/jhoicas/ecommerce-backoffice/docs"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/analytics"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/seed"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
	infrakafka "github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/kafka"
	"github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/memory"
	"github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/pdf"
	"github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/ecommerce-backoffice/internal/interfaces/http"
	"github.com/jhoicas/ecommerce-backoffice/pkg/clock"
	"github.com/jhoicas/ecommerce-backoffice/pkg/config"
	"github.com/jhoicas/ecommerce-backoffice/pkg/logger"
)

// storage repositorios del driver configurado.
type storage struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	customers  repository.CustomerRepository
	orders     repository.OrderRepository
	users      repository.UserRepository
	tx         seed.TxRunner
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	store, err := openStorage(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer store.close()

	clk := clock.RealClock{}
	if cfg.App.Seed {
		loaded, err := seed.NewInitializer(store.tx, clk).Run(ctx, store.categories)
		if err != nil {
			log.Fatal().Err(err).Msg("carga de datos de ejemplo")
		}
		log.Info().Bool("loaded", loaded).Msg("datos de ejemplo")
	}

	// Caché de listas activas: solo si hay Redis configurado.
	var cache usecase.LookupCache
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, sin caché")
		} else {
			defer rdb.Close()
			cache = infraredis.NewLookupCache(rdb, cfg.Redis.TTL, log.Component("redis"))
		}
	}

	m := metrics.New()
	var publisher usecase.ChangePublisher
	if cfg.Kafka.Enabled() {
		kp := infrakafka.NewPublisher(infrakafka.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic), 256, log.Component("kafka"))
		defer kp.Close()
		publisher = kp
	}
	events := m.CountChanges(publisher)

	dashboardUC := analytics.NewDashboardUseCase(store.products, store.customers, store.orders, clk)
	reportUC := analytics.NewReportUseCase(dashboardUC, infrapdf.NewMarotoReportGenerator(cfg.App.Name))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(m.Middleware())

	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "E-commerce Back-office API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", m.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:  usecase.NewCategoryUseCase(store.categories, clk, cache, events),
		ProductUC:   usecase.NewProductUseCase(store.products, store.categories, clk, events),
		CustomerUC:  usecase.NewCustomerUseCase(store.customers, clk, cache, events),
		OrderUC:     usecase.NewOrderUseCase(store.orders, store.customers, clk, events),
		UserUC:      usecase.NewUserUseCase(store.users, clk, events),
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
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

func openStorage(ctx context.Context, cfg config.DBConfig) (*storage, error) {
	if cfg.Driver == config.DriverMemory {
		s := memory.NewStore()
		return &storage{
			categories: s.Categories,
			products:   s.Products,
			customers:  s.Customers,
			orders:     s.Orders,
			users:      s.Users,
			tx:         s,
			close:      func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &storage{
		categories: postgres.NewCategoryRepository(pool),
		products:   postgres.NewProductRepository(pool),
		customers:  postgres.NewCustomerRepository(pool),
		orders:     postgres.NewOrderRepository(pool),
		users:      postgres.NewUserRepository(pool),
		tx:         postgres.NewTxRunner(pool),
		close:      pool.Close,
	}, nil
}
