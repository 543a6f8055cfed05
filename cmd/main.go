package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrevlb/sushi-api/internal/app"
	"github.com/andrevlb/sushi-api/internal/config"
	"github.com/andrevlb/sushi-api/internal/entities"
	"github.com/andrevlb/sushi-api/internal/events"
	"github.com/andrevlb/sushi-api/internal/handler"
	"github.com/andrevlb/sushi-api/internal/middleware"
	"github.com/andrevlb/sushi-api/internal/postgres"
	"github.com/andrevlb/sushi-api/internal/repo"
	"github.com/andrevlb/sushi-api/internal/service"
	"github.com/andrevlb/sushi-api/pkg/auth"
	"github.com/andrevlb/sushi-api/pkg/cache"
	"github.com/andrevlb/sushi-api/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	productRepo := repo.NewProductRepo(db)
	categoryRepo := repo.NewCategoryRepo(db)
	customerRepo := repo.NewCustomerRepo(db)
	employeeRepo := repo.NewEmployeeRepo(db)

	txManager := trm.NewManager(db)
	productCache := cache.New[int64, entities.Product](conf.Cache.Capacity, conf.Cache.TTL)
	tokens := auth.NewTokenManager(conf.JWT.Secret, conf.JWT.TTL)
	publisher := events.NewPublisher(logger, conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo, customerRepo, customerRepo, productRepo, publisher)
	productService := service.NewProductService(logger, txManager, productRepo, categoryRepo, productCache)
	categoryService := service.NewCategoryService(logger, txManager, categoryRepo)
	customerService := service.NewCustomerService(logger, txManager, customerRepo)
	employeeService := service.NewEmployeeService(logger, txManager, employeeRepo)
	authService := service.NewAuthService(logger, txManager, customerRepo, employeeRepo, tokens)

	guard := middleware.NewGuard(tokens)

	application := app.New(logger, conf)
	application.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService, guard),
		handler.NewProductHandler(logger, productService, guard),
		handler.NewCategoryHandler(logger, categoryService, guard),
		handler.NewCustomerHandler(logger, customerService, guard),
		handler.NewEmployeeHandler(logger, employeeService, guard),
		handler.NewAuthHandler(logger, authService),
	)
	application.SetStarters(productCache)
	application.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application.Start(ctx)
	<-ctx.Done()
	application.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
