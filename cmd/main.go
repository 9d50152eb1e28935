package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/order-fulfillment/docs"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/app"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/cache"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/gateway"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/handler"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/middleware"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/notifier"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/postgres"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/repo"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/service"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/trm"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/utils"

	"github.com/joho/godotenv"
)

// @title           Order Fulfillment API
// @version         1.0
// @description     Корзина, оформление и жизненный цикл заказов
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	logger.Info("postgres connected")

	redisClient, err := cache.NewRedisClient(ctx, conf.Redis)
	panicIfErr("failed to connect to redis", err)
	logger.Info("redis connected")

	registerMetrics()

	store := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	cartCache := cache.NewCartCache(redisClient, conf.Redis.CartTTL)
	orderCache := cache.NewOrderCache(conf.Cache.Capacity, conf.Cache.TTL)

	retry := utils.RetryConfig{
		MaxAttempts:  conf.Inventory.RetryAttempts,
		InitialDelay: conf.Inventory.RetryInitialDelay,
		MaxDelay:     conf.Inventory.RetryMaxDelay,
	}

	sender := notifier.NewKafkaSender(conf.Kafka)
	dispatcher := notifier.NewDispatcher(logger, sender, conf.Notifier)

	inventory := service.NewInventory(logger, store, retry)
	coupons := service.NewStaticCoupons(service.DefaultCoupons)

	cartService := service.NewCartService(logger, txManager, store, cartCache, store, inventory, coupons)
	orderService := service.NewOrderService(logger, txManager, store, store, cartCache, store, inventory, orderCache, dispatcher, retry)
	paymentService := service.NewPaymentService(logger, txManager, store, orderCache, gateway.NewSimulated(logger, conf.Payment.AutoApprove), dispatcher, retry)

	application := app.New(logger, conf)

	application.SetHTTPHandlers(
		handler.NewCartHandler(logger, cartService),
		handler.NewOrderHandler(logger, orderService, paymentService),
	)
	application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, paymentService))
	application.SetStarters(orderCache, dispatcher, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	application.SetClosers(db, redisClient, sender)

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func registerMetrics() {
	middleware.RegisterMetrics()
	handler.RegisterMetrics()
	service.RegisterMetrics()
	notifier.RegisterMetrics()
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

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
