package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type HTTPHandler interface {
	Init(r chi.Router)
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

// Starter фоновая задача. Start может вернуть сразу или работать до отмены ctx.
type Starter interface {
	Start(ctx context.Context) error
}

type application struct {
	logger *slog.Logger

	router   chi.Router
	httpSrv  *http.Server
	listener net.Listener

	consumers []Consumer
	starters  []Starter
	closers   []io.Closer

	background errgroup.Group
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics)
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:  logger.With(slog.String("component", "app")),
		httpSrv: httpSrv,
		router:  router,
	}
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = append(a.consumers, consumers...)
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = append(a.starters, starters...)
}

// SetClosers регистрирует ресурсы, закрываемые последними, в обратном порядке.
func (a *application) SetClosers(closers ...io.Closer) {
	a.closers = append(a.closers, closers...)
}

// Start занимает порт синхронно, поэтому ошибка bind возвращается сразу.
func (a *application) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen %s: %w", a.httpSrv.Addr, err)
	}
	a.listener = ln

	for _, s := range a.starters {
		a.background.Go(func() error {
			if err := s.Start(ctx); err != nil {
				a.logger.Error("background task failed", slog.Any("error", err))
				return err
			}
			return nil
		})
	}

	for _, c := range a.consumers {
		a.background.Go(func() error {
			c.Consume(ctx)
			return nil
		})
	}

	go func() {
		a.logger.Info("starting http server", slog.String("addr", ln.Addr().String()))
		if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("http server stopped", slog.Any("error", err))
		}
	}()

	a.logger.Info("application started")
	return nil
}

// Addr адрес, на котором слушает сервер после Start.
func (a *application) Addr() string {
	if a.listener == nil {
		return a.httpSrv.Addr
	}
	return a.listener.Addr().String()
}

const gracefulShutdownTimeout = 5 * time.Second

// Stop ожидает, что ctx из Start уже отменён.
func (a *application) Stop() error {
	var errs []error

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close consumer: %w", err))
		}
	}

	if err := a.background.Wait(); err != nil {
		errs = append(errs, fmt.Errorf("background task: %w", err))
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
