package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("pong"))
	})
}

type blockingStarter struct {
	stopped atomic.Bool
}

func (s *blockingStarter) Start(ctx context.Context) error {
	<-ctx.Done()
	s.stopped.Store(true)
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func TestApplication_Lifecycle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(logger, testConfig())

	starter := &blockingStarter{}
	var order []string
	a.SetHTTPHandlers(pingHandler{})
	a.SetStarters(starter)
	a.SetClosers(
		closerFunc(func() error { order = append(order, "db"); return nil }),
		closerFunc(func() error { order = append(order, "kafka"); return errors.New("broker gone") }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, a.Start(ctx))

	res, err := http.Get("http://" + a.Addr() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "pong", string(body))

	res, err = http.Get("http://" + a.Addr() + "/metrics")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	cancel()
	err = a.Stop()
	assert.ErrorContains(t, err, "broker gone")
	assert.True(t, starter.stopped.Load())
	assert.Equal(t, []string{"kafka", "db"}, order)
}

func TestApplication_StartBindError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()
	cfg.Http.Host = "256.0.0.1"

	err := New(logger, cfg).Start(context.Background())
	assert.Error(t, err)
}
