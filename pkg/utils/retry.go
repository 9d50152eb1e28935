package utils

import (
	"context"
	"errors"
	"time"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// RetryIf решает, стоит ли повторять попытку. nil означает повторять при любой ошибке.
	RetryIf func(err error) bool
}

// Retry повторяет fn с экспоненциальной задержкой.
// Ошибки из terminal возвращаются сразу, без повторов.
func Retry(cfg RetryConfig, fn func() error, terminal ...error) error {
	return RetryContext(context.Background(), cfg, fn, terminal...)
}

func RetryContext(ctx context.Context, cfg RetryConfig, fn func() error, terminal ...error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Millisecond * 100
	}

	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		if attempt == cfg.MaxAttempts || !shouldRetry(cfg, err, terminal) {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
	return nil
}

func shouldRetry(cfg RetryConfig, err error, terminal []error) bool {
	for _, t := range terminal {
		if errors.Is(err, t) {
			return false
		}
	}
	if cfg.RetryIf != nil {
		return cfg.RetryIf(err)
	}
	return true
}
