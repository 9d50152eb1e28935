package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/pkg/utils"
	"github.com/stretchr/testify/assert"
)

var (
	errTemporary = errors.New("temporary")
	errTerminal  = errors.New("terminal")
)

func TestRetry(t *testing.T) {
	cfg := utils.RetryConfig{MaxAttempts: 4, InitialDelay: time.Millisecond, Multiplier: 2}

	testCases := []struct {
		name      string
		cfg       utils.RetryConfig
		errs      []error
		terminal  []error
		wantErr   error
		wantCalls int
	}{
		{name: "first attempt succeeds", cfg: cfg, errs: []error{nil}, wantCalls: 1},
		{name: "succeeds after retries", cfg: cfg, errs: []error{errTemporary, errTemporary, nil}, wantCalls: 3},
		{name: "attempts exhausted", cfg: cfg, errs: []error{errTemporary, errTemporary, errTemporary, errTemporary}, wantErr: errTemporary, wantCalls: 4},
		{name: "terminal error stops", cfg: cfg, errs: []error{errTerminal}, terminal: []error{errTerminal}, wantErr: errTerminal, wantCalls: 1},
		{
			name: "retry predicate rejects",
			cfg: utils.RetryConfig{
				MaxAttempts:  4,
				InitialDelay: time.Millisecond,
				RetryIf:      func(err error) bool { return errors.Is(err, errTemporary) },
			},
			errs:      []error{errTemporary, errTerminal},
			wantErr:   errTerminal,
			wantCalls: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var calls int
			err := utils.Retry(tc.cfg, func() error {
				err := tc.errs[calls]
				calls++
				return err
			}, tc.terminal...)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantCalls, calls)
		})
	}
}

func TestRetryContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int
	err := utils.RetryContext(ctx, utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		calls++
		return errTemporary
	})

	assert.ErrorIs(t, err, errTemporary)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
