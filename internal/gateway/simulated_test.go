package gateway

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulated_Charge(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.UnixMilli(1700000000000)

	testCases := []struct {
		name        string
		approve     bool
		amount      string
		wantSuccess bool
		wantErr     error
	}{
		{name: "approved", approve: true, amount: "28.00", wantSuccess: true},
		{name: "declined", approve: false, amount: "28.00"},
		{name: "zero amount", approve: true, amount: "0", wantErr: entities.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewSimulated(logger, tc.approve)
			g.now = func() time.Time { return now }

			res, err := g.Charge(context.Background(), entities.ChargeRequest{
				OrderID: "order-1",
				Amount:  decimal.RequireFromString(tc.amount),
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantSuccess, res.Success)
			assert.Equal(t, "TXN_1700000000000", res.TransactionID)
			assert.Equal(t, "simulated", res.Gateway)
		})
	}
}
