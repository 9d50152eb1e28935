package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
)

const name = "simulated"

// Simulated заглушка платёжного шлюза для локального окружения.
type Simulated struct {
	logger  *slog.Logger
	approve bool
	now     func() time.Time
}

func NewSimulated(logger *slog.Logger, approve bool) *Simulated {
	return &Simulated{
		logger:  logger.With(slog.String("gateway", name)),
		approve: approve,
		now:     time.Now,
	}
}

func (g *Simulated) Charge(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return entities.ChargeResult{}, err
	}
	if !req.Amount.IsPositive() {
		return entities.ChargeResult{}, fmt.Errorf("%w: charge amount must be positive", entities.ErrInvalidAmount)
	}

	res := entities.ChargeResult{
		Success:       g.approve,
		TransactionID: fmt.Sprintf("TXN_%d", g.now().UnixMilli()),
		Gateway:       name,
		Message:       "approved",
	}
	if !g.approve {
		res.Message = "declined"
	}

	g.logger.DebugContext(ctx, "charge processed",
		slog.String("order_id", req.OrderID),
		slog.String("amount", req.Amount.StringFixed(2)),
		slog.Bool("success", res.Success),
	)
	return res, nil
}
