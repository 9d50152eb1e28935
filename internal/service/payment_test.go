package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/service"
	mocks "github.com/SergeyBogomolovv/order-fulfillment/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentDeps struct {
	orders   *mocks.MockOrderRepo
	cache    *mocks.MockOrderCache
	gateway  *mocks.MockPaymentGateway
	notifier *mocks.MockNotifier
}

func newPaymentService(t *testing.T) (interface {
	RecordPayment(ctx context.Context, orderID string, status entities.PaymentStatus, transactionID string) (entities.Order, error)
	ProcessPayment(ctx context.Context, orderID string) (entities.Order, error)
}, paymentDeps) {
	d := paymentDeps{
		orders:   mocks.NewMockOrderRepo(t),
		cache:    mocks.NewMockOrderCache(t),
		gateway:  mocks.NewMockPaymentGateway(t),
		notifier: mocks.NewMockNotifier(t),
	}
	svc := service.NewPaymentService(discardLogger(), passThroughTx(t), d.orders, d.cache, d.gateway, d.notifier, testRetry)
	return svc, d
}

func TestPaymentService_RecordPayment(t *testing.T) {
	testCases := []struct {
		name       string
		from       entities.OrderStatus
		status     entities.PaymentStatus
		wantStatus entities.OrderStatus
		wantNotify bool
	}{
		{name: "paid pending order is confirmed", from: entities.StatusPending, status: entities.PaymentPaid, wantStatus: entities.StatusConfirmed, wantNotify: true},
		{name: "paid processing order keeps status", from: entities.StatusProcessing, status: entities.PaymentPaid, wantStatus: entities.StatusProcessing},
		{name: "failed payment keeps status", from: entities.StatusPending, status: entities.PaymentFailed, wantStatus: entities.StatusPending},
		{name: "refund", from: entities.StatusCancelled, status: entities.PaymentRefunded, wantStatus: entities.StatusCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, d := newPaymentService(t)
			d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(orderInStatus(tc.from), nil)
			d.orders.EXPECT().UpdateOrder(mock.Anything, mock.Anything, int64(3), mock.Anything).Return(nil)
			d.cache.EXPECT().Set("order-1", mock.Anything).Return()
			if tc.wantNotify {
				d.notifier.EXPECT().NotifyStatusUpdate(mock.Anything, tc.from).Return()
			}

			order, err := svc.RecordPayment(context.Background(), "order-1", tc.status, "TXN_1")
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, order.Status)
			assert.Equal(t, tc.status, order.Payment.Status)
			assert.Equal(t, "TXN_1", order.Payment.TransactionID)
			assert.Equal(t, tc.status == entities.PaymentPaid, order.Payment.PaidAt != nil)
		})
	}
}

func TestPaymentService_RecordPayment_InvalidStatus(t *testing.T) {
	svc, _ := newPaymentService(t)

	_, err := svc.RecordPayment(context.Background(), "order-1", entities.PaymentStatus("SETTLED"), "TXN_1")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)
}

func TestPaymentService_ProcessPayment(t *testing.T) {
	type MockBehavior func(d paymentDeps)

	pending := orderInStatus(entities.StatusPending)
	paid := pending
	paid.Payment.Status = entities.PaymentPaid
	cancelled := orderInStatus(entities.StatusCancelled)
	gatewayErr := errors.New("gateway timeout")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantPayment  entities.PaymentStatus
		wantGateway  string
		wantErr      error
	}{
		{
			name: "approved",
			mockBehavior: func(d paymentDeps) {
				d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pending, nil)
				d.gateway.EXPECT().Charge(mock.Anything, mock.MatchedBy(func(req entities.ChargeRequest) bool {
					return req.OrderID == "order-1" && req.Amount.Equal(dec("28.00"))
				})).Return(entities.ChargeResult{Success: true, TransactionID: "TXN_42", Gateway: "simulated"}, nil)
				d.orders.EXPECT().UpdateOrder(mock.Anything, mock.Anything, int64(3), mock.Anything).Return(nil)
				d.cache.EXPECT().Set("order-1", mock.Anything).Return()
				d.notifier.EXPECT().NotifyStatusUpdate(mock.Anything, entities.StatusPending).Return()
			},
			wantPayment: entities.PaymentPaid,
			wantGateway: "simulated",
		},
		{
			name: "declined",
			mockBehavior: func(d paymentDeps) {
				d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pending, nil)
				d.gateway.EXPECT().Charge(mock.Anything, mock.Anything).
					Return(entities.ChargeResult{Success: false, TransactionID: "TXN_43", Gateway: "simulated", Message: "declined"}, nil)
				d.orders.EXPECT().UpdateOrder(mock.Anything, mock.Anything, int64(3), mock.Anything).Return(nil)
				d.cache.EXPECT().Set("order-1", mock.Anything).Return()
			},
			wantPayment: entities.PaymentFailed,
			wantGateway: "simulated",
		},
		{
			name: "already paid",
			mockBehavior: func(d paymentDeps) {
				d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paid, nil)
			},
			wantErr: entities.ErrAlreadyPaid,
		},
		{
			name: "cancelled order",
			mockBehavior: func(d paymentDeps) {
				d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(cancelled, nil)
			},
			wantErr: entities.ErrBadRequest,
		},
		{
			name: "gateway error",
			mockBehavior: func(d paymentDeps) {
				d.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pending, nil)
				d.gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(entities.ChargeResult{}, gatewayErr)
			},
			wantErr: gatewayErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, d := newPaymentService(t)
			tc.mockBehavior(d)

			order, err := svc.ProcessPayment(context.Background(), "order-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantPayment, order.Payment.Status)
			assert.Equal(t, tc.wantGateway, order.Payment.Gateway)
		})
	}
}
