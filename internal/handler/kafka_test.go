package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	mocks "github.com/SergeyBogomolovv/order-fulfillment/internal/handler/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(_ context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeDLQ struct {
	messages []kafka.Message
	err      error
}

func (w *fakeDLQ) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeDLQ) Close() error { return nil }

func newTestKafkaHandler(reader *fakeReader, dlq *fakeDLQ, payments PaymentRecorder) *kafkaHandler {
	return &kafkaHandler{
		reader:   reader,
		dlq:      dlq,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: validator.New(),
		payments: payments,
	}
}

func paymentMessage(value string) kafka.Message {
	return kafka.Message{Topic: "payments", Key: []byte("order-1"), Value: []byte(value)}
}

func TestKafkaHandler_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		setup   func(svc *mocks.MockPaymentService)
		wantDLQ bool
	}{
		{
			name:  "paid result applied",
			value: `{"order_id":"order-1","status":"PAID","transaction_id":"TXN_1"}`,
			setup: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().RecordPayment(mock.Anything, "order-1", entities.PaymentPaid, "TXN_1").
					Return(entities.Order{ID: "order-1", Status: entities.StatusConfirmed}, nil).Once()
			},
		},
		{
			name:    "malformed json",
			value:   `{"order_id":`,
			wantDLQ: true,
		},
		{
			name:    "unknown status",
			value:   `{"order_id":"order-1","status":"LOST","transaction_id":"TXN_1"}`,
			wantDLQ: true,
		},
		{
			name:    "missing transaction id",
			value:   `{"order_id":"order-1","status":"FAILED"}`,
			wantDLQ: true,
		},
		{
			name:  "order not found",
			value: `{"order_id":"order-1","status":"REFUNDED","transaction_id":"TXN_2"}`,
			setup: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().RecordPayment(mock.Anything, "order-1", entities.PaymentRefunded, "TXN_2").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantDLQ: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			if tc.setup != nil {
				tc.setup(svc)
			}
			reader := &fakeReader{messages: []kafka.Message{paymentMessage(tc.value)}}
			dlq := &fakeDLQ{}

			newTestKafkaHandler(reader, dlq, svc).Consume(context.Background())

			require.Len(t, reader.committed, 1)
			if !tc.wantDLQ {
				assert.Empty(t, dlq.messages)
				return
			}
			require.Len(t, dlq.messages, 1)
			assert.Equal(t, "payments-dlq", dlq.messages[0].Topic)
			assert.Equal(t, tc.value, string(dlq.messages[0].Value))
		})
	}
}

func TestKafkaHandler_DLQFailureSkipsCommit(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{paymentMessage(`not json`)}}
	dlq := &fakeDLQ{err: errors.New("broker unavailable")}

	newTestKafkaHandler(reader, dlq, mocks.NewMockPaymentService(t)).Consume(context.Background())

	assert.Empty(t, reader.committed)
	assert.Empty(t, dlq.messages)
}
