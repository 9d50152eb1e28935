package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTxAborted(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		wantAborted bool
	}{
		{name: "deadlock", err: &pq.Error{Code: deadlockDetected, Message: "deadlock detected"}, wantAborted: true},
		{name: "serialization failure", err: &pq.Error{Code: serializationFailure}, wantAborted: true},
		{name: "wrapped deadlock", err: fmt.Errorf("exec: %w", &pq.Error{Code: deadlockDetected}), wantAborted: true},
		{name: "unique violation", err: &pq.Error{Code: uniqueViolation}},
		{name: "plain error", err: errors.New("connection reset")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := txAborted(tc.err)
			assert.Equal(t, tc.wantAborted, errors.Is(err, entities.ErrTxAborted))
			assert.Equal(t, tc.wantAborted, errors.Is(err, entities.ErrConflict))
			if !tc.wantAborted {
				assert.Same(t, tc.err, err)
			}
		})
	}
}
