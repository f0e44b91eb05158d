package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/api"
	"github.com/popeskul/wa-webhook-bridge/internal/config"
	"github.com/popeskul/wa-webhook-bridge/internal/service"
)

func newTestBreaker(timeoutSeconds int) *service.CircuitBreaker {
	return service.NewCircuitBreaker(&config.CircuitBreakerConfig{
		MaxRequests:      1,
		Interval:         10,
		Timeout:          timeoutSeconds,
		FailureRatio:     0.5,
		ConsecutiveFails: 3,
	}, zap.NewNop())
}

func TestCircuitBreaker_Execute(t *testing.T) {
	tests := []struct {
		name        string
		cancelCtx   bool
		function    func() error
		expectedErr string
	}{
		{
			name:     "success",
			function: func() error { return nil },
		},
		{
			name:        "function error is returned unchanged",
			function:    func() error { return errors.New("test error") },
			expectedErr: "test error",
		},
		{
			name:        "cancelled context skips the call",
			cancelCtx:   true,
			function:    func() error { t.Fatal("function must not run"); return nil },
			expectedErr: "context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := newTestBreaker(60)

			ctx := context.Background()
			if tt.cancelCtx {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			err := cb.Execute(ctx, tt.function)
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestCircuitBreaker_TripsOnServerErrors(t *testing.T) {
	cb := newTestBreaker(1)
	assert.Equal(t, api.Closed, cb.GetState())

	for i := 0; i < 3; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return &service.DispatchError{Kind: service.DispatchConnectionFailed, Err: errors.New("refused")}
		})
	}
	assert.Equal(t, api.Open, cb.GetState())

	err := cb.Execute(context.Background(), func() error {
		t.Fatal("function must not run while open")
		return nil
	})
	assert.ErrorIs(t, err, service.ErrCircuitOpen)

	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, api.HalfOpen, cb.GetState())

	require.NoError(t, cb.Execute(context.Background(), func() error { return nil }))
	assert.Equal(t, api.Closed, cb.GetState())
}

func TestCircuitBreaker_ClientErrorsDoNotTrip(t *testing.T) {
	cb := newTestBreaker(60)

	for i := 0; i < 5; i++ {
		err := cb.Execute(context.Background(), func() error {
			return &service.DispatchError{Kind: service.DispatchRemoteError, StatusCode: http.StatusBadRequest}
		})
		require.Error(t, err)
	}

	assert.Equal(t, api.Closed, cb.GetState())
	requests, failures := cb.GetCounts()
	assert.Equal(t, uint32(5), requests)
	assert.Equal(t, uint32(0), failures)
}
