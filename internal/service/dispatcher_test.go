package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/api"
	"github.com/popeskul/wa-webhook-bridge/internal/config"
	"github.com/popeskul/wa-webhook-bridge/internal/models"
	"github.com/popeskul/wa-webhook-bridge/internal/service"
)

func newDispatcherConfig(baseURL string) *config.Config {
	return &config.Config{
		WhatsApp: config.WhatsAppConfig{
			AccessToken:   "test-token",
			PhoneNumberID: "PHONE_ID",
			Version:       "v18.0",
			APIBaseURL:    baseURL,
		},
		Dispatcher: config.DispatcherConfig{
			Timeout: 1,
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxRequests:      1,
				Interval:         60,
				Timeout:          60,
				FailureRatio:     0.6,
				ConsecutiveFails: 5,
			},
		},
	}
}

func TestReplyDispatcher_Send_Success(t *testing.T) {
	var (
		gotPath    string
		gotAuth    string
		gotType    string
		gotMessage models.OutboundMessage
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotMessage)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.OUT"}]}`))
	}))
	defer server.Close()

	d := service.NewReplyDispatcher(newDispatcherConfig(server.URL), zap.NewNop())

	outcome, err := d.Send(context.Background(), "15551234567", "HELLO")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, outcome.StatusCode)
	assert.Equal(t, `{"messages":[{"id":"wamid.OUT"}]}`, outcome.Body)
	assert.Equal(t, "/v18.0/PHONE_ID/messages", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, models.NewTextMessage("15551234567", "HELLO"), gotMessage)
}

// stallUntil answers nothing until release is closed. The server only sees a
// client disconnect once it reads the body, so closing release is what lets
// server.Close return.
func stallUntil(release <-chan struct{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}
}

func TestReplyDispatcher_Send_Failures(t *testing.T) {
	tests := []struct {
		name           string
		handler        http.HandlerFunc
		stall          bool
		closeServer    bool
		expectedKind   service.DispatchErrorKind
		expectedStatus int
		expectedRemote int
	}{
		{
			name: "remote error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
			},
			expectedKind:   service.DispatchRemoteError,
			expectedStatus: http.StatusInternalServerError,
			expectedRemote: http.StatusInternalServerError,
		},
		{
			name: "remote rejection",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			expectedKind:   service.DispatchRemoteError,
			expectedStatus: http.StatusInternalServerError,
			expectedRemote: http.StatusUnauthorized,
		},
		{
			name:           "timeout",
			stall:          true,
			expectedKind:   service.DispatchTimeout,
			expectedStatus: http.StatusRequestTimeout,
		},
		{
			name:           "connection refused",
			handler:        func(w http.ResponseWriter, r *http.Request) {},
			closeServer:    true,
			expectedKind:   service.DispatchConnectionFailed,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			release := make(chan struct{})
			handler := tt.handler
			if tt.stall {
				handler = stallUntil(release)
			}

			server := httptest.NewServer(handler)
			if tt.closeServer {
				server.Close()
			} else {
				defer server.Close()
			}
			defer close(release)

			d := service.NewReplyDispatcher(newDispatcherConfig(server.URL), zap.NewNop())

			outcome, err := d.Send(context.Background(), "15551234567", "HELLO")
			require.Error(t, err)
			assert.Nil(t, outcome)

			var dispatchErr *service.DispatchError
			require.True(t, errors.As(err, &dispatchErr))
			assert.Equal(t, tt.expectedKind, dispatchErr.Kind)
			assert.Equal(t, tt.expectedStatus, dispatchErr.HTTPStatus())
			assert.Equal(t, tt.expectedRemote, dispatchErr.StatusCode)
		})
	}
}

func TestReplyDispatcher_Send_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(stallUntil(release))
	defer server.Close()
	defer close(release)

	cfg := newDispatcherConfig(server.URL)
	cfg.Dispatcher.Timeout = 30
	d := service.NewReplyDispatcher(cfg, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := d.Send(ctx, "15551234567", "HELLO")

	var dispatchErr *service.DispatchError
	require.True(t, errors.As(err, &dispatchErr))
	assert.Equal(t, service.DispatchTimeout, dispatchErr.Kind)
	assert.Equal(t, "Request timed out", dispatchErr.Message())
}

func TestReplyDispatcher_Send_CircuitOpen(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cfg := newDispatcherConfig(server.URL)
	cfg.Dispatcher.CircuitBreaker.ConsecutiveFails = 2
	cfg.Dispatcher.CircuitBreaker.FailureRatio = 0.5
	d := service.NewReplyDispatcher(cfg, zap.NewNop())

	for i := 0; i < 2; i++ {
		_, err := d.Send(context.Background(), "1", "x")
		require.Error(t, err)
	}

	state, requests, failures := d.GetCircuitBreakerStatus()
	assert.Equal(t, api.Open, state)
	assert.Equal(t, uint32(0), requests)
	assert.Equal(t, uint32(0), failures)

	_, err := d.Send(context.Background(), "1", "x")
	var dispatchErr *service.DispatchError
	require.True(t, errors.As(err, &dispatchErr))
	assert.Equal(t, service.DispatchTransportFailure, dispatchErr.Kind)
	assert.ErrorIs(t, dispatchErr, service.ErrCircuitOpen)
	assert.Equal(t, "Failed to send message", dispatchErr.Message())
	assert.Equal(t, 2, calls)
}
