package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/api"
	"github.com/popeskul/wa-webhook-bridge/internal/config"
	"github.com/popeskul/wa-webhook-bridge/internal/metrics"
	"github.com/popeskul/wa-webhook-bridge/internal/models"
)

const (
	defaultDispatchTimeout = 10 * time.Second
	maxResponseBodyBytes   = 4 << 10
)

type replyDispatcher struct {
	endpoint       string
	accessToken    string
	httpClient     *http.Client
	logger         *zap.Logger
	circuitBreaker *CircuitBreaker
}

func NewReplyDispatcher(cfg *config.Config, logger *zap.Logger) ReplyDispatcher {
	timeout := time.Duration(cfg.Dispatcher.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}

	return &replyDispatcher{
		endpoint:    cfg.WhatsApp.MessagesURL(),
		accessToken: cfg.WhatsApp.AccessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:         logger,
		circuitBreaker: NewCircuitBreaker(&cfg.Dispatcher.CircuitBreaker, logger),
	}
}

// Send posts a text message to the WhatsApp Cloud API. The call is made once;
// a failure is returned as a *DispatchError.
func (d *replyDispatcher) Send(ctx context.Context, recipient, text string) (*models.HTTPOutcome, error) {
	message := models.NewTextMessage(recipient, text)

	var outcome *models.HTTPOutcome
	start := time.Now()
	err := d.circuitBreaker.Execute(ctx, func() error {
		var sendErr error
		outcome, sendErr = d.post(ctx, message)
		return sendErr
	})
	metrics.DispatchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		var dispatchErr *DispatchError
		if !errors.As(err, &dispatchErr) {
			dispatchErr = classifyTransportError(err)
		}
		metrics.DispatchTotal.WithLabelValues(string(dispatchErr.Kind)).Inc()

		requests, failures := d.circuitBreaker.GetCounts()
		d.logger.Error("Failed to send message",
			zap.String("kind", string(dispatchErr.Kind)),
			zap.Int("remoteStatus", dispatchErr.StatusCode),
			zap.String("remoteBody", dispatchErr.Body),
			zap.Error(dispatchErr.Err),
			zap.String("circuitBreakerState", string(d.circuitBreaker.GetState())),
			zap.Uint32("totalRequests", requests),
			zap.Uint32("totalFailures", failures))

		return nil, dispatchErr
	}

	metrics.DispatchTotal.WithLabelValues("sent").Inc()
	d.logger.Info("Message sent successfully",
		zap.Int("status", outcome.StatusCode),
		zap.String("response", outcome.Body),
		zap.String("circuitBreakerState", string(d.circuitBreaker.GetState())))

	return outcome, nil
}

func (d *replyDispatcher) post(ctx context.Context, message models.OutboundMessage) (*models.HTTPOutcome, error) {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return nil, &DispatchError{Kind: DispatchTransportFailure, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, &DispatchError{Kind: DispatchTransportFailure, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.accessToken)

	d.logger.Debug("Sending message to WhatsApp API", zap.String("endpoint", d.endpoint))

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			d.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, classifyTransportError(err)
	}
	body := strings.TrimSpace(string(respBody))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &DispatchError{
			Kind:       DispatchRemoteError,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return &models.HTTPOutcome{StatusCode: resp.StatusCode, Body: body}, nil
}

func classifyTransportError(err error) *DispatchError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return &DispatchError{Kind: DispatchTimeout, Err: err}
	case isConnectionError(err):
		return &DispatchError{Kind: DispatchConnectionFailed, Err: err}
	default:
		return &DispatchError{Kind: DispatchTransportFailure, Err: err}
	}
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) ||
		errors.As(err, &opErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

func (d *replyDispatcher) GetCircuitBreakerStatus() (state api.HealthResponseCircuitBreakerState, requests uint32, failures uint32) {
	state = d.circuitBreaker.GetState()
	requests, failures = d.circuitBreaker.GetCounts()
	return
}
