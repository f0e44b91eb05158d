// Package handler provides HTTP request handlers for the application.
package handler

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/api"
	"github.com/popeskul/wa-webhook-bridge/internal/config"
	"github.com/popeskul/wa-webhook-bridge/internal/metrics"
	"github.com/popeskul/wa-webhook-bridge/internal/middleware"
	"github.com/popeskul/wa-webhook-bridge/internal/models"
	"github.com/popeskul/wa-webhook-bridge/internal/service"
)

const (
	SignatureHeader = "X-Hub-Signature-256"

	subscribeMode       = "subscribe"
	defaultMaxBodyBytes = 1 << 20
)

const (
	errorMessageMissingParameters  = "Missing parameters"
	errorMessageVerificationFailed = "Verification failed"
	errorMessageMissingSignature   = "Missing signature header"
	errorMessageInvalidSignature   = "Invalid signature"
	errorMessageUnreadableBody     = "Unable to read request body"
	errorMessageInvalidJSON        = "Invalid JSON provided"
	errorMessageNotWhatsAppEvent   = "Not a WhatsApp API event"
)

type Handler struct {
	service      *service.Service
	verifyToken  string
	recipient    string
	maxBodyBytes int64
	logger       *zap.Logger
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, cfg *config.Config, logger *zap.Logger) api.ServerInterface {
	maxBodyBytes := cfg.Server.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	return &Handler{
		service:      service,
		verifyToken:  cfg.WhatsApp.VerifyToken,
		recipient:    cfg.WhatsApp.RecipientWAID,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// VerifyWebhook implements api.ServerInterface. It answers the hub.* handshake.
func (h *Handler) VerifyWebhook(w http.ResponseWriter, r *http.Request, params api.VerifyWebhookParams) {
	req := models.VerificationRequest{
		Mode:      deref(params.HubMode),
		Token:     deref(params.HubVerifyToken),
		Challenge: deref(params.HubChallenge),
	}
	logger := h.logger.With(zap.String("request_id", middleware.GetRequestID(r.Context())))

	if req.Mode == "" || req.Token == "" {
		logger.Warn("Webhook verification missing parameters",
			zap.Bool("mode_present", req.Mode != ""),
			zap.Bool("token_present", req.Token != ""))
		metrics.Verifications.WithLabelValues("missing_params").Inc()
		h.sendError(w, r, http.StatusBadRequest, errorMessageMissingParameters)
		return
	}

	if req.Mode != subscribeMode || !h.tokenMatches(req.Token) {
		logger.Warn("Webhook verification failed", zap.String("mode", req.Mode))
		metrics.Verifications.WithLabelValues("forbidden").Inc()
		h.sendError(w, r, http.StatusForbidden, errorMessageVerificationFailed)
		return
	}

	logger.Info("Webhook verified")
	metrics.Verifications.WithLabelValues("verified").Inc()
	render.PlainText(w, r, req.Challenge)
}

func (h *Handler) tokenMatches(token string) bool {
	if h.verifyToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.verifyToken)) == 1
}

// ReceiveWebhook implements api.ServerInterface. The signature is checked on
// the raw bytes before anything parses them.
func (h *Handler) ReceiveWebhook(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(zap.String("request_id", middleware.GetRequestID(r.Context())))

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Panic while processing webhook",
				zap.Any("error", rec),
				zap.String("stack", string(debug.Stack())))
			h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorMessageInternal)
		}
	}()

	rawBody, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		logger.Warn("Failed to read webhook body", zap.Error(err))
		h.sendError(w, r, http.StatusBadRequest, errorMessageUnreadableBody)
		return
	}

	if err := h.service.Signature.Verify(rawBody, r.Header.Get(SignatureHeader)); err != nil {
		metrics.WebhookEvents.WithLabelValues("unauthorized").Inc()
		if errors.Is(err, service.ErrMissingSignature) {
			logger.Warn("Webhook rejected, signature header is missing")
			h.sendError(w, r, http.StatusForbidden, errorMessageMissingSignature)
			return
		}
		logger.Warn("Webhook rejected, signature verification failed", zap.Error(err))
		h.sendError(w, r, http.StatusForbidden, errorMessageInvalidSignature)
		return
	}

	if !json.Valid(rawBody) {
		metrics.WebhookEvents.WithLabelValues("bad_json").Inc()
		logger.Warn("Webhook body is not valid JSON", zap.Int("body_bytes", len(rawBody)))
		h.sendError(w, r, http.StatusBadRequest, errorMessageInvalidJSON)
		return
	}

	// A type mismatch still leaves the rest of the event decoded. That is
	// enough to acknowledge a status update, never enough to answer a message.
	var event models.WebhookEvent
	decodeErr := json.Unmarshal(rawBody, &event)
	if decodeErr != nil {
		logger.Debug("Webhook body does not fully match the event shape", zap.Error(decodeErr))
	}

	if h.service.Payload.IsStatusCallback(&event) {
		metrics.WebhookEvents.WithLabelValues("status").Inc()
		logger.Info("Received a WhatsApp status update")
		h.sendOK(w, r)
		return
	}

	if decodeErr != nil || !h.service.Payload.IsValidMessageEvent(&event) {
		metrics.WebhookEvents.WithLabelValues("invalid_event").Inc()
		logger.Warn("Webhook body is not a recognized WhatsApp API event")
		h.sendError(w, r, http.StatusNotFound, errorMessageNotWhatsAppEvent)
		return
	}

	message, err := h.service.Extractor.Extract(&event)
	if err != nil {
		metrics.WebhookEvents.WithLabelValues("structure_error").Inc()
		logger.Error("Validated webhook event could not be extracted", zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorMessageInternal)
		return
	}

	logger.Info("Received WhatsApp message",
		zap.String("sender_id", message.SenderID),
		zap.String("sender_name", message.SenderName),
		zap.String("message_id", message.MessageID),
		zap.String("timestamp", message.Timestamp))

	reply := h.service.Reply.Generate(message.Text)

	if _, err := h.service.Dispatcher.Send(r.Context(), h.recipient, reply); err != nil {
		metrics.WebhookEvents.WithLabelValues("dispatch_failed").Inc()
		var dispatchErr *service.DispatchError
		if errors.As(err, &dispatchErr) {
			h.sendError(w, r, dispatchErr.HTTPStatus(), dispatchErr.Message())
			return
		}
		logger.Error("Reply dispatch failed", zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorMessageInternal)
		return
	}

	metrics.WebhookEvents.WithLabelValues("message").Inc()
	h.sendOK(w, r)
}

// HealthCheck implements api.ServerInterface.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := api.HealthResponse{
		Status:    health.Status,
		Timestamp: time.Now(),
	}

	if health.CircuitBreakerStatus != "" {
		response.CircuitBreakerStatus = &health.CircuitBreakerStatus
	}

	if health.CircuitBreakerState != "" {
		state := health.CircuitBreakerState
		response.CircuitBreakerState = &state
	}

	render.JSON(w, r, response)
}

// ErrorHandler renders parameter binding failures of the generated router.
func ErrorHandler(logger *zap.Logger) func(w http.ResponseWriter, r *http.Request, err error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn("Invalid request parameters", zap.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ErrorResponse{
			Status:  api.ErrorResponseStatusError,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
	}
}

func (h *Handler) sendOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, api.StatusResponse{Status: api.Ok})
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Status:  api.ErrorResponseStatusError,
		Message: message,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
