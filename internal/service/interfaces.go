package service

import (
	"context"

	"github.com/popeskul/wa-webhook-bridge/internal/api"
	"github.com/popeskul/wa-webhook-bridge/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type SignatureValidator interface {
	Validate(rawBody []byte, signatureHeader string) bool
	Verify(rawBody []byte, signatureHeader string) error
}

type PayloadValidator interface {
	IsStatusCallback(event *models.WebhookEvent) bool
	IsValidMessageEvent(event *models.WebhookEvent) bool
}

type MessageExtractor interface {
	Extract(event *models.WebhookEvent) (*models.InboundMessage, error)
}

// ReplyGenerator turns an inbound text into the reply text.
type ReplyGenerator interface {
	Generate(text string) string
}

type ReplyDispatcher interface {
	Send(ctx context.Context, recipient, text string) (*models.HTTPOutcome, error)
	GetCircuitBreakerStatus() (state api.HealthResponseCircuitBreakerState, requests uint32, failures uint32)
}

type HealthService interface {
	GetHealth() *HealthStatus
}
