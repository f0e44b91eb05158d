// Package service provides the webhook verification and dispatch pipeline.
package service

import (
	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/config"
)

type Service struct {
	Signature  SignatureValidator
	Payload    PayloadValidator
	Extractor  MessageExtractor
	Reply      ReplyGenerator
	Dispatcher ReplyDispatcher
	Health     HealthService
}

// NewService wires the pipeline. A nil reply generator falls back to the
// upper-casing echo.
func NewService(cfg *config.Config, reply ReplyGenerator, logger *zap.Logger) *Service {
	if reply == nil {
		reply = NewUppercaseReplyGenerator()
	}
	if cfg.Reply.WhatsAppFormatting {
		reply = WithWhatsAppFormatting(reply)
	}

	dispatcher := NewReplyDispatcher(cfg, logger)

	return &Service{
		Signature:  NewSignatureValidator(&cfg.WhatsApp, logger),
		Payload:    NewPayloadValidator(logger),
		Extractor:  NewMessageExtractor(),
		Reply:      reply,
		Dispatcher: dispatcher,
		Health:     NewHealthService(dispatcher),
	}
}
