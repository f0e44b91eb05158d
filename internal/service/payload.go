package service

import (
	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/models"
)

type payloadValidator struct {
	logger *zap.Logger
}

func NewPayloadValidator(logger *zap.Logger) PayloadValidator {
	return &payloadValidator{logger: logger}
}

// IsStatusCallback reports whether entry[0].changes[0].value carries statuses.
func (v *payloadValidator) IsStatusCallback(event *models.WebhookEvent) bool {
	value := event.FirstValue()
	return value != nil && len(value.Statuses) > 0
}

// IsValidMessageEvent reports whether entry[0].changes[0].value.messages[0]
// exists. Absent containers are a negative answer, never an error.
func (v *payloadValidator) IsValidMessageEvent(event *models.WebhookEvent) bool {
	value := event.FirstValue()
	switch {
	case value == nil:
		v.logger.Debug("Webhook event has no entry[0].changes[0].value")
		return false
	case len(value.Messages) == 0:
		v.logger.Debug("Webhook event has no messages")
		return false
	}
	return true
}

type messageExtractor struct{}

func NewMessageExtractor() MessageExtractor {
	return &messageExtractor{}
}

// Extract pulls the sender and text out of an event that already passed
// IsValidMessageEvent. A missing field yields a *StructureError.
func (e *messageExtractor) Extract(event *models.WebhookEvent) (*models.InboundMessage, error) {
	value := event.FirstValue()
	if value == nil {
		return nil, &StructureError{Field: "entry[0].changes[0].value"}
	}
	if len(value.Messages) == 0 {
		return nil, &StructureError{Field: "messages[0]"}
	}
	if len(value.Contacts) == 0 {
		return nil, &StructureError{Field: "contacts[0]"}
	}

	contact := value.Contacts[0]
	if contact.WaID == "" {
		return nil, &StructureError{Field: "contacts[0].wa_id"}
	}
	if contact.Profile == nil {
		return nil, &StructureError{Field: "contacts[0].profile"}
	}

	message := value.Messages[0]
	if message.Text == nil {
		return nil, &StructureError{Field: "messages[0].text"}
	}

	return &models.InboundMessage{
		SenderID:   contact.WaID,
		SenderName: contact.Profile.Name,
		MessageID:  orUnknown(message.ID),
		Timestamp:  orUnknown(message.Timestamp),
		Text:       message.Text.Body,
	}, nil
}

func orUnknown(s string) string {
	if s == "" {
		return models.UnknownField
	}
	return s
}
