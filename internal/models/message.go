// Package models defines data structures used throughout the application.
package models

const (
	MessagingProductWhatsApp = "whatsapp"
	RecipientTypeIndividual  = "individual"
	MessageTypeText          = "text"

	// UnknownField replaces an absent message id or timestamp.
	UnknownField = "unknown"
)

// InboundMessage is a text message pulled out of a validated webhook event.
type InboundMessage struct {
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
	MessageID  string `json:"message_id"`
	Timestamp  string `json:"timestamp"`
	Text       string `json:"text"`
}

// OutboundMessage is the Graph API text message envelope.
type OutboundMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	RecipientType    string       `json:"recipient_type"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             OutboundText `json:"text"`
}

type OutboundText struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

// NewTextMessage builds the envelope for a plain text reply.
func NewTextMessage(recipient, body string) OutboundMessage {
	return OutboundMessage{
		MessagingProduct: MessagingProductWhatsApp,
		RecipientType:    RecipientTypeIndividual,
		To:               recipient,
		Type:             MessageTypeText,
		Text: OutboundText{
			PreviewURL: false,
			Body:       body,
		},
	}
}

// VerificationRequest holds the hub.* query parameters of the handshake.
type VerificationRequest struct {
	Mode      string
	Token     string
	Challenge string
}

// HTTPOutcome is the status and body of a successful outbound call.
type HTTPOutcome struct {
	StatusCode int
	Body       string
}
