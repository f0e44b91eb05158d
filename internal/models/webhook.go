package models

// WebhookEvent is the typed form of a WhatsApp Cloud API webhook delivery.
type WebhookEvent struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value *ChangeValue `json:"value"`
}

// ChangeValue carries either messages or delivery statuses.
type ChangeValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Metadata         *ChangeMetadata  `json:"metadata,omitempty"`
	Contacts         []Contact        `json:"contacts,omitempty"`
	Messages         []WebhookMessage `json:"messages,omitempty"`
	Statuses         []MessageStatus  `json:"statuses,omitempty"`
}

type ChangeMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type Contact struct {
	WaID    string          `json:"wa_id"`
	Profile *ContactProfile `json:"profile,omitempty"`
}

type ContactProfile struct {
	Name string `json:"name"`
}

type WebhookMessage struct {
	From      string       `json:"from"`
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      *MessageText `json:"text,omitempty"`
}

type MessageText struct {
	Body string `json:"body"`
}

// MessageStatus is a sent/delivered/read lifecycle notification.
type MessageStatus struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// FirstValue returns entry[0].changes[0].value, or nil when any container
// along that path is absent or empty.
func (e *WebhookEvent) FirstValue() *ChangeValue {
	if e == nil || len(e.Entry) == 0 {
		return nil
	}
	changes := e.Entry[0].Changes
	if len(changes) == 0 {
		return nil
	}
	return changes[0].Value
}
