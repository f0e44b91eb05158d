package service

import (
	"regexp"
	"strings"
)

// ReplyGeneratorFunc adapts a plain function to ReplyGenerator.
type ReplyGeneratorFunc func(text string) string

func (f ReplyGeneratorFunc) Generate(text string) string {
	return f(text)
}

// UppercaseReplyGenerator echoes the inbound text in upper case.
type UppercaseReplyGenerator struct{}

func NewUppercaseReplyGenerator() ReplyGenerator {
	return UppercaseReplyGenerator{}
}

func (UppercaseReplyGenerator) Generate(text string) string {
	return strings.ToUpper(text)
}

var (
	citationPattern = regexp.MustCompile(`【.*?】`)
	boldPattern     = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

type whatsAppFormatter struct {
	next ReplyGenerator
}

// WithWhatsAppFormatting wraps a generator so its output drops 【...】 citation
// markers and uses WhatsApp's single asterisk bold.
func WithWhatsAppFormatting(next ReplyGenerator) ReplyGenerator {
	return &whatsAppFormatter{next: next}
}

func (f *whatsAppFormatter) Generate(text string) string {
	return FormatForWhatsApp(f.next.Generate(text))
}

// FormatForWhatsApp converts markdown style text into WhatsApp markup.
func FormatForWhatsApp(text string) string {
	text = strings.TrimSpace(citationPattern.ReplaceAllString(text, ""))
	return boldPattern.ReplaceAllString(text, "*$1*")
}
