package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/config"
)

const signaturePrefix = "sha256="

type signatureValidator struct {
	appSecret    []byte
	strictPrefix bool
	logger       *zap.Logger
}

func NewSignatureValidator(cfg *config.WhatsAppConfig, logger *zap.Logger) SignatureValidator {
	return &signatureValidator{
		appSecret:    []byte(cfg.AppSecret),
		strictPrefix: cfg.StrictSignaturePrefix,
		logger:       logger,
	}
}

// Validate checks the X-Hub-Signature-256 value against an HMAC-SHA256 of the
// raw request body. It never panics; every failure is reported as false.
func (v *signatureValidator) Validate(rawBody []byte, signatureHeader string) bool {
	return v.Verify(rawBody, signatureHeader) == nil
}

// Verify is Validate with the failure reason.
func (v *signatureValidator) Verify(rawBody []byte, signatureHeader string) error {
	if signatureHeader == "" {
		return ErrMissingSignature
	}
	if len(v.appSecret) == 0 {
		v.logger.Error("Signature validation impossible, app secret is not configured")
		return ErrMissingAppSecret
	}

	signature, hasPrefix := strings.CutPrefix(signatureHeader, signaturePrefix)
	if !hasPrefix && v.strictPrefix {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, v.appSecret)
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		v.logger.Debug("Signature mismatch",
			zap.String("provided_prefix", truncate(signature, 12)),
			zap.Int("body_bytes", len(rawBody)))
		return ErrInvalidSignature
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
