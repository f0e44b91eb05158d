package service_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/config"
	"github.com/popeskul/wa-webhook-bridge/internal/service"
)

const testAppSecret = "test-app-secret"

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func newValidator(secret string, strict bool) service.SignatureValidator {
	return service.NewSignatureValidator(&config.WhatsAppConfig{
		AppSecret:             secret,
		StrictSignaturePrefix: strict,
	}, zap.NewNop())
}

func TestSignatureValidator_Verify(t *testing.T) {
	body := []byte(`{"object":"whatsapp_business_account","entry":[]}`)
	valid := sign(testAppSecret, body)

	tests := []struct {
		name     string
		secret   string
		strict   bool
		header   string
		expected error
	}{
		{name: "prefixed signature", secret: testAppSecret, header: "sha256=" + valid},
		{name: "bare signature tolerated", secret: testAppSecret, header: valid},
		{name: "bare signature rejected in strict mode", secret: testAppSecret, strict: true, header: valid, expected: service.ErrInvalidSignature},
		{name: "empty header", secret: testAppSecret, header: "", expected: service.ErrMissingSignature},
		{name: "wrong secret", secret: "other-secret", header: "sha256=" + valid, expected: service.ErrInvalidSignature},
		{name: "missing secret", secret: "", header: "sha256=" + valid, expected: service.ErrMissingAppSecret},
		{name: "garbage", secret: testAppSecret, header: "sha256=not-hex", expected: service.ErrInvalidSignature},
		{name: "upper-case prefix is not stripped", secret: testAppSecret, header: "SHA256=" + valid, expected: service.ErrInvalidSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newValidator(tt.secret, tt.strict)

			err := v.Verify(body, tt.header)
			if tt.expected == nil {
				assert.NoError(t, err)
				assert.True(t, v.Validate(body, tt.header))
				return
			}
			assert.ErrorIs(t, err, tt.expected)
			assert.False(t, v.Validate(body, tt.header))
		})
	}
}

func TestSignatureValidator_SingleByteMutations(t *testing.T) {
	v := newValidator(testAppSecret, false)
	body := []byte(`{"entry":[{"changes":[{"value":{"messages":[{"text":{"body":"hello"}}]}}]}]}`)
	signature := sign(testAppSecret, body)

	assert.True(t, v.Validate(body, "sha256="+signature))

	for i := range body {
		mutated := append([]byte(nil), body...)
		mutated[i] ^= 0x01
		assert.False(t, v.Validate(mutated, "sha256="+signature), "body mutation at %d accepted", i)
	}

	for i := range signature {
		mutated := []byte(signature)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}
		assert.False(t, v.Validate(body, "sha256="+string(mutated)), "signature mutation at %d accepted", i)
	}
}

func TestSignatureValidator_RoundTrip(t *testing.T) {
	secrets := []string{"a", testAppSecret, "ünïcödé-secret"}
	bodies := [][]byte{
		{},
		[]byte("{}"),
		[]byte(`{"text":"olá 👋"}`),
		make([]byte, 4096),
	}

	for _, secret := range secrets {
		v := newValidator(secret, true)
		for _, body := range bodies {
			assert.True(t, v.Validate(body, "sha256="+sign(secret, body)))
		}
	}
}
