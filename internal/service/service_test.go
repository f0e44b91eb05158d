package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/api"
	"github.com/popeskul/wa-webhook-bridge/internal/service"
)

func TestNewService(t *testing.T) {
	t.Run("defaults to the uppercase reply", func(t *testing.T) {
		svc := service.NewService(newDispatcherConfig("http://127.0.0.1:0"), nil, zap.NewNop())

		assert.Equal(t, "**HI**", svc.Reply.Generate("**hi**"))
		assert.Equal(t, api.Healthy, svc.Health.GetHealth().Status)
	})

	t.Run("formatting wraps the injected generator", func(t *testing.T) {
		cfg := newDispatcherConfig("http://127.0.0.1:0")
		cfg.Reply.WhatsAppFormatting = true
		reply := service.ReplyGeneratorFunc(func(text string) string { return text + "【1:0†src】" })

		svc := service.NewService(cfg, reply, zap.NewNop())

		assert.Equal(t, "*hi*", svc.Reply.Generate("**hi**"))
	})
}
