package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"websocket": map[string]any{
			"sendBufferSize": 256,
		},
		"rabbitmq": map[string]any{
			"enabled": false,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "WEBSOCKET_SENDBUFFERSIZE", want: "websocket.sendBufferSize"},
		{envKey: "RABBITMQ_ENABLED", want: "rabbitmq.enabled"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestDefaults_FillsOptionalSections(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, 50, cfg.Messaging.DefaultPageSize)
	assert.Equal(t, 200, cfg.Messaging.MaxPageSize)
	assert.Equal(t, 20, cfg.Messaging.BroadcastPageSize)
	assert.Equal(t, "restops.topics", cfg.RabbitMQ.Exchange)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Less(t, cfg.WebSocket.PingPeriod, cfg.WebSocket.PongWait)
}

func TestWebSocketDefaults_ClampsPingPeriod(t *testing.T) {
	ws := &WebSocketConfig{PongWait: 10 * time.Second, PingPeriod: 20 * time.Second}
	ws.applyDefaults()

	assert.Equal(t, 9*time.Second, ws.PingPeriod)
	assert.Equal(t, 256, ws.SendBufferSize)
}
