package service

import "github.com/popeskul/wa-webhook-bridge/internal/api"

type HealthStatus struct {
	Status               api.HealthResponseStatus              `json:"status"`
	CircuitBreakerStatus string                                `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  api.HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
}
