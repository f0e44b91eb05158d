package service

import (
	"fmt"

	"github.com/popeskul/wa-webhook-bridge/internal/api"
)

type healthService struct {
	dispatcher ReplyDispatcher
}

func NewHealthService(dispatcher ReplyDispatcher) HealthService {
	return &healthService{
		dispatcher: dispatcher,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: api.Healthy,
	}

	state, requests, failures := s.dispatcher.GetCircuitBreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	// The receiver keeps accepting webhooks while the outbound API is tripped.
	if state == api.Open {
		status.Status = api.Degraded
	}

	return status
}
