package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/marketmind-gateway/internal/scheduler"
)

// BackendProber expõe a verificação de saúde do backend
type BackendProber interface {
	CheckNow(ctx context.Context) scheduler.ProbeResult
	GetStatus() map[string]any
}

// GetBackendStatus devolve o último resultado da verificação agendada
func GetBackendStatus(probe BackendProber) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, probe.GetStatus())
	})
}

// CheckBackendStatus força uma verificação imediata do backend
func CheckBackendStatus(probe BackendProber) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := probe.CheckNow(r.Context())

		status := http.StatusOK
		if !result.Healthy {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, r, status, result)
	})
}
