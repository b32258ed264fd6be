package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind/mmclient"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "validação",
			err:        &workspace.ValidationError{Page: workspace.PageSentiment, Fields: []string{"text"}},
			wantCode:   ErrMissingRequiredData,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "backend respondeu 500",
			err:        &mmclient.TransportError{Method: "POST", Path: "/insights", StatusCode: 500, Message: "boom"},
			wantCode:   ErrExternalService,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "backend sem resposta",
			err:        &mmclient.TransportError{Method: "POST", Path: "/insights", Message: "request timed out"},
			wantCode:   ErrCommunication,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "sessão inexistente",
			err:        workspace.ErrSessionNotFound,
			wantCode:   ErrSessionNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "lead inexistente",
			err:        fmt.Errorf("%w: 3", workspace.ErrLeadNotFound),
			wantCode:   ErrLeadNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "usuário inexistente",
			err:        fmt.Errorf("%w: 99", marketmind.ErrUserNotFound),
			wantCode:   ErrUserNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "erro desconhecido",
			err:        errors.New("unexpected"),
			wantCode:   ErrInternalServer,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromError(tt.err)

			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantStatus, StatusFor(apiErr.Code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidFormat, "invalid JSON body", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"VAL_003","message":"invalid JSON body"}`, rec.Body.String())
}
