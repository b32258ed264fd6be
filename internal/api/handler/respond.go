package handler

import (
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
	"github.com/vfg2006/marketmind-gateway/pkg/apiErrors"
	"github.com/vfg2006/marketmind-gateway/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// limite do corpo das requisições; o maior formulário é o texto do sentimento
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: failed to encode response")
	}
}

// decodeBody lê o corpo JSON em out. Responde VAL_003 e devolve false em caso de erro.
func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(out)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("handler: invalid request body")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid JSON body", nil)
		return false
	}
	return true
}

// lookupWorkspace resolve o workspace do parâmetro :id. Responde o erro e
// devolve false quando a sessão não existe.
func lookupWorkspace(w http.ResponseWriter, r *http.Request, service workspace.WorkspaceService) (*workspace.Workspace, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	ws, err := service.Get(id)
	if err != nil {
		log.ForContext(r.Context()).WithField("session_id", id).Debug("handler: session not found")
		apiErrors.WriteFromError(w, err)
		return nil, false
	}
	return ws, true
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid "+name, map[string]any{name: raw})
		return 0, false
	}
	return value, true
}
