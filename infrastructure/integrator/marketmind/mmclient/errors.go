package mmclient

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransportError é o único tipo de erro produzido pelo cliente: falha de rede,
// timeout, status fora da faixa 2xx ou corpo 2xx que não pôde ser decodificado.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int // zero quando não houve resposta
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("marketmind: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("marketmind: %s %s: %s", e.Method, e.Path, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout indica se a falha foi por estouro de prazo
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// HasStatus indica se o backend chegou a responder
func (e *TransportError) HasStatus() bool {
	return e.StatusCode != 0
}

// AsTransportError extrai um *TransportError da cadeia de err
func AsTransportError(err error) (*TransportError, bool) {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr, true
	}
	return nil, false
}
