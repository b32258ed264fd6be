package workspace

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSessionNotFound     = errors.New("workspace session not found")
	ErrSessionLimitReached = errors.New("workspace session limit reached")
	ErrMissingRequiredData = errors.New("missing required data")
	ErrLeadNotFound        = errors.New("lead position out of range")
	ErrGenerateID          = errors.New("error generating session ID")
)

// ValidationError é devolvido quando a checagem de campos obrigatórios de uma
// página falha. Nenhuma operação remota é chamada nesse caso.
type ValidationError struct {
	Page   PageName
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Page, ErrMissingRequiredData, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingRequiredData
}

func requireFields(page PageName, fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Page: page, Fields: missing}
}

type field struct {
	name  string
	value string
}
