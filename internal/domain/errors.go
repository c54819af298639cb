package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidIdentifier  = errors.New("identificador inválido")
	ErrMalformedReference = errors.New("referencia mal formada")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrBadRequest         = errors.New("solicitud inválida")
)

// BadRequestError envuelve cualquier fallo inesperado de una secuencia de escrituras.
// El mensaje incluye la causa para poder diagnosticar qué paso falló.
type BadRequestError struct {
	Cause error
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("%s: %v", ErrBadRequest.Error(), e.Cause)
}

// Unwrap expone la causa original.
func (e *BadRequestError) Unwrap() error { return e.Cause }

// Is permite errors.Is(err, ErrBadRequest).
func (e *BadRequestError) Is(target error) bool { return target == ErrBadRequest }

// AsBadRequest deja pasar los errores de la taxonomía (not found, id inválido, referencia
// mal formada, entrada inválida, duplicado) y envuelve el resto en *BadRequestError.
func AsBadRequest(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrNotFound, ErrInvalidIdentifier, ErrMalformedReference, ErrInvalidInput, ErrDuplicate, ErrBadRequest} {
		if errors.Is(err, known) {
			return err
		}
	}
	return &BadRequestError{Cause: err}
}
