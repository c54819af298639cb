package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Optional distingue un campo ausente, presente con null y presente con valor
// (necesario para actualizaciones parciales).
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON solo se invoca cuando la clave está en el cuerpo.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// Present indica que el campo llegó con un valor no nulo.
func (o Optional[T]) Present() bool { return o.Set && !o.Null }

// Some construye un Optional con valor (útil en tests y en el seed).
func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: v} }

// Null construye un Optional presente con null.
func Null[T any]() Optional[T] { return Optional[T]{Set: true, Null: true} }

// RawReference entrada de una lista de relación tal como llega: "id" o {"clave": "id"}.
// La interpretación la hace el normalizador de referencias.
type RawReference struct {
	Value any
}

func (r *RawReference) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &r.Value)
}

func (r RawReference) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value)
}

// RawValues desenvuelve las entradas para el normalizador.
func RawValues(refs []RawReference) []any {
	out := make([]any, 0, len(refs))
	for _, r := range refs {
		if s, ok := r.Value.(string); ok {
			out = append(out, strings.TrimSpace(s))
			continue
		}
		out = append(out, r.Value)
	}
	return out
}

// BulkDeleteRequest cuerpo de los borrados masivos.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// BulkDeleteResponse resultado de un borrado masivo.
type BulkDeleteResponse struct {
	Requested int      `json:"requested"`
	Deleted   int      `json:"deleted"`
	NotFound  []string `json:"not_found"`
}

// CleanString recorta espacios y normaliza a NFC.
func CleanString(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// CleanStringPtr igual que CleanString respetando nil.
func CleanStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := CleanString(*s)
	return &v
}
