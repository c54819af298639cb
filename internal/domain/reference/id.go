// Package reference modela las referencias entre documentos (categorías, marcas) y el
// cálculo de diferencias que mantiene sincronizados ambos lados de cada relación.
package reference

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
)

// ID es el identificador opaco de un documento. Es comparable por valor, así que sirve
// directamente como clave de mapa.
type ID = primitive.ObjectID

// NewID genera un identificador nuevo.
func NewID() ID { return primitive.NewObjectID() }

// ParseID convierte la representación hexadecimal de un identificador.
func ParseID(s string) (ID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidIdentifier, s)
	}
	return id, nil
}

// ParseIDs convierte una lista de ids; falla con el primero inválido.
func ParseIDs(values []string) ([]ID, error) {
	out := make([]ID, 0, len(values))
	for _, s := range values {
		id, err := ParseID(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// ParseValue acepta un identificador ya tipado o su forma en texto (datos legados).
func ParseValue(v any) (ID, error) {
	switch t := v.(type) {
	case primitive.ObjectID:
		if t.IsZero() {
			return primitive.NilObjectID, fmt.Errorf("%w: id vacío", domain.ErrInvalidIdentifier)
		}
		return t, nil
	case string:
		return ParseID(t)
	default:
		return primitive.NilObjectID, fmt.Errorf("%w: %v", domain.ErrInvalidIdentifier, v)
	}
}

// Hexes devuelve la forma en texto de cada id.
func Hexes(ids []ID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}
