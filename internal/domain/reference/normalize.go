package reference

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
)

// Mode controla qué hacer con entradas que no son ni id suelto ni registro {key: id}.
type Mode int

const (
	// Strict rechaza la entrada con ErrMalformedReference (payloads de entrada).
	Strict Mode = iota
	// Tolerant intenta leer la entrada directamente como id (datos ya persistidos).
	Tolerant
)

// Parse reconoce una entrada cruda de una lista de relación.
func Parse(raw any, key string, mode Mode) (Reference, error) {
	switch v := raw.(type) {
	case primitive.ObjectID, string:
		id, err := ParseValue(v)
		if err != nil {
			return nil, err
		}
		return Bare{ID: id}, nil
	case primitive.D:
		if len(v) == 1 && v[0].Key == key {
			return wrapped(key, v[0].Value)
		}
		if mode == Tolerant && len(v) == 1 {
			return fallback(v[0].Value)
		}
	case primitive.M:
		return parseRecord(map[string]any(v), key, mode)
	case map[string]any:
		return parseRecord(v, key, mode)
	case map[string]string:
		rec := make(map[string]any, len(v))
		for k, s := range v {
			rec[k] = s
		}
		return parseRecord(rec, key, mode)
	}
	if mode == Tolerant {
		return fallback(raw)
	}
	return nil, fmt.Errorf("%w: se esperaba id o {%q: id}, se recibió %v", domain.ErrMalformedReference, key, raw)
}

func parseRecord(rec map[string]any, key string, mode Mode) (Reference, error) {
	if value, ok := rec[key]; ok && len(rec) == 1 {
		return wrapped(key, value)
	}
	if mode == Tolerant && len(rec) == 1 {
		for _, value := range rec {
			return fallback(value)
		}
	}
	if mode == Tolerant {
		return fallback(rec)
	}
	return nil, fmt.Errorf("%w: se esperaba id o {%q: id}, se recibió %v", domain.ErrMalformedReference, key, rec)
}

func wrapped(key string, value any) (Reference, error) {
	id, err := ParseValue(value)
	if err != nil {
		return nil, err
	}
	return Wrapped{Key: key, ID: id}, nil
}

func fallback(value any) (Reference, error) {
	id, err := ParseValue(value)
	if err != nil {
		return nil, err
	}
	return Bare{ID: id}, nil
}

// ParseList reconoce cada entrada de una lista conservando orden y forma.
func ParseList(raw []any, key string, mode Mode) ([]Reference, error) {
	out := make([]Reference, 0, len(raw))
	for _, r := range raw {
		ref, err := Parse(r, key, mode)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}

// Normalize convierte una lista heterogénea de referencias en el conjunto de ids.
func Normalize(raw []any, key string, mode Mode) (Set, error) {
	refs, err := ParseList(raw, key, mode)
	if err != nil {
		return Set{}, err
	}
	return SetOf(refs), nil
}
