package reference

// Set conjunto de ids que conserva el orden de inserción para que las escrituras y las
// respuestas sean deterministas.
type Set struct {
	order []ID
	index map[ID]struct{}
}

// NewSet construye un conjunto deduplicando ids.
func NewSet(ids ...ID) Set {
	s := Set{index: make(map[ID]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add agrega id si no estaba. Devuelve true si lo agregó.
func (s *Set) Add(id ID) bool {
	if s.index == nil {
		s.index = make(map[ID]struct{})
	}
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Has indica si id pertenece al conjunto.
func (s Set) Has(id ID) bool {
	_, ok := s.index[id]
	return ok
}

// Len cantidad de elementos.
func (s Set) Len() int { return len(s.order) }

// IDs devuelve una copia de los elementos en orden de inserción.
func (s Set) IDs() []ID {
	out := make([]ID, len(s.order))
	copy(out, s.order)
	return out
}

// Minus devuelve s − other conservando el orden de s.
func (s Set) Minus(other Set) Set {
	out := NewSet()
	for _, id := range s.order {
		if !other.Has(id) {
			out.Add(id)
		}
	}
	return out
}

// Union devuelve s ∪ other.
func (s Set) Union(other Set) Set {
	out := NewSet(s.order...)
	for _, id := range other.order {
		out.Add(id)
	}
	return out
}

// Equal compara como conjuntos (ignora el orden).
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, id := range s.order {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
