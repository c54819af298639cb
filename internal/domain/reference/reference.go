package reference

// Reference es una entrada de una lista de relación tal como se persiste:
// Bare (el id suelto) o Wrapped (registro de una sola clave, p.ej. {"brandId": id}).
type Reference interface {
	Target() ID
	isReference()
}

// Bare referencia guardada como identificador suelto.
type Bare struct {
	ID ID
}

// Wrapped referencia guardada como registro {Key: ID}.
type Wrapped struct {
	Key string
	ID  ID
}

func (b Bare) Target() ID    { return b.ID }
func (w Wrapped) Target() ID { return w.ID }

func (Bare) isReference()    {}
func (Wrapped) isReference() {}

// Targets extrae los ids de una lista de referencias, en orden y sin deduplicar.
func Targets(refs []Reference) []ID {
	out := make([]ID, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Target())
	}
	return out
}

// SetOf deduplica los ids de una lista de referencias.
func SetOf(refs []Reference) Set {
	return NewSet(Targets(refs)...)
}
