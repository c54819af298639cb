package reference

// Delta resultado de comparar el estado guardado contra el deseado en un eje de relación.
type Delta struct {
	Add    Set
	Remove Set
}

// Diff calcula Add = desired − existing y Remove = existing − desired.
func Diff(existing, desired Set) Delta {
	return Delta{
		Add:    desired.Minus(existing),
		Remove: existing.Minus(desired),
	}
}

// Empty indica que no hay nada que parchear en el lado inverso.
func (d Delta) Empty() bool {
	return d.Add.Len() == 0 && d.Remove.Len() == 0
}

// Apply reconstruye el estado deseado: existing ∪ Add − Remove.
func (d Delta) Apply(existing Set) Set {
	return existing.Union(d.Add).Minus(d.Remove)
}

// ParentDelta comparación del enlace al padre (0 o 1 elemento). nil significa sin padre.
type ParentDelta struct {
	Changed bool
	Old     *ID
	New     *ID
}

// DiffParent compara por identidad; ausente es un valor válido.
func DiffParent(existing, desired *ID) ParentDelta {
	d := ParentDelta{Old: existing, New: desired}
	switch {
	case existing == nil && desired == nil:
		d.Changed = false
	case existing == nil || desired == nil:
		d.Changed = true
	default:
		d.Changed = *existing != *desired
	}
	return d
}
