package reference

import (
	"fmt"
	"strings"
)

// Form forma canónica con la que se escribe una lista de relación.
type Form int

const (
	FormBare Form = iota
	FormWrapped
)

func (f Form) String() string {
	if f == FormWrapped {
		return "wrapped"
	}
	return "bare"
}

// ParseForm acepta "bare" o "wrapped".
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bare":
		return FormBare, nil
	case "wrapped":
		return FormWrapped, nil
	default:
		return FormBare, fmt.Errorf("forma de referencia desconocida: %q", s)
	}
}

// Axis describe una lista de relación: la clave del registro envolvente y la forma canónica.
type Axis struct {
	Key  string
	Form Form
}

// Canonical construye la referencia que se escribe para id.
func (a Axis) Canonical(id ID) Reference {
	if a.Form == FormWrapped {
		return Wrapped{Key: a.Key, ID: id}
	}
	return Bare{ID: id}
}

// Encode escribe el conjunto en forma canónica. Nunca devuelve nil.
func (a Axis) Encode(s Set) []Reference {
	out := make([]Reference, 0, s.Len())
	for _, id := range s.IDs() {
		out = append(out, a.Canonical(id))
	}
	return out
}

// Policy formas canónicas por eje. Brands y SubCategories pertenecen a Category;
// BrandCategories es Brand.categoryIdList.
type Policy struct {
	Brands          Axis
	SubCategories   Axis
	BrandCategories Axis
}

// DefaultPolicy marcas como ids sueltos, subcategorías y categorías de marca envueltas.
func DefaultPolicy() Policy {
	return Policy{
		Brands:          Axis{Key: "brandId", Form: FormBare},
		SubCategories:   Axis{Key: "subCategoryId", Form: FormWrapped},
		BrandCategories: Axis{Key: "categoryId", Form: FormWrapped},
	}
}

// NewPolicy parte de DefaultPolicy con las formas configuradas para los ejes de Category.
func NewPolicy(brandsForm, subCategoriesForm string) (Policy, error) {
	p := DefaultPolicy()
	var err error
	if p.Brands.Form, err = ParseForm(brandsForm); err != nil {
		return p, err
	}
	if p.SubCategories.Form, err = ParseForm(subCategoriesForm); err != nil {
		return p, err
	}
	return p, nil
}
