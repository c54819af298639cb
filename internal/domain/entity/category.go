package entity

import "github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"

// Category representa una categoría del catálogo (jerárquica opcional).
// SubCategories y Brands conservan la forma con la que cada entrada está guardada.
type Category struct {
	ID             reference.ID
	Name           string
	RootCategoryID *reference.ID // nil si es raíz
	SubCategories  []reference.Reference
	Brands         []reference.Reference
}

// CategoryPatch actualización parcial de una categoría. nil deja el campo intacto.
type CategoryPatch struct {
	Name          *string
	Root          *ParentPatch
	SubCategories []reference.Reference
	Brands        []reference.Reference
}

// ParentPatch nuevo valor de rootCategoryId; ID nil elimina el padre.
type ParentPatch struct {
	ID *reference.ID
}

// Empty indica que el parche no toca ningún campo.
func (p CategoryPatch) Empty() bool {
	return p.Name == nil && p.Root == nil && p.SubCategories == nil && p.Brands == nil
}
