package entity

import "github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"

// Brand representa una marca y las categorías a las que pertenece (lado inverso de Category.Brands).
type Brand struct {
	ID             reference.ID
	Name           string
	Symbol         string
	Icon           *string
	CategoryIDList []reference.Reference
}

// BrandPatch actualización parcial de una marca. nil deja el campo intacto.
type BrandPatch struct {
	Name           *string
	Symbol         *string
	Icon           *string
	CategoryIDList []reference.Reference
}

// Empty indica que el parche no toca ningún campo.
func (p BrandPatch) Empty() bool {
	return p.Name == nil && p.Symbol == nil && p.Icon == nil && p.CategoryIDList == nil
}
