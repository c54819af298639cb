package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

// Item artículo de la tienda. BrandID, CategoryID y SubCategoryID son referencias opacas:
// no se valida que existan.
type Item struct {
	ID             reference.ID
	Name           string
	Currency       string
	Price          decimal.Decimal
	Description    *string
	ImageURL       *string
	BrandID        string
	CategoryID     string
	SubCategoryID  string
	Quantity       int
	IsFavoriteItem bool
}

// ItemPatch actualización parcial de un artículo. nil deja el campo intacto.
type ItemPatch struct {
	Name           *string
	Currency       *string
	Price          *decimal.Decimal
	Description    *string
	ImageURL       *string
	BrandID        *string
	CategoryID     *string
	SubCategoryID  *string
	Quantity       *int
	IsFavoriteItem *bool
}

// Empty indica que el parche no toca ningún campo.
func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Currency == nil && p.Price == nil && p.Description == nil &&
		p.ImageURL == nil && p.BrandID == nil && p.CategoryID == nil && p.SubCategoryID == nil &&
		p.Quantity == nil && p.IsFavoriteItem == nil
}
