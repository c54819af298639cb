package dto

import "github.com/shopspring/decimal"

// CreateItemRequest entrada para crear un artículo.
type CreateItemRequest struct {
	Name           string          `json:"name" validate:"required,min=1"`
	Currency       string          `json:"currency"`
	Price          decimal.Decimal `json:"price"`
	Description    *string         `json:"description"`
	ImageURL       *string         `json:"imageUrl"`
	BrandID        string          `json:"brandId" validate:"required,min=1"`
	CategoryID     string          `json:"categoryId" validate:"required,min=1"`
	SubCategoryID  string          `json:"subCategoryId" validate:"required,min=1"`
	Quantity       int             `json:"quantity" validate:"gte=0"`
	IsFavoriteItem bool            `json:"isFavoriteItem"`
}

// Normalize limpia los campos de texto y aplica la moneda por defecto.
func (r *CreateItemRequest) Normalize() {
	r.Name = CleanString(r.Name)
	r.Currency = CleanString(r.Currency)
	if r.Currency == "" {
		r.Currency = "$"
	}
	r.Description = CleanStringPtr(r.Description)
	r.ImageURL = CleanStringPtr(r.ImageURL)
	r.BrandID = CleanString(r.BrandID)
	r.CategoryID = CleanString(r.CategoryID)
	r.SubCategoryID = CleanString(r.SubCategoryID)
}

// UpdateItemRequest actualización parcial; los null se ignoran.
type UpdateItemRequest struct {
	Name           Optional[string]          `json:"name"`
	Currency       Optional[string]          `json:"currency"`
	Price          Optional[decimal.Decimal] `json:"price"`
	Description    Optional[string]          `json:"description"`
	ImageURL       Optional[string]          `json:"imageUrl"`
	BrandID        Optional[string]          `json:"brandId"`
	CategoryID     Optional[string]          `json:"categoryId"`
	SubCategoryID  Optional[string]          `json:"subCategoryId"`
	Quantity       Optional[int]             `json:"quantity"`
	IsFavoriteItem Optional[bool]            `json:"isFavoriteItem"`
}

// Normalize limpia los campos de texto.
func (r *UpdateItemRequest) Normalize() {
	for _, f := range []*Optional[string]{&r.Name, &r.Currency, &r.Description, &r.ImageURL, &r.BrandID, &r.CategoryID, &r.SubCategoryID} {
		f.Value = CleanString(f.Value)
	}
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	Currency       string          `json:"currency"`
	Price          decimal.Decimal `json:"price"`
	Description    *string         `json:"description,omitempty"`
	ImageURL       *string         `json:"imageUrl,omitempty"`
	BrandID        string          `json:"brandId"`
	CategoryID     string          `json:"categoryId"`
	SubCategoryID  string          `json:"subCategoryId"`
	Quantity       int             `json:"quantity"`
	IsFavoriteItem bool            `json:"isFavoriteItem"`
}
