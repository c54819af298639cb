package dto

// CreateBrandRequest entrada para crear una marca.
type CreateBrandRequest struct {
	BrandName      string         `json:"brandName" validate:"required,min=1"`
	BrandSymbol    string         `json:"brandSymbol" validate:"required,min=1"`
	BrandIcon      *string        `json:"brandIcon"`
	CategoryIDList []RawReference `json:"categoryIdList"`
}

// Normalize limpia los campos de texto.
func (r *CreateBrandRequest) Normalize() {
	r.BrandName = CleanString(r.BrandName)
	r.BrandSymbol = CleanString(r.BrandSymbol)
	r.BrandIcon = CleanStringPtr(r.BrandIcon)
}

// UpdateBrandRequest actualización parcial; los null se ignoran.
type UpdateBrandRequest struct {
	BrandName      Optional[string]         `json:"brandName"`
	BrandSymbol    Optional[string]         `json:"brandSymbol"`
	BrandIcon      Optional[string]         `json:"brandIcon"`
	CategoryIDList Optional[[]RawReference] `json:"categoryIdList"`
}

// Normalize limpia los campos de texto.
func (r *UpdateBrandRequest) Normalize() {
	r.BrandName.Value = CleanString(r.BrandName.Value)
	r.BrandSymbol.Value = CleanString(r.BrandSymbol.Value)
	r.BrandIcon.Value = CleanString(r.BrandIcon.Value)
}

// BrandResponse salida de una marca.
type BrandResponse struct {
	ID             string  `json:"_id"`
	BrandName      string  `json:"brandName"`
	BrandSymbol    string  `json:"brandSymbol"`
	BrandIcon      *string `json:"brandIcon,omitempty"`
	CategoryIDList []any   `json:"categoryIdList"`
}
