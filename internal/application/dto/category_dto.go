package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	CategoryName   string         `json:"categoryName" validate:"required,min=1"`
	RootCategoryID *string        `json:"rootCategoryId"`
	SubCategories  []RawReference `json:"subCategories"`
	Brands         []RawReference `json:"brands"`
}

// Normalize limpia los campos de texto.
func (r *CreateCategoryRequest) Normalize() {
	r.CategoryName = CleanString(r.CategoryName)
	r.RootCategoryID = CleanStringPtr(r.RootCategoryID)
	if r.RootCategoryID != nil && *r.RootCategoryID == "" {
		r.RootCategoryID = nil
	}
}

// UpdateCategoryRequest actualización parcial. Solo se tocan las claves presentes en el cuerpo.
type UpdateCategoryRequest struct {
	CategoryName   Optional[string]         `json:"categoryName"`
	RootCategoryID Optional[string]         `json:"rootCategoryId"`
	SubCategories  Optional[[]RawReference] `json:"subCategories"`
	Brands         Optional[[]RawReference] `json:"brands"`
}

// Normalize limpia los campos de texto.
func (r *UpdateCategoryRequest) Normalize() {
	r.CategoryName.Value = CleanString(r.CategoryName.Value)
	r.RootCategoryID.Value = CleanString(r.RootCategoryID.Value)
}

// CategoryResponse salida de una categoría. Las referencias conservan la forma guardada:
// "id" o {"subCategoryId": "id"}.
type CategoryResponse struct {
	ID             string  `json:"_id"`
	CategoryName   string  `json:"categoryName"`
	RootCategoryID *string `json:"rootCategoryId,omitempty"`
	SubCategories  []any   `json:"subCategories"`
	Brands         []any   `json:"brands"`
}
