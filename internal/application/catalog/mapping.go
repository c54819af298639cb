package catalog

import (
	"fmt"
	"strings"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/dto"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

// renderReferences serializa cada referencia en la forma guardada, con ids como texto.
func renderReferences(refs []reference.Reference) []any {
	out := make([]any, 0, len(refs))
	for _, r := range refs {
		switch v := r.(type) {
		case reference.Bare:
			out = append(out, v.ID.Hex())
		case reference.Wrapped:
			out = append(out, map[string]string{v.Key: v.ID.Hex()})
		}
	}
	return out
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	out := &dto.CategoryResponse{
		ID:            c.ID.Hex(),
		CategoryName:  c.Name,
		SubCategories: renderReferences(c.SubCategories),
		Brands:        renderReferences(c.Brands),
	}
	if c.RootCategoryID != nil {
		root := c.RootCategoryID.Hex()
		out.RootCategoryID = &root
	}
	return out
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	if b == nil {
		return nil
	}
	return &dto.BrandResponse{
		ID:             b.ID.Hex(),
		BrandName:      b.Name,
		BrandSymbol:    b.Symbol,
		BrandIcon:      b.Icon,
		CategoryIDList: renderReferences(b.CategoryIDList),
	}
}

func notFound(what string, ids []reference.ID) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, what, strings.Join(reference.Hexes(ids), ", "))
}
