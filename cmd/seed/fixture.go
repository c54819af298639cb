package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/dto"
)

// fixture catálogo de ejemplo. Las categorías referencian marcas y padre por nombre; el
// padre debe aparecer antes en la lista.
type fixture struct {
	Brands     []brandSeed             `json:"brands"`
	Categories []categorySeed          `json:"categories"`
	Items      []dto.CreateItemRequest `json:"items"`
}

type brandSeed struct {
	BrandName   string  `json:"brandName"`
	BrandSymbol string  `json:"brandSymbol"`
	BrandIcon   *string `json:"brandIcon"`
}

type categorySeed struct {
	CategoryName string   `json:"categoryName"`
	Parent       string   `json:"parent"`
	Brands       []string `json:"brands"`
}

// decodeFixture lee el JSON; con charset latin1 convierte desde ISO-8859-1 (exportaciones
// viejas de planillas).
func decodeFixture(r io.Reader, charset string) (*fixture, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf8", "utf-8":
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "windows-1252", "cp1252":
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado: %q", charset)
	}
	var f fixture
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decodificar fixture: %w", err)
	}
	return &f, nil
}

// categoryRequest arma el request de creación resolviendo nombres ya creados.
func categoryRequest(s categorySeed, brandIDs, categoryIDs map[string]string) (dto.CreateCategoryRequest, error) {
	req := dto.CreateCategoryRequest{CategoryName: s.CategoryName}
	if s.Parent != "" {
		id, ok := categoryIDs[s.Parent]
		if !ok {
			return req, fmt.Errorf("categoría %q: padre %q no definido antes", s.CategoryName, s.Parent)
		}
		req.RootCategoryID = &id
	}
	for _, name := range s.Brands {
		id, ok := brandIDs[name]
		if !ok {
			return req, fmt.Errorf("categoría %q: marca %q no definida", s.CategoryName, name)
		}
		req.Brands = append(req.Brands, dto.RawReference{Value: id})
	}
	return req, nil
}
