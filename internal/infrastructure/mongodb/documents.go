package mongodb

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

// Documentos tal como se guardan. Los campos de referencia se leen como any/bson.A porque
// el servicio anterior dejó ids como texto y listas con formas mezcladas.

type categoryDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	CategoryName   string             `bson:"categoryName"`
	RootCategoryID any                `bson:"rootCategoryId,omitempty"`
	SubCategories  bson.A             `bson:"subCategories"`
	Brands         bson.A             `bson:"brands"`
}

type brandDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	BrandName      string             `bson:"brandName"`
	BrandSymbol    string             `bson:"brandSymbol"`
	BrandIcon      *string            `bson:"brandIcon,omitempty"`
	CategoryIDList bson.A             `bson:"categoryIdList"`
}

type itemDoc struct {
	ID             primitive.ObjectID `bson:"_id"`
	Name           string             `bson:"name"`
	Currency       string             `bson:"currency"`
	Price          any                `bson:"price"`
	Description    *string            `bson:"description,omitempty"`
	ImageURL       *string            `bson:"imageUrl,omitempty"`
	BrandID        any                `bson:"brandId"`
	CategoryID     any                `bson:"categoryId"`
	SubCategoryID  any                `bson:"subCategoryId"`
	Quantity       int                `bson:"quantity"`
	IsFavoriteItem bool               `bson:"isFavoriteItem"`
}

type idOnly struct {
	ID primitive.ObjectID `bson:"_id"`
}

// encodeRef escribe una referencia: suelta como ObjectId, envuelta como {key: ObjectId}.
func encodeRef(r reference.Reference) any {
	switch v := r.(type) {
	case reference.Wrapped:
		return bson.D{{Key: v.Key, Value: v.ID}}
	default:
		return r.Target()
	}
}

// encodeRefs nunca devuelve nil: una lista vacía se guarda como [] y no como null.
func encodeRefs(refs []reference.Reference) bson.A {
	out := make(bson.A, 0, len(refs))
	for _, r := range refs {
		out = append(out, encodeRef(r))
	}
	return out
}

func decodeRefs(raw bson.A, key, field string) ([]reference.Reference, error) {
	refs, err := reference.ParseList([]any(raw), key, reference.Tolerant)
	if err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", field, err)
	}
	return refs, nil
}

func newCategoryDoc(c *entity.Category) categoryDoc {
	doc := categoryDoc{
		ID:            c.ID,
		CategoryName:  c.Name,
		SubCategories: encodeRefs(c.SubCategories),
		Brands:        encodeRefs(c.Brands),
	}
	if c.RootCategoryID != nil {
		doc.RootCategoryID = *c.RootCategoryID
	}
	return doc
}

func (d categoryDoc) toEntity(policy reference.Policy) (*entity.Category, error) {
	c := &entity.Category{ID: d.ID, Name: d.CategoryName}
	if d.RootCategoryID != nil {
		root, err := reference.ParseValue(d.RootCategoryID)
		if err != nil {
			return nil, fmt.Errorf("decodificar rootCategoryId: %w", err)
		}
		c.RootCategoryID = &root
	}
	var err error
	if c.SubCategories, err = decodeRefs(d.SubCategories, policy.SubCategories.Key, "subCategories"); err != nil {
		return nil, err
	}
	if c.Brands, err = decodeRefs(d.Brands, policy.Brands.Key, "brands"); err != nil {
		return nil, err
	}
	return c, nil
}

func newBrandDoc(b *entity.Brand) brandDoc {
	return brandDoc{
		ID:             b.ID,
		BrandName:      b.Name,
		BrandSymbol:    b.Symbol,
		BrandIcon:      b.Icon,
		CategoryIDList: encodeRefs(b.CategoryIDList),
	}
}

func (d brandDoc) toEntity(policy reference.Policy) (*entity.Brand, error) {
	refs, err := decodeRefs(d.CategoryIDList, policy.BrandCategories.Key, "categoryIdList")
	if err != nil {
		return nil, err
	}
	return &entity.Brand{
		ID:             d.ID,
		Name:           d.BrandName,
		Symbol:         d.BrandSymbol,
		Icon:           d.BrandIcon,
		CategoryIDList: refs,
	}, nil
}

func newItemDoc(it *entity.Item) (itemDoc, error) {
	price, err := encodePrice(it.Price)
	if err != nil {
		return itemDoc{}, err
	}
	return itemDoc{
		ID:             it.ID,
		Name:           it.Name,
		Currency:       it.Currency,
		Price:          price,
		Description:    it.Description,
		ImageURL:       it.ImageURL,
		BrandID:        it.BrandID,
		CategoryID:     it.CategoryID,
		SubCategoryID:  it.SubCategoryID,
		Quantity:       it.Quantity,
		IsFavoriteItem: it.IsFavoriteItem,
	}, nil
}

func (d itemDoc) toEntity() (*entity.Item, error) {
	price, err := decodePrice(d.Price)
	if err != nil {
		return nil, err
	}
	return &entity.Item{
		ID:             d.ID,
		Name:           d.Name,
		Currency:       d.Currency,
		Price:          price,
		Description:    d.Description,
		ImageURL:       d.ImageURL,
		BrandID:        opaqueID(d.BrandID),
		CategoryID:     opaqueID(d.CategoryID),
		SubCategoryID:  opaqueID(d.SubCategoryID),
		Quantity:       d.Quantity,
		IsFavoriteItem: d.IsFavoriteItem,
	}, nil
}

func encodePrice(p decimal.Decimal) (primitive.Decimal128, error) {
	d, err := primitive.ParseDecimal128(p.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("codificar precio %s: %w", p, err)
	}
	return d, nil
}

// decodePrice acepta Decimal128 y los precios numéricos o de texto de documentos viejos.
func decodePrice(v any) (decimal.Decimal, error) {
	switch p := v.(type) {
	case nil:
		return decimal.Zero, nil
	case primitive.Decimal128:
		return decimal.NewFromString(p.String())
	case int32:
		return decimal.NewFromInt32(p), nil
	case int64:
		return decimal.NewFromInt(p), nil
	case float64:
		return decimal.NewFromFloat(p), nil
	case string:
		return decimal.NewFromString(p)
	default:
		return decimal.Zero, fmt.Errorf("precio con tipo inesperado %T", v)
	}
}

// opaqueID las referencias de un artículo no se validan: se exponen como texto.
func opaqueID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}
