package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/entity"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre la colección items.
type ItemRepo struct {
	coll *mongo.Collection
}

// NewItemRepository construye el adaptador de persistencia para artículos.
func NewItemRepository(db *mongo.Database) *ItemRepo {
	return &ItemRepo{coll: db.Collection(ItemsCollection)}
}

func (r *ItemRepo) FindExisting(ctx context.Context, ids []reference.ID) (reference.Set, error) {
	return findExisting(ctx, r.coll, ids)
}

// Create inserta el artículo. El precio se guarda como Decimal128.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	if item.ID.IsZero() {
		item.ID = reference.NewID()
	}
	doc, err := newItemDoc(item)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id reference.ID) (*entity.Item, error) {
	var doc itemDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return doc.toEntity()
}

// List devuelve hasta limit artículos.
func (r *ItemRepo) List(ctx context.Context, limit int) ([]*entity.Item, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer cur.Close(ctx)

	var docs []itemDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	out := make([]*entity.Item, 0, len(docs))
	for _, d := range docs {
		it, err := d.toEntity()
		if err != nil {
			return nil, fmt.Errorf("artículo %s: %w", d.ID.Hex(), err)
		}
		out = append(out, it)
	}
	return out, nil
}

// Update aplica los campos presentes y devuelve el documento resultante (nil si no existe).
func (r *ItemRepo) Update(ctx context.Context, id reference.ID, patch entity.ItemPatch) (*entity.Item, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Currency != nil {
		set["currency"] = *patch.Currency
	}
	if patch.Price != nil {
		price, err := encodePrice(*patch.Price)
		if err != nil {
			return nil, err
		}
		set["price"] = price
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ImageURL != nil {
		set["imageUrl"] = *patch.ImageURL
	}
	if patch.BrandID != nil {
		set["brandId"] = *patch.BrandID
	}
	if patch.CategoryID != nil {
		set["categoryId"] = *patch.CategoryID
	}
	if patch.SubCategoryID != nil {
		set["subCategoryId"] = *patch.SubCategoryID
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.IsFavoriteItem != nil {
		set["isFavoriteItem"] = *patch.IsFavoriteItem
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: parche vacío", domain.ErrInvalidInput)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc itemDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return doc.toEntity()
}

func (r *ItemRepo) DeleteMany(ctx context.Context, ids []reference.ID) (int64, error) {
	return deleteMany(ctx, r.coll, ids)
}
