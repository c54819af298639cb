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

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación del puerto BrandRepository sobre la colección brands.
type BrandRepo struct {
	coll   *mongo.Collection
	policy reference.Policy
}

// NewBrandRepository construye el adaptador de persistencia para marcas.
func NewBrandRepository(db *mongo.Database, policy reference.Policy) *BrandRepo {
	return &BrandRepo{coll: db.Collection(BrandsCollection), policy: policy}
}

func (r *BrandRepo) FindExisting(ctx context.Context, ids []reference.ID) (reference.Set, error) {
	return findExisting(ctx, r.coll, ids)
}

// Create inserta la marca.
func (r *BrandRepo) Create(ctx context.Context, brand *entity.Brand) error {
	if brand.ID.IsZero() {
		brand.ID = reference.NewID()
	}
	if _, err := r.coll.InsertOne(ctx, newBrandDoc(brand)); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// GetByID obtiene una marca por ID.
func (r *BrandRepo) GetByID(ctx context.Context, id reference.ID) (*entity.Brand, error) {
	var doc brandDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return doc.toEntity(r.policy)
}

// List devuelve hasta limit marcas.
func (r *BrandRepo) List(ctx context.Context, limit int) ([]*entity.Brand, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer cur.Close(ctx)

	var docs []brandDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode brands: %w", err)
	}
	out := make([]*entity.Brand, 0, len(docs))
	for _, d := range docs {
		b, err := d.toEntity(r.policy)
		if err != nil {
			return nil, fmt.Errorf("marca %s: %w", d.ID.Hex(), err)
		}
		out = append(out, b)
	}
	return out, nil
}

// Update aplica el parche y devuelve el documento resultante (nil si no existe).
func (r *BrandRepo) Update(ctx context.Context, id reference.ID, patch entity.BrandPatch) (*entity.Brand, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["brandName"] = *patch.Name
	}
	if patch.Symbol != nil {
		set["brandSymbol"] = *patch.Symbol
	}
	if patch.Icon != nil {
		set["brandIcon"] = *patch.Icon
	}
	if patch.CategoryIDList != nil {
		set["categoryIdList"] = encodeRefs(patch.CategoryIDList)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: parche vacío", domain.ErrInvalidInput)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc brandDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return doc.toEntity(r.policy)
}

func (r *BrandRepo) DeleteMany(ctx context.Context, ids []reference.ID) (int64, error) {
	return deleteMany(ctx, r.coll, ids)
}

// AddCategory agrega la referencia con $addToSet.
func (r *BrandRepo) AddCategory(ctx context.Context, brandIDs []reference.ID, category reference.Reference) (int64, error) {
	res, err := r.coll.UpdateMany(ctx, idFilter(brandIDs), bson.M{"$addToSet": bson.M{"categoryIdList": encodeRef(category)}})
	if err != nil {
		return 0, fmt.Errorf("add category to brands: %w", err)
	}
	return res.MatchedCount, nil
}

// PullCategories quita las categorías en cualquiera de sus formas guardadas.
func (r *BrandRepo) PullCategories(ctx context.Context, brandIDs []reference.ID, categoryIDs []reference.ID) error {
	pull := bson.M{"$pull": bson.M{"categoryIdList": bson.M{"$in": variants(r.policy.BrandCategories.Key, categoryIDs)}}}
	if _, err := r.coll.UpdateMany(ctx, idFilter(brandIDs), pull); err != nil {
		return fmt.Errorf("pull categories from brands: %w", err)
	}
	return nil
}
