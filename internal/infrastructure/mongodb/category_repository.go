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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre la colección categories.
type CategoryRepo struct {
	coll   *mongo.Collection
	policy reference.Policy
}

// NewCategoryRepository construye el adaptador. policy da las claves para reconocer
// referencias envueltas al leer.
func NewCategoryRepository(db *mongo.Database, policy reference.Policy) *CategoryRepo {
	return &CategoryRepo{coll: db.Collection(CategoriesCollection), policy: policy}
}

func (r *CategoryRepo) FindExisting(ctx context.Context, ids []reference.ID) (reference.Set, error) {
	return findExisting(ctx, r.coll, ids)
}

// Create inserta la categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID.IsZero() {
		category.ID = reference.NewID()
	}
	if _, err := r.coll.InsertOne(ctx, newCategoryDoc(category)); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id reference.ID) (*entity.Category, error) {
	var doc categoryDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return doc.toEntity(r.policy)
}

// List devuelve hasta limit categorías.
func (r *CategoryRepo) List(ctx context.Context, limit int) ([]*entity.Category, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)

	var docs []categoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	out := make([]*entity.Category, 0, len(docs))
	for _, d := range docs {
		c, err := d.toEntity(r.policy)
		if err != nil {
			return nil, fmt.Errorf("categoría %s: %w", d.ID.Hex(), err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Update reescribe los campos del parche. rootCategoryId nulo se elimina del documento.
func (r *CategoryRepo) Update(ctx context.Context, id reference.ID, patch entity.CategoryPatch) (bool, error) {
	set := bson.M{}
	unset := bson.M{}
	if patch.Name != nil {
		set["categoryName"] = *patch.Name
	}
	if patch.Root != nil {
		if patch.Root.ID != nil {
			set["rootCategoryId"] = *patch.Root.ID
		} else {
			unset["rootCategoryId"] = ""
		}
	}
	if patch.SubCategories != nil {
		set["subCategories"] = encodeRefs(patch.SubCategories)
	}
	if patch.Brands != nil {
		set["brands"] = encodeRefs(patch.Brands)
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	if len(update) == 0 {
		return false, fmt.Errorf("%w: parche vacío", domain.ErrInvalidInput)
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, fmt.Errorf("update category: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *CategoryRepo) DeleteMany(ctx context.Context, ids []reference.ID) (int64, error) {
	return deleteMany(ctx, r.coll, ids)
}

// AddBrand agrega la referencia con $addToSet.
func (r *CategoryRepo) AddBrand(ctx context.Context, categoryIDs []reference.ID, brand reference.Reference) (int64, error) {
	res, err := r.coll.UpdateMany(ctx, idFilter(categoryIDs), bson.M{"$addToSet": bson.M{"brands": encodeRef(brand)}})
	if err != nil {
		return 0, fmt.Errorf("add brand: %w", err)
	}
	return res.MatchedCount, nil
}

// PullBrands quita las marcas en cualquiera de sus formas guardadas.
func (r *CategoryRepo) PullBrands(ctx context.Context, categoryIDs []reference.ID, brandIDs []reference.ID) error {
	pull := bson.M{"$pull": bson.M{"brands": bson.M{"$in": variants(r.policy.Brands.Key, brandIDs)}}}
	if _, err := r.coll.UpdateMany(ctx, idFilter(categoryIDs), pull); err != nil {
		return fmt.Errorf("pull brands: %w", err)
	}
	return nil
}

func (r *CategoryRepo) AddSubCategory(ctx context.Context, parentIDs []reference.ID, child reference.Reference) (int64, error) {
	res, err := r.coll.UpdateMany(ctx, idFilter(parentIDs), bson.M{"$addToSet": bson.M{"subCategories": encodeRef(child)}})
	if err != nil {
		return 0, fmt.Errorf("add subcategory: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *CategoryRepo) PullSubCategories(ctx context.Context, parentIDs []reference.ID, childIDs []reference.ID) error {
	pull := bson.M{"$pull": bson.M{"subCategories": bson.M{"$in": variants(r.policy.SubCategories.Key, childIDs)}}}
	if _, err := r.coll.UpdateMany(ctx, idFilter(parentIDs), pull); err != nil {
		return fmt.Errorf("pull subcategories: %w", err)
	}
	return nil
}

func (r *CategoryRepo) DetachSubCategories(ctx context.Context, keep reference.ID, childIDs []reference.ID) error {
	forms := variants(r.policy.SubCategories.Key, childIDs)
	filter := bson.M{
		"_id":           bson.M{"$ne": keep},
		"subCategories": bson.M{"$in": forms},
	}
	if _, err := r.coll.UpdateMany(ctx, filter, bson.M{"$pull": bson.M{"subCategories": bson.M{"$in": forms}}}); err != nil {
		return fmt.Errorf("detach subcategories: %w", err)
	}
	return nil
}

func (r *CategoryRepo) SetParent(ctx context.Context, childIDs []reference.ID, parent reference.ID) (int64, error) {
	res, err := r.coll.UpdateMany(ctx, idFilter(childIDs), bson.M{"$set": bson.M{"rootCategoryId": parent}})
	if err != nil {
		return 0, fmt.Errorf("set parent: %w", err)
	}
	return res.MatchedCount, nil
}

// ClearParent solo toca los hijos cuyo rootCategoryId todavía apunta a parent.
func (r *CategoryRepo) ClearParent(ctx context.Context, childIDs []reference.ID, parent reference.ID) error {
	filter := idFilter(childIDs)
	filter["rootCategoryId"] = bson.M{"$in": idValues(parent)}
	if _, err := r.coll.UpdateMany(ctx, filter, bson.M{"$unset": bson.M{"rootCategoryId": ""}}); err != nil {
		return fmt.Errorf("clear parent: %w", err)
	}
	return nil
}

// findExisting una sola consulta _id ∈ ids proyectando solo _id.
func findExisting(ctx context.Context, coll *mongo.Collection, ids []reference.ID) (reference.Set, error) {
	found := reference.NewSet()
	if len(ids) == 0 {
		return found, nil
	}
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cur, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return found, fmt.Errorf("find existing in %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	var docs []idOnly
	if err := cur.All(ctx, &docs); err != nil {
		return found, fmt.Errorf("decode ids: %w", err)
	}
	for _, d := range docs {
		found.Add(d.ID)
	}
	return found, nil
}

func deleteMany(ctx context.Context, coll *mongo.Collection, ids []reference.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	return res.DeletedCount, nil
}
