package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

// isDuplicateKey verifica si un error es una violación de índice único (E11000).
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// idFilter filtra por _id ∈ ids; nil significa toda la colección.
func idFilter(ids []reference.ID) bson.M {
	if ids == nil {
		return bson.M{}
	}
	return bson.M{"_id": bson.M{"$in": ids}}
}

// variants devuelve todas las formas guardadas posibles de cada id: suelto o envuelto en
// {key: id}, como ObjectId o como texto (datos legados).
func variants(key string, ids []reference.ID) bson.A {
	out := make(bson.A, 0, len(ids)*4)
	for _, id := range ids {
		out = append(out,
			id,
			id.Hex(),
			bson.D{{Key: key, Value: id}},
			bson.D{{Key: key, Value: id.Hex()}},
		)
	}
	return out
}

// idValues un id como ObjectId y como texto, para campos escalares (rootCategoryId).
func idValues(ids ...reference.ID) bson.A {
	out := make(bson.A, 0, len(ids)*2)
	for _, id := range ids {
		out = append(out, id, id.Hex())
	}
	return out
}
