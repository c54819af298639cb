package repository

import (
	"context"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
)

// ExistenceChecker resuelve qué ids existen en una colección con una sola consulta.
type ExistenceChecker interface {
	FindExisting(ctx context.Context, ids []reference.ID) (reference.Set, error)
}
