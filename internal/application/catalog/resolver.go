package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/fakeshop-admin-api/internal/domain/reference"
	"github.com/jhoicas/fakeshop-admin-api/internal/domain/repository"
)

// ResolveExisting separa los ids candidatos en existentes y faltantes con una sola consulta.
// Un id mal formado falla todo el lote antes de consultar. Los faltantes conservan el orden
// de entrada, sin repetidos.
func ResolveExisting(ctx context.Context, checker repository.ExistenceChecker, candidates []string) (reference.Set, []string, error) {
	ids, err := reference.ParseIDs(candidates)
	if err != nil {
		return reference.Set{}, nil, err
	}
	existing, err := checker.FindExisting(ctx, reference.NewSet(ids...).IDs())
	if err != nil {
		return reference.Set{}, nil, fmt.Errorf("resolver existencia: %w", err)
	}
	missing := make([]string, 0)
	seen := reference.NewSet()
	for i, id := range ids {
		if existing.Has(id) || !seen.Add(id) {
			continue
		}
		missing = append(missing, candidates[i])
	}
	return existing, missing, nil
}
