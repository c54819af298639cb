package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/fakeshop-admin-api/internal/application/catalog"
)

var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta la secuencia de escrituras dentro de una transacción multi-documento
// cuando está habilitada (requiere replica set). Deshabilitada, fn corre directo.
type TxRunner struct {
	client  *mongo.Client
	enabled bool
}

// NewTxRunner construye el runner.
func NewTxRunner(client *mongo.Client, enabled bool) *TxRunner {
	return &TxRunner{client: client, enabled: enabled}
}

// Run ejecuta fn. Con transacciones, fn recibe el SessionContext y los repositorios que lo
// usen participan de la transacción; WithTransaction reintenta ante errores transitorios.
func (r *TxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if !r.enabled || r.client == nil {
		return fn(ctx)
	}
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("iniciar sesión: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
