package catalog

import "context"

// TxRunner ejecuta la secuencia de escrituras de un caso de uso. Los repositorios deben usar
// el ctx recibido por fn para participar de la transacción cuando la hay.
// Sin soporte de transacciones multi-documento, fn corre directo y una falla a mitad de la
// secuencia deja escrituras parciales (no hay compensación).
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}
