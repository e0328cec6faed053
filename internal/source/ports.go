// Package source defines the record-source port and the factory that
// selects a concrete backend from configuration.
package source

import (
	"context"

	"finview/internal/core"
)

// Reader loads the full transaction table. Implementations read the
// underlying source fresh on every call; nothing is cached between
// invocations.
type Reader interface {
	ReadAll(ctx context.Context) ([]core.Transaction, error)
}
