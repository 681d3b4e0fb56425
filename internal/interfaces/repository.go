package interfaces

import (
	"context"

	"github.com/sipzooppp/orders/internal/domain"
)

// OrderLogStore is the append-only persisted order log (Adapter/CSVLog).
//
// Load reads the full log from persisted storage. A missing (or empty) file
// yields an empty log and no error; an unreadable or malformed file yields
// domain.ErrCorruptLog, and the caller decides whether to continue with an
// empty log.
//
// Append adds a record to the in-memory log and synchronously rewrites the
// persisted file. On write failure it returns domain.ErrPersistence and the
// in-memory log is rolled back, so a retry cannot double-record.
type OrderLogStore interface {
	Load(ctx context.Context) ([]domain.OrderRecord, error)
	Append(ctx context.Context, record domain.OrderRecord) error
	All() []domain.OrderRecord
	Export() ([]byte, error)
	Path() string
}
