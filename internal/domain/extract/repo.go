package extract

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists completed extract aggregates. Create stores the extract
// and its records in one transaction; an extract is never written partially.
type Repository interface {
	Create(ctx context.Context, e *Extract) error
	GetByID(ctx context.Context, id uuid.UUID) (*Extract, error)
	List(ctx context.Context, providerID string, limit, offset int) ([]*Summary, int, error)
}

// AdmissionIDStore tracks admission identifiers already accepted in earlier
// extracts. Snapshot returns an immutable copy taken before concurrent record
// validation starts; Add records the identifiers of a successfully ingested
// extract.
type AdmissionIDStore interface {
	Snapshot(ctx context.Context, providerID string) (map[string]struct{}, error)
	Add(ctx context.Context, providerID string, ids []string) error
}
