package database

// Pagination describes a limit/offset window over an ordered result set.
// PageIndex is zero-based.
type Pagination struct {
	PageSize  int
	PageIndex int
}

// SkipCount returns the number of rows before the requested page.
func (p Pagination) SkipCount() int {
	return p.PageIndex * p.PageSize
}

// Repository is the uniform persistence contract implemented once per entity
// type. K is the entity's natural key, E the entity struct, M its update mask.
//
// Implementations guarantee that Insert, Update and Delete are atomic across
// the entity's primary row and any dependent rows, and that every failure is
// one of the errs taxonomy values.
type Repository[K any, E any, M any] interface {
	// InitSchema idempotently ensures the entity's tables and indexes exist.
	InitSchema() error

	// SelectOne looks up exactly one entity by its natural key.
	SelectOne(key K) (*E, error)

	// SelectMany returns a page of entities in the entity's fixed order. An
	// out-of-range page yields an empty slice, not an error.
	SelectMany(p Pagination) ([]*E, error)

	// Insert persists the entity and its dependent rows, assigning
	// server-controlled fields on the passed-in entity as a side effect.
	Insert(entity *E) error

	// Update applies only the fields flagged in mask. An empty mask succeeds
	// without touching storage.
	Update(entity *E, mask M) error

	// Delete removes the entity and every row it owns. Deleting a missing key
	// succeeds.
	Delete(key K) error
}
