package domain

import "context"

// DatasetSource loads the full set of area records from an external
// collaborator (local file, object storage, or database). It is hit exactly
// once at startup; failures abort initialization, there is no partial-dataset
// mode.
type DatasetSource interface {
	Fetch(ctx context.Context) ([]Area, error)
	Close()
}
