package favorite

import (
	"context"

	"librarydesk/internal/domain/media"
)

// Repository manages the set of favorited record ids. The set is kept
// consistent with the record mapping by the storage layer: deleting a
// record drops its id from favorites in the same persisted write.
type Repository interface {
	IDs(ctx context.Context) ([]int, error)
	Records(ctx context.Context) ([]media.Media, error)
	// Add fails with ErrUnknownMedia for ids without a record and with
	// ErrAlreadyFavorite for ids already in the set.
	Add(ctx context.Context, id int) error
	// Remove fails with ErrNotFavorite for ids not in the set.
	Remove(ctx context.Context, id int) error
}
