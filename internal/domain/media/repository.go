package media

import (
	"context"
)

// Repository is the persistence contract for catalog records. Every
// mutating call persists the new state before returning; on failure the
// stored state is left untouched.
type Repository interface {
	List(ctx context.Context) ([]Media, error)
	Get(ctx context.Context, id int) (*Media, error)
	ListByCategory(ctx context.Context, category string) ([]Media, error)
	SearchByName(ctx context.Context, name string) ([]Media, error)
	Create(ctx context.Context, draft Draft) (int, error)
	Update(ctx context.Context, id int, changes Update) error
	Delete(ctx context.Context, id int) error

	SetScreenshot(ctx context.Context, id int, path string) error
	Screenshot(ctx context.Context, id int) (*string, error)
	ClearScreenshot(ctx context.Context, id int) error

	Stats(ctx context.Context) (Stats, error)
}
