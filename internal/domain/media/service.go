package media

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// Servicer is the business-logic surface consumed by the HTTP layer.
type Servicer interface {
	List(ctx context.Context) ([]Media, error)
	Get(ctx context.Context, id int) (*Media, error)
	ByCategory(ctx context.Context, category string) ([]Media, error)
	SearchByName(ctx context.Context, name string) ([]Media, error)
	Create(ctx context.Context, draft Draft) (int, error)
	Update(ctx context.Context, id int, draft Draft) error
	Delete(ctx context.Context, id int) error

	AttachScreenshot(ctx context.Context, id int, path string) error
	Screenshot(ctx context.Context, id int) (*string, error)
	RemoveScreenshot(ctx context.Context, id int) error

	Stats(ctx context.Context) (Stats, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "media_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Media, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list media", "error", err)
		return nil, fmt.Errorf("list media: %w", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Media, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get media", "media_id", id, "error", err)
		return nil, fmt.Errorf("get media: %w", err)
	}
	return item, nil
}

func (s *Service) ByCategory(ctx context.Context, category string) ([]Media, error) {
	items, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		s.log.Error("failed to filter media by category", "category", category, "error", err)
		return nil, fmt.Errorf("filter media: %w", err)
	}
	return items, nil
}

// SearchByName returns every record whose name matches exactly, ignoring
// case. An empty result is not an error at this layer.
func (s *Service) SearchByName(ctx context.Context, name string) ([]Media, error) {
	items, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		s.log.Error("failed to search media", "name", name, "error", err)
		return nil, fmt.Errorf("search media: %w", err)
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, draft Draft) (int, error) {
	if err := draft.Validate(); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, draft)
	if err != nil {
		s.log.Error("failed to create media", "name", draft.Name, "error", err)
		return 0, fmt.Errorf("create media: %w", err)
	}

	s.log.Info("media created", "media_id", id, "name", draft.Name, "category", draft.Category)
	return id, nil
}

func (s *Service) Update(ctx context.Context, id int, draft Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, UpdateFrom(draft)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to update media", "media_id", id, "error", err)
		return fmt.Errorf("update media: %w", err)
	}

	s.log.Info("media updated", "media_id", id)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete media", "media_id", id, "error", err)
		return fmt.Errorf("delete media: %w", err)
	}

	s.log.Info("media deleted", "media_id", id)
	return nil
}

func (s *Service) AttachScreenshot(ctx context.Context, id int, path string) error {
	if err := s.repo.SetScreenshot(ctx, id, path); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to attach screenshot", "media_id", id, "error", err)
		return fmt.Errorf("attach screenshot: %w", err)
	}

	s.log.Info("screenshot attached", "media_id", id, "path", path)
	return nil
}

func (s *Service) Screenshot(ctx context.Context, id int) (*string, error) {
	path, err := s.repo.Screenshot(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to read screenshot path", "media_id", id, "error", err)
		return nil, fmt.Errorf("get screenshot: %w", err)
	}
	return path, nil
}

func (s *Service) RemoveScreenshot(ctx context.Context, id int) error {
	if err := s.repo.ClearScreenshot(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to clear screenshot", "media_id", id, "error", err)
		return fmt.Errorf("clear screenshot: %w", err)
	}

	s.log.Info("screenshot cleared", "media_id", id)
	return nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		s.log.Error("failed to compute stats", "error", err)
		return Stats{}, fmt.Errorf("stats: %w", err)
	}
	return stats, nil
}
