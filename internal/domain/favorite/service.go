package favorite

import (
	"context"
	"errors"
	"fmt"

	"librarydesk/internal/domain/media"

	"golang.org/x/exp/slog"
)

// Servicer is the favorites surface consumed by the HTTP layer.
type Servicer interface {
	IDs(ctx context.Context) ([]int, error)
	Records(ctx context.Context) ([]media.Media, error)
	Add(ctx context.Context, id int) error
	Remove(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "favorite_service"),
	}
}

func (s *Service) IDs(ctx context.Context) ([]int, error) {
	ids, err := s.repo.IDs(ctx)
	if err != nil {
		s.log.Error("failed to list favorite ids", "error", err)
		return nil, fmt.Errorf("list favorite ids: %w", err)
	}
	return ids, nil
}

func (s *Service) Records(ctx context.Context) ([]media.Media, error) {
	records, err := s.repo.Records(ctx)
	if err != nil {
		s.log.Error("failed to list favorite records", "error", err)
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return records, nil
}

func (s *Service) Add(ctx context.Context, id int) error {
	if err := s.repo.Add(ctx, id); err != nil {
		if errors.Is(err, ErrUnknownMedia) || errors.Is(err, ErrAlreadyFavorite) {
			return err
		}
		s.log.Error("failed to add favorite", "media_id", id, "error", err)
		return fmt.Errorf("add favorite: %w", err)
	}

	s.log.Info("favorite added", "media_id", id)
	return nil
}

func (s *Service) Remove(ctx context.Context, id int) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		if errors.Is(err, ErrNotFavorite) {
			return err
		}
		s.log.Error("failed to remove favorite", "media_id", id, "error", err)
		return fmt.Errorf("remove favorite: %w", err)
	}

	s.log.Info("favorite removed", "media_id", id)
	return nil
}
