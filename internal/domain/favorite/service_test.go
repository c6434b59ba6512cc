package favorite

import (
	"context"
	"errors"
	"testing"

	"librarydesk/internal/domain/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) IDs(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockRepository) Records(ctx context.Context) ([]media.Media, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]media.Media), args.Error(1)
}

func (m *MockRepository) Add(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_IDs(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("IDs", mock.Anything).Return([]int{1, 4}, nil)

	ids, err := service.IDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 4}, ids)

	mockRepo.AssertExpectations(t)
}

func TestService_Records(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	records := []media.Media{
		{ID: 1, Name: "The Martian", Author: "Andy Weir", PublicationDate: "2011-09-27", Category: "Book"},
	}

	mockRepo.On("Records", mock.Anything).Return(records, nil)

	result, err := service.Records(context.Background())
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "The Martian", result[0].Name)

	mockRepo.AssertExpectations(t)
}

func TestService_Add(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Add", mock.Anything, 1).Return(nil)

	err := service.Add(context.Background(), 1)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Add_UnknownMedia(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Add", mock.Anything, 99).Return(ErrUnknownMedia)

	err := service.Add(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUnknownMedia)

	mockRepo.AssertExpectations(t)
}

func TestService_Add_Duplicate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Add", mock.Anything, 1).Return(ErrAlreadyFavorite)

	err := service.Add(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyFavorite)

	mockRepo.AssertExpectations(t)
}

func TestService_Remove_NotFavorite(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Remove", mock.Anything, 2).Return(ErrNotFavorite)

	err := service.Remove(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotFavorite)

	mockRepo.AssertExpectations(t)
}

func TestService_Remove_RepoError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Remove", mock.Anything, 2).Return(errors.New("storage failure"))

	err := service.Remove(context.Background(), 2)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFavorite)

	mockRepo.AssertExpectations(t)
}
