package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Media, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Media), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (*Media, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Media), args.Error(1)
}

func (m *MockRepository) ListByCategory(ctx context.Context, category string) ([]Media, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Media), args.Error(1)
}

func (m *MockRepository) SearchByName(ctx context.Context, name string) ([]Media, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Media), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, draft Draft) (int, error) {
	args := m.Called(ctx, draft)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, changes Update) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) SetScreenshot(ctx context.Context, id int, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}

func (m *MockRepository) Screenshot(ctx context.Context, id int) (*string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockRepository) ClearScreenshot(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Stats(ctx context.Context) (Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(Stats), args.Error(1)
}

func TestService_List(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	items := []Media{
		{ID: 1, Name: "The Martian", Author: "Andy Weir", PublicationDate: "2011-09-27", Category: "Book"},
		{ID: 2, Name: "Inception", Author: "Christopher Nolan", PublicationDate: "2010-07-16", Category: "Film"},
	}

	mockRepo.On("List", mock.Anything).Return(items, nil)

	result, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "The Martian", result[0].Name)

	mockRepo.AssertExpectations(t)
}

func TestService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, 99).Return(nil, ErrNotFound)

	_, err := service.Get(context.Background(), 99)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	draft := Draft{
		Name:            "Dune",
		Author:          "Frank Herbert",
		PublicationDate: "1965-08-01",
		Category:        "Book",
	}

	mockRepo.On("Create", mock.Anything, draft).Return(6, nil)

	id, err := service.Create(context.Background(), draft)
	assert.NoError(t, err)
	assert.Equal(t, 6, id)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_MissingFields(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	draft := Draft{Name: "Dune"}

	_, err := service.Create(context.Background(), draft)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "author")
	assert.Contains(t, err.Error(), "publication_date")
	assert.Contains(t, err.Error(), "category")

	// Repository must not be touched when validation fails.
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_BadDate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	draft := Draft{
		Name:            "Dune",
		Author:          "Frank Herbert",
		PublicationDate: "August 1965",
		Category:        "Book",
	}

	_, err := service.Create(context.Background(), draft)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")

	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	draft := Draft{
		Name:            "Dune",
		Author:          "Frank Herbert",
		PublicationDate: "1965-08-01",
		Category:        "Book",
	}

	mockRepo.On("Update", mock.Anything, 4, mock.MatchedBy(func(u Update) bool {
		return u.Name != nil && *u.Name == "Dune" &&
			u.Author != nil && *u.Author == "Frank Herbert" &&
			u.PublicationDate != nil && *u.PublicationDate == "1965-08-01" &&
			u.Category != nil && *u.Category == "Book"
	})).Return(nil)

	err := service.Update(context.Background(), 4, draft)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	draft := Draft{
		Name:            "Dune",
		Author:          "Frank Herbert",
		PublicationDate: "1965-08-01",
		Category:        "Book",
	}

	mockRepo.On("Update", mock.Anything, 99, mock.Anything).Return(ErrNotFound)

	err := service.Update(context.Background(), 99, draft)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, 99).Return(ErrNotFound)

	err := service.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_SearchByName_Empty(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("SearchByName", mock.Anything, "Solaris").Return([]Media{}, nil)

	result, err := service.SearchByName(context.Background(), "Solaris")
	assert.NoError(t, err)
	assert.Empty(t, result)

	mockRepo.AssertExpectations(t)
}

func TestService_Stats(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	stats := Stats{
		TotalItems:     4,
		TotalFavorites: 1,
		Categories:     map[string]int{"Book": 2, "Film": 2},
	}

	mockRepo.On("Stats", mock.Anything).Return(stats, nil)

	result, err := service.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 4, result.TotalItems)
	assert.Equal(t, 1, result.TotalFavorites)
	assert.Equal(t, 2, result.Categories["Book"])

	mockRepo.AssertExpectations(t)
}

func TestService_Stats_RepoError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Stats", mock.Anything).Return(Stats{}, errors.New("storage failure"))

	_, err := service.Stats(context.Background())
	assert.Error(t, err)

	mockRepo.AssertExpectations(t)
}

func TestMedia_Year(t *testing.T) {
	assert.Equal(t, 1965, Media{PublicationDate: "1965-08-01"}.Year())
	assert.Equal(t, 0, Media{PublicationDate: "not a date"}.Year())
}
