package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Mythos223/Blog-Website-Project/internal/domain"
)

// PostRepository is a mock of repository.PostRepository.
type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *PostRepository) Replace(ctx context.Context, posts []domain.Post) error {
	args := m.Called(ctx, posts)
	return args.Error(0)
}
