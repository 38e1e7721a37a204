package repository

import (
	"context"

	"github.com/Mythos223/Blog-Website-Project/internal/domain"
)

// PostRepository defines storage and retrieval of blog posts. The service
// layer reads the whole collection, mutates it in memory, and writes it
// back wholesale, matching the flat-file storage model.
type PostRepository interface {
	// List returns every stored post in storage order.
	List(ctx context.Context) ([]domain.Post, error)

	// Replace persists posts as the complete new collection.
	Replace(ctx context.Context, posts []domain.Post) error
}
