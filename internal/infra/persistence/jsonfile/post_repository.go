package jsonfile

import (
	"context"

	"github.com/Mythos223/Blog-Website-Project/internal/domain"
	"github.com/Mythos223/Blog-Website-Project/internal/repository"
)

const postsCollection = "posts"

// PostRepository implements repository.PostRepository over a Store.
type PostRepository struct {
	store repository.Store
}

// NewPostRepository creates a file-backed post repository.
func NewPostRepository(store repository.Store) *PostRepository {
	return &PostRepository{store: store}
}

func (r *PostRepository) List(_ context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := r.store.Load(postsCollection, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) Replace(_ context.Context, posts []domain.Post) error {
	return r.store.Save(postsCollection, posts)
}
