package jsonfile

import (
	"context"

	"github.com/Mythos223/Blog-Website-Project/internal/domain"
	"github.com/Mythos223/Blog-Website-Project/internal/repository"
)

const usersCollection = "users"

// UserRepository implements repository.UserRepository over a Store.
type UserRepository struct {
	store repository.Store
}

// NewUserRepository creates a file-backed user repository.
func NewUserRepository(store repository.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.store.Load(usersCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *UserRepository) Append(ctx context.Context, user *domain.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return r.store.Save(usersCollection, users)
}
