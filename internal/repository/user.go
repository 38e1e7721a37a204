package repository

import (
	"context"

	"github.com/Mythos223/Blog-Website-Project/internal/domain"
)

// UserRepository defines storage and retrieval of user accounts.
type UserRepository interface {
	// List returns every stored user in storage order. Login and the
	// email-uniqueness check scan this and decrypt each email, since
	// emails are not stored in a lookup-friendly form.
	List(ctx context.Context) ([]domain.User, error)

	// FindByUsername returns the user with the exact (case-sensitive)
	// username, or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Append adds a new user and persists the collection.
	Append(ctx context.Context, user *domain.User) error
}
