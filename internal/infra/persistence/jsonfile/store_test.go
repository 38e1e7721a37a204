package jsonfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mythos223/Blog-Website-Project/internal/domain"
	"github.com/Mythos223/Blog-Website-Project/internal/infra/persistence/jsonfile"
	"github.com/Mythos223/Blog-Website-Project/internal/repository"
)

func newTestStore(t *testing.T) (*jsonfile.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := jsonfile.NewStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestStore_LoadCreatesMissingCollection(t *testing.T) {
	store, dir := newTestStore(t)

	var posts []domain.Post
	err := store.Load("posts", &posts)

	require.NoError(t, err)
	assert.Empty(t, posts)

	data, err := os.ReadFile(filepath.Join(dir, "posts.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, dir := newTestStore(t)

	saved := []domain.Post{
		{ID: 1, Title: "one", Content: "c", Author: "a", Excerpt: "c...", Date: "1/2/2026"},
		{ID: 2, Title: "two", Content: "c", Author: "a", Excerpt: "c...", Date: "1/2/2026"},
	}
	require.NoError(t, store.Save("posts", saved))

	var loaded []domain.Post
	require.NoError(t, store.Load("posts", &loaded))
	assert.Equal(t, saved, loaded)

	// The file is pretty-printed, not a single line.
	data, err := os.ReadFile(filepath.Join(dir, "posts.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")
}

func TestStore_LoadCorruptFile(t *testing.T) {
	store, dir := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{ not json"), 0o644))

	var users []domain.User
	err := store.Load("users", &users)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrCorruptStore))
}

func TestUserRepository_AppendAndFind(t *testing.T) {
	store, _ := newTestStore(t)
	repo := jsonfile.NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &domain.User{Username: "alice", FirstName: "Alice"}))
	require.NoError(t, repo.Append(ctx, &domain.User{Username: "bob", FirstName: "Bob"}))

	user, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", user.FirstName)

	// Case-sensitive identity key.
	_, err = repo.FindByUsername(ctx, "Bob")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestPostRepository_Replace(t *testing.T) {
	store, _ := newTestStore(t)
	repo := jsonfile.NewPostRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, []domain.Post{{ID: 1, Title: "one"}}))
	require.NoError(t, repo.Replace(ctx, []domain.Post{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}}))

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "two", posts[1].Title)
}
