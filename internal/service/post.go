package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Mythos223/Blog-Website-Project/internal/domain"
	"github.com/Mythos223/Blog-Website-Project/internal/repository"
)

const (
	// trendingCount is how many posts, in storage order, the home page
	// shows as trending; the remainder is shown reversed as recent.
	trendingCount = 7
	// excerptLength is the number of leading runes kept as the excerpt.
	excerptLength = 100
	// placeholderImage is used when a post is created or edited without one.
	placeholderImage = "/public/images/user.png"
	// dateLayout matches the original stored date strings (M/D/YYYY).
	dateLayout = "1/2/2006"
)

// PostService handles blog post CRUD over the flat-file collection: every
// mutation reads the whole collection, changes it in memory and writes it
// back.
type PostService struct {
	posts repository.PostRepository
	now   func() time.Time
}

// NewPostService creates a PostService.
func NewPostService(posts repository.PostRepository) *PostService {
	if posts == nil {
		panic("PostRepository cannot be nil for PostService")
	}
	return &PostService{posts: posts, now: time.Now}
}

// PostInput carries the new/edit post form fields.
type PostInput struct {
	Title   string
	Content string
	Image   string
	Author  string
}

// Create validates the input and appends a new post. The id is assigned as
// len(posts)+1, so ids are not stable across deletions: deleting a post and
// creating another can reuse an id. Preserved for compatibility with
// existing data.
func (s *PostService) Create(ctx context.Context, in PostInput) (*domain.Post, error) {
	if in.Title == "" || in.Content == "" || in.Author == "" {
		return nil, ErrValidation
	}

	posts, err := s.posts.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to load posts during create")
		return nil, ErrInternalServer
	}

	post := s.buildPost(len(posts)+1, in)
	posts = append(posts, *post)
	if err := s.posts.Replace(ctx, posts); err != nil {
		logrus.WithError(err).Error("Failed to persist new post")
		return nil, ErrInternalServer
	}

	logrus.WithFields(logrus.Fields{"post_id": post.ID, "title": post.Title}).Info("Post created")
	return post, nil
}

// Get returns the post with the given id, or ErrPostNotFound.
func (s *PostService) Get(ctx context.Context, id int) (*domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to load posts during get")
		return nil, ErrInternalServer
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, ErrPostNotFound
}

// ListHome returns the home feed split: the first trendingCount posts in
// storage order as trending, the remainder reversed as recent.
func (s *PostService) ListHome(ctx context.Context) (trending, recent []domain.Post, err error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to load posts for home feed")
		return nil, nil, ErrInternalServer
	}

	if len(posts) <= trendingCount {
		return posts, nil, nil
	}
	trending = posts[:trendingCount]
	rest := posts[trendingCount:]
	recent = make([]domain.Post, 0, len(rest))
	for i := len(rest) - 1; i >= 0; i-- {
		recent = append(recent, rest[i])
	}
	return trending, recent, nil
}

// Update replaces the post wholesale: fields omitted from the input are
// lost, except the image which falls back to the placeholder. The excerpt
// and date are restamped.
func (s *PostService) Update(ctx context.Context, id int, in PostInput) (*domain.Post, error) {
	if in.Title == "" || in.Content == "" || in.Author == "" {
		return nil, ErrValidation
	}

	posts, err := s.posts.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to load posts during update")
		return nil, ErrInternalServer
	}

	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		post := s.buildPost(id, in)
		posts[i] = *post
		if err := s.posts.Replace(ctx, posts); err != nil {
			logrus.WithError(err).Error("Failed to persist updated post")
			return nil, ErrInternalServer
		}
		logrus.WithField("post_id", id).Info("Post updated")
		return post, nil
	}
	return nil, ErrPostNotFound
}

// Delete removes the post with the given id. If no post matched, the
// collection is left untouched and ErrPostNotFound is returned.
func (s *PostService) Delete(ctx context.Context, id int) error {
	posts, err := s.posts.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to load posts during delete")
		return ErrInternalServer
	}

	remaining := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(posts) {
		return ErrPostNotFound
	}

	if err := s.posts.Replace(ctx, remaining); err != nil {
		logrus.WithError(err).Error("Failed to persist posts after delete")
		return ErrInternalServer
	}
	logrus.WithField("post_id", id).Info("Post deleted")
	return nil
}

func (s *PostService) buildPost(id int, in PostInput) *domain.Post {
	image := in.Image
	if image == "" {
		image = placeholderImage
	}
	return &domain.Post{
		ID:      id,
		Title:   in.Title,
		Content: in.Content,
		Image:   image,
		Author:  in.Author,
		Excerpt: excerpt(in.Content),
		Date:    s.now().Format(dateLayout),
	}
}

// excerpt returns the first excerptLength runes of content plus an ellipsis.
func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + "..."
}
