package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mythos223/Blog-Website-Project/internal/domain"
	httpHandler "github.com/Mythos223/Blog-Website-Project/internal/handler/http"
	"github.com/Mythos223/Blog-Website-Project/internal/middleware"
	"github.com/Mythos223/Blog-Website-Project/internal/service"
)

// stubPostRepo is an in-memory repository.PostRepository.
type stubPostRepo struct {
	posts []domain.Post
}

func (s *stubPostRepo) List(_ context.Context) ([]domain.Post, error) {
	return s.posts, nil
}

func (s *stubPostRepo) Replace(_ context.Context, posts []domain.Post) error {
	s.posts = posts
	return nil
}

func newTestRouter(repo *stubPostRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions("blog_session", memstore.NewStore([]byte("test-secret"))))

	handler := httpHandler.NewPostHandler(service.NewPostService(repo))
	router.GET("/posts/new", middleware.RequireAuth(), handler.New)
	router.GET("/posts/:id", handler.Show)
	router.POST("/posts/delete/:id", handler.Delete)
	return router
}

func TestPostHandler_Show_NotFound(t *testing.T) {
	router := newTestRouter(&stubPostRepo{posts: []domain.Post{{ID: 1, Title: "only"}}})

	for _, path := range []string{"/posts/99", "/posts/not-a-number"} {
		w := httptest.NewRecorder()
		req, err := nethttp.NewRequest(nethttp.MethodGet, path, nil)
		require.NoError(t, err)
		router.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusNotFound, w.Code, "GET %s", path)
		assert.Contains(t, w.Body.String(), "Post not found")
	}
}

func TestPostHandler_Delete_NotFoundLeavesPostsAlone(t *testing.T) {
	repo := &stubPostRepo{posts: []domain.Post{{ID: 1, Title: "keep me"}}}
	router := newTestRouter(repo)

	w := httptest.NewRecorder()
	req, err := nethttp.NewRequest(nethttp.MethodPost, "/posts/delete/42", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusNotFound, w.Code)
	assert.Len(t, repo.posts, 1)
}

func TestPostHandler_Delete_RedirectsHome(t *testing.T) {
	repo := &stubPostRepo{posts: []domain.Post{{ID: 1, Title: "doomed"}}}
	router := newTestRouter(repo)

	w := httptest.NewRecorder()
	req, err := nethttp.NewRequest(nethttp.MethodPost, "/posts/delete/1", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Empty(t, repo.posts)
}

func TestPostHandler_New_RequiresSession(t *testing.T) {
	router := newTestRouter(&stubPostRepo{})

	w := httptest.NewRecorder()
	req, err := nethttp.NewRequest(nethttp.MethodGet, "/posts/new", nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	assert.Equal(t, nethttp.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
