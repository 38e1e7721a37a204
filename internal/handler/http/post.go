package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Mythos223/Blog-Website-Project/internal/service"
)

const missingFieldsMessage = "Please fill out all required fields before submitting."

// PostHandler serves the blog post routes.
type PostHandler struct {
	postService *service.PostService
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// New renders an empty post form.
func (h *PostHandler) New(c *gin.Context) {
	render(c, http.StatusOK, "newPost.tmpl", gin.H{"post": gin.H{}, "errorMessage": nil})
}

// Create handles the new-post form submission.
func (h *PostHandler) Create(c *gin.Context) {
	in := postInput(c)

	if _, err := h.postService.Create(c.Request.Context(), in); err != nil {
		if errors.Is(err, service.ErrValidation) {
			render(c, http.StatusOK, "newPost.tmpl", gin.H{
				"post":         gin.H{"Title": in.Title, "Content": in.Content, "Image": in.Image, "Author": in.Author},
				"errorMessage": missingFieldsMessage,
			})
			return
		}
		logrus.WithError(err).Error("Handler.Create: failed to create post")
		c.String(http.StatusInternalServerError, "Failed to create post")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Show renders a single post, or a plain-text 404.
func (h *PostHandler) Show(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrError(c, err, "Handler.Show")
		return
	}
	render(c, http.StatusOK, "post.tmpl", gin.H{"post": post})
}

// EditForm renders the post form prefilled with the current post data.
func (h *PostHandler) EditForm(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		h.notFoundOrError(c, err, "Handler.EditForm")
		return
	}
	render(c, http.StatusOK, "newPost.tmpl", gin.H{"post": post, "errorMessage": nil})
}

// Update handles the edit form submission.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	in := postInput(c)

	if _, err := h.postService.Update(c.Request.Context(), id, in); err != nil {
		if errors.Is(err, service.ErrValidation) {
			render(c, http.StatusOK, "newPost.tmpl", gin.H{
				"post":         gin.H{"ID": id, "Title": in.Title, "Content": in.Content, "Image": in.Image, "Author": in.Author},
				"errorMessage": missingFieldsMessage,
			})
			return
		}
		h.notFoundOrError(c, err, "Handler.Update")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Delete removes a post and redirects home, or answers a plain-text 404.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		h.notFoundOrError(c, err, "Handler.Delete")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *PostHandler) notFoundOrError(c *gin.Context, err error, op string) {
	if errors.Is(err, service.ErrPostNotFound) {
		c.String(http.StatusNotFound, "Post not found")
		return
	}
	logrus.WithError(err).Error(op + ": internal error")
	c.String(http.StatusInternalServerError, "An unexpected error occurred")
}

func postInput(c *gin.Context) service.PostInput {
	return service.PostInput{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Image:   c.PostForm("image"),
		Author:  c.PostForm("author"),
	}
}

// postID parses the :id route parameter. Non-numeric ids get the same
// plain-text 404 as a missing post.
func postID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Post not found")
		return 0, false
	}
	return id, true
}
