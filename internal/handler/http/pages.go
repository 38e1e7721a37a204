package http

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Mythos223/Blog-Website-Project/internal/middleware"
	"github.com/Mythos223/Blog-Website-Project/internal/service"
)

// PageHandler serves the home page and the static pages.
type PageHandler struct {
	postService *service.PostService
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(postService *service.PostService) *PageHandler {
	return &PageHandler{postService: postService}
}

// Home renders the trending/recent feed and consumes the one-shot welcome
// flash: the message is cleared in the same request that renders it.
func (h *PageHandler) Home(c *gin.Context) {
	trending, recent, err := h.postService.ListHome(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Handler.Home: failed to load home feed")
		c.String(http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	session := sessions.Default(c)
	welcomeMessage, _ := session.Get(middleware.SessionWelcomeMessage).(string)
	showWelcome, _ := session.Get(middleware.SessionShowWelcome).(bool)
	if welcomeMessage != "" || showWelcome {
		session.Delete(middleware.SessionWelcomeMessage)
		session.Delete(middleware.SessionShowWelcome)
		if err := session.Save(); err != nil {
			logrus.WithError(err).Warn("Handler.Home: failed to clear welcome flash")
		}
	}

	render(c, http.StatusOK, "index.tmpl", gin.H{
		"trendingPosts":  trending,
		"recentPosts":    recent,
		"showWelcome":    showWelcome,
		"welcomeMessage": welcomeMessage,
	})
}

// About renders the static about page.
func (h *PageHandler) About(c *gin.Context) {
	render(c, http.StatusOK, "about.tmpl", nil)
}

// Contact renders the static contact page.
func (h *PageHandler) Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.tmpl", nil)
}
