package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Mythos223/Blog-Website-Project/internal/middleware"
)

// render writes an HTML view, always attaching the current user view-model
// (or nil) so every template can show the login state.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := c.Get(middleware.ContextUser); ok {
		data["user"] = user
	} else {
		data["user"] = nil
	}
	c.HTML(status, name, data)
}
