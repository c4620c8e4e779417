package handlers

import (
	"net/http"

	"lexify/middleware"
	"lexify/models"
	"lexify/utils"

	"github.com/gin-gonic/gin"
)

// render executes a page template with the request identity attached.
func render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if identity, ok := middleware.CurrentIdentity(c); ok {
		data["identity"] = &identity
	}
	c.HTML(status, page, data)
}

func roleParam(c *gin.Context) (models.Role, bool) {
	role, ok := models.ParseRole(c.Param("role"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Not Found", "unknown role "+c.Param("role"))
		return "", false
	}
	return role, true
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
