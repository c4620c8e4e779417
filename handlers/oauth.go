package handlers

import (
	"net/http"

	"lexify/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GoogleBegin handles GET /auth/google/:role.
func (h *AuthHandler) GoogleBegin(c *gin.Context) {
	role, ok := roleParam(c)
	if !ok {
		return
	}
	consentURL, err := h.OAuth.Begin(c.Request.Context(), role)
	if err != nil {
		getLogger(c).Error("Failed to start google login", zap.Error(err))
		redirect(c, "/signup/"+string(role))
		return
	}
	c.Redirect(http.StatusFound, consentURL)
}

// GoogleCallback handles GET /auth/google/:role/lex. Lawyers without a
// completed profile are shown the onboarding form.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	logger := getLogger(c)
	role, ok := roleParam(c)
	if !ok {
		return
	}
	failure := "/signup/" + string(role)

	if reason := c.Query("error"); reason != "" {
		logger.Info("Google login declined", zap.String("reason", reason))
		redirect(c, failure)
		return
	}

	profile, err := h.OAuth.Complete(c.Request.Context(), role, c.Query("state"), c.Query("code"))
	if err != nil {
		logger.Warn("Google callback rejected", zap.String("role", string(role)), zap.Error(err))
		redirect(c, failure)
		return
	}
	principal, err := h.Accounts.LinkOrCreate(c.Request.Context(), role, *profile)
	if err != nil {
		logger.Error("Failed to link google account", zap.String("role", string(role)), zap.Error(err))
		redirect(c, failure)
		return
	}
	if err := h.Sessions.Login(c, principal); err != nil {
		logger.Error("Failed to start session", zap.Error(err))
		redirect(c, failure)
		return
	}

	if principal.Role == models.RoleLawyer && !principal.Onboarded {
		render(c, http.StatusOK, "remaining.html", gin.H{"identity": &principal.Identity})
		return
	}
	redirect(c, "/")
}
