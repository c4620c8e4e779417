package handlers

import (
	"errors"
	"net/http"

	"lexify/middleware"
	"lexify/models"
	"lexify/services/account"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves local login and signup, Google login, onboarding and logout.
type AuthHandler struct {
	Accounts account.AccountService
	Sessions SessionManager
	OAuth    OAuthFlow
}

func NewAuthHandler(accounts account.AccountService, sessions SessionManager, oauth OAuthFlow) *AuthHandler {
	return &AuthHandler{Accounts: accounts, Sessions: sessions, OAuth: oauth}
}

// ShowLogin handles GET /login/:role.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	role, ok := roleParam(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"role": string(role)})
}

// ShowSignup handles GET /signup/:role.
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	role, ok := roleParam(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "signup.html", gin.H{"role": string(role)})
}

// Login handles POST /login/:role.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := getLogger(c)
	role, ok := roleParam(c)
	if !ok {
		return
	}

	principal, err := h.Accounts.Authenticate(c.Request.Context(), role, c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if !errors.Is(err, account.ErrInvalidCredentials) {
			logger.Error("Login failed", zap.String("role", string(role)), zap.Error(err))
		}
		redirect(c, "/login/"+string(role))
		return
	}
	if err := h.Sessions.Login(c, principal); err != nil {
		logger.Error("Failed to start session", zap.Error(err))
		redirect(c, "/login/"+string(role))
		return
	}
	redirect(c, "/")
}

// Signup handles POST /signup/:role. A successful signup is logged in immediately.
func (h *AuthHandler) Signup(c *gin.Context) {
	logger := getLogger(c)
	role, ok := roleParam(c)
	if !ok {
		return
	}
	back := "/signup/" + string(role)

	data := models.RegistrationData{
		Username: c.PostForm("username"),
		Name:     c.PostForm("name"),
		Password: c.PostForm("password"),
	}
	if role == models.RoleLawyer {
		profile, err := lawyerProfileForm(c)
		if err != nil {
			logger.Info("Invalid lawyer signup form", zap.Error(err))
			redirect(c, back)
			return
		}
		data.Profile = profile
	}

	principal, err := h.Accounts.Register(c.Request.Context(), role, data)
	if err != nil {
		logger.Info("Signup failed", zap.String("role", string(role)), zap.Error(err))
		redirect(c, back)
		return
	}
	if err := h.Sessions.Login(c, principal); err != nil {
		logger.Error("Failed to start session after signup", zap.Error(err))
		redirect(c, "/login/"+string(role))
		return
	}
	redirect(c, "/")
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Sessions.Logout(c); err != nil {
		getLogger(c).Error("Logout failed", zap.Error(err))
	}
	redirect(c, "/")
}

// ShowRemaining handles GET /remaining/lawyer.
func (h *AuthHandler) ShowRemaining(c *gin.Context) {
	render(c, http.StatusOK, "remaining.html", nil)
}

// CompleteProfile handles POST /remaining/lawyer. The lawyer is the session's
// account; the form cannot name another one.
func (h *AuthHandler) CompleteProfile(c *gin.Context) {
	logger := getLogger(c)
	identity, ok := middleware.CurrentIdentity(c)
	if !ok || !identity.IsLawyer() {
		redirect(c, "/login/lawyer")
		return
	}

	profile, err := lawyerProfileForm(c)
	if err == nil {
		err = h.Accounts.CompleteLawyerProfile(c.Request.Context(), identity.AccountID, profile)
	}
	if err != nil {
		logger.Info("Onboarding failed", zap.String("lawyerID", identity.AccountID), zap.Error(err))
		redirect(c, "/remaining/lawyer")
		return
	}
	redirect(c, "/")
}
