package routes

import (
	"time"

	"lexify/handlers"
	"lexify/middleware"
	"lexify/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login, signup, google and onboarding endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/login/:role", hb.Auth.ShowLogin)
	r.POST("/login/:role", hb.Auth.Login)
	r.GET("/signup/:role", hb.Auth.ShowSignup)
	r.POST("/signup/:role", hb.Auth.Signup)
	r.GET("/logout", hb.Auth.Logout)

	google := r.Group("/auth/google")
	{
		google.GET("/:role", hb.Auth.GoogleBegin)
		google.GET("/:role/lex", hb.Auth.GoogleCallback)
	}

	onboarding := r.Group("/remaining/lawyer")
	{
		onboarding.Use(middleware.RequireRole(models.RoleLawyer))
		onboarding.GET("", hb.Auth.ShowRemaining)
		onboarding.POST("", hb.Auth.CompleteProfile)
	}
}

// RegisterLedgerRoutes registers the question and advice pages.
func RegisterLedgerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Ledger.Home)
	r.GET("/questions", hb.Ledger.Questions)
	r.GET("/ask_question", hb.Ledger.AskForm)

	// Protected routes (require a client session)
	client := r.Group("")
	client.Use(middleware.RequireRole(models.RoleClient))
	client.POST("/ask", hb.Ledger.Ask)
	client.GET("/client-dashboard", hb.Ledger.ClientDashboard)

	// Protected routes (require a lawyer session)
	lawyer := r.Group("")
	lawyer.Use(middleware.RequireRole(models.RoleLawyer))
	lawyer.GET("/post-advice-page", hb.Ledger.PostAdvicePage)
	lawyer.POST("/post-advice", hb.Ledger.PostAdvice)
	lawyer.GET("/lawyer-dashboard", hb.Ledger.LawyerDashboard)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// The session middleware must already be installed on r.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterLedgerRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
