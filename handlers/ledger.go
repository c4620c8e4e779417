package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"lexify/middleware"
	"lexify/models"
	"lexify/services/account"
	"lexify/services/ledger"
	"lexify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LedgerHandler serves the question and advice pages.
type LedgerHandler struct {
	Ledger   ledger.LedgerService
	Accounts account.AccountService
}

func NewLedgerHandler(ledgerSvc ledger.LedgerService, accounts account.AccountService) *LedgerHandler {
	return &LedgerHandler{Ledger: ledgerSvc, Accounts: accounts}
}

// Home handles GET /.
func (h *LedgerHandler) Home(c *gin.Context) {
	views, err := h.Ledger.ListAnswered(c.Request.Context(), ledger.HomepageScope())
	if err != nil {
		getLogger(c).Error("Failed to list answered questions", zap.Error(err))
		views = []models.QuestionView{}
	}
	render(c, http.StatusOK, "home.html", gin.H{"questions": views})
}

// Questions handles GET /questions.
func (h *LedgerHandler) Questions(c *gin.Context) {
	views, err := h.Ledger.ListOpen(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list open questions", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	render(c, http.StatusOK, "questions.html", gin.H{"questions": views})
}

// PostAdvicePage handles GET /post-advice-page?id=.
func (h *LedgerHandler) PostAdvicePage(c *gin.Context) {
	view, err := h.Ledger.GetQuestion(c.Request.Context(), c.Query("id"))
	if err != nil {
		if errors.Is(err, ledger.ErrQuestionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Question not found", c.Query("id"))
			return
		}
		getLogger(c).Error("Failed to load question", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	render(c, http.StatusOK, "post_advice.html", gin.H{"question": view})
}

// PostAdvice handles POST /post-advice?id=.
func (h *LedgerHandler) PostAdvice(c *gin.Context) {
	logger := getLogger(c)
	identity, _ := middleware.CurrentIdentity(c)
	questionID := c.Query("id")

	_, err := h.Ledger.PostAdvice(c.Request.Context(), questionID, identity.AccountID, c.PostForm("advice_text"))
	var verr *utils.ValidationError
	switch {
	case err == nil:
		redirect(c, "/")
	case errors.Is(err, ledger.ErrQuestionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Question not found", questionID)
	case errors.Is(err, ledger.ErrAlreadyAnswered):
		logger.Info("Advice rejected, question already answered",
			zap.String("questionID", questionID), zap.String("lawyerID", identity.AccountID))
		utils.JSONError(c, http.StatusConflict, "Question already answered", questionID)
	case errors.As(err, &verr):
		redirect(c, "/post-advice-page?id="+url.QueryEscape(questionID))
	default:
		logger.Error("Failed to post advice", zap.String("questionID", questionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// AskForm handles GET /ask_question.
func (h *LedgerHandler) AskForm(c *gin.Context) {
	render(c, http.StatusOK, "ask_question.html", nil)
}

// Ask handles POST /ask.
func (h *LedgerHandler) Ask(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	_, err := h.Ledger.Ask(c.Request.Context(), identity.AccountID, models.QuestionInput{
		Text:     c.PostForm("question_text"),
		Category: c.PostForm("category"),
		City:     c.PostForm("city"),
	})
	if err != nil {
		getLogger(c).Info("Ask failed", zap.String("clientID", identity.AccountID), zap.Error(err))
		redirect(c, "/ask_question")
		return
	}
	redirect(c, "/")
}

// ClientDashboard handles GET /client-dashboard.
func (h *LedgerHandler) ClientDashboard(c *gin.Context) {
	logger := getLogger(c)
	identity, _ := middleware.CurrentIdentity(c)
	ctx := c.Request.Context()

	answered, err := h.Ledger.ListAnswered(ctx, ledger.ClientScope(identity.AccountID))
	if err != nil {
		logger.Error("Failed to list client's answered questions", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	open, err := h.Ledger.ListClientOpen(ctx, identity.AccountID)
	if err != nil {
		logger.Error("Failed to list client's open questions", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	render(c, http.StatusOK, "client_dashboard.html", gin.H{"questions": answered, "notAnswered": open})
}

// LawyerDashboard handles GET /lawyer-dashboard.
func (h *LedgerHandler) LawyerDashboard(c *gin.Context) {
	logger := getLogger(c)
	identity, _ := middleware.CurrentIdentity(c)
	ctx := c.Request.Context()

	lawyer, err := h.Accounts.GetLawyer(ctx, identity.AccountID)
	if err != nil {
		logger.Warn("Failed to load lawyer profile", zap.String("lawyerID", identity.AccountID), zap.Error(err))
	}
	answered, err := h.Ledger.ListAnswered(ctx, ledger.LawyerScope(identity.AccountID))
	if err != nil {
		logger.Error("Failed to list lawyer's answered questions", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	render(c, http.StatusOK, "lawyer_dashboard.html", gin.H{"questions": answered, "lawyer": lawyer})
}
