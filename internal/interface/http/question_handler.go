package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/curioapp/curio/internal/application"
	"github.com/curioapp/curio/internal/domain/entity"
	"github.com/curioapp/curio/pkg/response"
	"github.com/curioapp/curio/pkg/validation"
)

type QuestionHandler struct {
	Svc    *application.QuestionService
	Logger *logrus.Logger
}

func NewQuestionHandler(svc *application.QuestionService, logger *logrus.Logger) *QuestionHandler {
	return &QuestionHandler{Svc: svc, Logger: logger}
}

type questionRequest struct {
	Content string `json:"content" binding:"required,max=500"`
}

// Create POST /api/question/create
func (h *QuestionHandler) Create(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	q, err := h.Svc.Create(c.Request.Context(), accessToken(c), req.Content)
	if err != nil {
		respondDomainError(c, err, "post a question")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": q.UUID}, "QUESTION CREATED")
}

// All GET /api/question/all
func (h *QuestionHandler) All(c *gin.Context) {
	questions, err := h.Svc.All(c.Request.Context(), accessToken(c))
	if err != nil {
		respondDomainError(c, err, "get all questions")
		return
	}
	response.Success(c, http.StatusOK, questionDetails(questions), "all questions")
}

// AllByUser GET /api/question/all/:userId
func (h *QuestionHandler) AllByUser(c *gin.Context) {
	questions, err := h.Svc.AllByUser(c.Request.Context(), accessToken(c), c.Param("userId"))
	if err != nil {
		respondDomainError(c, err, "get all questions posted by a specific user")
		return
	}
	response.Success(c, http.StatusOK, questionDetails(questions), "questions by user")
}

// Edit PUT /api/question/edit/:questionId
func (h *QuestionHandler) Edit(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	q, err := h.Svc.Edit(c.Request.Context(), accessToken(c), c.Param("questionId"), req.Content)
	if err != nil {
		respondDomainError(c, err, "edit the question")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": q.UUID}, "QUESTION EDITED")
}

// Delete DELETE /api/question/delete/:questionId
func (h *QuestionHandler) Delete(c *gin.Context) {
	questionUUID := c.Param("questionId")
	if err := h.Svc.Delete(c.Request.Context(), accessToken(c), questionUUID); err != nil {
		respondDomainError(c, err, "delete a question")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": questionUUID}, "QUESTION DELETED")
}

func questionDetails(questions []*entity.Question) []gin.H {
	out := make([]gin.H, 0, len(questions))
	for _, q := range questions {
		out = append(out, gin.H{"id": q.UUID, "content": q.Content})
	}
	return out
}
