package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/curioapp/curio/internal/application"
	"github.com/curioapp/curio/pkg/response"
	"github.com/curioapp/curio/pkg/validation"
)

type AnswerHandler struct {
	Svc    *application.AnswerService
	Logger *logrus.Logger
}

func NewAnswerHandler(svc *application.AnswerService, logger *logrus.Logger) *AnswerHandler {
	return &AnswerHandler{Svc: svc, Logger: logger}
}

type answerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// Create POST /api/question/:questionId/answer/create
func (h *AnswerHandler) Create(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), accessToken(c), c.Param("questionId"), req.Answer)
	if err != nil {
		respondDomainError(c, err, "post an answer")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": a.UUID}, "ANSWER CREATED")
}

// AllForQuestion GET /api/answer/all/:questionId
func (h *AnswerHandler) AllForQuestion(c *gin.Context) {
	q, answers, err := h.Svc.AllForQuestion(c.Request.Context(), accessToken(c), c.Param("questionId"))
	if err != nil {
		respondDomainError(c, err, "get the answers")
		return
	}
	items := make([]gin.H, 0, len(answers))
	for _, a := range answers {
		items = append(items, gin.H{"id": a.UUID, "answer_content": a.Content})
	}
	response.Success(c, http.StatusOK, gin.H{
		"question_id":      q.UUID,
		"question_content": q.Content,
		"answers":          items,
	}, "answers for question")
}

// Edit PUT /api/answer/edit/:answerId
func (h *AnswerHandler) Edit(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Edit(c.Request.Context(), accessToken(c), c.Param("answerId"), req.Answer)
	if err != nil {
		respondDomainError(c, err, "edit an answer")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": a.UUID}, "ANSWER EDITED")
}

// Delete DELETE /api/answer/delete/:answerId
func (h *AnswerHandler) Delete(c *gin.Context) {
	a, err := h.Svc.Delete(c.Request.Context(), accessToken(c), c.Param("answerId"))
	if err != nil {
		respondDomainError(c, err, "delete an answer")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": a.UUID}, "ANSWER DELETED")
}
