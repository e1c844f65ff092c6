package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/curioapp/curio/internal/application"
	"github.com/curioapp/curio/pkg/response"
)

// AdminHandler exposes the moderation-only endpoints.
type AdminHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.UserService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

// DeleteUser DELETE /api/admin/user/:userId
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userUUID, err := h.Svc.DeleteUser(c.Request.Context(), accessToken(c), c.Param("userId"))
	if err != nil {
		respondDomainError(c, err, "delete a user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": userUUID}, "USER SUCCESSFULLY DELETED")
}
