package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/curioapp/curio/internal/application"
	"github.com/curioapp/curio/pkg/response"
	"github.com/curioapp/curio/pkg/validation"
)

// UserHandler covers signup, signin, signout and the shared profile read.
type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	UserName      string `json:"user_name" binding:"required"`
	EmailAddress  string `json:"email_address" binding:"required,email"`
	Password      string `json:"password" binding:"required,pwd"`
	Country       string `json:"country"`
	AboutMe       string `json:"about_me"`
	DOB           string `json:"dob"`
	ContactNumber string `json:"contact_number"`
}

// Signup POST /api/user/signup
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		UserName:      req.UserName,
		Email:         req.EmailAddress,
		Password:      req.Password,
		Country:       req.Country,
		AboutMe:       req.AboutMe,
		DOB:           req.DOB,
		ContactNumber: req.ContactNumber,
	})
	if err != nil {
		respondDomainError(c, err, "sign up")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"id": u.UUID}, "USER SUCCESSFULLY REGISTERED")
}

// Signin POST /api/user/signin
// Credentials arrive as "Basic base64(username:password)" in the
// authorization header. The access token is returned in both the
// access_token response header and the body.
func (h *UserHandler) Signin(c *gin.Context) {
	userName, password, ok := decodeBasicAuth(c.GetHeader("authorization"))
	if !ok {
		response.Error[any](c, http.StatusBadRequest, "malformed authorization header", nil)
		return
	}
	sess, err := h.Svc.Signin(c.Request.Context(), userName, password)
	if err != nil {
		respondDomainError(c, err, "sign in")
		return
	}
	c.Header("access_token", sess.AccessToken)
	response.Success(c, http.StatusOK, gin.H{
		"id":           sess.User.UUID,
		"access_token": sess.AccessToken,
		"expires_at":   sess.ExpiresAt,
	}, "SIGNED IN SUCCESSFULLY")
}

// Signout POST /api/user/signout
func (h *UserHandler) Signout(c *gin.Context) {
	userUUID, err := h.Svc.Signout(c.Request.Context(), accessToken(c))
	if err != nil {
		respondDomainError(c, err, "sign out")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": userUUID}, "SIGNED OUT SUCCESSFULLY")
}

// GetUserProfile GET /api/userprofile/:userId
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	u, err := h.Svc.GetUserProfile(c.Request.Context(), accessToken(c), c.Param("userId"))
	if err != nil {
		respondDomainError(c, err, "get user details")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"first_name":     u.FirstName,
		"last_name":      u.LastName,
		"user_name":      u.UserName,
		"email_address":  u.Email,
		"country":        u.Country,
		"about_me":       u.AboutMe,
		"dob":            u.DOB,
		"contact_number": u.ContactNumber,
	}, "user profile")
}

func decodeBasicAuth(header string) (string, string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}
	creds := strings.SplitN(string(decoded), ":", 2)
	if len(creds) != 2 {
		return "", "", false
	}
	return creds[0], creds[1], true
}
