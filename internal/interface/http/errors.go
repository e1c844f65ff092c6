package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/curioapp/curio/internal/application"
	"github.com/curioapp/curio/pkg/response"
)

// apiError is the error payload: a stable code per taxonomy kind plus a
// human message. Codes are part of the persisted API contract.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondDomainError maps application sentinels to HTTP status and code.
// action names the blocked operation ("post an answer", "edit the question")
// so the signed-out message can tell the caller what sign-in would unlock.
func respondDomainError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, application.ErrUnauthenticated):
		writeAPIError(c, http.StatusUnauthorized, "ATHR-001", "User has not signed in")
	case errors.Is(err, application.ErrSessionClosed):
		writeAPIError(c, http.StatusUnauthorized, "ATHR-002", "User is signed out.Sign in first to "+action)
	case errors.Is(err, application.ErrNotSignedIn):
		writeAPIError(c, http.StatusUnauthorized, "SGR-001", "User is not Signed in")
	case errors.Is(err, application.ErrForbidden):
		writeAPIError(c, http.StatusForbidden, "ATHR-003", "Unauthorized Access: "+action+" is not permitted for this user")
	case errors.Is(err, application.ErrQuestionNotFound):
		writeAPIError(c, http.StatusNotFound, "QUES-001", "The question entered is invalid")
	case errors.Is(err, application.ErrAnswerNotFound):
		writeAPIError(c, http.StatusNotFound, "ANS-001", "Entered answer uuid does not exist")
	case errors.Is(err, application.ErrUserNotFound):
		writeAPIError(c, http.StatusNotFound, "USR-001", "User with entered uuid does not exist")
	case errors.Is(err, application.ErrDuplicateUserName):
		writeAPIError(c, http.StatusConflict, "SGR-001", "Try any other Username, this Username has already been taken")
	case errors.Is(err, application.ErrDuplicateEmail):
		writeAPIError(c, http.StatusConflict, "SGR-002", "This user has already been registered, try with any other emailId")
	case errors.Is(err, application.ErrUnknownUserName):
		writeAPIError(c, http.StatusUnauthorized, "ATH-001", "This username does not exist")
	case errors.Is(err, application.ErrWrongPassword):
		writeAPIError(c, http.StatusUnauthorized, "ATH-002", "Password failed")
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

func writeAPIError(c *gin.Context, status int, code, message string) {
	response.Error[any](c, status, message, apiError{Code: code, Message: message})
}

// accessToken pulls the bearer token from the authorization header. A
// "Bearer " prefix is accepted and stripped; the rest of the header is the
// opaque token, matched exactly.
func accessToken(c *gin.Context) string {
	h := c.GetHeader("authorization")
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return after
	}
	return h
}
