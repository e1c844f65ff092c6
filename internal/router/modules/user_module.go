package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/curioapp/curio/internal/container"
	handlers "github.com/curioapp/curio/internal/interface/http"
	"github.com/curioapp/curio/internal/interface/middleware"
)

// UserModule wires the account endpoints.
// Public: POST /api/user/signup, POST /api/user/signin
// Token-gated (in the service layer): POST /api/user/signout, GET /api/userprofile/:userId
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	signinLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	user := rg.Group("/user")
	user.POST("/signup", signupLimiter, m.Handler.Signup)
	user.POST("/signin", signinLimiter, m.Handler.Signin)
	user.POST("/signout", m.Handler.Signout)

	rg.GET("/userprofile/:userId", m.Handler.GetUserProfile)
}
