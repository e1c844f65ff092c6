package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/curioapp/curio/internal/container"
	handlers "github.com/curioapp/curio/internal/interface/http"
	"github.com/curioapp/curio/internal/interface/middleware"
)

// AdminModule wires moderation endpoints. Role checks live in the policy;
// the tighter per-IP limit here just keeps abuse noise down.
type AdminModule struct {
	Handler *handlers.AdminHandler
}

func NewAdminModule(h *handlers.AdminHandler) *AdminModule {
	return &AdminModule{Handler: h}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.DELETE("/admin/user/:userId", limiter, m.Handler.DeleteUser)
}
