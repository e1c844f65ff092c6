package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/curioapp/curio/internal/container"
	handlers "github.com/curioapp/curio/internal/interface/http"
	"github.com/curioapp/curio/internal/interface/middleware"
)

// AnswerModule wires the answer lifecycle endpoints. Creation hangs off the
// parent question path, matching the public API shape.
type AnswerModule struct {
	Handler *handlers.AnswerHandler
}

func NewAnswerModule(h *handlers.AnswerHandler) *AnswerModule {
	return &AnswerModule{Handler: h}
}

func (m *AnswerModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/question/:questionId/answer/create", limiter, m.Handler.Create)

	a := rg.Group("/answer")
	a.Use(limiter)
	a.GET("/all/:questionId", m.Handler.AllForQuestion)
	a.PUT("/edit/:answerId", m.Handler.Edit)
	a.DELETE("/delete/:answerId", m.Handler.Delete)
}
