package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/curioapp/curio/internal/container"
	handlers "github.com/curioapp/curio/internal/interface/http"
	"github.com/curioapp/curio/internal/interface/middleware"
)

// QuestionModule wires the question lifecycle endpoints. All of them are
// token-gated in the service layer.
type QuestionModule struct {
	Handler *handlers.QuestionHandler
}

func NewQuestionModule(h *handlers.QuestionHandler) *QuestionModule {
	return &QuestionModule{Handler: h}
}

func (m *QuestionModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	q := rg.Group("/question")
	q.Use(limiter)
	q.POST("/create", m.Handler.Create)
	q.GET("/all", m.Handler.All)
	q.GET("/all/:userId", m.Handler.AllByUser)
	q.PUT("/edit/:questionId", m.Handler.Edit)
	q.DELETE("/delete/:questionId", m.Handler.Delete)
}
