package router

import (
	"github.com/curioapp/curio/internal/application"
	"github.com/curioapp/curio/internal/container"
	pginfra "github.com/curioapp/curio/internal/infrastructure/postgres"
	handlers "github.com/curioapp/curio/internal/interface/http"
	"github.com/curioapp/curio/internal/router/modules"
)

// InitModules builds the repository → service → handler chain for every
// feature and registers the modules with the router registry. Called once
// during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(pool)
	sessions := pginfra.NewSessionRepository(pool)
	questions := pginfra.NewQuestionRepository(pool)
	answers := pginfra.NewAnswerRepository(pool)

	authority := application.NewSessionService(sessions, container.GetMinter(), logger, cfg.SessionTTL, cfg.EnforceExpiry)
	policy := application.NewPolicy(authority)

	userSvc := application.NewUserService(users, authority, policy, logger)
	questionSvc := application.NewQuestionService(questions, users, policy, logger)
	answerSvc := application.NewAnswerService(answers, questions, policy, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewQuestionModule(handlers.NewQuestionHandler(questionSvc, logger)))
	r.Add(modules.NewAnswerModule(handlers.NewAnswerHandler(answerSvc, logger)))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(userSvc, logger)))
	r.Add(modules.NewDebugModule())
}
