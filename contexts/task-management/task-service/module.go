package taskservice

import (
	"log/slog"

	httpadapter "taskhub/contexts/task-management/task-service/adapters/http"
	"taskhub/contexts/task-management/task-service/adapters/memory"
	"taskhub/contexts/task-management/task-service/application"
	"taskhub/contexts/task-management/task-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	if deps.Clock == nil {
		deps.Clock = memory.SystemClock{}
	}
	if deps.IDGenerator == nil {
		deps.IDGenerator = memory.UUIDGenerator{}
	}

	service := application.Service{
		Repo:   deps.Repository,
		Clock:  deps.Clock,
		IDs:    deps.IDGenerator,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Clock:       memory.SystemClock{},
		IDGenerator: memory.UUIDGenerator{},
		Logger:      logger,
	})
	module.Store = store
	return module
}
