package credentialservice

import (
	"log/slog"
	"time"

	httpadapter "taskhub/contexts/identity-access/credential-service/adapters/http"
	"taskhub/contexts/identity-access/credential-service/adapters/memory"
	"taskhub/contexts/identity-access/credential-service/adapters/security"
	"taskhub/contexts/identity-access/credential-service/application"
	"taskhub/contexts/identity-access/credential-service/domain/token"
	"taskhub/contexts/identity-access/credential-service/ports"
)

// TokenTTL is fixed; there is no refresh or revocation path.
const TokenTTL = 24 * time.Hour

type Module struct {
	Handler  httpadapter.Handler
	Verifier token.Verifier
	Store    *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	Hasher      ports.PasswordHasher
	TokenSecret []byte
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
	if deps.Hasher == nil {
		deps.Hasher = security.BcryptHasher{Cost: security.DefaultCost}
	}

	service := application.Service{
		Repo:   deps.Repository,
		Hasher: deps.Hasher,
		Tokens: token.NewIssuer(deps.TokenSecret, TokenTTL, deps.Clock.Now),
		Clock:  deps.Clock,
		IDs:    deps.IDGenerator,
		Logger: deps.Logger,
	}
	return Module{
		Handler:  httpadapter.Handler{Service: service, Logger: deps.Logger},
		Verifier: token.NewVerifier(deps.TokenSecret, deps.Clock.Now),
	}
}

func NewInMemoryModule(secret []byte, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Hasher:      security.BcryptHasher{Cost: security.FastCost},
		TokenSecret: secret,
		Clock:       memory.SystemClock{},
		IDGenerator: memory.UUIDGenerator{},
		Logger:      logger,
	})
	module.Store = store
	return module
}
