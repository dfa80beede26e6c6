package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	credentialservice "taskhub/contexts/identity-access/credential-service"
	taskservice "taskhub/contexts/task-management/task-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "taskhub/internal/platform/httpserver/docs"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	credentials credentialservice.Module
	tasks       taskservice.Module
}

func New(
	credentials credentialservice.Module,
	tasks taskservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		credentials: credentials,
		tasks:       tasks,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /{$}", s.handleHealth)

	s.mux.HandleFunc("POST /auth/signup", s.handleSignup)
	s.mux.HandleFunc("POST /auth/login", s.handleLogin)

	s.mux.HandleFunc("POST /tasks", s.withAuth(s.handleCreateTask))
	s.mux.HandleFunc("GET /tasks", s.withAuth(s.handleListTasks))
	s.mux.HandleFunc("PUT /tasks/{id}", s.withAuth(s.handleUpdateTask))
	s.mux.HandleFunc("DELETE /tasks/{id}", s.withAuth(s.handleDeleteTask))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("API is running"))
}

// failureEnvelope is the error shape shared by every endpoint:
// {status:false, data:null, message:...}.
type failureEnvelope struct {
	Status  bool   `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, failureEnvelope{Status: false, Data: nil, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
