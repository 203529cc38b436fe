package httpapi

import (
	"net/http"
	"time"

	"task-tracker/internal/logging"
	"task-tracker/internal/services"
	"task-tracker/internal/validation"
)

const defaultRequestTimeout = 10 * time.Second

// Server wires the task service to the HTTP surface.
type Server struct {
	svc            services.TaskService
	validator      *validation.TaskValidator
	log            *logging.Logger
	mux            *http.ServeMux
	requestTimeout time.Duration
}

// NewServer creates the HTTP server around the given service.
// A non-positive requestTimeout falls back to the default.
func NewServer(svc services.TaskService, log *logging.Logger, requestTimeout time.Duration) *Server {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	srv := &Server{
		svc:            svc,
		validator:      validation.NewTaskValidator(),
		log:            log,
		mux:            http.NewServeMux(),
		requestTimeout: requestTimeout,
	}

	srv.mux.HandleFunc("GET /healthz", srv.handleHealth)

	srv.mux.HandleFunc("POST /tasks", srv.handleCreateTask)
	srv.mux.HandleFunc("GET /tasks", srv.handleListTasks)
	srv.mux.HandleFunc("GET /tasks/{id}", srv.handleGetTask)
	srv.mux.HandleFunc("PATCH /tasks/{id}", srv.handleUpdateTask)
	srv.mux.HandleFunc("DELETE /tasks/{id}", srv.handleDeleteTask)

	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.withMiddleware(s.mux).ServeHTTP(w, r)
}
