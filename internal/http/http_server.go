package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/primary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/secondary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/services/judge"
	"github.com/gwc-sys/StackHack.live-sub000/internal/handlers"
	"github.com/gwc-sys/StackHack.live-sub000/internal/handlers/submissions"
)

type ServiceProvider struct {
	judgeService   judge.IJudgeService
	problemRepo    secondary.ProblemRepository
	submissionRepo secondary.SubmissionRepository
}

func NewServiceProvider(
	judgeService judge.IJudgeService,
	problemRepo secondary.ProblemRepository,
	submissionRepo secondary.SubmissionRepository,
) *ServiceProvider {
	return &ServiceProvider{
		judgeService:   judgeService,
		problemRepo:    problemRepo,
		submissionRepo: submissionRepo,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	mw := handlers.New()
	if mw.SecretOption != "" {
		api.Use(mw.JWTMiddleware)
	}
	submissions.
		NewHandler(s.ServiceProvider.judgeService, s.ServiceProvider.problemRepo, s.ServiceProvider.submissionRepo, s.logger).
		Register(api)

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.srv = srv

	go func() {
		s.logger.Info("Server listening", "service", s.ServiceName, "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
