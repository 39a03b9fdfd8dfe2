package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/maoni/core"
	"github.com/trezcool/maoni/core/admin"
	"github.com/trezcool/maoni/core/course"
	"github.com/trezcool/maoni/core/feedback"
	"github.com/trezcool/maoni/core/student"
)

type (
	ServerDeps struct {
		Conf        *core.Config
		Logger      core.Logger
		StudentSvc  *student.Service
		AdminSvc    *admin.Service
		CourseRepo  course.Repository
		FeedbackSvc *feedback.Service
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(newJWTConfig(conf))

	registerStudentAPI(v1, jwt, conf, s.deps.StudentSvc)
	registerCourseAPI(v1, jwt, s.deps.CourseRepo)
	registerFeedbackAPI(v1, jwt, s.deps.FeedbackSvc)
	registerAdminAPI(v1, jwt, conf, s.deps.AdminSvc, s.deps.FeedbackSvc)
}

func (s *Server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Addr); err != nil && err != http.ErrServerClosed {
		s.errs <- err
	}
}

// Errors reports fatal server errors; the caller should exit on receive.
func (s *Server) Errors() <-chan error { return s.errs }

// ShutdownSignal relays OS interrupt/terminate signals, plus internal
// shutdown requests raised by the error handler.
func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

func (s *Server) signalShutdown() { s.shutdown <- syscall.SIGTERM }

func (s *Server) Shutdown(ctx context.Context) error { return s.app.Shutdown(ctx) }

func (s *Server) Close() error { return s.app.Close() }

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Maoni API!")
}
