package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fr4nk3nst1ner/jobanalysis/internal/app"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/config"
	apperrors "github.com/fr4nk3nst1ner/jobanalysis/internal/errors"
	"github.com/fr4nk3nst1ner/jobanalysis/internal/models"
)

// multipartOverhead is the room left above the file size limit for boundaries and part headers
const multipartOverhead = 64 << 10

// Server is the local browser viewer. Every request runs one command against a shared App;
// commands are serialised, so a later upload simply replaces an earlier one.
type Server struct {
	mu          sync.Mutex
	app         *app.App
	cfg         config.WebConfig
	defaultSort models.SortSpec
	maxUpload   int64
	logger      *zap.Logger
	now         func() time.Time

	router     *gin.Engine
	httpServer *http.Server
}

// NewServer wires the viewer routes around the App a
func NewServer(a *app.App, cfg *config.AppConfig, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	router.Use(gin.Recovery(), requestLogger(logger))
	router.MaxMultipartMemory = cfg.Loader.MaxFileSize

	s := &Server{
		app:         a,
		cfg:         cfg.Web,
		defaultSort: cfg.Display.DefaultSort,
		maxUpload:   cfg.Loader.MaxFileSize,
		logger:      logger,
		now:         time.Now,
		router:      router,
		httpServer: &http.Server{
			Addr:         cfg.Web.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.Web.ReadTimeout,
			WriteTimeout: cfg.Web.WriteTimeout,
		},
	}
	s.setUpRoutes()
	return s, nil
}

func (s *Server) setUpRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/", s.handleIndex)
	s.router.POST("/api/upload", s.handleUpload)
	s.router.GET("/api/jobs", s.handleJobs)
	s.router.GET("/api/jobs/:id", s.handleJob)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until Shutdown is called
func (s *Server) Run() error {
	s.logger.Info("web viewer listening", zap.String("url", "http://"+s.cfg.Addr()))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx is done
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("web viewer stopped")
	return nil
}

// capture is a Presenter that keeps the instruction for the HTTP response
type capture struct {
	list   *app.ListView
	detail *models.Details
	err    error
}

func (c *capture) Render(v app.ListView) { c.list = &v }

func (c *capture) ShowDetail(d models.Details) { c.detail = &d }

func (c *capture) Notify(err error) { c.err = err }

func (s *Server) run(cmd app.Command) *capture {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := &capture{}
	s.app.Handle(cmd, out)
	return out
}

// listResponse is a ListView plus the fields the page shows verbatim
type listResponse struct {
	app.ListView
	Loaded  string `json:"loaded"`
	Message string `json:"message,omitempty"`
}

func (s *Server) respondList(c *gin.Context, v app.ListView) {
	resp := listResponse{ListView: v, Loaded: "never"}
	if !v.LoadedAt.IsZero() {
		resp.Loaded = humanize.RelTime(v.LoadedAt, s.now(), "ago", "from now")
	}
	if v.Empty() {
		resp.Message = app.EmptyMessage
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) respondError(c *gin.Context, err error) {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrTypeInvalidFile, apperrors.ErrTypeMalformedRecord:
		c.JSON(http.StatusBadRequest, gin.H{"error": app.InvalidFileMessage, "detail": err.Error()})
	case apperrors.ErrTypeInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.ErrTypeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (s *Server) respond(c *gin.Context, out *capture) {
	switch {
	case out.err != nil:
		s.respondError(c, out.err)
	case out.detail != nil:
		c.JSON(http.StatusOK, out.detail)
	case out.list != nil:
		s.respondList(c, *out.list)
	default:
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML(s.defaultSort)))
}

func (s *Server) handleUpload(c *gin.Context) {
	limit := s.maxUpload + multipartOverhead
	if c.Request.ContentLength > limit {
		s.respondError(c, s.tooLarge("upload"))
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	fh, err := c.FormFile("file")
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		s.respondError(c, s.tooLarge("upload"))
		return
	}
	if err != nil {
		s.respondError(c, apperrors.InvalidInput("expected a multipart form with a \"file\" field", err))
		return
	}
	if fh.Size > s.maxUpload {
		s.respondError(c, s.tooLarge(fh.Filename))
		return
	}

	f, err := fh.Open()
	if err != nil {
		s.respondError(c, apperrors.InvalidFile("could not open upload", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.respondError(c, apperrors.InvalidFile("could not read upload", err))
		return
	}

	s.respond(c, s.run(app.Load{Data: data, Source: fh.Filename}))
}

func (s *Server) tooLarge(name string) error {
	return apperrors.InvalidFile(fmt.Sprintf("%s is too large, the limit is %s", name, humanize.Bytes(uint64(s.maxUpload))), nil)
}

// handleJobs maps the query onto a command: filter parameters alone filter, sort parameters
// alone sort the whole collection, both filter and then sort the result.
func (s *Server) handleJobs(c *gin.Context) {
	criteria := models.Criteria{
		Type:  c.Query("type"),
		Level: c.Query("level"),
		Skill: c.Query("skill"),
	}

	spec, err := models.ResolveSortSpec(c.Query("sort_title"), c.Query("sort_posted"), s.defaultSort)
	if err != nil {
		s.respondError(c, err)
		return
	}

	var cmd app.Command
	switch {
	case spec == nil:
		cmd = app.Filter{Criteria: criteria}
	case criteria.IsEmpty():
		cmd = app.Sort{Spec: *spec}
	default:
		cmd = app.Query{Criteria: criteria, Sort: spec}
	}

	s.respond(c, s.run(cmd))
}

func (s *Server) handleJob(c *gin.Context) {
	s.respond(c, s.run(app.Select{ID: c.Param("id")}))
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
