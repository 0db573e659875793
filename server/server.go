// Package server exposes the conversation orchestrator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	contractx "github.com/paxbot/curator-agent/agent/contract"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	Debug           bool          `envconfig:"DEBUG" default:"false"`
}

// TurnHandler is the orchestrator as seen from the transport layer.
type TurnHandler interface {
	HandleTurn(ctx context.Context, req contractx.TurnRequest) (contractx.TurnResult, error)
}

type Server struct {
	handler TurnHandler
	cfg     Config
	http    *http.Server
}

type runRequest struct {
	Query     string `json:"query" binding:"required"`
	From      string `json:"from_"`
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

type runResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Message   string `json:"message,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func New(handler TurnHandler, cfg Config) (*Server, error) {
	if handler == nil {
		return nil, errors.New("turn handler is required")
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{handler: handler, cfg: cfg}

	router := gin.New()
	router.Use(requestLogger(), recovery())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/run", s.handleRun)
	router.POST("/agent-response", s.handleRun)

	s.http = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: router,
	}
	return s, nil
}

// Run serves until ctx is canceled, then drains within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info().Str("addr", s.http.Addr).Msg("http server listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) handleRun(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "invalid request body",
			Details: err.Error(),
		})
		return
	}

	result, err := s.handler.HandleTurn(c.Request.Context(), contractx.TurnRequest{
		Query:     req.Query,
		Location:  req.From,
		SessionID: req.SessionID,
		UserID:    req.UserID,
	})
	if err != nil {
		status, payload := classifyError(err)
		c.JSON(status, payload)
		return
	}

	resp := runResponse{
		Response:  result.Response,
		SessionID: result.SessionID,
	}
	if result.Outcome == contractx.OutcomeNoResponse {
		resp.Message = "no response generated"
	}
	c.JSON(http.StatusOK, resp)
}

func classifyError(err error) (int, errorResponse) {
	switch {
	case errors.Is(err, contractx.ErrValidation):
		return http.StatusBadRequest, errorResponse{Error: "invalid request", Details: err.Error()}
	case errors.Is(err, contractx.ErrSessionResolve):
		return http.StatusBadRequest, errorResponse{Error: "session resolution failed", Details: err.Error()}
	case errors.Is(err, contractx.ErrNoResponse):
		return http.StatusBadGateway, errorResponse{Error: "no response generated", Details: err.Error()}
	case errors.Is(err, contractx.ErrModelInvoke):
		return http.StatusBadGateway, errorResponse{Error: "model invocation failed", Details: err.Error()}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal error", Details: err.Error()}
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	}
}

const maxTraceBytes = 2048

// recovery converts a handler panic into a structured error payload with a
// truncated trace, so a fault never reaches the transport as a bare 500.
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				trace := debug.Stack()
				if len(trace) > maxTraceBytes {
					trace = trace[:maxTraceBytes]
				}
				log.Error().
					Interface("panic", r).
					Bytes("trace", trace).
					Msg("handler panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
					Error:   fmt.Sprintf("unhandled failure: %v", r),
					Details: string(trace),
				})
			}
		}()
		c.Next()
	}
}
