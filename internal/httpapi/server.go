// Package httpapi exposes the chat service over HTTP: POST /api/chat drives
// one orchestration run, GET / serves the embedded widget.
package httpapi

import (
	"context"
	_ "embed"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rfinlay/toolchat/internal/runner"
	"github.com/rfinlay/toolchat/transcript"
)

//go:embed widget.html
var widgetHTML []byte

// ChatRequest is the inbound body. History items use caller-facing roles
// ("user"/"assistant"); the builder maps them onto transcript roles.
type ChatRequest struct {
	Message string               `json:"message"`
	History []transcript.Message `json:"history"`
}

// ChatResponse is the output shape for every completed run. Failures inside
// the loop are reported through Reply, never as a distinct error field.
type ChatResponse struct {
	Reply     string   `json:"reply"`
	ToolsUsed []string `json:"tools_used"`
}

// Loop is the orchestration surface the handler drives.
type Loop interface {
	Run(ctx context.Context, turns []transcript.Turn) runner.Result
}

// Server wires routes onto a gin engine.
type Server struct {
	engine *gin.Engine
	loop   Loop
	log    *logrus.Entry
}

// New builds the HTTP server around an orchestration loop.
func New(loop Loop, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Server{
		engine: gin.New(),
		loop:   loop,
		log:    log,
	}
	s.engine.Use(gin.Recovery(), requestLogger(log))
	s.engine.GET("/", s.handleWidget)
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.POST("/api/chat", s.handleChat)
	return s
}

// Handler returns the engine as a plain http.Handler for http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	turns := transcript.Build(req.History, req.Message)
	res := s.loop.Run(c.Request.Context(), turns)

	c.JSON(http.StatusOK, ChatResponse{Reply: res.Reply, ToolsUsed: res.ToolsUsed})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleWidget(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", widgetHTML)
}
