// Package web exposes the planner over HTTP. All planner routes sit behind
// bearer-token authentication; sign-in is the only open endpoint.
package web

import (
	"time"

	"github.com/gin-gonic/gin"

	"day-planner/internal/api"
	"day-planner/internal/auth"
)

// Server is the planner web server
type Server struct {
	planner api.API
	auth    auth.Provider
	timeout time.Duration
	router  *gin.Engine
}

// NewServer creates a new web server
func NewServer(planner api.API, authProvider auth.Provider, timeout time.Duration) *Server {
	router := gin.Default()

	s := &Server{
		planner: planner,
		auth:    authProvider,
		timeout: timeout,
		router:  router,
	}

	router.POST("/api/auth/signup", s.handleSignUp)
	router.POST("/api/auth/signin", s.handleSignIn)

	authed := router.Group("/api", s.requireAuth)
	{
		authed.POST("/auth/signout", s.handleSignOut)

		authed.GET("/day/:date", s.handleDay)
		authed.GET("/day/:date/calendar.ics", s.handleExportICS)

		authed.POST("/tasks", s.handleAddTask)
		authed.POST("/tasks/:id/toggle", s.handleToggleTask)
		authed.PATCH("/tasks/:id/title", s.handleEditTitle)
		authed.PATCH("/tasks/:id/assignee", s.handleReassignTask)
		authed.DELETE("/tasks/:id", s.handleDeleteTask)

		authed.GET("/preferences/:key", s.handleGetPreference)
		authed.PUT("/preferences/:key", s.handleSetPreference)
	}

	return s
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
