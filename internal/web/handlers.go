package web

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"day-planner/internal/domain"
	"day-planner/internal/errors"
	"day-planner/internal/validation"
)

const identityKey = "identity"

// Auth handlers

type signUpRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName"`
}

func (s *Server) handleSignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	identity, err := s.auth.SignUp(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"userId":      identity.UserID,
		"email":       identity.Email,
		"displayName": identity.DisplayName,
	})
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleSignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	session, err := s.auth.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":       session.Token,
		"expiresAt":   session.ExpiresAt,
		"email":       session.Identity.Email,
		"displayName": session.Identity.DisplayName,
	})
}

func (s *Server) handleSignOut(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.auth.SignOut(ctx, bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"signedOut": true})
}

// requireAuth resolves the bearer token and stores the identity on the
// request context.
func (s *Server) requireAuth(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	identity, err := s.auth.Verify(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errors.GetUserMessage(err)})
		return
	}

	c.Set(identityKey, identity)
	c.Next()
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// Day handlers

func (s *Server) handleDay(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	view, err := s.planner.Day(ctx, c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleExportICS(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	payload, err := s.planner.ExportICS(ctx, c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(payload))
}

// Task handlers

type addTaskRequest struct {
	Slot     string `json:"slot" binding:"required"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Assignee string `json:"assignee"`
	Date     string `json:"date" binding:"required"`
}

func (s *Server) handleAddTask(c *gin.Context) {
	var req addTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot and date are required"})
		return
	}
	if req.Priority == "" {
		req.Priority = string(domain.PriorityMedium)
	}
	if req.Assignee == "" {
		req.Assignee = domain.Unassigned
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	task, err := s.planner.AddTask(ctx, req.Slot, req.Title, domain.Priority(req.Priority), req.Assignee, req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

type slotRequest struct {
	Slot string `json:"slot" binding:"required"`
}

func (s *Server) handleToggleTask(c *gin.Context) {
	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot is required"})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	task, err := s.planner.ToggleCompletion(ctx, req.Slot, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type editTitleRequest struct {
	Slot  string `json:"slot" binding:"required"`
	Title string `json:"title" binding:"required"`
}

func (s *Server) handleEditTitle(c *gin.Context) {
	var req editTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot and title are required"})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	task, err := s.planner.EditTitle(ctx, req.Slot, c.Param("id"), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type reassignRequest struct {
	Slot     string `json:"slot" binding:"required"`
	Assignee string `json:"assignee" binding:"required"`
}

func (s *Server) handleReassignTask(c *gin.Context) {
	var req reassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot and assignee are required"})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	task, err := s.planner.Reassign(ctx, req.Slot, c.Param("id"), req.Assignee)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	slot := c.Query("slot")
	if slot == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot query parameter is required"})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.planner.DeleteTask(ctx, slot, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Preference handlers

func (s *Server) handleGetPreference(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	value, err := s.planner.GetPreference(ctx, c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": c.Param("key"), "value": value})
}

type preferenceRequest struct {
	Value string `json:"value"`
}

func (s *Server) handleSetPreference(c *gin.Context) {
	var req preferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value is required"})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	if err := s.planner.SetPreference(ctx, c.Param("key"), req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": c.Param("key"), "value": req.Value})
}

// Shared helpers

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), s.timeout)
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": userMessage(err)})
}

func statusFor(err error) int {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput:
			return http.StatusBadRequest
		case errors.ErrorTypeNotFound:
			return http.StatusNotFound
		case errors.ErrorTypeAuth:
			return http.StatusUnauthorized
		case errors.ErrorTypeGateway:
			return http.StatusBadGateway
		case errors.ErrorTypeTimeout:
			return http.StatusGatewayTimeout
		}
	}
	return http.StatusInternalServerError
}

func userMessage(err error) string {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}
