package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"promo-planner/internal/service"
)

type createClientRequest struct {
	BusinessType string `json:"business_type"`
	BusinessName string `json:"business_name"`
}

func (s *Server) handleGetClient(c *gin.Context) {
	client, err := s.clients.GetClient(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.serverError(c, "GET /api/clients", err)
		return
	}
	if client == nil {
		// Not onboarded yet; the dashboard redirects on a null client.
		c.JSON(http.StatusOK, gin.H{"client": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

func (s *Server) handleCreateClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrFieldsRequired.Error()})
		return
	}

	client, err := s.clients.CreateClient(c.Request.Context(), currentUserID(c), service.ClientInput{
		BusinessType: req.BusinessType,
		BusinessName: req.BusinessName,
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"client": client})
	case service.IsValidation(err), errors.Is(err, service.ErrClientExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.serverError(c, "POST /api/clients", err)
	}
}
