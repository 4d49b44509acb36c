package handlers

import (
	"errors"
	"net/http"

	"github.com/alidemir/catalog/internal/apperr"
	"github.com/alidemir/catalog/internal/middleware"
	"github.com/alidemir/catalog/internal/resolver"
	"github.com/alidemir/catalog/pkg/logger"
	"github.com/gin-gonic/gin"
)

// QueryHandler exposes the single typed query-and-mutation endpoint.
type QueryHandler struct {
	resolver *resolver.Resolver
}

func NewQueryHandler(r *resolver.Resolver) *QueryHandler {
	return &QueryHandler{resolver: r}
}

// Query executes one named operation from the request envelope
func (h *QueryHandler) Query(c *gin.Context) {
	var req resolver.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request"})
		return
	}

	result, err := h.resolver.Resolve(req, middleware.CurrentUser(c))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.WithError(err).WithField("operation", req.Operation).Error("operation failed")
			c.JSON(status, gin.H{"error": "internal error"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

func statusFor(err error) int {
	switch {
	case apperr.IsValidation(err),
		errors.Is(err, apperr.ErrDuplicateName),
		errors.Is(err, apperr.ErrDuplicateUsername),
		errors.Is(err, resolver.ErrUnknownOperation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrAuthentication),
		errors.Is(err, apperr.ErrInvalidToken),
		errors.Is(err, apperr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
